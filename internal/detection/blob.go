package detection

import (
	"image"

	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/segment"
)

// blobThresholds are the gray levels the fallback detector binarizes at.
// Dark regions that persist as connected components across several levels
// are stable glyph-like blobs; sampling a spread of levels catches print at
// different darkness against different backgrounds.
var blobThresholds = []uint8{64, 96, 128, 160, 192}

// detectBlobs is the fallback region detector for images where edge
// analysis finds nothing, such as low-contrast or heavily compressed
// photographs. It thresholds the grayscale image at several levels, keeps
// dark connected components of plausible glyph size, and merges the
// per-level duplicates into single regions.
//
// Unlike the edge path the resulting boxes are not padded; blob extents
// already hug the dark pixels and padding them would re-merge separate
// lines.
func (d *Detector) detectBlobs(img image.Image, imageWidth, imageHeight int) []Box {
	imageArea := imageWidth * imageHeight
	if imageArea == 0 {
		return nil
	}
	gray := effect.Grayscale(img)

	maxBlobSize := int(float64(imageArea) * d.params.BlobMaxAreaRatio)
	maxBoxArea := int(float64(imageArea) * d.params.MaxAreaRatio)

	var boxes []Box
	for _, level := range blobThresholds {
		binary := segment.Threshold(gray, level)
		for _, comp := range connectedComponents(darkMask(binary)) {
			if comp.size < d.params.BlobMinArea || comp.size > maxBlobSize {
				continue
			}
			area := comp.box.Area()
			if area < d.params.MinArea || area > maxBoxArea {
				continue
			}
			boxes = append(boxes, comp.box)
		}
	}
	return mergeOverlapping(boxes, d.params.MergeOverlap)
}

// darkMask returns the set of black pixels in a thresholded image.
func darkMask(binary *image.Gray) [][]bool {
	bounds := binary.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	mask := make([][]bool, height)
	for y := 0; y < height; y++ {
		mask[y] = make([]bool, width)
		for x := 0; x < width; x++ {
			mask[y][x] = binary.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y < 128
		}
	}
	return mask
}
