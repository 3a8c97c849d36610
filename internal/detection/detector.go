package detection

import (
	"image"

	"github.com/labelscan/labelscan/internal/imaging"
)

// Params controls region detection. Zero values are not meaningful; start
// from DefaultParams and override fields as needed.
type Params struct {
	// MinArea rejects bounding boxes smaller than this many square pixels.
	MinArea int
	// MaxAreaRatio rejects bounding boxes covering more than this fraction
	// of the image; a near-full-frame box is the label itself, not a field.
	MaxAreaRatio float64
	// MinAspect and MaxAspect bound the accepted width/height ratio. Text
	// lines are wide and short; extreme ratios are borders and decorations.
	MinAspect float64
	MaxAspect float64
	// Padding is added on every side of an accepted box, clipped to the
	// image, so descenders and edge glyphs survive the crop.
	Padding int

	// Canny hysteresis thresholds on gradient magnitude.
	CannyLow  float64
	CannyHigh float64

	// Dilation kernel. A wide flat kernel fuses characters into lines.
	DilateWidth  int
	DilateHeight int
	DilatePasses int

	// Fallback blob detector limits on component pixel count.
	BlobMinArea      int
	BlobMaxAreaRatio float64

	// MergeOverlap is the intersection-over-smaller-box ratio above which
	// two boxes merge into one.
	MergeOverlap float64
}

// DefaultParams returns detection parameters tuned for 1200px-wide label
// photographs.
func DefaultParams() Params {
	return Params{
		MinArea:          100,
		MaxAreaRatio:     0.8,
		MinAspect:        0.1,
		MaxAspect:        15.0,
		Padding:          5,
		CannyLow:         50,
		CannyHigh:        150,
		DilateWidth:      15,
		DilateHeight:     3,
		DilatePasses:     2,
		BlobMinArea:      60,
		BlobMaxAreaRatio: 0.3,
		MergeOverlap:     0.5,
	}
}

// Detector locates candidate text regions in a normalized label image.
// Safe for concurrent use; detection holds no mutable state.
type Detector struct {
	params Params
}

// NewDetector creates a Detector with the given parameters.
func NewDetector(params Params) *Detector {
	return &Detector{params: params}
}

// Detect returns the bounding boxes of likely text regions, in reading
// order (top-to-bottom, left-to-right).
//
// # Algorithm
//
//  1. Contrast-enhance a grayscale copy (bilateral filter + CLAHE)
//  2. Canny edge detection
//  3. Dilate edges with a wide flat kernel so characters fuse into lines
//  4. Take connected-component bounding boxes, filter by area and aspect
//     ratio, and pad the survivors
//  5. If nothing survives, fall back to multi-level blob detection
//
// An empty result means the image genuinely contains no text-shaped
// structure; callers typically fall back to whole-image recognition.
func (d *Detector) Detect(img image.Image) []Box {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width == 0 || height == 0 {
		return nil
	}

	enhanced := imaging.PrepareForDetection(img)
	edges := cannyEdges(enhanced, d.params.CannyLow, d.params.CannyHigh)
	dilated := dilateMask(edges, d.params.DilateWidth, d.params.DilateHeight, d.params.DilatePasses)

	boxes := d.filterAndPad(connectedComponents(dilated), width, height)
	if len(boxes) == 0 {
		boxes = d.detectBlobs(img, width, height)
	}
	return sortReadingOrder(boxes)
}

// filterAndPad applies the size and shape filters to raw components and
// pads accepted boxes, clipped to the image.
func (d *Detector) filterAndPad(comps []component, imageWidth, imageHeight int) []Box {
	maxArea := int(float64(imageWidth*imageHeight) * d.params.MaxAreaRatio)

	var boxes []Box
	for _, comp := range comps {
		b := comp.box
		area := b.Area()
		if area < d.params.MinArea || area > maxArea {
			continue
		}
		aspect := float64(b.Width) / float64(b.Height)
		if aspect < d.params.MinAspect || aspect > d.params.MaxAspect {
			continue
		}
		boxes = append(boxes, b.Pad(d.params.Padding, imageWidth, imageHeight))
	}
	return boxes
}
