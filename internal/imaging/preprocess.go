package imaging

import (
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
)

// Adaptive threshold parameters for OCR binarization. The block size is the
// side of the square neighborhood the local threshold is computed over; the
// offset is subtracted from the neighborhood mean.
const (
	thresholdBlockSize = 11
	thresholdOffset    = 2.0
)

// GrayPlane converts an image to a grayscale intensity grid using BT.601
// luminance weights. Values are in the 0-255 range.
func GrayPlane(img image.Image) [][]float64 {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	plane := make([][]float64, height)
	for y := 0; y < height; y++ {
		plane[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			plane[y][x] = 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
		}
	}
	return plane
}

// BilateralFilter smooths a grayscale plane while preserving edges.
//
// Each output pixel is a weighted average of its neighborhood where the
// weight combines spatial distance and intensity difference, so noise in
// flat areas is averaged away while strokes and glyph boundaries keep their
// contrast. diameter is the full window width in pixels; sigmaColor and
// sigmaSpace control the intensity and spatial falloff respectively.
func BilateralFilter(plane [][]float64, diameter int, sigmaColor, sigmaSpace float64) [][]float64 {
	height := len(plane)
	if height == 0 {
		return plane
	}
	width := len(plane[0])
	radius := diameter / 2

	// Spatial weights depend only on the offset, so compute them once.
	spatial := make([][]float64, diameter)
	for ky := 0; ky < diameter; ky++ {
		spatial[ky] = make([]float64, diameter)
		for kx := 0; kx < diameter; kx++ {
			dy := float64(ky - radius)
			dx := float64(kx - radius)
			spatial[ky][kx] = math.Exp(-(dx*dx + dy*dy) / (2 * sigmaSpace * sigmaSpace))
		}
	}

	twoSigmaColorSq := 2 * sigmaColor * sigmaColor
	result := make([][]float64, height)
	for y := 0; y < height; y++ {
		result[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			center := plane[y][x]
			var sum, norm float64
			for ky := -radius; ky <= radius; ky++ {
				py := clampInt(y+ky, 0, height-1)
				for kx := -radius; kx <= radius; kx++ {
					px := clampInt(x+kx, 0, width-1)
					v := plane[py][px]
					diff := v - center
					w := spatial[ky+radius][kx+radius] * math.Exp(-(diff*diff)/twoSigmaColorSq)
					sum += v * w
					norm += w
				}
			}
			result[y][x] = sum / norm
		}
	}
	return result
}

// CLAHE applies contrast-limited adaptive histogram equalization.
//
// The plane is divided into tilesX by tilesY tiles. Each tile gets its own
// equalization lookup table built from a histogram clipped at clipLimit
// times the average bin height (the clipped excess is redistributed evenly,
// which caps how much noise amplification equalization can cause). Output
// pixels are bilinearly interpolated between the four nearest tile tables to
// avoid visible tile seams.
func CLAHE(plane [][]float64, clipLimit float64, tilesX, tilesY int) [][]float64 {
	height := len(plane)
	if height == 0 {
		return plane
	}
	width := len(plane[0])

	tileW := (width + tilesX - 1) / tilesX
	tileH := (height + tilesY - 1) / tilesY

	luts := make([][][]float64, tilesY)
	for ty := 0; ty < tilesY; ty++ {
		luts[ty] = make([][]float64, tilesX)
		for tx := 0; tx < tilesX; tx++ {
			x0 := tx * tileW
			y0 := ty * tileH
			x1 := minInt(x0+tileW, width)
			y1 := minInt(y0+tileH, height)
			luts[ty][tx] = tileLUT(plane, x0, y0, x1, y1, clipLimit)
		}
	}

	result := make([][]float64, height)
	for y := 0; y < height; y++ {
		result[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			bin := clampInt(int(plane[y][x]), 0, 255)

			// Position relative to tile centers.
			fx := (float64(x) - float64(tileW)/2) / float64(tileW)
			fy := (float64(y) - float64(tileH)/2) / float64(tileH)
			tx0 := int(math.Floor(fx))
			ty0 := int(math.Floor(fy))
			dx := clamp(fx-float64(tx0), 0, 1)
			dy := clamp(fy-float64(ty0), 0, 1)
			tx1 := clampInt(tx0+1, 0, tilesX-1)
			ty1 := clampInt(ty0+1, 0, tilesY-1)
			tx0 = clampInt(tx0, 0, tilesX-1)
			ty0 = clampInt(ty0, 0, tilesY-1)

			top := (1-dx)*luts[ty0][tx0][bin] + dx*luts[ty0][tx1][bin]
			bottom := (1-dx)*luts[ty1][tx0][bin] + dx*luts[ty1][tx1][bin]
			result[y][x] = (1-dy)*top + dy*bottom
		}
	}
	return result
}

// tileLUT builds the clipped-equalization lookup table for one tile.
func tileLUT(plane [][]float64, x0, y0, x1, y1 int, clipLimit float64) []float64 {
	lut := make([]float64, 256)

	var hist [256]float64
	count := 0
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			hist[clampInt(int(plane[y][x]), 0, 255)]++
			count++
		}
	}
	if count == 0 {
		for i := range lut {
			lut[i] = float64(i)
		}
		return lut
	}

	limit := clipLimit * float64(count) / 256.0
	if limit < 1 {
		limit = 1
	}
	var excess float64
	for i := range hist {
		if hist[i] > limit {
			excess += hist[i] - limit
			hist[i] = limit
		}
	}
	redistribute := excess / 256.0

	scale := 255.0 / float64(count)
	var cum float64
	for i := 0; i < 256; i++ {
		cum += hist[i] + redistribute
		lut[i] = cum * scale
	}
	return lut
}

// AdaptiveThreshold binarizes a grayscale plane against a Gaussian-weighted
// local mean: a pixel becomes white when it is brighter than its
// neighborhood mean minus offset, black otherwise. This keeps dark print
// legible under uneven lighting where a single global threshold would wash
// out half the label.
func AdaptiveThreshold(plane [][]float64, blockSize int, offset float64) *image.Gray {
	height := len(plane)
	if height == 0 {
		return image.NewGray(image.Rect(0, 0, 0, 0))
	}
	width := len(plane[0])

	kernel := gaussianKernel1D(blockSize)
	mean := convolveCols(convolveRows(plane, kernel), kernel)

	result := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if plane[y][x] > mean[y][x]-offset {
				result.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return result
}

// PrepareForDetection produces the contrast-enhanced grayscale plane that
// region detection operates on: grayscale conversion, edge-preserving
// bilateral smoothing, then CLAHE so faint print on glossy or shadowed
// packaging still produces usable gradients.
func PrepareForDetection(img image.Image) [][]float64 {
	plane := GrayPlane(img)
	smoothed := BilateralFilter(plane, 9, 75, 75)
	return CLAHE(smoothed, 2.0, 8, 8)
}

// PrepareForRecognition applies the OCR preprocessing chain to a cropped
// region.
//
// # Algorithm
//
//  1. Upscale the crop to targetWidth with cubic interpolation when it is
//     narrower; small crops carry too few pixels per glyph for reliable
//     recognition
//  2. Convert to grayscale
//  3. Light Gaussian blur to suppress sensor noise
//  4. Adaptive threshold to a black-on-white binary image
//  5. Morphological open then close to remove speckle and reconnect broken
//     strokes
func PrepareForRecognition(img image.Image, targetWidth int) image.Image {
	if targetWidth > 0 && img.Bounds().Dx() < targetWidth {
		img = imaging.Resize(img, targetWidth, 0, imaging.CatmullRom)
	}

	gray := effect.Grayscale(img)
	blurred := blur.Gaussian(gray, 1.0)
	binary := AdaptiveThreshold(GrayPlane(blurred), thresholdBlockSize, thresholdOffset)

	opened := effect.Dilate(effect.Erode(binary, 1), 1)
	closed := effect.Erode(effect.Dilate(opened, 1), 1)
	return closed
}

// gaussianKernel1D builds a normalized 1D Gaussian kernel of the given odd
// size, with sigma derived from the size the same way common CV libraries
// do: sigma = 0.3*((size-1)*0.5 - 1) + 0.8.
func gaussianKernel1D(size int) []float64 {
	sigma := 0.3*(float64(size-1)*0.5-1) + 0.8
	half := size / 2

	kernel := make([]float64, size)
	var sum float64
	for i := 0; i < size; i++ {
		d := float64(i - half)
		kernel[i] = math.Exp(-(d * d) / (2 * sigma * sigma))
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

// convolveRows convolves each row with a 1D kernel, clamping at the edges.
func convolveRows(plane [][]float64, kernel []float64) [][]float64 {
	height := len(plane)
	if height == 0 {
		return plane
	}
	width := len(plane[0])
	half := len(kernel) / 2

	result := make([][]float64, height)
	for y := 0; y < height; y++ {
		result[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			var sum float64
			for k := 0; k < len(kernel); k++ {
				px := clampInt(x+k-half, 0, width-1)
				sum += plane[y][px] * kernel[k]
			}
			result[y][x] = sum
		}
	}
	return result
}

// convolveCols convolves each column with a 1D kernel, clamping at the edges.
func convolveCols(plane [][]float64, kernel []float64) [][]float64 {
	height := len(plane)
	if height == 0 {
		return plane
	}
	width := len(plane[0])
	half := len(kernel) / 2

	result := make([][]float64, height)
	for y := 0; y < height; y++ {
		result[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			var sum float64
			for k := 0; k < len(kernel); k++ {
				py := clampInt(y+k-half, 0, height-1)
				sum += plane[py][x] * kernel[k]
			}
			result[y][x] = sum
		}
	}
	return result
}

// clamp limits a float value to the given range.
func clamp(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// clampInt limits an integer value to the given range.
func clampInt(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
