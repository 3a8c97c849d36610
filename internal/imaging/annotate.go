package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/lucasb-eyer/go-colorful"
)

// annotateOutlineThickness is the border width in pixels for region overlays.
const annotateOutlineThickness = 2

// AnnotateRegions draws each rectangle's outline onto a copy of the image,
// cycling hues around the color wheel so adjacent regions stay visually
// distinct. Used for debugging detection output; the returned image is
// always a fresh RGBA copy.
func AnnotateRegions(img image.Image, regions []image.Rectangle) *image.RGBA {
	bounds := img.Bounds()
	result := image.NewRGBA(bounds)
	draw.Draw(result, bounds, img, bounds.Min, draw.Src)

	for i, r := range regions {
		hue := float64(i) * 360.0 / float64(len(regions))
		c := colorful.Hsv(hue, 0.9, 0.95)
		outline := color.RGBA{
			R: uint8(c.R * 255),
			G: uint8(c.G * 255),
			B: uint8(c.B * 255),
			A: 255,
		}
		drawRectOutline(result, r.Intersect(bounds), outline)
	}
	return result
}

// drawRectOutline draws the border of r onto img.
func drawRectOutline(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	if r.Empty() {
		return
	}
	for t := 0; t < annotateOutlineThickness; t++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, clampInt(r.Min.Y+t, r.Min.Y, r.Max.Y-1), c)
			img.SetRGBA(x, clampInt(r.Max.Y-1-t, r.Min.Y, r.Max.Y-1), c)
		}
		for y := r.Min.Y; y < r.Max.Y; y++ {
			img.SetRGBA(clampInt(r.Min.X+t, r.Min.X, r.Max.X-1), y, c)
			img.SetRGBA(clampInt(r.Max.X-1-t, r.Min.X, r.Max.X-1), y, c)
		}
	}
}

// SavePNG writes an image to path as PNG.
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
