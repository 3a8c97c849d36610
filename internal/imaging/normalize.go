package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// DefaultTargetWidth is the canonical working width for label photographs.
// Detection thresholds are tuned for images at this resolution.
const DefaultTargetWidth = 1200

// ErrDecode reports that input bytes could not be decoded as a supported
// raster image.
var ErrDecode = errors.New("decode image")

// Normalized is a decoded image rescaled to the canonical working width.
//
// OriginalWidth and OriginalHeight record the dimensions as decoded, before
// any rescaling; downstream metadata reports those, while detection and
// recognition operate on Image so that boxes and crops share one coordinate
// space.
type Normalized struct {
	Image          image.Image
	OriginalWidth  int
	OriginalHeight int

	// Format is the registered name of the decoded encoding
	// ("png", "jpeg", "gif", "webp", "bmp", "tiff").
	Format string
}

// Normalize decodes raw image bytes and rescales them to targetWidth.
//
// Resize policy, chosen for consistent region-detection behavior across
// heterogeneous input resolutions:
//   - width below targetWidth: upscale to targetWidth with Catmull-Rom
//     (cubic) interpolation
//   - width above twice targetWidth: downscale to targetWidth with
//     area-averaging (box) interpolation
//   - otherwise the image is left unchanged
//
// Aspect ratio is always preserved. A targetWidth <= 0 selects
// DefaultTargetWidth.
//
// Returns an error wrapping ErrDecode when the bytes are not a supported
// image encoding.
func Normalize(data []byte, targetWidth int) (*Normalized, error) {
	if targetWidth <= 0 {
		targetWidth = DefaultTargetWidth
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	bounds := img.Bounds()
	origW := bounds.Dx()
	origH := bounds.Dy()

	switch {
	case origW < targetWidth:
		img = imaging.Resize(img, targetWidth, 0, imaging.CatmullRom)
	case origW > 2*targetWidth:
		img = imaging.Resize(img, targetWidth, 0, imaging.Box)
	}

	return &Normalized{
		Image:          img,
		OriginalWidth:  origW,
		OriginalHeight: origH,
		Format:         format,
	}, nil
}

// CropRect extracts a rectangular region from an image, clamping the
// rectangle to the image bounds first.
//
// Returns an error if the rectangle is empty after clamping; callers treat
// that as a failed region rather than an aborted run.
func CropRect(img image.Image, r image.Rectangle) (image.Image, error) {
	clamped := r.Intersect(img.Bounds())
	if clamped.Empty() {
		return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			r.Min.X, r.Min.Y, r.Max.X, r.Max.Y,
			img.Bounds().Min.X, img.Bounds().Min.Y, img.Bounds().Max.X, img.Bounds().Max.Y)
	}
	return imaging.Crop(img, clamped), nil
}
