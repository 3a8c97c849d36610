package imaging

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"testing"
)

// uniformImage creates a solid-color RGBA image.
func uniformImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img
}

// constPlane creates a grayscale grid filled with one value.
func constPlane(width, height int, value float64) [][]float64 {
	plane := make([][]float64, height)
	for y := range plane {
		plane[y] = make([]float64, width)
		for x := range plane[y] {
			plane[y][x] = value
		}
	}
	return plane
}

func TestGrayPlane(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.SetRGBA(1, 0, color.RGBA{R: 0, G: 0, B: 0, A: 255})
	img.SetRGBA(2, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})

	plane := GrayPlane(img)
	if len(plane) != 1 || len(plane[0]) != 3 {
		t.Fatalf("plane shape: got %dx%d", len(plane), len(plane[0]))
	}

	if math.Abs(plane[0][0]-255) > 0.01 {
		t.Errorf("white: got %.2f, want 255", plane[0][0])
	}
	if math.Abs(plane[0][1]) > 0.01 {
		t.Errorf("black: got %.2f, want 0", plane[0][1])
	}
	// Pure red under BT.601 weights.
	if math.Abs(plane[0][2]-0.299*255) > 0.5 {
		t.Errorf("red: got %.2f, want %.2f", plane[0][2], 0.299*255)
	}
}

func TestBilateralFilter_PreservesConstantPlane(t *testing.T) {
	plane := constPlane(30, 20, 180)

	filtered := BilateralFilter(plane, 9, 75, 75)
	for y := range filtered {
		for x := range filtered[y] {
			if math.Abs(filtered[y][x]-180) > 0.01 {
				t.Fatalf("constant plane changed at (%d,%d): %.4f", x, y, filtered[y][x])
			}
		}
	}
}

func TestBilateralFilter_PreservesStepEdge(t *testing.T) {
	plane := constPlane(40, 20, 0)
	for y := 0; y < 20; y++ {
		for x := 20; x < 40; x++ {
			plane[y][x] = 255
		}
	}

	filtered := BilateralFilter(plane, 9, 75, 75)

	// The intensity term keeps opposite sides of a full-contrast edge from
	// bleeding into each other.
	if filtered[10][18] > 20 {
		t.Errorf("dark side near edge rose to %.2f", filtered[10][18])
	}
	if filtered[10][21] < 235 {
		t.Errorf("bright side near edge fell to %.2f", filtered[10][21])
	}
}

func TestCLAHE_StaysInRangeAndMonotone(t *testing.T) {
	// Horizontal gradient 0..255.
	plane := make([][]float64, 64)
	for y := range plane {
		plane[y] = make([]float64, 256)
		for x := range plane[y] {
			plane[y][x] = float64(x)
		}
	}

	out := CLAHE(plane, 2.0, 8, 8)

	for y := range out {
		for x := range out[y] {
			if out[y][x] < 0 || out[y][x] > 255 {
				t.Fatalf("value out of range at (%d,%d): %.2f", x, y, out[y][x])
			}
		}
	}

	// Along a row, equalization must not reverse the ordering by more than
	// interpolation jitter.
	row := out[32]
	for x := 1; x < len(row); x++ {
		if row[x] < row[x-1]-1.0 {
			t.Fatalf("ordering reversed at x=%d: %.2f -> %.2f", x, row[x-1], row[x])
		}
	}
}

func TestCLAHE_ConstantPlaneStaysFlat(t *testing.T) {
	out := CLAHE(constPlane(64, 64, 128), 2.0, 8, 8)

	first := out[0][0]
	for y := range out {
		for x := range out[y] {
			if math.Abs(out[y][x]-first) > 0.01 {
				t.Fatalf("constant plane became uneven at (%d,%d): %.2f vs %.2f",
					x, y, out[y][x], first)
			}
		}
	}
}

func TestAdaptiveThreshold_SeparatesThinStrokes(t *testing.T) {
	// A 3px-high dark stroke on a light background: the stroke must come
	// out black, the background white.
	plane := constPlane(60, 50, 200)
	for y := 20; y < 23; y++ {
		for x := 0; x < 60; x++ {
			plane[y][x] = 0
		}
	}

	binary := AdaptiveThreshold(plane, 11, 2)

	if got := binary.GrayAt(30, 21).Y; got != 0 {
		t.Errorf("stroke pixel: got %d, want 0", got)
	}
	if got := binary.GrayAt(30, 40).Y; got != 255 {
		t.Errorf("background pixel: got %d, want 255", got)
	}
}

func TestAdaptiveThreshold_UniformPlaneIsWhite(t *testing.T) {
	// With no local variation every pixel sits above mean minus offset.
	binary := AdaptiveThreshold(constPlane(30, 30, 128), 11, 2)

	for y := 0; y < 30; y++ {
		for x := 0; x < 30; x++ {
			if binary.GrayAt(x, y).Y != 255 {
				t.Fatalf("uniform plane pixel (%d,%d) is not white", x, y)
			}
		}
	}
}

func TestPrepareForRecognition_UpscalesNarrowCrops(t *testing.T) {
	img := uniformImage(100, 40, color.White)

	prepared := PrepareForRecognition(img, 1200)
	if prepared.Bounds().Dx() != 1200 {
		t.Errorf("width: got %d, want 1200", prepared.Bounds().Dx())
	}
}

func TestPrepareForRecognition_KeepsWideCrops(t *testing.T) {
	img := uniformImage(1300, 200, color.White)

	prepared := PrepareForRecognition(img, 1200)
	if prepared.Bounds().Dx() != 1300 {
		t.Errorf("width: got %d, want 1300", prepared.Bounds().Dx())
	}
}

func TestPrepareForDetection_Shape(t *testing.T) {
	img := uniformImage(120, 90, color.White)

	plane := PrepareForDetection(img)
	if len(plane) != 90 || len(plane[0]) != 120 {
		t.Errorf("plane shape: got %dx%d, want 120x90", len(plane[0]), len(plane))
	}
}

func TestGaussianKernel1D(t *testing.T) {
	kernel := gaussianKernel1D(11)

	if len(kernel) != 11 {
		t.Fatalf("kernel length: got %d, want 11", len(kernel))
	}

	var sum float64
	for _, v := range kernel {
		sum += v
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("kernel sum: got %.12f, want 1", sum)
	}

	for i := 0; i < 5; i++ {
		if math.Abs(kernel[i]-kernel[10-i]) > 1e-12 {
			t.Errorf("kernel asymmetric at %d: %.12f vs %.12f", i, kernel[i], kernel[10-i])
		}
	}
	for i := 1; i <= 5; i++ {
		if kernel[i] < kernel[i-1] {
			t.Errorf("kernel should rise toward the center, fell at %d", i)
		}
	}
}
