package detection

import (
	"image/color"
	"testing"
)

func TestDetectBlobs_FindsDarkSquare(t *testing.T) {
	img := newTestImage(200, 200, color.White)
	fillRect(img, 40, 40, 30, 30, color.Black)

	d := NewDetector(DefaultParams())
	boxes := d.detectBlobs(img, 200, 200)

	// The square is dark at every threshold level; the per-level duplicates
	// must merge back into a single unpadded box.
	if len(boxes) != 1 {
		t.Fatalf("expected 1 merged blob, got %d: %+v", len(boxes), boxes)
	}
	want := Box{X: 40, Y: 40, Width: 30, Height: 30}
	if boxes[0] != want {
		t.Errorf("blob box: got %+v, want %+v", boxes[0], want)
	}
}

func TestDetectBlobs_RejectsTinySpeck(t *testing.T) {
	img := newTestImage(200, 200, color.White)
	fillRect(img, 100, 100, 5, 5, color.Black) // 25 px, below the blob floor

	d := NewDetector(DefaultParams())
	if boxes := d.detectBlobs(img, 200, 200); len(boxes) != 0 {
		t.Errorf("speck should be rejected, got %+v", boxes)
	}
}

func TestDetectBlobs_RejectsHugeFill(t *testing.T) {
	img := newTestImage(200, 200, color.White)
	fillRect(img, 10, 10, 180, 180, color.Black) // 81% of the image

	d := NewDetector(DefaultParams())
	if boxes := d.detectBlobs(img, 200, 200); len(boxes) != 0 {
		t.Errorf("near-full fill should be rejected, got %+v", boxes)
	}
}

func TestDetectBlobs_MidGraySeenAtSomeLevels(t *testing.T) {
	img := newTestImage(200, 200, color.White)
	// Luminance 100: dark only at threshold levels above 100.
	fillRect(img, 60, 60, 25, 25, color.RGBA{R: 100, G: 100, B: 100, A: 255})

	d := NewDetector(DefaultParams())
	boxes := d.detectBlobs(img, 200, 200)

	if len(boxes) != 1 {
		t.Fatalf("expected 1 merged blob, got %d", len(boxes))
	}
	want := Box{X: 60, Y: 60, Width: 25, Height: 25}
	if boxes[0] != want {
		t.Errorf("blob box: got %+v, want %+v", boxes[0], want)
	}
}

func TestDetect_FallsBackToBlobs(t *testing.T) {
	img := newTestImage(200, 200, color.White)
	fillRect(img, 40, 40, 30, 30, color.Black)

	// Raise the hysteresis thresholds beyond any possible gradient so the
	// edge path finds nothing and Detect must take the blob path.
	params := DefaultParams()
	params.CannyLow = 1e9
	params.CannyHigh = 1e9
	d := NewDetector(params)

	boxes := d.Detect(img)
	if len(boxes) != 1 {
		t.Fatalf("expected blob fallback to find 1 region, got %d: %+v", len(boxes), boxes)
	}
	want := Box{X: 40, Y: 40, Width: 30, Height: 30}
	if boxes[0] != want {
		t.Errorf("fallback box: got %+v, want %+v", boxes[0], want)
	}
}
