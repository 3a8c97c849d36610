package detection

import "testing"

// assertNoExcessiveOverlap verifies the merge postcondition: no two boxes
// overlap by more than the threshold relative to the smaller box.
func assertNoExcessiveOverlap(t *testing.T, boxes []Box, threshold float64) {
	t.Helper()
	for i := 0; i < len(boxes); i++ {
		for j := i + 1; j < len(boxes); j++ {
			if ratio := overlapRatio(boxes[i], boxes[j]); ratio > threshold {
				t.Errorf("boxes %d and %d still overlap by %.2f after merge", i, j, ratio)
			}
		}
	}
}

func TestMergeOverlapping_AbsorbsDuplicates(t *testing.T) {
	boxes := []Box{
		{X: 10, Y: 10, Width: 100, Height: 30},
		{X: 20, Y: 12, Width: 100, Height: 30}, // mostly the same region
	}

	merged := mergeOverlapping(boxes, 0.5)
	if len(merged) != 1 {
		t.Fatalf("expected 1 merged box, got %d", len(merged))
	}
	want := Box{X: 10, Y: 10, Width: 110, Height: 32}
	if merged[0] != want {
		t.Errorf("merged box: got %+v, want %+v", merged[0], want)
	}
}

func TestMergeOverlapping_KeepsDistinct(t *testing.T) {
	boxes := []Box{
		{X: 10, Y: 10, Width: 50, Height: 20},
		{X: 100, Y: 10, Width: 50, Height: 20},
		{X: 10, Y: 60, Width: 50, Height: 20},
	}

	merged := mergeOverlapping(boxes, 0.5)
	if len(merged) != 3 {
		t.Fatalf("expected 3 distinct boxes, got %d", len(merged))
	}
	for i, b := range merged {
		if b != boxes[i] {
			t.Errorf("box %d changed: got %+v, want %+v", i, b, boxes[i])
		}
	}
}

func TestMergeOverlapping_ThresholdIsStrict(t *testing.T) {
	// Intersection is exactly half the smaller box; the criterion requires
	// strictly more, so these stay separate.
	boxes := []Box{
		{X: 0, Y: 0, Width: 10, Height: 10},
		{X: 5, Y: 0, Width: 10, Height: 10},
	}

	merged := mergeOverlapping(boxes, 0.5)
	if len(merged) != 2 {
		t.Fatalf("boxes at exactly the threshold should not merge, got %d boxes", len(merged))
	}
}

func TestMergeOverlapping_ChainsAcrossPasses(t *testing.T) {
	// C overlaps neither A nor B by more than half, but it does overlap
	// their union, so the merge only completes on a second pass.
	c := Box{X: 2, Y: 5, Width: 10, Height: 8}
	a := Box{X: 0, Y: 0, Width: 10, Height: 10}
	b := Box{X: 4, Y: 0, Width: 10, Height: 10}

	if ratio := overlapRatio(c, a); ratio > 0.5 {
		t.Fatalf("fixture broken: C overlaps A by %.2f", ratio)
	}
	if ratio := overlapRatio(c, b); ratio > 0.5 {
		t.Fatalf("fixture broken: C overlaps B by %.2f", ratio)
	}

	merged := mergeOverlapping([]Box{c, a, b}, 0.5)
	if len(merged) != 1 {
		t.Fatalf("expected chain to collapse to 1 box, got %d", len(merged))
	}
	want := Box{X: 0, Y: 0, Width: 14, Height: 13}
	if merged[0] != want {
		t.Errorf("chained union: got %+v, want %+v", merged[0], want)
	}
}

func TestMergeOverlapping_Postcondition(t *testing.T) {
	// A messy cluster plus outliers: whatever the grouping, the
	// postcondition must hold.
	boxes := []Box{
		{X: 0, Y: 0, Width: 40, Height: 20},
		{X: 10, Y: 2, Width: 40, Height: 20},
		{X: 20, Y: 4, Width: 40, Height: 20},
		{X: 30, Y: 6, Width: 40, Height: 20},
		{X: 200, Y: 0, Width: 30, Height: 30},
		{X: 0, Y: 100, Width: 25, Height: 25},
		{X: 5, Y: 105, Width: 25, Height: 25},
	}

	merged := mergeOverlapping(boxes, 0.5)
	if len(merged) == 0 || len(merged) > len(boxes) {
		t.Fatalf("merge produced %d boxes from %d", len(merged), len(boxes))
	}
	assertNoExcessiveOverlap(t, merged, 0.5)
}

func TestMergeOverlapping_Empty(t *testing.T) {
	if merged := mergeOverlapping(nil, 0.5); len(merged) != 0 {
		t.Errorf("expected no boxes, got %d", len(merged))
	}
	one := []Box{{X: 1, Y: 2, Width: 3, Height: 4}}
	if merged := mergeOverlapping(one, 0.5); len(merged) != 1 || merged[0] != one[0] {
		t.Errorf("single box should pass through unchanged, got %+v", merged)
	}
}

func TestOverlapRatio(t *testing.T) {
	a := Box{X: 0, Y: 0, Width: 20, Height: 10} // area 200
	b := Box{X: 10, Y: 0, Width: 10, Height: 10} // area 100, half inside a

	if ratio := overlapRatio(a, b); ratio != 1.0 {
		t.Errorf("contained overlap: got %.2f, want 1.0", ratio)
	}

	c := Box{X: 15, Y: 0, Width: 10, Height: 10} // area 100, 50 inside a
	if ratio := overlapRatio(a, c); ratio != 0.5 {
		t.Errorf("half overlap: got %.2f, want 0.5", ratio)
	}

	d := Box{X: 100, Y: 100, Width: 10, Height: 10}
	if ratio := overlapRatio(a, d); ratio != 0 {
		t.Errorf("disjoint overlap: got %.2f, want 0", ratio)
	}
}
