package detection

import "testing"

func TestSortReadingOrder_RowsThenColumns(t *testing.T) {
	right := Box{X: 100, Y: 10, Width: 50, Height: 20}
	left := Box{X: 10, Y: 12, Width: 50, Height: 20} // same visual row, slightly lower
	below := Box{X: 10, Y: 60, Width: 50, Height: 20}

	sorted := sortReadingOrder([]Box{right, left, below})

	want := []Box{left, right, below}
	for i, b := range sorted {
		if b != want[i] {
			t.Errorf("position %d: got %+v, want %+v", i, b, want[i])
		}
	}
}

func TestSortReadingOrder_SingleColumn(t *testing.T) {
	boxes := []Box{
		{X: 10, Y: 200, Width: 80, Height: 20},
		{X: 10, Y: 10, Width: 80, Height: 20},
		{X: 10, Y: 100, Width: 80, Height: 20},
	}

	sorted := sortReadingOrder(boxes)
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Y < sorted[i-1].Y {
			t.Errorf("boxes out of vertical order: %+v before %+v", sorted[i-1], sorted[i])
		}
	}
}

func TestSortReadingOrder_IsPermutation(t *testing.T) {
	boxes := []Box{
		{X: 300, Y: 48, Width: 60, Height: 22},
		{X: 20, Y: 50, Width: 60, Height: 22},
		{X: 160, Y: 52, Width: 60, Height: 22},
		{X: 20, Y: 110, Width: 60, Height: 22},
		{X: 160, Y: 108, Width: 60, Height: 22},
	}

	sorted := sortReadingOrder(append([]Box(nil), boxes...))
	if len(sorted) != len(boxes) {
		t.Fatalf("sort changed box count: got %d, want %d", len(sorted), len(boxes))
	}

	counts := map[Box]int{}
	for _, b := range boxes {
		counts[b]++
	}
	for _, b := range sorted {
		counts[b]--
	}
	for b, n := range counts {
		if n != 0 {
			t.Errorf("box %+v appears %+d times after sorting", b, n)
		}
	}

	// Two rows of mixed x-order boxes: within each, x must increase.
	firstRow := sorted[:3]
	for i := 1; i < len(firstRow); i++ {
		if firstRow[i].X < firstRow[i-1].X {
			t.Errorf("first row out of horizontal order: %+v before %+v", firstRow[i-1], firstRow[i])
		}
	}
	secondRow := sorted[3:]
	for i := 1; i < len(secondRow); i++ {
		if secondRow[i].X < secondRow[i-1].X {
			t.Errorf("second row out of horizontal order: %+v before %+v", secondRow[i-1], secondRow[i])
		}
	}
}

func TestSortReadingOrder_Trivial(t *testing.T) {
	if got := sortReadingOrder(nil); len(got) != 0 {
		t.Errorf("nil input: got %d boxes", len(got))
	}

	one := []Box{{X: 5, Y: 5, Width: 10, Height: 10}}
	got := sortReadingOrder(one)
	if len(got) != 1 || got[0] != one[0] {
		t.Errorf("single box: got %+v", got)
	}
}
