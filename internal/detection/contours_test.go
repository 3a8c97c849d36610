package detection

import "testing"

// newPlane creates a grayscale grid filled with a constant value.
func newPlane(width, height int, value float64) [][]float64 {
	plane := make([][]float64, height)
	for y := range plane {
		plane[y] = make([]float64, width)
		for x := range plane[y] {
			plane[y][x] = value
		}
	}
	return plane
}

// newMask creates an empty binary mask.
func newMask(width, height int) [][]bool {
	mask := make([][]bool, height)
	for y := range mask {
		mask[y] = make([]bool, width)
	}
	return mask
}

func TestCannyEdges_UniformPlane(t *testing.T) {
	edges := cannyEdges(newPlane(60, 40, 128), 50, 150)

	for y := range edges {
		for x := range edges[y] {
			if edges[y][x] {
				t.Fatalf("uniform plane produced an edge at (%d,%d)", x, y)
			}
		}
	}
}

func TestCannyEdges_StepEdge(t *testing.T) {
	plane := newPlane(60, 40, 0)
	for y := 0; y < 40; y++ {
		for x := 30; x < 60; x++ {
			plane[y][x] = 255
		}
	}

	edges := cannyEdges(plane, 50, 150)

	found := 0
	for y := 5; y < 35; y++ {
		for x := 25; x <= 35; x++ {
			if edges[y][x] {
				found++
			}
		}
	}
	if found == 0 {
		t.Fatal("no edges found along a full-contrast step")
	}

	// Nothing should fire far from the boundary.
	for y := 5; y < 35; y++ {
		for _, x := range []int{5, 10, 50, 55} {
			if edges[y][x] {
				t.Errorf("spurious edge at (%d,%d), far from the step", x, y)
			}
		}
	}
}

func TestDilateMask_SinglePixel(t *testing.T) {
	mask := newMask(60, 60)
	mask[30][30] = true

	// One pass of a 15x3 kernel reaches 7 horizontally and 1 vertically.
	dilated := dilateMask(mask, 15, 3, 1)

	wantSet := [][2]int{{30, 30}, {23, 30}, {37, 30}, {30, 29}, {30, 31}, {23, 29}, {37, 31}}
	for _, p := range wantSet {
		if !dilated[p[1]][p[0]] {
			t.Errorf("pixel (%d,%d) should be set after dilation", p[0], p[1])
		}
	}
	wantClear := [][2]int{{22, 30}, {38, 30}, {30, 28}, {30, 32}}
	for _, p := range wantClear {
		if dilated[p[1]][p[0]] {
			t.Errorf("pixel (%d,%d) should not be set after one pass", p[0], p[1])
		}
	}
}

func TestDilateMask_PassesAccumulate(t *testing.T) {
	mask := newMask(60, 60)
	mask[30][30] = true

	dilated := dilateMask(mask, 15, 3, 2)

	if !dilated[30][16] || !dilated[30][44] {
		t.Error("two passes should reach 14 pixels horizontally")
	}
	if dilated[30][15] || dilated[30][45] {
		t.Error("two passes should not reach past 14 pixels horizontally")
	}
	if !dilated[28][30] || !dilated[32][30] {
		t.Error("two passes should reach 2 pixels vertically")
	}
}

func TestDilateMask_BridgesGaps(t *testing.T) {
	// Two pixels 10 apart horizontally: a single 15-wide pass connects
	// them into one component.
	mask := newMask(60, 20)
	mask[10][20] = true
	mask[10][30] = true

	dilated := dilateMask(mask, 15, 3, 1)
	comps := connectedComponents(dilated)
	if len(comps) != 1 {
		t.Fatalf("expected gap to be bridged into 1 component, got %d", len(comps))
	}
}

func TestConnectedComponents_SeparateBlobs(t *testing.T) {
	mask := newMask(50, 50)
	for y := 5; y < 10; y++ {
		for x := 5; x < 15; x++ {
			mask[y][x] = true
		}
	}
	for y := 30; y < 40; y++ {
		for x := 30; x < 36; x++ {
			mask[y][x] = true
		}
	}

	comps := connectedComponents(mask)
	if len(comps) != 2 {
		t.Fatalf("expected 2 components, got %d", len(comps))
	}

	first := comps[0]
	if first.box != (Box{X: 5, Y: 5, Width: 10, Height: 5}) {
		t.Errorf("first component box: got %+v", first.box)
	}
	if first.size != 50 {
		t.Errorf("first component size: got %d, want 50", first.size)
	}

	second := comps[1]
	if second.box != (Box{X: 30, Y: 30, Width: 6, Height: 10}) {
		t.Errorf("second component box: got %+v", second.box)
	}
	if second.size != 60 {
		t.Errorf("second component size: got %d, want 60", second.size)
	}
}

func TestConnectedComponents_DiagonalConnectivity(t *testing.T) {
	// Diagonally touching pixels belong to one component under
	// 8-connectivity.
	mask := newMask(10, 10)
	mask[2][2] = true
	mask[3][3] = true
	mask[4][4] = true

	comps := connectedComponents(mask)
	if len(comps) != 1 {
		t.Fatalf("expected 1 component, got %d", len(comps))
	}
	if comps[0].size != 3 {
		t.Errorf("component size: got %d, want 3", comps[0].size)
	}
	if comps[0].box != (Box{X: 2, Y: 2, Width: 3, Height: 3}) {
		t.Errorf("component box: got %+v", comps[0].box)
	}
}

func TestConnectedComponents_Empty(t *testing.T) {
	if comps := connectedComponents(newMask(20, 20)); len(comps) != 0 {
		t.Errorf("empty mask: got %d components", len(comps))
	}
	if comps := connectedComponents(nil); comps != nil {
		t.Errorf("nil mask: got %v", comps)
	}
}
