package detection

// mergeOverlapping collapses boxes that substantially overlap into their
// unions. Two boxes are considered duplicates of one region when their
// intersection covers more than overlapThreshold of the smaller box.
//
// Each pass greedily absorbs every not-yet-consumed box that overlaps the
// current (progressively expanded) union; passes repeat until stable, so no
// two boxes in the result exceed the threshold even when a union grown late
// in a pass comes to overlap an earlier survivor.
func mergeOverlapping(boxes []Box, overlapThreshold float64) []Box {
	for {
		merged, changed := mergePass(boxes, overlapThreshold)
		if !changed {
			return merged
		}
		boxes = merged
	}
}

// mergePass performs one greedy absorption sweep and reports whether any
// boxes were merged.
func mergePass(boxes []Box, overlapThreshold float64) ([]Box, bool) {
	if len(boxes) <= 1 {
		return boxes, false
	}

	merged := make([]Box, 0, len(boxes))
	used := make([]bool, len(boxes))
	changed := false

	for i, current := range boxes {
		if used[i] {
			continue
		}
		used[i] = true

		for j := i + 1; j < len(boxes); j++ {
			if used[j] {
				continue
			}
			if overlapRatio(current, boxes[j]) > overlapThreshold {
				current = union(current, boxes[j])
				used[j] = true
				changed = true
			}
		}
		merged = append(merged, current)
	}
	return merged, changed
}

// overlapRatio returns the intersection area of a and b relative to the
// smaller of the two boxes. Returns 0 for disjoint or degenerate boxes.
func overlapRatio(a, b Box) float64 {
	smaller := minInt(a.Area(), b.Area())
	if smaller <= 0 {
		return 0
	}
	return float64(intersectionArea(a, b)) / float64(smaller)
}
