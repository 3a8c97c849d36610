package detection

import "sort"

// sortReadingOrder arranges boxes top-to-bottom, left-to-right.
//
// Boxes are first sorted by top edge, then grouped into rows: a box joins
// the current row when its vertical center is within half the mean box
// height of the row's anchor (the center of the row's first box). Each row
// is then sorted by left edge. This keeps side-by-side fields like
// "MRP: ..." and "Net Wt: ..." in their natural reading sequence instead of
// interleaving them by raw y coordinate.
func sortReadingOrder(boxes []Box) []Box {
	if len(boxes) <= 1 {
		return boxes
	}

	var totalHeight int
	for _, b := range boxes {
		totalHeight += b.Height
	}
	rowThreshold := float64(totalHeight) / float64(len(boxes)) * 0.5

	byTop := append([]Box(nil), boxes...)
	sort.SliceStable(byTop, func(i, j int) bool { return byTop[i].Y < byTop[j].Y })

	var rows [][]Box
	var currentRow []Box
	var anchorY float64

	for _, b := range byTop {
		centerY := float64(b.CenterY())
		if len(currentRow) > 0 && absFloat(centerY-anchorY) < rowThreshold {
			currentRow = append(currentRow, b)
			continue
		}
		if len(currentRow) > 0 {
			rows = append(rows, currentRow)
		}
		currentRow = []Box{b}
		anchorY = centerY
	}
	rows = append(rows, currentRow)

	sorted := make([]Box, 0, len(boxes))
	for _, row := range rows {
		sort.SliceStable(row, func(i, j int) bool { return row[i].X < row[j].X })
		sorted = append(sorted, row...)
	}
	return sorted
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
