package detection

import "image"

// Box represents an axis-aligned bounding box in pixel coordinates.
//
// The coordinate convention follows standard image layout:
//   - (X, Y) is the top-left corner
//   - X increases rightward, Y increases downward
//   - Width and Height are always positive for a valid box
type Box struct {
	X      int `json:"x"`      // Left edge
	Y      int `json:"y"`      // Top edge
	Width  int `json:"width"`  // Horizontal extent in pixels
	Height int `json:"height"` // Vertical extent in pixels
}

// Area returns the box area in square pixels.
func (b Box) Area() int {
	return b.Width * b.Height
}

// Rect converts the box to a standard library image.Rectangle.
func (b Box) Rect() image.Rectangle {
	return image.Rect(b.X, b.Y, b.X+b.Width, b.Y+b.Height)
}

// CenterX returns the horizontal center of the box.
func (b Box) CenterX() int {
	return b.X + b.Width/2
}

// CenterY returns the vertical center of the box.
func (b Box) CenterY() int {
	return b.Y + b.Height/2
}

// Pad grows the box by margin pixels on every side and clips the result to
// an image of the given dimensions. The returned box never extends past the
// image edges: X+Width <= imageWidth and Y+Height <= imageHeight.
func (b Box) Pad(margin, imageWidth, imageHeight int) Box {
	x := maxInt(0, b.X-margin)
	y := maxInt(0, b.Y-margin)
	w := minInt(imageWidth-x, b.Width+2*margin)
	h := minInt(imageHeight-y, b.Height+2*margin)
	return Box{X: x, Y: y, Width: w, Height: h}
}

// union returns the smallest box covering both a and b.
func union(a, b Box) Box {
	x1 := minInt(a.X, b.X)
	y1 := minInt(a.Y, b.Y)
	x2 := maxInt(a.X+a.Width, b.X+b.Width)
	y2 := maxInt(a.Y+a.Height, b.Y+b.Height)
	return Box{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// intersectionArea returns the overlapping area of a and b, 0 when disjoint.
func intersectionArea(a, b Box) int {
	x1 := maxInt(a.X, b.X)
	y1 := maxInt(a.Y, b.Y)
	x2 := minInt(a.X+a.Width, b.X+b.Width)
	y2 := minInt(a.Y+a.Height, b.Y+b.Height)
	if x1 >= x2 || y1 >= y2 {
		return 0
	}
	return (x2 - x1) * (y2 - y1)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
