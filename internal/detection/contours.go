package detection

import "math"

// component is a connected region of set pixels in a binary mask: its
// bounding box plus the number of pixels it contains.
type component struct {
	box  Box
	size int
}

// cannyEdges runs Canny edge detection over a grayscale plane (0-255 values)
// and returns a binary edge mask.
//
// # Algorithm
//
//  1. Gaussian blur (5x5) to suppress noise
//  2. Sobel gradients for magnitude and direction
//  3. Non-maximum suppression to thin edges to single-pixel width
//  4. Hysteresis thresholding: magnitudes above high are edges, magnitudes
//     between low and high survive only next to a strong edge
func cannyEdges(plane [][]float64, low, high float64) [][]bool {
	height := len(plane)
	if height == 0 {
		return nil
	}
	width := len(plane[0])

	blurred := gaussianBlur(plane, width, height)
	magnitude, direction := sobelGradients(blurred, width, height)
	suppressed := nonMaxSuppression(magnitude, direction, width, height)

	edges := make([][]bool, height)
	for y := 0; y < height; y++ {
		edges[y] = make([]bool, width)
	}
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			mag := suppressed[y][x]
			if mag >= high {
				edges[y][x] = true
				continue
			}
			if mag < low {
				continue
			}
			// Weak edge: keep only when an 8-neighbor is strong.
			for dy := -1; dy <= 1 && !edges[y][x]; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if suppressed[y+dy][x+dx] >= high {
						edges[y][x] = true
						break
					}
				}
			}
		}
	}
	return edges
}

// gaussianBlur applies a 5x5 Gaussian kernel to reduce noise.
func gaussianBlur(gray [][]float64, width, height int) [][]float64 {
	kernel := [5][5]float64{
		{1, 4, 7, 4, 1},
		{4, 16, 26, 16, 4},
		{7, 26, 41, 26, 7},
		{4, 16, 26, 16, 4},
		{1, 4, 7, 4, 1},
	}
	kernelSum := 273.0

	result := make([][]float64, height)
	for y := 0; y < height; y++ {
		result[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			var sum float64
			for ky := -2; ky <= 2; ky++ {
				for kx := -2; kx <= 2; kx++ {
					py := clamp(y+ky, 0, height-1)
					px := clamp(x+kx, 0, width-1)
					sum += gray[py][px] * kernel[ky+2][kx+2]
				}
			}
			result[y][x] = sum / kernelSum
		}
	}
	return result
}

// sobelGradients computes gradient magnitude and direction with 3x3 Sobel
// kernels.
func sobelGradients(gray [][]float64, width, height int) (magnitude, direction [][]float64) {
	sobelX := [3][3]float64{{-1, 0, 1}, {-2, 0, 2}, {-1, 0, 1}}
	sobelY := [3][3]float64{{-1, -2, -1}, {0, 0, 0}, {1, 2, 1}}

	magnitude = make([][]float64, height)
	direction = make([][]float64, height)
	for y := 0; y < height; y++ {
		magnitude[y] = make([]float64, width)
		direction[y] = make([]float64, width)
	}

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			var gx, gy float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					v := gray[y+ky][x+kx]
					gx += v * sobelX[ky+1][kx+1]
					gy += v * sobelY[ky+1][kx+1]
				}
			}
			magnitude[y][x] = math.Sqrt(gx*gx + gy*gy)
			direction[y][x] = math.Atan2(gy, gx)
		}
	}
	return magnitude, direction
}

// nonMaxSuppression thins edges by keeping only pixels that are local maxima
// along their gradient direction.
func nonMaxSuppression(magnitude, direction [][]float64, width, height int) [][]float64 {
	result := make([][]float64, height)
	for y := 0; y < height; y++ {
		result[y] = make([]float64, width)
	}

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			angle := direction[y][x] * 180 / math.Pi
			if angle < 0 {
				angle += 180
			}

			var neighbor1, neighbor2 float64
			switch {
			case angle < 22.5 || angle >= 157.5: // Horizontal gradient
				neighbor1 = magnitude[y][x-1]
				neighbor2 = magnitude[y][x+1]
			case angle < 67.5: // Diagonal /
				neighbor1 = magnitude[y-1][x+1]
				neighbor2 = magnitude[y+1][x-1]
			case angle < 112.5: // Vertical gradient
				neighbor1 = magnitude[y-1][x]
				neighbor2 = magnitude[y+1][x]
			default: // Diagonal \
				neighbor1 = magnitude[y-1][x-1]
				neighbor2 = magnitude[y+1][x+1]
			}

			if magnitude[y][x] >= neighbor1 && magnitude[y][x] >= neighbor2 {
				result[y][x] = magnitude[y][x]
			}
		}
	}
	return result
}

// dilateMask grows set pixels with a rectangular kernel of the given width
// and height, repeated for the given number of passes. A wide flat kernel
// bridges the gaps between adjacent characters and words so a line of text
// becomes one connected region.
func dilateMask(mask [][]bool, kernelWidth, kernelHeight, passes int) [][]bool {
	rx := kernelWidth / 2
	ry := kernelHeight / 2
	for p := 0; p < passes; p++ {
		mask = maxFilterRows(mask, rx)
		mask = maxFilterCols(mask, ry)
	}
	return mask
}

// maxFilterRows sets each pixel that has a set pixel within radius in its
// row, using a sliding window count.
func maxFilterRows(mask [][]bool, radius int) [][]bool {
	height := len(mask)
	if height == 0 || radius <= 0 {
		return mask
	}
	width := len(mask[0])

	result := make([][]bool, height)
	for y := 0; y < height; y++ {
		result[y] = make([]bool, width)
		count := 0
		for x := 0; x <= minInt(radius, width-1); x++ {
			if mask[y][x] {
				count++
			}
		}
		for x := 0; x < width; x++ {
			result[y][x] = count > 0
			if enter := x + radius + 1; enter < width && mask[y][enter] {
				count++
			}
			if leave := x - radius; leave >= 0 && mask[y][leave] {
				count--
			}
		}
	}
	return result
}

// maxFilterCols sets each pixel that has a set pixel within radius in its
// column.
func maxFilterCols(mask [][]bool, radius int) [][]bool {
	height := len(mask)
	if height == 0 || radius <= 0 {
		return mask
	}
	width := len(mask[0])

	result := make([][]bool, height)
	for y := 0; y < height; y++ {
		result[y] = make([]bool, width)
	}
	for x := 0; x < width; x++ {
		count := 0
		for y := 0; y <= minInt(radius, height-1); y++ {
			if mask[y][x] {
				count++
			}
		}
		for y := 0; y < height; y++ {
			result[y][x] = count > 0
			if enter := y + radius + 1; enter < height && mask[enter][x] {
				count++
			}
			if leave := y - radius; leave >= 0 && mask[leave][x] {
				count--
			}
		}
	}
	return result
}

// connectedComponents finds 8-connected regions of set pixels and returns
// each region's bounding box and pixel count. Uses an explicit stack to
// avoid recursion depth issues on large regions.
func connectedComponents(mask [][]bool) []component {
	height := len(mask)
	if height == 0 {
		return nil
	}
	width := len(mask[0])

	visited := make([][]bool, height)
	for y := 0; y < height; y++ {
		visited[y] = make([]bool, width)
	}

	var comps []component
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !mask[y][x] || visited[y][x] {
				continue
			}
			comps = append(comps, traceComponent(mask, visited, x, y, width, height))
		}
	}
	return comps
}

// traceComponent flood-fills one component starting from (startX, startY),
// tracking its extent and size.
func traceComponent(mask, visited [][]bool, startX, startY, width, height int) component {
	minX, minY := startX, startY
	maxX, maxY := startX, startY
	size := 0

	stack := [][2]int{{startX, startY}}
	visited[startY][startX] = true
	for len(stack) > 0 {
		point := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		px, py := point[0], point[1]

		size++
		minX = minInt(minX, px)
		minY = minInt(minY, py)
		maxX = maxInt(maxX, px)
		maxY = maxInt(maxY, py)

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := px+dx, py+dy
				if nx < 0 || nx >= width || ny < 0 || ny >= height {
					continue
				}
				if !mask[ny][nx] || visited[ny][nx] {
					continue
				}
				visited[ny][nx] = true
				stack = append(stack, [2]int{nx, ny})
			}
		}
	}

	return component{
		box:  Box{X: minX, Y: minY, Width: maxX - minX + 1, Height: maxY - minY + 1},
		size: size,
	}
}

// clamp limits an integer value to the given range.
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
