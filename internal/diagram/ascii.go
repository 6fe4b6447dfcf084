// Package diagram renders airfoil geometry as image files and quick
// terminal sketches.
package diagram

import (
	"fmt"
	"strings"
)

// DrawASCIIFoil sketches the airfoil profile on a character grid of the
// given size. The vertical scale is stretched to the foil's own y range,
// so the sketch shows shape, not true proportions.
func DrawASCIIFoil(x, yu, yl []float64, width, height int) string {
	if len(x) < 2 || width < 2 || height < 2 {
		return ""
	}

	yMin, yMax := yl[0], yu[0]
	for i := range x {
		if yl[i] < yMin {
			yMin = yl[i]
		}
		if yu[i] > yMax {
			yMax = yu[i]
		}
	}
	if yMax == yMin {
		yMax = yMin + 1
	}

	grid := make([][]byte, height)
	for r := range grid {
		grid[r] = []byte(strings.Repeat(" ", width))
	}

	xMin, xMax := x[0], x[len(x)-1]
	col := func(xv float64) int {
		c := int((xv - xMin) / (xMax - xMin) * float64(width-1))
		if c < 0 {
			c = 0
		}
		if c >= width {
			c = width - 1
		}
		return c
	}
	row := func(yv float64) int {
		// Row 0 is the top of the sketch.
		r := int((yMax - yv) / (yMax - yMin) * float64(height-1))
		if r < 0 {
			r = 0
		}
		if r >= height {
			r = height - 1
		}
		return r
	}

	for i := range x {
		grid[row(yu[i])][col(x[i])] = '*'
		grid[row(yl[i])][col(x[i])] = '*'
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "  y: [%.4f, %.4f]\n", yMin, yMax)
	for _, line := range grid {
		sb.WriteString("  ")
		sb.Write(line)
		sb.WriteByte('\n')
	}
	sb.WriteString("  x: [")
	fmt.Fprintf(&sb, "%.3f .. %.3f]\n", xMin, xMax)

	return sb.String()
}
