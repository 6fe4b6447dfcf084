// Package geom provides the numeric-geometry primitives the airfoil engine
// is built on: clustered point distributions, circle fitting, discrete
// curvature, cubic interpolation and planar placement transforms.
package geom

import "github.com/ansel1/merry"

var (
	// ErrInvalidInput marks structurally invalid input: mismatched array
	// sizes, too few points, out-of-range queries. Callers test for it
	// with merry.Is.
	ErrInvalidInput = merry.New("invalid input")

	// ErrCollinear is returned when a circle is requested through three
	// points lying on one line.
	ErrCollinear = merry.New("three points are collinear")
)
