package geom

import (
	"math"

	"github.com/ansel1/merry"
)

// Point is a 2D coordinate.
type Point struct {
	X float64
	Y float64
}

// FindCircle3P determines the radius and center of the circle passing
// through three points, by intersecting the perpendicular bisectors of
// p1p2 and p2p3. Returns ErrCollinear when the points lie on one line.
func FindCircle3P(p1, p2, p3 Point) (float64, Point, error) {
	x21 := p2.X - p1.X
	y21 := p2.Y - p1.Y
	x32 := p3.X - p2.X
	y32 := p3.Y - p2.Y

	if x21*y32-x32*y21 == 0 {
		return 0, Point{}, merry.Appendf(ErrCollinear, "p1=%v p2=%v p3=%v", p1, p2, p3)
	}

	xy21 := p2.X*p2.X - p1.X*p1.X + p2.Y*p2.Y - p1.Y*p1.Y
	xy32 := p3.X*p3.X - p2.X*p2.X + p3.Y*p3.Y - p2.Y*p2.Y

	y0 := (x32*xy21 - x21*xy32) / (2 * (y21*x32 - y32*x21))
	x0 := (xy21 - 2*y0*y21) / (2 * x21)
	r := math.Hypot(p1.X-x0, p1.Y-y0)

	return r, Point{X: x0, Y: y0}, nil
}

// Curvature computes the signed curvature at every point of a sampled
// curve. Each interior point uses the osculating circle through the point
// and its two neighbours (Heron's formula, curvature = 4*Area/(a*b*c));
// the sign is negative where the local turn is clockwise. The first and
// last points copy their nearest interior value. Needs at least 3 points.
func Curvature(x, y []float64) ([]float64, error) {
	n := len(x)
	if len(y) != n {
		return nil, merry.Appendf(ErrInvalidInput, "curvature: x and y sizes differ (%d vs %d)", n, len(y))
	}
	if n < 3 {
		return nil, merry.Appendf(ErrInvalidInput, "curvature needs at least 3 points, got %d", n)
	}

	curv := make([]float64, n)
	for i := 1; i < n-1; i++ {
		a := math.Hypot(x[i-1]-x[i], y[i-1]-y[i])
		b := math.Hypot(x[i]-x[i+1], y[i]-y[i+1])
		c := math.Hypot(x[i+1]-x[i-1], y[i+1]-y[i-1])
		p := 0.5 * (a + b + c)
		t := p * (p - a) * (p - b) * (p - c)

		var k float64
		if abc := a * b * c; abc > 1e-12 {
			// t can dip below zero by rounding when the points are
			// nearly collinear.
			k = 4 * math.Sqrt(math.Max(t, 0)) / abc
		}

		// Clockwise turn: cross product of (p[i]-p[i-1]) and (p[i+1]-p[i-1]).
		if (x[i]-x[i-1])*(y[i+1]-y[i-1]) < (y[i]-y[i-1])*(x[i+1]-x[i-1]) {
			k = -k
		}
		curv[i] = k
	}

	curv[0] = curv[1]
	curv[n-1] = curv[n-2]

	return curv, nil
}
