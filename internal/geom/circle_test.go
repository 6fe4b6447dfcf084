package geom

import (
	"math"
	"testing"

	"github.com/ansel1/merry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindCircle3P(t *testing.T) {
	r, c, err := FindCircle3P(Point{0, 0}, Point{1, 0}, Point{0, 1})
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2/2, r, 1e-12)
	assert.InDelta(t, 0.5, c.X, 1e-12)
	assert.InDelta(t, 0.5, c.Y, 1e-12)
}

func TestFindCircle3PKnownCircle(t *testing.T) {
	// Three points on the circle of radius 3 around (1, -2).
	p := func(theta float64) Point {
		return Point{1 + 3*math.Cos(theta), -2 + 3*math.Sin(theta)}
	}
	r, c, err := FindCircle3P(p(0.3), p(1.1), p(2.4))
	require.NoError(t, err)
	assert.InDelta(t, 3.0, r, 1e-12)
	assert.InDelta(t, 1.0, c.X, 1e-12)
	assert.InDelta(t, -2.0, c.Y, 1e-12)
}

func TestFindCircle3PCollinear(t *testing.T) {
	_, _, err := FindCircle3P(Point{0, 0}, Point{1, 1}, Point{2, 2})
	require.Error(t, err)
	assert.True(t, merry.Is(err, ErrCollinear))
}

func TestCurvatureOfCircle(t *testing.T) {
	// Counterclockwise arc of the circle of radius 2: curvature +0.5
	// everywhere, exactly, since the osculating circle through exact
	// circle points is the circle itself.
	n := 21
	x := make([]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		theta := float64(i) / float64(n-1) * math.Pi / 2
		x[i] = 2 * math.Cos(theta)
		y[i] = 2 * math.Sin(theta)
	}

	curv, err := Curvature(x, y)
	require.NoError(t, err)
	require.Len(t, curv, n)
	for i, k := range curv {
		assert.InDelta(t, 0.5, k, 1e-9, "i=%d", i)
	}
}

func TestCurvatureSignFlipsClockwise(t *testing.T) {
	// The same arc traversed clockwise turns the curvature negative.
	n := 21
	x := make([]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		theta := math.Pi/2 - float64(i)/float64(n-1)*math.Pi/2
		x[i] = 2 * math.Cos(theta)
		y[i] = 2 * math.Sin(theta)
	}

	curv, err := Curvature(x, y)
	require.NoError(t, err)
	for i, k := range curv {
		assert.InDelta(t, -0.5, k, 1e-9, "i=%d", i)
	}
}

func TestCurvatureStraightLine(t *testing.T) {
	curv, err := Curvature([]float64{0, 1, 2, 3}, []float64{0, 1, 2, 3})
	require.NoError(t, err)
	for _, k := range curv {
		assert.Zero(t, k)
	}
}

func TestCurvatureTooFewPoints(t *testing.T) {
	_, err := Curvature([]float64{0, 1}, []float64{0, 0})
	require.Error(t, err)
	assert.True(t, merry.Is(err, ErrInvalidInput))
}
