package geom

import (
	"sort"

	"github.com/ansel1/merry"
	"gonum.org/v1/gonum/interp"
)

// InterpCubic evaluates a cubic spline through the samples (x, y) at x0.
// x must be sorted in increasing order and x0 must lie inside
// [x[0], x[len-1]]; extrapolation is not supported.
func InterpCubic(x0 float64, x, y []float64) (float64, error) {
	spline, err := fitCubic(x, y)
	if err != nil {
		return 0, err
	}
	if x0 < x[0] || x0 > x[len(x)-1] {
		return 0, merry.Appendf(ErrInvalidInput, "interpolation query %g outside samples [%g, %g]", x0, x[0], x[len(x)-1])
	}
	return spline.Predict(x0), nil
}

// InterpCubicMulti evaluates the spline at every query point in x0.
func InterpCubicMulti(x0, x, y []float64) ([]float64, error) {
	spline, err := fitCubic(x, y)
	if err != nil {
		return nil, err
	}

	y0 := make([]float64, len(x0))
	for i, q := range x0 {
		if q < x[0] || q > x[len(x)-1] {
			return nil, merry.Appendf(ErrInvalidInput, "interpolation query %g outside samples [%g, %g]", q, x[0], x[len(x)-1])
		}
		y0[i] = spline.Predict(q)
	}
	return y0, nil
}

func fitCubic(x, y []float64) (*interp.NaturalCubic, error) {
	if len(x) != len(y) {
		return nil, merry.Appendf(ErrInvalidInput, "interpolation: x and y sizes differ (%d vs %d)", len(x), len(y))
	}
	if !sort.Float64sAreSorted(x) {
		return nil, merry.Append(ErrInvalidInput, "interpolation samples must be sorted by x")
	}

	var spline interp.NaturalCubic
	if err := spline.Fit(x, y); err != nil {
		return nil, merry.Prepend(err, "cubic spline fit")
	}
	return &spline, nil
}
