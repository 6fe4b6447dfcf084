package foil

import (
	"math"

	"github.com/ansel1/merry"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/aerogeom/gocst/internal/geom"
)

// Class function exponents of the CST parametrization (Kulfan, 2008).
// N1=0.5, N2=1.0 gives the round-nose, sharp-tail class used for airfoils.
const (
	ClassN1 = 0.5
	ClassN2 = 1.0
)

// CSTCurve samples a single CST curve on n points:
//
//	y(x) = x^N1 (1-x)^N2 * sum_i coef[i] C(order,i) x^i (1-x)^(order-i)
//
// where order = len(coef)-1. x is an optional distribution of size n on
// [0,1]; nil selects the clustered default. The first and last ordinates
// are pinned to zero, which closes the leading edge and gives the bare
// trailing edge zero thickness before any tail is added.
func CSTCurve(n int, coef, x []float64) ([]float64, []float64, error) {
	return cstCurve(n, coef, x, ClassN1, ClassN2)
}

func cstCurve(n int, coef, x []float64, xn1, xn2 float64) ([]float64, []float64, error) {
	if n < 2 {
		return nil, nil, merry.Appendf(geom.ErrInvalidInput, "CST curve needs at least 2 points, got %d", n)
	}
	if len(coef) == 0 {
		return nil, nil, merry.Append(geom.ErrInvalidInput, "CST curve needs at least one coefficient")
	}
	if x == nil {
		x = geom.ClusteredDistribution(n)
	} else if len(x) != n {
		return nil, nil, merry.Appendf(geom.ErrInvalidInput, "point distribution size %d does not match requested point count %d", len(x), n)
	}

	order := len(coef) - 1
	y := make([]float64, n)
	for ip := 0; ip < n; ip++ {
		var shape float64
		for i, c := range coef {
			shape += c * float64(combin.Binomial(order, i)) *
				math.Pow(x[ip], float64(i)) * math.Pow(1-x[ip], float64(order-i))
		}
		class := math.Pow(x[ip], xn1) * math.Pow(1-x[ip], xn2)
		y[ip] = class * shape
	}

	// The class function only vanishes to rounding error at the ends.
	y[0] = 0
	y[n-1] = 0

	return x, y, nil
}

// FitCurve recovers CST coefficients from a sampled curve by linear least
// squares. x is rescaled to [0,1] over its own range and the linear trend
// implied by the final y value is removed before solving, so curves
// carrying a tail wedge fit cleanly. order is the number of coefficients;
// keep it modest (<= ~10) relative to the sample count, the system is
// solved without regularization.
func FitCurve(x, y []float64, order int) ([]float64, error) {
	n := len(x)
	if len(y) != n {
		return nil, merry.Appendf(geom.ErrInvalidInput, "fit: x and y sizes differ (%d vs %d)", n, len(y))
	}
	if order < 1 || n < order {
		return nil, merry.Appendf(geom.ErrInvalidInput, "fit: order %d needs at least %d samples, got %d", order, order, n)
	}

	length := x[n-1] - x[0]
	xs := make([]float64, n)
	b := mat.NewVecDense(n, nil)
	for i := range xs {
		xs[i] = (x[i] - x[0]) / length
		b.SetVec(i, y[i]-xs[i]*y[n-1])
	}

	a := mat.NewDense(n, order, nil)
	for ip := 0; ip < n; ip++ {
		class := math.Pow(xs[ip], ClassN1) * math.Pow(1-xs[ip], ClassN2)
		for i := 0; i < order; i++ {
			a.Set(ip, i, float64(combin.Binomial(order-1, i))*
				math.Pow(xs[ip], float64(i))*math.Pow(1-xs[ip], float64(order-1-i))*class)
		}
	}

	var qr mat.QR
	qr.Factorize(a)
	var coef mat.VecDense
	if err := qr.SolveVecTo(&coef, false, b); err != nil {
		return nil, merry.Prepend(err, "CST least squares")
	}

	out := make([]float64, order)
	copy(out, coef.RawVector().Data)
	return out, nil
}

// FitFoil fits the upper and lower surfaces of an airfoil independently,
// returning one coefficient sequence per surface.
func FitFoil(xu, yu, xl, yl []float64, order int) (cstU, cstL []float64, err error) {
	cstU, err = FitCurve(xu, yu, order)
	if err != nil {
		return nil, nil, merry.Prepend(err, "upper surface")
	}
	cstL, err = FitCurve(xl, yl, order)
	if err != nil {
		return nil, nil, merry.Prepend(err, "lower surface")
	}
	return cstU, cstL, nil
}
