// Package foil implements the CST airfoil construction and perturbation
// engine: curve generation from CST coefficients, thickness and tail
// handling, incremental refinement, local bump deformation, coefficient
// fitting, and rule-based geometric validity checks.
package foil

import (
	"github.com/ansel1/merry"
	"github.com/powerman/structlog"
	"gonum.org/v1/gonum/floats"

	"github.com/aerogeom/gocst/internal/geom"
)

var log = structlog.New()

// The leading edge radius is estimated from the circle through the origin
// and the two surface points interpolated at this chordwise station.
const xLERadius = 0.005

// Airfoil is a unit airfoil: upper and lower surfaces sampled on one
// shared x-distribution.
type Airfoil struct {
	X      []float64
	YUpper []float64
	YLower []float64

	// MaxThickness is the realized maximum of YUpper-YLower. It equals
	// the requested target exactly when one was given.
	MaxThickness float64

	// RLE is the estimated leading edge radius.
	RLE float64
}

// CSTFoil constructs an airfoil from CST coefficients.
//
//	n:          points per surface
//	cstU, cstL: CST coefficients of the upper and lower surfaces
//	x:          optional x-distribution of size n (nil: clustered default)
//	thickness:  optional target relative maximum thickness
//	tail:       relative trailing edge thickness
//
// The thickness constraint is applied before the tail wedge: the wedge
// changes the thickness at the constraint point, so the scale ratio
// already discounts the tail contribution there.
func CSTFoil(n int, cstU, cstL, x []float64, thickness *float64, tail float64) (*Airfoil, error) {
	xs, yu, err := CSTCurve(n, cstU, x)
	if err != nil {
		return nil, err
	}
	_, yl, err := CSTCurve(n, cstL, xs)
	if err != nil {
		return nil, err
	}

	thick := make([]float64, n)
	floats.SubTo(thick, yu, yl)
	it := floats.MaxIdx(thick)
	t0 := thick[it]

	if thickness != nil {
		r := (*thickness - tail*xs[it]) / t0
		t0 = *thickness
		floats.Scale(r, yu)
		floats.Scale(r, yl)
	}

	// Symmetric tail wedge.
	for i := range xs {
		yu[i] += 0.5 * tail * xs[i]
		yl[i] -= 0.5 * tail * xs[i]
	}

	rle, err := leadingEdgeRadius(xs, yu, yl)
	if err != nil {
		return nil, err
	}

	return &Airfoil{X: xs, YUpper: yu, YLower: yl, MaxThickness: t0, RLE: rle}, nil
}

func leadingEdgeRadius(x, yu, yl []float64) (float64, error) {
	yuLE, err := geom.InterpCubic(xLERadius, x, yu)
	if err != nil {
		return 0, merry.Prepend(err, "leading edge radius")
	}
	ylLE, err := geom.InterpCubic(xLERadius, x, yl)
	if err != nil {
		return 0, merry.Prepend(err, "leading edge radius")
	}

	r, _, err := geom.FindCircle3P(
		geom.Point{},
		geom.Point{X: xLERadius, Y: yuLE},
		geom.Point{X: xLERadius, Y: ylLE},
	)
	if err != nil {
		return 0, merry.Prepend(err, "leading edge radius")
	}
	return r, nil
}

// Increment layers incremental CST curves on top of a baseline airfoil.
// The baseline tail wedge is removed first so the increment combines with
// tail-free geometry (otherwise the wedge would be double counted in the
// thickness measurement), then the optional thickness constraint is
// applied at the argmax of the new thickness, and the tail is re-added.
func Increment(x, yu, yl, cstU, cstL []float64, thickness *float64) ([]float64, []float64, error) {
	n := len(x)
	if len(yu) != n || len(yl) != n {
		return nil, nil, merry.Appendf(geom.ErrInvalidInput, "increment: surface sizes (%d, %d) do not match x size %d", len(yu), len(yl), n)
	}

	_, yuInc, err := CSTCurve(n, cstU, x)
	if err != nil {
		return nil, nil, err
	}
	_, ylInc, err := CSTCurve(n, cstL, x)
	if err != nil {
		return nil, nil, err
	}

	yuNew := append([]float64(nil), yu...)
	ylNew := append([]float64(nil), yl...)

	tail := yuNew[n-1] - ylNew[n-1]
	if tail > 0 {
		for i := range x {
			yuNew[i] -= 0.5 * tail * x[i]
			ylNew[i] += 0.5 * tail * x[i]
		}
	}

	floats.Add(yuNew, yuInc)
	floats.Add(ylNew, ylInc)

	if thickness != nil {
		thick := make([]float64, n)
		floats.SubTo(thick, yuNew, ylNew)
		it := floats.MaxIdx(thick)
		r := (*thickness - tail*x[it]) / thick[it]
		floats.Scale(r, yuNew)
		floats.Scale(r, ylNew)
	}

	if tail > 0 {
		for i := range x {
			yuNew[i] += 0.5 * tail * x[i]
			ylNew[i] -= 0.5 * tail * x[i]
		}
	}

	return yuNew, ylNew, nil
}

// ThicknessCamberCurvature computes the thickness, per-surface curvature
// and camber distributions of an airfoil. A negative thickness is logged
// as a geometric warning; the distributions are still returned so the
// caller can decide policy.
func ThicknessCamberCurvature(x, yu, yl []float64) (thickness, curvU, curvL, camber []float64, err error) {
	return thicknessCamberCurvature(x, yu, yl, false)
}

func thicknessCamberCurvature(x, yu, yl []float64, quiet bool) (thickness, curvU, curvL, camber []float64, err error) {
	curvU, err = geom.Curvature(x, yu)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	curvL, err = geom.Curvature(x, yl)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	thickness = make([]float64, len(x))
	camber = make([]float64, len(x))
	for i := range x {
		thickness[i] = yu[i] - yl[i]
		camber[i] = 0.5 * (yu[i] + yl[i])
		if thickness[i] < 0 && !quiet {
			log.Info("unreasonable airfoil: negative thickness", "x", x[i], "thickness", thickness[i])
			quiet = true
		}
	}

	return thickness, curvU, curvL, camber, nil
}
