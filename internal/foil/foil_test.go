package foil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// naca0012CST approximates the NACA 0012 upper surface in the CST basis
// (Kulfan 2008); the lower surface is the mirror image.
var naca0012CST = []float64{0.1718, 0.1528, 0.1632, 0.1318, 0.1455, 0.1296, 0.1407}

func negated(c []float64) []float64 {
	out := make([]float64, len(c))
	for i, v := range c {
		out[i] = -v
	}
	return out
}

func maxThickness(yu, yl []float64) float64 {
	thick := make([]float64, len(yu))
	floats.SubTo(thick, yu, yl)
	return floats.Max(thick)
}

func TestCSTFoilThicknessTarget(t *testing.T) {
	thickness := 0.12
	af, err := CSTFoil(201, naca0012CST, negated(naca0012CST), nil, &thickness, 0)
	require.NoError(t, err)

	assert.Equal(t, thickness, af.MaxThickness)
	assert.InDelta(t, thickness, maxThickness(af.YUpper, af.YLower), 1e-9)
}

func TestCSTFoilNaturalThickness(t *testing.T) {
	af, err := CSTFoil(201, naca0012CST, negated(naca0012CST), nil, nil, 0)
	require.NoError(t, err)

	assert.InDelta(t, af.MaxThickness, maxThickness(af.YUpper, af.YLower), 1e-12)
	assert.Greater(t, af.MaxThickness, 0.1)
	assert.Less(t, af.MaxThickness, 0.14)
}

func TestCSTFoilTailThickness(t *testing.T) {
	tail := 0.004
	af, err := CSTFoil(201, naca0012CST, negated(naca0012CST), nil, nil, tail)
	require.NoError(t, err)

	n := len(af.X)
	assert.InDelta(t, tail, af.YUpper[n-1]-af.YLower[n-1], 1e-12)
	// The leading edge stays closed.
	assert.Zero(t, af.YUpper[0])
	assert.Zero(t, af.YLower[0])
}

func TestCSTFoilThicknessTargetWithTail(t *testing.T) {
	thickness := 0.12
	af, err := CSTFoil(201, naca0012CST, negated(naca0012CST), nil, &thickness, 0.004)
	require.NoError(t, err)

	// The tail wedge contribution at the constraint point is discounted,
	// so the realized maximum still hits the target.
	assert.InDelta(t, thickness, maxThickness(af.YUpper, af.YLower), 1e-6)
}

func TestCSTFoilLeadingEdgeRadius(t *testing.T) {
	thickness := 0.12
	af, err := CSTFoil(201, naca0012CST, negated(naca0012CST), nil, &thickness, 0)
	require.NoError(t, err)

	assert.Greater(t, af.RLE, 0.005)
	assert.Less(t, af.RLE, 0.05)
}

func TestIncrementInverse(t *testing.T) {
	af, err := CSTFoil(101, naca0012CST, negated(naca0012CST), nil, nil, 0.004)
	require.NoError(t, err)

	inc := []float64{0.002, -0.001, 0.0015, 0.001}
	yu1, yl1, err := Increment(af.X, af.YUpper, af.YLower, inc, negated(inc), nil)
	require.NoError(t, err)
	yu2, yl2, err := Increment(af.X, yu1, yl1, negated(inc), inc, nil)
	require.NoError(t, err)

	for i := range af.X {
		assert.InDelta(t, af.YUpper[i], yu2[i], 1e-12)
		assert.InDelta(t, af.YLower[i], yl2[i], 1e-12)
	}
}

func TestIncrementInverseWithThicknessConstraint(t *testing.T) {
	thickness := 0.12
	af, err := CSTFoil(101, naca0012CST, negated(naca0012CST), nil, &thickness, 0.004)
	require.NoError(t, err)

	inc := []float64{0.002, -0.001, 0.0015, 0.001}
	yu1, yl1, err := Increment(af.X, af.YUpper, af.YLower, inc, negated(inc), &thickness)
	require.NoError(t, err)
	yu2, yl2, err := Increment(af.X, yu1, yl1, negated(inc), inc, &thickness)
	require.NoError(t, err)

	// The constraint rescale does not commute with the increment exactly,
	// the residual is second order in the increment size.
	for i := range af.X {
		assert.InDelta(t, af.YUpper[i], yu2[i], 1e-4)
		assert.InDelta(t, af.YLower[i], yl2[i], 1e-4)
	}
}

func TestIncrementHoldsThickness(t *testing.T) {
	thickness := 0.12
	af, err := CSTFoil(101, naca0012CST, negated(naca0012CST), nil, &thickness, 0.004)
	require.NoError(t, err)

	inc := []float64{0.005, 0.004, 0.003}
	yu, yl, err := Increment(af.X, af.YUpper, af.YLower, inc, inc, &thickness)
	require.NoError(t, err)

	// The wedge is stripped for the constraint and re-added afterwards;
	// the argmax sits away from the trailing edge so the wedge share
	// there stays small.
	assert.InDelta(t, thickness, maxThickness(yu, yl), 1e-3)
}

func TestIncrementSizeMismatch(t *testing.T) {
	_, _, err := Increment([]float64{0, 0.5, 1}, []float64{0, 0.1}, []float64{0, -0.1, 0}, []float64{0.01}, []float64{0.01}, nil)
	assert.Error(t, err)
}

func TestThicknessCamberCurvatureSymmetric(t *testing.T) {
	af, err := CSTFoil(201, naca0012CST, negated(naca0012CST), nil, nil, 0)
	require.NoError(t, err)

	thick, curvU, curvL, camber, err := ThicknessCamberCurvature(af.X, af.YUpper, af.YLower)
	require.NoError(t, err)
	require.Len(t, thick, 201)
	require.Len(t, curvU, 201)
	require.Len(t, curvL, 201)

	for i := range camber {
		assert.InDelta(t, 0, camber[i], 1e-12)
		assert.InDelta(t, af.YUpper[i]-af.YLower[i], thick[i], 1e-12)
	}
}

func TestThicknessCamberCurvatureNegativeThickness(t *testing.T) {
	af, err := CSTFoil(51, naca0012CST, negated(naca0012CST), nil, nil, 0)
	require.NoError(t, err)

	// Crossed surfaces are a warning, not an error.
	thick, _, _, _, err := ThicknessCamberCurvature(af.X, af.YLower, af.YUpper)
	require.NoError(t, err)
	assert.Less(t, floats.Min(thick), 0.0)
}
