package foil

import (
	"testing"

	"github.com/ansel1/merry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerogeom/gocst/internal/geom"
)

func TestCSTCurveKnownValues(t *testing.T) {
	coef := []float64{0.1, 0.2, 0.15, 0.1}
	x := []float64{0, 0.25, 0.5, 0.75, 1}

	xs, y, err := CSTCurve(5, coef, x)
	require.NoError(t, err)
	assert.Equal(t, x, xs)

	want := []float64{0, 0.05595703125, 0.05524271728019903, 0.029262186495060134, 0}
	require.Len(t, y, 5)
	for i := range want {
		assert.InDelta(t, want[i], y[i], 1e-9, "point %d", i)
	}
}

func TestCSTCurveEndpointsPinned(t *testing.T) {
	_, y, err := CSTCurve(51, []float64{0.3, 0.2, 0.25}, nil)
	require.NoError(t, err)
	assert.Zero(t, y[0])
	assert.Zero(t, y[50])
}

func TestCSTCurveClusteredDefault(t *testing.T) {
	x, _, err := CSTCurve(101, []float64{0.2, 0.2}, nil)
	require.NoError(t, err)
	require.Len(t, x, 101)
	assert.Zero(t, x[0])
	assert.Equal(t, 1.0, x[100])
	for i := 1; i < len(x); i++ {
		assert.Greater(t, x[i], x[i-1])
	}
}

func TestCSTCurveErrors(t *testing.T) {
	_, _, err := CSTCurve(1, []float64{0.1}, nil)
	assert.True(t, merry.Is(err, geom.ErrInvalidInput))

	_, _, err = CSTCurve(5, nil, nil)
	assert.True(t, merry.Is(err, geom.ErrInvalidInput))

	_, _, err = CSTCurve(5, []float64{0.1}, []float64{0, 0.5, 1})
	assert.True(t, merry.Is(err, geom.ErrInvalidInput))
}

func TestFitCurveRoundTrip(t *testing.T) {
	coef := []float64{0.1718, 0.1528, 0.1632, 0.1318, 0.1455}
	x, y, err := CSTCurve(101, coef, nil)
	require.NoError(t, err)

	got, err := FitCurve(x, y, len(coef))
	require.NoError(t, err)
	require.Len(t, got, len(coef))
	for i := range coef {
		assert.InDelta(t, coef[i], got[i], 1e-6, "coefficient %d", i)
	}
}

func TestFitCurveDetrendsTail(t *testing.T) {
	coef := []float64{0.2, 0.25, 0.18}
	x, y, err := CSTCurve(101, coef, nil)
	require.NoError(t, err)

	// A tail wedge is a linear term in x; the fit removes it from the
	// samples before solving.
	for i := range y {
		y[i] += 0.002 * x[i]
	}

	got, err := FitCurve(x, y, len(coef))
	require.NoError(t, err)
	for i := range coef {
		assert.InDelta(t, coef[i], got[i], 1e-6, "coefficient %d", i)
	}
}

func TestFitFoilBothSurfaces(t *testing.T) {
	cu := []float64{0.25, 0.2, 0.22}
	cl := []float64{-0.2, -0.15, -0.18}
	x, yu, err := CSTCurve(101, cu, nil)
	require.NoError(t, err)
	_, yl, err := CSTCurve(101, cl, x)
	require.NoError(t, err)

	gotU, gotL, err := FitFoil(x, yu, x, yl, 3)
	require.NoError(t, err)
	for i := range cu {
		assert.InDelta(t, cu[i], gotU[i], 1e-6)
		assert.InDelta(t, cl[i], gotL[i], 1e-6)
	}
}

func TestFitCurveErrors(t *testing.T) {
	_, err := FitCurve([]float64{0, 1}, []float64{0}, 1)
	assert.True(t, merry.Is(err, geom.ErrInvalidInput))

	_, err = FitCurve([]float64{0, 0.5, 1}, []float64{0, 0.1, 0}, 0)
	assert.True(t, merry.Is(err, geom.ErrInvalidInput))
}
