package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformFoilTranslation(t *testing.T) {
	x := []float64{0, 0.5, 1}
	yu := []float64{0, 0.1, 0}
	yl := []float64{0, -0.1, 0}

	xu, xl, yuN, ylN := TransformFoil(x, yu, yl, 1, nil, nil, nil, 2, 3, false)
	for i := range x {
		assert.InDelta(t, x[i]+2, xu[i], 1e-12)
		assert.InDelta(t, x[i]+2, xl[i], 1e-12)
		assert.InDelta(t, yu[i]+3, yuN[i], 1e-12)
		assert.InDelta(t, yl[i]+3, ylN[i], 1e-12)
	}
}

func TestTransformFoilChordScaling(t *testing.T) {
	x := []float64{0, 0.5, 1}
	yu := []float64{0, 0.1, 0}
	yl := []float64{0, -0.1, 0}

	// Scaling about the leading edge: the chord doubles, the camber line
	// midpoint stays on y=0.
	xu, _, yuN, ylN := TransformFoil(x, yu, yl, 2, nil, nil, nil, 0, 0, false)
	assert.InDelta(t, 2.0, xu[2], 1e-12)
	assert.InDelta(t, 0.2, yuN[1], 1e-12)
	assert.InDelta(t, -0.2, ylN[1], 1e-12)
}

func TestTransformFoilTwist(t *testing.T) {
	x := []float64{0, 1}
	yu := []float64{0, 0}
	yl := []float64{0, 0}

	// A -90 degree twist about the leading edge drops the trailing edge
	// to y=-1.
	rot := -90.0
	xu, _, yuN, _ := TransformFoil(x, yu, yl, 1, &rot, nil, nil, 0, 0, false)
	assert.InDelta(t, 0.0, xu[1], 1e-12)
	assert.InDelta(t, -1.0, yuN[1], 1e-12)
}

func TestTransformFoilProjectedChord(t *testing.T) {
	x := []float64{0, 1}
	yu := []float64{0, 0}
	yl := []float64{0, 0}

	// With proj, a twisted section keeps its x-projection equal to the
	// chord length.
	rot := 30.0
	xu, _, _, _ := TransformFoil(x, yu, yl, 1, &rot, nil, nil, 0, 0, true)
	assert.InDelta(t, 1.0, xu[1], 1e-12)
}

func TestRotate3DAboutZ(t *testing.T) {
	x, y, z := Rotate3D([]float64{1}, []float64{0}, []float64{5}, 90, [3]float64{0, 0, 0}, AxisZ)
	require.Len(t, x, 1)
	assert.InDelta(t, 0, x[0], 1e-12)
	assert.InDelta(t, 1, y[0], 1e-12)
	assert.InDelta(t, 5, z[0], 1e-12)
}

func TestRotate3DAboutXOrigin(t *testing.T) {
	origin := [3]float64{0, 1, 1}
	_, y, z := Rotate3D([]float64{0}, []float64{2}, []float64{1}, 180, origin, AxisX)
	assert.InDelta(t, 0, y[0], 1e-12)
	assert.InDelta(t, 1, z[0], 1e-12)
}

func TestCosineSpacingMidpointSymmetricParams(t *testing.T) {
	// With symmetric clustering parameters the midpoint maps to 0.5.
	got := CosineSpacing(5, 11, 0.1, 0.9, 1)
	assert.InDelta(t, 0.5, got, 1e-12)
}
