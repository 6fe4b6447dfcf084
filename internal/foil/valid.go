package foil

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// NumValidityRules is the number of geometric sanity rules evaluated by
// CheckValid.
const NumValidityRules = 7

// CheckValid evaluates the geometric sanity rules against an airfoil and
// returns one flag per rule: 0 passed, 1 failed. All rules are always
// computed. Failing rules are advisory data, never an error; the error
// return reports structural problems only (fewer than 3 samples).
//
//	1: negative thickness (self-intersecting surfaces)
//	2: maximum thickness located outside x in [0.15, 0.75]
//	3: more than two local extrema in the thickness distribution
//	4: |curvature| above 5 on either surface for x >= 0.1
//	5: |camber| above 0.025 within x in [0.2, 0.7]
//	6: leading edge radius below 0.005 or below a tenth of the maximum
//	   thickness (only when rle > 0 is supplied)
//	7: concave leading edge region on either surface
func CheckValid(x, yu, yl []float64, rle float64) ([]int, error) {
	thickness, curvU, curvL, camber, err := thicknessCamberCurvature(x, yu, yl, true)
	if err != nil {
		return nil, err
	}

	n := len(x)
	invalid := make([]int, NumValidityRules)

	// Rule 1: negative thickness.
	if floats.Min(thickness) < 0 {
		invalid[0] = 1
	}

	// Rule 2: maximum thickness location.
	iMax := floats.MaxIdx(thickness)
	t0 := thickness[iMax]
	if x[iMax] < 0.15 || x[iMax] > 0.75 {
		invalid[1] = 1
	}

	// Rule 3: extreme points of the thickness distribution. Consecutive
	// forward differences changing sign mark a local extremum.
	nExtreme := 0
	for i := 0; i+2 < n; i++ {
		a1 := thickness[i+2] - thickness[i+1]
		a2 := thickness[i] - thickness[i+1]
		if a1*a2 >= 0 {
			nExtreme++
		}
	}
	if nExtreme > 2 {
		invalid[2] = 1
	}

	// Rule 4: maximum curvature aft of the leading edge region.
	var curMaxU, curMaxL float64
	for i := 0; i < n; i++ {
		if x[i] < 0.1 {
			continue
		}
		curMaxU = math.Max(curMaxU, math.Abs(curvU[i]))
		curMaxL = math.Max(curMaxL, math.Abs(curvL[i]))
	}
	if curMaxU > 5 || curMaxL > 5 {
		invalid[3] = 1
	}

	// Rule 5: maximum camber within x [0.2, 0.7].
	var camMax float64
	for i := 0; i < n; i++ {
		if x[i] < 0.2 || x[i] > 0.7 {
			continue
		}
		camMax = math.Max(camMax, math.Abs(camber[i]))
	}
	if camMax > 0.025 {
		invalid[4] = 1
	}

	// Rule 6: leading edge radius, when provided.
	if rle > 0 && (rle < 0.005 || rle/t0 < 0.1) {
		invalid[5] = 1
	}

	// Rule 7: convex leading edge. The normalized surface slope near the
	// leading edge must exceed the thickness/location ratio at the
	// maximum thickness point on both surfaces.
	ii := int(0.1*float64(n)) + 1
	a0 := thickness[iMax] / x[iMax]
	au := yu[ii] / x[ii] / a0
	al := -yl[ii] / x[ii] / a0
	if au < 1 || al < 1 {
		invalid[6] = 1
	}

	return invalid, nil
}
