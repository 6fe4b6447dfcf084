package foil

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// BumpKind selects the bump shape function.
type BumpKind int

const (
	// BumpGaussian is cheap to evaluate and well conditioned away from
	// the curve ends.
	BumpGaussian BumpKind = iota
	// BumpHicksHenne behaves better near the leading and trailing edges.
	BumpHicksHenne
)

// Bounds of the Hicks-Henne exponent search. The scan resolution and the
// power cap trade span accuracy for cost.
const (
	MaxHicksHennePower   = 100
	HicksHenneScanPoints = 201
)

// Bump centers closer to either end than this threshold use Hicks-Henne.
const hicksHenneThreshold = 0.1

// SelectBumpKind picks the bump shape for a center location: Hicks-Henne
// near the edges, where the truncated Gaussian is poorly conditioned,
// Gaussian elsewhere.
func SelectBumpKind(xc float64) BumpKind {
	if xc < hicksHenneThreshold || xc > 1-hicksHenneThreshold {
		return BumpHicksHenne
	}
	return BumpGaussian
}

// AddBump returns a copy of the curve with a local bump of signed height
// h and chordwise span s centered at xc. A center outside (0,1) is a
// logged no-op: the input curve is returned unchanged.
func AddBump(x, y []float64, xc, h, s float64, kind BumpKind) []float64 {
	if xc <= 0 || xc >= 1 {
		log.Info("bump center outside (0,1), curve unchanged", "xc", xc)
		return y
	}

	yNew := append([]float64(nil), y...)

	switch kind {
	case BumpHicksHenne:
		// Shape exponent that puts the peak of sin(pi*x^s0) at xc.
		s0 := math.Log(0.5) / math.Log(xc)
		pow := float64(hicksHennePower(xc, s0, s))
		for i := range x {
			yNew[i] += h * math.Pow(math.Sin(math.Pi*math.Pow(x[i], s0)), pow)
		}

	default:
		for i := range x {
			sigma := s / 6
			switch {
			case xc-s < 0 && x[i] < xc:
				// Bump would run past x=0: widen the left flank so the
				// truncation does not sharpen it.
				sigma = xc / 3.5
			case xc+s > 1 && x[i] > xc:
				sigma = (1 - xc) / 3.5
			}
			d := x[i] - xc
			yNew[i] += h * math.Exp(-d*d/(2*sigma*sigma))
		}
	}

	return yNew
}

// hicksHennePower searches increasing integer exponents for the smallest
// one whose bump is narrower than the target span. The span is measured
// by scanning HicksHenneScanPoints uniform samples for the 1%-of-peak
// crossings on each side of the center. Returns the cap when no exponent
// gets narrow enough.
func hicksHennePower(xc, s0, span float64) int {
	for pow := 1; pow <= MaxHicksHennePower; pow++ {
		x1, x2 := -1.0, -1.0
		for i := 0; i < HicksHenneScanPoints; i++ {
			xx := float64(i) / float64(HicksHenneScanPoints-1)
			yy := math.Pow(math.Sin(math.Pi*math.Pow(xx, s0)), float64(pow))
			if yy > 0.01 && x1 < 0 && xx < xc {
				x1 = xx
			}
			if yy < 0.01 && x2 < 0 && xx > xc {
				x2 = xx
			}
		}
		if x2 < 0 {
			x2 = 1
		}
		if x2-x1 <= span {
			return pow
		}
	}
	return MaxHicksHennePower
}

// Bump is one local perturbation request for an airfoil surface.
type Bump struct {
	Center float64 // chordwise bump center, in (0,1)
	Height float64 // signed height relative to the airfoil maximum thickness
	Span   float64 // chordwise span
	Side   int     // >0 upper surface, otherwise lower
}

// BumpModify applies bumps to an airfoil while conserving its maximum
// thickness: after each bump the surface the bump did not touch is
// rescaled so the overall maximum thickness returns to the original
// value. Bump heights are relative to that original thickness. The bump
// shape is selected per center with SelectBumpKind.
//
// When order > 0 the thickness-conserved curves are discarded in favour
// of a fresh CST fit of that order, re-synthesized at the original
// thickness and tail, which pulls the bumped curve back onto the CST
// manifold.
func BumpModify(x, yu, yl []float64, bumps []Bump, order int) ([]float64, []float64, error) {
	n := len(x)
	yuNew := append([]float64(nil), yu...)
	ylNew := append([]float64(nil), yl...)

	thick := make([]float64, n)
	floats.SubTo(thick, yu, yl)
	t0 := floats.Max(thick)

	for _, b := range bumps {
		kind := SelectBumpKind(b.Center)
		if b.Side > 0 {
			yuNew = AddBump(x, yuNew, b.Center, b.Height*t0, b.Span, kind)
		} else {
			ylNew = AddBump(x, ylNew, b.Center, b.Height*t0, b.Span, kind)
		}

		floats.SubTo(thick, yuNew, ylNew)
		it := floats.MaxIdx(thick)
		tu := math.Abs(yuNew[it])
		tl := math.Abs(ylNew[it])

		// Conserve the maximum thickness by scaling the opposite
		// surface, leaving the bump itself intact.
		if b.Side > 0 {
			floats.Scale((t0-tu)/tl, ylNew)
		} else {
			floats.Scale((t0-tl)/tu, yuNew)
		}
	}

	if order > 0 {
		tail := yu[n-1] - yl[n-1]
		cstU, cstL, err := FitFoil(x, yuNew, x, ylNew, order)
		if err != nil {
			return nil, nil, err
		}
		af, err := CSTFoil(n, cstU, cstL, x, &t0, tail)
		if err != nil {
			return nil, nil, err
		}
		yuNew, ylNew = af.YUpper, af.YLower
	}

	return yuNew, ylNew, nil
}
