package foil

import (
	"github.com/ansel1/merry"

	"github.com/aerogeom/gocst/internal/geom"
)

// Section is one airfoil cross-section placed in 3D space. It owns its
// CST coefficients and placement exclusively; the unit airfoil, leading
// edge radius and 3D curve are derived state, recomputed only by Rebuild.
// A Section is not safe for concurrent use; independent Sections share
// nothing and may be processed in parallel.
type Section struct {
	// Placement.
	XLE   float64
	YLE   float64
	ZLE   float64
	Chord float64
	Twist float64 // degrees, about +z
	Tail  float64 // relative trailing edge thickness

	// Thickness is the target relative maximum thickness. nil means the
	// thickness the CST coefficients produce naturally; Rebuild pins it
	// to the realized value so later rebuilds hold it fixed.
	Thickness *float64

	// RLE is the leading edge radius of the generated unit foil.
	RLE float64

	// CST coefficients of the upper and lower surfaces.
	CSTUpper []float64
	CSTLower []float64

	// Incremental refinement layer, applied on top of the base foil when
	// both coefficient sequences are set. RefineFixedThickness forces
	// the refined foil back to the pre-refinement thickness.
	RefineFixedThickness bool
	RefineUpper          []float64
	RefineLower          []float64

	// Derived unit airfoil.
	XX     []float64
	YUpper []float64
	YLower []float64

	// Derived 3D section curve: lower surface reversed, then the upper
	// surface without the duplicated leading edge point.
	X []float64
	Y []float64
	Z []float64
}

// NewSection returns a section with default placement: unit chord at the
// origin, no twist, no tail, natural thickness, refinement holding the
// thickness fixed.
func NewSection() *Section {
	return &Section{Chord: 1, RefineFixedThickness: true}
}

// Rebuild recomputes all derived state from the current coefficients and
// placement: the unit airfoil (n points per surface), its leading edge
// radius, the optional refinement layer, and the placed 3D curve. It is
// idempotent and is the only operation that mutates derived fields, so it
// must be called after any coefficient or placement edit. flipX reverses
// the stored x-distribution before the 3D transform.
func (s *Section) Rebuild(n int, flipX bool) error {
	af, err := CSTFoil(n, s.CSTUpper, s.CSTLower, nil, s.Thickness, s.Tail)
	if err != nil {
		return merry.Prepend(err, "rebuild section")
	}
	s.XX, s.YUpper, s.YLower = af.X, af.YUpper, af.YLower
	s.RLE = af.RLE

	// Pin the natural thickness so repeated rebuilds are stable.
	if s.Thickness == nil {
		t := af.MaxThickness
		s.Thickness = &t
	}

	if s.RefineUpper != nil && s.RefineLower != nil {
		var t *float64
		if s.RefineFixedThickness {
			t = s.Thickness
		}
		yu, yl, err := Increment(s.XX, s.YUpper, s.YLower, s.RefineUpper, s.RefineLower, t)
		if err != nil {
			return merry.Prepend(err, "refine section")
		}
		s.YUpper, s.YLower = yu, yl
	}

	if flipX {
		for i, j := 0, len(s.XX)-1; i < j; i, j = i+1, j-1 {
			s.XX[i], s.XX[j] = s.XX[j], s.XX[i]
		}
	}

	twist := s.Twist
	xu, xl, yu, yl := geom.TransformFoil(s.XX, s.YUpper, s.YLower,
		s.Chord, &twist, nil, nil, s.XLE, s.YLE, true)

	s.X = make([]float64, 0, 2*n-1)
	s.Y = make([]float64, 0, 2*n-1)
	s.Z = make([]float64, 0, 2*n-1)
	for i := n - 1; i >= 0; i-- {
		s.X = append(s.X, xl[i])
		s.Y = append(s.Y, yl[i])
		s.Z = append(s.Z, s.ZLE)
	}
	for i := 1; i < n; i++ {
		s.X = append(s.X, xu[i])
		s.Y = append(s.Y, yu[i])
		s.Z = append(s.Z, s.ZLE)
	}

	return nil
}

// CopyFrom makes this section a deep copy of other.
func (s *Section) CopyFrom(other *Section) {
	*s = *other
	if other.Thickness != nil {
		t := *other.Thickness
		s.Thickness = &t
	}
	s.CSTUpper = append([]float64(nil), other.CSTUpper...)
	s.CSTLower = append([]float64(nil), other.CSTLower...)
	s.RefineUpper = append([]float64(nil), other.RefineUpper...)
	s.RefineLower = append([]float64(nil), other.RefineLower...)
	s.XX = append([]float64(nil), other.XX...)
	s.YUpper = append([]float64(nil), other.YUpper...)
	s.YLower = append([]float64(nil), other.YLower...)
	s.X = append([]float64(nil), other.X...)
	s.Y = append([]float64(nil), other.Y...)
	s.Z = append([]float64(nil), other.Z...)
}
