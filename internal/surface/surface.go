// Package surface lofts 3D surfaces (wings, blades) between CST airfoil
// sections and writes them in Tecplot and plot3d text formats.
package surface

import (
	"math"

	"github.com/ansel1/merry"
	"github.com/powerman/structlog"

	"github.com/aerogeom/gocst/internal/foil"
	"github.com/aerogeom/gocst/internal/geom"
)

var log = structlog.New()

// LoftKind selects the spanwise blending between two sections.
type LoftKind int

const (
	// LoftCosine blends the surface ordinates with a half-cosine ramp,
	// smooth at both end sections.
	LoftCosine LoftKind = iota
	// LoftLinear blends linearly.
	LoftLinear
)

// Patch is one lofted surface piece, indexed [spanwise][chordwise].
type Patch struct {
	X [][]float64
	Y [][]float64
	Z [][]float64
}

func newPatch(ns, nn int) Patch {
	p := Patch{
		X: make([][]float64, ns),
		Y: make([][]float64, ns),
		Z: make([][]float64, ns),
	}
	for i := 0; i < ns; i++ {
		p.X[i] = make([]float64, nn)
		p.Y[i] = make([]float64, nn)
		p.Z[i] = make([]float64, nn)
	}
	return p
}

// Surface is a CST surface interpolated between control sections.
// Coordinates: x is the flow direction, y up, z spanwise.
type Surface struct {
	Name string
	NCST int // CST coefficients per surface
	NN   int // points per surface curve
	NS   int // spanwise points per patch

	Secs    []*foil.Section
	Patches []Patch

	// Split records whether Generate produced separate upper and lower
	// patches.
	Split bool

	// L2D marks the planar single-section case: the section is extruded
	// to z=1 instead of lofted to a second section.
	L2D bool

	// Plot framing, derived from the layout.
	HalfSpan float64
	Center   [3]float64
}

// New creates a surface with nSec default sections.
func New(nSec, nCST, nn, ns int, name string) *Surface {
	if nSec < 1 {
		nSec = 1
	}
	s := &Surface{
		Name: name,
		NCST: nCST,
		NN:   nn,
		NS:   ns,
		Secs: make([]*foil.Section, nSec),
		L2D:  nSec == 1,
	}
	for i := range s.Secs {
		s.Secs[i] = foil.NewSection()
	}
	s.HalfSpan = 0.5
	s.Center = [3]float64{0.5, 0.5, 0.5}
	return s
}

// Generate rebuilds every section and lofts each adjacent pair into a
// surface patch. With split, each bay produces separate upper and lower
// patches instead of one wrapped patch. The planar case extrudes the
// single section to z=1.
func (s *Surface) Generate(split bool) error {
	for _, sec := range s.Secs {
		if err := sec.Rebuild(s.NN, false); err != nil {
			return err
		}
	}

	s.Split = split
	s.Patches = s.Patches[:0]

	if s.L2D {
		far := foil.NewSection()
		far.CopyFrom(s.Secs[0])
		far.ZLE = 1
		if err := far.Rebuild(s.NN, false); err != nil {
			return err
		}
		return s.loftInto(s.Secs[0], far, split)
	}

	for i := 0; i+1 < len(s.Secs); i++ {
		if err := s.loftInto(s.Secs[i], s.Secs[i+1], split); err != nil {
			return err
		}
	}
	return nil
}

func (s *Surface) loftInto(sec0, sec1 *foil.Section, split bool) error {
	p1, p2, err := LoftSections(sec0, sec1, s.NS, LoftCosine, split)
	if err != nil {
		return err
	}
	s.Patches = append(s.Patches, p1)
	if split {
		s.Patches = append(s.Patches, p2)
	}
	return nil
}

// LoftSections interpolates a surface patch between two rebuilt sections
// over ns spanwise stations. Placement (chord, twist, leading edge)
// blends linearly along the span; the surface ordinates blend by kind.
// With split the upper and lower surfaces come back as separate patches;
// otherwise the second patch is empty and the first wraps the reversed
// lower surface followed by the upper one.
func LoftSections(sec0, sec1 *foil.Section, ns int, kind LoftKind, split bool) (Patch, Patch, error) {
	n0 := len(sec0.XX)
	if n0 == 0 || len(sec1.XX) != n0 {
		return Patch{}, Patch{}, merry.Appendf(geom.ErrInvalidInput,
			"loft: sections must be rebuilt to the same point count (%d vs %d)", n0, len(sec1.XX))
	}
	if ns < 2 {
		return Patch{}, Patch{}, merry.Appendf(geom.ErrInvalidInput, "loft needs at least 2 spanwise points, got %d", ns)
	}

	var p1, p2 Patch
	if split {
		p1 = newPatch(ns, n0)
		p2 = newPatch(ns, n0)
	} else {
		p1 = newPatch(ns, 2*n0-1)
	}

	for i := 0; i < ns; i++ {
		tt := float64(i) / float64(ns-1)
		rr := tt
		if kind == LoftCosine {
			rr = 0.5 * (1 - math.Cos(math.Pi*tt))
		}

		chord := (1-tt)*sec0.Chord + tt*sec1.Chord
		twist := (1-tt)*sec0.Twist + tt*sec1.Twist
		xLE := (1-tt)*sec0.XLE + tt*sec1.XLE
		yLE := (1-tt)*sec0.YLE + tt*sec1.YLE

		xx := make([]float64, n0)
		yu := make([]float64, n0)
		yl := make([]float64, n0)
		zz := make([]float64, n0)
		for j := 0; j < n0; j++ {
			xx[j] = (1-tt)*sec0.XX[j] + tt*sec1.XX[j]
			zz[j] = (1-tt)*sec0.ZLE + tt*sec1.ZLE
			yu[j] = (1-rr)*sec0.YUpper[j] + rr*sec1.YUpper[j]
			yl[j] = (1-rr)*sec0.YLower[j] + rr*sec1.YLower[j]
		}

		xu, xl, yuT, ylT := geom.TransformFoil(xx, yu, yl, chord, &twist, nil, nil, xLE, yLE, true)

		if split {
			for j := 0; j < n0; j++ {
				p1.X[i][j], p1.Y[i][j], p1.Z[i][j] = xu[j], yuT[j], zz[j]
				p2.X[i][j], p2.Y[i][j], p2.Z[i][j] = xl[j], ylT[j], zz[j]
			}
			continue
		}

		for j := 0; j < n0; j++ {
			p1.X[i][j], p1.Y[i][j], p1.Z[i][j] = xl[n0-1-j], ylT[n0-1-j], zz[n0-1-j]
		}
		for j := 1; j < n0; j++ {
			p1.X[i][n0-1+j], p1.Y[i][n0-1+j], p1.Z[i][n0-1+j] = xu[j], yuT[j], zz[j]
		}
	}

	return p1, p2, nil
}

// AddSections inserts interpolated sections at the given spanwise
// locations, each of which must lie strictly between two existing
// sections. Must run before Generate and Flip.
func (s *Surface) AddSections(z []float64) error {
	if s.L2D {
		log.Info("cannot add sections to a planar surface")
		return nil
	}

	// The interpolation source sections must be up to date.
	for _, sec := range s.Secs {
		if err := sec.Rebuild(s.NN, false); err != nil {
			return err
		}
	}

	for _, zz := range z {
		inserted := false
		for j := 0; j+1 < len(s.Secs); j++ {
			if (s.Secs[j].ZLE-zz)*(s.Secs[j+1].ZLE-zz) < 0 {
				rr := (zz - s.Secs[j].ZLE) / (s.Secs[j+1].ZLE - s.Secs[j].ZLE)
				sec, err := InterpolateSection(s.Secs[j], s.Secs[j+1], math.Abs(rr))
				if err != nil {
					return err
				}
				s.Secs = append(s.Secs[:j+1], append([]*foil.Section{sec}, s.Secs[j+1:]...)...)
				inserted = true
				break
			}
		}
		if !inserted {
			return merry.Appendf(geom.ErrInvalidInput, "section location z=%g is outside the current sections", zz)
		}
	}
	return nil
}

// InterpolateSection blends two rebuilt sections at the given ratio
// (0 returns sec0, 1 returns sec1). Placement and samples interpolate
// linearly; the CST coefficients of the result are recovered by fitting
// the blended surfaces.
func InterpolateSection(sec0, sec1 *foil.Section, ratio float64) (*foil.Section, error) {
	if len(sec0.XX) == 0 || len(sec0.XX) != len(sec1.XX) {
		return nil, merry.Appendf(geom.ErrInvalidInput,
			"interpolate: sections must be rebuilt to the same point count (%d vs %d)", len(sec0.XX), len(sec1.XX))
	}

	sec := foil.NewSection()
	sec.CopyFrom(sec0)

	sec.XLE = (1-ratio)*sec0.XLE + ratio*sec1.XLE
	sec.YLE = (1-ratio)*sec0.YLE + ratio*sec1.YLE
	sec.ZLE = (1-ratio)*sec0.ZLE + ratio*sec1.ZLE
	sec.Chord = (1-ratio)*sec0.Chord + ratio*sec1.Chord
	sec.Twist = (1-ratio)*sec0.Twist + ratio*sec1.Twist
	sec.Tail = (1-ratio)*sec0.Tail + ratio*sec1.Tail
	sec.RLE = (1-ratio)*sec0.RLE + ratio*sec1.RLE
	if sec0.Thickness != nil && sec1.Thickness != nil {
		t := (1-ratio)**sec0.Thickness + ratio**sec1.Thickness
		sec.Thickness = &t
	}

	for i := range sec.XX {
		sec.XX[i] = (1-ratio)*sec0.XX[i] + ratio*sec1.XX[i]
		sec.YUpper[i] = (1-ratio)*sec0.YUpper[i] + ratio*sec1.YUpper[i]
		sec.YLower[i] = (1-ratio)*sec0.YLower[i] + ratio*sec1.YLower[i]
	}
	for i := range sec.X {
		sec.X[i] = (1-ratio)*sec0.X[i] + ratio*sec1.X[i]
		sec.Y[i] = (1-ratio)*sec0.Y[i] + ratio*sec1.Y[i]
		sec.Z[i] = (1-ratio)*sec0.Z[i] + ratio*sec1.Z[i]
	}

	cstU, cstL, err := foil.FitFoil(sec.XX, sec.YUpper, sec.XX, sec.YLower, len(sec0.CSTUpper))
	if err != nil {
		return nil, merry.Prepend(err, "interpolate section")
	}
	sec.CSTUpper, sec.CSTLower = cstU, cstL

	return sec, nil
}
