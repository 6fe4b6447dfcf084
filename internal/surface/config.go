package surface

import (
	"encoding/json"
	"math"
	"os"

	"github.com/ansel1/merry"
)

// Defaults for surface generation when the definition file leaves the
// point counts out.
const (
	DefaultFoilPoints = 1001
	DefaultSpanPoints = 101
)

// Config is the on-disk JSON definition of a surface: global settings
// plus the layout and CST coefficients of each control section.
type Config struct {
	Name string `json:"name"`

	// Points per surface curve and per spanwise patch direction.
	FoilPoints int `json:"foil_points,omitempty"`
	SpanPoints int `json:"span_points,omitempty"`

	// Tail is the absolute trailing edge thickness; each section stores
	// it relative to its own chord.
	Tail float64 `json:"tail,omitempty"`

	Sections []SectionConfig `json:"sections"`
}

// SectionConfig is the layout and parametrization of one control section.
type SectionConfig struct {
	XLE   float64 `json:"x_le"`
	YLE   float64 `json:"y_le"`
	ZLE   float64 `json:"z_le"`
	Chord float64 `json:"chord"`
	Twist float64 `json:"twist"`

	// Thickness is the target relative maximum thickness; omit it to
	// keep the thickness the coefficients produce naturally.
	Thickness *float64 `json:"thickness,omitempty"`

	CSTUpper []float64 `json:"cst_upper"`
	CSTLower []float64 `json:"cst_lower"`
}

// Validate checks the definition for structural problems.
func (c *Config) Validate() error {
	if len(c.Sections) == 0 {
		return merry.New("surface definition has no sections")
	}
	for i, sec := range c.Sections {
		if sec.Chord <= 0 {
			return merry.Errorf("section %d: chord must be positive", i+1)
		}
		if len(sec.CSTUpper) == 0 || len(sec.CSTLower) == 0 {
			return merry.Errorf("section %d: CST coefficients missing", i+1)
		}
		if len(sec.CSTUpper) != len(c.Sections[0].CSTUpper) ||
			len(sec.CSTLower) != len(c.Sections[0].CSTLower) {
			return merry.Errorf("section %d: CST order differs from section 1", i+1)
		}
	}
	return nil
}

// LoadFromFile reads a surface definition from a JSON file and builds the
// Surface it describes. Sections are configured but not yet generated;
// call Generate afterwards.
func LoadFromFile(path string) (*Surface, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, merry.Prepend(err, "reading surface definition")
	}

	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, merry.Prependf(err, "parsing surface definition %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, merry.Prependf(err, "surface definition %s", path)
	}

	return FromConfig(&cfg), nil
}

// FromConfig builds a Surface from a validated definition.
func FromConfig(cfg *Config) *Surface {
	nn := cfg.FoilPoints
	if nn <= 0 {
		nn = DefaultFoilPoints
	}
	ns := cfg.SpanPoints
	if ns <= 0 {
		ns = DefaultSpanPoints
	}

	s := New(len(cfg.Sections), len(cfg.Sections[0].CSTUpper), nn, ns, cfg.Name)
	for i, sc := range cfg.Sections {
		sec := s.Secs[i]
		sec.XLE = sc.XLE
		sec.YLE = sc.YLE
		sec.ZLE = sc.ZLE
		sec.Chord = sc.Chord
		sec.Twist = sc.Twist
		sec.Tail = cfg.Tail / sc.Chord
		if sc.Thickness != nil {
			t := *sc.Thickness
			sec.Thickness = &t
		}
		sec.CSTUpper = append([]float64(nil), sc.CSTUpper...)
		sec.CSTLower = append([]float64(nil), sc.CSTLower...)
		if s.L2D {
			sec.ZLE = 0
		}
	}

	s.frame()
	return s
}

// frame locates the layout center and half span used to frame plots.
func (s *Surface) frame() {
	first := s.Secs[0]
	xr := [2]float64{first.XLE, first.XLE}
	yr := [2]float64{first.YLE, first.YLE}
	zr := [2]float64{first.ZLE, first.ZLE}
	for _, sec := range s.Secs {
		xr[0] = math.Min(xr[0], sec.XLE)
		xr[1] = math.Max(xr[1], sec.XLE+sec.Chord)
		yr[0] = math.Min(yr[0], sec.YLE)
		yr[1] = math.Max(yr[1], sec.YLE)
		zr[0] = math.Min(zr[0], sec.ZLE)
		zr[1] = math.Max(zr[1], sec.ZLE)
	}

	s.HalfSpan = math.Max(xr[1]-xr[0], math.Max(yr[1]-yr[0], zr[1]-zr[0])) / 2
	s.Center[0] = 0.5 * (xr[1] + xr[0])
	s.Center[1] = 0.5 * (yr[1] + yr[0])
	s.Center[2] = 0.5 * (zr[1] + zr[0])
}
