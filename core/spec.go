package core

import "fmt"

// Material is the closed set of structural materials. Keeping this a tagged
// enum (instead of free-form strings) forces exhaustive switches in the
// engine; an unrecognized material can never silently fall through to a
// default response curve.
type Material int

const (
	Concrete Material = iota
	Steel
	Wood
)

func (m Material) String() string {
	switch m {
	case Concrete:
		return "concrete"
	case Steel:
		return "steel"
	case Wood:
		return "wood"
	}
	return fmt.Sprintf("Material(%d)", int(m))
}

// ParseMaterial converts the wire/config spelling back to the enum.
func ParseMaterial(s string) (Material, error) {
	switch s {
	case "concrete":
		return Concrete, nil
	case "steel":
		return Steel, nil
	case "wood":
		return Wood, nil
	}
	return Concrete, fmt.Errorf("unknown material %q", s)
}

// MarshalYAML implements yaml.Marshaler.
func (m Material) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *Material) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseMaterial(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// BuildingSpec describes the structure under test. Dimensions are meters,
// Stiffness is a unitless 1-10 rating, DampingRatio the usual 0.01-0.1
// fraction of critical damping.
type BuildingSpec struct {
	Height       float64  `json:"height" yaml:"height"`
	Width        float64  `json:"width" yaml:"width"`
	Depth        float64  `json:"depth" yaml:"depth"`
	FloorCount   int      `json:"floorCount" yaml:"floorCount"`
	Stiffness    float64  `json:"stiffness" yaml:"stiffness"`
	DampingRatio float64  `json:"dampingRatio" yaml:"dampingRatio"`
	Material     Material `json:"material" yaml:"material"`
}

// Clamped returns a copy with every field pulled into its documented domain.
// Out-of-range input drives a live animation, so the contract is clamp and
// continue, never error out. Stiffness and DampingRatio are division
// operands downstream and must stay strictly positive.
func (b BuildingSpec) Clamped() BuildingSpec {
	out := b
	if !isFinite(out.Height) || out.Height < 3 {
		out.Height = 3
	}
	if out.Height > 500 {
		out.Height = 500
	}
	if !isFinite(out.Width) || out.Width < 1 {
		out.Width = 1
	}
	if !isFinite(out.Depth) || out.Depth < 1 {
		out.Depth = 1
	}
	if out.FloorCount < 1 {
		out.FloorCount = 1
	}
	if !isFinite(out.Stiffness) {
		out.Stiffness = 5
	}
	out.Stiffness = clamp(out.Stiffness, 1, 10)
	if !isFinite(out.DampingRatio) {
		out.DampingRatio = 0.05
	}
	out.DampingRatio = clamp(out.DampingRatio, 0.01, 0.1)
	if out.Material < Concrete || out.Material > Wood {
		out.Material = Concrete
	}
	return out
}

// StoryHeight is the height of one floor slab-to-slab.
func (b BuildingSpec) StoryHeight() float64 {
	return b.Height / float64(b.FloorCount)
}

// Epicenter is the planar location of the quake source on the ground plane.
type Epicenter struct {
	X float64 `json:"x" yaml:"x"`
	Z float64 `json:"z" yaml:"z"`
}

// SeismicSpec describes the earthquake event driving the simulation.
type SeismicSpec struct {
	Magnitude    float64   `json:"magnitude" yaml:"magnitude"`
	Depth        float64   `json:"depth" yaml:"depth"`
	Epicenter    Epicenter `json:"epicenter" yaml:"epicenter"`
	WaveVelocity float64   `json:"waveVelocity" yaml:"waveVelocity"`
	Duration     float64   `json:"duration" yaml:"duration"`
}

// Clamped pulls the event parameters into their valid ranges. WaveVelocity
// feeds divisions and frequency terms and must stay strictly positive.
func (s SeismicSpec) Clamped() SeismicSpec {
	out := s
	if !isFinite(out.Magnitude) {
		out.Magnitude = 5
	}
	out.Magnitude = clamp(out.Magnitude, 1, 10)
	if !isFinite(out.Depth) || out.Depth < 0 {
		out.Depth = 0
	}
	if out.Depth > 700 {
		out.Depth = 700
	}
	if !isFinite(out.Epicenter.X) {
		out.Epicenter.X = 0
	}
	if !isFinite(out.Epicenter.Z) {
		out.Epicenter.Z = 0
	}
	if !isFinite(out.WaveVelocity) || out.WaveVelocity <= 0 {
		out.WaveVelocity = 0.1
	}
	if !isFinite(out.Duration) || out.Duration < 1 {
		out.Duration = 1
	}
	return out
}
