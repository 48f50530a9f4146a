package core

import "math"

// Vector3 represents a 3D vector
type Vector3 struct {
	X, Y, Z float64
}

func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v Vector3) Normalize() Vector3 {
	length := v.Length()
	if length == 0 {
		return Vector3{0, 0, 0}
	}
	return Vector3{v.X / length, v.Y / length, v.Z / length}
}

func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// IsFinite reports whether all components are finite numbers.
func (v Vector3) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Transform is the per-element rigid state handed to the render layer.
// It is a plain value object; the engine never holds scene-graph handles.
type Transform struct {
	Position Vector3 `json:"position"`
	Rotation Vector3 `json:"rotation"`
	Scale    Vector3 `json:"scale"`
}

// IdentityTransform is the safe default an element falls back to when a
// numeric guard trips.
func IdentityTransform() Transform {
	return Transform{Scale: Vector3{1, 1, 1}}
}

func (t Transform) IsFinite() bool {
	return t.Position.IsFinite() && t.Rotation.IsFinite() && t.Scale.IsFinite()
}

// ColorRGB is a normalized [0,1] color triple.
type ColorRGB struct {
	R, G, B float64
}

// Lerp interpolates component-wise toward other by t in [0,1].
func (c ColorRGB) Lerp(other ColorRGB, t float64) ColorRGB {
	return ColorRGB{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
	}
}

func (c ColorRGB) Scale(s float64) ColorRGB {
	return ColorRGB{c.R * s, c.G * s, c.B * s}
}

// MaterialDescriptor is the visual surface state for one element.
type MaterialDescriptor struct {
	Color     ColorRGB `json:"color"`
	Roughness float64  `json:"roughness"`
	Metalness float64  `json:"metalness"`
	Emissive  ColorRGB `json:"emissive"`
}

// ElementState is the full per-element output of one engine evaluation:
// rigid transform, damage severity and surface material. Recomputed fresh
// every tick, never mutated in place.
type ElementState struct {
	Ref       ElementRef         `json:"ref"`
	Transform Transform          `json:"transform"`
	Damage    float64            `json:"damage"`
	Material  MaterialDescriptor `json:"material"`
}

// CollapseState tracks whether the structure has failed and how far the
// progressive collapse has run. Onset is the absolute simulation time at
// which the collapse threshold was crossed; Progress ramps 0..1 over the
// three seconds after onset.
type CollapseState struct {
	HasCollapsed bool    `json:"hasCollapsed"`
	Progress     float64 `json:"progress"`
	Onset        float64 `json:"onset"`
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
