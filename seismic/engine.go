package seismic

import (
	"math"

	"seismicsim/core"
)

// Engine binds a building and a seismic event and evaluates per-element
// response states on demand. Construction clamps both specs into their
// valid domains; after that every evaluation is a pure function of the
// elapsed time, so the engine is safe to re-query at any instant in any
// order (timeline scrubbing is just re-evaluation).
//
// Damage is time-independent, so it is memoized per element; collapse and
// kinematics are O(1) per element per call.
type Engine struct {
	Building core.BuildingSpec
	Seismic  core.SeismicSpec

	elements    []core.Element
	byRef       map[core.ElementRef]core.Element
	damageCache map[core.ElementRef]float64
}

// NewEngine builds an engine for the given specs. Both specs are clamped;
// the element grid and connection graph derive from the clamped building.
func NewEngine(building core.BuildingSpec, event core.SeismicSpec) *Engine {
	b := building.Clamped()
	s := event.Clamped()

	elements := core.Elements(b)
	byRef := make(map[core.ElementRef]core.Element, len(elements))
	for _, e := range elements {
		byRef[e.Ref] = e
	}

	return &Engine{
		Building:    b,
		Seismic:     s,
		elements:    elements,
		byRef:       byRef,
		damageCache: make(map[core.ElementRef]float64, len(elements)),
	}
}

// Elements returns the building's structural grid in tick enumeration order.
func (e *Engine) Elements() []core.Element {
	return e.elements
}

// Collapse evaluates the collapse state at elapsedTime.
func (e *Engine) Collapse(elapsedTime float64) core.CollapseState {
	return EvalCollapse(e.Seismic.Magnitude, e.Building.Stiffness, e.Building.DampingRatio, e.Building.Material, elapsedTime)
}

// Damage returns the static severity for one element, memoized across ticks
// since it only depends on the fixed parameter tuple.
func (e *Engine) Damage(elem core.Element) float64 {
	if d, ok := e.damageCache[elem.Ref]; ok {
		return d
	}
	d := Damage(elem.FloorY()/e.Building.Height, e.Seismic.Magnitude,
		e.Building.Stiffness, e.Building.DampingRatio, e.Building.Material, elem.Ref.Type)
	e.damageCache[elem.Ref] = d
	return d
}

// ElementState evaluates the full response for one element at elapsedTime:
// transform, damage and surface material. Any non-finite intermediate
// resets the element to the identity transform and its pristine material so
// one corrupted element cannot blank the scene.
func (e *Engine) ElementState(ref core.ElementRef, elapsedTime float64) (core.ElementState, bool) {
	elem, ok := e.byRef[ref]
	if !ok {
		return core.ElementState{}, false
	}
	cs := e.Collapse(elapsedTime)
	return e.elementState(elem, cs, elapsedTime), true
}

// States evaluates every element of the grid at elapsedTime, in enumeration
// order. One collapse evaluation is shared across the whole frame.
func (e *Engine) States(elapsedTime float64) []core.ElementState {
	cs := e.Collapse(elapsedTime)
	out := make([]core.ElementState, len(e.elements))
	for i, elem := range e.elements {
		out[i] = e.elementState(elem, cs, elapsedTime)
	}
	return out
}

func (e *Engine) elementState(elem core.Element, cs core.CollapseState, elapsedTime float64) core.ElementState {
	damage := e.Damage(elem)
	base := BaseMaterial(e.Building.Material)

	// The foundation's center sits below grade; the response curves are
	// defined for heights along the building, so it rides at ground level.
	floorY := elem.FloorY()
	if floorY < 0 {
		floorY = 0
	}
	dx, dz := SwayOffsets(floorY, e.Building.Height, e.Seismic.Magnitude, elapsedTime,
		e.Seismic.WaveVelocity, e.Building.Stiffness, e.Building.DampingRatio, cs)
	dy := CollapseDrop(floorY, cs)

	mode := ModeShape(floorY, e.Building.Height)
	rotation := CollapseTilt(floorY, elapsedTime, mode, cs)

	scale := core.Vector3{X: 1, Y: 1, Z: 1}
	if cs.HasCollapsed && elem.Ref.Type == core.Column {
		// Columns crush axially as the stack pancakes.
		scale.Y = 1 - 0.3*cs.Progress
	}

	state := core.ElementState{
		Ref: elem.Ref,
		Transform: core.Transform{
			Position: core.Vector3{X: elem.Center.X + dx, Y: elem.Center.Y + dy, Z: elem.Center.Z + dz},
			Rotation: rotation,
			Scale:    scale,
		},
		Damage:   damage,
		Material: MapMaterial(base, damage, cs.HasCollapsed),
	}

	// Numeric instability guard: never hand the render layer a NaN.
	if !state.Transform.IsFinite() || math.IsNaN(state.Damage) {
		state.Transform = core.IdentityTransform()
		state.Transform.Position = elem.Center
		state.Damage = 0
		state.Material = base
	}
	return state
}

// GroundDisplacement proxies the wave field for this engine's event.
func (e *Engine) GroundDisplacement(px, pz, elapsedTime float64) float64 {
	return GroundDisplacement(e.Seismic, px, pz, elapsedTime)
}

// WaveRings proxies the discrete ring roster for this engine's event.
func (e *Engine) WaveRings(elapsedTime float64) []Ring {
	return WaveRings(e.Seismic, elapsedTime)
}

// ComputeElementState is the one-shot form of the render-layer interface for
// callers that do not hold an engine.
func ComputeElementState(building core.BuildingSpec, event core.SeismicSpec, ref core.ElementRef, elapsedTime float64) (core.ElementState, bool) {
	return NewEngine(building, event).ElementState(ref, elapsedTime)
}
