// Package seismic implements the closed-form earthquake response engine:
// per-element kinematics, damage severity, progressive collapse, surface
// material mapping, the propagating ground wave field and the per-connection
// interaction analysis. Everything is a pure function of the input specs and
// the absolute elapsed time; re-evaluating at the same instant reproduces
// bit-identical output.
package seismic

import (
	"math"

	"seismicsim/core"
)

// Type vulnerability: columns take the full brunt, beams and slabs
// progressively less.
func typeVulnerability(t core.ElementType) float64 {
	switch t {
	case core.Column:
		return 1.0
	case core.Beam:
		return 0.85
	case core.Slab:
		return 0.7
	default:
		// Foundations and joints are assessed through the interaction
		// analysis, not the element damage curve.
		return 0.7
	}
}

func damageMaterialFactor(m core.Material) float64 {
	switch m {
	case core.Concrete:
		return 0.8
	case core.Steel:
		return 1.0
	case core.Wood:
		return 1.3
	}
	return 0.8
}

// Damage computes the static severity potential for one element: a scalar in
// [0,1] from its height fraction up the building, the material, the
// structural ratings and the event magnitude. Time never enters — damage is
// where the structure is weak, not how far the shaking has gotten.
//
// heightFraction is the element's height divided by total height. The caller
// guarantees dampingRatio > 0 (it divides).
func Damage(heightFraction, magnitude, stiffness, dampingRatio float64, material core.Material, elementType core.ElementType) float64 {
	heightFactor := math.Pow(heightFraction, 0.7)
	structuralFactor := (10 - stiffness) / 10 * (1 / (dampingRatio * 20))
	damage := magnitude * 0.08 * damageMaterialFactor(material) * heightFactor * structuralFactor * typeVulnerability(elementType)
	if math.IsNaN(damage) {
		return 0
	}
	if damage < 0 {
		return 0
	}
	if damage > 1 {
		return 1
	}
	return damage
}
