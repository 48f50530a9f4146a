package seismic

import (
	"math"

	"seismicsim/core"
)

// Collapse progresses over this many seconds once the threshold is crossed.
const collapseRampSeconds = 3.0

func collapseMaterialFactor(m core.Material) float64 {
	switch m {
	case core.Concrete:
		return 0.7
	case core.Steel:
		return 0.8
	case core.Wood:
		return 1.3
	}
	return 0.7
}

// CollapseRisk is the aggregate failure potential for the given static
// parameters, clamped to 1. Magnitudes below 4 produce zero-or-negative
// risk: the structure cannot collapse no matter how long the shaking runs.
func CollapseRisk(magnitude, stiffness, dampingRatio float64, material core.Material) float64 {
	structuralFactor := (10 - stiffness) / 10 * (1 / (dampingRatio * 15))
	risk := (magnitude*0.15 - 0.6) * collapseMaterialFactor(material) * structuralFactor
	if risk > 1 {
		return 1
	}
	return risk
}

// CollapseThreshold is the absolute simulation time at which the structure
// lets go. Returns +Inf when the risk is non-positive (no collapse ever).
// High risk collapses early (threshold approaches 4 s), marginal risk very
// late.
func CollapseThreshold(risk float64) float64 {
	if risk <= 0 {
		return math.Inf(1)
	}
	return 4 + (1-risk)*15
}

// EvalCollapse computes the collapse state at the given elapsed time.
//
// The transition Stable -> Collapsed is a one-way step function of
// elapsedTime against the threshold; because the threshold is itself a pure
// function of the static parameters, the onset time needs no hidden state —
// it IS the threshold. Progress ramps linearly for collapseRampSeconds
// measured from onset, then saturates at 1. Scrubbing the clock backwards
// below the threshold simply re-evaluates to Stable again.
func EvalCollapse(magnitude, stiffness, dampingRatio float64, material core.Material, elapsedTime float64) core.CollapseState {
	risk := CollapseRisk(magnitude, stiffness, dampingRatio, material)
	threshold := CollapseThreshold(risk)

	if risk <= 0.5 || elapsedTime <= threshold {
		return core.CollapseState{}
	}

	progress := (elapsedTime - threshold) / collapseRampSeconds
	if progress > 1 {
		progress = 1
	}
	return core.CollapseState{
		HasCollapsed: true,
		Progress:     progress,
		Onset:        threshold,
	}
}
