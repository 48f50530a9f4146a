package seismic

import (
	"math"

	"seismicsim/core"
)

// SwayOffsets computes the rigid horizontal displacement (x, z) for an
// element at floorY meters up a totalHeight building at elapsedTime.
//
// The response is a two-mode damped oscillation: a primary sway whose
// frequency stiffens with the structure and softens with height, amplitude-
// modulated by the passing ground wave, plus a faster secondary mode at 20 %
// weight. The mode shape factor grows superlinearly with height to
// exaggerate top-floor displacement. Once the structure has collapsed the
// damping decay stops, the response scales up through the collapse ramp and
// a chaotic jitter term takes over.
//
// Everything is a pure function of elapsedTime; the only discontinuity is
// the collapse onset instant, which models sudden structural failure.
func SwayOffsets(floorY, totalHeight, magnitude, elapsedTime, waveVelocity, stiffness, dampingRatio float64, cs core.CollapseState) (x, z float64) {
	modeShape := math.Pow(floorY/totalHeight, 1.3)
	baseAmplitude := magnitude * 0.08 * (10 / stiffness)

	damping := 1.0
	if !cs.HasCollapsed {
		damping = math.Exp(-dampingRatio * elapsedTime * 1.5)
	}

	primaryFreq := 1.0 + stiffness*0.4 - totalHeight*0.004
	secondaryFreq := primaryFreq * 1.4

	x = baseAmplitude * modeShape * damping *
		(0.8*math.Sin(elapsedTime*primaryFreq*2)*math.Sin(elapsedTime*waveVelocity*0.5) +
			0.2*math.Sin(elapsedTime*secondaryFreq*3))
	z = baseAmplitude * modeShape * damping *
		(0.8*math.Cos(elapsedTime*primaryFreq*2+0.4)*math.Sin(elapsedTime*waveVelocity*0.5+0.7) +
			0.2*math.Cos(elapsedTime*secondaryFreq*3))

	if cs.HasCollapsed {
		collapseFactor := 5.0 * cs.Progress
		x *= collapseFactor
		z *= collapseFactor

		chaosX := math.Sin(elapsedTime*10+floorY) * 0.5
		chaosZ := math.Cos(elapsedTime*10+floorY) * 0.5
		x += chaosX * modeShape * 10
		z += chaosZ * modeShape * 10
	}

	return x, z
}

// CollapseDrop is the vertical settlement for an element at floorY while the
// collapse runs: each element sinks toward the ground proportionally to its
// height, pancaking the stack.
func CollapseDrop(floorY float64, cs core.CollapseState) float64 {
	if !cs.HasCollapsed {
		return 0
	}
	return -cs.Progress * floorY * 0.5
}

// CollapseTilt is the rotation applied to a collapsing element, driven by
// the same chaos phase as the jitter so neighboring floors tumble out of
// sync.
func CollapseTilt(floorY, elapsedTime float64, modeShape float64, cs core.CollapseState) core.Vector3 {
	if !cs.HasCollapsed {
		return core.Vector3{}
	}
	return core.Vector3{
		X: math.Cos(elapsedTime*10+floorY) * 0.4 * cs.Progress * modeShape,
		Y: 0,
		Z: math.Sin(elapsedTime*10+floorY) * 0.4 * cs.Progress * modeShape,
	}
}

// ModeShape exposes the height weighting so callers composing rotation or
// scale reuse the exact kinematic curve.
func ModeShape(floorY, totalHeight float64) float64 {
	return math.Pow(floorY/totalHeight, 1.3)
}
