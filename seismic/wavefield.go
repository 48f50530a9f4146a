package seismic

import (
	"math"

	"seismicsim/core"
)

// WaveKind distinguishes the fast compressional front from the slower,
// larger shear front.
type WaveKind int

const (
	PWave WaveKind = iota
	SWave
)

func (k WaveKind) String() string {
	if k == PWave {
		return "p"
	}
	return "s"
}

// Ring is one discrete visual wavefront expanding over the ground plane.
type Ring struct {
	Kind      WaveKind `json:"kind"`
	Radius    float64  `json:"radius"`
	Opacity   float64  `json:"opacity"`
	Thickness float64  `json:"thickness"`
}

// Relative front speeds: P waves run ahead of S waves at roughly the real
// 1.6:1 ratio, approximated here by the 1.5/0.8 multipliers on the shared
// wave velocity.
const (
	pSpeedFactor = 1.5
	sSpeedFactor = 0.8
	ringsPerKind = 3
)

// GroundDisplacement evaluates the vertical ground deformation at planar
// point (px, pz) for the given event at elapsedTime.
//
// Two expanding wavefronts (P ahead, S behind at 60 % radius) each carry an
// exponentially localized oscillation packet; their weighted sum decays
// linearly with distance out to magnitude*15 and scales with magnitude.
// Inside one meter of the epicenter the packet envelopes degenerate, so a
// pure oscillation substitutes; within magnitude*2 a crater depression is
// superimposed.
func GroundDisplacement(s core.SeismicSpec, px, pz, elapsedTime float64) float64 {
	s = s.Clamped()
	d := math.Hypot(px-s.Epicenter.X, pz-s.Epicenter.Z)

	var displacement float64
	if d < 1 {
		displacement = math.Sin(elapsedTime*10) * s.Magnitude * 0.05
	} else {
		pRadius := elapsedTime * s.WaveVelocity * 2
		sRadius := pRadius * 0.6

		pEffect := math.Exp(-math.Abs(d-pRadius)*0.3) * math.Sin(d*0.8-elapsedTime*10)
		sEffect := math.Exp(-math.Abs(d-sRadius)*0.45) * math.Sin(d*1.2-elapsedTime*8)

		distanceDecay := 1 - d/(s.Magnitude*15)
		if distanceDecay < 0 {
			distanceDecay = 0
		}

		combined := (0.6*pEffect + 0.4*sEffect) * distanceDecay
		displacement = combined * (s.Magnitude * 0.05)
	}

	if d < s.Magnitude*2 {
		displacement -= math.Exp(-d*0.5) * s.Magnitude * 0.1
	}

	if math.IsNaN(displacement) || math.IsInf(displacement, 0) {
		return 0
	}
	return displacement
}

// WaveRings produces the discrete ring roster at elapsedTime: three P rings
// and three S rings per kind, staggered by a third of the travel range so a
// steady train radiates outward for as long as the clock runs. Radius wraps
// at the magnitude-scaled maximum and opacity fades linearly to zero on the
// way out. Pure in elapsedTime: scrubbing backwards replays the same train.
func WaveRings(s core.SeismicSpec, elapsedTime float64) []Ring {
	s = s.Clamped()
	if elapsedTime <= 0 {
		return nil
	}

	maxRadius := s.Magnitude * 25
	rings := make([]Ring, 0, ringsPerKind*2)

	emit := func(kind WaveKind, speedFactor, thickness float64) {
		speed := s.WaveVelocity * speedFactor
		for i := 0; i < ringsPerKind; i++ {
			// Each ring launches a third of a cycle after the previous.
			birth := float64(i) * maxRadius / speed / ringsPerKind
			if elapsedTime <= birth {
				continue
			}
			travel := math.Mod((elapsedTime-birth)*speed, maxRadius)
			rings = append(rings, Ring{
				Kind:      kind,
				Radius:    0.5 + travel,
				Opacity:   1 - travel/maxRadius,
				Thickness: thickness,
			})
		}
	}

	// P rings are faster and thinner, S rings slower and thicker.
	emit(PWave, pSpeedFactor, 0.15)
	emit(SWave, sSpeedFactor, 0.35)

	return rings
}
