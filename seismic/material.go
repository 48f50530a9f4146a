package seismic

import "seismicsim/core"

// Damage gradient stops: intact green through warning yellow and orange to
// failure red. Emissive crack glow is a dark red that fades in above the
// 0.4 damage threshold.
var (
	gradientGreen  = core.ColorRGB{R: 0.0, G: 1.0, B: 0.0}
	gradientYellow = core.ColorRGB{R: 1.0, G: 1.0, B: 0.0}
	gradientOrange = core.ColorRGB{R: 1.0, G: 0.5, B: 0.0}
	gradientRed    = core.ColorRGB{R: 1.0, G: 0.0, B: 0.0}
	emissiveRed    = core.ColorRGB{R: 0.3, G: 0.0, B: 0.0}
)

// BaseMaterial is the pristine surface descriptor for a structural material:
// matte grey concrete, blue-grey metallic steel, brown matte wood.
func BaseMaterial(m core.Material) core.MaterialDescriptor {
	switch m {
	case core.Concrete:
		return core.MaterialDescriptor{Color: core.ColorRGB{R: 0.53, G: 0.53, B: 0.53}, Roughness: 0.8, Metalness: 0.1}
	case core.Steel:
		return core.MaterialDescriptor{Color: core.ColorRGB{R: 0.60, G: 0.60, B: 0.67}, Roughness: 0.4, Metalness: 0.8}
	case core.Wood:
		return core.MaterialDescriptor{Color: core.ColorRGB{R: 0.55, G: 0.35, B: 0.17}, Roughness: 0.7, Metalness: 0.0}
	}
	return core.MaterialDescriptor{Color: core.ColorRGB{R: 0.53, G: 0.53, B: 0.53}, Roughness: 0.8, Metalness: 0.1}
}

// damageColor maps effective damage onto the three-stop gradient. Each
// segment renormalizes its sub-range to [0,1] before interpolating, so the
// stops join without a seam.
func damageColor(effectiveDamage float64) core.ColorRGB {
	switch {
	case effectiveDamage <= 0.3:
		return gradientGreen.Lerp(gradientYellow, effectiveDamage/0.3)
	case effectiveDamage <= 0.6:
		return gradientYellow.Lerp(gradientOrange, (effectiveDamage-0.3)/0.3)
	default:
		return gradientOrange.Lerp(gradientRed, (effectiveDamage-0.6)/0.4)
	}
}

// MapMaterial turns a base surface plus damage into the rendered material.
// Collapse amplifies the damage reading by half. Surfaces roughen with
// damage and lose their metallic sheen; above 0.4 effective damage the
// cracks start to glow.
func MapMaterial(base core.MaterialDescriptor, damage float64, hasCollapsed bool) core.MaterialDescriptor {
	effective := damage
	if hasCollapsed {
		effective = damage * 1.5
		if effective > 1 {
			effective = 1
		}
	}

	out := base
	out.Color = damageColor(effective)
	out.Roughness = base.Roughness + effective*0.2
	out.Metalness = base.Metalness - effective*0.5
	if out.Metalness < 0 {
		out.Metalness = 0
	}

	glow := effective - 0.4
	if glow > 0 {
		out.Emissive = emissiveRed.Scale(glow * 0.5)
	} else {
		out.Emissive = core.ColorRGB{}
	}
	return out
}
