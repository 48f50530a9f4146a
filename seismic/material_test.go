package seismic

import (
	"math"
	"testing"

	"seismicsim/core"
)

// TestGradientContinuity checks the three-stop damage gradient has no seam:
// colors straddling a segment boundary stay within a small multiple of the
// straddle width.
func TestGradientContinuity(t *testing.T) {
	const eps = 1e-6
	// Max gradient slope is 1/0.3 per unit damage per channel.
	const k = 10.0

	for _, boundary := range []float64{0.3, 0.6} {
		lo := damageColor(boundary - eps)
		hi := damageColor(boundary + eps)
		dr := math.Abs(lo.R - hi.R)
		dg := math.Abs(lo.G - hi.G)
		db := math.Abs(lo.B - hi.B)
		if dr > eps*k || dg > eps*k || db > eps*k {
			t.Errorf("seam at %v: delta=(%v,%v,%v)", boundary, dr, dg, db)
		}
	}
}

func TestGradientStops(t *testing.T) {
	tests := []struct {
		name   string
		damage float64
		want   core.ColorRGB
	}{
		{"intact is green", 0, gradientGreen},
		{"warning is yellow", 0.3, gradientYellow},
		{"severe is orange", 0.6, gradientOrange},
		{"failed is red", 1.0, gradientRed},
		{"mid first segment", 0.15, core.ColorRGB{R: 0.5, G: 1.0, B: 0.0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := damageColor(tc.damage)
			if math.Abs(got.R-tc.want.R) > 1e-9 || math.Abs(got.G-tc.want.G) > 1e-9 || math.Abs(got.B-tc.want.B) > 1e-9 {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestMapMaterialAdjustments(t *testing.T) {
	base := BaseMaterial(core.Steel)

	t.Run("roughness grows with damage", func(t *testing.T) {
		out := MapMaterial(base, 0.5, false)
		want := base.Roughness + 0.5*0.2
		if math.Abs(out.Roughness-want) > 1e-9 {
			t.Errorf("roughness: got %v, want %v", out.Roughness, want)
		}
	})

	t.Run("metalness floors at zero", func(t *testing.T) {
		woodBase := BaseMaterial(core.Wood) // metalness 0
		out := MapMaterial(woodBase, 1.0, false)
		if out.Metalness != 0 {
			t.Errorf("metalness: got %v, want 0", out.Metalness)
		}
	})

	t.Run("no glow below threshold", func(t *testing.T) {
		out := MapMaterial(base, 0.4, false)
		if out.Emissive != (core.ColorRGB{}) {
			t.Errorf("emissive should be zero at 0.4, got %+v", out.Emissive)
		}
	})

	t.Run("crack glow above threshold", func(t *testing.T) {
		out := MapMaterial(base, 0.8, false)
		want := emissiveRed.Scale((0.8 - 0.4) * 0.5)
		if math.Abs(out.Emissive.R-want.R) > 1e-9 {
			t.Errorf("emissive: got %+v, want %+v", out.Emissive, want)
		}
	})

	t.Run("collapse amplifies damage by half", func(t *testing.T) {
		collapsed := MapMaterial(base, 0.5, true)
		plain := MapMaterial(base, 0.75, false)
		if collapsed.Color != plain.Color {
			t.Errorf("collapsed 0.5 should read like 0.75: %+v vs %+v", collapsed.Color, plain.Color)
		}
	})

	t.Run("collapse amplification saturates", func(t *testing.T) {
		out := MapMaterial(base, 0.9, true) // 1.35 clamps to 1
		if out.Color != gradientRed {
			t.Errorf("saturated color: got %+v, want red", out.Color)
		}
	})
}
