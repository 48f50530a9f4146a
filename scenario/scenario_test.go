package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"seismicsim/core"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	in := Default()
	in.Name = "test-run"
	in.Building.Material = core.Wood
	in.Seismic.Magnitude = 9

	if err := Save(path, in); err != nil {
		t.Fatal(err)
	}
	out, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if out.Name != "test-run" {
		t.Errorf("name: got %q", out.Name)
	}
	if out.Building != in.Building {
		t.Errorf("building: got %+v, want %+v", out.Building, in.Building)
	}
	if out.Seismic != in.Seismic {
		t.Errorf("seismic: got %+v, want %+v", out.Seismic, in.Seismic)
	}
	if out.Conditions != in.Conditions {
		t.Errorf("conditions: got %+v, want %+v", out.Conditions, in.Conditions)
	}
}

// TestLoadClampsHandEditedValues: a scenario file with out-of-domain numbers
// loads clamped instead of poisoning the engine.
func TestLoadClampsHandEditedValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hostile.yaml")
	data := `
name: hostile
building:
  height: 30
  width: 10
  depth: 10
  floorCount: 0
  stiffness: 25
  dampingRatio: 0
  material: steel
seismic:
  magnitude: 50
  depth: 10
  epicenter: {x: 0, z: 0}
  waveVelocity: 0
  duration: 30
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	sc, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if sc.Building.FloorCount != 1 {
		t.Errorf("floor count: got %d, want 1", sc.Building.FloorCount)
	}
	if sc.Building.Stiffness != 10 {
		t.Errorf("stiffness: got %v, want 10", sc.Building.Stiffness)
	}
	if sc.Building.DampingRatio != 0.01 {
		t.Errorf("damping: got %v, want 0.01", sc.Building.DampingRatio)
	}
	if sc.Seismic.Magnitude != 10 {
		t.Errorf("magnitude: got %v, want 10", sc.Seismic.Magnitude)
	}
	if sc.Seismic.WaveVelocity <= 0 {
		t.Errorf("wave velocity: got %v, want > 0", sc.Seismic.WaveVelocity)
	}
}

func TestLoadUnknownMaterial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := "name: bad\nbuilding: {material: unobtanium}\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("unknown material should fail to parse")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing scenario should error")
	}
}
