package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if s != Defaults() {
		t.Errorf("got %+v, want defaults", s)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	data := `{"server": {"port": 9999, "updateIntervalMs": 50}, "ground": {"gridResolution": 64, "extent": 200}}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Server.Port != 9999 || s.Server.UpdateIntervalMs != 50 {
		t.Errorf("server settings not applied: %+v", s.Server)
	}
	if s.Ground.GridResolution != 64 || s.Ground.Extent != 200 {
		t.Errorf("ground settings not applied: %+v", s.Ground)
	}
	// Untouched sections keep their defaults.
	if s.Viewer != Defaults().Viewer {
		t.Errorf("viewer defaults lost: %+v", s.Viewer)
	}
}

func TestLoadRejectsDegenerateValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	data := `{"ground": {"gridResolution": 0, "extent": -5}, "server": {"updateIntervalMs": -1}}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	d := Defaults()
	if s.Ground.GridResolution != d.Ground.GridResolution || s.Ground.Extent != d.Ground.Extent {
		t.Errorf("degenerate ground values should fall back: %+v", s.Ground)
	}
	if s.Server.UpdateIntervalMs != d.Server.UpdateIntervalMs {
		t.Errorf("degenerate interval should fall back: %+v", s.Server)
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed settings should error")
	}
}
