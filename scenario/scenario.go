// Package scenario persists named parameter sets — a building, an
// earthquake and the environment record for the interaction analysis — as
// YAML files, so runs can be saved and restored between sessions.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"seismicsim/core"
)

type Scenario struct {
	Name       string                 `yaml:"name"`
	Building   core.BuildingSpec      `yaml:"building"`
	Seismic    core.SeismicSpec       `yaml:"seismic"`
	Conditions core.DynamicConditions `yaml:"conditions"`
}

// Default is the out-of-the-box scenario: a mid-rise concrete frame under a
// strong magnitude 7 event nearby.
func Default() Scenario {
	return Scenario{
		Name: "midrise-concrete-m7",
		Building: core.BuildingSpec{
			Height:       30,
			Width:        10,
			Depth:        10,
			FloorCount:   8,
			Stiffness:    5,
			DampingRatio: 0.05,
			Material:     core.Concrete,
		},
		Seismic: core.SeismicSpec{
			Magnitude:    7,
			Depth:        12,
			Epicenter:    core.Epicenter{X: 25, Z: 15},
			WaveVelocity: 3,
			Duration:     45,
		},
		Conditions: core.DefaultConditions(),
	}
}

// Load reads a scenario file and clamps its specs into their valid domains,
// so a hand-edited file cannot push NaNs into the engine.
func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("reading scenario: %w", err)
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Scenario{}, fmt.Errorf("parsing scenario %s: %w", path, err)
	}

	sc.Building = sc.Building.Clamped()
	sc.Seismic = sc.Seismic.Clamped()
	if sc.Name == "" {
		sc.Name = "unnamed"
	}
	return sc, nil
}

// Save writes the scenario as YAML.
func Save(path string, sc Scenario) error {
	data, err := yaml.Marshal(sc)
	if err != nil {
		return fmt.Errorf("encoding scenario: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing scenario: %w", err)
	}
	return nil
}
