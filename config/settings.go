package config

import (
	"encoding/json"
	"fmt"
	"os"
)

type Settings struct {
	Viewer Viewer `json:"viewer"`
	Server Server `json:"server"`
	Ground Ground `json:"ground"`
}

type Viewer struct {
	Width     int `json:"width"`
	Height    int `json:"height"`
	TargetFPS int `json:"targetFps"`
}

type Server struct {
	Port             int `json:"port"`
	UpdateIntervalMs int `json:"updateIntervalMs"`
}

type Ground struct {
	// GridResolution is the number of samples per side of the ground mesh.
	GridResolution int     `json:"gridResolution"`
	Extent         float64 `json:"extent"`
	Comment        string  `json:"comment,omitempty"`
}

// Defaults returns the built-in settings used when no settings.json exists.
func Defaults() Settings {
	return Settings{
		Viewer: Viewer{
			Width:     1280,
			Height:    720,
			TargetFPS: 60,
		},
		Server: Server{
			Port:             8080,
			UpdateIntervalMs: 100,
		},
		Ground: Ground{
			GridResolution: 40,
			Extent:         120,
		},
	}
}

// Load reads settings from path, starting from defaults and overriding with
// whatever the file provides. A missing file is not an error.
func Load(path string) (Settings, error) {
	settings := Defaults()

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Printf("No %s found, using defaults\n", path)
			return settings, nil
		}
		return settings, err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&settings); err != nil {
		return Defaults(), fmt.Errorf("error parsing %s: %w", path, err)
	}

	// Bad values fall back rather than break the viewer loop.
	if settings.Ground.GridResolution < 2 {
		settings.Ground.GridResolution = Defaults().Ground.GridResolution
	}
	if settings.Ground.Extent <= 0 {
		settings.Ground.Extent = Defaults().Ground.Extent
	}
	if settings.Server.UpdateIntervalMs <= 0 {
		settings.Server.UpdateIntervalMs = Defaults().Server.UpdateIntervalMs
	}

	fmt.Printf("Loaded settings: %dx%d viewer, ground grid %d\n",
		settings.Viewer.Width, settings.Viewer.Height, settings.Ground.GridResolution)

	return settings, nil
}
