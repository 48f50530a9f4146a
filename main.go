package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"seismicsim/config"
	"seismicsim/scenario"
)

func main() {
	runtime.LockOSThread()

	var (
		settingsPath = flag.String("settings", "settings.json", "Runtime settings file")
		scenarioPath = flag.String("scenario", "", "Scenario YAML (built-in default when empty)")
		serve        = flag.Bool("serve", false, "Run the websocket frame server instead of the native viewer")
	)
	flag.Parse()

	fmt.Println("=== Seismic Response Simulator ===")

	settings, err := config.Load(*settingsPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	sc := scenario.Default()
	if *scenarioPath != "" {
		sc, err = scenario.Load(*scenarioPath)
		if err != nil {
			log.Fatalf("Failed to load scenario: %v", err)
		}
	}

	fmt.Printf("Scenario: %s\n", sc.Name)
	fmt.Printf("Building: %.0fm, %d floors, %s (stiffness %.1f, damping %.3f)\n",
		sc.Building.Height, sc.Building.FloorCount, sc.Building.Material,
		sc.Building.Stiffness, sc.Building.DampingRatio)
	fmt.Printf("Event: M%.1f, depth %.0f km, wave velocity %.1f\n",
		sc.Seismic.Magnitude, sc.Seismic.Depth, sc.Seismic.WaveVelocity)

	if *serve {
		log.Fatal(startServer(settings, sc))
	}
	runViewer(settings, sc)
}
