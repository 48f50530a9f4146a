package main

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"seismicsim/config"
	"seismicsim/core"
	"seismicsim/scenario"
	"seismicsim/seismic"
)

// toRaylibColor converts the engine color to an 8-bit raylib color.
func toRaylibColor(c core.ColorRGB, alpha uint8) rl.Color {
	clampByte := func(f float64) uint8 {
		if f <= 0 {
			return 0
		}
		if f >= 1 {
			return 255
		}
		return uint8(f * 255)
	}
	return rl.NewColor(clampByte(c.R), clampByte(c.G), clampByte(c.B), alpha)
}

func toRaylibVec(v core.Vector3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

// runViewer opens the native window and drives the simulation clock from
// wall time. All scene state is rebuilt from the engine every frame; the
// viewer holds nothing but the clock, the speed and the camera.
func runViewer(settings config.Settings, sc scenario.Scenario) {
	engine := seismic.NewEngine(sc.Building, sc.Seismic)

	rl.InitWindow(int32(settings.Viewer.Width), int32(settings.Viewer.Height),
		"Seismic Response Simulator")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(settings.Viewer.TargetFPS))

	camera := rl.Camera3D{
		Position:   rl.NewVector3(35, 28, 35),
		Target:     rl.NewVector3(0, float32(engine.Building.Height/2), 0),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}

	fmt.Println("\nControls:")
	fmt.Println("  SPACE: Pause/resume")
	fmt.Println("  LEFT/RIGHT: Scrub timeline")
	fmt.Println("  UP/DOWN: Change magnitude")
	fmt.Println("  R: Restart")
	fmt.Println("  Mouse: Orbit camera")
	fmt.Println("  ESC: Exit")

	elapsed := 0.0
	paused := false

	for !rl.WindowShouldClose() {
		dt := float64(rl.GetFrameTime())

		if rl.IsKeyPressed(rl.KeySpace) {
			paused = !paused
		}
		if rl.IsKeyPressed(rl.KeyR) {
			elapsed = 0
		}
		if rl.IsKeyDown(rl.KeyLeft) {
			// Scrubbing backwards is plain re-evaluation; nothing to rewind.
			elapsed -= dt * 5
			if elapsed < 0 {
				elapsed = 0
			}
		}
		if rl.IsKeyDown(rl.KeyRight) {
			elapsed += dt * 5
		}
		if rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyDown) {
			mag := engine.Seismic.Magnitude
			if rl.IsKeyPressed(rl.KeyUp) {
				mag += 0.5
			} else {
				mag -= 0.5
			}
			sc.Seismic.Magnitude = mag
			engine = seismic.NewEngine(sc.Building, sc.Seismic)
		}

		if !paused {
			elapsed += dt
		}

		rl.UpdateCamera(&camera, rl.CameraOrbital)

		frame := buildFrame(engine, settings.Ground, elapsed, 1.0)

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(18, 18, 28, 255))

		rl.BeginMode3D(camera)
		drawGround(frame.Ground)
		drawRings(engine.Seismic.Epicenter, frame.Rings)
		drawElements(frame.Elements, engine.Elements())
		rl.EndMode3D()

		drawHUD(frame)
		rl.EndDrawing()
	}

	fmt.Println("\nShutting down...")
}

// drawElements pairs the per-frame states with the static grid; both come
// back in the same enumeration order, so index i of one matches index i of
// the other.
func drawElements(states []core.ElementState, elems []core.Element) {
	for i, st := range states {
		size := rl.NewVector3(
			float32(elems[i].Size.X*st.Transform.Scale.X),
			float32(elems[i].Size.Y*st.Transform.Scale.Y),
			float32(elems[i].Size.Z*st.Transform.Scale.Z),
		)
		rl.DrawCubeV(toRaylibVec(st.Transform.Position), size, toRaylibColor(st.Material.Color, 255))

		// Crack glow renders as a wireframe shell.
		if st.Material.Emissive != (core.ColorRGB{}) {
			glow := toRaylibColor(core.ColorRGB{R: 1, G: 0.2, B: 0.1}, 90)
			rl.DrawCubeWiresV(toRaylibVec(st.Transform.Position), size, glow)
		}
	}
}

func drawGround(g GroundData) {
	if g.Resolution < 2 {
		return
	}
	step := g.Extent / float64(g.Resolution-1)
	half := g.Extent / 2
	cell := float32(step) * 0.9

	for i := 0; i < g.Resolution; i++ {
		z := -half + float64(i)*step
		for j := 0; j < g.Resolution; j++ {
			x := -half + float64(j)*step
			h := g.Heights[i*g.Resolution+j]

			// Color by displacement sign: uplift warm, depression cool.
			var col rl.Color
			if h >= 0 {
				col = rl.NewColor(150, 70, 50, 255)
			} else {
				col = rl.NewColor(50, 60, 90, 255)
			}
			pos := rl.NewVector3(float32(x), float32(h)-0.1, float32(z))
			rl.DrawCubeV(pos, rl.NewVector3(cell, 0.15, cell), col)
		}
	}
}

func drawRings(epicenter core.Epicenter, rings []seismic.Ring) {
	center := rl.NewVector3(float32(epicenter.X), 0.1, float32(epicenter.Z))
	for _, r := range rings {
		var col rl.Color
		if r.Kind == seismic.PWave {
			col = rl.NewColor(255, 200, 60, uint8(r.Opacity*255))
		} else {
			col = rl.NewColor(255, 90, 40, uint8(r.Opacity*255))
		}
		rl.DrawCircle3D(center, float32(r.Radius), rl.NewVector3(1, 0, 0), 90, col)
		// Thicker S fronts get a second circle to suggest width.
		if r.Thickness > 0.2 {
			rl.DrawCircle3D(center, float32(r.Radius-r.Thickness), rl.NewVector3(1, 0, 0), 90, col)
		}
	}
}

func drawHUD(frame FrameData) {
	rl.DrawText(fmt.Sprintf("t = %.1f s", frame.Time), 10, 10, 20, rl.RayWhite)
	rl.DrawText(fmt.Sprintf("M %.1f", frame.Magnitude), 10, 35, 20, rl.RayWhite)
	if frame.Collapsed {
		banner := fmt.Sprintf("STRUCTURAL COLLAPSE (%.0f%%)", frame.CollapseProgress*100)
		rl.DrawText(banner, 10, 60, 24, rl.NewColor(255, 60, 60, 255))
	}
	rl.DrawFPS(10, 95)
}
