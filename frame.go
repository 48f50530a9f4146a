package main

import (
	"seismicsim/config"
	"seismicsim/core"
	"seismicsim/seismic"
)

// GroundData is the sampled wave-field patch around the building: a square
// grid of vertical displacements, row-major, resolution samples per side
// spanning [-extent/2, extent/2] on both axes.
type GroundData struct {
	Resolution int       `json:"resolution"`
	Extent     float64   `json:"extent"`
	Heights    []float64 `json:"heights"`
}

// FrameData is one complete renderable snapshot, broadcast to websocket
// clients and consumed by the native viewer. Same role as a mesh update:
// plain values only, nothing retained between frames.
type FrameData struct {
	Type             string              `json:"type"`
	Time             float64             `json:"time"`
	TimeScale        float64             `json:"timeScale"`
	Elements         []core.ElementState `json:"elements"`
	Ground           GroundData          `json:"ground"`
	Rings            []seismic.Ring      `json:"rings"`
	Collapsed        bool                `json:"collapsed"`
	CollapseProgress float64             `json:"collapseProgress"`
	Magnitude        float64             `json:"magnitude"`
}

// buildFrame evaluates the full scene at the given absolute simulation time.
// Pure in elapsedTime: the server's scrub control and the viewer's arrow
// keys both just move the clock and call this again.
func buildFrame(engine *seismic.Engine, ground config.Ground, elapsedTime, timeScale float64) FrameData {
	cs := engine.Collapse(elapsedTime)

	n := ground.GridResolution
	heights := make([]float64, n*n)
	step := ground.Extent / float64(n-1)
	half := ground.Extent / 2
	for i := 0; i < n; i++ {
		z := -half + float64(i)*step
		for j := 0; j < n; j++ {
			x := -half + float64(j)*step
			heights[i*n+j] = engine.GroundDisplacement(x, z, elapsedTime)
		}
	}

	return FrameData{
		Type:      "frame",
		Time:      elapsedTime,
		TimeScale: timeScale,
		Elements:  engine.States(elapsedTime),
		Ground: GroundData{
			Resolution: n,
			Extent:     ground.Extent,
			Heights:    heights,
		},
		Rings:            engine.WaveRings(elapsedTime),
		Collapsed:        cs.HasCollapsed,
		CollapseProgress: cs.Progress,
		Magnitude:        engine.Seismic.Magnitude,
	}
}

// peakGroundMotion scans the sampled patch for the largest absolute
// displacement; the broadcast pacer keys off it.
func peakGroundMotion(frame FrameData) float64 {
	peak := 0.0
	for _, h := range frame.Ground.Heights {
		if h < 0 {
			h = -h
		}
		if h > peak {
			peak = h
		}
	}
	return peak
}
