package main

import "time"

// BroadcastPacer widens the websocket update interval once the shaking has
// decayed and tightens it again while the ground is moving hard or a
// collapse is running. Pacing only changes how often frames are uploaded;
// the computed values at any instant are untouched.
type BroadcastPacer struct {
	MinInterval     time.Duration
	MaxInterval     time.Duration
	CurrentInterval time.Duration
	MotionThreshold float64
	LastPeakMotion  float64
}

// NewBroadcastPacer starts at the base interval with the tuning used by the
// server loop.
func NewBroadcastPacer(base time.Duration) *BroadcastPacer {
	return &BroadcastPacer{
		MinInterval:     base,
		MaxInterval:     base * 5,
		CurrentInterval: base,
		MotionThreshold: 0.02,
	}
}

// NextInterval picks the delay before the following broadcast based on the
// frame just sent.
func (p *BroadcastPacer) NextInterval(frame FrameData) time.Duration {
	peak := peakGroundMotion(frame)
	p.LastPeakMotion = peak

	switch {
	case frame.Collapsed && frame.CollapseProgress < 1:
		// Progressive collapse is the one moment clients must not miss.
		p.CurrentInterval = p.MinInterval
	case peak > p.MotionThreshold:
		p.CurrentInterval = p.MinInterval
	case peak > p.MotionThreshold/2:
		p.CurrentInterval = p.MinInterval * 2
	default:
		// Quiet ground, coast.
		p.CurrentInterval = p.MaxInterval
	}

	return p.CurrentInterval
}
