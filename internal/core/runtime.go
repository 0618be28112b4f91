package core

import "time"

// RuntimeConfig holds the per-run knobs that come from the command line
// rather than the tuning file.
type RuntimeConfig struct {
	TickRate int   // Render ticks per second (default 60)
	Seed     int64 // RNG seed for pickup placement; 0 means pick one at start
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0,
	}
}

// Resolved fills unset fields: a non-positive tick rate becomes the default
// and a zero seed is derived from now.
func (c RuntimeConfig) Resolved(now time.Time) RuntimeConfig {
	if c.TickRate <= 0 {
		c.TickRate = DefaultConfig().TickRate
	}
	if c.Seed == 0 {
		c.Seed = now.UnixNano()
	}
	return c
}

// FrameGate decides when the simulation may advance.
// The platform polls it on every render tick; it opens once at least one
// frame interval of wall-clock time has accumulated since the last step.
type FrameGate struct {
	interval time.Duration
	last     time.Time
	started  bool
}

// NewFrameGate creates a gate that opens frameRate times per second.
// A non-positive frame rate opens the gate on every poll.
func NewFrameGate(frameRate int) *FrameGate {
	g := &FrameGate{}
	g.SetFrameRate(frameRate)
	return g
}

// SetFrameRate changes the target interval without losing accumulated time.
func (g *FrameGate) SetFrameRate(frameRate int) {
	if frameRate <= 0 {
		g.interval = 0
		return
	}
	g.interval = time.Second / time.Duration(frameRate)
}

// Interval returns the target time between simulation steps.
func (g *FrameGate) Interval() time.Duration {
	return g.interval
}

// Ready reports whether a simulation step is due at now and, if so, the
// elapsed time to feed into it. The first poll only starts the clock.
func (g *FrameGate) Ready(now time.Time) (time.Duration, bool) {
	if !g.started {
		g.last = now
		g.started = true
		return 0, false
	}

	elapsed := now.Sub(g.last)
	if elapsed < g.interval || elapsed <= 0 {
		return 0, false
	}

	g.last = now
	return elapsed, true
}
