package lander

import (
	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
)

// Controls are the thrusters requested for one tick.
type Controls struct {
	Thrust bool
	Left   bool
	Right  bool
}

// FlightResult reports the vertical state after a step.
type FlightResult struct {
	Lift     float64
	Velocity float64
	Y        int
}

// FlightModel moves the lander one grid cell per tick. Lift integrates
// thrust and drag over elapsed time and only decides the direction of the
// vertical step.
type FlightModel struct {
	ThrustRate      float64
	DragRate        float64
	MaxLift         float64
	RiseThreshold   float64
	FuelConsumption float64

	// Playfield size, used for clamping and wrap-around.
	Width  int
	Height int
}

// NewFlightModel creates a flight model for a playfield of the given size.
func NewFlightModel(p config.LanderPhysics, width, height int) FlightModel {
	return FlightModel{
		ThrustRate:      p.ThrustRate,
		DragRate:        p.DragRate,
		MaxLift:         p.MaxLift,
		RiseThreshold:   p.RiseThreshold,
		FuelConsumption: p.FuelConsumption,
		Width:           width,
		Height:          height,
	}
}

// NextLift returns lift after dt seconds with or without thrust.
func (m FlightModel) NextLift(lift float64, thrust bool, dt float64) float64 {
	if thrust {
		lift += m.ThrustRate * dt
	} else {
		lift -= m.DragRate * dt
	}
	return core.Clamp(lift, 0, m.MaxLift)
}

// Velocity derives the signed vertical velocity from lift.
// Positive is upward.
func (m FlightModel) Velocity(lift float64) float64 {
	return lift - m.RiseThreshold
}

// MaxX is the rightmost column the lander's left edge may occupy.
func (m FlightModel) MaxX() int { return m.Width - LanderWidth }

// MaxY is the lowest row the lander's top edge may occupy.
func (m FlightModel) MaxY() int { return m.Height - LanderHeight }

// Advance applies one tick of controls to l. Each thruster that fires costs
// one fuel unit of FuelConsumption, so thrust plus a lateral move costs twice.
// Thrusters need fuel left at the moment they fire.
func (m FlightModel) Advance(l *Lander, c Controls, dt float64) FlightResult {
	l.Thrusting = false
	l.MovingLeft = false
	l.MovingRight = false

	if c.Thrust && l.Fuel > 0 {
		l.Thrusting = true
		l.Fuel -= m.FuelConsumption
	}
	dx := 0
	if c.Left && l.Fuel > 0 {
		l.MovingLeft = true
		l.Fuel -= m.FuelConsumption
		dx--
	}
	if c.Right && l.Fuel > 0 {
		l.MovingRight = true
		l.Fuel -= m.FuelConsumption
		dx++
	}
	if l.Fuel < 0 {
		l.Fuel = 0
	}

	l.Lift = m.NextLift(l.Lift, l.Thrusting, dt)
	if l.Lift >= m.RiseThreshold {
		l.Y--
	} else {
		l.Y++
	}

	l.X = m.wrap(core.Clamp(l.X+dx, 0, m.MaxX()), dx)
	l.Y = core.Clamp(l.Y, 0, m.MaxY())
	l.Velocity = m.Velocity(l.Lift)

	return FlightResult{Lift: l.Lift, Velocity: l.Velocity, Y: l.Y}
}

// wrap moves a lander that reached a side edge while heading into it to the
// opposite edge.
func (m FlightModel) wrap(x, dx int) int {
	switch {
	case dx > 0 && x == m.MaxX():
		return 0
	case dx < 0 && x == 0:
		return m.MaxX()
	default:
		return x
	}
}
