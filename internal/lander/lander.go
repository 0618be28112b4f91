package lander

import "image"

// Lander footprint in cells.
const (
	LanderWidth  = 4
	LanderHeight = 3
)

// Status is the flight outcome of the lander.
type Status int

const (
	StatusFlying Status = iota
	StatusLanded
	StatusCrashed
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusFlying:
		return "flying"
	case StatusLanded:
		return "landed"
	case StatusCrashed:
		return "crashed"
	default:
		return "unknown"
	}
}

// Lander is the player's craft. X and Y are the top-left of its footprint.
type Lander struct {
	X, Y     int
	Lift     float64 // Integrated thrust minus drag, within [0, max lift]
	Velocity float64 // Derived from Lift, display only
	Fuel     float64
	Status   Status
	Score    int

	// Per-tick control flags, cleared at the start of every flight step.
	Thrusting   bool
	MovingLeft  bool
	MovingRight bool

	spawn   image.Point
	maxFuel float64
}

// NewLander creates a lander at its spawn point with a full tank.
func NewLander(spawnX, spawnY int, maxFuel float64) *Lander {
	l := &Lander{
		spawn:   image.Pt(spawnX, spawnY),
		maxFuel: maxFuel,
	}
	l.Reset()
	l.Refill()
	return l
}

// Reset puts the lander back at its spawn point in flight.
// Fuel and score carry over.
func (l *Lander) Reset() {
	l.X = l.spawn.X
	l.Y = l.spawn.Y
	l.Lift = 0
	l.Velocity = 0
	l.Status = StatusFlying
	l.Thrusting = false
	l.MovingLeft = false
	l.MovingRight = false
}

// Refill fills the tank. Only the crash path calls this.
func (l *Lander) Refill() {
	l.Fuel = l.maxFuel
}

// SetMaxFuel changes the tank size used by later refills.
func (l *Lander) SetMaxFuel(maxFuel float64) {
	l.maxFuel = maxFuel
}

// Flying reports whether the simulation should still advance the lander.
func (l *Lander) Flying() bool {
	return l.Status == StatusFlying
}

// Moving reports whether any thruster fired this tick.
func (l *Lander) Moving() bool {
	return l.Thrusting || l.MovingLeft || l.MovingRight
}

// GearCells returns the left and right landing-gear cells: the leg columns
// on the bottom row of the footprint.
func (l *Lander) GearCells() (left, right image.Point) {
	row := l.Y + LanderHeight - 1
	return image.Pt(l.X+LanderWidth-3, row), image.Pt(l.X+LanderWidth-2, row)
}
