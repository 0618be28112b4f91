package lander

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestNextLiftThrustSaturates(t *testing.T) {
	m := defaultFlight()

	for _, dt := range []float64{0.01, 0.2, 1, 5} {
		lift := 0.0
		for i := 0; i < 1000; i++ {
			next := m.NextLift(lift, true, dt)
			if next < lift {
				t.Fatalf("dt=%v: NextLift decreased from %v to %v under thrust", dt, lift, next)
			}
			lift = next
		}
		if lift != m.MaxLift {
			t.Errorf("dt=%v: lift = %v after sustained thrust, expected %v", dt, lift, m.MaxLift)
		}
	}
}

func TestNextLiftDragFloors(t *testing.T) {
	m := defaultFlight()

	for _, dt := range []float64{0.01, 0.2, 1, 5} {
		lift := m.MaxLift
		for i := 0; i < 1000; i++ {
			next := m.NextLift(lift, false, dt)
			if next > lift {
				t.Fatalf("dt=%v: NextLift increased from %v to %v without thrust", dt, lift, next)
			}
			lift = next
		}
		if lift != 0 {
			t.Errorf("dt=%v: lift = %v after sustained drag, expected 0", dt, lift)
		}
	}
}

func TestVelocityIsLiftMinusThreshold(t *testing.T) {
	m := defaultFlight()

	for _, lift := range []float64{0, 0.1, 0.25, 0.49, 0.5, 0.75, 1.0, 1.5} {
		if got := m.Velocity(lift); math.Abs(got-(lift-0.5)) > epsilon {
			t.Errorf("Velocity(%v) = %v, expected %v", lift, got, lift-0.5)
		}
	}
}

func TestAdvanceVerticalStep(t *testing.T) {
	m := defaultFlight()
	m.DragRate = 0

	tests := []struct {
		name  string
		lift  float64
		wantY int
	}{
		{"below threshold falls", 0.49, 11},
		{"threshold rises", 0.5, 9},
		{"above threshold rises", 1.2, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLander(20, 10, 100)
			l.Lift = tt.lift
			res := m.Advance(l, Controls{}, 0.2)
			if res.Y != tt.wantY || l.Y != tt.wantY {
				t.Errorf("Advance() Y = %d, expected %d", res.Y, tt.wantY)
			}
			if math.Abs(res.Velocity-(tt.lift-0.5)) > epsilon {
				t.Errorf("Advance() Velocity = %v, expected %v", res.Velocity, tt.lift-0.5)
			}
		})
	}
}

func TestAdvanceFuelConsumption(t *testing.T) {
	m := defaultFlight()

	tests := []struct {
		name     string
		fuel     float64
		controls Controls
		wantFuel float64
		wantX    int
	}{
		{"idle", 100, Controls{}, 100, 20},
		{"thrust", 100, Controls{Thrust: true}, 99.5, 20},
		{"left", 100, Controls{Left: true}, 99.5, 19},
		{"right", 100, Controls{Right: true}, 99.5, 21},
		{"thrust and left", 100, Controls{Thrust: true, Left: true}, 99, 19},
		{"all three", 100, Controls{Thrust: true, Left: true, Right: true}, 98.5, 20},
		{"empty tank", 0, Controls{Thrust: true, Left: true}, 0, 20},
		{"last drop", 0.5, Controls{Thrust: true, Left: true}, 0, 20},
		{"never negative", 0.3, Controls{Thrust: true}, 0, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLander(20, 10, 100)
			l.Fuel = tt.fuel
			m.Advance(l, tt.controls, 0.2)
			if math.Abs(l.Fuel-tt.wantFuel) > epsilon {
				t.Errorf("Fuel = %v, expected %v", l.Fuel, tt.wantFuel)
			}
			if l.X != tt.wantX {
				t.Errorf("X = %d, expected %d", l.X, tt.wantX)
			}
		})
	}
}

func TestAdvanceNoThrustWithoutFuel(t *testing.T) {
	m := defaultFlight()
	l := NewLander(20, 10, 100)
	l.Fuel = 0

	m.Advance(l, Controls{Thrust: true}, 0.2)
	if l.Thrusting {
		t.Error("Thrusting = true with an empty tank")
	}
	if l.Lift != 0 {
		t.Errorf("Lift = %v, expected 0", l.Lift)
	}
}

func TestAdvanceControlFlagsResetEachTick(t *testing.T) {
	m := defaultFlight()
	l := NewLander(20, 10, 100)

	m.Advance(l, Controls{Left: true}, 0.2)
	if !l.MovingLeft || !l.Moving() {
		t.Fatal("MovingLeft = false after a left tick")
	}
	m.Advance(l, Controls{}, 0.2)
	if l.MovingLeft || l.Moving() {
		t.Error("MovingLeft still set after an idle tick")
	}
}

func TestAdvanceHorizontalWrap(t *testing.T) {
	m := defaultFlight()
	maxX := MapWidth - LanderWidth

	tests := []struct {
		name     string
		x        int
		controls Controls
		wantX    int
	}{
		{"right edge moving right", maxX, Controls{Right: true}, 0},
		{"left edge moving left", 0, Controls{Left: true}, maxX},
		{"reaching right edge", maxX - 1, Controls{Right: true}, 0},
		{"reaching left edge", 1, Controls{Left: true}, maxX},
		{"resting on right edge", maxX, Controls{}, maxX},
		{"resting on left edge", 0, Controls{}, 0},
		{"leaving right edge", maxX, Controls{Left: true}, maxX - 1},
		{"leaving left edge", 0, Controls{Right: true}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLander(tt.x, 10, 100)
			m.Advance(l, tt.controls, 0.2)
			if l.X != tt.wantX {
				t.Errorf("X = %d, expected %d", l.X, tt.wantX)
			}
		})
	}
}

func TestAdvanceClampsVertically(t *testing.T) {
	m := defaultFlight()

	top := NewLander(20, 0, 100)
	top.Lift = 1.5
	m.Advance(top, Controls{Thrust: true}, 0.2)
	if top.Y != 0 {
		t.Errorf("Y at ceiling = %d, expected 0", top.Y)
	}

	bottom := NewLander(20, MapHeight-LanderHeight, 100)
	m.Advance(bottom, Controls{}, 0.2)
	if bottom.Y != MapHeight-LanderHeight {
		t.Errorf("Y at floor = %d, expected %d", bottom.Y, MapHeight-LanderHeight)
	}
}

func TestLanderResetAndRefill(t *testing.T) {
	l := NewLander(37, 5, 100)
	l.X, l.Y = 80, 30
	l.Lift = 1.2
	l.Status = StatusCrashed
	l.Fuel = 12
	l.Score = 300
	l.MovingRight = true

	l.Reset()
	if l.X != 37 || l.Y != 5 || l.Lift != 0 || l.Status != StatusFlying || l.MovingRight {
		t.Errorf("Reset() left %+v, expected spawn state", *l)
	}
	if l.Fuel != 12 || l.Score != 300 {
		t.Errorf("Reset() fuel/score = %v/%d, expected 12/300", l.Fuel, l.Score)
	}

	l.Refill()
	if l.Fuel != 100 {
		t.Errorf("Refill() fuel = %v, expected 100", l.Fuel)
	}
}
