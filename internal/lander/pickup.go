package lander

import (
	"math/rand"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// FuelPickup is the single fuel canister on the map.
type FuelPickup struct {
	X, Y      int
	Exists    bool
	Collected bool
}

var pickupSprite = core.Sprite{
	Rows:     []string{"F"},
	Fallback: core.ColorRed,
}

// Spawn places the canister at a random spot the lander's top-left corner
// can reach: x in [0, maxX] and y in [0, maxY].
func (p *FuelPickup) Spawn(rng *rand.Rand, maxX, maxY int) {
	p.X = rng.Intn(maxX + 1)
	p.Y = rng.Intn(maxY + 1)
	p.Exists = true
	p.Collected = false
}

// Clear removes the canister so a new one spawns on the next tick.
func (p *FuelPickup) Clear() {
	*p = FuelPickup{}
}

// Visible reports whether the canister should be drawn.
func (p *FuelPickup) Visible() bool {
	return p.Exists && !p.Collected
}

// TryCollect grants bonus fuel when the lander sits exactly on the canister.
// A canister pays out once.
func (p *FuelPickup) TryCollect(l *Lander, bonus float64) bool {
	if !p.Visible() || l.X != p.X || l.Y != p.Y {
		return false
	}
	l.Fuel += bonus
	p.Collected = true
	return true
}

// Draw renders the canister if it is visible.
func (p *FuelPickup) Draw(dst *core.Screen) {
	if p.Visible() {
		dst.DrawSprite(p.X, p.Y, pickupSprite)
	}
}
