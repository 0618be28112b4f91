package lander

// CollisionResolver decides whether a flying lander has touched down.
type CollisionResolver struct {
	// SafeVelocity is the touchdown limit; landing requires velocity above it.
	SafeVelocity float64
}

// Classify inspects the terrain under both landing-gear cells.
// Landed needs platform under both gears at a gentle speed. Anything blocking
// under either gear is a crash.
func (r CollisionResolver) Classify(l *Lander, t *Terrain) Status {
	left, right := l.GearCells()
	leftKind := t.KindAt(left.X, left.Y)
	rightKind := t.KindAt(right.X, right.Y)

	if leftKind == CellPlatform && rightKind == CellPlatform && l.Velocity > r.SafeVelocity {
		return StatusLanded
	}
	if leftKind.Blocking() || rightKind.Blocking() {
		return StatusCrashed
	}
	return StatusFlying
}
