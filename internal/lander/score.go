package lander

import "image"

// Multiplier glyphs, checked in this order.
var multipliers = []struct {
	glyph  rune
	factor int
}{
	{'2', 2},
	{'4', 4},
}

// ScoreRule awards points for a touchdown based on the multiplier marker
// printed under the platform.
type ScoreRule struct {
	BaseScore int
}

// ScoreWindow returns the cells inspected for multiplier glyphs: three cells
// under the left side and three under the right side of the footprint, one
// row below it. The windows overlap on a 4-wide lander.
func ScoreWindow(l *Lander) []image.Point {
	row := l.Y + LanderHeight
	cells := make([]image.Point, 0, 6)
	for i := 0; i < 3; i++ {
		cells = append(cells, image.Pt(l.X+i, row))
	}
	for i := 1; i <= 3; i++ {
		cells = append(cells, image.Pt(l.X+LanderWidth-i, row))
	}
	return cells
}

// Award returns the points for landing at the lander's position.
// The first multiplier found wins, so a window holding both 2 and 4 pays double.
func (r ScoreRule) Award(l *Lander, t *Terrain) int {
	window := ScoreWindow(l)
	for _, m := range multipliers {
		for _, p := range window {
			if g, ok := t.At(p.X, p.Y); ok && g == m.glyph {
				return r.BaseScore * m.factor
			}
		}
	}
	return 0
}
