package lander

import (
	"fmt"

	"github.com/vovakirdan/tui-lander/internal/core"
)

func drawBanner(dst *core.Screen, title, hint string) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid, title)
	dst.DrawTextCentered(mid+1, hint)
}

func drawHUD(w *world, dst *core.Screen) {
	l := w.lander
	dst.DrawText(1, 0, fmt.Sprintf("SCORE: %d", l.Score))
	dst.DrawText(1, 1, fmt.Sprintf("TIME: %.2f", w.runTime))
	dst.DrawText(1, 2, fmt.Sprintf("Y VELOCITY: %.2f", l.Velocity))
	dst.DrawText(1, 3, fmt.Sprintf("FUEL: %.1f", l.Fuel))
	dst.DrawText(dst.Width()-14, 0, fmt.Sprintf("ALTITUDE: %dM", w.terrain.Height()-l.Y))
}
