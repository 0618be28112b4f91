// Package core holds the engine-neutral pieces of the game: the colored
// frame buffer, semantic input, colors and frame pacing. Nothing here knows
// about Bubble Tea.
package core

import "cmp"

// Clamp restricts val to [lo, hi].
func Clamp[T cmp.Ordered](val, lo, hi T) T {
	return max(lo, min(val, hi))
}
