package core

// Sprite is a small block of characters with optional per-cell colors.
// Rows must all have the same rune count. When Colors is nil or a row is
// short, cells fall back to Fallback.
type Sprite struct {
	Rows     []string
	Colors   [][]Color
	Fallback Color
}

// Width returns the sprite width in cells.
func (sp Sprite) Width() int {
	if len(sp.Rows) == 0 {
		return 0
	}
	return len([]rune(sp.Rows[0]))
}

// Height returns the sprite height in cells.
func (sp Sprite) Height() int {
	return len(sp.Rows)
}

// ColorAt returns the color of the cell at (x, y) within the sprite.
func (sp Sprite) ColorAt(x, y int) Color {
	if y < 0 || y >= len(sp.Colors) || x < 0 || x >= len(sp.Colors[y]) {
		return sp.Fallback
	}
	return sp.Colors[y][x]
}
