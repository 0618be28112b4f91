// Package lander implements the lunar lander game: terrain, flight physics,
// touchdown classification, scoring, and the screen state machine that ties
// them into a playable session.
package lander

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// Map dimensions of the built-in playfield.
const (
	MapWidth  = 150
	MapHeight = 40
)

// CellKind classifies a terrain glyph.
type CellKind int

const (
	CellVoid       CellKind = iota // ' ', and anything outside the map
	CellDecor                      // '*' and '.', drawn but never collided with
	CellPlatform                   // '_'
	CellMultiplier                 // a digit under a platform
	CellSolid                      // any other visible glyph
)

// String returns the kind name.
func (k CellKind) String() string {
	switch k {
	case CellVoid:
		return "void"
	case CellDecor:
		return "decor"
	case CellPlatform:
		return "platform"
	case CellMultiplier:
		return "multiplier"
	case CellSolid:
		return "solid"
	default:
		return "unknown"
	}
}

// KindOf classifies a single glyph.
func KindOf(r rune) CellKind {
	switch {
	case r == ' ':
		return CellVoid
	case r == '*' || r == '.':
		return CellDecor
	case r == '_':
		return CellPlatform
	case r >= '0' && r <= '9':
		return CellMultiplier
	default:
		return CellSolid
	}
}

// Blocking reports whether touching this kind of cell destroys the lander.
// Platforms and multiplier digits block too; a gentle touchdown is decided
// before this is consulted.
func (k CellKind) Blocking() bool {
	return k != CellVoid && k != CellDecor
}

// Terrain is an immutable grid of glyphs.
type Terrain struct {
	cells  [][]rune
	width  int
	height int
}

// ErrRaggedTerrain is returned when terrain rows differ in width.
var ErrRaggedTerrain = errors.New("terrain rows must all have the same width")

// NewTerrain builds a terrain from text rows. The rows are copied.
func NewTerrain(rows []string) (*Terrain, error) {
	if len(rows) == 0 {
		return nil, errors.New("terrain needs at least one row")
	}
	cells := make([][]rune, len(rows))
	width := len([]rune(rows[0]))
	for y, row := range rows {
		cells[y] = []rune(row)
		if len(cells[y]) != width {
			return nil, fmt.Errorf("%w: row %d is %d wide, expected %d", ErrRaggedTerrain, y, len(cells[y]), width)
		}
	}
	return &Terrain{cells: cells, width: width, height: len(rows)}, nil
}

// DefaultTerrain returns the built-in moon surface.
func DefaultTerrain() *Terrain {
	t, err := NewTerrain(moonSurface)
	if err != nil {
		panic(err)
	}
	return t
}

// Width returns the number of columns.
func (t *Terrain) Width() int { return t.width }

// Height returns the number of rows.
func (t *Terrain) Height() int { return t.height }

// At returns the glyph at (x, y). ok is false outside the map, in which case
// the glyph is a space.
func (t *Terrain) At(x, y int) (r rune, ok bool) {
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		return ' ', false
	}
	return t.cells[y][x], true
}

// KindAt classifies the glyph at (x, y). Cells outside the map are void.
func (t *Terrain) KindAt(x, y int) CellKind {
	r, _ := t.At(x, y)
	return KindOf(r)
}

// Draw copies the terrain onto dst.
func (t *Terrain) Draw(dst *core.Screen) {
	for y, row := range t.cells {
		for x, r := range row {
			dst.SetCell(x, y, r, t.colorAt(x, y))
		}
	}
}

func (t *Terrain) colorAt(x, y int) core.Color {
	r := t.cells[y][x]
	switch KindOf(r) {
	case CellDecor:
		return core.ColorGray
	case CellMultiplier:
		return core.ColorBrightYellow
	}
	// The X in "X2" belongs to the marker.
	if r == 'X' || r == 'x' {
		if next, _ := t.At(x+1, y); KindOf(next) == CellMultiplier {
			return core.ColorBrightYellow
		}
	}
	return core.ColorWhite
}
