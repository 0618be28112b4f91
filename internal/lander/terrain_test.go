package lander

import (
	"errors"
	"image"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		glyph rune
		want  CellKind
	}{
		{' ', CellVoid},
		{'*', CellDecor},
		{'.', CellDecor},
		{'_', CellPlatform},
		{'2', CellMultiplier},
		{'4', CellMultiplier},
		{'/', CellSolid},
		{'|', CellSolid},
		{'X', CellSolid},
		{'^', CellSolid},
	}

	for _, tt := range tests {
		t.Run(string(tt.glyph), func(t *testing.T) {
			if got := KindOf(tt.glyph); got != tt.want {
				t.Errorf("KindOf(%q) = %v, expected %v", tt.glyph, got, tt.want)
			}
		})
	}
}

func TestCellKindBlocking(t *testing.T) {
	blocking := map[CellKind]bool{
		CellVoid:       false,
		CellDecor:      false,
		CellPlatform:   true,
		CellMultiplier: true,
		CellSolid:      true,
	}
	for kind, want := range blocking {
		if got := kind.Blocking(); got != want {
			t.Errorf("%v.Blocking() = %v, expected %v", kind, got, want)
		}
	}
}

func TestNewTerrainRejectsRaggedRows(t *testing.T) {
	_, err := NewTerrain([]string{"   ", "  "})
	if !errors.Is(err, ErrRaggedTerrain) {
		t.Errorf("NewTerrain() error = %v, expected ErrRaggedTerrain", err)
	}
	if _, err := NewTerrain(nil); err == nil {
		t.Error("NewTerrain(nil) error = nil, expected error")
	}
}

func TestTerrainAtBounds(t *testing.T) {
	terrain := blankTerrain(t, 5, 4, map[image.Point]rune{{X: 4, Y: 3}: '_'})

	tests := []struct {
		x, y   int
		want   rune
		wantOK bool
	}{
		{4, 3, '_', true},
		{0, 0, ' ', true},
		{-1, 0, ' ', false},
		{5, 0, ' ', false},
		{0, -1, ' ', false},
		{0, 4, ' ', false},
	}

	for _, tt := range tests {
		got, ok := terrain.At(tt.x, tt.y)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("At(%d, %d) = (%q, %v), expected (%q, %v)", tt.x, tt.y, got, ok, tt.want, tt.wantOK)
		}
	}
	if kind := terrain.KindAt(99, 99); kind != CellVoid {
		t.Errorf("KindAt(out of bounds) = %v, expected void", kind)
	}
}

func TestDefaultTerrain(t *testing.T) {
	terrain := DefaultTerrain()
	if terrain.Width() != MapWidth || terrain.Height() != MapHeight {
		t.Fatalf("DefaultTerrain() size = %dx%d, expected %dx%d", terrain.Width(), terrain.Height(), MapWidth, MapHeight)
	}

	// The top row is open sky.
	for x := 0; x < terrain.Width(); x++ {
		if terrain.KindAt(x, 0).Blocking() {
			t.Fatalf("KindAt(%d, 0) is blocking, expected open sky", x)
		}
	}
}

func TestDefaultTerrainHasScoringPads(t *testing.T) {
	terrain := DefaultTerrain()
	resolver := CollisionResolver{SafeVelocity: -0.2}
	rule := ScoreRule{BaseScore: 50}

	tests := []struct {
		x, y int
		want int
	}{
		{113, 4, 100},
		{83, 6, 200},
		{0, 33, 100},
	}

	for _, tt := range tests {
		l := &Lander{X: tt.x, Y: tt.y, Velocity: -0.1}
		if got := resolver.Classify(l, terrain); got != StatusLanded {
			t.Errorf("Classify at (%d, %d) = %v, expected landed", tt.x, tt.y, got)
		}
		if got := rule.Award(l, terrain); got != tt.want {
			t.Errorf("Award at (%d, %d) = %d, expected %d", tt.x, tt.y, got, tt.want)
		}
	}
}
