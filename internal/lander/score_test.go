package lander

import (
	"image"
	"testing"
)

func TestAward(t *testing.T) {
	rule := ScoreRule{BaseScore: 50}
	l := &Lander{X: 10, Y: 10}
	row := l.Y + LanderHeight

	tests := []struct {
		name   string
		glyphs map[image.Point]rune
		want   int
	}{
		{"no marker", nil, 0},
		{"x2 under left", map[image.Point]rune{{X: 10, Y: row}: '2'}, 100},
		{"x2 under right", map[image.Point]rune{{X: 13, Y: row}: '2'}, 100},
		{"x4 under middle", map[image.Point]rune{{X: 12, Y: row}: '4'}, 200},
		{"both markers", map[image.Point]rune{{X: 10, Y: row}: '4', {X: 13, Y: row}: '2'}, 100},
		{"other digit", map[image.Point]rune{{X: 11, Y: row}: '3'}, 0},
		{"marker outside window", map[image.Point]rune{{X: 14, Y: row}: '2'}, 0},
		{"marker on wrong row", map[image.Point]rune{{X: 11, Y: row + 1}: '2'}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			terrain := blankTerrain(t, 30, 20, tt.glyphs)
			if got := rule.Award(l, terrain); got != tt.want {
				t.Errorf("Award() = %d, expected %d", got, tt.want)
			}
		})
	}
}

func TestAwardBelowMap(t *testing.T) {
	terrain := blankTerrain(t, 30, 20, nil)
	l := &Lander{X: 10, Y: 20 - LanderHeight}
	if got := (ScoreRule{BaseScore: 50}).Award(l, terrain); got != 0 {
		t.Errorf("Award() = %d, expected 0", got)
	}
}

func TestScoreWindow(t *testing.T) {
	l := &Lander{X: 10, Y: 10}
	want := []image.Point{{X: 10, Y: 13}, {X: 11, Y: 13}, {X: 12, Y: 13}, {X: 13, Y: 13}, {X: 12, Y: 13}, {X: 11, Y: 13}}
	got := ScoreWindow(l)
	if len(got) != len(want) {
		t.Fatalf("ScoreWindow() returned %d cells, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ScoreWindow()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}
}
