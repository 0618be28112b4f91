package lander

import (
	"errors"
	"image"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
)

// blankTerrain returns an empty map with the given glyphs placed on it.
func blankTerrain(t *testing.T, width, height int, glyphs map[image.Point]rune) *Terrain {
	t.Helper()
	grid := make([][]rune, height)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", width))
	}
	for p, r := range glyphs {
		grid[p.Y][p.X] = r
	}
	rows := make([]string, height)
	for y, row := range grid {
		rows[y] = string(row)
	}
	terrain, err := NewTerrain(rows)
	if err != nil {
		t.Fatalf("NewTerrain() error = %v", err)
	}
	return terrain
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// startPlay drives a session from the splash screen into Play.
func startPlay(t *testing.T, s *Session) {
	t.Helper()
	s.Update(input(), s.Config().Timing.SplashDuration)
	if s.State() != StateMenu {
		t.Fatalf("State() after splash = %v, expected menu", s.State())
	}
	s.Update(input(core.ActionConfirm), 0.2)
	if s.State() != StatePlay {
		t.Fatalf("State() after confirm = %v, expected play", s.State())
	}
}

type recordingSound struct {
	played []string
	stops  int
}

func (r *recordingSound) PlayLoop(effect string) { r.played = append(r.played, effect) }
func (r *recordingSound) Stop() { r.stops++ }

type savedScore struct {
	mode  string
	score int
}

type recordingRecorder struct {
	saved []savedScore
}

func (r *recordingRecorder) SaveScore(mode string, score int) (int64, error) {
	r.saved = append(r.saved, savedScore{mode, score})
	return int64(len(r.saved)), nil
}

var errStoreDown = errors.New("store unavailable")

type brokenPreferences struct{}

func (brokenPreferences) HighScore() (int, error) { return 0, errStoreDown }
func (brokenPreferences) SetHighScore(int) error { return errStoreDown }
func (brokenPreferences) SoundEnabled() (bool, error) { return false, errStoreDown }
func (brokenPreferences) SetSoundEnabled(bool) error { return errStoreDown }

func defaultFlight() FlightModel {
	return NewFlightModel(config.DefaultLanderConfig().Physics, MapWidth, MapHeight)
}

func defaultTiming() config.LanderTiming {
	return config.DefaultLanderConfig().Timing
}
