package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-lander/internal/storage"
)

type fakeScores struct {
	entries   map[string][]storage.ScoreEntry
	err       error
	requested []string
}

func (f *fakeScores) TopScores(mode string, limit int) ([]storage.ScoreEntry, error) {
	f.requested = append(f.requested, mode)
	if f.err != nil {
		return nil, f.err
	}
	return f.entries[mode], nil
}

func (f *fakeScores) Stats(mode string) (*storage.ModeStats, error) {
	entries := f.entries[mode]
	stats := &storage.ModeStats{Mode: mode, Runs: len(entries)}
	for _, e := range entries {
		if e.Score > stats.Best {
			stats.Best = e.Score
		}
	}
	return stats, nil
}

func TestScoreRows(t *testing.T) {
	at := time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC)
	rows := ScoreRows([]storage.ScoreEntry{
		{Score: 400, Mode: "hard", CreatedAt: at},
		{Score: 100, Mode: "easy", CreatedAt: at},
	})

	if len(rows) != 2 {
		t.Fatalf("ScoreRows() returned %d rows, expected 2", len(rows))
	}
	expected := []string{"#1", "400", "hard", "Mar 04 15:30"}
	for i, cell := range expected {
		if rows[0][i] != cell {
			t.Errorf("rows[0][%d] = %q, expected %q", i, rows[0][i], cell)
		}
	}
	if rows[1][0] != "#2" {
		t.Errorf("rows[1][0] = %q, expected #2", rows[1][0])
	}
}

func TestScoreboardCyclesModes(t *testing.T) {
	src := &fakeScores{entries: map[string][]storage.ScoreEntry{
		"":     {{Score: 300, Mode: "easy"}},
		"easy": {{Score: 300, Mode: "easy"}},
	}}
	m := NewScoreboardModel(src, 100, 30)

	if got := m.Mode(); got != "" {
		t.Errorf("Mode() = %q, expected all", got)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if got := m.Mode(); got != "easy" {
		t.Errorf("Mode() after tab = %q, expected easy", got)
	}
	if !strings.Contains(m.View(), "1 runs, best 300") {
		t.Errorf("View() should show easy stats, got %q", m.View())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if got := m.Mode(); got != "hard" {
		t.Errorf("Mode() after wrapping back = %q, expected hard", got)
	}

	expected := []string{"", "easy", "", "hard"}
	if strings.Join(src.requested, ",") != strings.Join(expected, ",") {
		t.Errorf("requested modes = %v, expected %v", src.requested, expected)
	}
}

func TestScoreboardEmptyAndError(t *testing.T) {
	m := NewScoreboardModel(&fakeScores{}, 100, 30)
	if !strings.Contains(m.View(), "No landings recorded yet") {
		t.Errorf("View() should show empty message, got %q", m.View())
	}

	m = NewScoreboardModel(&fakeScores{err: errors.New("disk gone")}, 100, 30)
	if !strings.Contains(m.View(), "disk gone") {
		t.Errorf("View() should show load error, got %q", m.View())
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 30)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Error("q should return a quit command")
	}
	if got := next.(ScoreboardModel).View(); got != "" {
		t.Errorf("View() after quit = %q, expected empty", got)
	}
}
