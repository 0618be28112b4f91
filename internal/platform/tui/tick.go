// Package tui runs the lander inside a Bubble Tea program, locally or over SSH.
// It owns the terminal loop, key mapping, frame pacing and screen output.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-lander/internal/config"
)

// TickMsg is sent on every render tick.
type TickMsg time.Time

// ConfigReloadedMsg carries a tuning file that changed on disk.
type ConfigReloadedMsg struct {
	Config config.LanderConfig
	Err    error
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
