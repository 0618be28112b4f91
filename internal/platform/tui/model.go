package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/lander"
)

// Options tune the Bubble Tea side of a lander run.
type Options struct {
	Runtime       core.RuntimeConfig // render rate and seed; zero fields are resolved
	ScreenshotDir string             // where ctrl+s writes; empty means DefaultScreenshotDir
	Logger        *log.Logger        // nil discards
	ShowHelp      bool               // render the key help line under the frame
}

// Model is the Bubble Tea model wrapping one lander session.
// Keys accumulate into an input frame that is consumed by the next
// simulation step; the frame gate paces steps at the tuning's frame rate
// independently of the render tick.
type Model struct {
	session  *lander.Session
	screen   *core.Screen
	gate     *core.FrameGate
	input    *core.InputFrame
	keys     KeyMap
	help     help.Model
	opts     Options
	logger   *log.Logger
	width    int
	height   int
	quitting bool
}

// NewModel creates a model around session. The frame buffer always has
// the terrain's size.
func NewModel(session *lander.Session, opts Options) Model {
	opts.Runtime = opts.Runtime.Resolved(time.Now())
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = DefaultScreenshotDir()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	t := session.Terrain()
	input := core.NewInputFrame()
	return Model{
		session: session,
		screen:  core.NewScreen(t.Width(), t.Height()),
		gate:    core.NewFrameGate(session.Config().FrameRate),
		input:   &input,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		opts:    opts,
		logger:  logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case ConfigReloadedMsg:
		return m.handleReload(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.session.Halt()
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	m.keys.MapKeyToFrame(msg, m.input)
	return m, nil
}

// handleTick steps the session when the frame gate opens and keeps ticking.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if elapsed, ok := m.gate.Ready(now); ok {
		m.session.Update(*m.input, elapsed.Seconds())
		m.input.Clear()
	}

	if m.session.Quit() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.opts.Runtime.TickRate)
}

// handleReload applies a tuning file edited while the game runs.
func (m Model) handleReload(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Warn("ignoring invalid tuning", "error", msg.Err)
		return m, nil
	}
	m.session.Retune(msg.Config)
	m.gate.SetFrameRate(msg.Config.FrameRate)
	return m, nil
}

// saveScreenshot writes the current frame to the screenshot directory.
func (m *Model) saveScreenshot() {
	m.session.Render(m.screen)
	path, err := SaveScreenshot(m.screen, m.opts.ScreenshotDir, time.Now())
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// fits reports whether the terminal can show a whole frame. Before the
// first size message the terminal is assumed to be large enough.
func (m Model) fits() bool {
	if m.width == 0 && m.height == 0 {
		return true
	}
	needH := m.screen.Height()
	if m.opts.ShowHelp {
		needH++
	}
	return m.width >= m.screen.Width() && m.height >= needH
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.fits() {
		return tooSmallNotice(m.width, m.height, m.screen.Width(), m.screen.Height())
	}

	m.session.Render(m.screen)
	frame := RenderScreen(m.screen)
	if !m.opts.ShowHelp {
		return frame
	}
	return lipgloss.JoinVertical(lipgloss.Left, frame, styleFor(core.ColorGray).Render(m.help.View(m.keys)))
}

// Session returns the wrapped game session.
func (m Model) Session() *lander.Session {
	return m.session
}

// NewProgram wraps m in a full-screen Bubble Tea program.
func NewProgram(m Model, extra ...tea.ProgramOption) *tea.Program {
	opts := append([]tea.ProgramOption{tea.WithAltScreen()}, extra...)
	return tea.NewProgram(m, opts...)
}

// Run starts the Bubble Tea program with the given model.
func Run(m Model) error {
	_, err := NewProgram(m).Run()
	return err
}
