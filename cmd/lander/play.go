package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lander/internal/audio"
	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/lander"
	"github.com/vovakirdan/tui-lander/internal/platform/tui"
	"github.com/vovakirdan/tui-lander/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagWatch      bool
	flagKeys       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Fly the lander",
	Long: `Start the game on the splash screen.

Controls:
  W/Up         - Main thruster / menu up
  S/Down       - Menu down
  A/D, arrows  - Side thrusters / options left and right
  Enter        - Select, continue after a landing or crash
  Esc          - Back to the menu
  Ctrl+S       - Screenshot to ~/.lander/screenshots
  Ctrl+C       - Quit

Difficulty options:
  easy   - 1.5x fuel, less drag
  normal - Tuning as loaded
  hard   - 0.75x fuel, more drag

Examples:
  lander play
  lander play --difficulty easy
  lander play --config ./my-lander.yaml --watch
  lander play --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable the audio device")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload tuning when the config file changes")
	playCmd.Flags().BoolVar(&flagKeys, "keys", false, "Show the key help line under the game")
}

func runPlay(_ *cobra.Command, _ []string) {
	run, err := newPlayRun(playOptions{
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
		DBPath:     flagDBPath,
		LogDir:     defaultLogDir(),
		Mute:       flagMute,
		Runtime:    core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	model := tui.NewModel(run.session, tui.Options{
		Runtime:  run.runtime,
		Logger:   run.logger,
		ShowHelp: flagKeys,
	})
	program := tui.NewProgram(model)

	if flagWatch {
		stop, watchErr := watchTuning(program, run.preset, run.logger)
		if watchErr != nil {
			run.logger.Warn("config watch disabled", "error", watchErr)
		} else {
			run.onClose(func() { stop() })
		}
	}

	_, err = program.Run()
	// os.Exit skips defers, so release the store, audio and log first.
	run.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// playOptions are the inputs of one local run.
type playOptions struct {
	ConfigPath string
	Difficulty string
	DBPath     string
	LogDir     string // empty discards logging
	Mute       bool
	Runtime    core.RuntimeConfig
}

// playRun owns everything a local run opens. Close releases it in reverse
// order of acquisition.
type playRun struct {
	session *lander.Session
	logger  *log.Logger
	store   *storage.Store
	preset  config.DifficultyPreset
	runtime core.RuntimeConfig
	closers []func()
}

func newPlayRun(o playOptions) (*playRun, error) {
	preset, err := config.ParsePreset(o.Difficulty)
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadLander(o.ConfigPath)
	if err != nil {
		return nil, err
	}
	config.ApplyPreset(&cfg, preset)

	run := &playRun{
		preset:  preset,
		runtime: o.Runtime.Resolved(time.Now()),
	}
	logger, closeLog := newFileLogger(o.LogDir)
	run.logger = logger
	run.onClose(closeLog)
	logger.Info("starting", "difficulty", preset, "frame_rate", cfg.FrameRate, "seed", run.runtime.Seed)

	opts := []lander.Option{
		lander.WithLogger(logger),
		lander.WithSeed(run.runtime.Seed),
		lander.WithMode(string(preset)),
	}

	// Without a database the game still runs; settings last for this process.
	store, err := storage.Open(o.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", o.DBPath, "error", err)
		opts = append(opts, lander.WithPreferences(lander.NewMemoryPreferences()))
	} else {
		run.store = store
		run.onClose(func() {
			if closeErr := store.Close(); closeErr != nil {
				logger.Warn("could not close scores database", "error", closeErr)
			}
		})
		opts = append(opts,
			lander.WithPreferences(store.Preferences()),
			lander.WithScoreRecorder(store),
		)
	}

	if !o.Mute {
		player := audio.NewPlayer()
		if initErr := player.Initialize(); initErr != nil {
			logger.Warn("audio unavailable", "error", initErr)
		} else {
			run.onClose(player.Cleanup)
			opts = append(opts, lander.WithSound(player))
		}
	}

	run.session = lander.NewSession(cfg, opts...)
	return run, nil
}

func (r *playRun) onClose(fn func()) {
	r.closers = append(r.closers, fn)
}

// Close releases the run's resources. It is safe to call more than once.
func (r *playRun) Close() {
	for i := len(r.closers) - 1; i >= 0; i-- {
		r.closers[i]()
	}
	r.closers = nil
}

// watchTuning forwards edits of the tuning file to the running program.
func watchTuning(program *tea.Program, preset config.DifficultyPreset, logger *log.Logger) (func() error, error) {
	path := flagConfig
	if path == "" {
		path = config.UserConfigPath()
	}
	if path == "" {
		return nil, fmt.Errorf("no config file to watch")
	}

	logger.Info("watching tuning", "path", path)
	return config.Watch(path, func(cfg config.LanderConfig, err error) {
		if err == nil {
			config.ApplyPreset(&cfg, preset)
		}
		program.Send(tui.ConfigReloadedMsg{Config: cfg, Err: err})
	})
}

// defaultLogDir returns ~/.lander, or empty when there is no home.
func defaultLogDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lander")
}

// newFileLogger logs to dir/lander.log since the alt screen owns the
// terminal. Logging is discarded when the file cannot be opened.
func newFileLogger(dir string) (*log.Logger, func()) {
	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          "lander",
	}

	if dir == "" {
		return log.NewWithOptions(io.Discard, opts), func() {}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return log.NewWithOptions(io.Discard, opts), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "lander.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return log.NewWithOptions(io.Discard, opts), func() {}
	}
	return log.NewWithOptions(f, opts), func() { f.Close() }
}
