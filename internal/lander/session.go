package lander

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
)

// world is the simulation data the states read and mutate.
type world struct {
	terrain  *Terrain
	lander   *Lander
	pickup   FuelPickup
	flight   FlightModel
	resolver CollisionResolver
	rule     ScoreRule
	rng      *rand.Rand
	timing   config.LanderTiming

	pickupBonus  float64
	runTime      float64
	playAgain    bool
	soundEnabled bool
	highScore    int
}

// Session is one player's game: the terrain, the lander, the current screen
// and the collaborators that persist settings and play sound.
type Session struct {
	cfg   config.LanderConfig
	world world

	states  map[StateID]state
	menu    *menuState
	options *optionsState
	current StateID

	prefs    Preferences
	recorder ScoreRecorder
	sound    Sound
	logger   *log.Logger
	mode     string
	seed     int64

	thrusterOn bool
	quit       bool
}

// Option configures a Session.
type Option func(*Session)

// WithTerrain replaces the built-in map.
func WithTerrain(t *Terrain) Option {
	return func(s *Session) { s.world.terrain = t }
}

// WithPreferences sets the store for the high score and sound toggle.
func WithPreferences(p Preferences) Option {
	return func(s *Session) { s.prefs = p }
}

// WithScoreRecorder sets where finished runs are appended.
func WithScoreRecorder(r ScoreRecorder) Option {
	return func(s *Session) { s.recorder = r }
}

// WithSound sets the audio sink.
func WithSound(snd Sound) Option {
	return func(s *Session) { s.sound = snd }
}

// WithLogger sets the logger for collaborator failures.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithSeed seeds the fuel pickup placement.
func WithSeed(seed int64) Option {
	return func(s *Session) { s.seed = seed }
}

// WithMode labels recorded scores, usually with the difficulty preset.
func WithMode(mode string) Option {
	return func(s *Session) { s.mode = mode }
}

// NewSession creates a session on the splash screen.
func NewSession(cfg config.LanderConfig, opts ...Option) *Session {
	s := &Session{
		cfg:    cfg,
		prefs:  NewMemoryPreferences(),
		sound:  nopSound{},
		logger: log.New(io.Discard),
		mode:   string(config.DifficultyNormal),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.world.terrain == nil {
		s.world.terrain = DefaultTerrain()
	}

	w := &s.world
	w.rng = rand.New(rand.NewSource(s.seed))
	w.flight = NewFlightModel(cfg.Physics, w.terrain.Width(), w.terrain.Height())
	w.lander = NewLander(
		core.Clamp(cfg.Lander.StartX, 0, w.flight.MaxX()),
		core.Clamp(cfg.Lander.StartY, 0, w.flight.MaxY()),
		cfg.Fuel.Max,
	)
	s.applyTuning(cfg)

	s.menu = &menuState{}
	s.options = &optionsState{}
	s.states = map[StateID]state{
		StateSplash:  &splashState{},
		StateMenu:    s.menu,
		StateOptions: s.options,
		StatePlay:    &playState{},
	}
	s.enter(StateSplash)
	return s
}

func (s *Session) applyTuning(cfg config.LanderConfig) {
	w := &s.world
	w.flight = NewFlightModel(cfg.Physics, w.terrain.Width(), w.terrain.Height())
	w.resolver = CollisionResolver{SafeVelocity: cfg.Physics.SafeLandingVelocity}
	w.rule = ScoreRule{BaseScore: cfg.Scoring.BaseScore}
	w.timing = cfg.Timing
	w.pickupBonus = cfg.Fuel.PickupBonus
	w.lander.SetMaxFuel(cfg.Fuel.Max)
}

// Retune swaps physics, scoring and timing without touching the lander's
// position, fuel or score. The new tank size applies from the next refill.
func (s *Session) Retune(cfg config.LanderConfig) {
	s.cfg = cfg
	s.applyTuning(cfg)
	s.logger.Info("tuning reloaded", "frame_rate", cfg.FrameRate, "thrust", cfg.Physics.ThrustRate, "drag", cfg.Physics.DragRate)
}

// Config returns the tuning in effect.
func (s *Session) Config() config.LanderConfig {
	return s.cfg
}

// Update advances the current screen by dt seconds with the controls held
// during that tick.
func (s *Session) Update(in core.InputFrame, dt float64) {
	if s.quit {
		return
	}
	step := s.states[s.current].update(&s.world, in, dt)
	s.apply(step.Effects)
	if step.Trigger == TriggerNone {
		return
	}
	next, ok := NextState(s.current, step.Trigger)
	if !ok {
		s.logger.Warn("ignored trigger", "state", s.current, "trigger", step.Trigger)
		return
	}
	s.enter(next)
}

// Render draws the current screen into dst.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()
	s.states[s.current].render(&s.world, dst)
}

func (s *Session) enter(id StateID) {
	s.logger.Debug("enter state", "from", s.current, "to", id)
	s.current = id
	switch id {
	case StateMenu:
		s.world.highScore = s.readHighScore()
	case StateOptions, StatePlay:
		s.world.soundEnabled = s.readSoundEnabled()
	}
	s.apply(s.states[id].enter(&s.world))
}

func (s *Session) apply(effects []Effect) {
	for _, e := range effects {
		switch e.Kind {
		case EffectQuit:
			s.quit = true
		case EffectSaveSound:
			s.world.soundEnabled = e.Enabled
			if err := s.prefs.SetSoundEnabled(e.Enabled); err != nil {
				s.logger.Warn("could not save sound setting", "error", err)
			}
		case EffectThrusterOn:
			if !s.thrusterOn {
				s.sound.PlayLoop(EffectThruster)
				s.thrusterOn = true
			}
		case EffectThrusterOff:
			if s.thrusterOn {
				s.sound.Stop()
				s.thrusterOn = false
			}
		case EffectSettleScore:
			s.settleScore()
		case EffectResetMenu:
			s.menu.selection = 0
		}
	}
}

// settleScore ends a run: a score above the stored high score replaces it,
// positive scores go to the history, and the running score is zeroed.
func (s *Session) settleScore() {
	l := s.world.lander
	score := l.Score
	l.Score = 0

	if score > s.readHighScore() {
		if err := s.prefs.SetHighScore(score); err != nil {
			s.logger.Warn("could not save high score", "score", score, "error", err)
		} else {
			s.world.highScore = score
		}
	}
	if score > 0 && s.recorder != nil {
		if _, err := s.recorder.SaveScore(s.mode, score); err != nil {
			s.logger.Warn("could not record score", "score", score, "error", err)
		}
	}
}

func (s *Session) readHighScore() int {
	high, err := s.prefs.HighScore()
	if err != nil {
		s.logger.Warn("could not read high score", "error", err)
		return 0
	}
	return high
}

func (s *Session) readSoundEnabled() bool {
	enabled, err := s.prefs.SoundEnabled()
	if err != nil {
		s.logger.Warn("could not read sound setting", "error", err)
		return true
	}
	return enabled
}

// Halt silences the thruster and marks the session as finished.
// The platform calls it when the program exits from outside the game.
func (s *Session) Halt() {
	s.apply([]Effect{{Kind: EffectThrusterOff}, {Kind: EffectQuit}})
}

// State returns the current screen.
func (s *Session) State() StateID { return s.current }

// Quit reports whether the player asked to leave.
func (s *Session) Quit() bool { return s.quit }

// Lander returns the player's lander.
func (s *Session) Lander() *Lander { return s.world.lander }

// Pickup returns the fuel canister.
func (s *Session) Pickup() FuelPickup { return s.world.pickup }

// Terrain returns the map being flown over.
func (s *Session) Terrain() *Terrain { return s.world.terrain }

// RunTime returns seconds spent flying since the menu was last shown.
func (s *Session) RunTime() float64 { return s.world.runTime }

// PlayAgain reports whether the last touchdown allows another flight.
func (s *Session) PlayAgain() bool { return s.world.playAgain }

// HighScore returns the high score as last read from preferences.
func (s *Session) HighScore() int { return s.world.highScore }

// SoundEnabled returns the sound toggle as last read or set.
func (s *Session) SoundEnabled() bool { return s.world.soundEnabled }

// MenuSelection returns the highlighted menu entry: 0 play, 1 options, 2 quit.
func (s *Session) MenuSelection() int { return s.menu.selection }

// OptionsSelection returns the highlighted options entry: 0 on, 1 off, 2 back.
func (s *Session) OptionsSelection() int { return s.options.selection }

// HighScoreVisible reports whether the menu's blinking high score is shown.
func (s *Session) HighScoreVisible() bool { return s.menu.showHigh }
