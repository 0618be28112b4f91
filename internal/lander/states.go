package lander

import (
	"fmt"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// StateID names a screen of the game.
type StateID int

const (
	StateSplash StateID = iota
	StateMenu
	StateOptions
	StatePlay
)

// String returns the state name.
func (s StateID) String() string {
	switch s {
	case StateSplash:
		return "splash"
	case StateMenu:
		return "menu"
	case StateOptions:
		return "options"
	case StatePlay:
		return "play"
	default:
		return "unknown"
	}
}

// Trigger is an event that moves the session between states.
type Trigger int

const (
	TriggerNone        Trigger = iota
	TriggerSplashDone          // splash timer ran out
	TriggerStart               // "play" confirmed in the menu
	TriggerOpenOptions         // "options" confirmed in the menu
	TriggerBack                // "back" confirmed in options
	TriggerContinue            // landing acknowledged, fly again
	TriggerMissionOver         // crash acknowledged, back to the menu
)

// String returns the trigger name.
func (t Trigger) String() string {
	switch t {
	case TriggerNone:
		return "none"
	case TriggerSplashDone:
		return "splash-done"
	case TriggerStart:
		return "start"
	case TriggerOpenOptions:
		return "open-options"
	case TriggerBack:
		return "back"
	case TriggerContinue:
		return "continue"
	case TriggerMissionOver:
		return "mission-over"
	default:
		return fmt.Sprintf("trigger(%d)", int(t))
	}
}

// transitions lists every legal state change. Anything missing is ignored.
var transitions = map[StateID]map[Trigger]StateID{
	StateSplash: {
		TriggerSplashDone: StateMenu,
	},
	StateMenu: {
		TriggerStart:       StatePlay,
		TriggerOpenOptions: StateOptions,
	},
	StateOptions: {
		TriggerBack: StateMenu,
	},
	StatePlay: {
		TriggerContinue:    StatePlay,
		TriggerMissionOver: StateMenu,
	},
}

// NextState looks up the state a trigger leads to from the given state.
func NextState(from StateID, t Trigger) (StateID, bool) {
	next, ok := transitions[from][t]
	return next, ok
}

// EffectKind is a side effect a state asks the session to perform.
type EffectKind int

const (
	EffectQuit        EffectKind = iota // end the process
	EffectSaveSound                     // persist the sound toggle (Enabled)
	EffectThrusterOn                    // start the engine loop
	EffectThrusterOff                   // stop any playing sound
	EffectSettleScore                   // compare with the high score, record, zero
	EffectResetMenu                     // put the menu cursor back on "play"
)

// Effect is a side effect with its argument.
type Effect struct {
	Kind    EffectKind
	Enabled bool
}

// Step is the outcome of one state update.
type Step struct {
	Trigger Trigger
	Effects []Effect
}

func (s *Step) emit(effects ...Effect) {
	s.Effects = append(s.Effects, effects...)
}

// state is one screen of the game. Each variant owns its timers and cursor,
// and resets its timers in enter.
type state interface {
	enter(w *world) []Effect
	update(w *world, in core.InputFrame, dt float64) Step
	render(w *world, dst *core.Screen)
}

type splashState struct {
	elapsed float64
}

func (s *splashState) enter(*world) []Effect {
	s.elapsed = 0
	return nil
}

func (s *splashState) update(w *world, _ core.InputFrame, dt float64) Step {
	s.elapsed += dt
	if s.elapsed >= w.timing.SplashDuration {
		return Step{Trigger: TriggerSplashDone}
	}
	return Step{}
}

func (s *splashState) render(w *world, dst *core.Screen) {
	x := (dst.Width() - splashSprite.Width()) / 2
	y := (dst.Height() - splashSprite.Height()) / 2
	dst.DrawSprite(x, y, splashSprite)
}

// Menu entries.
const (
	menuPlay = iota
	menuOptions
	menuQuit
	menuEntries
)

var menuCursor = [menuEntries]struct{ x, y int }{
	menuPlay:    {60, 15},
	menuOptions: {55, 21},
	menuQuit:    {62, 27},
}

type menuState struct {
	selection int
	blink     float64
	showHigh  bool
}

func (m *menuState) enter(w *world) []Effect {
	m.blink = 0
	m.showHigh = false
	w.runTime = 0
	return []Effect{{Kind: EffectThrusterOff}}
}

func (m *menuState) update(w *world, in core.InputFrame, dt float64) Step {
	if in.Has(core.ActionDown) {
		m.selection = (m.selection + 1) % menuEntries
	}
	if in.Has(core.ActionUp) {
		m.selection = (m.selection + menuEntries - 1) % menuEntries
	}

	m.blink += dt
	m.showHigh = m.blink >= w.timing.BlinkVisibleFrom && m.blink < w.timing.BlinkPeriod
	if m.blink > w.timing.BlinkPeriod {
		m.blink = 0
	}

	if !in.Has(core.ActionConfirm) {
		return Step{}
	}
	switch m.selection {
	case menuPlay:
		return Step{Trigger: TriggerStart}
	case menuOptions:
		return Step{Trigger: TriggerOpenOptions}
	default:
		return Step{Effects: []Effect{{Kind: EffectQuit}}}
	}
}

func (m *menuState) render(w *world, dst *core.Screen) {
	titleArt.draw(dst, core.ColorBrightWhite)
	playLabel.draw(dst, core.ColorWhite)
	optionsLabel.draw(dst, core.ColorWhite)
	quitLabel.draw(dst, core.ColorWhite)
	if m.showHigh {
		dst.DrawTextColor(65, 13, fmt.Sprintf("H I G H  S C O R E : %d", w.highScore), core.ColorBrightYellow)
	}
	c := menuCursor[m.selection]
	dst.DrawSprite(c.x, c.y, landerIdle)
}

// Options entries, left to right.
const (
	optionSoundOn = iota
	optionSoundOff
	optionBack
	optionEntries
)

var optionsCursor = [optionEntries]struct{ x, y int }{
	optionSoundOn:  {49, 22},
	optionSoundOff: {80, 22},
	optionBack:     {60, 32},
}

type optionsState struct {
	selection int
}

func (o *optionsState) enter(w *world) []Effect {
	w.runTime = 0
	return nil
}

func (o *optionsState) update(_ *world, in core.InputFrame, _ float64) Step {
	if in.Has(core.ActionRight) {
		o.selection = (o.selection + 1) % optionEntries
	}
	if in.Has(core.ActionLeft) {
		o.selection = (o.selection + optionEntries - 1) % optionEntries
	}
	if !in.Has(core.ActionConfirm) {
		return Step{}
	}
	switch o.selection {
	case optionSoundOn:
		return Step{Effects: []Effect{{Kind: EffectSaveSound, Enabled: true}}}
	case optionSoundOff:
		return Step{Effects: []Effect{{Kind: EffectSaveSound, Enabled: false}}}
	default:
		return Step{Trigger: TriggerBack}
	}
}

func (o *optionsState) render(w *world, dst *core.Screen) {
	titleArt.draw(dst, core.ColorBrightWhite)
	optionsHeading.draw(dst, core.ColorWhite)
	soundLabel.draw(dst, core.ColorWhite)

	on, off := core.ColorWhite, core.ColorGray
	if !w.soundEnabled {
		on, off = off, on
	}
	soundOnLabel.draw(dst, on)
	soundOffLabel.draw(dst, off)
	backLabel.draw(dst, core.ColorWhite)

	c := optionsCursor[o.selection]
	dst.DrawSprite(c.x, c.y, landerIdle)
}

type playState struct {
	explosion float64
	frame     ExplosionFrame
}

func (p *playState) enter(*world) []Effect {
	p.explosion = 0
	p.frame = ExplosionEmpty
	return nil
}

func (p *playState) update(w *world, in core.InputFrame, dt float64) Step {
	var step Step
	if in.Has(core.ActionCancel) {
		step.emit(Effect{Kind: EffectQuit})
	}

	l := w.lander
	if !l.Flying() {
		if in.Has(core.ActionConfirm) {
			return p.acknowledge(w, step)
		}
		if l.Status == StatusCrashed {
			p.animate(w, dt)
		}
		step.emit(Effect{Kind: EffectThrusterOff})
		return step
	}

	w.runTime += dt
	w.flight.Advance(l, Controls{
		Thrust: in.Has(core.ActionUp),
		Left:   in.Has(core.ActionLeft),
		Right:  in.Has(core.ActionRight),
	}, dt)

	l.Status = w.resolver.Classify(l, w.terrain)
	switch l.Status {
	case StatusLanded:
		l.Score += w.rule.Award(l, w.terrain)
		w.playAgain = true
	case StatusCrashed:
		p.animate(w, dt)
	default:
		w.pickup.TryCollect(l, w.pickupBonus)
		if !w.pickup.Exists {
			w.pickup.Spawn(w.rng, w.flight.MaxX(), w.flight.MaxY())
		}
	}

	if l.Flying() && l.Moving() && w.soundEnabled {
		step.emit(Effect{Kind: EffectThrusterOn})
	} else {
		step.emit(Effect{Kind: EffectThrusterOff})
	}
	return step
}

// acknowledge handles Enter after a landing or a crash. A landing keeps fuel
// and score; a crash refills, settles the score and returns to the menu.
func (p *playState) acknowledge(w *world, step Step) Step {
	w.lander.Reset()
	w.pickup.Clear()
	step.emit(Effect{Kind: EffectThrusterOff})

	if w.playAgain {
		w.playAgain = false
		step.Trigger = TriggerContinue
		return step
	}

	w.lander.Refill()
	step.emit(Effect{Kind: EffectSettleScore}, Effect{Kind: EffectResetMenu})
	step.Trigger = TriggerMissionOver
	return step
}

func (p *playState) animate(w *world, dt float64) {
	p.explosion += dt
	switch {
	case p.explosion >= w.timing.ExplosionBigAt:
		p.frame = ExplosionBig
		p.explosion = 0
	case p.explosion >= w.timing.ExplosionSmallAt:
		p.frame = ExplosionSmall
	default:
		p.frame = ExplosionEmpty
	}
}

func (p *playState) render(w *world, dst *core.Screen) {
	w.terrain.Draw(dst)
	w.pickup.Draw(dst)

	l := w.lander
	switch l.Status {
	case StatusCrashed:
		dst.DrawSprite(l.X, l.Y, explosionSprites[p.frame])
		drawBanner(dst, "COMMAND, MISSION HAS FAILED!", "Press 'Enter' to return to menu...")
	case StatusLanded:
		dst.DrawSprite(l.X, l.Y, landerIdle)
		drawBanner(dst, "COMMAND, WE ARE IN THE CLEAR!", "Press 'Enter' to continue")
	default:
		dst.DrawSprite(l.X, l.Y, LanderSprite(l))
	}

	drawHUD(w, dst)
}
