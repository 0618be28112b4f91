// Package audio plays the game's looping sound effects through the system
// speaker. Every call degrades to a no-op when no audio device is available.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-lander/internal/lander"
)

const sampleRate = beep.SampleRate(44100)

// Player mixes looping effects into a single speaker stream.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	loops       map[string]*beep.Ctrl
	sources     map[string]func(beep.SampleRate) beep.Streamer
	initialized bool
}

// NewPlayer creates a player with the thruster effect registered.
func NewPlayer() *Player {
	return &Player{
		mixer: &beep.Mixer{},
		loops: make(map[string]*beep.Ctrl),
		sources: map[string]func(beep.SampleRate) beep.Streamer{
			lander.EffectThruster: func(sr beep.SampleRate) beep.Streamer {
				return &effects.Volume{
					Streamer: NewThrusterGenerator(sr, 1),
					Base:     2,
					Volume:   -1.5,
				}
			},
		},
	}
}

// Initialize opens the speaker. Call Cleanup when done.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup silences and drops every loop.
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	for _, ctrl := range p.loops {
		ctrl.Paused = true
	}
	p.mixer.Clear()
	speaker.Unlock()

	p.loops = make(map[string]*beep.Ctrl)
	p.initialized = false
}

// PlayLoop starts an effect looping. A loop that is already playing keeps
// going; a paused one resumes. Unknown effects are ignored.
func (p *Player) PlayLoop(effect string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	if ctrl, ok := p.loops[effect]; ok {
		ctrl.Paused = false
		return
	}
	source, ok := p.sources[effect]
	if !ok {
		return
	}
	// Sources are endless generators, so the ctrl needs no loop around them.
	ctrl := &beep.Ctrl{Streamer: source(sampleRate)}
	p.loops[effect] = ctrl
	p.mixer.Add(ctrl)
}

// Stop pauses every loop.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	for _, ctrl := range p.loops {
		ctrl.Paused = true
	}
	speaker.Unlock()
}

// Playing reports whether an effect is currently audible.
func (p *Player) Playing(effect string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	ctrl, ok := p.loops[effect]
	if !ok {
		return false
	}
	speaker.Lock()
	defer speaker.Unlock()
	return !ctrl.Paused
}

var _ lander.Sound = (*Player)(nil)
