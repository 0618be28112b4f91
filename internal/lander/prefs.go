package lander

import "sync"

// Preferences is the persistent key-value store for the high score and the
// sound toggle.
type Preferences interface {
	HighScore() (int, error)
	SetHighScore(score int) error
	SoundEnabled() (bool, error)
	SetSoundEnabled(enabled bool) error
}

// ScoreRecorder appends finished runs to a score history.
// mode is the difficulty preset the run was played on.
type ScoreRecorder interface {
	SaveScore(mode string, score int) (int64, error)
}

// EffectThruster is the looping engine sound.
const EffectThruster = "thruster"

// Sound plays looping effects.
type Sound interface {
	PlayLoop(effect string)
	Stop()
}

type nopSound struct{}

func (nopSound) PlayLoop(string) {}
func (nopSound) Stop() {}

// MemoryPreferences keeps preferences in memory. It is used when no database
// is available and in tests.
type MemoryPreferences struct {
	mu        sync.Mutex
	highScore int
	sound     bool
}

// NewMemoryPreferences returns preferences with no high score and sound on.
func NewMemoryPreferences() *MemoryPreferences {
	return &MemoryPreferences{sound: true}
}

func (m *MemoryPreferences) HighScore() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.highScore, nil
}

func (m *MemoryPreferences) SetHighScore(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.highScore = score
	return nil
}

func (m *MemoryPreferences) SoundEnabled() (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sound, nil
}

func (m *MemoryPreferences) SetSoundEnabled(enabled bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sound = enabled
	return nil
}
