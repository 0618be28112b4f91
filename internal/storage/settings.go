package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-lander/internal/lander"
)

// ErrNotFound is returned when a settings key has never been written.
var ErrNotFound = errors.New("storage: setting not found")

// Setting keys used by Preferences.
const (
	KeyHighScore    = "high_score"
	KeySoundEnabled = "sound_enabled"
)

// Setting reads a raw settings value.
func (s *Store) Setting(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("storage: cannot read setting %q: %w", key, err)
	}
	return value, nil
}

// SetSetting writes a raw settings value, replacing any previous one.
func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write setting %q: %w", key, err)
	}
	return nil
}

// Preferences stores the high score and sound toggle as decimal text in
// the settings table. Missing keys read as a high score of 0 and sound on.
type Preferences struct {
	store *Store
}

// Preferences returns the settings-backed preferences of the store.
func (s *Store) Preferences() *Preferences {
	return &Preferences{store: s}
}

func (p *Preferences) HighScore() (int, error) {
	return p.readInt(KeyHighScore, 0)
}

func (p *Preferences) SetHighScore(score int) error {
	return p.store.SetSetting(KeyHighScore, strconv.Itoa(score))
}

func (p *Preferences) SoundEnabled() (bool, error) {
	n, err := p.readInt(KeySoundEnabled, 1)
	if err != nil {
		return true, err
	}
	return n != 0, nil
}

func (p *Preferences) SetSoundEnabled(enabled bool) error {
	value := "0"
	if enabled {
		value = "1"
	}
	return p.store.SetSetting(KeySoundEnabled, value)
}

func (p *Preferences) readInt(key string, fallback int) (int, error) {
	raw, err := p.store.Setting(key)
	if errors.Is(err, ErrNotFound) {
		return fallback, nil
	}
	if err != nil {
		return fallback, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback, fmt.Errorf("storage: setting %q is not a number: %q", key, raw)
	}
	return n, nil
}

// Ensure the store satisfies the game's collaborators.
var (
	_ lander.Preferences   = (*Preferences)(nil)
	_ lander.ScoreRecorder = (*Store)(nil)
)
