package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (expected easy, normal or hard)", name)
	}
}

// ApplyPreset adjusts tank size and drag for a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyPreset(cfg *LanderConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Fuel.Max *= 1.5
		cfg.Physics.DragRate *= 0.75
	case DifficultyHard:
		cfg.Fuel.Max *= 0.75
		cfg.Physics.DragRate *= 1.25
	}
}
