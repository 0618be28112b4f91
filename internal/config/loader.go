package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadLander loads the game tuning.
// Search order: customPath -> ~/.lander/configs/lander.yaml -> ./configs/lander.yaml -> embedded default
func LoadLander(customPath string) (LanderConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := ParseFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserConfigPath(); userCfgPath != "" {
		if cfg, err := ParseFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := ParseFile(filepath.Join("configs", "lander.yaml")); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultLanderYAML)
	if err != nil {
		return DefaultLanderConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseFile reads and parses one YAML file.
func ParseFile(path string) (LanderConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LanderConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the built-in defaults, so a file only needs the
// keys it changes, and validates the result.
func Parse(data []byte) (LanderConfig, error) {
	cfg := DefaultLanderConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects tunings the simulation cannot run with.
func Validate(cfg LanderConfig) error {
	var errs []error
	if cfg.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("frame_rate must be positive, got %d", cfg.FrameRate))
	}
	p := cfg.Physics
	if p.ThrustRate < 0 || p.DragRate < 0 || p.FuelConsumption < 0 {
		errs = append(errs, errors.New("physics rates must not be negative"))
	}
	if p.MaxLift <= 0 {
		errs = append(errs, fmt.Errorf("max_lift must be positive, got %g", p.MaxLift))
	}
	if p.RiseThreshold < 0 || p.RiseThreshold > p.MaxLift {
		errs = append(errs, fmt.Errorf("rise_threshold %g outside [0, %g]", p.RiseThreshold, p.MaxLift))
	}
	if cfg.Fuel.Max <= 0 {
		errs = append(errs, fmt.Errorf("fuel.max must be positive, got %g", cfg.Fuel.Max))
	}
	if cfg.Timing.BlinkPeriod <= 0 {
		errs = append(errs, fmt.Errorf("blink_period must be positive, got %g", cfg.Timing.BlinkPeriod))
	}
	return errors.Join(errs...)
}

// UserConfigPath returns the path to the user config file, or empty if home is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lander", "configs", "lander.yaml")
}
