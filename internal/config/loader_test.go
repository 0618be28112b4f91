package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultLanderConfigMatchesEmbedded(t *testing.T) {
	embedded, err := Parse(defaultLanderYAML)
	if err != nil {
		t.Fatalf("Parse(embedded) error = %v", err)
	}
	if embedded != DefaultLanderConfig() {
		t.Errorf("embedded config = %+v, expected %+v", embedded, DefaultLanderConfig())
	}
}

func TestDefaultLanderConfigValues(t *testing.T) {
	cfg := DefaultLanderConfig()

	tests := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"frame rate", float64(cfg.FrameRate), 5},
		{"thrust rate", cfg.Physics.ThrustRate, 0.5},
		{"drag rate", cfg.Physics.DragRate, 0.2},
		{"max lift", cfg.Physics.MaxLift, 1.5},
		{"rise threshold", cfg.Physics.RiseThreshold, 0.5},
		{"fuel consumption", cfg.Physics.FuelConsumption, 0.5},
		{"safe landing velocity", cfg.Physics.SafeLandingVelocity, -0.2},
		{"fuel max", cfg.Fuel.Max, 100},
		{"pickup bonus", cfg.Fuel.PickupBonus, 25},
		{"base score", float64(cfg.Scoring.BaseScore), 50},
		{"splash", cfg.Timing.SplashDuration, 3},
		{"start x", float64(cfg.Lander.StartX), 37},
		{"start y", float64(cfg.Lander.StartY), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s = %v, expected %v", tt.name, tt.got, tt.expected)
			}
		})
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("frame_rate: 10\nfuel:\n  max: 40\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.FrameRate != 10 {
		t.Errorf("FrameRate = %d, expected 10", cfg.FrameRate)
	}
	if cfg.Fuel.Max != 40 {
		t.Errorf("Fuel.Max = %v, expected 40", cfg.Fuel.Max)
	}
	if cfg.Physics.ThrustRate != 0.5 {
		t.Errorf("ThrustRate = %v, expected default 0.5", cfg.Physics.ThrustRate)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"zero frame rate", "frame_rate: 0\n", "frame_rate"},
		{"negative drag", "physics:\n  drag_rate: -1\n", "physics rates"},
		{"threshold above max", "physics:\n  rise_threshold: 2\n", "rise_threshold"},
		{"empty tank", "fuel:\n  max: 0\n", "fuel.max"},
		{"malformed", "frame_rate: [\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("Parse() error = nil, expected error")
			}
			if tt.want != "" && !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Parse() error = %q, expected mention of %q", err, tt.want)
			}
		})
	}
}

func TestLoadLanderCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lander.yaml")
	if err := os.WriteFile(path, []byte("scoring:\n  base_score: 75\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadLander(path)
	if err != nil {
		t.Fatalf("LoadLander() error = %v", err)
	}
	if cfg.Scoring.BaseScore != 75 {
		t.Errorf("BaseScore = %d, expected 75", cfg.Scoring.BaseScore)
	}
}

func TestLoadLanderMissingCustomPath(t *testing.T) {
	if _, err := LoadLander(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadLander(missing) error = nil, expected error")
	}
}

func TestLoadLanderFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	cfg, err := LoadLander("")
	if err != nil {
		t.Fatalf("LoadLander() error = %v", err)
	}
	if cfg != DefaultLanderConfig() {
		t.Errorf("LoadLander() = %+v, expected defaults", cfg)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		input   string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"normal", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"insane", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePreset(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePreset(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePreset(%q) = %q, expected %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		wantMax float64
	}{
		{DifficultyEasy, 150},
		{DifficultyNormal, 100},
		{DifficultyHard, 75},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultLanderConfig()
			ApplyPreset(&cfg, tt.preset)
			if cfg.Fuel.Max != tt.wantMax {
				t.Errorf("Fuel.Max = %v, expected %v", cfg.Fuel.Max, tt.wantMax)
			}
			if err := Validate(cfg); err != nil {
				t.Errorf("Validate() after preset = %v", err)
			}
		})
	}
}
