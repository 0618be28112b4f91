package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchReportsRewrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lander.yaml")
	if err := os.WriteFile(path, []byte("frame_rate: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	updates := make(chan LanderConfig, 8)
	stop, err := Watch(path, func(cfg LanderConfig, err error) {
		if err == nil {
			updates <- cfg
		}
	})
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	defer stop()

	if err := os.WriteFile(path, []byte("frame_rate: 8\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-updates:
			if cfg.FrameRate == 8 {
				return
			}
		case <-deadline:
			t.Fatal("no reload observed after rewriting config")
		}
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	_, err := Watch(filepath.Join(t.TempDir(), "nope", "lander.yaml"), func(LanderConfig, error) {})
	if err == nil {
		t.Error("Watch() error = nil, expected error for missing directory")
	}
}
