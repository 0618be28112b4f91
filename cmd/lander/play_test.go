package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
)

func TestPlayRunCloseReleasesResources(t *testing.T) {
	dir := t.TempDir()
	run, err := newPlayRun(playOptions{
		DBPath:  filepath.Join(dir, "scores.db"),
		LogDir:  filepath.Join(dir, "logs"),
		Mute:    true,
		Runtime: core.RuntimeConfig{TickRate: 30, Seed: 7},
	})
	if err != nil {
		t.Fatalf("newPlayRun() error = %v", err)
	}

	if run.store == nil {
		t.Fatal("store should be open")
	}
	if run.runtime.Seed != 7 || run.runtime.TickRate != 30 {
		t.Errorf("runtime = %+v, expected seed 7 and tick rate 30", run.runtime)
	}
	if run.preset != config.DifficultyNormal {
		t.Errorf("preset = %q, expected %q", run.preset, config.DifficultyNormal)
	}

	run.Close()
	if _, err := run.store.TopScores("", 1); err == nil {
		t.Error("TopScores() after Close should fail on a closed database")
	}
	if _, err := os.Stat(filepath.Join(dir, "logs", "lander.log")); err != nil {
		t.Errorf("log file not written: %v", err)
	}

	// A second Close is a no-op.
	run.Close()
}

func TestPlayRunRejectsUnknownDifficulty(t *testing.T) {
	dir := t.TempDir()
	run, err := newPlayRun(playOptions{
		Difficulty: "insane",
		DBPath:     filepath.Join(dir, "scores.db"),
		Mute:       true,
	})
	if err == nil {
		run.Close()
		t.Fatal("newPlayRun() error = nil, expected unknown difficulty")
	}
	if _, statErr := os.Stat(filepath.Join(dir, "scores.db")); !os.IsNotExist(statErr) {
		t.Errorf("database should not be created for a rejected run, stat error = %v", statErr)
	}
}

func TestNewFileLoggerWithoutDirDiscards(t *testing.T) {
	logger, closeLog := newFileLogger("")
	defer closeLog()
	if logger == nil {
		t.Fatal("newFileLogger(\"\") = nil, expected a discarding logger")
	}
	logger.Info("dropped")
}
