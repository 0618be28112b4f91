package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenMigrates(t *testing.T) {
	store := openTestStore(t)

	version, err := store.schemaVersion()
	if err != nil {
		t.Fatalf("schemaVersion() error = %v", err)
	}
	if version != len(migrations) {
		t.Errorf("schemaVersion() = %d, expected %d", version, len(migrations))
	}

	// A second run is a no-op.
	if err := store.migrate(); err != nil {
		t.Errorf("migrate() on current schema error = %v", err)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in       string
		expected string
	}{
		{"~/.lander/scores.db", filepath.Join(home, ".lander", "scores.db")},
		{"/tmp/scores.db", "/tmp/scores.db"},
		{"scores.db", "scores.db"},
	}

	for _, tt := range tests {
		got, err := expandHome(tt.in)
		if err != nil {
			t.Fatalf("expandHome(%q) error = %v", tt.in, err)
		}
		if got != tt.expected {
			t.Errorf("expandHome(%q) = %q, expected %q", tt.in, got, tt.expected)
		}
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.SaveScore("normal", 150)
	store.Preferences().SetHighScore(150)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	if best, _ := store.BestScore("normal"); best != 150 {
		t.Errorf("BestScore() after reopen = %d, expected 150", best)
	}
	if high, _ := store.Preferences().HighScore(); high != 150 {
		t.Errorf("HighScore() after reopen = %d, expected 150", high)
	}
}
