package sqlite

import (
	"path/filepath"
	"testing"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestInitCreatesHabitsTable(t *testing.T) {
	store := setupTestStore(t)

	exists, err := store.tableExists("habits")
	if err != nil {
		t.Fatalf("tableExists() returned unexpected error: %v", err)
	}
	if !exists {
		t.Error("tableExists(habits) = false, want true after Init")
	}
}

func TestInitIsIdempotent(t *testing.T) {
	store := setupTestStore(t)

	if err := store.CreateHabit("Drink water", ""); err != nil {
		t.Fatalf("CreateHabit() failed: %v", err)
	}

	// A restart re-runs Init against the same file; existing rows must
	// survive.
	if err := store.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	if err := store.Init(); err != nil {
		t.Fatalf("second Init() failed: %v", err)
	}

	habits, err := store.ListActive()
	if err != nil {
		t.Fatalf("ListActive() failed: %v", err)
	}
	if len(habits) != 1 {
		t.Errorf("got %d habits after re-init, want 1", len(habits))
	}
}

func TestTableExists(t *testing.T) {
	store := setupTestStore(t)

	exists, err := store.tableExists("nonexistent_table")
	if err != nil {
		t.Fatalf("tableExists() returned unexpected error: %v", err)
	}
	if exists {
		t.Error("tableExists(nonexistent_table) = true, want false")
	}
}
