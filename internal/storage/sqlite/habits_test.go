package sqlite

import (
	"testing"
	"time"
)

func countRows(t *testing.T, store *Store) int {
	t.Helper()

	var count int
	if err := store.db.QueryRow("SELECT COUNT(*) FROM habits").Scan(&count); err != nil {
		t.Fatalf("failed to count habits: %v", err)
	}
	return count
}

// setCreatedAt pins a row's timestamp so ordering tests don't depend on
// insert timing.
func setCreatedAt(t *testing.T, store *Store, title string, createdAt int64) {
	t.Helper()

	if _, err := store.db.Exec("UPDATE habits SET created_at = ? WHERE title = ?", createdAt, title); err != nil {
		t.Fatalf("failed to set created_at for %q: %v", title, err)
	}
}

func TestSeedIfEmpty(t *testing.T) {
	store := setupTestStore(t)

	if err := store.SeedIfEmpty(); err != nil {
		t.Fatalf("SeedIfEmpty() failed: %v", err)
	}
	if got := countRows(t, store); got != 3 {
		t.Errorf("got %d habits after seeding empty table, want 3", got)
	}

	// Seeding again must be a no-op.
	if err := store.SeedIfEmpty(); err != nil {
		t.Fatalf("second SeedIfEmpty() failed: %v", err)
	}
	if got := countRows(t, store); got != 3 {
		t.Errorf("got %d habits after re-seeding, want 3", got)
	}
}

func TestSeedIfEmptySkipsNonEmptyTable(t *testing.T) {
	store := setupTestStore(t)

	if err := store.CreateHabit("Drink water", ""); err != nil {
		t.Fatalf("CreateHabit() failed: %v", err)
	}
	if err := store.SeedIfEmpty(); err != nil {
		t.Fatalf("SeedIfEmpty() failed: %v", err)
	}
	if got := countRows(t, store); got != 1 {
		t.Errorf("got %d habits, want 1 (seed must not run on a non-empty table)", got)
	}
}

func TestCreateHabitDefaults(t *testing.T) {
	store := setupTestStore(t)

	before := time.Now().UnixMilli()
	if err := store.CreateHabit("Drink water", ""); err != nil {
		t.Fatalf("CreateHabit() failed: %v", err)
	}

	habits, err := store.ListActive()
	if err != nil {
		t.Fatalf("ListActive() failed: %v", err)
	}
	if len(habits) != 1 {
		t.Fatalf("got %d habits, want 1", len(habits))
	}

	h := habits[0]
	if h.Title != "Drink water" {
		t.Errorf("Title = %q, want %q", h.Title, "Drink water")
	}
	if h.Description != "" {
		t.Errorf("Description = %q, want empty", h.Description)
	}
	if !h.Active {
		t.Error("Active = false, want true by default")
	}
	if h.DoneToday {
		t.Error("DoneToday = true, want false by default")
	}
	if h.CreatedAt < before {
		t.Errorf("CreatedAt = %d, want >= %d", h.CreatedAt, before)
	}
}

func TestListActiveOrderAndFilter(t *testing.T) {
	store := setupTestStore(t)

	for _, title := range []string{"oldest", "middle", "newest"} {
		if err := store.CreateHabit(title, ""); err != nil {
			t.Fatalf("CreateHabit(%q) failed: %v", title, err)
		}
	}
	setCreatedAt(t, store, "oldest", 1000)
	setCreatedAt(t, store, "middle", 2000)
	setCreatedAt(t, store, "newest", 3000)

	habits, err := store.ListActive()
	if err != nil {
		t.Fatalf("ListActive() failed: %v", err)
	}
	want := []string{"newest", "middle", "oldest"}
	if len(habits) != len(want) {
		t.Fatalf("got %d habits, want %d", len(habits), len(want))
	}
	for i, title := range want {
		if habits[i].Title != title {
			t.Errorf("habits[%d].Title = %q, want %q (created_at descending)", i, habits[i].Title, title)
		}
	}

	// Paused habits disappear from the default listing but stay in the
	// full one.
	if err := store.SetActive(habits[1].ID, false); err != nil {
		t.Fatalf("SetActive() failed: %v", err)
	}

	active, err := store.ListActive()
	if err != nil {
		t.Fatalf("ListActive() failed: %v", err)
	}
	if len(active) != 2 {
		t.Errorf("got %d active habits, want 2", len(active))
	}
	for _, h := range active {
		if h.Title == "middle" {
			t.Error("paused habit still present in ListActive()")
		}
	}

	all, err := store.ListAll()
	if err != nil {
		t.Fatalf("ListAll() failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("got %d habits from ListAll(), want 3", len(all))
	}
}

func TestGetHabit(t *testing.T) {
	store := setupTestStore(t)

	if err := store.CreateHabit("Drink water", "two liters"); err != nil {
		t.Fatalf("CreateHabit() failed: %v", err)
	}
	habits, err := store.ListActive()
	if err != nil {
		t.Fatalf("ListActive() failed: %v", err)
	}

	h, err := store.GetHabit(habits[0].ID)
	if err != nil {
		t.Fatalf("GetHabit() failed: %v", err)
	}
	if h == nil {
		t.Fatal("GetHabit() = nil for existing habit")
	}
	if h.Title != "Drink water" || h.Description != "two liters" {
		t.Errorf("GetHabit() = %+v, want title %q and description %q", h, "Drink water", "two liters")
	}
}

func TestGetHabitAbsentIsNotAnError(t *testing.T) {
	store := setupTestStore(t)

	h, err := store.GetHabit(42)
	if err != nil {
		t.Fatalf("GetHabit() on absent id returned error: %v", err)
	}
	if h != nil {
		t.Errorf("GetHabit() = %+v, want nil for absent id", h)
	}
}

func TestUpdateHabit(t *testing.T) {
	store := setupTestStore(t)

	if err := store.CreateHabit("Drink water", "old"); err != nil {
		t.Fatalf("CreateHabit() failed: %v", err)
	}
	habits, _ := store.ListActive()
	id := habits[0].ID

	if err := store.SetDoneToday(id, true); err != nil {
		t.Fatalf("SetDoneToday() failed: %v", err)
	}

	if err := store.UpdateHabit(id, "Drink more water", "new"); err != nil {
		t.Fatalf("UpdateHabit() failed: %v", err)
	}

	h, err := store.GetHabit(id)
	if err != nil || h == nil {
		t.Fatalf("GetHabit() failed: %v", err)
	}
	if h.Title != "Drink more water" || h.Description != "new" {
		t.Errorf("after update: title %q description %q", h.Title, h.Description)
	}
	// Update must not touch the other columns.
	if !h.DoneToday {
		t.Error("UpdateHabit() cleared done_today")
	}
	if !h.Active {
		t.Error("UpdateHabit() cleared active")
	}
	if h.CreatedAt != habits[0].CreatedAt {
		t.Error("UpdateHabit() changed created_at")
	}
}

func TestUpdateHabitMissingIDIsNoOp(t *testing.T) {
	store := setupTestStore(t)

	if err := store.CreateHabit("Drink water", ""); err != nil {
		t.Fatalf("CreateHabit() failed: %v", err)
	}

	if err := store.UpdateHabit(999, "ghost", ""); err != nil {
		t.Fatalf("UpdateHabit() on absent id returned error: %v", err)
	}
	if got := countRows(t, store); got != 1 {
		t.Errorf("got %d rows after updating absent id, want 1", got)
	}
}

func TestSetDoneTodayTogglePair(t *testing.T) {
	store := setupTestStore(t)

	if err := store.CreateHabit("Drink water", ""); err != nil {
		t.Fatalf("CreateHabit() failed: %v", err)
	}
	habits, _ := store.ListActive()
	id := habits[0].ID

	if err := store.SetDoneToday(id, true); err != nil {
		t.Fatalf("SetDoneToday(true) failed: %v", err)
	}
	h, _ := store.GetHabit(id)
	if !h.DoneToday {
		t.Error("DoneToday = false after SetDoneToday(true)")
	}

	if err := store.SetDoneToday(id, false); err != nil {
		t.Fatalf("SetDoneToday(false) failed: %v", err)
	}
	h, _ = store.GetHabit(id)
	if h.DoneToday {
		t.Error("DoneToday = true after toggling back")
	}
}

func TestResetAllDoneToday(t *testing.T) {
	store := setupTestStore(t)

	for _, title := range []string{"one", "two", "three"} {
		if err := store.CreateHabit(title, ""); err != nil {
			t.Fatalf("CreateHabit(%q) failed: %v", title, err)
		}
	}
	habits, _ := store.ListActive()
	for _, h := range habits {
		if err := store.SetDoneToday(h.ID, true); err != nil {
			t.Fatalf("SetDoneToday() failed: %v", err)
		}
	}

	if err := store.ResetAllDoneToday(); err != nil {
		t.Fatalf("ResetAllDoneToday() failed: %v", err)
	}

	habits, _ = store.ListActive()
	for _, h := range habits {
		if h.DoneToday {
			t.Errorf("habit %q still done after reset", h.Title)
		}
	}
}

func TestDeleteHabit(t *testing.T) {
	store := setupTestStore(t)

	if err := store.CreateHabit("Drink water", ""); err != nil {
		t.Fatalf("CreateHabit() failed: %v", err)
	}
	habits, _ := store.ListActive()
	id := habits[0].ID

	if err := store.DeleteHabit(id); err != nil {
		t.Fatalf("DeleteHabit() failed: %v", err)
	}

	active, err := store.ListActive()
	if err != nil {
		t.Fatalf("ListActive() failed: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("got %d habits after delete, want 0", len(active))
	}

	h, err := store.GetHabit(id)
	if err != nil {
		t.Fatalf("GetHabit() after delete returned error: %v", err)
	}
	if h != nil {
		t.Errorf("GetHabit() = %+v after delete, want nil", h)
	}

	// Deleting an absent id is a silent no-op.
	if err := store.DeleteHabit(id); err != nil {
		t.Errorf("DeleteHabit() on absent id returned error: %v", err)
	}
}

func TestDescriptionRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	// An empty description is stored as NULL and read back as "".
	if err := store.CreateHabit("no description", ""); err != nil {
		t.Fatalf("CreateHabit() failed: %v", err)
	}

	var nullCount int
	err := store.db.QueryRow("SELECT COUNT(*) FROM habits WHERE description IS NULL").Scan(&nullCount)
	if err != nil {
		t.Fatalf("failed to count NULL descriptions: %v", err)
	}
	if nullCount != 1 {
		t.Errorf("got %d NULL descriptions, want 1", nullCount)
	}

	habits, _ := store.ListActive()
	if habits[0].Description != "" {
		t.Errorf("Description = %q, want empty string for NULL", habits[0].Description)
	}
}
