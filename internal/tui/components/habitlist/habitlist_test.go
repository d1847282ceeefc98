package habitlist

import (
	"testing"

	"github.com/lamnguyen/habitkit/internal/models"
)

func TestItemLabels(t *testing.T) {
	tests := []struct {
		name  string
		habit models.Habit
		want  string
	}{
		{"not done", models.Habit{Title: "Drink water", Active: true}, "○ Drink water"},
		{"done", models.Habit{Title: "Drink water", Active: true, DoneToday: true}, "✓ Drink water"},
		{"paused", models.Habit{Title: "Drink water"}, "[PAUSED] Drink water"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (Item{Habit: tt.habit}).Title(); got != tt.want {
				t.Errorf("Title() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewHidesPausedByDefault(t *testing.T) {
	all := []models.Habit{
		{ID: 1, Title: "active", Active: true},
		{ID: 2, Title: "paused", Active: false},
	}

	m := New(all, 80, 24)
	if got := len(m.list.Items()); got != 1 {
		t.Errorf("got %d visible items, want 1 (paused hidden by default)", got)
	}

	m.hidePaused = false
	m.applyFilter()
	if got := len(m.list.Items()); got != 2 {
		t.Errorf("got %d visible items with paused shown, want 2", got)
	}
}

func TestSetHabitsReappliesQuery(t *testing.T) {
	m := New(nil, 80, 24)
	m.search.SetValue("sach")

	m.SetHabits([]models.Habit{
		{ID: 1, Title: "Đọc sách 30 phút", Active: true},
		{ID: 2, Title: "Drink water", Active: true},
	})

	if got := len(m.list.Items()); got != 1 {
		t.Fatalf("got %d visible items, want 1 (query applied to fresh collection)", got)
	}
	item := m.list.Items()[0].(Item)
	if item.Habit.ID != 1 {
		t.Errorf("visible item = %q, want the reading habit", item.Habit.Title)
	}
}
