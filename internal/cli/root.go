package cli

import (
	"fmt"

	"github.com/lamnguyen/habitkit/internal/models"
	"github.com/lamnguyen/habitkit/internal/storage"
)

// Context carries the shared dependencies into every kong command.
type Context struct {
	Store        storage.Provider
	SyncEndpoint string
}

// FormatHabitLine renders one habit for plain-text listings.
func FormatHabitLine(h models.Habit) string {
	mark := "○"
	if h.DoneToday {
		mark = "✓"
	}

	line := fmt.Sprintf("%4d  %s %s", h.ID, mark, h.Title)
	if !h.Active {
		line += " [PAUSED]"
	}
	if h.Description != "" {
		line += fmt.Sprintf("\n      %s", h.Description)
	}
	return line
}
