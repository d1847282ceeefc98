package tui

import (
	"github.com/charmbracelet/huh"

	"github.com/lamnguyen/habitkit/internal/validation"
)

// NewHabitForm creates the create/edit form. The title is validated
// before submission, so an empty title never reaches the store.
func NewHabitForm(fm *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("Ví dụ: Uống 2 lít nước").
				Value(&fm.Title).
				Validate(validation.ValidateTitle),
			huh.NewText().
				Title("Description (optional)").
				Lines(3).
				Value(&fm.Description),
		),
	)
}
