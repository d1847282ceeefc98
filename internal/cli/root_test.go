package cli

import (
	"strings"
	"testing"

	"github.com/lamnguyen/habitkit/internal/models"
)

func TestFormatHabitLine(t *testing.T) {
	t.Run("done habit", func(t *testing.T) {
		line := FormatHabitLine(models.Habit{ID: 7, Title: "Drink water", Active: true, DoneToday: true})
		if !strings.Contains(line, "✓ Drink water") {
			t.Errorf("line %q missing done marker", line)
		}
		if strings.Contains(line, "[PAUSED]") {
			t.Errorf("line %q marks an active habit as paused", line)
		}
	})

	t.Run("paused habit with description", func(t *testing.T) {
		line := FormatHabitLine(models.Habit{ID: 2, Title: "Đi bộ 15 phút", Description: "buổi sáng", Active: false})
		if !strings.Contains(line, "[PAUSED]") {
			t.Errorf("line %q missing paused marker", line)
		}
		if !strings.Contains(line, "buổi sáng") {
			t.Errorf("line %q missing description", line)
		}
		if !strings.Contains(line, "○") {
			t.Errorf("line %q missing not-done marker", line)
		}
	})
}
