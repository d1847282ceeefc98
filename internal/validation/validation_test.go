package validation

import (
	"errors"
	"testing"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		valid bool
	}{
		{"plain title", "Drink water", true},
		{"non-ASCII title", "Uống 2 lít nước", true},
		{"empty", "", false},
		{"whitespace only", "   \t ", false},
		{"padded but non-empty", "  ok  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTitle(tt.title)
			if tt.valid && err != nil {
				t.Errorf("ValidateTitle(%q) = %v, want nil", tt.title, err)
			}
			if !tt.valid && !errors.Is(err, ErrEmptyTitle) {
				t.Errorf("ValidateTitle(%q) = %v, want ErrEmptyTitle", tt.title, err)
			}
		})
	}
}
