package validation

import (
	"errors"
	"strings"
)

// ErrEmptyTitle is returned for titles that are empty after trimming.
// The store itself does not enforce this; callers validate before any
// store round-trip.
var ErrEmptyTitle = errors.New("title must not be empty")

// ValidateTitle checks a habit title before it is submitted to the
// store.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	return nil
}
