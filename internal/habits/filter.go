package habits

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/lamnguyen/habitkit/internal/models"
)

// Fold lower-cases s and strips combining marks so that titles and
// queries compare diacritic-insensitively ("sach" matches "sách").
// Precomposed letters without a base-letter decomposition, such as "đ",
// are kept as-is.
func Fold(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// Filter derives the visible habit list from the full collection. The
// query matches as a folded substring of the title; when hidePaused is
// set, inactive habits are dropped. The input slice is never mutated and
// its order is preserved, so this is safe to run on every keystroke.
func Filter(list []models.Habit, query string, hidePaused bool) []models.Habit {
	q := Fold(strings.TrimSpace(query))

	out := make([]models.Habit, 0, len(list))
	for _, h := range list {
		if hidePaused && !h.Active {
			continue
		}
		if q != "" && !strings.Contains(Fold(h.Title), q) {
			continue
		}
		out = append(out, h)
	}
	return out
}
