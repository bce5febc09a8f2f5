package forms

import "github.com/dmitrymomot/studyshelf/pkg/sanitizer"

// SanitizeSearchQuery prepares free-text search input for matching: the
// characters < > ' " ; & are removed, whitespace is trimmed and the result
// is capped at 200 characters. It never fails and is idempotent.
func SanitizeSearchQuery(raw string) string {
	return sanitizer.SearchQuery(raw)
}
