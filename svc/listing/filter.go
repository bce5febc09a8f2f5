package listing

import (
	"cmp"
	"slices"
	"strings"

	"github.com/dmitrymomot/studyshelf/pkg/sanitizer"
)

// Browse page defaults.
const (
	DefaultMinPrice = 0
	DefaultMaxPrice = 200
)

// Filter narrows a listing collection.
// Query must already be sanitized; see forms.SanitizeSearchQuery.
type Filter struct {
	Query    string
	Category string
	MinPrice int
	MaxPrice int
}

// DefaultFilter returns the initial browse state: empty query,
// every category and the [0, 200] price range.
func DefaultFilter() Filter {
	return Filter{
		Category: CategoryAll,
		MinPrice: DefaultMinPrice,
		MaxPrice: DefaultMaxPrice,
	}
}

// Apply returns the listings that satisfy all three predicates,
// preserving input order. An empty result is not an error.
func (f Filter) Apply(listings []Listing) []Listing {
	lower := sanitizer.Lowerer()
	query := lower(f.Query)

	out := make([]Listing, 0, len(listings))
	for _, l := range listings {
		if matchesQuery(l, query, lower) && f.matchesCategory(l) && f.matchesPrice(l) {
			out = append(out, l)
		}
	}
	return out
}

func matchesQuery(l Listing, query string, lower func(string) string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(lower(l.Title), query) ||
		strings.Contains(lower(l.Author), query)
}

func (f Filter) matchesCategory(l Listing) bool {
	return f.Category == CategoryAll || l.Category == f.Category
}

func (f Filter) matchesPrice(l Listing) bool {
	return l.Price >= f.MinPrice && l.Price <= f.MaxPrice
}

// Featured returns up to n listings ordered by rating, highest first.
// Listings with equal ratings keep their catalog order.
func Featured(listings []Listing, n int) []Listing {
	if n <= 0 {
		return []Listing{}
	}

	sorted := append(make([]Listing, 0, len(listings)), listings...)
	slices.SortStableFunc(sorted, func(a, b Listing) int {
		return cmp.Compare(b.Rating, a.Rating)
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// CategoryCounts returns the number of listings per category.
func CategoryCounts(listings []Listing) map[string]int {
	counts := make(map[string]int)
	for _, l := range listings {
		counts[l.Category]++
	}
	return counts
}
