package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/studyshelf/pkg/sanitizer"
)

func TestSearchQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain query", "data structures", "data structures"},
		{"trims", "  physics  ", "physics"},
		{"script injection", "<script>'; drop", "script drop"},
		{"quotes and ampersand", `"law" & 'order'`, "law  order"},
		{"only denylisted", `<>'";&`, ""},
		{"denylisted at edges leaves no outer space", "< notes >", "notes"},
		{"empty", "", ""},
		{"keeps other punctuation", "C++ (2nd ed.) - notes!", "C++ (2nd ed.) - notes!"},
		{"keeps unicode", "Ökonomie", "Ökonomie"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := sanitizer.SearchQuery(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.False(t, strings.ContainsAny(got, sanitizer.SearchQueryDenylist))
		})
	}
}

func TestSearchQuery_Length(t *testing.T) {
	t.Parallel()

	got := sanitizer.SearchQuery(strings.Repeat("a", 250))
	assert.Len(t, []rune(got), sanitizer.SearchQueryMaxLength)

	// truncation that lands on a space does not leave trailing whitespace
	input := strings.Repeat("a", 199) + "  bbb"
	got = sanitizer.SearchQuery(input)
	assert.Equal(t, strings.Repeat("a", 199), got)
}

func TestSearchQuery_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"<script>'; drop",
		"  data  ",
		"a <",
		"& leading",
		strings.Repeat("x ", 150),
		strings.Repeat("<", 10) + "q" + strings.Repeat(">", 10),
		"",
	}

	for _, in := range inputs {
		once := sanitizer.SearchQuery(in)
		assert.Equal(t, once, sanitizer.SearchQuery(once), "input %q", in)
	}
}

func TestSearchQuery_PreservesOrder(t *testing.T) {
	t.Parallel()

	in := "a<b>c'd\"e;f&g"
	assert.Equal(t, "abcdefg", sanitizer.SearchQuery(in))
}
