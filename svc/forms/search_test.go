package forms_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/studyshelf/svc/forms"
)

func TestSanitizeSearchQuery(t *testing.T) {
	t.Parallel()

	got := forms.SanitizeSearchQuery("<script>'; drop")
	assert.False(t, strings.ContainsAny(got, `<>'";&`))
	assert.Equal(t, "script drop", got)

	assert.Equal(t, "", forms.SanitizeSearchQuery("   "))
	assert.Equal(t, got, forms.SanitizeSearchQuery(got))
	assert.Len(t, []rune(forms.SanitizeSearchQuery(strings.Repeat("q", 500))), 200)
}
