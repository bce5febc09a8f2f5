package forms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/studyshelf/svc/forms"
)

func TestValidate_Dispatch(t *testing.T) {
	t.Parallel()

	t.Run("login", func(t *testing.T) {
		t.Parallel()
		v, err := forms.Validate(forms.RuleSetLogin, map[string]string{
			"email":    "a@example.com",
			"password": "password1",
		})
		require.NoError(t, err)
		assert.Equal(t, forms.Credentials{Email: "a@example.com", Password: "password1"}, v)
	})

	t.Run("signup failure returns nil value", func(t *testing.T) {
		t.Parallel()
		v, err := forms.Validate(forms.RuleSetSignup, map[string]string{})
		assert.Nil(t, v)
		assert.Equal(t, map[string]string{
			"name":            "Name is required",
			"email":           "Email is required",
			"password":        "Password is required",
			"confirmPassword": "Please confirm your password",
		}, fieldErrors(t, err))
	})

	t.Run("listing", func(t *testing.T) {
		t.Parallel()
		v, err := forms.Validate(forms.RuleSetListing, map[string]string{
			"title":       "Constitutional Law Notes",
			"category":    "Law",
			"price":       "89",
			"description": "Notes for the LLB constitutional law paper.",
		})
		require.NoError(t, err)
		sub, ok := v.(forms.ListingSubmission)
		require.True(t, ok)
		assert.InDelta(t, 89.0, sub.Price, 0.0001)
	})
}

func TestValidate_UnknownRuleSetPanics(t *testing.T) {
	t.Parallel()

	assert.False(t, forms.RuleSet("checkout").Valid())
	assert.PanicsWithValue(t, `forms: unknown rule set "checkout"`, func() {
		_, _ = forms.Validate("checkout", nil)
	})
}

func TestRuleSets(t *testing.T) {
	t.Parallel()

	for _, rs := range forms.RuleSets() {
		assert.True(t, rs.Valid(), string(rs))
	}
}

func TestCategories(t *testing.T) {
	t.Parallel()

	cats := forms.Categories()
	assert.Contains(t, cats, "Competitive Exams")
	assert.True(t, forms.IsCategory("Law"))
	assert.False(t, forms.IsCategory("law"))

	cats[0] = "mutated"
	assert.True(t, forms.IsCategory("Engineering"))
}
