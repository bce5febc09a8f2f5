package validator_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/studyshelf/pkg/validator"
)

func check(r validator.Rule) bool { return r.Check() }

func TestStringRules(t *testing.T) {
	t.Parallel()

	t.Run("Required trims whitespace", func(t *testing.T) {
		t.Parallel()
		assert.True(t, check(validator.Required("f", "a")))
		assert.False(t, check(validator.Required("f", "")))
		assert.False(t, check(validator.Required("f", " \t\n")))
	})

	t.Run("NotEmpty counts whitespace", func(t *testing.T) {
		t.Parallel()
		assert.True(t, check(validator.NotEmpty("f", "  ")))
		assert.False(t, check(validator.NotEmpty("f", "")))
	})

	t.Run("length bounds are inclusive and count characters", func(t *testing.T) {
		t.Parallel()
		assert.True(t, check(validator.MinLen("f", "abc", 3)))
		assert.False(t, check(validator.MinLen("f", "ab", 3)))
		assert.True(t, check(validator.MaxLen("f", "abc", 3)))
		assert.False(t, check(validator.MaxLen("f", "abcd", 3)))
		// three runes, six bytes
		assert.True(t, check(validator.MaxLen("f", "äöü", 3)))
		assert.False(t, check(validator.MinLen("f", "äöü", 4)))
	})

	t.Run("causes", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, validator.MinLen("f", "", 1).Error, validator.ErrTooShort)
		assert.ErrorIs(t, validator.MaxLen("f", "", 1).Error, validator.ErrTooLong)
		assert.ErrorIs(t, validator.NotEmpty("f", "").Error, validator.ErrFieldRequired)
	})
}

func TestValidEmail(t *testing.T) {
	t.Parallel()

	valid := []string{
		"user@example.com",
		"first.last@sub.example.co.in",
		"user+tag@example.org",
		strings.Repeat("a", 64) + "@example.com",
	}
	for _, email := range valid {
		assert.True(t, check(validator.ValidEmail("email", email)), "expected valid: %s", email)
	}

	invalid := []string{
		"",
		"plain",
		"user@",
		"@example.com",
		"user@localhost",
		"user@.example.com",
		"user@example.com.",
		"user@example..com",
		"John Doe <john@example.com>",
		" user@example.com",
		"us er@example.com",
	}
	for _, email := range invalid {
		assert.False(t, check(validator.ValidEmail("email", email)), "expected invalid: %q", email)
	}

	assert.ErrorIs(t, validator.ValidEmail("email", "").Error, validator.ErrInvalidFormat)
}

func TestMatchesRegex(t *testing.T) {
	t.Parallel()

	re := regexp.MustCompile(`^[a-z]+$`)
	assert.True(t, check(validator.MatchesRegex("slug", "abc", re, "lowercase letters")))
	r := validator.MatchesRegex("slug", "ab1", re, "lowercase letters")
	assert.False(t, check(r))
	assert.Equal(t, "must match lowercase letters", r.Error.Message)
}

func TestPasswordRules(t *testing.T) {
	t.Parallel()

	assert.True(t, check(validator.PasswordUppercase("p", "aB")))
	assert.False(t, check(validator.PasswordUppercase("p", "ab1")))
	assert.True(t, check(validator.PasswordLowercase("p", "Ab")))
	assert.False(t, check(validator.PasswordLowercase("p", "AB1")))
	assert.True(t, check(validator.PasswordDigit("p", "a1")))
	assert.False(t, check(validator.PasswordDigit("p", "Ab")))

	for _, r := range []validator.Rule{
		validator.PasswordUppercase("p", ""),
		validator.PasswordLowercase("p", ""),
		validator.PasswordDigit("p", ""),
	} {
		assert.ErrorIs(t, r.Error, validator.ErrPasswordComplexity)
		assert.ErrorIs(t, r.Error, validator.ErrInvalidFormat)
	}
}

func TestChoiceRules(t *testing.T) {
	t.Parallel()

	allowed := []string{"Law", "Science"}
	assert.True(t, check(validator.InListString("category", "Law", allowed)))
	r := validator.InListString("category", "law", allowed)
	assert.False(t, check(r))
	assert.Equal(t, "must be one of: Law, Science", r.Error.Message)
	assert.ErrorIs(t, r.Error, validator.ErrInvalidValue)

	assert.True(t, check(validator.InList("n", 2, []int{1, 2, 3})))
	assert.False(t, check(validator.InList("n", 4, []int{1, 2, 3})))
}

func TestComparableRules(t *testing.T) {
	t.Parallel()

	assert.True(t, check(validator.RequiredComparable("id", 1)))
	assert.False(t, check(validator.RequiredComparable("id", 0)))

	assert.True(t, check(validator.EqualTo("confirm", "Abcdefg1", "password", "Abcdefg1")))
	r := validator.EqualTo("confirm", "Abcdefg2", "password", "Abcdefg1")
	assert.False(t, check(r))
	assert.ErrorIs(t, r.Error, validator.ErrMismatch)
	assert.Equal(t, "confirm", r.Error.Field)
}

func TestNumericRules(t *testing.T) {
	t.Parallel()

	t.Run("ParseNumber", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			in   string
			want float64
			ok   bool
		}{
			{"0", 0, true},
			{"49.99", 49.99, true},
			{" 12 ", 12, true},
			{"-5", -5, true},
			{"1e3", 1000, true},
			{"", 0, false},
			{"abc", 0, false},
			{"12abc", 0, false},
			{"NaN", 0, false},
			{"Inf", 0, false},
			{"-Infinity", 0, false},
		}
		for _, tt := range tests {
			got, ok := validator.ParseNumber(tt.in)
			assert.Equal(t, tt.ok, ok, "input %q", tt.in)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 1e-9, "input %q", tt.in)
			}
		}
	})

	t.Run("Number", func(t *testing.T) {
		t.Parallel()
		assert.True(t, check(validator.Number("price", "10")))
		assert.False(t, check(validator.Number("price", "ten")))
		assert.ErrorIs(t, validator.Number("price", "").Error, validator.ErrNotANumber)
	})

	t.Run("WholeNumber", func(t *testing.T) {
		t.Parallel()
		assert.True(t, check(validator.WholeNumber("pages", "320")))
		assert.False(t, check(validator.WholeNumber("pages", "1.5")))
		assert.False(t, check(validator.WholeNumber("pages", "x")))
	})

	t.Run("string bounds are inclusive", func(t *testing.T) {
		t.Parallel()
		assert.True(t, check(validator.MinNumString("price", "0", 0)))
		assert.False(t, check(validator.MinNumString("price", "-0.01", 0)))
		assert.True(t, check(validator.MaxNumString("price", "10000", 10000)))
		assert.False(t, check(validator.MaxNumString("price", "10001", 10000)))
		assert.False(t, check(validator.MaxNumString("price", "abc", 10000)))
		assert.ErrorIs(t, validator.MaxNumString("price", "10001", 10000).Error, validator.ErrOutOfRange)
	})

	t.Run("generic bounds", func(t *testing.T) {
		t.Parallel()
		assert.True(t, check(validator.MinNum("age", 18, 18)))
		assert.False(t, check(validator.MinNum("age", 17, 18)))
		assert.True(t, check(validator.MaxNum("rating", 5.0, 5.0)))
		assert.False(t, check(validator.MaxNum("rating", 5.1, 5.0)))
	})
}
