package validator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MinNum validates that a numeric value is greater than or equal to the minimum.
func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %v", min),
			TranslationKey: "validation.min",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
			Cause: ErrOutOfRange,
		},
	}
}

// MaxNum validates that a numeric value is less than or equal to the maximum.
func MaxNum[T Numeric](field string, value T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %v", max),
			TranslationKey: "validation.max",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
			Cause: ErrOutOfRange,
		},
	}
}

// ParseNumber parses a decimal number from form input. Surrounding
// whitespace is ignored; NaN and infinities are rejected.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// Number validates that a string holds a finite decimal number.
func Number(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, ok := ParseNumber(value)
			return ok
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a number",
			TranslationKey: "validation.number",
			TranslationValues: map[string]any{
				"field": field,
			},
			Cause: ErrNotANumber,
		},
	}
}

// WholeNumber validates that a numeric string has no fractional part.
// Unparseable input fails as well; chain it after Number for precise messages.
func WholeNumber(field, value string) Rule {
	return Rule{
		Check: func() bool {
			n, ok := ParseNumber(value)
			return ok && n == math.Trunc(n)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a whole number",
			TranslationKey: "validation.whole_number",
			TranslationValues: map[string]any{
				"field": field,
			},
			Cause: ErrNotANumber,
		},
	}
}

// MinNumString validates a numeric string against an inclusive lower bound.
// Unparseable input fails; chain it after Number.
func MinNumString(field, value string, min float64) Rule {
	n, ok := ParseNumber(value)
	r := MinNum(field, n, min)
	check := r.Check
	r.Check = func() bool { return ok && check() }
	return r
}

// MaxNumString validates a numeric string against an inclusive upper bound.
// Unparseable input fails; chain it after Number.
func MaxNumString(field, value string, max float64) Rule {
	n, ok := ParseNumber(value)
	r := MaxNum(field, n, max)
	check := r.Check
	r.Check = func() bool { return ok && check() }
	return r
}
