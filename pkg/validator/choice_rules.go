package validator

import (
	"fmt"
	"slices"
	"strings"
)

func InList[T comparable](field string, value T, allowedValues []T) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(allowedValues, value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be one of: %v", allowedValues),
			TranslationKey: "validation.in_list",
			TranslationValues: map[string]any{
				"field":          field,
				"allowed_values": allowedValues,
			},
			Cause: ErrInvalidValue,
		},
	}
}

func InListString(field, value string, allowedValues []string) Rule {
	return InList(field, value, allowedValues).
		WithMessage(fmt.Sprintf("must be one of: %s", strings.Join(allowedValues, ", ")))
}
