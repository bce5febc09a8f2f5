package validator

import (
	"net/mail"
	"regexp"
	"strings"
)

// ValidEmail validates that a string is a plain addr-spec email address
// (local@domain.tld). Display-name forms accepted by net/mail are rejected.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" || strings.ContainsAny(value, " \t\r\n") {
				return false
			}

			addr, err := mail.ParseAddress(value)
			if err != nil || addr.Address != value {
				return false
			}

			localPart, domain, ok := strings.Cut(addr.Address, "@")
			if !ok || localPart == "" {
				return false
			}

			// Domain must contain at least one dot and cannot start/end with dot
			if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
				return false
			}

			for part := range strings.SplitSeq(domain, ".") {
				if part == "" {
					return false
				}
			}

			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
			Cause: ErrInvalidFormat,
		},
	}
}

// MatchesRegex validates that the whole value matches re.
// The expression must be anchored by the caller when a full match is required.
func MatchesRegex(field, value string, re *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			return re.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must match " + description,
			TranslationKey: "validation.pattern",
			TranslationValues: map[string]any{
				"field":       field,
				"description": description,
			},
			Cause: ErrInvalidFormat,
		},
	}
}
