package validator

import "regexp"

var (
	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex = regexp.MustCompile(`[a-z]`)
	digitRegex     = regexp.MustCompile(`[0-9]`)
)

func PasswordUppercase(field, value string) Rule {
	return passwordClassRule(field, value, uppercaseRegex,
		"must contain at least one uppercase letter", "validation.password_uppercase")
}

func PasswordLowercase(field, value string) Rule {
	return passwordClassRule(field, value, lowercaseRegex,
		"must contain at least one lowercase letter", "validation.password_lowercase")
}

func PasswordDigit(field, value string) Rule {
	return passwordClassRule(field, value, digitRegex,
		"must contain at least one number", "validation.password_digit")
}

func passwordClassRule(field, value string, re *regexp.Regexp, msg, key string) Rule {
	return Rule{
		Check: func() bool {
			return re.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        msg,
			TranslationKey: key,
			TranslationValues: map[string]any{
				"field": field,
			},
			Cause: ErrPasswordComplexity,
		},
	}
}
