package sanitizer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower lowercases s using Unicode default casing rules, independent of
// any language tailoring. A fresh Caser is created per call because
// cases.Caser keeps internal state.
func ToLower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Lowerer returns a ToLower equivalent that reuses one Caser across calls.
// The returned func is not safe for concurrent use.
func Lowerer() func(string) string {
	c := cases.Lower(language.Und)
	return c.String
}

// MaxLength truncates a string to at most maxLen characters (code points).
func MaxLength(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	// Fast path: byte length bounds the rune count.
	if len(s) <= maxLen {
		return s
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	return string(runes[:maxLen])
}

// RemoveChars removes every occurrence of each character in chars.
func RemoveChars(s string, chars string) string {
	if chars == "" {
		return s
	}
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(chars, r) {
			return -1
		}
		return r
	}, s)
}

// RemoveNullBytes removes NUL characters.
func RemoveNullBytes(s string) string {
	return strings.ReplaceAll(s, "\x00", "")
}
