package file

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// Common sizes.
const (
	KB int64 = 1 << 10
	MB int64 = 1 << 20
)

// Constraint bounds the size and type of an uploaded file.
type Constraint struct {
	// Required makes a nil Ref a violation; otherwise nil passes.
	Required bool
	// MaxBytes is the inclusive size limit. Zero disables the check.
	MaxBytes int64
	// AllowedTypes lists exact media types. Empty allows any type.
	AllowedTypes []string

	// Optional human-readable messages; defaults are derived when empty.
	MissingMessage     string
	TooLargeMessage    string
	UnsupportedMessage string
}

// ConstraintError describes a violated Constraint. It unwraps to
// ErrMissingFile, ErrFileTooLarge or ErrUnsupportedType.
type ConstraintError struct {
	Kind    error
	Message string
}

func (e *ConstraintError) Error() string { return e.Message }
func (e *ConstraintError) Unwrap() error { return e.Kind }

// Check validates ref against the constraint. Checks run in order:
// presence, size, type; the first violation is returned.
// A nil ref, including a typed nil such as (*Header)(nil), counts as absent.
func (c Constraint) Check(ref Ref) error {
	if isAbsent(ref) {
		if c.Required {
			return &ConstraintError{Kind: ErrMissingFile, Message: or(c.MissingMessage, "file is required")}
		}
		return nil
	}

	if c.MaxBytes > 0 && ref.Size() > c.MaxBytes {
		return &ConstraintError{
			Kind:    ErrFileTooLarge,
			Message: or(c.TooLargeMessage, fmt.Sprintf("file must be at most %d bytes", c.MaxBytes)),
		}
	}

	if len(c.AllowedTypes) > 0 && !slices.Contains(c.AllowedTypes, ref.MIMEType()) {
		return &ConstraintError{
			Kind:    ErrUnsupportedType,
			Message: or(c.UnsupportedMessage, "file type must be one of: "+strings.Join(c.AllowedTypes, ", ")),
		}
	}

	return nil
}

func isAbsent(ref Ref) bool {
	if ref == nil {
		return true
	}
	v := reflect.ValueOf(ref)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

func or(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
