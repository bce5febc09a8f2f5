package validator

import (
	"errors"
	"fmt"
)

// Failure classes attached to ValidationError.Cause.
var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrFieldRequired is returned when a required field is empty.
	ErrFieldRequired = errors.New("field is required")

	// ErrTooShort is returned when a field is below its minimum length.
	ErrTooShort = errors.New("value too short")

	// ErrTooLong is returned when a field exceeds its maximum length.
	ErrTooLong = errors.New("value too long")

	// ErrInvalidValue is returned when a field has a value outside an allowed set.
	ErrInvalidValue = errors.New("invalid value")

	// ErrOutOfRange is returned when a numeric value is out of the allowed range.
	ErrOutOfRange = errors.New("value out of range")

	// ErrNotANumber is returned when a numeric field cannot be parsed.
	ErrNotANumber = errors.New("not a number")

	// ErrInvalidFormat is returned when a field has an invalid format.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrPasswordComplexity is returned when a password misses a required character class.
	ErrPasswordComplexity = fmt.Errorf("%w: password complexity", ErrInvalidFormat)

	// ErrMismatch is returned when a field must equal another field and does not.
	ErrMismatch = errors.New("values do not match")
)
