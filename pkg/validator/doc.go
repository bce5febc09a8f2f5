// Package validator provides small, composable validation rules for form
// input: required/length checks for strings, email and pattern formats,
// numeric bounds (including numbers supplied as strings), password character
// classes, set membership and cross-field equality.
//
// Each rule is a Rule value pairing a lazy Check func with a ValidationError
// describing the failure. ValidationError carries a translation key and a
// Cause taken from the sentinel errors in errors.go, so callers can classify
// failures with errors.Is without parsing messages.
//
// # Evaluating rules
//
// Apply evaluates every rule and collects all failures.
//
// Validate evaluates ordered per-field chains built with Field or
// OptionalField. Within a chain evaluation stops at the first failing rule, so
// every invalid field reports exactly one message; different fields are always
// checked independently:
//
//	err := validator.Validate(
//	    validator.Field("email",
//	        validator.Required("email", email).WithMessage("Email is required"),
//	        validator.ValidEmail("email", email),
//	        validator.MaxLen("email", email, 255),
//	    ),
//	    validator.OptionalField("pages", pages,
//	        validator.Number("pages", pages),
//	        validator.MinNumString("pages", pages, 1),
//	    ),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    fieldErrors := verrs.Map() // field -> message
//	}
//
// # Error Handling
//
// ValidationErrors implements error and Unwrap() []error, therefore
// errors.Is(err, validator.ErrOutOfRange) reports whether any field failed
// with that class.
//
// The package keeps no state; all helpers are safe for concurrent use.
package validator
