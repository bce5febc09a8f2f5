package validator

import "strings"

// FieldRules is an ordered rule chain for one field.
type FieldRules struct {
	Name  string
	Rules []Rule
	skip  bool
}

// Field builds an ordered rule chain for the named field.
// Rules are evaluated in order and evaluation stops at the first failure.
func Field(name string, rules ...Rule) FieldRules {
	return FieldRules{Name: name, Rules: rules}
}

// OptionalField is like Field but skips the whole chain when value is
// empty after trimming whitespace.
func OptionalField(name, value string, rules ...Rule) FieldRules {
	return FieldRules{
		Name:  name,
		Rules: rules,
		skip:  strings.TrimSpace(value) == "",
	}
}

// Then appends rules to the end of the chain.
func (f FieldRules) Then(rules ...Rule) FieldRules {
	f.Rules = append(f.Rules[:len(f.Rules):len(f.Rules)], rules...)
	return f
}

// first returns the error of the first failing rule, if any.
func (f FieldRules) first() (ValidationError, bool) {
	if f.skip {
		return ValidationError{}, false
	}
	for _, rule := range f.Rules {
		if !rule.Check() {
			verr := rule.Error
			if verr.Field == "" {
				verr.Field = f.Name
			}
			return verr, true
		}
	}
	return ValidationError{}, false
}

// Validate evaluates every field chain independently. Each failing field
// contributes exactly one error: the first failing rule of its chain.
// Errors are reported in field order.
//
//	err := validator.Validate(
//	    validator.Field("email",
//	        validator.Required("email", email),
//	        validator.ValidEmail("email", email),
//	        validator.MaxLen("email", email, 255),
//	    ),
//	    validator.Field("password",
//	        validator.Required("password", password),
//	        validator.MinLen("password", password, 8),
//	    ),
//	)
func Validate(fields ...FieldRules) error {
	var errs ValidationErrors

	for _, f := range fields {
		if verr, failed := f.first(); failed {
			errs = append(errs, verr)
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}
