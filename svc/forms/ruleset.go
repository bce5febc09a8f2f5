package forms

import "fmt"

// RuleSet names a group of field rules.
type RuleSet string

const (
	RuleSetLogin   RuleSet = "login"
	RuleSetSignup  RuleSet = "signup"
	RuleSetListing RuleSet = "listing"
)

// RuleSets lists every known rule set.
func RuleSets() []RuleSet {
	return []RuleSet{RuleSetLogin, RuleSetSignup, RuleSetListing}
}

// Valid reports whether r names a known rule set.
func (r RuleSet) Valid() bool {
	switch r {
	case RuleSetLogin, RuleSetSignup, RuleSetListing:
		return true
	}
	return false
}

// Validate runs the named rule set over values keyed by form field name.
// Missing keys are treated as empty input. It returns the normalized record
// (Credentials, SignupRequest or ListingSubmission) or validation errors.
// Validate panics on an unknown rule set; check Valid first when the name
// comes from outside the program.
func Validate(set RuleSet, values map[string]string) (any, error) {
	switch set {
	case RuleSetLogin:
		return result(ValidateLogin(LoginInput{
			Email:    values[FieldEmail],
			Password: values[FieldPassword],
		}))
	case RuleSetSignup:
		return result(ValidateSignup(SignupInput{
			Name:            values[FieldName],
			Email:           values[FieldEmail],
			Password:        values[FieldPassword],
			ConfirmPassword: values[FieldConfirmPassword],
		}))
	case RuleSetListing:
		return result(ValidateListingSubmission(ListingInput{
			Title:       values[FieldTitle],
			Author:      values[FieldAuthor],
			Category:    values[FieldCategory],
			Price:       values[FieldPrice],
			Description: values[FieldDescription],
			Pages:       values[FieldPages],
		}))
	default:
		panic(fmt.Sprintf("forms: unknown rule set %q", set))
	}
}

func result[T any](v T, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}
