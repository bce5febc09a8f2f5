package forms

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/studyshelf/pkg/validator"
)

var nameRegex = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)

// SignupInput is the raw signup form.
type SignupInput struct {
	Name            string `json:"name" form:"name"`
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword"`
}

// SignupRequest is a validated signup form.
type SignupRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"-"`
	ConfirmPassword string `json:"-"`
}

// ValidateSignup validates a signup form. Password complexity rules run
// uppercase, lowercase, digit; only the first missing class is reported.
// A confirmation that differs from the password is reported on
// confirmPassword even when the password itself is invalid.
func ValidateSignup(in SignupInput) (SignupRequest, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)

	password := validator.Field(FieldPassword, passwordLengthRules(in.Password)...).Then(
		validator.PasswordUppercase(FieldPassword, in.Password).WithMessage("Password must contain at least one uppercase letter"),
		validator.PasswordLowercase(FieldPassword, in.Password).WithMessage("Password must contain at least one lowercase letter"),
		validator.PasswordDigit(FieldPassword, in.Password).WithMessage("Password must contain at least one number"),
	)

	err := validator.Validate(
		validator.Field(FieldName,
			validator.Required(FieldName, name).WithMessage("Name is required"),
			validator.MinLen(FieldName, name, NameMinLength).WithMessage("Name must be at least 2 characters"),
			validator.MaxLen(FieldName, name, NameMaxLength).WithMessage("Name must be less than 100 characters"),
			validator.MatchesRegex(FieldName, name, nameRegex, "letters, spaces, hyphens and apostrophes").
				WithMessage("Name can only contain letters, spaces, hyphens and apostrophes"),
		),
		emailField(email),
		password,
		validator.Field(FieldConfirmPassword,
			validator.NotEmpty(FieldConfirmPassword, in.ConfirmPassword).WithMessage("Please confirm your password"),
			validator.EqualTo(FieldConfirmPassword, in.ConfirmPassword, FieldPassword, in.Password).
				WithMessage("Passwords don't match"),
		),
	)
	if err != nil {
		return SignupRequest{}, err
	}

	return SignupRequest{
		Name:            name,
		Email:           email,
		Password:        in.Password,
		ConfirmPassword: in.ConfirmPassword,
	}, nil
}
