package forms

import (
	"strings"

	"github.com/dmitrymomot/studyshelf/pkg/validator"
)

// LoginInput is the raw login form.
type LoginInput struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// Credentials is a validated login form. The email is trimmed; the password
// is kept verbatim.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"-"`
}

// ValidateLogin validates a login form.
func ValidateLogin(in LoginInput) (Credentials, error) {
	email := strings.TrimSpace(in.Email)

	err := validator.Validate(
		emailField(email),
		validator.Field(FieldPassword, passwordLengthRules(in.Password)...),
	)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{Email: email, Password: in.Password}, nil
}

// emailField expects an already trimmed value.
func emailField(email string) validator.FieldRules {
	return validator.Field(FieldEmail,
		validator.Required(FieldEmail, email).WithMessage("Email is required"),
		validator.ValidEmail(FieldEmail, email).WithMessage("Please enter a valid email address"),
		validator.MaxLen(FieldEmail, email, EmailMaxLength).WithMessage("Email must be less than 255 characters"),
	)
}

func passwordLengthRules(password string) []validator.Rule {
	return []validator.Rule{
		validator.NotEmpty(FieldPassword, password).WithMessage("Password is required"),
		validator.MinLen(FieldPassword, password, PasswordMinLength).WithMessage("Password must be at least 8 characters"),
		validator.MaxLen(FieldPassword, password, PasswordMaxLength).WithMessage("Password must be less than 128 characters"),
	}
}
