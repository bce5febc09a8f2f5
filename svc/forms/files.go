package forms

import (
	"github.com/dmitrymomot/studyshelf/pkg/file"
	"github.com/dmitrymomot/studyshelf/pkg/validator"
)

// DocumentConstraint applies to the uploaded study material.
var DocumentConstraint = file.Constraint{
	Required:           true,
	MaxBytes:           50 * file.MB,
	AllowedTypes:       []string{"application/pdf"},
	MissingMessage:     "PDF file is required",
	TooLargeMessage:    "PDF file must be less than 50MB",
	UnsupportedMessage: "Only PDF files are allowed",
}

// ImageConstraint applies to the optional cover image.
var ImageConstraint = file.Constraint{
	MaxBytes:           5 * file.MB,
	AllowedTypes:       []string{"image/jpeg", "image/png", "image/webp", "image/gif"},
	TooLargeMessage:    "Image must be less than 5MB",
	UnsupportedMessage: "Only JPEG, PNG, WebP, and GIF images are allowed",
}

// ValidateDocumentFile checks the uploaded document. A nil ref fails with
// file.ErrMissingFile.
func ValidateDocumentFile(ref file.Ref) error {
	return DocumentConstraint.Check(ref)
}

// ValidateImageFile checks the cover image. A nil ref is valid.
func ValidateImageFile(ref file.Ref) error {
	return ImageConstraint.Check(ref)
}

func fileError(field string, err error) validator.ValidationError {
	return validator.ValidationError{
		Field:          field,
		Message:        err.Error(),
		TranslationKey: "validation.file",
		TranslationValues: map[string]any{
			"field": field,
		},
		Cause: err,
	}
}
