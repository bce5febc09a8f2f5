package forms

import "slices"

// Field keys used in error maps. They match the form input names.
const (
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldName            = "name"
	FieldConfirmPassword = "confirmPassword"
	FieldTitle           = "title"
	FieldAuthor          = "author"
	FieldCategory        = "category"
	FieldPrice           = "price"
	FieldDescription     = "description"
	FieldPages           = "pages"
	FieldDocument        = "pdf"
	FieldCoverImage      = "cover"
)

// Field bounds.
const (
	EmailMaxLength       = 255
	PasswordMinLength    = 8
	PasswordMaxLength    = 128
	NameMinLength        = 2
	NameMaxLength        = 100
	TitleMinLength       = 3
	TitleMaxLength       = 200
	AuthorMaxLength      = 100
	DescriptionMinLength = 20
	DescriptionMaxLength = 2000
	PriceMin             = 0
	PriceMax             = 10000
	PagesMin             = 1
	PagesMax             = 10000
)

var categories = []string{
	"Engineering",
	"Science",
	"Medical",
	"Law",
	"Business",
	"Arts",
	"Competitive Exams",
	"Other",
}

// Categories returns the fixed set of categories a listing can be uploaded under.
func Categories() []string {
	return slices.Clone(categories)
}

// IsCategory reports whether name is one of Categories (case-sensitive).
func IsCategory(name string) bool {
	return slices.Contains(categories, name)
}
