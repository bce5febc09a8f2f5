package forms

import (
	"math"
	"strings"

	"github.com/dmitrymomot/studyshelf/pkg/file"
	"github.com/dmitrymomot/studyshelf/pkg/validator"
)

// ListingInput is the raw upload form. Price and Pages arrive as text.
type ListingInput struct {
	Title       string `json:"title" form:"title"`
	Author      string `json:"author" form:"author"`
	Category    string `json:"category" form:"category"`
	Price       string `json:"price" form:"price"`
	Description string `json:"description" form:"description"`
	Pages       string `json:"pages" form:"pages"`
}

// ListingSubmission is a validated upload form. Pages is zero when omitted.
type ListingSubmission struct {
	Title       string  `json:"title"`
	Author      string  `json:"author,omitempty"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Pages       int     `json:"pages,omitempty"`
}

const (
	priceNotNumberMessage = "Price must be a positive number"
	pagesMessage          = "Pages must be a positive number less than 10,000"
)

// ValidateListingSubmission validates the text fields of an upload form.
// Author and pages are optional: empty values skip their checks entirely.
func ValidateListingSubmission(in ListingInput) (ListingSubmission, error) {
	err := validator.Validate(listingFields(in)...)
	if err != nil {
		return ListingSubmission{}, err
	}
	return normalizeListing(in), nil
}

// ValidateListingUpload validates the upload form together with its files.
// File violations are reported under the "pdf" and "cover" keys next to the
// text field errors.
func ValidateListingUpload(in ListingInput, document, cover file.Ref) (ListingSubmission, error) {
	var errs validator.ValidationErrors

	if verrs := validator.ExtractValidationErrors(validator.Validate(listingFields(in)...)); verrs != nil {
		errs = append(errs, verrs...)
	}
	if err := ValidateDocumentFile(document); err != nil {
		errs.Add(fileError(FieldDocument, err))
	}
	if err := ValidateImageFile(cover); err != nil {
		errs.Add(fileError(FieldCoverImage, err))
	}

	if !errs.IsEmpty() {
		return ListingSubmission{}, errs
	}
	return normalizeListing(in), nil
}

func listingFields(in ListingInput) []validator.FieldRules {
	title := strings.TrimSpace(in.Title)
	author := strings.TrimSpace(in.Author)
	description := strings.TrimSpace(in.Description)

	return []validator.FieldRules{
		validator.Field(FieldTitle,
			validator.Required(FieldTitle, title).WithMessage("Title is required"),
			validator.MinLen(FieldTitle, title, TitleMinLength).WithMessage("Title must be at least 3 characters"),
			validator.MaxLen(FieldTitle, title, TitleMaxLength).WithMessage("Title must be less than 200 characters"),
		),
		validator.OptionalField(FieldAuthor, author,
			validator.MaxLen(FieldAuthor, author, AuthorMaxLength).WithMessage("Author name must be less than 100 characters"),
		),
		validator.Field(FieldCategory,
			validator.Required(FieldCategory, in.Category).WithMessage("Please select a category"),
			validator.InListString(FieldCategory, in.Category, categories).WithMessage("Please select a valid category"),
		),
		validator.Field(FieldPrice,
			validator.Required(FieldPrice, in.Price).WithMessage("Price is required"),
			validator.Number(FieldPrice, in.Price).WithMessage(priceNotNumberMessage),
			validator.MinNumString(FieldPrice, in.Price, PriceMin).WithMessage(priceNotNumberMessage),
			validator.MaxNumString(FieldPrice, in.Price, PriceMax).WithMessage("Price cannot exceed ₹10,000"),
		),
		validator.Field(FieldDescription,
			validator.Required(FieldDescription, description).WithMessage("Description is required"),
			validator.MinLen(FieldDescription, description, DescriptionMinLength).WithMessage("Description must be at least 20 characters"),
			validator.MaxLen(FieldDescription, description, DescriptionMaxLength).WithMessage("Description must be less than 2000 characters"),
		),
		validator.OptionalField(FieldPages, in.Pages,
			validator.Number(FieldPages, in.Pages).WithMessage(pagesMessage),
			validator.WholeNumber(FieldPages, in.Pages).WithMessage(pagesMessage),
			validator.MinNumString(FieldPages, in.Pages, PagesMin).WithMessage(pagesMessage),
			validator.MaxNumString(FieldPages, in.Pages, PagesMax).WithMessage(pagesMessage),
		),
	}
}

// normalizeListing assumes in passed listingFields.
func normalizeListing(in ListingInput) ListingSubmission {
	price, _ := validator.ParseNumber(in.Price)
	var pages int
	if n, ok := validator.ParseNumber(in.Pages); ok {
		pages = int(math.Trunc(n))
	}

	return ListingSubmission{
		Title:       strings.TrimSpace(in.Title),
		Author:      strings.TrimSpace(in.Author),
		Category:    in.Category,
		Price:       price,
		Description: strings.TrimSpace(in.Description),
		Pages:       pages,
	}
}
