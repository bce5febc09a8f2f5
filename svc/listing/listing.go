package listing

import "time"

// CategoryAll is the browse wildcard that matches every category.
const CategoryAll = "All"

// Listing is a study material offered on the storefront.
// Price is in whole rupees. Rating is on a 0 to 5 scale.
type Listing struct {
	ID         string  `json:"id" yaml:"id"`
	Title      string  `json:"title" yaml:"title"`
	Author     string  `json:"author" yaml:"author"`
	Price      int     `json:"price" yaml:"price"`
	Category   string  `json:"category" yaml:"category"`
	Rating     float64 `json:"rating" yaml:"rating"`
	CoverImage string  `json:"coverImage" yaml:"cover_image"`
	SellerName string  `json:"sellerName" yaml:"seller_name"`

	// Detail page fields, zero when the catalog does not carry them.
	Reviews     int        `json:"reviews,omitempty" yaml:"reviews,omitempty"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Pages       int        `json:"pages,omitempty" yaml:"pages,omitempty"`
	Format      string     `json:"format,omitempty" yaml:"format,omitempty"`
	UploadedAt  *time.Time `json:"uploadedAt,omitempty" yaml:"uploaded_at,omitempty"`
}

func (l Listing) clone() Listing {
	if l.UploadedAt != nil {
		t := *l.UploadedAt
		l.UploadedAt = &t
	}
	return l
}

func cloneAll(listings []Listing) []Listing {
	out := make([]Listing, len(listings))
	for i, l := range listings {
		out[i] = l.clone()
	}
	return out
}
