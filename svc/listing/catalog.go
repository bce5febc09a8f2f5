package listing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Source supplies the listing collection.
type Source interface {
	List(ctx context.Context) ([]Listing, error)
}

// StaticCatalog is an immutable in-memory Source.
type StaticCatalog struct {
	listings []Listing
}

// NewStaticCatalog returns a Source holding a deep copy of the given listings.
func NewStaticCatalog(listings ...Listing) *StaticCatalog {
	return &StaticCatalog{listings: cloneAll(listings)}
}

// List returns a copy of the catalog so callers cannot mutate it.
func (c *StaticCatalog) List(ctx context.Context) ([]Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrFailedToLoadCatalog, err)
	}
	return cloneAll(c.listings), nil
}

// DefaultCatalog returns the built-in browse catalog.
func DefaultCatalog() *StaticCatalog {
	uploaded := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	return NewStaticCatalog(
		Listing{
			ID:          "1",
			Title:       "Data Structures and Algorithms Made Easy",
			Author:      "Narasimha Karumanchi",
			Price:       99,
			Category:    "Engineering",
			Rating:      4.8,
			CoverImage:  "https://images.unsplash.com/photo-1544716278-ca5e3f4abd8c?w=400&h=600&fit=crop",
			SellerName:  "Rahul K.",
			Reviews:     234,
			Description: "Complete notes covering all important data structures including Arrays, Linked Lists, Trees, Graphs, and advanced algorithms. Perfect for placement preparation and competitive programming. Includes solved examples and practice problems from top companies.",
			Pages:       320,
			Format:      "PDF",
			UploadedAt:  &uploaded,
		},
		Listing{
			ID:         "2",
			Title:      "Organic Chemistry Notes - Complete Semester",
			Author:     "Dr. Sharma",
			Price:      49,
			Category:   "Science",
			Rating:     4.5,
			CoverImage: "https://images.unsplash.com/photo-1532012197267-da84d127e765?w=400&h=600&fit=crop",
			SellerName: "Priya M.",
		},
		Listing{
			ID:         "3",
			Title:      "UPSC Prelims Complete Guide 2024",
			Author:     "Various",
			Price:      149,
			Category:   "Competitive",
			Rating:     4.9,
			CoverImage: "https://images.unsplash.com/photo-1497633762265-9d179a990aa6?w=400&h=600&fit=crop",
			SellerName: "Amit S.",
		},
		Listing{
			ID:         "4",
			Title:      "Machine Learning Fundamentals",
			Author:     "Andrew Ng Notes",
			Price:      79,
			Category:   "Engineering",
			Rating:     4.7,
			CoverImage: "https://images.unsplash.com/photo-1589998059171-988d887df646?w=400&h=600&fit=crop",
			SellerName: "Sneha R.",
		},
		Listing{
			ID:         "5",
			Title:      "Economics for CUET - Complete Notes",
			Author:     "Prof. Gupta",
			Price:      59,
			Category:   "Business",
			Rating:     4.6,
			CoverImage: "https://images.unsplash.com/photo-1456513080510-7bf3a84b82f8?w=400&h=600&fit=crop",
			SellerName: "Vikram T.",
		},
		Listing{
			ID:         "6",
			Title:      "Anatomy & Physiology Handbook",
			Author:     "Dr. Reddy",
			Price:      129,
			Category:   "Medical",
			Rating:     4.8,
			CoverImage: "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=400&h=600&fit=crop",
			SellerName: "Kavya N.",
		},
		Listing{
			ID:         "7",
			Title:      "Constitutional Law Notes - LLB",
			Author:     "Adv. Singh",
			Price:      89,
			Category:   "Law",
			Rating:     4.4,
			CoverImage: "https://images.unsplash.com/photo-1524995997946-a1c2e315a42f?w=400&h=600&fit=crop",
			SellerName: "Arjun P.",
		},
		Listing{
			ID:         "8",
			Title:      "JEE Advanced Physics Solutions",
			Author:     "IIT Faculty",
			Price:      119,
			Category:   "Engineering",
			Rating:     4.9,
			CoverImage: "https://images.unsplash.com/photo-1544947950-fa07a98d237f?w=400&h=600&fit=crop",
			SellerName: "Deepak R.",
		},
	)
}

type catalogDocument struct {
	Listings []Listing `yaml:"listings"`
}

// LoadCatalog decodes a YAML catalog document and validates every entry.
//
//	listings:
//	  - id: "1"
//	    title: Data Structures and Algorithms Made Easy
//	    author: Narasimha Karumanchi
//	    price: 99
//	    category: Engineering
//	    rating: 4.8
func LoadCatalog(r io.Reader) (*StaticCatalog, error) {
	var doc catalogDocument

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidCatalog)
		}
		return nil, errors.Join(ErrFailedToReadCatalog, err)
	}

	if err := validateCatalog(doc.Listings); err != nil {
		return nil, err
	}

	return NewStaticCatalog(doc.Listings...), nil
}

// LoadCatalogFile opens path and decodes it with LoadCatalog.
func LoadCatalogFile(path string) (*StaticCatalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadCatalog, err)
	}
	defer func() { _ = f.Close() }()

	return LoadCatalog(f)
}

func validateCatalog(listings []Listing) error {
	if len(listings) == 0 {
		return fmt.Errorf("%w: no listings", ErrInvalidCatalog)
	}

	var errs []error
	seen := make(map[string]int, len(listings))

	for i, l := range listings {
		id := strings.TrimSpace(l.ID)
		switch {
		case id == "":
			errs = append(errs, fmt.Errorf("%w: entry %d: id is required", ErrInvalidCatalog, i))
		default:
			if prev, dup := seen[id]; dup {
				errs = append(errs, fmt.Errorf("%w: entry %d: duplicate id %q (first at entry %d)", ErrInvalidCatalog, i, id, prev))
			} else {
				seen[id] = i
			}
		}
		if strings.TrimSpace(l.Title) == "" {
			errs = append(errs, fmt.Errorf("%w: entry %d: title is required", ErrInvalidCatalog, i))
		}
		if l.Rating < 0 || l.Rating > 5 {
			errs = append(errs, fmt.Errorf("%w: entry %d: rating %.1f out of range 0-5", ErrInvalidCatalog, i, l.Rating))
		}
		if l.Price < 0 {
			errs = append(errs, fmt.Errorf("%w: entry %d: negative price", ErrInvalidCatalog, i))
		}
	}

	return errors.Join(errs...)
}
