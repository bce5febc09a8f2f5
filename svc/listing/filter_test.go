package listing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/studyshelf/svc/listing"
)

func defaultListings(t *testing.T) []listing.Listing {
	t.Helper()
	listings, err := listing.DefaultCatalog().List(context.Background())
	require.NoError(t, err)
	return listings
}

func ids(listings []listing.Listing) []string {
	out := make([]string, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.ID)
	}
	return out
}

func TestFilter_Apply(t *testing.T) {
	t.Parallel()

	listings := defaultListings(t)

	tests := []struct {
		name   string
		filter func(f *listing.Filter)
		want   []string
	}{
		{
			name:   "default filter keeps everything in order",
			filter: func(*listing.Filter) {},
			want:   []string{"1", "2", "3", "4", "5", "6", "7", "8"},
		},
		{
			name:   "query matches title case-insensitively",
			filter: func(f *listing.Filter) { f.Query = "data" },
			want:   []string{"1"},
		},
		{
			name:   "query matches author",
			filter: func(f *listing.Filter) { f.Query = "andrew ng" },
			want:   []string{"4"},
		},
		{
			name:   "category narrows results",
			filter: func(f *listing.Filter) { f.Category = "Law" },
			want:   []string{"7"},
		},
		{
			name:   "category match is exact",
			filter: func(f *listing.Filter) { f.Category = "law" },
			want:   []string{},
		},
		{
			name: "price range is inclusive",
			filter: func(f *listing.Filter) {
				f.MinPrice = 79
				f.MaxPrice = 99
			},
			want: []string{"1", "4", "7"},
		},
		{
			name: "all predicates combine",
			filter: func(f *listing.Filter) {
				f.Query = "notes"
				f.Category = "Engineering"
				f.MaxPrice = 80
			},
			want: []string{"4"},
		},
		{
			name:   "no match yields empty slice",
			filter: func(f *listing.Filter) { f.Query = "quantum" },
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := listing.DefaultFilter()
			tt.filter(&f)

			got := f.Apply(listings)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilter_ApplyEmptyInput(t *testing.T) {
	t.Parallel()

	got := listing.DefaultFilter().Apply(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFeatured(t *testing.T) {
	t.Parallel()

	listings := defaultListings(t)

	t.Run("highest rated first with stable ties", func(t *testing.T) {
		t.Parallel()
		got := listing.Featured(listings, 4)
		assert.Equal(t, []string{"3", "8", "1", "6"}, ids(got))
	})

	t.Run("limit above size returns all", func(t *testing.T) {
		t.Parallel()
		assert.Len(t, listing.Featured(listings, 20), len(listings))
	})

	t.Run("non-positive limit returns empty", func(t *testing.T) {
		t.Parallel()
		got := listing.Featured(listings, 0)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("input order is untouched", func(t *testing.T) {
		t.Parallel()
		in := defaultListings(t)
		listing.Featured(in, 3)
		assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "8"}, ids(in))
	})
}

func TestCategoryCounts(t *testing.T) {
	t.Parallel()

	counts := listing.CategoryCounts(defaultListings(t))
	assert.Equal(t, map[string]int{
		"Engineering": 3,
		"Science":     1,
		"Competitive": 1,
		"Business":    1,
		"Medical":     1,
		"Law":         1,
	}, counts)
}
