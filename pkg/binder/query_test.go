package binder_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/studyshelf/pkg/binder"
)

func TestQuery(t *testing.T) {
	t.Parallel()

	type searchRequest struct {
		Query    string   `query:"q"`
		Category string   `query:"category"`
		MinPrice *int     `query:"min_price"`
		MaxPrice *int     `query:"max_price"`
		Limit    int      `query:"limit"`
		Tags     []string `query:"tags"`
		Internal string   `query:"-"`
	}

	t.Run("binds tagged parameters", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/listings?q=Data&category=Law&min_price=10&limit=3&tags=a,b&tags=c&Internal=x", nil)

		var got searchRequest
		require.NoError(t, binder.Query()(req, &got))

		assert.Equal(t, "Data", got.Query)
		assert.Equal(t, "Law", got.Category)
		require.NotNil(t, got.MinPrice)
		assert.Equal(t, 10, *got.MinPrice)
		assert.Nil(t, got.MaxPrice)
		assert.Equal(t, 3, got.Limit)
		assert.Equal(t, []string{"a", "b", "c"}, got.Tags)
		assert.Empty(t, got.Internal)
	})

	t.Run("blank values leave zero value", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/listings?min_price=&limit=", nil)

		var got searchRequest
		require.NoError(t, binder.Query()(req, &got))
		assert.Nil(t, got.MinPrice)
		assert.Zero(t, got.Limit)
	})

	t.Run("query string is kept verbatim", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/listings?q=+law+", nil)

		var got searchRequest
		require.NoError(t, binder.Query()(req, &got))
		assert.Equal(t, " law ", got.Query)
	})

	t.Run("invalid number", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/listings?min_price=cheap", nil)

		var got searchRequest
		err := binder.Query()(req, &got)
		require.Error(t, err)
		assert.ErrorIs(t, err, binder.ErrFailedToParseQuery)
		assert.Contains(t, err.Error(), "min_price")
	})

	t.Run("non-pointer target", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/listings", nil)

		var got searchRequest
		assert.ErrorIs(t, binder.Query()(req, got), binder.ErrFailedToParseQuery)
	})
}
