package listing_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/studyshelf/pkg/file"
	"github.com/dmitrymomot/studyshelf/pkg/logger"
	"github.com/dmitrymomot/studyshelf/pkg/validator"
	"github.com/dmitrymomot/studyshelf/svc/forms"
	"github.com/dmitrymomot/studyshelf/svc/listing"
)

var fixedNow = time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)

func newService(t *testing.T, cfg listing.Config, opts ...listing.ServiceOption) (*listing.Service, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithJSONFormatter(),
		logger.WithLevel(slog.LevelDebug),
	)
	opts = append([]listing.ServiceOption{
		listing.WithLogger(log),
		listing.WithClock(func() time.Time { return fixedNow }),
	}, opts...)

	return listing.NewService(cfg, listing.DefaultCatalog(), opts...), &buf
}

func validUpload() forms.ListingInput {
	return forms.ListingInput{
		Title:       "Thermodynamics Notes",
		Author:      "Dr. Iyer",
		Category:    "Engineering",
		Price:       "59",
		Description: "Laws of thermodynamics with worked problems.",
		Pages:       "88",
	}
}

func pdfRef() file.Ref {
	return file.Info{Name: "notes.pdf", SizeBytes: 2 * file.MB, ContentType: "application/pdf"}
}

type failingSource struct{ err error }

func (f failingSource) List(context.Context) ([]listing.Listing, error) { return nil, f.err }

func TestNewService_NilSourcePanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { listing.NewService(listing.Config{}, nil) })
}

func TestService_Search(t *testing.T) {
	t.Parallel()

	svc, _ := newService(t, listing.Config{})

	t.Run("query is sanitized before matching", func(t *testing.T) {
		t.Parallel()
		f := listing.DefaultFilter()
		f.Query = "   <DATA>  "
		got, err := svc.Search(context.Background(), f)
		require.NoError(t, err)
		assert.Equal(t, []string{"1"}, ids(got))
	})

	t.Run("empty query with category", func(t *testing.T) {
		t.Parallel()
		f := listing.DefaultFilter()
		f.Category = "Law"
		got, err := svc.Search(context.Background(), f)
		require.NoError(t, err)
		assert.Equal(t, []string{"7"}, ids(got))
	})

	t.Run("source errors propagate", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		failing := listing.NewService(listing.Config{}, failingSource{err: boom})
		_, err := failing.Search(context.Background(), listing.DefaultFilter())
		assert.ErrorIs(t, err, boom)
	})
}

func TestService_Get(t *testing.T) {
	t.Parallel()

	svc, logs := newService(t, listing.Config{})

	l, err := svc.Get(context.Background(), "6")
	require.NoError(t, err)
	assert.Equal(t, "Anatomy & Physiology Handbook", l.Title)
	assert.NotContains(t, logs.String(), "listing not found")

	_, err = svc.Get(context.Background(), "999")
	assert.ErrorIs(t, err, listing.ErrListingNotFound)
	assert.Contains(t, logs.String(), `"msg":"listing not found"`)
	assert.Contains(t, logs.String(), `"listing_id":"999"`)
}

func TestService_FeaturedAndCategories(t *testing.T) {
	t.Parallel()

	svc, _ := newService(t, listing.Config{})

	featured, err := svc.Featured(context.Background(), listing.DefaultFeaturedLimit)
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "8", "1", "6"}, ids(featured))

	summary, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, forms.Categories(), summary.Categories)
	assert.Equal(t, 3, summary.Counts["Engineering"])
}

func TestService_Submit(t *testing.T) {
	t.Parallel()

	t.Run("accepted upload returns receipt", func(t *testing.T) {
		t.Parallel()
		svc, buf := newService(t, listing.Config{})

		receipt, err := svc.Submit(context.Background(), validUpload(), pdfRef(), nil)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, receipt.ID)
		assert.Equal(t, listing.ReceiptStatusPending, receipt.Status)
		assert.Equal(t, "Your book has been uploaded successfully!", receipt.Message)
		assert.Equal(t, fixedNow, receipt.SubmittedAt)
		assert.Equal(t, "Thermodynamics Notes", receipt.Listing.Title)
		assert.InDelta(t, 59.0, receipt.Listing.Price, 0.001)
		assert.Equal(t, 88, receipt.Listing.Pages)

		assert.Contains(t, buf.String(), `"msg":"listing submitted"`)
		assert.Contains(t, buf.String(), receipt.ID.String())
	})

	t.Run("field and file errors are reported together", func(t *testing.T) {
		t.Parallel()
		svc, buf := newService(t, listing.Config{})

		in := validUpload()
		in.Title = "ab"
		in.Price = "free"
		badCover := file.Info{Name: "cover.bmp", SizeBytes: file.KB, ContentType: "image/bmp"}

		_, err := svc.Submit(context.Background(), in, nil, badCover)
		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.ElementsMatch(t,
			[]string{forms.FieldTitle, forms.FieldPrice, forms.FieldDocument, forms.FieldCoverImage},
			verrs.Fields(),
		)
		assert.Equal(t, "PDF file is required", verrs.Map()[forms.FieldDocument])
		assert.ErrorIs(t, err, file.ErrMissingFile)

		logged := buf.String()
		assert.Contains(t, logged, "listing submission rejected")
		assert.NotContains(t, logged, "free", "field values are never logged")
	})

	t.Run("cancelled while processing", func(t *testing.T) {
		t.Parallel()
		svc, _ := newService(t, listing.Config{ProcessingDelay: time.Minute})

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		start := time.Now()
		_, err := svc.Submit(ctx, validUpload(), pdfRef(), nil)
		assert.ErrorIs(t, err, listing.ErrSubmissionCancelled)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Less(t, time.Since(start), 5*time.Second)
	})

	t.Run("processing delay elapses", func(t *testing.T) {
		t.Parallel()
		svc, _ := newService(t, listing.Config{ProcessingDelay: 10 * time.Millisecond})

		_, err := svc.Submit(context.Background(), validUpload(), pdfRef(), nil)
		assert.NoError(t, err)
	})
}
