package listing

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/studyshelf/handler"
	"github.com/dmitrymomot/studyshelf/pkg/file"
	"github.com/dmitrymomot/studyshelf/pkg/latency"
	"github.com/dmitrymomot/studyshelf/pkg/logger"
	"github.com/dmitrymomot/studyshelf/pkg/validator"
	"github.com/dmitrymomot/studyshelf/svc/forms"
)

// DefaultFeaturedLimit is the number of listings on the home page strip.
const DefaultFeaturedLimit = 4

// Config holds listing service settings.
type Config struct {
	CatalogFile     string        `env:"CATALOG_FILE"`
	ProcessingDelay time.Duration `env:"UPLOAD_PROCESSING_DELAY" envDefault:"2s"`
	MaxMemory       int64         `env:"UPLOAD_MAX_MEMORY" envDefault:"8388608"`
	MaxUploadBody   int64         `env:"UPLOAD_MAX_BODY" envDefault:"58720256"`
}

// Receipt acknowledges an accepted upload.
type Receipt struct {
	ID          uuid.UUID               `json:"id"`
	Status      string                  `json:"status"`
	Message     string                  `json:"message"`
	Listing     forms.ListingSubmission `json:"listing"`
	SubmittedAt time.Time               `json:"submittedAt"`
}

const (
	// ReceiptStatusPending marks a submission queued for moderation.
	ReceiptStatusPending = "pending_review"

	submittedMessage = "Your book has been uploaded successfully!"
)

// CategorySummary is the category set offered to uploaders with
// the number of catalog listings in each category.
type CategorySummary struct {
	Categories []string       `json:"categories"`
	Counts     map[string]int `json:"counts"`
}

type Service struct {
	cfg    Config
	source Source
	logger *slog.Logger
	now    func() time.Time

	errorHandler handler.ErrorHandler[handler.Context]
}

type ServiceOption func(*Service)

func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithErrorHandler sets the error handler used by the HTTP routes.
func WithErrorHandler(h handler.ErrorHandler[handler.Context]) ServiceOption {
	return func(s *Service) {
		s.errorHandler = h
	}
}

// WithClock overrides the receipt timestamp source.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates a listing service backed by source.
// Panics if source is nil.
func NewService(cfg Config, source Source, opts ...ServiceOption) *Service {
	if source == nil {
		panic("listing: source is required")
	}

	s := &Service{
		cfg:    cfg,
		source: source,
		logger: slog.Default(),
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search sanitizes the raw query and returns the matching listings.
func (s *Service) Search(ctx context.Context, f Filter) ([]Listing, error) {
	listings, err := s.source.List(ctx)
	if err != nil {
		return nil, err
	}

	f.Query = forms.SanitizeSearchQuery(f.Query)
	return f.Apply(listings), nil
}

// Get returns the listing with the given ID.
func (s *Service) Get(ctx context.Context, id string) (Listing, error) {
	listings, err := s.source.List(ctx)
	if err != nil {
		return Listing{}, err
	}

	for _, l := range listings {
		if l.ID == id {
			return l, nil
		}
	}

	s.logger.DebugContext(ctx, "listing not found",
		logger.Component("listing"),
		logger.ListingID(id),
	)
	return Listing{}, ErrListingNotFound
}

// Featured returns up to limit top-rated listings.
func (s *Service) Featured(ctx context.Context, limit int) ([]Listing, error) {
	listings, err := s.source.List(ctx)
	if err != nil {
		return nil, err
	}
	return Featured(listings, limit), nil
}

// Categories returns the upload category set with catalog counts.
func (s *Service) Categories(ctx context.Context) (CategorySummary, error) {
	listings, err := s.source.List(ctx)
	if err != nil {
		return CategorySummary{}, err
	}
	return CategorySummary{
		Categories: forms.Categories(),
		Counts:     CategoryCounts(listings),
	}, nil
}

// Submit validates an upload and, once the processing delay has elapsed,
// returns a receipt. Validation failures are returned as
// validator.ValidationErrors covering fields and files together.
func (s *Service) Submit(ctx context.Context, in forms.ListingInput, document, cover file.Ref) (Receipt, error) {
	submission, err := forms.ValidateListingUpload(in, document, cover)
	if err != nil {
		if verrs := validator.ExtractValidationErrors(err); verrs != nil {
			s.logger.DebugContext(ctx, "listing submission rejected",
				logger.Component("listing"),
				logger.Fields(verrs.Fields()...),
			)
		}
		return Receipt{}, err
	}

	if err := s.process(ctx); err != nil {
		return Receipt{}, err
	}

	receipt := Receipt{
		ID:          uuid.New(),
		Status:      ReceiptStatusPending,
		Message:     submittedMessage,
		Listing:     submission,
		SubmittedAt: s.now(),
	}

	s.logger.InfoContext(ctx, "listing submitted",
		logger.Component("listing"),
		logger.ReceiptID(receipt.ID),
		logger.Category(submission.Category),
	)

	return receipt, nil
}

func (s *Service) process(ctx context.Context) error {
	if err := latency.Wait(ctx, s.cfg.ProcessingDelay); err != nil {
		return errors.Join(ErrSubmissionCancelled, err)
	}
	return nil
}
