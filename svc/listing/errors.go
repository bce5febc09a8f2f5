package listing

import "errors"

var (
	ErrListingNotFound     = errors.New("listing not found")
	ErrInvalidCatalog      = errors.New("invalid catalog")
	ErrFailedToReadCatalog = errors.New("failed to read catalog")
	ErrFailedToLoadCatalog = errors.New("failed to load listings")

	// ErrSubmissionCancelled is returned when the caller goes away while an
	// upload is being processed.
	ErrSubmissionCancelled = errors.New("listing submission cancelled")
)
