package file

import "errors"

var (
	ErrNilFileHeader = errors.New("file header is nil")

	// Constraint violations, wrapped by ConstraintError.
	ErrMissingFile     = errors.New("file is required")
	ErrFileTooLarge    = errors.New("file size exceeds maximum allowed size")
	ErrUnsupportedType = errors.New("file type is not supported")

	ErrFailedToOpenFile       = errors.New("failed to open file")
	ErrFailedToReadFile       = errors.New("failed to read file")
	ErrFailedToDetectMIMEType = errors.New("failed to detect MIME type")
)
