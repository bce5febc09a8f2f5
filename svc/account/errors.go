package account

import "errors"

// ErrRequestCancelled is returned when the caller goes away during processing.
var ErrRequestCancelled = errors.New("account request cancelled")
