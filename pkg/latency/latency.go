// Package latency simulates backend processing time without ignoring the
// caller going away.
package latency

import (
	"context"
	"time"
)

// Wait blocks for d or until ctx is done, whichever comes first.
// It returns ctx.Err() when the context ends first, including when ctx is
// already done and d is zero.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
