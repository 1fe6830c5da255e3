// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"time"
)

// SleepWithContext waits for the duration or returns early if the context is canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Backoff sleeps for base times the attempt number, so consecutive retries
// spread out linearly. Attempt counts start at 1.
func Backoff(ctx context.Context, base time.Duration, attempt int) error {
	if attempt < 1 {
		attempt = 1
	}
	return SleepWithContext(ctx, time.Duration(attempt)*base)
}
