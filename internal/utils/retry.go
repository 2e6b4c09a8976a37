package utils

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

// Retry calls fn up to attempts times. Attempt i (i > 0) is issued after
// waiting base * 2^i, so base 500ms yields the 1s, 2s, 4s... sequence.
//
// An error for which retryable returns false is returned at once. When every
// attempt fails, the last error of fn is returned. When ctx ends before or
// between attempts, ctx.Err() is returned.
func Retry(ctx context.Context, attempts int, base time.Duration, retryable func(error) bool, fn func(ctx context.Context) error) error {
	if attempts < 1 {
		attempts = 1
	}

	var backoff retry.Backoff
	if base > 0 {
		backoff = retry.NewExponential(2 * base)
	} else {
		backoff = retry.BackoffFunc(func() (time.Duration, bool) { return 0, false })
	}
	backoff = retry.WithMaxRetries(uint64(attempts-1), backoff)

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil || !retryable(err) {
			return err
		}
		return retry.RetryableError(err)
	})
}

// Always reports every error as retryable.
func Always(error) bool { return true }
