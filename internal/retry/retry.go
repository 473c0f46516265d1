// ABOUTME: Exponential backoff retry wrapper for remote persistence calls.
// ABOUTME: Retries rate-limited errors only; everything else propagates immediately.
package retry

import (
	"context"
	"errors"
	"time"

	"github.com/harperreed/stride/internal/remote"
)

// Options controls retry behavior. Delay before retry n (0-indexed) is
// BaseDelay * 2^n. No jitter.
type Options struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

// DefaultOptions matches the store's documented rate-limit window.
func DefaultOptions() Options {
	return Options{MaxAttempts: 3, BaseDelay: time.Second}
}

// Do runs op up to MaxAttempts times. Only rate-limited errors are
// retried; after the attempts are exhausted the last error is returned
// unmasked. Context cancellation interrupts the backoff wait.
func Do[T any](ctx context.Context, opts Options, op func(context.Context) (T, error)) (T, error) {
	var result T
	var err error

	if opts.MaxAttempts < 1 {
		opts.MaxAttempts = 1
	}

	for attempt := 0; attempt < opts.MaxAttempts; attempt++ {
		if attempt > 0 {
			delay := opts.BaseDelay << (attempt - 1)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return result, ctx.Err()
			}
		}

		result, err = op(ctx)
		if err == nil {
			return result, nil
		}

		var rateLimited *remote.RateLimitedError
		if !errors.As(err, &rateLimited) {
			return result, err
		}
	}

	return result, err
}

// Run is Do for operations that return only an error.
func Run(ctx context.Context, opts Options, op func(context.Context) error) error {
	_, err := Do(ctx, opts, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	})
	return err
}
