// ABOUTME: Tests for the exponential backoff retry wrapper.
// ABOUTME: Verifies rate-limit-only retry, attempt limits, and backoff timing.
package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/stride/internal/remote"
)

func TestDoSucceedsFirstAttempt(t *testing.T) {
	calls := 0
	got, err := Do(context.Background(), Options{MaxAttempts: 3, BaseDelay: time.Millisecond},
		func(ctx context.Context) (int, error) {
			calls++
			return 42, nil
		})

	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, 1, calls)
}

func TestDoRetriesRateLimited(t *testing.T) {
	baseDelay := 20 * time.Millisecond
	calls := 0
	start := time.Now()

	got, err := Do(context.Background(), Options{MaxAttempts: 3, BaseDelay: baseDelay},
		func(ctx context.Context) (string, error) {
			calls++
			if calls < 3 {
				return "", &remote.RateLimitedError{Op: "upsert_reading"}
			}
			return "ok", nil
		})

	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 3, calls)

	// Backoff: baseDelay*2^0 + baseDelay*2^1 = 3*baseDelay minimum
	assert.GreaterOrEqual(t, time.Since(start), 3*baseDelay)
}

func TestDoExhaustsAttempts(t *testing.T) {
	calls := 0
	rateLimited := &remote.RateLimitedError{Op: "upsert_reading"}

	_, err := Do(context.Background(), Options{MaxAttempts: 3, BaseDelay: time.Millisecond},
		func(ctx context.Context) (int, error) {
			calls++
			return 0, rateLimited
		})

	// No fourth attempt; the last error surfaces unmasked
	assert.Equal(t, 3, calls)
	var rl *remote.RateLimitedError
	require.ErrorAs(t, err, &rl)
}

func TestDoDoesNotRetryOtherErrors(t *testing.T) {
	calls := 0
	netErr := &remote.NetworkError{Op: "upsert_reading", Err: errors.New("connection reset")}

	_, err := Do(context.Background(), Options{MaxAttempts: 3, BaseDelay: time.Millisecond},
		func(ctx context.Context) (int, error) {
			calls++
			return 0, netErr
		})

	assert.Equal(t, 1, calls)
	var ne *remote.NetworkError
	require.ErrorAs(t, err, &ne)
}

func TestDoDoesNotRetryPermissionDenied(t *testing.T) {
	calls := 0
	_, err := Do(context.Background(), Options{MaxAttempts: 3, BaseDelay: time.Millisecond},
		func(ctx context.Context) (int, error) {
			calls++
			return 0, &remote.PermissionDeniedError{Op: "upsert_reading"}
		})

	assert.Equal(t, 1, calls)
	var pd *remote.PermissionDeniedError
	require.ErrorAs(t, err, &pd)
}

func TestDoHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := Do(ctx, Options{MaxAttempts: 5, BaseDelay: time.Second},
		func(ctx context.Context) (int, error) {
			calls++
			return 0, &remote.RateLimitedError{Op: "upsert_reading"}
		})

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestRun(t *testing.T) {
	calls := 0
	err := Run(context.Background(), DefaultOptions(), func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}
