package api

import (
	"context"
	"time"

	"github.com/felixgeelhaar/fortify/retry"
)

// Retryable reports whether err is worth another attempt. Client errors
// (4xx) are never retried; anything else, including transport failures
// where no response was received, is.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	return !IsClientError(err)
}

// RetryWithBackoff runs op with exponential backoff: maxAttempts total
// attempts, delays of baseDelay, 2x, 4x... between them. Exhausting the
// attempts returns the last error.
func RetryWithBackoff[T any](ctx context.Context, maxAttempts int, baseDelay time.Duration, op func(context.Context) (T, error)) (T, error) {
	return newRetrier[T](maxAttempts, baseDelay).Do(ctx, op)
}

func newRetrier[T any](maxAttempts int, baseDelay time.Duration) retry.Retry[T] {
	return retry.New[T](retry.Config{
		MaxAttempts:   maxAttempts,
		InitialDelay:  baseDelay,
		MaxDelay:      30 * time.Second,
		Multiplier:    2.0,
		BackoffPolicy: retry.BackoffExponential,
		Jitter:        false,
		IsRetryable:   Retryable,
	})
}
