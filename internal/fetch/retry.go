package fetch

import (
	"errors"
	"math/rand/v2"
	"time"
)

// MaxRetries bounds fetch attempts for transient failures.
const MaxRetries = 3

// DefaultBackoffBase is the first retry delay when Options leaves it unset.
const DefaultBackoffBase = time.Second

// TransientError marks a failure worth retrying.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string { return e.Err.Error() }
func (e *TransientError) Unwrap() error { return e.Err }

// IsRetryable checks if an error is worth retrying.
func IsRetryable(err error) bool {
	var retryErr *TransientError
	return errors.As(err, &retryErr)
}

// Backoff returns a duration for attempt n (0-indexed) with jitter,
// doubling from first and capped at 30 times first.
func Backoff(first time.Duration, attempt int) time.Duration {
	base := time.Duration(1<<uint(attempt)) * first
	if limit := 30 * first; base > limit {
		base = limit
	}
	jitter := time.Duration(rand.Int64N(int64(base)/2 + 1))
	return base + jitter
}
