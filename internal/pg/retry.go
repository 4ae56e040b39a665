package pg

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sethvargo/go-retry"
)

const (
	retryAttempts = 3
	retryBackoff  = 100 * time.Millisecond
)

// IsRetryable reports whether err is transient wallet contention:
// serialization failure, deadlock, or lock-wait timeout.
func IsRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case "40001", "40P01", "55P03":
		return true
	}
	return false
}

// WithRetry re-runs fn from scratch a bounded number of times while it fails
// with a retryable store error. fn must be a full atomic unit, not just the
// failing statement.
func WithRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(retryAttempts, retry.NewConstant(retryBackoff))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := fn(ctx); err != nil {
			if IsRetryable(err) {
				return retry.RetryableError(err)
			}
			return err
		}
		return nil
	})
}
