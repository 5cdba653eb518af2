package store

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

const (
	retryBaseDelay  = 50 * time.Millisecond
	retryMaxDelay   = time.Second
	retryMaxRetries = 3
)

// withRetry runs fn until it succeeds, fails with an error the connection's
// classifier marks as [NonRetryable], or the retry budget is spent.
// Backoff is exponential with jitter, capped at retryMaxDelay.
func (db *DB) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.NewExponential(retryBaseDelay)
	backoff = retry.WithJitterPercent(10, backoff)
	backoff = retry.WithCappedDuration(retryMaxDelay, backoff)
	backoff = retry.WithMaxRetries(retryMaxRetries, backoff)

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err == nil {
			return nil
		}

		if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
			db.logger.Warn().Err(err).Str("func", "DB.withRetry").Msg("retryable database error, retrying")
			return retry.RetryableError(err)
		}

		return err
	})
}
