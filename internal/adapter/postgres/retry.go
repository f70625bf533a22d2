package postgres

import (
	"context"
	"log/slog"

	"github.com/sethvargo/go-retry"
)

// withRetry runs fn and, when it fails with a retryable fault, waits the
// configured backoff and runs it exactly once more. The second error is
// returned as is.
func (d *Driver) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	attempt := 0
	backoff := retry.WithMaxRetries(1, retry.NewConstant(d.backoff))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := fn(ctx)
		if err == nil {
			return nil
		}

		fault, ok := Classify(err)
		if !ok || !d.retryable[fault] || attempt > 1 {
			return err
		}

		d.log.WarnContext(ctx, "transient database fault, retrying",
			slog.String("fault", fault.String()),
			slog.Duration("backoff", d.backoff),
			slog.String("error", err.Error()),
		)
		return retry.RetryableError(err)
	})
}
