package resilience

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// Retry runs op with exponential backoff. Errors wrapped with Permanent
// stop the loop immediately.
func Retry[T any](ctx context.Context, cfg RetryConfig, op func() (T, error), notify func(error, time.Duration)) (T, error) {
	defaults := DefaultRetryConfig()
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.InitialInterval <= 0 {
		cfg.InitialInterval = defaults.InitialInterval
	}
	if cfg.MaxInterval <= 0 {
		cfg.MaxInterval = defaults.MaxInterval
	}
	if cfg.MaxElapsed <= 0 {
		cfg.MaxElapsed = defaults.MaxElapsed
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = cfg.InitialInterval
	policy.MaxInterval = cfg.MaxInterval

	opts := []backoff.RetryOption{
		backoff.WithBackOff(policy),
		backoff.WithMaxTries(uint(cfg.MaxRetries) + 1),
		backoff.WithMaxElapsedTime(cfg.MaxElapsed),
	}
	if notify != nil {
		opts = append(opts, backoff.WithNotify(notify))
	}

	return backoff.Retry(ctx, op, opts...)
}

// Permanent marks err as not worth retrying.
func Permanent(err error) error {
	return backoff.Permanent(err)
}
