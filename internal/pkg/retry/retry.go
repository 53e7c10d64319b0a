package retry

import (
	"context"
	"time"
)

// RetryableFunc represents a function that can be retried
type RetryableFunc func(ctx context.Context) error

// Config holds retry configuration
type Config struct {
	MaxRetries    int              // Maximum number of retry attempts after the first call
	Delay         time.Duration    // Delay between attempts
	RetryableFunc func(error) bool // Determines whether an error is worth retrying
}

// Do executes fn, retrying per the config. The final error is returned
// unwrapped so callers can classify it.
func Do(ctx context.Context, cfg Config, fn RetryableFunc) error {
	if cfg.RetryableFunc == nil {
		cfg.RetryableFunc = func(error) bool { return true }
	}

	var lastErr error
	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if !cfg.RetryableFunc(lastErr) || attempt == cfg.MaxRetries {
			return lastErr
		}

		if cfg.Delay > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(cfg.Delay):
			}
		}
	}
	return lastErr
}
