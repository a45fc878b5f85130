// Package retry provides a bounded retry mechanism with exponential backoff,
// used for calls to the upstream flight API.
package retry

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// Config holds the retry configuration options.
type Config struct {
	// MaxAttempts is the maximum number of attempts, including the first.
	MaxAttempts int

	// InitialDelay is the delay before the first retry.
	InitialDelay time.Duration

	// MaxDelay caps the delay between retries.
	MaxDelay time.Duration

	// Multiplier is the factor by which the delay grows after each retry.
	Multiplier float64

	// JitterFactor adds up to this fraction of random jitter to each delay.
	JitterFactor float64
}

// UpstreamConfig is tuned for the paid flight API: few attempts, short
// delays, so a degraded upstream falls through to the mock path quickly.
var UpstreamConfig = Config{
	MaxAttempts:  2,
	InitialDelay: 150 * time.Millisecond,
	MaxDelay:     1 * time.Second,
	Multiplier:   2.0,
	JitterFactor: 0.2,
}

// DoWithResult executes fn with retry logic, returning the first successful
// result or the last error. Permanent errors are never retried.
func DoWithResult[T any](ctx context.Context, fn func() (T, error), cfg Config) (T, error) {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}

	var result T
	var lastErr error
	delay := cfg.InitialDelay

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		result, lastErr = fn()
		if lastErr == nil {
			return result, nil
		}
		if IsPermanent(lastErr) {
			return result, lastErr
		}
		if attempt == cfg.MaxAttempts {
			break
		}

		sleepTime := withJitter(delay, cfg.MaxDelay, cfg.JitterFactor)
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-time.After(sleepTime):
		}
		delay = time.Duration(float64(delay) * cfg.Multiplier)
	}

	return result, lastErr
}

// withJitter computes the sleep duration with jitter, capped at maxDelay.
func withJitter(delay, maxDelay time.Duration, jitterFactor float64) time.Duration {
	jitter := time.Duration(rand.Float64() * float64(delay) * jitterFactor)
	sleepTime := delay + jitter
	if sleepTime > maxDelay {
		sleepTime = maxDelay
	}
	return sleepTime
}

// Permanent wraps an error to indicate it should not be retried.
type Permanent struct {
	Err error
}

func (p *Permanent) Error() string {
	if p.Err == nil {
		return "permanent error"
	}
	return p.Err.Error()
}

func (p *Permanent) Unwrap() error {
	return p.Err
}

// NewPermanent creates a permanent (non-retryable) error.
func NewPermanent(err error) error {
	if err == nil {
		return nil
	}
	return &Permanent{Err: err}
}

// IsPermanent checks if an error is permanent (non-retryable).
func IsPermanent(err error) bool {
	var permanent *Permanent
	return errors.As(err, &permanent)
}
