package retry

import (
	"context"
	"time"
)

// Policy configures Do.
type Policy struct {
	// MaxAttempts is the total number of attempts, including the first.
	// Values below 1 mean a single attempt.
	MaxAttempts int

	// Retryable decides whether err deserves another attempt.
	// A nil Retryable retries every error.
	Retryable func(err error) bool

	// Backoff computes the wait before each retry. Nil uses DefaultStrategy.
	Backoff Strategy

	// OnRetry is called before waiting for retry number n (starting at 1)
	// with the error that caused it.
	OnRetry func(n int, err error)
}

// NoRetry is a single-shot policy.
var NoRetry = Policy{MaxAttempts: 1}

func (p Policy) attempts() int {
	if p.MaxAttempts < 1 {
		return 1
	}
	return p.MaxAttempts
}

func (p Policy) retryable(err error) bool {
	if p.Retryable == nil {
		return true
	}
	return p.Retryable(err)
}

func (p Policy) backoff() Strategy {
	if p.Backoff == nil {
		return DefaultStrategy()
	}
	return p.Backoff
}

// Do calls fn until it returns nil, returns a non-retryable error, or the
// attempt budget is spent. The last error from fn is returned as is.
// Cancelling ctx interrupts the wait between attempts and returns ctx.Err().
func Do(ctx context.Context, p Policy, fn func(ctx context.Context) error) error {
	_, err := DoValue(ctx, p, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

// DoValue is Do for operations returning a value.
func DoValue[T any](ctx context.Context, p Policy, fn func(ctx context.Context) (T, error)) (T, error) {
	attempts := p.attempts()
	backoff := p.backoff()

	var zero T
	for attempt := 1; ; attempt++ {
		v, err := fn(ctx)
		if err == nil {
			return v, nil
		}
		if attempt >= attempts || !p.retryable(err) {
			return zero, err
		}

		if p.OnRetry != nil {
			p.OnRetry(attempt, err)
		}

		if delay := backoff.Next(attempt); delay > 0 {
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return zero, ctx.Err()
			case <-timer.C:
			}
		} else if ctx.Err() != nil {
			return zero, ctx.Err()
		}
	}
}
