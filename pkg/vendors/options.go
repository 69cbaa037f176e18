package vendors

import (
	"log/slog"

	"github.com/dmitrymomot/storefront/pkg/retry"
)

// Option configures a Service.
type Option func(*Service)

// WithBackoff sets the delay strategy between List attempts.
func WithBackoff(strategy retry.Strategy) Option {
	return func(s *Service) {
		if strategy != nil {
			s.backoff = strategy
		}
	}
}

// WithMaxAttempts sets the total number of List attempts. Values below 1 are ignored.
func WithMaxAttempts(n int) Option {
	return func(s *Service) {
		if n >= 1 {
			s.maxAttempts = n
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}
