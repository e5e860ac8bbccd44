package correlate

import (
	"log/slog"
	"time"
)

// Option is a functional option for configuring the engine.
type Option func(*Engine)

// WithTTL sets how long stored sessions remain matchable.
func WithTTL(ttl time.Duration) Option {
	return func(e *Engine) {
		if ttl > 0 {
			e.ttl = ttl
		}
	}
}

// WithThreshold sets the minimum similarity score for a correlation.
func WithThreshold(threshold float64) Option {
	return func(e *Engine) {
		e.threshold = threshold
	}
}

// WithRecentLimit caps how many stored candidates each correlation scans.
func WithRecentLimit(limit int) Option {
	return func(e *Engine) {
		if limit > 0 {
			e.recentLimit = limit
		}
	}
}

// WithLogger sets the engine logger.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}
