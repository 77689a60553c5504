package heartbeat

import (
	"log/slog"
	"time"
)

// Option configures a Heartbeat.
type Option func(*options)

type options struct {
	interval time.Duration
	logger   *slog.Logger
}

// WithInterval sets the beat cadence. Non-positive durations are ignored.
func WithInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.interval = d
		}
	}
}

// WithLogger sets the logger used for lifecycle debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
