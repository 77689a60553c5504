package heartbeat

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

// DefaultInterval is the cadence used when no WithInterval option is given.
const DefaultInterval = 2 * time.Second

// Beat is invoked once per tick with the tick time.
type Beat func(ctx context.Context, at time.Time)

// Heartbeat calls a Beat on a fixed interval until its context is cancelled.
type Heartbeat struct {
	beat     Beat
	interval time.Duration
	logger   *slog.Logger
	running  atomic.Bool
}

// New creates a heartbeat that calls beat every interval.
func New(beat Beat, opts ...Option) (*Heartbeat, error) {
	if beat == nil {
		return nil, ErrNilBeat
	}

	options := &options{
		interval: DefaultInterval,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(options)
	}

	return &Heartbeat{
		beat:     beat,
		interval: options.interval,
		logger:   options.logger,
	}, nil
}

// Interval returns the configured cadence.
func (h *Heartbeat) Interval() time.Duration {
	return h.interval
}

// Run blocks, calling the beat once per interval. The first beat fires one
// interval after Run is called. Run returns nil once ctx is cancelled and no
// beat runs after it returns.
func (h *Heartbeat) Run(ctx context.Context) error {
	if !h.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer h.running.Store(false)

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	h.logger.DebugContext(ctx, "heartbeat started", slog.Duration("interval", h.interval))

	for {
		select {
		case <-ctx.Done():
			h.logger.DebugContext(ctx, "heartbeat stopped")
			return nil
		case at := <-ticker.C:
			// select picks randomly when both cases are ready
			if ctx.Err() != nil {
				h.logger.DebugContext(ctx, "heartbeat stopped")
				return nil
			}
			h.beat(ctx, at)
		}
	}
}
