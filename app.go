package coderland

import (
	"context"
	"log/slog"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/coderland/pkg/heartbeat"
	"github.com/dmitrymomot/coderland/pkg/httpserver"
	"github.com/dmitrymomot/coderland/pkg/logger"
	"github.com/dmitrymomot/coderland/pkg/statemachine"
)

// App owns the request counter and start time of one server run.
type App struct {
	opts      *options
	log       *slog.Logger
	served    atomic.Uint64
	startedAt atomic.Pointer[time.Time]
	lifecycle statemachine.StateMachine
	metrics   *metrics

	// gate orders request logging against the stop banner: once closed is
	// set under the write lock, greet logs nothing.
	gate   sync.RWMutex
	closed bool
}

// New returns an App ready to Run.
func New(opts ...Option) *App {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	a := &App{opts: o, log: o.logger}
	a.lifecycle = newLifecycle(a.log)
	a.metrics = newMetrics(a.Uptime)
	return a
}

// State reports where the App is in its lifecycle.
func (a *App) State() State {
	return a.lifecycle.Current().(State)
}

// RequestCounter returns the number the next request will be logged with.
// It starts at 1.
func (a *App) RequestCounter() uint64 {
	return a.served.Load() + 1
}

// Uptime returns the time elapsed since Run captured the start time, or zero
// before that.
func (a *App) Uptime() time.Duration {
	started := a.startedAt.Load()
	if started == nil {
		return 0
	}
	return a.opts.clock().Sub(*started)
}

// Run serves until ctx is cancelled or a shutdown signal arrives, then
// returns once the shutdown banner has been logged.
//
// A bind failure is returned immediately, wrapped with httpserver.ErrStart,
// without any banner. A shutdown that outlives the drain timeout is returned
// wrapped with httpserver.ErrShutdown. Run may be called once per App; later
// calls return ErrAlreadyStarted.
func (a *App) Run(ctx context.Context) error {
	if err := a.lifecycle.Fire(ctx, eventLaunch); err != nil {
		if statemachine.IsNoTransition(err) {
			return ErrAlreadyStarted
		}
		return err
	}
	// No-op when the stop hook already moved the App to stopped.
	defer func() { _ = a.lifecycle.Fire(context.WithoutCancel(ctx), eventStop) }()

	now := a.opts.clock()
	a.startedAt.Store(&now)

	hb, err := heartbeat.New(a.reportUptime,
		heartbeat.WithInterval(a.opts.heartbeatInterval),
		heartbeat.WithLogger(a.log.With(logger.Component("heartbeat"))),
	)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	hbCtx, stopHeartbeat := context.WithCancel(ctx)
	defer stopHeartbeat()
	hbDone := make(chan struct{})
	listening := make(chan struct{})

	srv := httpserver.New(append(a.opts.httpOpts,
		httpserver.WithLogger(a.log),
		httpserver.WithStartHook(func(log *slog.Logger, addr net.Addr) {
			_ = a.lifecycle.Fire(ctx, eventListen)
			logLines(log, startBanner(addr))
			close(listening)
		}),
		httpserver.WithStopHook(func(log *slog.Logger) {
			// Requests and the heartbeat must be silent before the banner goes out.
			a.gate.Lock()
			a.closed = true
			a.gate.Unlock()
			stopHeartbeat()
			<-hbDone
			_ = a.lifecycle.Fire(context.WithoutCancel(ctx), eventStop)
			logLines(log, stopBanner())
		}),
	)...)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		// A signal ends Run with a nil error; cancel so the rest follows.
		defer cancel()
		return srv.Run(gctx, a.Handler())
	})

	g.Go(func() error {
		defer close(hbDone)
		select {
		case <-listening:
		case <-gctx.Done():
			return nil
		}
		return hb.Run(hbCtx)
	})

	if a.opts.adminAddr != "" {
		admin := httpserver.New(
			httpserver.WithAddr(a.opts.adminAddr),
			httpserver.WithLogger(a.log.With(logger.Component("admin"))),
			httpserver.WithSignals(),
			httpserver.WithStartHook(func(log *slog.Logger, addr net.Addr) {
				log.Info("admin listener started", logger.Addr(addr.String()))
			}),
		)
		g.Go(func() error {
			return admin.Run(gctx, a.AdminHandler())
		})
	}

	return g.Wait()
}
