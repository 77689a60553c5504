package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrymomot/coderland/pkg/logger"
)

// StartHook runs once the listener is bound, before the first request is served.
type StartHook func(log *slog.Logger, addr net.Addr)

// StopHook runs once after in-flight requests have drained, or after the
// remaining connections were force-closed when draining timed out.
type StopHook func(log *slog.Logger)

type config struct {
	addr            string
	readTimeout     time.Duration
	writeTimeout    time.Duration
	idleTimeout     time.Duration
	shutdownTimeout time.Duration
	server          *http.Server
	logger          *slog.Logger
	signals         []os.Signal
	startHooks      []StartHook
	stopHooks       []StopHook
}

func defaultConfig() *config {
	return &config{
		addr:            ":8080",
		shutdownTimeout: 5 * time.Second,
		signals:         []os.Signal{os.Interrupt, syscall.SIGTERM},
	}
}

// Server wraps http.Server with fail-fast binding, graceful shutdown and
// lifecycle hooks.
type Server struct {
	cfg      *config
	mu       sync.Mutex
	srv      *http.Server
	listener net.Listener
	stopped  bool
	drained  chan struct{}
	stopErr  error // set by Shutdown before drained is closed
}

// New returns a configured Server.
func New(opts ...Option) *Server {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	return &Server{cfg: cfg, drained: make(chan struct{})}
}

// Addr returns the bound listener address, or nil before Run has bound it.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Run binds the listener, runs the start hooks and serves handler until ctx
// is cancelled, a configured signal arrives or Shutdown is called.
//
// A bind failure is returned immediately wrapped with ErrStart; no hook runs
// in that case. A server that was stopped cannot be run again.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s.mu.Lock()
	if s.srv != nil || s.stopped {
		s.mu.Unlock()
		return errors.Join(ErrStart, errors.New("server already running"))
	}

	cfg := s.cfg
	srv := cfg.server
	if srv == nil {
		srv = &http.Server{}
	}

	if srv.Addr == "" {
		srv.Addr = cfg.addr
	}
	if srv.ReadTimeout == 0 && cfg.readTimeout != 0 {
		srv.ReadTimeout = cfg.readTimeout
	}
	if srv.WriteTimeout == 0 && cfg.writeTimeout != 0 {
		srv.WriteTimeout = cfg.writeTimeout
	}
	if srv.IdleTimeout == 0 && cfg.idleTimeout != 0 {
		srv.IdleTimeout = cfg.idleTimeout
	}
	srv.Handler = handler

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", srv.Addr)
	if err != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, err)
	}
	s.srv = srv
	s.listener = ln
	s.mu.Unlock()

	stop := make(chan os.Signal, 1)
	if len(cfg.signals) > 0 {
		signal.Notify(stop, cfg.signals...)
		defer signal.Stop(stop)
	}

	cfg.logger.DebugContext(ctx, "http server listening", slog.String("addr", ln.Addr().String()))
	for _, h := range cfg.startHooks {
		h(cfg.logger, ln.Addr())
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	var runErr error
	select {
	case <-ctx.Done():
		_ = s.Shutdown(context.WithoutCancel(ctx)) // reported through stopErr
		runErr = <-errCh
	case sig := <-stop:
		cfg.logger.DebugContext(ctx, "shutdown signal received", slog.String("signal", sig.String()))
		_ = s.Shutdown(context.WithoutCancel(ctx)) // reported through stopErr
		runErr = <-errCh
	case runErr = <-errCh:
	}

	if errors.Is(runErr, http.ErrServerClosed) {
		// Shutdown may be running on another goroutine; return once its
		// stop hooks are done.
		<-s.drained
		return s.stopErr
	}
	if runErr != nil {
		return errors.Join(ErrServe, runErr)
	}
	return nil
}

// Shutdown stops the server gracefully and runs the stop hooks.
// It is a no-op before Run has bound the listener and safe for repeated calls;
// hooks run only on the first effective call.
//
// Connections still open when the shutdown timeout expires are closed before
// the hooks run, so no handler starts after them. The timeout error is wrapped
// with ErrShutdown and also returned by Run.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	if s.srv == nil || s.stopped {
		s.mu.Unlock()
		return nil
	}
	s.stopped = true
	srv := s.srv
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.cfg.shutdownTimeout)
	defer cancel()
	err := srv.Shutdown(ctx)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.cfg.logger.WarnContext(ctx, "graceful shutdown timed out, closing connections", logger.Error(err))
		err = errors.Join(ErrShutdown, err, srv.Close())
	} else {
		err = nil
	}

	for _, h := range s.cfg.stopHooks {
		h(s.cfg.logger)
	}
	s.stopErr = err
	close(s.drained)

	return err
}
