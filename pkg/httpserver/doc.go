// Package httpserver provides a lightweight wrapper around net/http that adds
// fail-fast binding, graceful shutdown, configurable server timeouts,
// lifecycle hooks and health-check handlers.
//
//   - Fail-fast binding – Run binds the listener before anything else, so a
//     port already in use is reported immediately as ErrStart and no start
//     hook runs.
//
//   - Graceful Shutdown – Run blocks until the context is cancelled, a
//     configured signal (os.Interrupt and SIGTERM by default) is received or
//     Shutdown is called, then drains in-flight requests with
//     http.Server.Shutdown under a configurable deadline.
//
//   - Hooks – WithStartHook callbacks receive the bound address once the
//     server is listening; WithStopHook callbacks run exactly once after the
//     drain completes, so no handler is executing when they run.
//
//   - Health Checks – HealthCheckHandler returns an http.HandlerFunc usable as
//     liveness or readiness probe.
//
// # Usage
//
//	srv := httpserver.New(
//		httpserver.WithAddr(":8080"),
//		httpserver.WithShutdownTimeout(10*time.Second),
//		httpserver.WithStartHook(func(log *slog.Logger, addr net.Addr) {
//			log.Info("listening", "addr", addr.String())
//		}),
//	)
//
//	if err := srv.Run(ctx, router); err != nil {
//		slog.Error("server stopped", "err", err)
//	}
//
// # Errors
//
// Listen errors are wrapped with ErrStart, unexpected Serve errors with
// ErrServe and shutdown errors with ErrShutdown. Use errors.Is to distinguish
// them.
package httpserver
