// Package coderland is a small demonstration HTTP service.
//
// Every request, whatever its method, path, headers or body, is answered with
// 200 and the body "Hello from Coderland!". Each request is logged as
// "Request #<n> from <host>" with a process-wide sequential number, and a
// heartbeat logs "Server run time: <seconds> seconds." every two seconds.
// Startup and shutdown are announced with fixed banners.
//
// # Usage
//
//	app := coderland.New(coderland.WithLogger(log))
//	if err := app.Run(ctx); err != nil {
//	    log.Error("coderland stopped", logger.Error(err))
//	    os.Exit(1)
//	}
//
// Run binds the listener (":8080" unless overridden through
// WithHTTPOptions), prints the startup banner, starts the heartbeat and
// serves until ctx is cancelled or SIGINT/SIGTERM arrives. It then drains
// in-flight requests, stops the heartbeat and prints the shutdown banner
// exactly once. An App runs at most once.
//
// # Request numbering
//
// The counter starts at 1 and is incremented atomically, so requests served
// concurrently still get unique, gap-free numbers. The order in which
// concurrent requests obtain their numbers is the order they reach the
// counter, not the order they were accepted.
//
// # Admin listener
//
// WithAdminAddr enables a second listener exposing /healthz, /readyz and
// Prometheus /metrics. Admin requests are neither counted nor greeted.
package coderland
