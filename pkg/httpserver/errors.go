package httpserver

import "errors"

var (
	// ErrStart indicates that the server failed to bind its listener.
	ErrStart = errors.New("failed to start HTTP server")
	// ErrServe indicates that the server stopped serving for a reason other than shutdown.
	ErrServe = errors.New("HTTP server stopped unexpectedly")
	// ErrShutdown indicates that graceful shutdown failed.
	ErrShutdown = errors.New("failed to shutdown HTTP server gracefully")
)
