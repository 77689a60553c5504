package coderland

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/coderland/pkg/heartbeat"
	"github.com/dmitrymomot/coderland/pkg/httpserver"
)

// Option configures an App.
type Option func(*options)

type options struct {
	logger            *slog.Logger
	clock             func() time.Time
	httpOpts          []httpserver.Option
	heartbeatInterval time.Duration
	trustProxy        bool
	adminAddr         string
}

func defaultOptions() *options {
	return &options{
		logger:            slog.Default(),
		clock:             time.Now,
		heartbeatInterval: heartbeat.DefaultInterval,
	}
}

// WithLogger sets the logger every banner, request and heartbeat line goes to.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithClock replaces time.Now for uptime computation.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.clock = now
		}
	}
}

// WithHTTPOptions forwards options to the main listener, e.g. its address.
func WithHTTPOptions(opts ...httpserver.Option) Option {
	return func(o *options) { o.httpOpts = append(o.httpOpts, opts...) }
}

// WithHeartbeatInterval sets the uptime log cadence. Non-positive values are ignored.
func WithHeartbeatInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.heartbeatInterval = d
		}
	}
}

// WithTrustProxyHeaders makes request logs report the client host from
// proxy headers (X-Forwarded-For and friends) instead of the TCP peer.
func WithTrustProxyHeaders(trust bool) Option {
	return func(o *options) { o.trustProxy = trust }
}

// WithAdminAddr enables the admin listener on addr. Empty disables it.
func WithAdminAddr(addr string) Option {
	return func(o *options) { o.adminAddr = addr }
}
