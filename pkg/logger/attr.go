package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Addr records a listen or peer address under the key "addr".
func Addr(addr string) slog.Attr {
	return slog.String("addr", addr)
}

// RequestNumber records the sequential number assigned to an inbound request.
func RequestNumber(n uint64) slog.Attr {
	return slog.Uint64("request_number", n)
}

// RemoteHost records the client host a request came from.
// If host is empty, it returns an empty Attr.
func RemoteHost(host string) slog.Attr {
	if host == "" {
		return slog.Attr{}
	}
	return slog.String("remote_host", host)
}

// Uptime records whole seconds of process run time under "uptime_seconds".
func Uptime(d time.Duration) slog.Attr {
	return slog.Int64("uptime_seconds", int64(d/time.Second))
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
