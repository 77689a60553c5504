package coderland

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dmitrymomot/coderland/pkg/environment"
	"github.com/dmitrymomot/coderland/pkg/httpserver"
	"github.com/dmitrymomot/coderland/pkg/logger"
	"github.com/dmitrymomot/coderland/pkg/requestid"
)

// Config is the environment-driven configuration of the service. Every
// default reproduces the fixed behaviour: port 8080, a two second heartbeat,
// no admin listener.
//
// LOG_LEVEL can lower the threshold to debug but never raise it above info,
// since the banners, request lines and heartbeat are info records.
type Config struct {
	Name      string                  `env:"APP_NAME" envDefault:"coderland"`
	Env       environment.Environment `env:"APP_ENV" envDefault:"development"`
	LogLevel  string                  `env:"LOG_LEVEL"`  // empty keeps the environment preset; capped at info
	LogFormat string                  `env:"LOG_FORMAT"` // text or json; empty keeps the preset

	HTTP httpserver.Config

	HeartbeatInterval time.Duration `env:"HEARTBEAT_INTERVAL" envDefault:"2s"`
	TrustProxyHeaders bool          `env:"TRUST_PROXY_HEADERS" envDefault:"false"`
	AdminAddr         string        `env:"ADMIN_ADDR"`
}

// Options translates cfg into App options.
func (cfg Config) Options() []Option {
	return []Option{
		WithHTTPOptions(cfg.HTTP.Options()...),
		WithHeartbeatInterval(cfg.HeartbeatInterval),
		WithTrustProxyHeaders(cfg.TrustProxyHeaders),
		WithAdminAddr(cfg.AdminAddr),
	}
}

// LoggerOptions translates cfg into logger options. Records logged with a
// request context carry its request id.
func (cfg Config) LoggerOptions() ([]logger.Option, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}

	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		// Banners, request and heartbeat lines are logged at INFO and must
		// always be written.
		opts = append(opts, logger.WithLevel(min(level, slog.LevelInfo)))
	}

	switch f := logger.Format(strings.ToLower(cfg.LogFormat)); f {
	case "":
	case logger.FormatText, logger.FormatJSON:
		opts = append(opts, logger.WithFormat(f))
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidLogFormat, cfg.LogFormat)
	}

	return opts, nil
}
