package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures a single Load call.
type Option func(*options)

type options struct {
	files  []string
	prefix string
	vars   map[string]string
}

// WithEnvFiles loads the given .env files before parsing. Variables already
// present in the process environment win over file values. A missing file is
// an error, unlike the implicit ".env" lookup done when no files are given.
func WithEnvFiles(files ...string) Option {
	return func(o *options) {
		for _, f := range files {
			if f != "" {
				o.files = append(o.files, f)
			}
		}
	}
}

// WithPrefix makes every env tag resolve as prefix+name, e.g. "CODERLAND_".
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvironment parses from vars instead of the process environment.
// No .env file is read in this mode.
func WithEnvironment(vars map[string]string) Option {
	return func(o *options) { o.vars = vars }
}

// Load parses environment variables into the struct v points to, based on its
// `env` and `envDefault` field tags.
//
// Example:
//
//	type HTTPConfig struct {
//		Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
//		ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
//	}
//
//	var cfg HTTPConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	envOpts := env.Options{Prefix: o.prefix}
	switch {
	case o.vars != nil:
		envOpts.Environment = o.vars
	case len(o.files) > 0:
		if err := godotenv.Load(o.files...); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
	default:
		// The default .env is optional.
		_ = godotenv.Load()
	}

	if err := env.ParseWithOptions(v, envOpts); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Use it for configuration the process cannot start without.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
