// Package environment names the deployment environment the process runs in
// (development, staging or production).
//
// The value drives logger presets: development gets human-readable text logs
// at debug level, staging and production get JSON at info level.
//
// # Usage
//
//	env, err := environment.Parse(os.Getenv("APP_ENV"))
//	if err != nil {
//	    return err
//	}
//	if env.IsProduction() {
//	    // production-specific behaviour
//	}
//
// Environment implements encoding.TextUnmarshaler, so it can be used as a
// field type in structs parsed by the config package:
//
//	type AppConfig struct {
//	    Env environment.Environment `env:"APP_ENV" envDefault:"development"`
//	}
//
// # Error Handling
//
// Parse wraps ErrUnknown for unrecognised values. Use errors.Is to detect it.
package environment
