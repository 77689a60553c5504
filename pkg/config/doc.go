// Package config loads typed application configuration from environment
// variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - Optionally loads one or more `.env` files (the default `.env` in the
//     working directory is tried silently when none are named).
//   - Parses the environment into any struct using `env` / `envDefault` tags.
//   - Supports a variable prefix and an explicit variable map for tests.
//
// # Usage
//
//	type AppConfig struct {
//	    Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg, config.WithEnvFiles(*envFile)); err != nil {
//	    return err
//	}
//
// # Error Handling
//
// Sentinel errors can be compared with errors.Is:
//
//   - ErrParsingConfig  – failed to parse env vars into struct.
//   - ErrLoadingEnvFile – an explicitly named .env file could not be read.
//   - ErrNilPointer     – nil pointer passed to Load/MustLoad.
package config
