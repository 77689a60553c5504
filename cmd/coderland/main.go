// Command coderland runs the greeting server. It takes no arguments; every
// setting comes from the environment or an optional .env file.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrymomot/coderland"
	"github.com/dmitrymomot/coderland/pkg/config"
	"github.com/dmitrymomot/coderland/pkg/logger"
)

func main() {
	var cfg coderland.Config
	if err := config.Load(&cfg); err != nil {
		slog.Error("failed to load config", logger.Error(err))
		os.Exit(1)
	}

	logOpts, err := cfg.LoggerOptions()
	if err != nil {
		slog.Error("invalid logger config", logger.Error(err))
		os.Exit(1)
	}
	log := logger.New(logOpts...)
	logger.SetAsDefault(log)

	app := coderland.New(append(cfg.Options(), coderland.WithLogger(log))...)
	if err := app.Run(context.Background()); err != nil {
		log.Error("server stopped with error", logger.Error(err))
		os.Exit(1)
	}
}
