// Package cli consolidates the initialization shared by cmd/invitados and
// cmd/invitados-report: env loading, logger setup, config validation and
// data source construction.
package cli

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"invitados/internal/backend"
	"invitados/internal/config"
	applog "invitados/internal/log"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger initializes structured logging from the configuration and
// sets it as the default logger.
func SetupLogger(cfg *config.Config) *applog.Logger {
	logger := applog.New(applog.Config{
		Level:     applog.ParseLevel(cfg.LogLevel),
		Component: applog.ComponentApp,
		Format:    cfg.LogFormat,
	})
	applog.SetDefault(logger)
	return logger
}

// Bootstrap loads the environment and configuration, sets up logging and
// validates the result. Exits the process on validation failure.
func Bootstrap() (*config.Config, *applog.Logger) {
	LoadEnvFile()
	cfg := config.Load()
	logger := SetupLogger(cfg)
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	return cfg, logger
}

// NewSource builds the configured spreadsheet source or exits the process.
func NewSource(ctx context.Context, cfg *config.Config, logger *applog.Logger) backend.Source {
	factory := backend.NewFactory(logger.WithComponent(applog.ComponentBackend).Logger)
	source, err := factory.CreateSource(ctx, backend.Config{
		Type:          backend.Type(cfg.DataBackend),
		GuestCSVURL:   cfg.GuestCSVURL,
		CostCSVURL:    cfg.CostCSVURL,
		Delimiter:     cfg.Delimiter(),
		DataDirectory: cfg.DataDirectory,
	})
	if err != nil {
		logger.Error("Failed to initialize data backend", "error", err, "backend", cfg.DataBackend)
		os.Exit(1)
	}
	return source
}
