package backend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	gsheet "invitados/internal/sheets/google"
	"invitados/internal/sheets/memory"
	"invitados/internal/sheets/published"
)

// DefaultFactory implements the Factory interface.
type DefaultFactory struct {
	logger *slog.Logger
}

// NewFactory creates a new backend factory.
func NewFactory(logger *slog.Logger) Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultFactory{logger: logger}
}

// CreateSource implements Factory.CreateSource.
func (f *DefaultFactory) CreateSource(ctx context.Context, config Config) (Source, error) {
	if !config.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", config.Type)
	}

	switch config.Type {
	case PublishedBackend:
		return f.createPublished(config)
	case SheetsBackend:
		return f.createSheets(ctx)
	case MemoryBackend:
		return f.createMemory(config), nil
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}

func (f *DefaultFactory) createPublished(config Config) (Source, error) {
	if config.GuestCSVURL == "" {
		return nil, errors.New("published backend requires a guest CSV URL")
	}
	delim := config.Delimiter
	if delim == 0 {
		delim = ','
	}
	cli := published.New(config.GuestCSVURL, config.CostCSVURL, published.WithDelimiter(delim))

	f.logger.Info("Initialized published CSV backend",
		"has_cost_sheet", config.CostCSVURL != "",
		"delimiter", string(delim))
	return cli, nil
}

func (f *DefaultFactory) createSheets(ctx context.Context) (Source, error) {
	cli, err := gsheet.NewFromEnv(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Google Sheets client: %w", err)
	}
	f.logger.Info("Initialized Google Sheets backend")
	return cli, nil
}

func (f *DefaultFactory) createMemory(config Config) Source {
	dataDir := config.DataDirectory
	if dataDir == "" {
		dataDir = "data"
	}
	store := memory.NewFromFiles(dataDir)
	f.logger.Info("Initialized memory backend", "data_directory", dataDir)
	return store
}
