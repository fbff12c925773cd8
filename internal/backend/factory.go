package backend

import (
	"context"
	"fmt"
	"log/slog"

	"spendwise/internal/adapters"
	"spendwise/internal/amqp"
	"spendwise/internal/services"
	"spendwise/internal/state"
	"spendwise/internal/storage"
)

// DefaultFactory implements the Factory interface.
type DefaultFactory struct {
	logger *slog.Logger
}

func NewFactory(logger *slog.Logger) Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultFactory{logger: logger}
}

func (f *DefaultFactory) CreateBackend(ctx context.Context, config Config) (*BackendResult, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Type {
	case SQLiteBackend:
		return f.createSQLiteBackend(ctx, config)
	case MemoryBackend:
		return f.createMemoryBackend(config)
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}

func (f *DefaultFactory) createSQLiteBackend(ctx context.Context, config Config) (*BackendResult, error) {
	repo, err := storage.NewSQLiteRepository(config.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SQLite repository: %w", err)
	}

	if config.SeedDemo {
		if err := repo.SeedDemo(ctx); err != nil {
			repo.Close()
			return nil, fmt.Errorf("seed demo data: %w", err)
		}
	}

	// AMQP is optional; without it the worker's pending sweep still syncs.
	var amqpClient *amqp.Client
	if config.AMQPURL != "" {
		amqpClient, err = amqp.NewClient(config.AMQPURL, config.AMQPExchange, config.AMQPQueue)
		if err != nil {
			f.logger.Warn("Failed to initialize AMQP client, continuing without sync", "error", err)
		} else {
			f.logger.Info("Initialized AMQP client",
				"exchange", config.AMQPExchange,
				"queue", config.AMQPQueue)
		}
	}

	var publisher services.Publisher
	if amqpClient != nil {
		publisher = amqpClient
	}
	expenseService := services.NewExpenseService(repo, publisher)
	adapter := adapters.NewSQLiteAdapter(repo, expenseService)

	f.logger.Info("Initialized SQLite backend",
		"db_path", config.SQLiteDBPath,
		"amqp_enabled", amqpClient != nil)

	return &BackendResult{
		Store:   adapter,
		Cleanup: expenseService.Close,
	}, nil
}

func (f *DefaultFactory) createMemoryBackend(config Config) (*BackendResult, error) {
	var st *state.Store
	if config.SeedDemo {
		st = state.NewSeeded()
	} else {
		st = state.New()
	}

	f.logger.Info("Initialized memory backend", "seeded", config.SeedDemo)

	return &BackendResult{
		Store:   st,
		Cleanup: nil,
	}, nil
}
