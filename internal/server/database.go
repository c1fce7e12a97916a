package server

import (
	"context"
	"log/slog"
	"time"

	"specmaster/gen/ent"
	repo "specmaster/internal/repository"
)

// ConnectDB opens the configured store with sensible pool defaults, runs
// the schema migration, and returns the Ent client and a cleanup func.
func ConnectDB(ctx context.Context, dbURL string, logger *slog.Logger) (*ent.Client, func(), error) {
	client, cleanup, err := repo.Open(ctx, repo.Config{
		DSN:             dbURL,
		MaxConns:        20,
		MinConns:        5,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		DialTimeout:     3 * time.Second,
	}, logger)
	if err != nil {
		return nil, nil, err
	}

	if err := client.Schema.Create(ctx); err != nil {
		logger.Error("schema migration failed", "error", err)
		cleanup()
		return nil, nil, err
	}
	logger.Info("schema migration complete")
	return client, cleanup, nil
}
