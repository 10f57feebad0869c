package main

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/azrs7/Login/internal/core/ports/repositories"
	"github.com/azrs7/Login/internal/core/services"
	"github.com/azrs7/Login/internal/middleware"
	"github.com/azrs7/Login/internal/platform/config"
	"github.com/azrs7/Login/internal/repositories/database/pgsql"
	"github.com/azrs7/Login/internal/repositories/database/sqlite"
	"github.com/azrs7/Login/internal/repositories/memory"
	"github.com/azrs7/Login/pkg/database"
)

// openRepositories connects to the configured storage driver and runs its
// schema setup.
func openRepositories(ctx context.Context, cfg *config.Config) (portsrepo.RepositoryProvider, error) {
	var repos portsrepo.RepositoryProvider

	switch cfg.StorageDriver {
	case config.DriverSQLite:
		db, err := database.NewSQLite(database.SQLiteConfig{Path: cfg.SQLitePath, LogMode: cfg.SQLiteLogMode})
		if err != nil {
			return repos, fmt.Errorf("open sqlite database: %w", err)
		}
		repos = sqlite.NewRepositoryProvider(db)
	case config.DriverPostgres:
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return repos, fmt.Errorf("open postgres pool: %w", err)
		}
		repos = pgsql.NewRepositoryProvider(pool, cfg.DatabaseURL)
	case config.DriverMemory:
		repos = memory.NewRepositoryProvider()
	default:
		return repos, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}

	if err := repos.Storage.Init(ctx); err != nil {
		closeRepositories(ctx, repos)
		return repos, fmt.Errorf("initialise storage: %w", err)
	}
	return repos, nil
}

func closeRepositories(ctx context.Context, repos portsrepo.RepositoryProvider) {
	if err := repos.Storage.Close(); err != nil {
		if logger := middleware.GetLoggerFromCtx(ctx); logger != nil {
			logger.Error("Failed to close storage", slog.String("error", err.Error()))
		}
	}
}

// openSession wires a logged out session over freshly opened storage. The
// returned func closes the storage.
func openSession(ctx context.Context, cfg *config.Config) (*services.Session, func(), error) {
	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	session := services.NewSession(services.NewServiceContainer(cfg, repos))
	return session, func() { closeRepositories(ctx, repos) }, nil
}
