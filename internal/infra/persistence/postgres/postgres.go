package postgres

import (
	"context"
	"log/slog"

	"fitbot/config"
	"fitbot/internal/domain/lifecycle"
	"fitbot/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the PostgreSQL client holding the knowledge documents
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration is required when retrieval.store is postgres")
	}

	db, err := Open(params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			stats := sqlDB.Stats()
			params.Logger.Info("Closing PostgreSQL",
				slog.Int("openConns", stats.OpenConnections),
				slog.Int64("waitCountTotal", stats.WaitCount),
				slog.Duration("waitDurationTotal", stats.WaitDuration),
			)

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Open connects without lifecycle hooks, for command line tools.
func Open(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	return db.Session(&gorm.Session{
		// Bulk upserts run in explicit transactions through the transaction manager.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(logger, cfg),
	}), nil
}
