// Package persistence selects the knowledge document store.
package persistence

import (
	"log/slog"

	"fitbot/config"
	"fitbot/internal/domain/repository"
	"fitbot/internal/infra/persistence/postgres"
	redisstore "fitbot/internal/infra/persistence/redis"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Store names accepted by retrieval.store.
const (
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

// RepositoryParams holds dependencies for the document repository, injected by Fx
type RepositoryParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewDocumentRepository creates the DocumentRepository selected by configuration
func NewDocumentRepository(params RepositoryParams) (repository.DocumentRepository, error) {
	store := StorePostgres
	if params.Config.Retrieval != nil && params.Config.Retrieval.Store != "" {
		store = params.Config.Retrieval.Store
	}

	switch store {
	case StorePostgres:
		params.Logger.Info("Using PostgreSQL knowledge document store")

		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}

		return postgres.NewDocumentRepository(db), nil

	case StoreRedis:
		params.Logger.Info("Using Redis knowledge document store")

		client, err := redisstore.NewClient(params.Lc, params.Config, params.Logger)
		if err != nil {
			return nil, err
		}

		return redisstore.NewDocumentRepository(client, params.Config), nil

	default:
		return nil, errors.Errorf("unknown retrieval store: %s", store)
	}
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewDocumentRepository),
)
