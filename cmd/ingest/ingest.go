package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fitbot/config"
	"fitbot/internal/domain/repository"
	"fitbot/internal/infra/llm"
	logs "fitbot/internal/infra/log"
	"fitbot/internal/infra/persistence"
	"fitbot/internal/infra/persistence/postgres"
	redisstore "fitbot/internal/infra/persistence/redis"
	"fitbot/internal/usecase"
	"fitbot/internal/usecase/impl"
	"fitbot/internal/util"

	"github.com/pkg/errors"
)

const defaultBatchSize = 100

type store struct {
	repo      repository.DocumentRepository
	txManager repository.TransactionManager
	close     func() error
}

func runIngest(ctx context.Context, datasets []dataset, batchSize int, reset bool) error {
	start := time.Now()

	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	st, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := st.close(); closeErr != nil {
			logger.Warn("Failed to close document store", slog.Any("error", closeErr))
		}
	}()

	client, err := llm.NewClient(cfg, logger)
	if err != nil {
		return err
	}

	ingestUC := impl.NewIngestService(logger, llm.NewEmbedder(client), st.repo, st.txManager)

	for _, d := range datasets {
		parsed, err := d.parse(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Ingesting %d %s documents from %s (%s, %d rows skipped)\n",
			len(parsed.Documents), d.collection, d.location, util.FormatBytes(parsed.size), parsed.Skipped)

		report, err := ingestUC.Ingest(ctx, &usecase.IngestInput{
			Collection: d.collection,
			Documents:  parsed.Documents,
			BatchSize:  batchSize,
			Reset:      reset,
		})
		if err != nil {
			return errors.Wrapf(err, "failed to ingest %s", d.collection)
		}

		fmt.Printf("  ✅ %s: embedded %d, %d stored\n", report.Collection, report.Embedded, report.Stored)
	}

	fmt.Printf("✅ Ingestion finished in %s\n", util.FormatDuration(time.Since(start)))

	return nil
}

func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*store, error) {
	storeName := persistence.StorePostgres
	if cfg.Retrieval != nil && cfg.Retrieval.Store != "" {
		storeName = cfg.Retrieval.Store
	}

	switch storeName {
	case persistence.StorePostgres:
		if cfg.Postgres == nil {
			return nil, errors.New("postgres configuration is required when retrieval.store is postgres")
		}

		db, err := postgres.Open(cfg, logger)
		if err != nil {
			return nil, err
		}

		if err := postgres.AutoMigrate(ctx, db); err != nil {
			return nil, err
		}

		sqlDB, err := db.DB()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get sql.DB")
		}

		return &store{
			repo:      postgres.NewDocumentRepository(db),
			txManager: postgres.NewTransactionManager(db),
			close:     sqlDB.Close,
		}, nil

	case persistence.StoreRedis:
		client, err := redisstore.Dial(cfg)
		if err != nil {
			return nil, err
		}

		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()

			return nil, errors.Wrap(err, "failed to ping Redis")
		}

		return &store{
			repo:  redisstore.NewDocumentRepository(client, cfg),
			close: client.Close,
		}, nil

	default:
		return nil, errors.Errorf("unknown retrieval store: %s", storeName)
	}
}
