package impl

import (
	"context"
	"log/slog"

	"fitbot/internal/domain/entity"
	"fitbot/internal/domain/repository"
	"fitbot/internal/domain/service"
	"fitbot/internal/errors"
	"fitbot/internal/usecase"

	"golang.org/x/sync/errgroup"
)

const (
	defaultIngestBatchSize = 100
	maxConcurrentBatches   = 4
)

type ingestService struct {
	logger    *slog.Logger
	embedder  service.Embedder
	repo      repository.DocumentRepository
	txManager repository.TransactionManager
}

// NewIngestService creates a new ingestion service instance.
// txManager may be nil for stores without transactions.
func NewIngestService(
	logger *slog.Logger,
	embedder service.Embedder,
	repo repository.DocumentRepository,
	txManager repository.TransactionManager,
) usecase.IngestUsecase {
	return &ingestService{
		logger:    logger,
		embedder:  embedder,
		repo:      repo,
		txManager: txManager,
	}
}

// Ingest embeds documents in concurrent batches and stores them
func (s *ingestService) Ingest(ctx context.Context, input *usecase.IngestInput) (*usecase.IngestReport, error) {
	if !input.Collection.IsValid() {
		return nil, errors.Wrapf(service.ErrUnknownCollection, "collection %q", input.Collection)
	}

	batchSize := input.BatchSize
	if batchSize <= 0 {
		batchSize = defaultIngestBatchSize
	}

	if err := s.embed(ctx, input.Documents, batchSize); err != nil {
		return nil, err
	}

	if err := s.store(ctx, input); err != nil {
		return nil, err
	}

	stored, err := s.repo.CountByCollection(ctx, input.Collection)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Collection ingested",
		slog.String("collection", input.Collection.String()),
		slog.Int("embedded", len(input.Documents)),
		slog.Int64("stored", stored),
	)

	return &usecase.IngestReport{
		Collection: input.Collection,
		Embedded:   len(input.Documents),
		Stored:     stored,
	}, nil
}

func (s *ingestService) embed(ctx context.Context, docs []*entity.KnowledgeDocument, batchSize int) error {
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(maxConcurrentBatches)

	for start := 0; start < len(docs); start += batchSize {
		batch := docs[start:min(start+batchSize, len(docs))]

		group.Go(func() error {
			texts := make([]string, len(batch))
			for i, doc := range batch {
				texts[i] = doc.Content
			}

			vectors, err := s.embedder.Embed(groupCtx, texts)
			if err != nil {
				return errors.Wrapf(err, "failed to embed batch starting at %d", start)
			}
			if len(vectors) != len(batch) {
				return errors.Errorf("batch starting at %d: expected %d vectors, got %d", start, len(batch), len(vectors))
			}

			for i, doc := range batch {
				doc.Embedding = vectors[i]
			}
			s.logger.Debug("Embedded batch", slog.Int("start", start), slog.Int("size", len(batch)))

			return nil
		})
	}

	return group.Wait()
}

func (s *ingestService) store(ctx context.Context, input *usecase.IngestInput) error {
	if !input.Reset {
		return s.repo.SaveDocuments(ctx, input.Documents)
	}

	replace := func(repo repository.DocumentRepository) error {
		if err := repo.DeleteCollection(ctx, input.Collection); err != nil {
			return err
		}

		return repo.SaveDocuments(ctx, input.Documents)
	}

	if s.txManager == nil {
		return replace(s.repo)
	}

	return s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return replace(repoFactory.NewDocumentRepository())
	})
}
