package vectorindex

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"fitbot/internal/domain/entity"
	"fitbot/internal/domain/repository"
	"fitbot/internal/domain/service"
	"fitbot/internal/errors"
)

// StoreIndex delegates ranking to a store with native vector search, such as pgvector.
// Only the query embedding is computed in process.
type StoreIndex struct {
	logger   *slog.Logger
	repo     repository.DocumentRepository
	search   repository.SimilarityRepository
	embedder service.Embedder

	ready atomic.Bool
}

// NewStoreIndex creates a not-ready index over a similarity-capable store
func NewStoreIndex(
	logger *slog.Logger,
	repo repository.DocumentRepository,
	search repository.SimilarityRepository,
	embedder service.Embedder,
) *StoreIndex {
	return &StoreIndex{
		logger:   logger,
		repo:     repo,
		search:   search,
		embedder: embedder,
	}
}

// Load checks that every collection can be read and marks the index ready
func (s *StoreIndex) Load(ctx context.Context) error {
	start := time.Now()

	for _, collection := range entity.Collections {
		count, err := s.repo.CountByCollection(ctx, collection)
		if err != nil {
			return errors.Wrapf(err, "failed to count %s documents", collection)
		}

		s.logger.Info("Knowledge collection available",
			slog.String("collection", collection.String()),
			slog.Int64("documents", count),
		)
	}

	s.ready.Store(true)
	s.logger.Info("Knowledge base ready", slog.Duration("duration", time.Since(start)))

	return nil
}

// Ready reports whether Load has completed successfully
func (s *StoreIndex) Ready() bool {
	return s.ready.Load()
}

// Search embeds the query and lets the store return the k closest documents
func (s *StoreIndex) Search(ctx context.Context, collection entity.Collection, query string, k int) ([]entity.Snippet, error) {
	if !s.Ready() {
		return nil, errors.WithStack(service.ErrIndexNotReady)
	}
	if !collection.IsValid() {
		return nil, errors.Wrapf(service.ErrUnknownCollection, "collection %q", collection)
	}
	if k <= 0 {
		return nil, nil
	}

	vector, err := embedQuery(ctx, s.embedder, query)
	if err != nil {
		return nil, err
	}

	snippets, err := s.search.SearchSimilar(ctx, collection, vector, k)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to search %s", collection)
	}

	return snippets, nil
}

func embedQuery(ctx context.Context, embedder service.Embedder, query string) ([]float32, error) {
	vectors, err := embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, errors.Wrap(err, "failed to embed query")
	}
	if len(vectors) != 1 {
		return nil, errors.Errorf("expected 1 query vector, got %d", len(vectors))
	}
	if normalize(vectors[0]) == nil {
		return nil, errors.New("query embedding is empty")
	}

	return vectors[0], nil
}
