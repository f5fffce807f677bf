// Package vectorindex provides similarity search over the knowledge documents.
// Stores that rank vectors themselves are queried directly; others are served
// by an in-process cosine index.
package vectorindex

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"fitbot/config"
	"fitbot/internal/domain/entity"
	"fitbot/internal/domain/lifecycle"
	"fitbot/internal/domain/repository"
	"fitbot/internal/domain/service"
	"fitbot/internal/errors"

	"go.uber.org/fx"
)

type indexedDocument struct {
	text   string
	vector []float32
}

// MemoryIndex holds every document vector in memory, unit-normalized.
// It is read-only after Load; Load swaps the whole set under the write lock.
type MemoryIndex struct {
	logger   *slog.Logger
	repo     repository.DocumentRepository
	embedder service.Embedder

	mu          sync.RWMutex
	collections map[entity.Collection][]indexedDocument
	ready       atomic.Bool
}

// Params holds dependencies for the memory index
type Params struct {
	fx.In

	Lc       fx.Lifecycle
	Config   *config.Config
	Logger   *slog.Logger
	Repo     repository.DocumentRepository
	Embedder service.Embedder
}

type loadableIndex interface {
	service.VectorIndex
	Load(ctx context.Context) error
}

// NewVectorIndex creates the index matching the document store and loads it when the application starts
func NewVectorIndex(params Params) service.VectorIndex {
	var index loadableIndex
	if similarity, ok := params.Repo.(repository.SimilarityRepository); ok {
		params.Logger.Info("Knowledge search runs in the document store")
		index = NewStoreIndex(params.Logger, params.Repo, similarity, params.Embedder)
	} else {
		params.Logger.Info("Knowledge search runs in memory")
		index = New(params.Logger, params.Repo, params.Embedder)
	}

	requireReady := params.Config.Retrieval != nil && params.Config.Retrieval.RequireReady

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := index.Load(ctx); err != nil {
				if requireReady {
					return err
				}
				params.Logger.Warn("Knowledge base not loaded, plan requests will fail until restart",
					slog.Any("error", err),
				)
			}

			return nil
		},
	})

	return index
}

// New creates an empty, not-ready index
func New(logger *slog.Logger, repo repository.DocumentRepository, embedder service.Embedder) *MemoryIndex {
	return &MemoryIndex{
		logger:      logger,
		repo:        repo,
		embedder:    embedder,
		collections: make(map[entity.Collection][]indexedDocument),
	}
}

// Load reads every collection from the repository and replaces the index contents
func (m *MemoryIndex) Load(ctx context.Context) error {
	start := time.Now()
	loaded := make(map[entity.Collection][]indexedDocument, len(entity.Collections))

	for _, collection := range entity.Collections {
		docs, err := m.repo.ListByCollection(ctx, collection)
		if err != nil {
			return errors.Wrapf(err, "failed to list %s documents", collection)
		}

		entries := make([]indexedDocument, 0, len(docs))
		for _, doc := range docs {
			vector := normalize(doc.Embedding)
			if vector == nil {
				continue
			}
			entries = append(entries, indexedDocument{text: doc.Content, vector: vector})
		}
		loaded[collection] = entries

		m.logger.Info("Knowledge collection loaded",
			slog.String("collection", collection.String()),
			slog.Int("documents", len(entries)),
		)
	}

	m.mu.Lock()
	m.collections = loaded
	m.mu.Unlock()
	m.ready.Store(true)

	m.logger.Info("Knowledge base ready", slog.Duration("duration", time.Since(start)))

	return nil
}

// Ready reports whether Load has completed successfully
func (m *MemoryIndex) Ready() bool {
	return m.ready.Load()
}

// Search embeds the query and returns the k most similar documents, best first
func (m *MemoryIndex) Search(ctx context.Context, collection entity.Collection, query string, k int) ([]entity.Snippet, error) {
	if !m.Ready() {
		return nil, errors.WithStack(service.ErrIndexNotReady)
	}
	if !collection.IsValid() {
		return nil, errors.Wrapf(service.ErrUnknownCollection, "collection %q", collection)
	}
	if k <= 0 {
		return nil, nil
	}

	m.mu.RLock()
	docs := m.collections[collection]
	m.mu.RUnlock()

	if len(docs) == 0 {
		return nil, nil
	}

	vector, err := embedQuery(ctx, m.embedder, query)
	if err != nil {
		return nil, err
	}

	return topK(collection, docs, normalize(vector), k), nil
}

func topK(collection entity.Collection, docs []indexedDocument, query []float32, k int) []entity.Snippet {
	scored := make([]entity.Snippet, 0, len(docs))
	for _, doc := range docs {
		if len(doc.vector) != len(query) {
			continue
		}
		scored = append(scored, entity.Snippet{
			Collection: collection,
			Text:       doc.text,
			Score:      dot(doc.vector, query),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > k {
		scored = scored[:k]
	}

	return scored
}

func dot(a, b []float32) float64 {
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}

	return sum
}

// normalize returns a unit-length copy, or nil for empty and zero vectors.
func normalize(v []float32) []float32 {
	var norm float64
	for _, x := range v {
		norm += float64(x) * float64(x)
	}
	if norm == 0 {
		return nil
	}

	norm = math.Sqrt(norm)
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(float64(x) / norm)
	}

	return out
}

// Module provides the vector index FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewVectorIndex),
)
