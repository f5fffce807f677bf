// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"fitbot/internal/domain/entity"
)

// DocumentRepository defines the interface for knowledge document storage.
type DocumentRepository interface {
	// SaveDocuments upserts documents by ID.
	SaveDocuments(ctx context.Context, docs []*entity.KnowledgeDocument) error

	// ListByCollection returns every document of a collection, embeddings included.
	ListByCollection(ctx context.Context, collection entity.Collection) ([]*entity.KnowledgeDocument, error)

	// DeleteCollection removes every document of a collection.
	DeleteCollection(ctx context.Context, collection entity.Collection) error

	// CountByCollection returns the number of stored documents of a collection.
	CountByCollection(ctx context.Context, collection entity.Collection) (int64, error)
}

// SimilarityRepository is implemented by stores that rank documents by vector similarity themselves.
type SimilarityRepository interface {
	// SearchSimilar returns at most k snippets of the collection closest to vector, best first.
	SearchSimilar(ctx context.Context, collection entity.Collection, vector []float32, k int) ([]entity.Snippet, error)
}
