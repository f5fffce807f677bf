package service

import (
	"context"

	"fitbot/internal/domain/entity"

	"github.com/pkg/errors"
)

// Errors returned by the vector index.
var (
	// ErrIndexNotReady is returned when a search runs before the index was loaded.
	ErrIndexNotReady = errors.New("vector index not ready")
	// ErrUnknownCollection is returned for a collection the index does not hold.
	ErrUnknownCollection = errors.New("unknown collection")
)

// VectorIndex defines the interface for similarity search over the knowledge base
type VectorIndex interface {
	// Search returns at most k snippets of the collection most similar to query, best first.
	Search(ctx context.Context, collection entity.Collection, query string, k int) ([]entity.Snippet, error)

	// Ready reports whether the index has been loaded.
	Ready() bool
}
