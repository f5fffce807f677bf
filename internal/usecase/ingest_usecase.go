package usecase

import (
	"context"

	"fitbot/internal/domain/entity"
)

// IngestInput holds the parsed documents of one collection
type IngestInput struct {
	Collection entity.Collection
	Documents  []*entity.KnowledgeDocument
	BatchSize  int
	// Reset replaces the stored collection instead of upserting into it
	Reset bool
}

// IngestReport summarizes an ingestion run
type IngestReport struct {
	Collection entity.Collection
	Embedded   int
	Stored     int64
}

// IngestUsecase defines the interface for building the knowledge base
type IngestUsecase interface {
	// Ingest embeds the documents and saves them to the document store
	Ingest(ctx context.Context, input *IngestInput) (*IngestReport, error)
}
