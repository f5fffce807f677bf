// Package model contains the GORM models of the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

// KnowledgeDocumentModel is the GORM-specific struct for the 'knowledge_documents' table.
// Embeddings are stored in a pgvector column so similarity ranking runs in the database.
// The column is unsized so the embedding model can change without a schema change.
type KnowledgeDocumentModel struct {
	ID         uuid.UUID         `gorm:"type:uuid;primary_key"`
	Collection string            `gorm:"type:varchar(32);not null;index"`
	Title      string            `gorm:"type:varchar(255);not null"`
	Content    string            `gorm:"type:text;not null"`
	Metadata   datatypes.JSONMap `gorm:"type:jsonb"`
	Embedding  pgvector.Vector   `gorm:"type:vector;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (KnowledgeDocumentModel) TableName() string {
	return "knowledge_documents"
}
