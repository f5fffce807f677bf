// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"fitbot/internal/domain/entity"
	domainerrors "fitbot/internal/domain/errors"
	"fitbot/internal/domain/repository"
	"fitbot/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const saveBatchSize = 100

// documentRepository implements the repository.DocumentRepository interface.
type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository is the constructor for documentRepository.
// The returned repository also implements repository.SimilarityRepository.
func NewDocumentRepository(db *gorm.DB) repository.DocumentRepository {
	return &documentRepository{
		db: db,
	}
}

// SaveDocuments upserts documents by ID.
func (repo *documentRepository) SaveDocuments(ctx context.Context, docs []*entity.KnowledgeDocument) error {
	if len(docs) == 0 {
		return nil
	}

	models := make([]*model.KnowledgeDocumentModel, 0, len(docs))
	for _, doc := range docs {
		m, err := fromDocumentDomain(doc)
		if err != nil {
			return err
		}
		models = append(models, m)
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"collection", "title", "content", "metadata", "embedding", "updated_at"}),
		}).
		CreateInBatches(models, saveBatchSize).Error
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInternalError.WrapMessage("missing required document information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save knowledge documents")
	}

	return nil
}

// ListByCollection returns every document of a collection.
func (repo *documentRepository) ListByCollection(ctx context.Context, collection entity.Collection) ([]*entity.KnowledgeDocument, error) {
	var models []*model.KnowledgeDocumentModel

	if err := repo.db.WithContext(ctx).
		Where("collection = ?", collection.String()).
		Order("title ASC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list knowledge documents")
	}

	docs := make([]*entity.KnowledgeDocument, 0, len(models))
	for _, m := range models {
		docs = append(docs, toDocumentDomain(m))
	}

	return docs, nil
}

// DeleteCollection removes every document of a collection.
func (repo *documentRepository) DeleteCollection(ctx context.Context, collection entity.Collection) error {
	if err := repo.db.WithContext(ctx).
		Where("collection = ?", collection.String()).
		Delete(&model.KnowledgeDocumentModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete knowledge documents")
	}

	return nil
}

// CountByCollection returns the number of stored documents of a collection.
func (repo *documentRepository) CountByCollection(ctx context.Context, collection entity.Collection) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.KnowledgeDocumentModel{}).
		Where("collection = ?", collection.String()).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count knowledge documents")
	}

	return count, nil
}

type scoredDocument struct {
	Content string
	Score   float64
}

// SearchSimilar ranks a collection by cosine distance to vector inside PostgreSQL.
// Documents embedded with a different dimension are skipped.
func (repo *documentRepository) SearchSimilar(
	ctx context.Context,
	collection entity.Collection,
	vector []float32,
	k int,
) ([]entity.Snippet, error) {
	if k <= 0 || len(vector) == 0 {
		return nil, nil
	}

	var rows []scoredDocument
	if err := similarityQuery(repo.db.WithContext(ctx), collection, vector, k).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search knowledge documents")
	}

	snippets := make([]entity.Snippet, 0, len(rows))
	for _, row := range rows {
		snippets = append(snippets, entity.Snippet{
			Collection: collection,
			Text:       row.Content,
			Score:      row.Score,
		})
	}

	return snippets, nil
}

func similarityQuery(db *gorm.DB, collection entity.Collection, vector []float32, k int) *gorm.DB {
	query := pgvector.NewVector(vector)

	return db.Model(&model.KnowledgeDocumentModel{}).
		Select("content, 1 - (embedding <=> ?) AS score", query).
		Where("collection = ?", collection.String()).
		Where("vector_dims(embedding) = ?", len(vector)).
		Clauses(clause.OrderBy{
			Expression: clause.Expr{SQL: "embedding <=> ?", Vars: []any{query}},
		}).
		Limit(k)
}

// AutoMigrate enables pgvector and creates or updates the knowledge document table.
func AutoMigrate(ctx context.Context, db *gorm.DB) error {
	tx := db.WithContext(ctx)
	if err := tx.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		return errors.Wrap(err, "failed to enable pgvector")
	}

	return errors.Wrap(tx.AutoMigrate(&model.KnowledgeDocumentModel{}), "failed to migrate knowledge documents")
}

func fromDocumentDomain(doc *entity.KnowledgeDocument) (*model.KnowledgeDocumentModel, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid document id %q", doc.ID)
	}

	metadata := make(datatypes.JSONMap, len(doc.Metadata))
	for k, v := range doc.Metadata {
		metadata[k] = v
	}

	return &model.KnowledgeDocumentModel{
		ID:         id,
		Collection: doc.Collection.String(),
		Title:      doc.Title,
		Content:    doc.Content,
		Metadata:   metadata,
		Embedding:  pgvector.NewVector(doc.Embedding),
	}, nil
}

func toDocumentDomain(m *model.KnowledgeDocumentModel) *entity.KnowledgeDocument {
	metadata := make(map[string]string, len(m.Metadata))
	for k, v := range m.Metadata {
		if s, ok := v.(string); ok {
			metadata[k] = s
		}
	}

	return &entity.KnowledgeDocument{
		ID:         m.ID.String(),
		Collection: entity.Collection(m.Collection),
		Title:      m.Title,
		Content:    m.Content,
		Metadata:   metadata,
		Embedding:  m.Embedding.Slice(),
	}
}
