package impl

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"fitbot/internal/domain/entity"
	"fitbot/internal/domain/repository"
	"fitbot/internal/domain/service"
	"fitbot/internal/errors"
	mockRepo "fitbot/internal/mocks/repository"
	mockService "fitbot/internal/mocks/service"
	"fitbot/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleDocuments(n int) []*entity.KnowledgeDocument {
	docs := make([]*entity.KnowledgeDocument, n)
	for i := range docs {
		docs[i] = &entity.KnowledgeDocument{
			ID:         fmt.Sprintf("doc-%d", i),
			Collection: entity.CollectionExercises,
			Title:      fmt.Sprintf("Exercise %d", i),
			Content:    fmt.Sprintf("Exercise %d. Type: Strength", i),
		}
	}

	return docs
}

func vectorsFor(texts []string) [][]float32 {
	vectors := make([][]float32, len(texts))
	for i := range texts {
		vectors[i] = []float32{float32(len(texts[i])), 1}
	}

	return vectors
}

func TestIngestService_Ingest_BatchesEmbeddings(t *testing.T) {
	embedder := mockService.NewMockEmbedder(t)
	repo := mockRepo.NewMockDocumentRepository(t)
	svc := NewIngestService(testLogger(), embedder, repo, nil)
	ctx := context.Background()
	docs := sampleDocuments(5)

	var calls atomic.Int32
	embedder.EXPECT().Embed(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, texts []string) ([][]float32, error) {
			calls.Add(1)
			assert.LessOrEqual(t, len(texts), 2)

			return vectorsFor(texts), nil
		}).Times(3)
	repo.EXPECT().SaveDocuments(ctx, docs).Return(nil).Once()
	repo.EXPECT().CountByCollection(ctx, entity.CollectionExercises).Return(int64(5), nil).Once()

	report, err := svc.Ingest(ctx, &usecase.IngestInput{
		Collection: entity.CollectionExercises,
		Documents:  docs,
		BatchSize:  2,
	})

	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, 5, report.Embedded)
	assert.Equal(t, int64(5), report.Stored)
	for _, doc := range docs {
		assert.Len(t, doc.Embedding, 2)
	}
}

func TestIngestService_Ingest_DefaultBatchSize(t *testing.T) {
	embedder := mockService.NewMockEmbedder(t)
	repo := mockRepo.NewMockDocumentRepository(t)
	svc := NewIngestService(testLogger(), embedder, repo, nil)
	ctx := context.Background()
	docs := sampleDocuments(3)

	embedder.EXPECT().Embed(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, texts []string) ([][]float32, error) {
			return vectorsFor(texts), nil
		}).Once()
	repo.EXPECT().SaveDocuments(ctx, docs).Return(nil).Once()
	repo.EXPECT().CountByCollection(ctx, entity.CollectionExercises).Return(int64(3), nil).Once()

	_, err := svc.Ingest(ctx, &usecase.IngestInput{Collection: entity.CollectionExercises, Documents: docs})

	require.NoError(t, err)
}

func TestIngestService_Ingest_ResetRunsInTransaction(t *testing.T) {
	embedder := mockService.NewMockEmbedder(t)
	repo := mockRepo.NewMockDocumentRepository(t)
	txRepo := mockRepo.NewMockDocumentRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	svc := NewIngestService(testLogger(), embedder, repo, txManager)
	ctx := context.Background()
	docs := sampleDocuments(2)

	embedder.EXPECT().Embed(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, texts []string) ([][]float32, error) {
			return vectorsFor(texts), nil
		}).Once()
	txManager.EXPECT().Execute(ctx, mock.Anything).RunAndReturn(
		func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).Once()
	factory.EXPECT().NewDocumentRepository().Return(txRepo).Once()
	txRepo.EXPECT().DeleteCollection(ctx, entity.CollectionExercises).Return(nil).Once()
	txRepo.EXPECT().SaveDocuments(ctx, docs).Return(nil).Once()
	repo.EXPECT().CountByCollection(ctx, entity.CollectionExercises).Return(int64(2), nil).Once()

	report, err := svc.Ingest(ctx, &usecase.IngestInput{
		Collection: entity.CollectionExercises,
		Documents:  docs,
		Reset:      true,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(2), report.Stored)
}

func TestIngestService_Ingest_ResetWithoutTransactions(t *testing.T) {
	embedder := mockService.NewMockEmbedder(t)
	repo := mockRepo.NewMockDocumentRepository(t)
	svc := NewIngestService(testLogger(), embedder, repo, nil)
	ctx := context.Background()
	docs := sampleDocuments(1)

	embedder.EXPECT().Embed(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, texts []string) ([][]float32, error) {
			return vectorsFor(texts), nil
		}).Once()
	repo.EXPECT().DeleteCollection(ctx, entity.CollectionExercises).Return(nil).Once()
	repo.EXPECT().SaveDocuments(ctx, docs).Return(nil).Once()
	repo.EXPECT().CountByCollection(ctx, entity.CollectionExercises).Return(int64(1), nil).Once()

	_, err := svc.Ingest(ctx, &usecase.IngestInput{
		Collection: entity.CollectionExercises,
		Documents:  docs,
		Reset:      true,
	})

	require.NoError(t, err)
}

func TestIngestService_Ingest_EmbedError(t *testing.T) {
	embedder := mockService.NewMockEmbedder(t)
	repo := mockRepo.NewMockDocumentRepository(t)
	svc := NewIngestService(testLogger(), embedder, repo, nil)

	embedder.EXPECT().Embed(mock.Anything, mock.Anything).Return(nil, service.ErrModelUnavailable).Once()

	report, err := svc.Ingest(context.Background(), &usecase.IngestInput{
		Collection: entity.CollectionExercises,
		Documents:  sampleDocuments(2),
	})

	require.Error(t, err)
	assert.Nil(t, report)
	assert.True(t, errors.Is(err, service.ErrModelUnavailable))
}

func TestIngestService_Ingest_VectorCountMismatch(t *testing.T) {
	embedder := mockService.NewMockEmbedder(t)
	repo := mockRepo.NewMockDocumentRepository(t)
	svc := NewIngestService(testLogger(), embedder, repo, nil)

	embedder.EXPECT().Embed(mock.Anything, mock.Anything).Return([][]float32{{1, 0}}, nil).Once()

	_, err := svc.Ingest(context.Background(), &usecase.IngestInput{
		Collection: entity.CollectionExercises,
		Documents:  sampleDocuments(2),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 2 vectors, got 1")
}

func TestIngestService_Ingest_UnknownCollection(t *testing.T) {
	embedder := mockService.NewMockEmbedder(t)
	repo := mockRepo.NewMockDocumentRepository(t)
	svc := NewIngestService(testLogger(), embedder, repo, nil)

	_, err := svc.Ingest(context.Background(), &usecase.IngestInput{
		Collection: entity.Collection("recipes"),
		Documents:  sampleDocuments(1),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrUnknownCollection))
}

func TestIngestService_Ingest_SaveError(t *testing.T) {
	embedder := mockService.NewMockEmbedder(t)
	repo := mockRepo.NewMockDocumentRepository(t)
	svc := NewIngestService(testLogger(), embedder, repo, nil)
	ctx := context.Background()
	docs := sampleDocuments(1)
	saveErr := errors.New("connection refused")

	embedder.EXPECT().Embed(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, texts []string) ([][]float32, error) {
			return vectorsFor(texts), nil
		}).Once()
	repo.EXPECT().SaveDocuments(ctx, docs).Return(saveErr).Once()

	_, err := svc.Ingest(ctx, &usecase.IngestInput{Collection: entity.CollectionExercises, Documents: docs})

	require.ErrorIs(t, err, saveErr)
}
