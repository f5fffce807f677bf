// Package redis stores knowledge documents in Redis hashes, one hash per collection.
package redis

import (
	"context"
	"encoding/json"
	"log/slog"

	"fitbot/config"
	"fitbot/internal/domain/entity"
	"fitbot/internal/domain/lifecycle"
	"fitbot/internal/domain/repository"
	"fitbot/internal/errors"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const defaultKeyPrefix = "fitbot:kb"

// storedDocument is the JSON value of one hash field.
type storedDocument struct {
	Title     string            `json:"title"`
	Content   string            `json:"content"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	Embedding []float32         `json:"embedding"`
}

type documentRepository struct {
	client goredis.Cmdable
	prefix string
}

// Dial creates the Redis client without lifecycle hooks, for command line tools.
func Dial(cfg *config.Config) (*goredis.Client, error) {
	if cfg.Redis == nil || cfg.Redis.Addr == "" {
		return nil, errors.New("redis configuration is required when retrieval.store is redis")
	}

	return goredis.NewClient(&goredis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}), nil
}

// NewClient creates the Redis client and registers its lifecycle hooks
func NewClient(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (*goredis.Client, error) {
	client, err := Dial(cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}
			logger.Info("Connected to Redis", slog.String("addr", cfg.Redis.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

// NewDocumentRepository creates a Redis-backed document repository
func NewDocumentRepository(client goredis.Cmdable, cfg *config.Config) repository.DocumentRepository {
	prefix := defaultKeyPrefix
	if cfg.Redis != nil && cfg.Redis.KeyPrefix != "" {
		prefix = cfg.Redis.KeyPrefix
	}

	return &documentRepository{
		client: client,
		prefix: prefix,
	}
}

func (repo *documentRepository) key(collection entity.Collection) string {
	return repo.prefix + ":" + collection.String()
}

// SaveDocuments writes documents as hash fields keyed by document ID
func (repo *documentRepository) SaveDocuments(ctx context.Context, docs []*entity.KnowledgeDocument) error {
	if len(docs) == 0 {
		return nil
	}

	fields := make(map[string]map[string]any)
	for _, doc := range docs {
		value, err := encodeDocument(doc)
		if err != nil {
			return err
		}

		key := repo.key(doc.Collection)
		if fields[key] == nil {
			fields[key] = make(map[string]any)
		}
		fields[key][doc.ID] = value
	}

	_, err := repo.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		for key, values := range fields {
			pipe.HSet(ctx, key, values)
		}

		return nil
	})

	return errors.Wrap(err, "failed to save knowledge documents")
}

// ListByCollection decodes every document of a collection
func (repo *documentRepository) ListByCollection(ctx context.Context, collection entity.Collection) ([]*entity.KnowledgeDocument, error) {
	values, err := repo.client.HGetAll(ctx, repo.key(collection)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list knowledge documents")
	}

	docs := make([]*entity.KnowledgeDocument, 0, len(values))
	for id, raw := range values {
		doc, err := decodeDocument(collection, id, raw)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

// DeleteCollection drops the collection hash
func (repo *documentRepository) DeleteCollection(ctx context.Context, collection entity.Collection) error {
	return errors.Wrap(repo.client.Del(ctx, repo.key(collection)).Err(), "failed to delete knowledge documents")
}

// CountByCollection returns the number of hash fields of the collection
func (repo *documentRepository) CountByCollection(ctx context.Context, collection entity.Collection) (int64, error) {
	count, err := repo.client.HLen(ctx, repo.key(collection)).Result()
	if err != nil {
		return 0, errors.Wrap(err, "failed to count knowledge documents")
	}

	return count, nil
}

func encodeDocument(doc *entity.KnowledgeDocument) (string, error) {
	raw, err := json.Marshal(storedDocument{
		Title:     doc.Title,
		Content:   doc.Content,
		Metadata:  doc.Metadata,
		Embedding: doc.Embedding,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to encode document %s", doc.ID)
	}

	return string(raw), nil
}

func decodeDocument(collection entity.Collection, id, raw string) (*entity.KnowledgeDocument, error) {
	var stored storedDocument
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return nil, errors.Wrapf(err, "failed to decode document %s", id)
	}

	return &entity.KnowledgeDocument{
		ID:         id,
		Collection: collection,
		Title:      stored.Title,
		Content:    stored.Content,
		Metadata:   stored.Metadata,
		Embedding:  stored.Embedding,
	}, nil
}
