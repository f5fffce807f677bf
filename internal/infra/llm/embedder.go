package llm

import (
	"context"

	"fitbot/internal/domain/service"
	"fitbot/internal/errors"

	"github.com/openai/openai-go/v2"
)

type embedder struct {
	client *Client
}

// NewEmbedder creates the embedding adapter
func NewEmbedder(client *Client) service.Embedder {
	return &embedder{client: client}
}

// Embed returns one vector per text, each call bounded by the embedding timeout
func (e *embedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, e.client.cfg.EmbeddingTimeout)
	defer cancel()

	resp, err := e.client.api.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Model: openai.EmbeddingModel(e.client.cfg.EmbeddingModel),
		Input: openai.EmbeddingNewParamsInputUnion{OfArrayOfStrings: texts},
	})
	if err != nil {
		return nil, mapError(ctx, err, "embeddings")
	}

	if len(resp.Data) != len(texts) {
		return nil, errors.Errorf("embeddings: expected %d vectors, got %d", len(texts), len(resp.Data))
	}

	vectors := make([][]float32, len(texts))
	for _, item := range resp.Data {
		if item.Index < 0 || int(item.Index) >= len(texts) {
			return nil, errors.Errorf("embeddings: index %d out of range", item.Index)
		}

		vec := make([]float32, len(item.Embedding))
		for i, v := range item.Embedding {
			vec[i] = float32(v)
		}
		vectors[item.Index] = vec
	}

	return vectors, nil
}
