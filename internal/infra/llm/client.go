// Package llm adapts an OpenAI-compatible API to the chat model and embedder ports.
package llm

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"fitbot/config"
	"fitbot/internal/domain/service"
	"fitbot/internal/errors"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

const (
	defaultChatModel        = "gpt-4o-mini"
	defaultEmbeddingModel   = "text-embedding-ada-002"
	defaultEmbeddingTimeout = 10 * time.Second
)

// Client wraps the OpenAI SDK client shared by the chat model and the embedder
type Client struct {
	api    openai.Client
	logger *slog.Logger
	cfg    config.LLMConfig
}

// NewClient creates an OpenAI client from the llm config section
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	if cfg.LLM == nil {
		return nil, errors.New("llm configuration is required")
	}

	llmCfg := *cfg.LLM
	if llmCfg.ChatModel == "" {
		llmCfg.ChatModel = defaultChatModel
	}
	if llmCfg.EmbeddingModel == "" {
		llmCfg.EmbeddingModel = defaultEmbeddingModel
	}
	if llmCfg.EmbeddingTimeout <= 0 {
		llmCfg.EmbeddingTimeout = defaultEmbeddingTimeout
	}

	if llmCfg.APIKey == "" {
		logger.Warn("LLM API key is empty, model calls will be rejected by the provider")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(llmCfg.APIKey),
		// Retries are owned by the plan chain.
		option.WithMaxRetries(0),
	}
	if llmCfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(llmCfg.BaseURL))
	}

	return &Client{
		api:    openai.NewClient(opts...),
		logger: logger,
		cfg:    llmCfg,
	}, nil
}

// mapError converts SDK and transport failures into the port sentinels.
func mapError(ctx context.Context, err error, op string) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return errors.Wrap(service.ErrModelTimeout, op)
	}
	if errors.Is(err, context.Canceled) {
		return errors.Wrap(err, op)
	}

	if apiErr, ok := errors.AsType[*openai.Error](err); ok {
		switch {
		case apiErr.StatusCode == http.StatusTooManyRequests, apiErr.StatusCode >= http.StatusInternalServerError:
			return errors.Wrapf(service.ErrModelUnavailable, "%s: status %d", op, apiErr.StatusCode)
		default:
			return errors.Wrapf(err, "%s: status %d", op, apiErr.StatusCode)
		}
	}

	return errors.Wrapf(service.ErrModelUnavailable, "%s: %v", op, err)
}
