package llm

import (
	"context"
	"log/slog"
	"time"

	"fitbot/internal/domain/entity"
	"fitbot/internal/domain/service"
	"fitbot/internal/errors"

	"github.com/openai/openai-go/v2"
)

type chatModel struct {
	client *Client
}

// NewChatModel creates the chat completion adapter
func NewChatModel(client *Client) service.ChatModel {
	return &chatModel{client: client}
}

// Complete sends one chat completion request
func (m *chatModel) Complete(ctx context.Context, req *service.CompletionRequest) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.History)+2)
	messages = append(messages, openai.SystemMessage(req.SystemPrompt))
	for _, turn := range req.History {
		switch turn.Role {
		case entity.ChatRoleAssistant:
			messages = append(messages, openai.AssistantMessage(turn.Content))
		default:
			messages = append(messages, openai.UserMessage(turn.Content))
		}
	}
	messages = append(messages, openai.UserMessage(req.UserPrompt))

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(m.client.cfg.ChatModel),
		Messages: messages,
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}

	start := time.Now()
	chat, err := m.client.api.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", mapError(ctx, err, "chat completion")
	}

	m.client.logger.Debug("Chat completion finished",
		slog.String("model", chat.Model),
		slog.Int64("prompt_tokens", chat.Usage.PromptTokens),
		slog.Int64("completion_tokens", chat.Usage.CompletionTokens),
		slog.Duration("latency", time.Since(start)),
	)

	if len(chat.Choices) == 0 || chat.Choices[0].Message.Content == "" {
		return "", errors.WithStack(service.ErrEmptyCompletion)
	}

	return chat.Choices[0].Message.Content, nil
}
