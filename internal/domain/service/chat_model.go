// Package service defines the ports to external services used by the usecases.
package service

import (
	"context"

	"fitbot/internal/domain/entity"

	"github.com/pkg/errors"
)

// Errors returned by language model adapters.
var (
	// ErrModelTimeout is returned when the model call exceeded its deadline.
	ErrModelTimeout = errors.New("language model timed out")
	// ErrModelUnavailable is returned for transient transport or provider failures.
	ErrModelUnavailable = errors.New("language model unavailable")
	// ErrEmptyCompletion is returned when the model produced no text.
	ErrEmptyCompletion = errors.New("language model returned an empty completion")
)

// CompletionRequest is a single chat completion call.
type CompletionRequest struct {
	SystemPrompt string
	UserPrompt   string
	// History holds prior turns, placed between the system and user prompts.
	History     []entity.ChatMessage
	MaxTokens   int
	Temperature float64
}

// ChatModel defines the interface for a text-generation model
type ChatModel interface {
	// Complete returns the generated text for the request.
	Complete(ctx context.Context, req *CompletionRequest) (string, error)
}

// Embedder defines the interface for an embedding model
type Embedder interface {
	// Embed returns one vector per input text, in input order.
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}
