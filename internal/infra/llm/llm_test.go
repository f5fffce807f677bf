package llm

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fitbot/config"
	"fitbot/internal/domain/entity"
	"fitbot/internal/domain/service"
	"fitbot/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(&config.Config{LLM: &config.LLMConfig{
		APIKey:           "test-key",
		BaseURL:          server.URL + "/v1/",
		EmbeddingTimeout: time.Second,
	}}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return client
}

func TestChatModel_Complete(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"c1","object":"chat.completion","created":1,"model":"gpt-4o-mini",
			"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"## CALORIE SUMMARY"}}],
			"usage":{"prompt_tokens":10,"completion_tokens":5,"total_tokens":15}}`)
	})

	text, err := NewChatModel(client).Complete(context.Background(), &service.CompletionRequest{
		SystemPrompt: "system",
		UserPrompt:   "user",
		History:      []entity.ChatMessage{{Role: entity.ChatRoleAssistant, Content: "earlier"}},
		MaxTokens:    1500,
		Temperature:  0.3,
	})

	require.NoError(t, err)
	assert.Equal(t, "## CALORIE SUMMARY", text)
	assert.Equal(t, "gpt-4o-mini", body["model"])
	assert.EqualValues(t, 1500, body["max_tokens"])

	messages, ok := body["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 3)
	assert.Equal(t, "system", messages[0].(map[string]any)["role"])
	assert.Equal(t, "assistant", messages[1].(map[string]any)["role"])
	assert.Equal(t, "user", messages[2].(map[string]any)["role"])
}

func TestChatModel_Complete_EmptyChoice(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"c1","object":"chat.completion","created":1,"model":"gpt-4o-mini","choices":[]}`)
	})

	_, err := NewChatModel(client).Complete(context.Background(), &service.CompletionRequest{UserPrompt: "hi"})

	assert.True(t, errors.Is(err, service.ErrEmptyCompletion))
}

func TestChatModel_Complete_ServerErrorIsUnavailable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = io.WriteString(w, `{"error":{"message":"overloaded","type":"server_error"}}`)
	})

	_, err := NewChatModel(client).Complete(context.Background(), &service.CompletionRequest{UserPrompt: "hi"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrModelUnavailable))
}

func TestChatModel_Complete_DeadlineIsTimeout(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewChatModel(client).Complete(ctx, &service.CompletionRequest{UserPrompt: "hi"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrModelTimeout))
}

func TestEmbedder_Embed_OrdersByIndex(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/embeddings"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"object":"list","model":"text-embedding-ada-002",
			"data":[{"object":"embedding","index":1,"embedding":[0.5,0.5]},{"object":"embedding","index":0,"embedding":[1,0]}],
			"usage":{"prompt_tokens":2,"total_tokens":2}}`)
	})

	vectors, err := NewEmbedder(client).Embed(context.Background(), []string{"a", "b"})

	require.NoError(t, err)
	assert.Equal(t, [][]float32{{1, 0}, {0.5, 0.5}}, vectors)
}

func TestEmbedder_Embed_CountMismatch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"object":"list","model":"m","data":[],"usage":{"prompt_tokens":0,"total_tokens":0}}`)
	})

	_, err := NewEmbedder(client).Embed(context.Background(), []string{"a"})

	assert.Error(t, err)
}

func TestNewClient_RequiresSection(t *testing.T) {
	_, err := NewClient(&config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.Error(t, err)
}
