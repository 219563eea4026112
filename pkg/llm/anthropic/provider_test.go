package anthropic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"presentation-builder-be/pkg/llm"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := NewAnthropicProvider("test-key", "claude-sonnet-4-20250514", 0, option.WithBaseURL(server.URL))
	require.NoError(t, err)
	return p
}

func TestAnthropicProvider_Chat(t *testing.T) {
	var body map[string]any
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":          "msg_test",
			"type":        "message",
			"role":        "assistant",
			"content":     []map[string]any{{"type": "text", "text": `[{"question":"q"}]`}},
			"model":       "claude-sonnet-4-20250514",
			"stop_reason": "end_turn",
			"usage":       map[string]any{"input_tokens": 10, "output_tokens": 5},
		})
	})

	out, err := p.Chat(context.Background(), []llm.Message{
		{Role: llm.RoleSystem, Content: "assistant pédagogique"},
		{Role: llm.RoleUser, Content: "quiz"},
	}, llm.WithTemperature(0.7))

	require.NoError(t, err)
	assert.Equal(t, `[{"question":"q"}]`, out)
	assert.InDelta(t, 0.7, body["temperature"], 1e-9)
	assert.EqualValues(t, defaultMaxTokens, body["max_tokens"])

	system := body["system"].([]any)
	require.Len(t, system, 1)
	assert.Equal(t, "assistant pédagogique", system[0].(map[string]any)["text"])
	assert.Len(t, body["messages"], 1)
}

func TestAnthropicProvider_APIError(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"type":  "error",
			"error": map[string]any{"type": "invalid_request_error", "message": "bad"},
		})
	})

	_, err := p.Generate(context.Background(), "plan")

	var perr *llm.ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, http.StatusBadRequest, perr.StatusCode)
}
