package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"presentation-builder-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOllamaProvider_Chat(t *testing.T) {
	var got ollamaChatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]any{
			"model":   "llama3",
			"message": map[string]string{"role": "assistant", "content": `{"title":"x"}`},
			"done":    true,
		})
	}))
	defer server.Close()

	p := NewOllamaProvider(server.URL, "llama3")
	out, err := p.Generate(context.Background(), "plan please", llm.WithTemperature(0.3), llm.WithTopP(0.9))

	require.NoError(t, err)
	assert.Equal(t, `{"title":"x"}`, out)
	assert.Equal(t, "llama3", got.Model)
	assert.False(t, got.Stream)
	require.NotNil(t, got.Options.Temperature)
	assert.Equal(t, 0.3, *got.Options.Temperature)
	assert.Equal(t, 0.9, *got.Options.TopP)
}

func TestOllamaProvider_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer server.Close()

	p := NewOllamaProvider(server.URL, "missing")
	_, err := p.Generate(context.Background(), "hi")

	var perr *llm.ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, http.StatusNotFound, perr.StatusCode)
}
