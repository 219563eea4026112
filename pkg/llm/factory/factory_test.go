package factory

import (
	"context"
	"testing"

	"presentation-builder-be/internal/config"
	"presentation-builder-be/pkg/llm/anthropic"
	"presentation-builder-be/pkg/llm/ollama"
	"presentation-builder-be/pkg/llm/openai"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLLMProvider(t *testing.T) {
	ctx := context.Background()

	p, err := NewLLMProvider(ctx, config.AIConfig{Provider: "openrouter", APIKey: "k", Model: "m"})
	require.NoError(t, err)
	assert.IsType(t, &openai.OpenAIProvider{}, p)

	p, err = NewLLMProvider(ctx, config.AIConfig{Provider: "anthropic", AnthropicAPIKey: "k", Model: "m"})
	require.NoError(t, err)
	assert.IsType(t, &anthropic.AnthropicProvider{}, p)

	p, err = NewLLMProvider(ctx, config.AIConfig{Provider: "ollama", Model: "llama3"})
	require.NoError(t, err)
	op := p.(*ollama.OllamaProvider)
	assert.Equal(t, "http://localhost:11434", op.BaseURL)
}

func TestNewLLMProvider_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := NewLLMProvider(ctx, config.AIConfig{Provider: "openai"})
	assert.Error(t, err, "missing key")

	_, err = NewLLMProvider(ctx, config.AIConfig{Provider: "huggingface"})
	assert.EqualError(t, err, "unsupported LLM provider: huggingface")
}
