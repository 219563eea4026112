package factory

import (
	"context"
	"fmt"

	"presentation-builder-be/internal/config"
	"presentation-builder-be/pkg/llm"
	"presentation-builder-be/pkg/llm/anthropic"
	"presentation-builder-be/pkg/llm/gemini"
	"presentation-builder-be/pkg/llm/ollama"
	"presentation-builder-be/pkg/llm/openai"
)

func NewLLMProvider(ctx context.Context, cfg config.AIConfig) (llm.LLMProvider, error) {
	switch cfg.Provider {
	case "openrouter":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = openai.OpenRouterBaseURL
		}
		return openai.NewOpenAIProvider("openrouter", cfg.APIKey, baseURL, cfg.Model, cfg.MaxTokens)
	case "openai":
		return openai.NewOpenAIProvider("openai", cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.MaxTokens)
	case "anthropic":
		key := cfg.AnthropicAPIKey
		if key == "" {
			key = cfg.APIKey
		}
		return anthropic.NewAnthropicProvider(key, cfg.Model, cfg.MaxTokens)
	case "gemini":
		key := cfg.GeminiAPIKey
		if key == "" {
			key = cfg.APIKey
		}
		return gemini.NewGeminiProvider(ctx, key, cfg.Model, cfg.MaxTokens)
	case "ollama":
		baseURL := cfg.OllamaBaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
