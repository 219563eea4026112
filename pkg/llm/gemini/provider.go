package gemini

import (
	"context"
	"errors"
	"fmt"

	"presentation-builder-be/pkg/llm"

	"google.golang.org/genai"
)

type GeminiProvider struct {
	client    *genai.Client
	model     string
	maxTokens int
}

var _ llm.LLMProvider = &GeminiProvider{}

func NewGeminiProvider(ctx context.Context, apiKey, model string, maxTokens int) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	return &GeminiProvider{client: client, model: model, maxTokens: maxTokens}, nil
}

func (p *GeminiProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := llm.Apply(opts...)
	system, rest := llm.SplitSystem(history)

	model := p.model
	if options.Model != "" {
		model = options.Model
	}

	config := buildConfig(system, options, p.maxTokens)

	result, err := p.client.Models.GenerateContent(ctx, model, buildContents(rest), config)
	if err != nil {
		return "", mapError(err)
	}

	text := result.Text()
	if text == "" {
		return "", &llm.ProviderError{Provider: "gemini", Err: errors.New("empty response")}
	}
	return text, nil
}

func (p *GeminiProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}}, opts...)
}

func buildConfig(system string, options llm.Options, defaultMax int) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{}

	maxTokens := defaultMax
	if options.MaxTokens > 0 {
		maxTokens = options.MaxTokens
	}
	if maxTokens > 0 {
		config.MaxOutputTokens = int32(maxTokens)
	}
	if options.Temperature != nil {
		temp := float32(*options.Temperature)
		config.Temperature = &temp
	}
	if options.TopP != nil {
		topP := float32(*options.TopP)
		config.TopP = &topP
	}
	if system != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		}
	}
	return config
}

func buildContents(msgs []llm.Message) []*genai.Content {
	out := make([]*genai.Content, len(msgs))
	for i, m := range msgs {
		role := "user"
		if m.Role == llm.RoleAssistant || m.Role == "model" {
			role = "model"
		}
		out[i] = &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: m.Content}},
		}
	}
	return out
}

func mapError(err error) error {
	var apiErr *genai.APIError
	if errors.As(err, &apiErr) {
		return &llm.ProviderError{Provider: "gemini", StatusCode: apiErr.Code, Err: err}
	}
	return &llm.ProviderError{Provider: "gemini", Err: err}
}
