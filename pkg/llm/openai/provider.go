package openai

import (
	"context"
	"errors"
	"fmt"

	"presentation-builder-be/pkg/llm"

	goopenai "github.com/sashabaranov/go-openai"
)

const OpenRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenAIProvider talks to OpenAI or any OpenAI-compatible API (OpenRouter)
// selected through the base URL.
type OpenAIProvider struct {
	client    *goopenai.Client
	model     string
	maxTokens int
	name      string
}

var _ llm.LLMProvider = &OpenAIProvider{}

func NewOpenAIProvider(name, apiKey, baseURL, model string, maxTokens int) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%s API key is required", name)
	}

	config := goopenai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}

	return &OpenAIProvider{
		client:    goopenai.NewClientWithConfig(config),
		model:     model,
		maxTokens: maxTokens,
		name:      name,
	}, nil
}

func (p *OpenAIProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := llm.Apply(opts...)

	req := goopenai.ChatCompletionRequest{
		Model:    p.model,
		Messages: buildMessages(history),
	}
	if options.Model != "" {
		req.Model = options.Model
	}
	if options.Temperature != nil {
		req.Temperature = float32(*options.Temperature)
	}
	if options.TopP != nil {
		req.TopP = float32(*options.TopP)
	}
	if options.MaxTokens > 0 {
		req.MaxTokens = options.MaxTokens
	} else if p.maxTokens > 0 {
		req.MaxTokens = p.maxTokens
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", p.mapError(err)
	}
	if len(resp.Choices) == 0 {
		return "", &llm.ProviderError{Provider: p.name, Err: errors.New("no choices in response")}
	}

	return resp.Choices[0].Message.Content, nil
}

func (p *OpenAIProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}}, opts...)
}

func buildMessages(history []llm.Message) []goopenai.ChatCompletionMessage {
	messages := make([]goopenai.ChatCompletionMessage, 0, len(history))
	for _, m := range history {
		role := goopenai.ChatMessageRoleUser
		switch m.Role {
		case llm.RoleSystem:
			role = goopenai.ChatMessageRoleSystem
		case llm.RoleAssistant, "model":
			role = goopenai.ChatMessageRoleAssistant
		}
		messages = append(messages, goopenai.ChatCompletionMessage{
			Role:    role,
			Content: m.Content,
		})
	}
	return messages
}

func (p *OpenAIProvider) mapError(err error) error {
	var apiErr *goopenai.APIError
	if errors.As(err, &apiErr) {
		return &llm.ProviderError{Provider: p.name, StatusCode: apiErr.HTTPStatusCode, Err: err}
	}
	var reqErr *goopenai.RequestError
	if errors.As(err, &reqErr) {
		return &llm.ProviderError{Provider: p.name, StatusCode: reqErr.HTTPStatusCode, Err: err}
	}
	return &llm.ProviderError{Provider: p.name, Err: err}
}
