package anthropic

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"presentation-builder-be/pkg/llm"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const defaultMaxTokens = 8192

type AnthropicProvider struct {
	client    *sdk.Client
	model     string
	maxTokens int
}

var _ llm.LLMProvider = &AnthropicProvider{}

func NewAnthropicProvider(apiKey, model string, maxTokens int, opts ...option.RequestOption) (*AnthropicProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic API key is required")
	}
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	base := []option.RequestOption{option.WithAPIKey(apiKey), option.WithMaxRetries(0)}
	client := sdk.NewClient(append(base, opts...)...)

	return &AnthropicProvider{
		client:    &client,
		model:     model,
		maxTokens: maxTokens,
	}, nil
}

func (p *AnthropicProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := llm.Apply(opts...)
	system, rest := llm.SplitSystem(history)

	model := p.model
	if options.Model != "" {
		model = options.Model
	}
	maxTokens := p.maxTokens
	if options.MaxTokens > 0 {
		maxTokens = options.MaxTokens
	}

	params := sdk.MessageNewParams{
		Model:     sdk.Model(model),
		MaxTokens: int64(maxTokens),
		Messages:  buildMessages(rest),
	}
	if system != "" {
		params.System = []sdk.TextBlockParam{{Text: system}}
	}
	if options.Temperature != nil {
		params.Temperature = sdk.Float(*options.Temperature)
	}
	if options.TopP != nil {
		params.TopP = sdk.Float(*options.TopP)
	}

	msg, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return "", mapError(err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", &llm.ProviderError{Provider: "anthropic", Err: errors.New("no text content in response")}
	}
	return sb.String(), nil
}

func (p *AnthropicProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}}, opts...)
}

func buildMessages(msgs []llm.Message) []sdk.MessageParam {
	out := make([]sdk.MessageParam, len(msgs))
	for i, m := range msgs {
		role := sdk.MessageParamRoleUser
		if m.Role == llm.RoleAssistant {
			role = sdk.MessageParamRoleAssistant
		}
		out[i] = sdk.MessageParam{
			Role:    role,
			Content: []sdk.ContentBlockParamUnion{sdk.NewTextBlock(m.Content)},
		}
	}
	return out
}

func mapError(err error) error {
	var apiErr *sdk.Error
	if errors.As(err, &apiErr) {
		return &llm.ProviderError{Provider: "anthropic", StatusCode: apiErr.StatusCode, Err: err}
	}
	return &llm.ProviderError{Provider: "anthropic", Err: err}
}
