package mock

import (
	"context"
	"errors"
	"sync"

	"presentation-builder-be/pkg/llm"
)

// Response is a canned reply. A non-nil Err is returned instead of Content.
type Response struct {
	Content string
	Err     error
}

// Call records what a caller sent.
type Call struct {
	Messages []llm.Message
	Options  llm.Options
}

// Provider returns canned responses in FIFO order and records every call.
type Provider struct {
	mu        sync.Mutex
	responses []Response
	Calls     []Call
}

var _ llm.LLMProvider = &Provider{}

func NewProvider(responses ...Response) *Provider {
	return &Provider{responses: responses}
}

// Reply is shorthand for a successful canned response.
func Reply(content string) Response { return Response{Content: content} }

// Fail is shorthand for a canned provider failure.
func Fail(msg string) Response {
	return Response{Err: &llm.ProviderError{Provider: "mock", Err: errors.New(msg)}}
}

func (m *Provider) Chat(_ context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, Call{Messages: history, Options: llm.Apply(opts...)})

	if len(m.responses) == 0 {
		return "", &llm.ProviderError{Provider: "mock", Err: errors.New("no canned response left")}
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]
	if resp.Err != nil {
		return "", resp.Err
	}
	return resp.Content, nil
}

func (m *Provider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return m.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}}, opts...)
}

// CallCount is safe to use while other goroutines still call the provider.
func (m *Provider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
