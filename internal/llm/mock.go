package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockReply is one canned answer for MockProvider.
type MockReply struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider replays canned replies in order and records every request.
// With no replies left it reports the provider as unavailable.
type MockProvider struct {
	mu      sync.Mutex
	replies []MockReply
	calls   []Request
}

func NewMockProvider(replies ...MockReply) *MockProvider {
	return &MockProvider{replies: replies}
}

// MockJSON is shorthand for a successful reply carrying v as JSON.
func MockJSON(v any) MockReply {
	b, err := json.Marshal(v)
	if err != nil {
		return MockReply{Err: err}
	}
	return MockReply{Content: b, Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}}
}

func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	m.calls = append(m.calls, req)
	if len(m.replies) == 0 {
		m.mu.Unlock()
		return nil, &ErrProviderUnavailable{}
	}
	r := m.replies[0]
	m.replies = m.replies[1:]
	m.mu.Unlock()

	if r.Err != nil {
		return nil, r.Err
	}
	return finish(req, &Response{
		Content:    r.Content,
		Usage:      r.Usage,
		Model:      ProviderMock,
		StopReason: StopEnd,
	})
}

func (m *MockProvider) ModelID() string { return ProviderMock }

// Enqueue appends replies.
func (m *MockProvider) Enqueue(replies ...MockReply) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replies = append(m.replies, replies...)
}

// Calls returns a copy of the requests seen so far.
func (m *MockProvider) Calls() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Request(nil), m.calls...)
}
