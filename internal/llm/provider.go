// Package llm is a small provider-neutral client for structured model
// output. Providers are wrapped with recording and retry middleware by
// NewProvider.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates one structured response per request.
type Provider interface {
	// Generate sends req and returns the model output. When req.Schema is
	// set the content has already been validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the configured model identifier.
	ModelID() string
}

// Request is a single-turn or short multi-turn prompt.
type Request struct {
	System      string
	Messages    []Message
	Schema      *Schema // nil means free text
	MaxTokens   int
	Temperature float64 // 0 leaves the provider default
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role of a message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// UserPrompt builds the common request shape: a system prompt and one user
// message.
func UserPrompt(system, user string) Request {
	return Request{
		System:   system,
		Messages: []Message{{Role: RoleUser, Content: user}},
	}
}

// Schema is a named JSON Schema the output must satisfy.
type Schema struct {
	Name        string // kebab-case, e.g. "persona-opinion"
	Description string
	Definition  map[string]any
}

// Stop reasons, normalised across providers.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

// Response is the model output.
type Response struct {
	Content    json.RawMessage
	Usage      Usage
	Model      string
	StopReason string
}

// Decode unmarshals the content into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Content, v); err != nil {
		return &ErrInvalidResponse{Content: r.Content, Err: err}
	}
	return nil
}

// Usage is token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

type purposeKey struct{}

// WithPurpose labels calls made with ctx, e.g. "persona-refine". The label
// ends up on the recorded request event.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the label set by WithPurpose, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey{}).(string); ok && v != "" {
		return v
	}
	return "unknown"
}
