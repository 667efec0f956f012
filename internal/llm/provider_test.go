package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/madboat/madboat/internal/store"
)

var opinionSchema = &Schema{
	Name: "test-opinion",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"category":   map[string]any{"type": "string", "enum": []string{"analitico", "criativo"}},
			"confidence": map[string]any{"type": "number", "minimum": 0, "maximum": 100},
		},
		"required":             []string{"category", "confidence"},
		"additionalProperties": false,
	},
}

func serve(t *testing.T, status int, body any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func anthropicMessage(text, stop string) map[string]any {
	return map[string]any{
		"id":          "msg_test",
		"type":        "message",
		"role":        "assistant",
		"content":     []map[string]any{{"type": "text", "text": text}},
		"model":       "claude-haiku-4-5-20251001",
		"stop_reason": stop,
		"usage":       map[string]any{"input_tokens": 50, "output_tokens": 30},
	}
}

func TestAnthropicGenerate(t *testing.T) {
	srv := serve(t, http.StatusOK, anthropicMessage(`{"category":"analitico","confidence":70}`, "end_turn"))
	p, err := newAnthropicProvider(AnthropicConfig{APIKey: "k", Model: "claude-haiku", BaseURL: srv.URL})
	require.NoError(t, err)
	assert.Equal(t, "claude-haiku-4-5-20251001", p.ModelID())

	req := UserPrompt("classifique", "gosto de dados")
	req.Schema = opinionSchema
	resp, err := p.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, StopEnd, resp.StopReason)
	assert.Equal(t, Usage{InputTokens: 50, OutputTokens: 30, TotalTokens: 80}, resp.Usage)

	var out struct {
		Category   string
		Confidence float64
	}
	require.NoError(t, resp.Decode(&out))
	assert.Equal(t, "analitico", out.Category)
}

func TestAnthropicSchemaMismatch(t *testing.T) {
	srv := serve(t, http.StatusOK, anthropicMessage(`{"category":"pirata","confidence":70}`, "end_turn"))
	p, err := newAnthropicProvider(AnthropicConfig{APIKey: "k", Model: "m", BaseURL: srv.URL})
	require.NoError(t, err)

	req := UserPrompt("", "x")
	req.Schema = opinionSchema
	_, err = p.Generate(context.Background(), req)
	var inv *ErrInvalidResponse
	require.ErrorAs(t, err, &inv)
	assert.JSONEq(t, `{"category":"pirata","confidence":70}`, string(inv.Content))
}

func TestAnthropicTruncated(t *testing.T) {
	srv := serve(t, http.StatusOK, anthropicMessage(`{"category":"anal`, "max_tokens"))
	p, err := newAnthropicProvider(AnthropicConfig{APIKey: "k", Model: "m", BaseURL: srv.URL})
	require.NoError(t, err)

	req := UserPrompt("", "x")
	req.Schema = opinionSchema
	_, err = p.Generate(context.Background(), req)
	var trunc *ErrMaxTokensExceeded
	assert.ErrorAs(t, err, &trunc)
}

func TestAnthropicStatusErrors(t *testing.T) {
	tests := []struct {
		status int
		check  func(t *testing.T, err error)
	}{
		{http.StatusTooManyRequests, func(t *testing.T, err error) {
			var rl *ErrRateLimit
			assert.ErrorAs(t, err, &rl)
		}},
		{http.StatusInternalServerError, func(t *testing.T, err error) {
			var un *ErrProviderUnavailable
			assert.ErrorAs(t, err, &un)
		}},
	}
	for _, tt := range tests {
		srv := serve(t, tt.status, map[string]any{
			"type":  "error",
			"error": map[string]any{"type": "api_error", "message": "nope"},
		})
		p, err := newAnthropicProvider(AnthropicConfig{APIKey: "k", Model: "m", BaseURL: srv.URL})
		require.NoError(t, err)
		_, err = p.Generate(context.Background(), UserPrompt("", "x"))
		require.Error(t, err)
		tt.check(t, err)
	}
}

func TestOpenAIGenerate(t *testing.T) {
	srv := serve(t, http.StatusOK, map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1234567890,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": `{"category":"criativo","confidence":55}`},
			"finish_reason": "stop",
		}},
		"usage": map[string]any{"prompt_tokens": 40, "completion_tokens": 25, "total_tokens": 65},
	})
	p, err := newOpenAIProvider(OpenAIConfig{APIKey: "k", Model: "gpt-4o-mini", BaseURL: srv.URL + "/v1"})
	require.NoError(t, err)

	req := UserPrompt("classifique", "ideias novas")
	req.Schema = opinionSchema
	resp, err := p.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", resp.Model)
	assert.Equal(t, 65, resp.Usage.TotalTokens)
	assert.JSONEq(t, `{"category":"criativo","confidence":55}`, string(resp.Content))
}

func TestOpenAIRateLimit(t *testing.T) {
	srv := serve(t, http.StatusTooManyRequests, map[string]any{
		"error": map[string]any{"message": "slow down", "type": "rate_limit"},
	})
	p, err := newOpenAIProvider(OpenAIConfig{APIKey: "k", Model: "gpt-4o-mini", BaseURL: srv.URL + "/v1"})
	require.NoError(t, err)

	_, err = p.Generate(context.Background(), UserPrompt("", "x"))
	var rl *ErrRateLimit
	assert.ErrorAs(t, err, &rl)
}

func TestGeminiSchema(t *testing.T) {
	s := geminiSchema(opinionSchema.Definition)
	require.Contains(t, s.Properties, "category")
	assert.Equal(t, []string{"analitico", "criativo"}, s.Properties["category"].Enum)
	assert.Equal(t, []string{"category", "confidence"}, s.Required)

	conf := s.Properties["confidence"]
	require.NotNil(t, conf.Minimum)
	require.NotNil(t, conf.Maximum)
	assert.Equal(t, 100.0, *conf.Maximum)
}

func TestMissingKeys(t *testing.T) {
	_, err := newAnthropicProvider(AnthropicConfig{})
	assert.Error(t, err)
	_, err = newOpenAIProvider(OpenAIConfig{})
	assert.Error(t, err)
	_, err = newGeminiProvider(context.Background(), GeminiConfig{})
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(nil, json.RawMessage(`not json`)))
	assert.NoError(t, Validate(opinionSchema, json.RawMessage(`{"category":"criativo","confidence":1}`)))

	for _, raw := range []string{
		`not json`,
		`{"category":"criativo"}`,
		`{"category":"criativo","confidence":120}`,
		`{"category":"criativo","confidence":1,"extra":true}`,
	} {
		err := Validate(opinionSchema, json.RawMessage(raw))
		var inv *ErrInvalidResponse
		assert.ErrorAs(t, err, &inv, raw)
	}
}

func TestPurpose(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "unknown", PurposeFrom(ctx))
	assert.Equal(t, "persona-refine", PurposeFrom(WithPurpose(ctx, "persona-refine")))
}

func TestLookupCost(t *testing.T) {
	c := LookupCost("gpt-4o-mini")
	require.NotNil(t, c)
	assert.InDelta(t, 0.75, c.Cost(1_000_000, 1_000_000), 1e-9)

	dated := LookupCost("claude-haiku-4-5-20251001")
	require.NotNil(t, dated)
	assert.Equal(t, 1.0, dated.InputPerMTok)

	assert.Nil(t, LookupCost("no-such-model"))
}

type fakeRecorder struct {
	events []store.LLMRequestEventData
	err    error
}

func (f *fakeRecorder) AppendLLMRequest(_ context.Context, d store.LLMRequestEventData) error {
	f.events = append(f.events, d)
	return f.err
}

func TestRecording(t *testing.T) {
	mock := NewMockProvider(MockJSON(map[string]any{"category": "criativo", "confidence": 50}), MockReply{Err: errors.New("boom")})
	rec := &fakeRecorder{}
	p := WithRecording(mock, ProviderMock, rec, zap.NewNop())
	ctx := WithPurpose(context.Background(), "persona-refine")

	req := UserPrompt("sys", "olá")
	req.Schema = opinionSchema
	_, err := p.Generate(ctx, req)
	require.NoError(t, err)
	_, err = p.Generate(ctx, req)
	require.Error(t, err)

	require.Len(t, rec.events, 2)
	ok := rec.events[0]
	assert.True(t, ok.Success)
	assert.Equal(t, "mock", ok.Provider)
	assert.Equal(t, "persona-refine", ok.Purpose)
	assert.Equal(t, 10, ok.InputTokens)
	assert.Contains(t, ok.RequestBody, "[system]\nsys")
	assert.Contains(t, ok.RequestBody, "[user]\nolá")
	assert.Contains(t, ok.RequestBody, "[schema: test-opinion]")

	assert.False(t, rec.events[1].Success)
	assert.Equal(t, "boom", rec.events[1].ErrorMessage)
}

func TestRecordingFailureIsIgnored(t *testing.T) {
	mock := NewMockProvider(MockJSON(map[string]int{"n": 1}))
	p := WithRecording(mock, ProviderMock, &fakeRecorder{err: errors.New("disk full")}, nil)
	_, err := p.Generate(context.Background(), UserPrompt("", "x"))
	assert.NoError(t, err)
}

func noSleep(p Provider) Provider {
	r := p.(*retrying)
	r.sleep = func(context.Context, time.Duration) error { return nil }
	return r
}

func TestRetry(t *testing.T) {
	cfg := RetryConfig{MaxAttempts: 3, InitialWait: time.Millisecond, Multiplier: 2}

	t.Run("transient then success", func(t *testing.T) {
		mock := NewMockProvider(
			MockReply{Err: &ErrProviderUnavailable{}},
			MockReply{Err: &ErrRateLimit{}},
			MockJSON(map[string]int{"n": 1}),
		)
		_, err := noSleep(WithRetry(mock, cfg, nil)).Generate(context.Background(), UserPrompt("", "x"))
		require.NoError(t, err)
		assert.Len(t, mock.Calls(), 3)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		mock := NewMockProvider()
		_, err := noSleep(WithRetry(mock, cfg, nil)).Generate(context.Background(), UserPrompt("", "x"))
		var un *ErrProviderUnavailable
		assert.ErrorAs(t, err, &un)
		assert.Len(t, mock.Calls(), 3)
	})

	t.Run("invalid response retried once", func(t *testing.T) {
		mock := NewMockProvider(
			MockReply{Err: &ErrInvalidResponse{}},
			MockReply{Err: &ErrInvalidResponse{}},
			MockJSON(map[string]int{"n": 1}),
		)
		_, err := noSleep(WithRetry(mock, cfg, nil)).Generate(context.Background(), UserPrompt("", "x"))
		var inv *ErrInvalidResponse
		assert.ErrorAs(t, err, &inv)
		assert.Len(t, mock.Calls(), 2)
	})

	t.Run("truncation not retried", func(t *testing.T) {
		mock := NewMockProvider(MockReply{Err: &ErrMaxTokensExceeded{}})
		_, err := noSleep(WithRetry(mock, cfg, nil)).Generate(context.Background(), UserPrompt("", "x"))
		assert.Error(t, err)
		assert.Len(t, mock.Calls(), 1)
	})

	t.Run("cancelled context not retried", func(t *testing.T) {
		mock := NewMockProvider(MockReply{Err: context.Canceled})
		_, err := noSleep(WithRetry(mock, cfg, nil)).Generate(context.Background(), UserPrompt("", "x"))
		assert.ErrorIs(t, err, context.Canceled)
		assert.Len(t, mock.Calls(), 1)
	})
}

func TestBackoffHonoursRetryAfter(t *testing.T) {
	r := WithRetry(NewMockProvider(), RetryConfig{MaxAttempts: 2, InitialWait: time.Second, MaxWait: 2 * time.Second, Multiplier: 10}, nil).(*retrying)
	assert.Equal(t, 7*time.Second, r.backoff(0, &ErrRateLimit{RetryAfter: 7 * time.Second}))
	assert.LessOrEqual(t, r.backoff(3, errors.New("x")), time.Duration(2.4*float64(time.Second)))
}

func TestMockValidatesSchema(t *testing.T) {
	mock := NewMockProvider(MockJSON(map[string]any{"category": "pirata", "confidence": 1}))
	req := UserPrompt("", "x")
	req.Schema = opinionSchema
	_, err := mock.Generate(context.Background(), req)
	var inv *ErrInvalidResponse
	assert.ErrorAs(t, err, &inv)
}
