package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/madboat/madboat/internal/store"
)

// RequestRecorder persists one event per model call.
type RequestRecorder interface {
	AppendLLMRequest(ctx context.Context, data store.LLMRequestEventData) error
}

type recorded struct {
	inner    Provider
	provider string
	rec      RequestRecorder
	logger   *zap.Logger
}

// WithRecording stores every call made through p. Recording failures are
// logged and never fail the call.
func WithRecording(p Provider, providerName string, rec RequestRecorder, logger *zap.Logger) Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &recorded{inner: p, provider: providerName, rec: rec, logger: logger}
}

func (r *recorded) ModelID() string { return r.inner.ModelID() }

func (r *recorded) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := r.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:    r.provider,
		Model:       r.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: transcript(req),
	}
	if resp != nil {
		data.Model = resp.Model
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.ResponseBody = string(resp.Content)
	}
	if err != nil {
		data.ErrorMessage = err.Error()
		var inv *ErrInvalidResponse
		if errors.As(err, &inv) {
			data.ResponseBody = string(inv.Content)
		}
	}

	fields := []zap.Field{
		zap.String("provider", data.Provider),
		zap.String("model", data.Model),
		zap.String("purpose", data.Purpose),
		zap.Int64("latency_ms", data.LatencyMs),
	}
	if err != nil {
		r.logger.Warn("llm request failed", append(fields, zap.Error(err))...)
	} else {
		r.logger.Debug("llm request", append(fields,
			zap.Int("input_tokens", data.InputTokens),
			zap.Int("output_tokens", data.OutputTokens))...)
	}

	if r.rec != nil {
		// The caller may already be cancelled; the event is still worth keeping.
		if recErr := r.rec.AppendLLMRequest(context.WithoutCancel(ctx), data); recErr != nil {
			r.logger.Warn("record llm request", zap.Error(recErr))
		}
	}
	return resp, err
}

// transcript renders a request for the request_body column.
func transcript(req Request) string {
	var b strings.Builder
	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

type retrying struct {
	inner  Provider
	cfg    RetryConfig
	logger *zap.Logger
	sleep  func(ctx context.Context, d time.Duration) error
}

// WithRetry retries transient failures with jittered exponential backoff.
// Invalid responses get one extra attempt; cancellation and truncation are
// returned immediately.
func WithRetry(p Provider, cfg RetryConfig, logger *zap.Logger) Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &retrying{inner: p, cfg: cfg, logger: logger, sleep: sleepCtx}
}

func (r *retrying) ModelID() string { return r.inner.ModelID() }

func (r *retrying) Generate(ctx context.Context, req Request) (*Response, error) {
	var err error
	invalidSeen := false
	for attempt := 0; attempt < r.cfg.MaxAttempts; attempt++ {
		var resp *Response
		resp, err = r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		if !retryable(err, &invalidSeen) || attempt == r.cfg.MaxAttempts-1 {
			return nil, err
		}

		wait := r.backoff(attempt, err)
		r.logger.Debug("llm retry",
			zap.Int("attempt", attempt+1),
			zap.Duration("wait", wait),
			zap.Error(err))
		if serr := r.sleep(ctx, wait); serr != nil {
			return nil, serr
		}
	}
	return nil, err
}

func retryable(err error, invalidSeen *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var trunc *ErrMaxTokensExceeded
	if errors.As(err, &trunc) {
		return false
	}
	var inv *ErrInvalidResponse
	if errors.As(err, &inv) {
		if *invalidSeen {
			return false
		}
		*invalidSeen = true
	}
	return true
}

func (r *retrying) backoff(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}
	wait := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt))
	if limit := float64(r.cfg.MaxWait); limit > 0 && wait > limit {
		wait = limit
	}
	wait += wait * 0.2 * (2*rand.Float64() - 1)
	return time.Duration(math.Max(wait, 0))
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

type timed struct {
	inner   Provider
	timeout time.Duration
}

// WithTimeout bounds each Generate call.
func WithTimeout(p Provider, d time.Duration) Provider {
	if d <= 0 {
		return p
	}
	return &timed{inner: p, timeout: d}
}

func (t *timed) ModelID() string { return t.inner.ModelID() }

func (t *timed) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.inner.Generate(ctx, req)
}
