package refine

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madboat/madboat/internal/llm"
	"github.com/madboat/madboat/internal/persona"
	"github.com/madboat/madboat/internal/store"
)

type fakeRecorder struct {
	mu     sync.Mutex
	events []store.RefinementEventData
}

func (f *fakeRecorder) AppendRefinementEvent(_ context.Context, d store.RefinementEventData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, d)
	return nil
}

func opinion(cat string, conf float64) llm.MockReply {
	return llm.MockJSON(map[string]any{"category": cat, "confidence": conf, "reasoning": "texto estruturado"})
}

func TestOpine(t *testing.T) {
	mock := llm.NewMockProvider(opinion("analitico", 72))
	r := NewRefiner(mock, DefaultConfig())

	rule := persona.Analyze("talvez eu analise os dados", nil)
	op, err := r.Opine(context.Background(), "talvez eu analise os dados", rule)
	require.NoError(t, err)
	assert.Equal(t, persona.Analitico, op.Category)
	assert.Equal(t, 72.0, op.Confidence)
	assert.Equal(t, "mock", op.Model)

	calls := mock.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, OpinionSchema, calls[0].Schema)
	assert.Contains(t, calls[0].Messages[0].Content, "talvez eu analise os dados")
	assert.Contains(t, calls[0].Messages[0].Content, "Leitura por regras: "+rule.Type.String())
}

func TestOpineRejectsUnknownCategory(t *testing.T) {
	mock := llm.NewMockProvider(opinion("pirata", 90))
	_, err := NewRefiner(mock, DefaultConfig()).Opine(context.Background(), "x", nil)
	var inv *llm.ErrInvalidResponse
	assert.ErrorAs(t, err, &inv)
}

func TestOpineClampsConfidence(t *testing.T) {
	mock := llm.NewMockProvider(opinion("criativo", 100))
	op, err := NewRefiner(mock, DefaultConfig()).Opine(context.Background(), "ideia", nil)
	require.NoError(t, err)
	assert.Equal(t, float64(persona.MaxConfidence), op.Confidence)
}

func TestServiceDisabled(t *testing.T) {
	s := NewService(nil, DefaultConfig())
	defer s.Close()

	assert.False(t, s.Enabled())
	assert.False(t, s.Submit(context.Background(), Request{Rule: &persona.Analysis{}}, nil))
	_, err := s.Refine(context.Background(), Request{})
	assert.ErrorIs(t, err, llm.ErrDisabled)
}

func TestServiceThreshold(t *testing.T) {
	s := NewService(llm.NewMockProvider(), DefaultConfig(), WithThreshold(50))
	defer s.Close()

	assert.True(t, s.Wants(&persona.Analysis{Confidence: 49.9}))
	assert.False(t, s.Wants(&persona.Analysis{Confidence: 50}))
	assert.False(t, s.Wants(nil))
}

func TestServiceAsync(t *testing.T) {
	rec := &fakeRecorder{}
	s := NewService(llm.NewMockProvider(opinion("colaborativo", 60)), DefaultConfig(), WithRecorder(rec))

	got := make(chan *Opinion, 1)
	rule := &persona.Analysis{Type: persona.Hesitante, Confidence: 20}
	ok := s.Submit(context.Background(), Request{SessionID: "s-1", Text: "não sei", Rule: rule}, func(o *Opinion) {
		got <- o
	})
	require.True(t, ok)

	select {
	case op := <-got:
		assert.Equal(t, persona.Colaborativo, op.Category)
	case <-time.After(2 * time.Second):
		t.Fatal("no opinion delivered")
	}
	s.Close()

	require.Len(t, rec.events, 1)
	assert.Equal(t, store.RefinementEventData{
		SessionID:       "s-1",
		RulePersona:     "hesitante",
		RuleConfidence:  20,
		ModelPersona:    "colaborativo",
		ModelConfidence: 60,
		Model:           "mock",
		Reasoning:       "texto estruturado",
	}, rec.events[0])
}

func TestServiceFailureSkipsCallback(t *testing.T) {
	rec := &fakeRecorder{}
	s := NewService(llm.NewMockProvider(llm.MockReply{Err: errors.New("boom")}), DefaultConfig(), WithRecorder(rec))

	called := false
	s.Submit(context.Background(), Request{Rule: &persona.Analysis{}}, func(*Opinion) { called = true })
	s.Close()

	assert.False(t, called)
	assert.Empty(t, rec.events)
}
