package batch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madboat/madboat/internal/llm"
	"github.com/madboat/madboat/internal/persona"
	"github.com/madboat/madboat/internal/quiz"
	"github.com/madboat/madboat/internal/refine"
)

const sample = `
sessions:
  - id: fast
    responses:
      - question_id: 0
        answer: "Vamos agir agora e entregar o resultado"
        typing: {cpm: 320, total_ms: 8000, backspaces: 1}
      - {question_id: 1, answer: B}
      - {question_id: 2, answer: B}
  - id: careful
    responses:
      - question_id: 0
        answer: "Talvez eu precise pensar mais... não sei"
        typing: {cpm: 25, total_ms: 90000, pauses: 7, hesitations: 4}
      - {question_id: 3, answer: C}
  - id: broken
    responses:
      - {question_id: 42, answer: A}
  - responses: []
`

type memRecorder struct {
	mu      sync.Mutex
	quizzes []quiz.QuizEvent
}

func (m *memRecorder) AppendResponseEvent(context.Context, quiz.ResponseEvent) error { return nil }

func (m *memRecorder) AppendQuizEvent(_ context.Context, e quiz.QuizEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.quizzes = append(m.quizzes, e)
	return nil
}

func TestParse(t *testing.T) {
	in, err := Parse([]byte(sample))
	require.NoError(t, err)
	require.Len(t, in.Sessions, 4)
	assert.Equal(t, &TypingInput{CPM: 320, TotalMs: 8000, Backspaces: 1}, in.Sessions[0].Responses[0].Typing)

	_, err = Parse([]byte("sessions: []"))
	assert.Error(t, err)
	_, err = Parse([]byte("sessions: ["))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))
	in, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, in.Sessions, 4)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestTypingInputMetrics(t *testing.T) {
	var none *TypingInput
	assert.Nil(t, none.Metrics(10))

	m := (&TypingInput{CPM: 100, Backspaces: 2, Pastes: 1}).Metrics(30)
	assert.Equal(t, 30, m.CharacterCount)
	assert.Equal(t, 1, m.PasteCount())
	assert.Len(t, m.CorrectionTimes(), 2)
}

func TestRun(t *testing.T) {
	in, err := Parse([]byte(sample))
	require.NoError(t, err)
	rec := &memRecorder{}

	r := &Runner{Classifier: quiz.NewClassifier(quiz.DefaultBank()), Workers: 2, Recorder: rec}
	out, err := r.Run(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, out, 4)

	assert.Equal(t, "fast", out[0].SessionID)
	require.NoError(t, out[0].Err)
	assert.Equal(t, persona.Pragmatico, out[0].Result.Type)
	assert.Equal(t, 3, out[0].Result.Answered)

	require.NoError(t, out[1].Err)
	assert.Equal(t, persona.Hesitante, out[1].Result.Type)

	assert.ErrorContains(t, out[2].Err, "unknown question 42")
	assert.Error(t, out[3].Err)
	assert.NotEmpty(t, out[3].SessionID, "generated id")

	got := make(map[string]bool)
	for _, e := range rec.quizzes {
		got[e.SessionID] = true
	}
	assert.Empty(t, cmp.Diff(map[string]bool{"fast": true, "careful": true}, got))
}

func TestRunSecondOpinion(t *testing.T) {
	in, err := Parse([]byte(sample))
	require.NoError(t, err)
	in.Sessions = in.Sessions[1:2]

	mock := llm.NewMockProvider(llm.MockJSON(map[string]any{
		"category": "analitico", "confidence": 60, "reasoning": "pondera antes",
	}))
	svc := refine.NewService(mock, refine.DefaultConfig(), refine.WithThreshold(100))
	t.Cleanup(svc.Close)

	r := &Runner{Classifier: quiz.NewClassifier(quiz.DefaultBank()), Refine: svc}
	out, err := r.Run(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, out[0].Opinions, 1)
	assert.Equal(t, persona.Analitico, out[0].Opinions[0].Category)
	assert.Len(t, mock.Calls(), 1)
}

func TestRunCancelled(t *testing.T) {
	in, err := Parse([]byte(sample))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &Runner{Classifier: quiz.NewClassifier(quiz.DefaultBank()), Workers: 1}
	_, err = r.Run(ctx, in)
	assert.ErrorIs(t, err, context.Canceled)
}
