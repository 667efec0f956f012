package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madboat/madboat/internal/persona"
	"github.com/madboat/madboat/internal/quiz"
	"github.com/madboat/madboat/internal/typing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "madboat.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"},
	}
	for _, tt := range tests {
		var got string
		require.NoError(t, s.DB().QueryRow("PRAGMA "+tt.pragma).Scan(&got))
		assert.Equal(t, tt.want, got, tt.pragma)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for want := int64(1); want <= 5; want++ {
		got, err := s.seq.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func finishedQuiz(t *testing.T, rec quiz.Recorder) *quiz.Session {
	t.Helper()
	ctx := context.Background()
	s := quiz.NewSession(quiz.NewClassifier(quiz.DefaultBank()), quiz.WithRecorder(rec))

	s.BeginTyping()
	for i, r := range "vamos agir" {
		s.Keypress(string(r), i+1)
	}
	_, err := s.SubmitText(ctx, "vamos agir e entregar")
	require.NoError(t, err)
	for _, k := range []string{"B", "B", "D", "A", "A", "A", "A", "B"} {
		_, err := s.SubmitChoice(ctx, k)
		require.NoError(t, err)
	}
	require.True(t, s.Result().Done)
	return s
}

func TestQuizEvents(t *testing.T) {
	st := openTestStore(t)
	repo := st.EventRepo()
	ctx := context.Background()

	sess := finishedQuiz(t, repo)

	results, err := repo.RecentResults(ctx, QueryOpts{Limit: 5})
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, sess.ID, r.SessionID)
	assert.Equal(t, "pragmatico", r.Persona)
	assert.Equal(t, string(quiz.ReasonEarlyExit), r.Reason)
	assert.Equal(t, 9, r.Answered)
	assert.Equal(t, quiz.DefaultBank().Version, r.BankVersion)
	assert.Equal(t, sess.Result().Scores.Get(persona.Pragmatico), r.Scores["pragmatico"])
	assert.Len(t, r.Scores, 6)

	responses, err := repo.SessionResponses(ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, responses, 9)
	assert.Equal(t, 0, responses[0].Position)
	assert.Equal(t, "pragmatico", responses[0].TextPersona)
	assert.NotEmpty(t, responses[0].Indicators)
	assert.Empty(t, responses[1].TextPersona)
	assert.Equal(t, "B", responses[1].Answer)
	for i := 1; i < len(responses); i++ {
		assert.Greater(t, responses[i].Sequence, responses[i-1].Sequence)
	}

	counts, err := repo.PersonaCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"pragmatico": 1}, counts)
}

func TestResponseEventTypingFields(t *testing.T) {
	st := openTestStore(t)
	repo := st.EventRepo()
	ctx := context.Background()

	m := &typing.TypingMetrics{
		TotalTimeMs:        4000,
		AverageTypingSpeed: 150,
		PauseCount:         2,
		HesitationCount:    1,
		BackspaceCount:     3,
		Corrections:        []typing.Event{{Kind: typing.EventPaste, AtMs: 10}},
	}
	require.NoError(t, repo.AppendResponseEvent(ctx, quiz.ResponseEvent{
		SessionID: "s-1",
		Response: quiz.Response{
			Answer:   "quero criar uma ideia original e diferente",
			Metrics:  m,
			Analysis: persona.Analyze("quero criar uma ideia original e diferente", m),
		},
	}))

	rs, err := repo.SessionResponses(ctx, "s-1")
	require.NoError(t, err)
	require.Len(t, rs, 1)
	assert.Equal(t, 150.0, rs[0].TypingCPM)
	assert.Equal(t, int64(4000), rs[0].TypingMs)
	assert.Equal(t, 2, rs[0].Pauses)
	assert.Equal(t, 1, rs[0].Hesitations)
	assert.Equal(t, 3, rs[0].Backspaces)
	assert.Equal(t, 1, rs[0].Pastes)
	assert.Equal(t, "criativo", rs[0].TextPersona)
}

func TestRecentResultsOrderAndLimit(t *testing.T) {
	st := openTestStore(t)
	repo := st.EventRepo()
	ctx := context.Background()

	start := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, repo.AppendQuizEvent(ctx, quiz.QuizEvent{
			SessionID:   id,
			BankVersion: "1.0.0",
			StartedAt:   start,
			FinishedAt:  start.Add(time.Duration(i+1) * time.Minute),
			Result:      quiz.Result{Type: persona.Criativo, Reason: quiz.ReasonFinal, Answered: 10},
		}))
	}

	got, err := repo.RecentResults(ctx, QueryOpts{Limit: 2})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c", got[0].SessionID)
	assert.Equal(t, "b", got[1].SessionID)
	assert.Equal(t, 3*time.Minute, got[0].Duration())

	older, err := repo.RecentResults(ctx, QueryOpts{Before: got[1].Sequence})
	require.NoError(t, err)
	require.Len(t, older, 1)
	assert.Equal(t, "a", older[0].SessionID)
}

func TestLLMEvents(t *testing.T) {
	st := openTestStore(t)
	repo := st.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "persona-refine", InputTokens: 100, OutputTokens: 20, LatencyMs: 300, Success: true, RequestBody: "[user]\nolá"},
		{Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "persona-refine", InputTokens: 50, OutputTokens: 10, LatencyMs: 100, Success: false, ErrorMessage: "boom"},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "batch-refine", InputTokens: 10, OutputTokens: 5, LatencyMs: 50, Success: true},
	}
	for _, e := range events {
		require.NoError(t, repo.AppendLLMRequest(ctx, e))
	}

	list, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "gpt-4o-mini", list[0].Model, "newest first")

	got, err := repo.GetLLMEvent(ctx, list[2].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "[user]\nolá", got.RequestBody)

	missing, err := repo.GetLLMEvent(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	assert.Equal(t, []LLMUsageStats{
		{Purpose: "batch-refine", Calls: 1, InputTokens: 10, OutputTokens: 5, AvgLatencyMs: 50},
		{Purpose: "persona-refine", Calls: 2, InputTokens: 150, OutputTokens: 30, AvgLatencyMs: 200},
	}, byPurpose)

	byModel, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	assert.Equal(t, []LLMModelUsage{
		{Model: "claude-haiku-4-5", Calls: 2, InputTokens: 150, OutputTokens: 30},
		{Model: "gpt-4o-mini", Calls: 1, InputTokens: 10, OutputTokens: 5},
	}, byModel)
}

func TestRefinementEvent(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	err := st.EventRepo().AppendRefinementEvent(ctx, RefinementEventData{
		SessionID:       "s-1",
		RulePersona:     "hesitante",
		RuleConfidence:  30,
		ModelPersona:    "analitico",
		ModelConfidence: 70,
		Model:           "mock",
		Reasoning:       "estrutura clara",
	})
	require.NoError(t, err)

	n, err := st.Client().RefinementEvent.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSnapshots(t *testing.T) {
	st := openTestStore(t)
	repo := st.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.LatestUnfinished(ctx)
	require.NoError(t, err)
	assert.Nil(t, snap)

	responses := []quiz.Response{
		{QuestionID: 0, Answer: "gosto de dados", Analysis: persona.Analyze("gosto de dados", nil)},
		{QuestionID: 1, Answer: "A"},
	}
	require.NoError(t, repo.Save(ctx, &Snapshot{
		SessionID: "s-1",
		Data:      SnapshotData{BankVersion: "1.2.0", Responses: responses},
	}))

	snap, err = repo.LatestUnfinished(ctx)
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, "s-1", snap.SessionID)
	assert.Equal(t, snapshotVersion, snap.Data.Version)
	require.Len(t, snap.Data.Responses, 2)
	assert.Equal(t, persona.Analitico, snap.Data.Responses[0].Analysis.Type)
	assert.Equal(t, 2.0, snap.Data.Responses[0].Analysis.Scores.Get(persona.Analitico))

	require.NoError(t, repo.MarkDone(ctx, "s-1"))
	snap, err = repo.LatestUnfinished(ctx)
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestSnapshotPrune(t *testing.T) {
	st := openTestStore(t)
	repo := st.SnapshotRepo()
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		require.NoError(t, repo.Save(ctx, &Snapshot{SessionID: "s"}))
	}
	require.NoError(t, repo.Prune(ctx, 5))

	n, err := st.Client().Snapshot.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	require.NoError(t, repo.Prune(ctx, 10))
	n, err = st.Client().Snapshot.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}
