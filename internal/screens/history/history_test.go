package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madboat/madboat/internal/persona"
	"github.com/madboat/madboat/internal/quiz"
	"github.com/madboat/madboat/internal/router"
	"github.com/madboat/madboat/internal/store"
)

func seeded(t *testing.T) store.EventRepo {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "madboat.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	repo := st.EventRepo()
	ctx := context.Background()

	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i, v := range []string{"0.9.0", "1.2.0"} {
		id := []string{"old", "new"}[i]
		require.NoError(t, repo.AppendResponseEvent(ctx, quiz.ResponseEvent{
			SessionID: id,
			Response:  quiz.Response{QuestionID: 1, Answer: "A"},
			Result:    quiz.Result{Type: persona.Analitico, Confidence: 50},
		}))
		require.NoError(t, repo.AppendQuizEvent(ctx, quiz.QuizEvent{
			SessionID:   id,
			BankVersion: v,
			StartedAt:   start,
			FinishedAt:  start.Add(time.Duration(i+2) * time.Minute),
			Result:      quiz.Result{Type: persona.Analitico, Confidence: 62, Reason: quiz.ReasonFinal, Answered: 10},
		}))
	}
	return repo
}

func TestHistoryLoadAndExpand(t *testing.T) {
	bank := quiz.DefaultBank()
	s := New(seeded(t), bank)

	s.Update(s.Init()())
	require.True(t, s.loaded)
	require.Len(t, s.results, 2)
	assert.Equal(t, "new", s.results[0].SessionID)

	view := s.View(120, 30)
	assert.Contains(t, view, "Analítico")
	assert.Contains(t, view, "banco 0.9.0", "incompatible bank flagged")

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	s.Update(cmd())
	require.Len(t, s.responses["new"], 1)
	assert.Contains(t, s.View(120, 30), "analitico")

	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd, "collapse does not reload")
}

func TestHistoryEmptyAndBack(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "madboat.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	s := New(st.EventRepo(), quiz.DefaultBank())
	s.Update(s.Init()())
	assert.Contains(t, s.View(100, 20), "Nenhum resultado")

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.Equal(t, router.PopScreenMsg{}, cmd())
}
