package home

import (
	"context"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madboat/madboat/internal/quiz"
	"github.com/madboat/madboat/internal/router"
	quizscreen "github.com/madboat/madboat/internal/screens/quiz"
	"github.com/madboat/madboat/internal/store"
)

func testDeps(t *testing.T) (quizscreen.Deps, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "madboat.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return quizscreen.Deps{
		Classifier: quiz.NewClassifier(quiz.DefaultBank()),
		Events:     st.EventRepo(),
		Snapshots:  st.SnapshotRepo(),
	}, st
}

func TestContinueDisabledWithoutSnapshot(t *testing.T) {
	deps, _ := testDeps(t)
	h := New(deps)

	assert.True(t, h.menu.Items[1].Disabled)
	assert.Contains(t, h.View(120, 40), "Nenhum resultado")

	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 2, h.menu.Selected, "disabled item skipped")
}

func TestContinueOffersCompatibleSnapshot(t *testing.T) {
	deps, st := testDeps(t)
	ctx := context.Background()
	require.NoError(t, st.SnapshotRepo().Save(ctx, &store.Snapshot{
		SessionID: "s-1",
		Data: store.SnapshotData{
			BankVersion: quiz.DefaultBank().Version,
			Responses:   []quiz.Response{{QuestionID: 0, Answer: "gosto de dados"}},
		},
	}))

	h := New(deps)
	require.NotNil(t, h.resume)
	assert.False(t, h.menu.Items[1].Disabled)

	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PushScreenMsg)
	assert.True(t, ok)
}

func TestIncompatibleSnapshotIgnored(t *testing.T) {
	deps, st := testDeps(t)
	require.NoError(t, st.SnapshotRepo().Save(context.Background(), &store.Snapshot{
		SessionID: "s-1",
		Data:      store.SnapshotData{BankVersion: "0.1.0"},
	}))

	h := New(deps)
	assert.Nil(t, h.resume)
	assert.True(t, h.menu.Items[1].Disabled)
}
