package app

import (
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madboat/madboat/internal/quiz"
	quizscreen "github.com/madboat/madboat/internal/screens/quiz"
	"github.com/madboat/madboat/internal/store"
)

func testModel(t *testing.T) AppModel {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "madboat.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return newAppModel(quizscreen.Deps{
		Classifier: quiz.NewClassifier(quiz.DefaultBank()),
		Events:     st.EventRepo(),
		Snapshots:  st.SnapshotRepo(),
	})
}

func TestViewFrames(t *testing.T) {
	m := testModel(t)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(AppModel)
	out := m.render()
	assert.Contains(t, out, "MadBoat")
	assert.Contains(t, out, "Iniciar questionário")
	assert.True(t, m.View().AltScreen)

	next, _ = m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.NotContains(t, next.(AppModel).render(), "Iniciar questionário")
}

func TestStartQuizShowsStatusAndHints(t *testing.T) {
	m := testModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(AppModel)

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	m.Update(cmd())
	assert.Equal(t, 2, m.router.Depth())
	assert.Contains(t, m.render(), "Questionário")
	assert.Contains(t, m.render(), "Ctrl+B")
}

func TestCtrlCQuits(t *testing.T) {
	m := testModel(t)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestRunResumeWithoutSnapshot(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "madboat.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	err = Run(quizscreen.Deps{
		Classifier: quiz.NewClassifier(quiz.DefaultBank()),
		Snapshots:  st.SnapshotRepo(),
	}, true)
	assert.ErrorIs(t, err, ErrNothingToResume)
}
