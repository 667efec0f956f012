package quiz

import (
	"context"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madboat/madboat/internal/llm"
	"github.com/madboat/madboat/internal/persona"
	"github.com/madboat/madboat/internal/quiz"
	"github.com/madboat/madboat/internal/refine"
	"github.com/madboat/madboat/internal/router"
	"github.com/madboat/madboat/internal/screens/result"
	"github.com/madboat/madboat/internal/store"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testDeps(t *testing.T) (Deps, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "madboat.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return Deps{
		Classifier: quiz.NewClassifier(quiz.DefaultBank()),
		Events:     st.EventRepo(),
		Snapshots:  st.SnapshotRepo(),
	}, st
}

func typeString(s *Screen, text string) {
	for _, r := range text {
		if r == ' ' {
			s.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
			continue
		}
		s.Update(keyPress(r))
	}
}

func TestFreeTextAnswer(t *testing.T) {
	deps, _ := testDeps(t)
	s := New(deps)

	typeString(s, "vamos agir e entregarx")
	s.Update(specialKey(tea.KeyBackspace))
	assert.Equal(t, "vamos agir e entregar", s.input.Value())

	s.Update(specialKey(tea.KeyEnter))
	require.Equal(t, 1, s.session.Index())

	resp := s.session.Responses()[0]
	require.NotNil(t, resp.Metrics)
	assert.Equal(t, 1, resp.Metrics.BackspaceCount)
	assert.Equal(t, persona.Pragmatico, resp.Analysis.Type)

	q, ok := s.session.Current()
	require.True(t, ok)
	assert.Equal(t, quiz.KindChoice, q.Kind)
}

func TestEmptyAnswerShowsError(t *testing.T) {
	deps, _ := testDeps(t)
	s := New(deps)

	s.Update(specialKey(tea.KeyEnter))
	assert.Equal(t, 0, s.session.Index())
	assert.NotEmpty(t, s.errMsg)
	assert.Contains(t, s.View(100, 30), s.errMsg)
}

func TestPasteIsTagged(t *testing.T) {
	deps, _ := testDeps(t)
	s := New(deps)

	s.Update(tea.PasteMsg{Content: "gosto de dados"})
	s.Update(specialKey(tea.KeyEnter))

	resp := s.session.Responses()[0]
	require.NotNil(t, resp.Metrics)
	assert.Equal(t, 1, resp.Metrics.PasteCount())
	assert.Contains(t, resp.Analysis.BehavioralPatterns, persona.TagPasted)
}

func TestChoiceByLetterAndBack(t *testing.T) {
	deps, _ := testDeps(t)
	s := New(deps)
	typeString(s, "gosto de dados")
	s.Update(specialKey(tea.KeyEnter))

	s.Update(keyPress('b'))
	require.Equal(t, 2, s.session.Index())
	assert.Equal(t, "B", s.session.Responses()[1].Answer)

	s.Update(tea.KeyPressMsg{Code: 'b', Mod: tea.ModCtrl})
	require.Equal(t, 1, s.session.Index())
	assert.Equal(t, 1, s.choice.Selected, "previous choice preselected")

	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyEnter))
	assert.Equal(t, "C", s.session.Responses()[1].Answer)
}

func TestEarlyExitReplacesWithResult(t *testing.T) {
	deps, st := testDeps(t)
	s := New(deps)
	typeString(s, "vamos agir e entregar")
	s.Update(specialKey(tea.KeyEnter))

	var cmd tea.Cmd
	for _, k := range "bbdaaaab" {
		_, cmd = s.Update(keyPress(k))
	}
	require.True(t, s.session.Result().Done)
	require.NotNil(t, cmd)

	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &result.Screen{}, msg.Screen)

	snap, err := st.SnapshotRepo().LatestUnfinished(context.Background())
	require.NoError(t, err)
	assert.Nil(t, snap, "finished sessions are not resumable")

	results, err := st.EventRepo().RecentResults(context.Background(), store.QueryOpts{Limit: 1})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "pragmatico", results[0].Persona)
}

func TestResume(t *testing.T) {
	deps, st := testDeps(t)
	s := New(deps)
	typeString(s, "gosto de dados")
	s.Update(specialKey(tea.KeyEnter))
	s.Update(keyPress('a'))

	snap, err := st.SnapshotRepo().LatestUnfinished(context.Background())
	require.NoError(t, err)
	require.NotNil(t, snap)

	resumed := Resume(deps, snap)
	assert.Equal(t, s.session.ID, resumed.session.ID)
	assert.Equal(t, 2, resumed.session.Index())
	assert.Equal(t, s.session.Result().Scores, resumed.session.Result().Scores)
	assert.NotNil(t, resumed.lastText)
}

func TestQuitConfirm(t *testing.T) {
	deps, _ := testDeps(t)
	s := New(deps)

	s.Update(specialKey(tea.KeyEscape))
	assert.True(t, s.confirmQuit)
	s.Update(keyPress('n'))
	assert.False(t, s.confirmQuit)

	s.Update(specialKey(tea.KeyEscape))
	_, cmd := s.Update(keyPress('s'))
	require.NotNil(t, cmd)
	assert.Equal(t, router.PopToRootMsg{}, cmd())
}

func TestSecondOpinion(t *testing.T) {
	deps, _ := testDeps(t)
	mock := llm.NewMockProvider(llm.MockJSON(map[string]any{
		"category": "criativo", "confidence": 65, "reasoning": "imaginação",
	}))
	deps.Refine = refine.NewService(mock, refine.DefaultConfig(), refine.WithThreshold(100))
	t.Cleanup(deps.Refine.Close)

	s := New(deps)
	typeString(s, "o mar")
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	require.NotNil(t, cmd)

	op := <-s.opinions
	s.Update(result.OpinionMsg{Opinion: op})
	assert.Equal(t, persona.Criativo, s.opinion.Category)
	assert.Contains(t, s.View(100, 30), "Segunda opinião")
}
