package result

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madboat/madboat/internal/persona"
	"github.com/madboat/madboat/internal/quiz"
	"github.com/madboat/madboat/internal/refine"
	"github.com/madboat/madboat/internal/router"
)

func testResult() quiz.Result {
	var scores persona.Scores
	scores.Add(persona.Pragmatico, 8)
	scores.Add(persona.Analitico, 3)
	evidence := make([]string, 12)
	for i := range evidence {
		evidence[i] = "Q1: B → pragmatico (+1)"
	}
	return quiz.Result{
		Type:       persona.Pragmatico,
		Confidence: 84,
		Scores:     scores,
		Evidence:   evidence,
		Answered:   9,
		Done:       true,
		Reason:     quiz.ReasonEarlyExit,
	}
}

func TestView(t *testing.T) {
	s := New(testResult(), nil)
	view := s.View(100, 40)
	assert.Contains(t, view, "PRAGMÁTICO")
	assert.Contains(t, view, "encerrado cedo")
	assert.Contains(t, view, "+4")

	s.Update(tea.KeyPressMsg{Code: 'e', Text: "e"})
	assert.NotContains(t, s.View(100, 40), "+4")
}

func TestOpinionArrives(t *testing.T) {
	s := New(testResult(), nil)
	s.Update(OpinionMsg{Opinion: &refine.Opinion{Category: persona.Analitico, Confidence: 70, Model: "mock", Reasoning: "dados"}})
	assert.Contains(t, s.View(100, 40), "Segunda opinião (mock)")
}

func TestEnterReturnsHome(t *testing.T) {
	s := New(testResult(), nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, router.PopToRootMsg{}, cmd())
}

func TestWaitOpinion(t *testing.T) {
	assert.Nil(t, WaitOpinion(nil))

	ch := make(chan *refine.Opinion, 1)
	op := &refine.Opinion{Category: persona.Criativo}
	ch <- op
	assert.Equal(t, OpinionMsg{Opinion: op}, WaitOpinion(ch)())

	close(ch)
	assert.Nil(t, WaitOpinion(ch)())
}
