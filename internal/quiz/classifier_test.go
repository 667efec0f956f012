package quiz

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madboat/madboat/internal/persona"
	"github.com/madboat/madboat/internal/typing"
)

func choices(keys ...string) []Response {
	rs := []Response{{QuestionID: 0, Answer: "O céu é azul."}}
	for i, k := range keys {
		rs = append(rs, Response{QuestionID: i + 1, Answer: k})
	}
	return rs
}

func TestClassify_Empty(t *testing.T) {
	c := NewClassifier(DefaultBank())
	res := c.Classify(nil)
	assert.False(t, res.Done)
	assert.Equal(t, ReasonContinue, res.Reason)
	assert.Equal(t, 0.0, res.Confidence)
	assert.Equal(t, 0, res.Answered)
	assert.NotNil(t, res.Evidence)
}

func TestClassify_Idempotent(t *testing.T) {
	c := NewClassifier(DefaultBank())
	rs := []Response{
		{QuestionID: 0, Answer: "Gosto de imaginar ideias diferentes com a equipe!", Metrics: &typing.TypingMetrics{AverageTypingSpeed: 90, PauseCount: 2}},
		{QuestionID: 1, Answer: "c"},
		{QuestionID: 2, Answer: "A"},
	}
	first := c.Classify(rs)
	second := c.Classify(rs)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Classify not deterministic (-first +second):\n%s", diff)
	}
}

func TestClassify_ChoiceWeights(t *testing.T) {
	c := NewClassifier(DefaultBank())
	res := c.Classify(choices("A", "B", "A", "A", "A"))

	assert.Equal(t, 1+1.5+2.0, res.Scores.Get(persona.Analitico))
	assert.Equal(t, 1+1.0, res.Scores.Get(persona.Pragmatico))
	assert.Equal(t, persona.Analitico, res.Type)
	assert.Len(t, res.Evidence, 5)
}

func TestClassify_FreeTextReusesStoredAnalysis(t *testing.T) {
	c := NewClassifier(DefaultBank())
	var scores persona.Scores
	scores.Add(persona.Visionario, 7)

	res := c.Classify([]Response{{
		QuestionID: 0,
		Answer:     "texto qualquer",
		Analysis:   &persona.Analysis{Type: persona.Visionario, Scores: scores},
	}})
	assert.Equal(t, persona.Visionario, res.Type)
	assert.Equal(t, 7.0, res.Scores.Get(persona.Visionario))
}

func TestClassify_FreeTextAnalyzedWhenMissing(t *testing.T) {
	c := NewClassifier(DefaultBank())
	text := "vamos agir e entregar"
	res := c.Classify([]Response{{QuestionID: 0, Answer: text}})
	assert.Equal(t, persona.Analyze(text, nil).Scores, res.Scores)
}

func TestClassify_UnknownInputsContributeNothing(t *testing.T) {
	c := NewClassifier(DefaultBank())
	res := c.Classify([]Response{
		{QuestionID: 42, Answer: "A"},
		{QuestionID: 1, Answer: "Z"},
	})
	assert.True(t, res.Scores.IsZero())
	assert.Equal(t, 2, res.Answered)
}

func TestClassify_EarlyExit(t *testing.T) {
	c := NewClassifier(DefaultBank())
	rs := []Response{{QuestionID: 0, Answer: "vamos agir e entregar"}}
	for i, k := range []string{"B", "B", "D", "A", "A", "A", "A", "B"} {
		rs = append(rs, Response{QuestionID: i + 1, Answer: k})
	}
	require.Len(t, rs, 9)

	before := c.Classify(rs[:8])
	assert.False(t, before.Done, "no exit before the 9th response")

	res := c.Classify(rs)
	assert.True(t, res.Done)
	assert.Equal(t, ReasonEarlyExit, res.Reason)
	assert.Equal(t, persona.Pragmatico, res.Type)
	assert.GreaterOrEqual(t, res.Confidence, float64(EarlyExitConfidence))
}

func TestClassify_NoEarlyExitBelowThreshold(t *testing.T) {
	c := NewClassifier(DefaultBank())
	rs := choices("C", "B", "A", "C", "D", "A", "B", "A")
	require.Len(t, rs, 9)

	res := c.Classify(rs)
	assert.False(t, res.Done)
	assert.Equal(t, ReasonContinue, res.Reason)
	assert.Less(t, res.Confidence, float64(EarlyExitConfidence))
	assert.Equal(t, persona.Pragmatico, res.Type, "ties resolve to the lowest ordinal")

	rs = append(rs, Response{QuestionID: 9, Answer: "C"})
	res = c.Classify(rs)
	assert.True(t, res.Done)
	assert.Equal(t, ReasonFinal, res.Reason)
	assert.Equal(t, persona.Hesitante, res.Type)
}

func TestClassify_ForcedExitWithoutSignal(t *testing.T) {
	c := NewClassifier(DefaultBank())
	rs := choices("Z", "Z", "Z", "Z", "Z", "Z", "Z", "Z", "Z")
	require.Len(t, rs, 10)

	res := c.Classify(rs)
	assert.True(t, res.Done)
	assert.Equal(t, ReasonFinal, res.Reason)
	assert.Equal(t, 0.0, res.Confidence)
	assert.Equal(t, persona.Analitico, res.Type)
}

func TestClassify_ConfidenceBounded(t *testing.T) {
	c := NewClassifier(DefaultBank())
	res := c.Classify(choices("A", "B", "A", "A", "A", "B", "D", "B", "A"))
	assert.LessOrEqual(t, res.Confidence, float64(persona.MaxConfidence))
}
