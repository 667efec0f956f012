package persona

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madboat/madboat/internal/typing"
)

func TestAnalyze_NoEvidence(t *testing.T) {
	a := Analyze("O céu é azul.", nil)
	assert.Equal(t, 0.0, a.SemanticScore)
	assert.Equal(t, 0.0, a.Confidence)
	assert.True(t, a.Scores.IsZero())
	assert.Empty(t, a.Indicators)
	assert.Empty(t, a.BehavioralPatterns)
}

func TestAnalyze_EmptyText(t *testing.T) {
	a := Analyze("", &typing.TypingMetrics{AverageTypingSpeed: 200})
	assert.Equal(t, 0.0, a.Confidence)
	assert.True(t, a.Scores.IsZero(), "overlays must not fire without text evidence")
}

func TestScoreText_SingleKeyword(t *testing.T) {
	scores, indicators := ScoreText("Gosto de dados.")
	for _, c := range AllCategories() {
		if c == Analitico {
			assert.Equal(t, 2.0, scores.Get(c))
			continue
		}
		assert.Zero(t, scores.Get(c), c.String())
	}
	assert.Equal(t, []string{`word: "dados"`}, indicators)
}

func TestScoreText_KeywordCountedOnce(t *testing.T) {
	scores, _ := ScoreText("dados, dados e mais dados")
	assert.Equal(t, 2.0, scores.Get(Analitico))
}

func TestScoreText_PatternCap(t *testing.T) {
	scores, indicators := ScoreText(strings.Repeat("?", 10))
	assert.Equal(t, 3.0, scores.Get(Hesitante))
	assert.Contains(t, indicators, "interrogações: 10x")

	three, _ := ScoreText("???")
	assert.Equal(t, scores, three)
}

func TestScoreText_KeywordsAreCaseInsensitive(t *testing.T) {
	scores, _ := ScoreText("PLANEJAMENTO é tudo")
	assert.Equal(t, 2.0, scores.Get(Analitico))
}

func TestScoreText_NumberedList(t *testing.T) {
	scores, indicators := ScoreText("1. abrir\n2. medir\n3) fechar")
	assert.Equal(t, 12.0, scores.Get(Analitico))
	assert.Contains(t, indicators, "lista numerada: 3x")
}

func TestAnalyze_ActionBeatsHedging(t *testing.T) {
	text := "Eu acho que, pensando bem, talvez devesse ser mais direto e agir rápido para entregar o resultado"
	m := &typing.TypingMetrics{AverageTypingSpeed: 180, PauseCount: 0}

	a := Analyze(text, m)
	assert.Equal(t, Pragmatico, a.Type)
	assert.Greater(t, a.Scores.Get(Pragmatico), a.Scores.Get(Hesitante))
	assert.Contains(t, a.Indicators, `word: "agir"`)
	assert.Contains(t, a.BehavioralPatterns, TagFastTyping)
	assert.Contains(t, a.BehavioralPatterns, TagContinuousFlow)
	assert.Equal(t, a.Scores.Get(Pragmatico), a.SemanticScore)
}

func TestAnalyze_HesitantTyping(t *testing.T) {
	text := "não sei bem, talvez eu tenha medo de errar..."
	m := &typing.TypingMetrics{
		AverageTypingSpeed: 25,
		PauseCount:         8,
		HesitationCount:    5,
		BackspaceCount:     20,
	}
	a := Analyze(text, m)
	assert.Equal(t, Hesitante, a.Type)
	assert.Contains(t, a.BehavioralPatterns, TagHesitant)
	assert.Contains(t, a.BehavioralPatterns, TagManyPauses)
	assert.Contains(t, a.BehavioralPatterns, TagSelfCorrecting)
	assert.Contains(t, a.BehavioralPatterns, TagSlowTyping)
}

func TestAnalyze_SlowTypingIgnoresZeroSpeed(t *testing.T) {
	a := Analyze("gosto de dados", &typing.TypingMetrics{})
	assert.NotContains(t, a.BehavioralPatterns, TagSlowTyping)
}

func TestAnalyze_PasteTag(t *testing.T) {
	m := &typing.TypingMetrics{
		AverageTypingSpeed: 80,
		PauseCount:         1,
		Corrections:        []typing.Event{{Kind: typing.EventPaste, AtMs: 300}},
	}
	a := Analyze("quero criar algo diferente", m)
	assert.Contains(t, a.BehavioralPatterns, TagPasted)
}

func TestAnalyze_LongStructuredText(t *testing.T) {
	para := "Primeiro eu analiso os dados disponíveis com calma e comparo as alternativas possíveis."
	text := strings.Join([]string{para, para, para, para}, "\n\n")

	a := Analyze(text, nil)
	assert.Equal(t, Analitico, a.Type)
	assert.Contains(t, a.BehavioralPatterns, TagDetailed)
	assert.Contains(t, a.BehavioralPatterns, TagStructured)
}

func TestAnalyze_ConfidenceBounds(t *testing.T) {
	texts := []string{
		"",
		"dados",
		strings.Repeat("1. analisar os dados porque primeiro vem a lógica\n", 500),
		strings.Repeat("acho talvez não sei? ... ", 1000),
		strings.Repeat("equipe ", 10000),
	}
	for _, text := range texts {
		m := &typing.TypingMetrics{AverageTypingSpeed: 300, HesitationCount: 10, PauseCount: 10}
		for _, metrics := range []*typing.TypingMetrics{nil, m} {
			a := Analyze(text, metrics)
			assert.GreaterOrEqual(t, a.Confidence, 0.0)
			assert.LessOrEqual(t, a.Confidence, float64(MaxConfidence))
		}
	}
}

func TestConfidence(t *testing.T) {
	tests := []struct {
		name        string
		top, second float64
		want        float64
	}{
		{"zero", 0, 0, 0},
		{"tied", 4, 4, 80},
		{"small gap", 1, 0.5, 55},
		{"capped", 20, 0, 95},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Confidence(tt.top, tt.second), 1e-9)
		})
	}
}

func TestScores_TopTieBreak(t *testing.T) {
	var s Scores
	s.Add(Visionario, 5)
	s.Add(Criativo, 5)
	s.Add(Hesitante, 3)

	top, best, second := s.Top()
	assert.Equal(t, Criativo, top)
	assert.Equal(t, 5.0, best)
	assert.Equal(t, 5.0, second)
}

func TestScores_AddIgnoresNonPositive(t *testing.T) {
	var s Scores
	s.Add(Analitico, 2)
	s.Add(Analitico, -5)
	s.Add(Category(42), 1)
	assert.Equal(t, 2.0, s.Get(Analitico))
}

func TestScores_JSON(t *testing.T) {
	var s Scores
	s.Add(Pragmatico, 3.5)

	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"pragmatico":3.5`)

	var back Scores
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, s, back)

	assert.Error(t, json.Unmarshal([]byte(`{"zen":1}`), &back))
}

func TestParseCategory(t *testing.T) {
	for _, c := range AllCategories() {
		got, err := ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	_, err := ParseCategory("unknown")
	assert.Error(t, err)
}

func TestAnalyze_FromTracker(t *testing.T) {
	now := time.Unix(0, 0)
	tr := typing.NewTracker(func() time.Time { return now })
	tr.Start()
	for _, r := range "vamos agir" {
		now = now.Add(100 * time.Millisecond)
		tr.TrackKeypress(string(r), 0)
	}
	m, err := tr.Stop()
	require.NoError(t, err)

	a := Analyze("vamos agir", m)
	assert.Equal(t, Pragmatico, a.Type)
	assert.Contains(t, a.BehavioralPatterns, TagFastTyping)
}

func TestAuxiliaryScores(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Auxiliary
	}{
		{"empty", "", Auxiliary{}},
		{"emotional", "Eu AMO isso!", Auxiliary{EmotionalIntensity: 3}},
		{"analytical", "Portanto, 3 métricas.", Auxiliary{AnalyticalDepth: 5}},
		{"capped", strings.Repeat("!", 12), Auxiliary{EmotionalIntensity: MaxAuxiliaryScore}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AuxiliaryScores(tt.text))
		})
	}
}

func TestAuxiliaryScores_AccentedSuffixes(t *testing.T) {
	assert.Equal(t, 2, EmotionalIntensity("paixão"))
	assert.Equal(t, 2, CreativityMarkers("inspiração"))
	assert.Equal(t, 2, AnalyticalDepth("variáveis"))
}

func TestScoreText_CommonWordsDoNotMatchRoots(t *testing.T) {
	scores, _ := ScoreText("Faz parte da metade do processo")
	assert.Equal(t, 0.0, scores.Get(Criativo))
	assert.Equal(t, 0.0, scores.Get(Pragmatico))
	assert.Equal(t, 2.0, scores.Get(Analitico))

	scores, _ = ScoreText("Penso no longo prazo")
	assert.Equal(t, 0.0, scores.Get(Pragmatico))
	assert.Greater(t, scores.Get(Visionario), 0.0)

	_, indicators := ScoreText("Preciso entregar no curto prazo")
	assert.Contains(t, indicators, "urgência: 1x")

	_, indicators = ScoreText("Eficiência acima de tudo")
	assert.Contains(t, indicators, "foco em eficiência: 1x")
}
