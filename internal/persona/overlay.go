package persona

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/madboat/madboat/internal/typing"
)

// Behavioural thresholds.
const (
	FastTypingCPM       = 120
	SlowTypingCPM       = 40
	ManyPauses          = 5
	HighCorrectionRatio = 0.20
	LowCorrectionRatio  = 0.05
	ManyHesitations     = 3
)

// Text-shape thresholds, in characters.
const (
	LongAnswerChars    = 300
	ShortAnswerChars   = 50
	CompactAnswerChars = 100
	CompactSentences   = 3
	ManyParagraphs     = 3
)

// Behavioural pattern tags.
const (
	TagFastTyping      = "digitacao-rapida"
	TagSlowTyping      = "digitacao-lenta"
	TagManyPauses      = "muitas-pausas"
	TagContinuousFlow  = "fluxo-continuo"
	TagSelfCorrecting  = "autocorrecao-frequente"
	TagAssertive       = "escrita-assertiva"
	TagHesitant        = "hesitacao-alta"
	TagPasted          = "texto-colado"
	TagDetailed        = "resposta-detalhada"
	TagConcise         = "resposta-concisa"
	TagStructured      = "multi-paragrafo"
	tagCorrectionsAtPt = "correcoes-"
)

var (
	sentenceSplit  = regexp.MustCompile(`[.!?…]+`)
	paragraphSplit = regexp.MustCompile(`\n\s*\n`)
)

func applyBehavior(s *Scores, text string, m *typing.TypingMetrics) (indicators, patterns []string) {
	speed := m.AverageTypingSpeed
	switch {
	case speed > FastTypingCPM:
		s.Add(Pragmatico, 3)
		indicators = append(indicators, fmt.Sprintf("Digitação rápida (%.0f cpm) sugere foco em execução", speed))
		patterns = append(patterns, TagFastTyping)
	case speed > 0 && speed < SlowTypingCPM:
		s.Add(Hesitante, 2)
		s.Add(Analitico, 1)
		indicators = append(indicators, fmt.Sprintf("Digitação lenta (%.0f cpm) sugere reflexão cuidadosa", speed))
		patterns = append(patterns, TagSlowTyping)
	}

	switch {
	case m.PauseCount > ManyPauses:
		s.Add(Hesitante, 2)
		indicators = append(indicators, fmt.Sprintf("Muitas pausas (%d) durante a escrita", m.PauseCount))
		patterns = append(patterns, TagManyPauses)
	case m.PauseCount == 0:
		s.Add(Pragmatico, 2)
		indicators = append(indicators, "Escrita contínua, sem pausas")
		patterns = append(patterns, TagContinuousFlow)
	}

	if n := utf8.RuneCountInString(text); n > 0 {
		ratio := float64(m.BackspaceCount) / float64(n)
		switch {
		case ratio > HighCorrectionRatio:
			s.Add(Hesitante, 2)
			s.Add(Analitico, 1)
			indicators = append(indicators, fmt.Sprintf("Muitas correções (%d) indicam autocrítica", m.BackspaceCount))
			patterns = append(patterns, TagSelfCorrecting)
		case ratio < LowCorrectionRatio:
			s.Add(Pragmatico, 1)
			indicators = append(indicators, "Poucas correções, escrita assertiva")
			patterns = append(patterns, TagAssertive)
		}
	}

	if m.HesitationCount > ManyHesitations {
		s.Add(Hesitante, 4)
		indicators = append(indicators, fmt.Sprintf("Hesitações longas (%d) antes de continuar", m.HesitationCount))
		patterns = append(patterns, TagHesitant)
	}

	if m.PasteCount() > 0 {
		patterns = append(patterns, TagPasted)
	}
	if hp := m.HesitationPattern(); hp != typing.PatternNone {
		patterns = append(patterns, tagCorrectionsAtPt+string(hp))
	}
	return indicators, patterns
}

func applyShape(s *Scores, text string) (indicators, patterns []string) {
	length := utf8.RuneCountInString(strings.TrimSpace(text))
	sentences := countSentences(text)

	switch {
	case length > LongAnswerChars:
		s.Add(Analitico, 2)
		s.Add(Visionario, 1)
		indicators = append(indicators, fmt.Sprintf("Resposta detalhada (%d caracteres)", length))
		patterns = append(patterns, TagDetailed)
	case length < ShortAnswerChars:
		s.Add(Pragmatico, 2)
		indicators = append(indicators, "Resposta curta e direta")
		patterns = append(patterns, TagConcise)
	case length < CompactAnswerChars && sentences <= CompactSentences:
		s.Add(Pragmatico, 1)
		indicators = append(indicators, "Resposta objetiva")
		patterns = append(patterns, TagConcise)
	}

	if p := countParagraphs(text); p >= ManyParagraphs {
		s.Add(Analitico, 2)
		indicators = append(indicators, fmt.Sprintf("Resposta organizada em %d parágrafos", p))
		patterns = append(patterns, TagStructured)
	}
	return indicators, patterns
}

func countSentences(text string) int {
	n := 0
	for _, part := range sentenceSplit.Split(text, -1) {
		if strings.TrimSpace(part) != "" {
			n++
		}
	}
	return n
}

func countParagraphs(text string) int {
	n := 0
	for _, part := range paragraphSplit.Split(text, -1) {
		if strings.TrimSpace(part) != "" {
			n++
		}
	}
	return n
}
