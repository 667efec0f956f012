package persona

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/madboat/madboat/internal/typing"
)

// MaxConfidence is the ceiling for every reported confidence.
const MaxConfidence = 95

// Analysis is the persona reading of one free-text answer.
type Analysis struct {
	Type               Category `json:"type"`
	Confidence         float64  `json:"confidence"`
	Indicators         []string `json:"indicators"`
	SemanticScore      float64  `json:"semantic_score"`
	BehavioralPatterns []string `json:"behavioral_patterns"`
	Scores             Scores   `json:"scores"`
}

// Analyze scores text (and, when non-nil, its typing metrics) against the
// category rule table. It never fails: text without evidence yields a
// zero-confidence analysis.
func Analyze(text string, metrics *typing.TypingMetrics) *Analysis {
	text = norm.NFC.String(text)

	scores, indicators := ScoreText(text)
	var patterns []string

	// Overlays reinforce existing evidence; they never create a reading on
	// their own.
	if !scores.IsZero() {
		if metrics != nil {
			ind, pat := applyBehavior(&scores, text, metrics)
			indicators = append(indicators, ind...)
			patterns = append(patterns, pat...)
		}
		ind, pat := applyShape(&scores, text)
		indicators = append(indicators, ind...)
		patterns = append(patterns, pat...)
	}

	top, topScore, second := scores.Top()
	return &Analysis{
		Type:               top,
		Confidence:         Confidence(topScore, second),
		Indicators:         nonNil(indicators),
		SemanticScore:      topScore,
		BehavioralPatterns: nonNil(patterns),
		Scores:             scores,
	}
}

// ScoreText runs the keyword and pattern passes only.
func ScoreText(text string) (Scores, []string) {
	var scores Scores
	var indicators []string

	lower := cases.Lower(language.BrazilianPortuguese).String(text)

	for _, c := range AllCategories() {
		rs := rules[c]
		for _, kw := range rs.Keywords {
			if strings.Contains(lower, kw) {
				scores.Add(c, KeywordPoints)
				indicators = append(indicators, fmt.Sprintf("word: %q", kw))
			}
		}
		for _, p := range rs.Patterns {
			n := p.Count(text)
			if n == 0 {
				continue
			}
			scores.Add(c, p.Weight*float64(min(n, MaxPatternMultiplier)))
			indicators = append(indicators, fmt.Sprintf("%s: %dx", p.Name, n))
		}
	}
	return scores, indicators
}

// Confidence converts the top score and the runner-up score into a 0–95
// confidence that rewards both magnitude and separation.
func Confidence(top, second float64) float64 {
	if top <= 0 {
		return 0
	}
	gap := top - second
	c := top/(top+1)*100 + gap*10
	return math.Max(0, math.Min(MaxConfidence, c))
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
