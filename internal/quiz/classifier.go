package quiz

import (
	"fmt"

	"github.com/madboat/madboat/internal/persona"
)

// Early-exit policy.
const (
	// EarlyExitIndex is the zero-based index of the response after which the
	// quiz may stop early.
	EarlyExitIndex = 8

	// EarlyExitConfidence is the minimum confidence for stopping early.
	EarlyExitConfidence = 75
)

// Classifier folds a response list into a Result. It holds no state besides
// the bank, so Classify is a pure function of its input.
type Classifier struct {
	bank *Bank
}

// NewClassifier creates a classifier for bank.
func NewClassifier(bank *Bank) *Classifier {
	return &Classifier{bank: bank}
}

// Bank returns the question bank.
func (c *Classifier) Bank() *Bank { return c.bank }

// Classify recomputes category totals from scratch and applies the exit
// policy. It never fails; unknown questions or options contribute nothing.
func (c *Classifier) Classify(responses []Response) Result {
	var scores persona.Scores
	var evidence []string

	for _, r := range responses {
		q, ok := c.bank.Question(r.QuestionID)
		if !ok {
			continue
		}
		switch q.Kind {
		case KindText:
			a := r.Analysis
			if a == nil {
				a = persona.Analyze(r.Answer, r.Metrics)
			}
			scores.Merge(a.Scores)
			if !a.Scores.IsZero() {
				evidence = append(evidence, fmt.Sprintf("Q%d: texto livre indica %s (%.0f%%)", q.ID+1, a.Type.Label(), a.Confidence))
			}
		case KindChoice:
			opt, ok := q.Option(r.Answer)
			if !ok {
				continue
			}
			scores.Add(opt.Category, q.Weight)
			evidence = append(evidence, fmt.Sprintf("Q%d: %s → %s (+%g)", q.ID+1, opt.Key, opt.Category.Label(), q.Weight))
		}
	}

	top, best, second := scores.Top()
	res := Result{
		Type:       top,
		Confidence: persona.Confidence(best, second),
		Scores:     scores,
		Evidence:   evidence,
		Answered:   len(responses),
		Reason:     ReasonContinue,
	}
	if res.Evidence == nil {
		res.Evidence = []string{}
	}

	switch {
	case len(responses) >= c.bank.Len():
		res.Done = true
		res.Reason = ReasonFinal
	case len(responses) == EarlyExitIndex+1 && res.Confidence >= EarlyExitConfidence:
		res.Done = true
		res.Reason = ReasonEarlyExit
	}
	return res
}
