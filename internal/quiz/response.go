package quiz

import (
	"time"

	"github.com/madboat/madboat/internal/persona"
	"github.com/madboat/madboat/internal/typing"
)

// Response is one answered question. Responses are appended in order and
// never mutated afterwards.
type Response struct {
	QuestionID int       `json:"question_id"`
	Answer     string    `json:"answer"`
	Timestamp  time.Time `json:"timestamp"`

	// Free-text questions only.
	Analysis *persona.Analysis     `json:"semantic_analysis,omitempty"`
	Metrics  *typing.TypingMetrics `json:"typing_metrics,omitempty"`
}

// Reason explains the state of a Result.
type Reason string

const (
	ReasonContinue  Reason = "continue"
	ReasonEarlyExit Reason = "early-exit"
	ReasonFinal     Reason = "final"
)

// Result is the aggregated classification over all responses so far.
type Result struct {
	Type       persona.Category `json:"type"`
	Confidence float64          `json:"confidence"`
	Scores     persona.Scores   `json:"scores"`
	Evidence   []string         `json:"evidence"`
	Answered   int              `json:"answered"`
	Done       bool             `json:"done"`
	Reason     Reason           `json:"reason"`
}
