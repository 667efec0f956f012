package store

import (
	"context"
	"time"

	"github.com/madboat/madboat/internal/quiz"
)

// QueryOpts filters and paginates event queries.
type QueryOpts struct {
	Limit  int       // 0 = unlimited
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// QuizResultRecord is a persisted final classification.
type QuizResultRecord struct {
	ID          int
	Sequence    int64
	Timestamp   time.Time
	SessionID   string
	BankVersion string
	Persona     string
	Confidence  float64
	Reason      string
	Answered    int
	Scores      map[string]float64
	Evidence    []string
	StartedAt   time.Time
	FinishedAt  time.Time
}

// Duration is how long the session took.
func (r QuizResultRecord) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// ResponseRecord is one persisted answer.
type ResponseRecord struct {
	Sequence           int64
	Timestamp          time.Time
	SessionID          string
	Position           int
	QuestionID         int
	Answer             string
	LeadingPersona     string
	LeadingConfidence  float64
	TextPersona        string
	TextConfidence     float64
	Indicators         []string
	BehavioralPatterns []string
	TypingCPM          float64
	TypingMs           int64
	Pauses             int
	Hesitations        int
	Backspaces         int
	Pastes             int
}

// RefinementEventData is an LLM second opinion on a free-text answer.
type RefinementEventData struct {
	SessionID       string
	RulePersona     string
	RuleConfidence  float64
	ModelPersona    string
	ModelConfidence float64
	Model           string
	Reasoning       string
}

// LLMRequestEventData captures a single model call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a persisted model call.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStats aggregates calls per purpose.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates tokens per model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo appends and queries domain events.
type EventRepo interface {
	quiz.Recorder

	AppendRefinementEvent(ctx context.Context, data RefinementEventData) error
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentResults returns final classifications, newest first.
	RecentResults(ctx context.Context, opts QueryOpts) ([]QuizResultRecord, error)

	// SessionResponses returns the answers of one session in order.
	SessionResponses(ctx context.Context, sessionID string) ([]ResponseRecord, error)

	// PersonaCounts returns how many final results each persona has.
	PersonaCounts(ctx context.Context) (map[string]int, error)

	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}

// SnapshotData is the resumable state of an unfinished quiz.
type SnapshotData struct {
	Version     int             `json:"version"`
	BankVersion string          `json:"bank_version"`
	StartedAt   time.Time       `json:"started_at"`
	Responses   []quiz.Response `json:"responses"`
}

// Snapshot is a stored SnapshotData.
type Snapshot struct {
	ID        int
	SessionID string
	Sequence  int64
	Timestamp time.Time
	Done      bool
	Data      SnapshotData
}

// SnapshotRepo stores resumable quiz state.
type SnapshotRepo interface {
	// Save stores a new snapshot. Sequence is assigned when zero.
	Save(ctx context.Context, snap *Snapshot) error

	// LatestUnfinished returns the newest snapshot whose session has not
	// finished, or nil.
	LatestUnfinished(ctx context.Context) (*Snapshot, error)

	// MarkDone flags every snapshot of a session as finished.
	MarkDone(ctx context.Context, sessionID string) error

	// Prune deletes all but the keep most recent snapshots.
	Prune(ctx context.Context, keep int) error
}
