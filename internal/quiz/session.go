package quiz

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/madboat/madboat/internal/persona"
	"github.com/madboat/madboat/internal/typing"
)

var (
	// ErrEmptyAnswer is returned when a free-text answer is blank.
	ErrEmptyAnswer = errors.New("answer is empty")

	// ErrInvalidOption is returned for an option key the question does not have.
	ErrInvalidOption = errors.New("invalid option")

	// ErrWrongKind is returned when a text answer is submitted to a choice
	// question or the reverse.
	ErrWrongKind = errors.New("answer kind does not match question")

	// ErrFinished is returned when answering after the quiz is done.
	ErrFinished = errors.New("quiz already finished")
)

// ResponseEvent is recorded for every accepted answer.
type ResponseEvent struct {
	SessionID string
	Index     int
	Response  Response
	Result    Result
}

// QuizEvent is recorded once, when a session reaches a final result.
type QuizEvent struct {
	SessionID   string
	BankVersion string
	StartedAt   time.Time
	FinishedAt  time.Time
	Result      Result
}

// Recorder persists quiz progress. The store implements it.
type Recorder interface {
	AppendResponseEvent(ctx context.Context, e ResponseEvent) error
	AppendQuizEvent(ctx context.Context, e QuizEvent) error
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithClock overrides time.Now for the session and its tracker.
func WithClock(c typing.Clock) SessionOption {
	return func(s *Session) { s.now = c }
}

// WithRecorder persists responses and the final result.
func WithRecorder(r Recorder) SessionOption {
	return func(s *Session) { s.recorder = r }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) SessionOption {
	return func(s *Session) { s.logger = l }
}

// Session walks one user through the bank. It owns the tracker and the
// response list; it is not safe for concurrent use.
type Session struct {
	// ID is the UUID for this session.
	ID string

	classifier *Classifier
	tracker    *typing.Tracker
	recorder   Recorder
	logger     *zap.Logger
	now        typing.Clock

	startedAt time.Time
	responses []Response
	result    Result
}

// NewSession starts a session over the classifier's bank.
func NewSession(c *Classifier, opts ...SessionOption) *Session {
	s := &Session{
		ID:         uuid.NewString(),
		classifier: c,
		now:        time.Now,
		logger:     zap.NewNop(),
	}
	for _, o := range opts {
		o(s)
	}
	s.tracker = typing.NewTracker(s.now)
	s.startedAt = s.now()
	s.result = c.Classify(nil)
	return s
}

// RestoreSession rebuilds an interrupted session from its saved responses.
// The restored responses are not recorded again.
func RestoreSession(c *Classifier, id string, startedAt time.Time, responses []Response, opts ...SessionOption) *Session {
	s := NewSession(c, opts...)
	s.ID = id
	if !startedAt.IsZero() {
		s.startedAt = startedAt
	}
	s.responses = append([]Response(nil), responses...)
	s.result = c.Classify(s.responses)
	return s
}

// StartedAt is when the session was created.
func (s *Session) StartedAt() time.Time { return s.startedAt }

// Current returns the question awaiting an answer. ok is false once the
// session is done.
func (s *Session) Current() (Question, bool) {
	if s.result.Done {
		return Question{}, false
	}
	return s.classifier.bank.Question(len(s.responses))
}

// Index returns the zero-based position of the current question.
func (s *Session) Index() int { return len(s.responses) }

// Responses returns a copy of the answers so far.
func (s *Session) Responses() []Response {
	out := make([]Response, len(s.responses))
	copy(out, s.responses)
	return out
}

// Result returns the classification over the current response list.
func (s *Session) Result() Result { return s.result }

// BeginTyping starts keystroke capture for the current free-text question.
func (s *Session) BeginTyping() {
	s.tracker.Start()
}

// Keypress forwards one key to the tracker.
func (s *Session) Keypress(key string, textLen int) {
	s.tracker.TrackKeypress(key, textLen)
}

// Paste forwards a paste of n characters to the tracker.
func (s *Session) Paste(n int) {
	s.tracker.TrackPaste(n)
}

// SubmitText answers the current free-text question. Typing metrics are
// attached when capture was started.
func (s *Session) SubmitText(ctx context.Context, text string) (Result, error) {
	q, ok := s.Current()
	if !ok {
		return s.result, ErrFinished
	}
	if q.Kind != KindText {
		return s.result, ErrWrongKind
	}
	if strings.TrimSpace(text) == "" {
		return s.result, ErrEmptyAnswer
	}

	var metrics *typing.TypingMetrics
	if s.tracker.Running() {
		m, err := s.tracker.Stop()
		if err == nil {
			metrics = m
		}
	}

	r := Response{
		QuestionID: q.ID,
		Answer:     text,
		Timestamp:  s.now(),
		Analysis:   persona.Analyze(text, metrics),
		Metrics:    metrics,
	}
	return s.append(ctx, r), nil
}

// SubmitChoice answers the current multiple-choice question.
func (s *Session) SubmitChoice(ctx context.Context, key string) (Result, error) {
	q, ok := s.Current()
	if !ok {
		return s.result, ErrFinished
	}
	if q.Kind != KindChoice {
		return s.result, ErrWrongKind
	}
	opt, ok := q.Option(key)
	if !ok {
		return s.result, ErrInvalidOption
	}

	r := Response{
		QuestionID: q.ID,
		Answer:     opt.Key,
		Timestamp:  s.now(),
	}
	return s.append(ctx, r), nil
}

// Back drops the most recent response and returns it so the caller can
// restore the input. ok is false when there is nothing to undo.
func (s *Session) Back() (Response, bool) {
	if len(s.responses) == 0 {
		return Response{}, false
	}
	last := s.responses[len(s.responses)-1]
	s.responses = s.responses[:len(s.responses)-1]
	s.result = s.classifier.Classify(s.responses)
	return last, true
}

func (s *Session) append(ctx context.Context, r Response) Result {
	s.responses = append(s.responses, r)
	s.result = s.classifier.Classify(s.responses)

	s.logger.Debug("response recorded",
		zap.String("session_id", s.ID),
		zap.Int("question", r.QuestionID),
		zap.String("leading", s.result.Type.String()),
		zap.Float64("confidence", s.result.Confidence),
	)

	if s.recorder == nil {
		return s.result
	}
	if err := s.recorder.AppendResponseEvent(ctx, ResponseEvent{
		SessionID: s.ID,
		Index:     len(s.responses) - 1,
		Response:  r,
		Result:    s.result,
	}); err != nil {
		s.logger.Warn("record response", zap.String("session_id", s.ID), zap.Error(err))
	}
	if s.result.Done {
		if err := s.recorder.AppendQuizEvent(ctx, QuizEvent{
			SessionID:   s.ID,
			BankVersion: s.classifier.bank.Version,
			StartedAt:   s.startedAt,
			FinishedAt:  s.now(),
			Result:      s.result,
		}); err != nil {
			s.logger.Warn("record result", zap.String("session_id", s.ID), zap.Error(err))
		}
	}
	return s.result
}
