// Package batch classifies recorded answer sets in parallel.
package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/google/uuid"

	"github.com/madboat/madboat/internal/persona"
	"github.com/madboat/madboat/internal/quiz"
	"github.com/madboat/madboat/internal/refine"
	"github.com/madboat/madboat/internal/typing"
)

// Input is the YAML document read by `madboat batch`.
type Input struct {
	Sessions []SessionInput `yaml:"sessions"`
}

// SessionInput is one recorded quiz. ID is generated when empty.
type SessionInput struct {
	ID        string          `yaml:"id"`
	Responses []ResponseInput `yaml:"responses"`
}

// ResponseInput is one answer, optionally with summary typing figures.
type ResponseInput struct {
	QuestionID int          `yaml:"question_id"`
	Answer     string       `yaml:"answer"`
	Typing     *TypingInput `yaml:"typing,omitempty"`
}

// TypingInput is the subset of typing metrics that can be recorded by hand.
type TypingInput struct {
	CPM         float64 `yaml:"cpm"`
	TotalMs     int64   `yaml:"total_ms"`
	Pauses      int     `yaml:"pauses"`
	Hesitations int     `yaml:"hesitations"`
	Backspaces  int     `yaml:"backspaces"`
	Pastes      int     `yaml:"pastes"`
}

// Metrics builds TypingMetrics from the recorded figures.
func (t *TypingInput) Metrics(chars int) *typing.TypingMetrics {
	if t == nil {
		return nil
	}
	m := &typing.TypingMetrics{
		TotalTimeMs:        t.TotalMs,
		CharacterCount:     chars,
		AverageTypingSpeed: t.CPM,
		PauseCount:         t.Pauses,
		HesitationCount:    t.Hesitations,
		BackspaceCount:     t.Backspaces,
	}
	for range t.Backspaces {
		m.Corrections = append(m.Corrections, typing.Event{Kind: typing.EventCorrection})
	}
	for range t.Pastes {
		m.Corrections = append(m.Corrections, typing.Event{Kind: typing.EventPaste})
	}
	return m
}

// Load reads an Input from a YAML file.
func Load(path string) (*Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read batch file: %w", err)
	}
	return Parse(data)
}

// Parse decodes an Input.
func Parse(data []byte) (*Input, error) {
	var in Input
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("parse batch file: %w", err)
	}
	if len(in.Sessions) == 0 {
		return nil, errors.New("batch file has no sessions")
	}
	return &in, nil
}

// Outcome is the classification of one session.
type Outcome struct {
	SessionID string
	Result    quiz.Result
	Opinions  []*refine.Opinion // second opinions on weak free-text answers
	Err       error
}

// Runner classifies sessions with bounded parallelism.
type Runner struct {
	Classifier *quiz.Classifier
	Workers    int
	Recorder   quiz.Recorder   // optional; final results are persisted
	Refine     *refine.Service // optional
	Logger     *zap.Logger
}

func (r *Runner) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

// Run classifies every session. Failures are reported per outcome; the
// returned error is only set when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, in *Input) ([]Outcome, error) {
	logger := r.logger()
	results := make([]Outcome, len(in.Sessions))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(max(r.Workers, 1))
	for i, s := range in.Sessions {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i] = r.classify(gCtx, s)
			if results[i].Err != nil {
				logger.Warn("batch session failed",
					zap.String("session_id", results[i].SessionID), zap.Error(results[i].Err))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func (r *Runner) classify(ctx context.Context, s SessionInput) Outcome {
	out := Outcome{SessionID: s.ID}
	if out.SessionID == "" {
		out.SessionID = uuid.NewString()
	}
	if len(s.Responses) == 0 {
		out.Err = errors.New("session has no responses")
		return out
	}

	bank := r.Classifier.Bank()
	now := time.Now()
	responses := make([]quiz.Response, 0, len(s.Responses))
	for _, in := range s.Responses {
		q, ok := bank.Question(in.QuestionID)
		if !ok {
			out.Err = fmt.Errorf("unknown question %d", in.QuestionID)
			return out
		}
		resp := quiz.Response{QuestionID: q.ID, Answer: in.Answer, Timestamp: now}
		if q.Kind == quiz.KindText {
			resp.Metrics = in.Typing.Metrics(len([]rune(in.Answer)))
			resp.Analysis = persona.Analyze(in.Answer, resp.Metrics)
			if op := r.secondOpinion(ctx, out.SessionID, in.Answer, resp.Analysis); op != nil {
				out.Opinions = append(out.Opinions, op)
			}
		}
		responses = append(responses, resp)
	}

	out.Result = r.Classifier.Classify(responses)
	if r.Recorder != nil {
		err := r.Recorder.AppendQuizEvent(ctx, quiz.QuizEvent{
			SessionID:   out.SessionID,
			BankVersion: bank.Version,
			StartedAt:   now,
			FinishedAt:  now,
			Result:      out.Result,
		})
		if err != nil {
			out.Err = fmt.Errorf("record result: %w", err)
		}
	}
	return out
}

func (r *Runner) secondOpinion(ctx context.Context, sessionID, text string, a *persona.Analysis) *refine.Opinion {
	if r.Refine == nil || !r.Refine.Wants(a) {
		return nil
	}
	op, err := r.Refine.Refine(ctx, refine.Request{SessionID: sessionID, Text: text, Rule: a})
	if err != nil {
		r.logger().Warn("batch second opinion", zap.String("session_id", sessionID), zap.Error(err))
		return nil
	}
	return op
}
