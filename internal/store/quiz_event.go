package store

import (
	"context"
	"fmt"

	"github.com/madboat/madboat/ent"
	"github.com/madboat/madboat/ent/quizevent"
	"github.com/madboat/madboat/ent/responseevent"
	"github.com/madboat/madboat/internal/persona"
	"github.com/madboat/madboat/internal/quiz"
)

// eventRepo implements EventRepo on ent plus the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendResponseEvent(ctx context.Context, e quiz.ResponseEvent) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	b := r.client.ResponseEvent.Create().
		SetSequence(seqNum).
		SetSessionID(e.SessionID).
		SetPosition(e.Index).
		SetQuestionID(e.Response.QuestionID).
		SetAnswer(e.Response.Answer).
		SetLeadingPersona(e.Result.Type.String()).
		SetLeadingConfidence(e.Result.Confidence)

	if a := e.Response.Analysis; a != nil {
		b = b.SetTextPersona(a.Type.String()).
			SetTextConfidence(a.Confidence).
			SetIndicators(a.Indicators).
			SetBehavioralPatterns(a.BehavioralPatterns)
	}
	if m := e.Response.Metrics; m != nil {
		b = b.SetTypingCpm(m.AverageTypingSpeed).
			SetTypingMs(m.TotalTimeMs).
			SetPauses(m.PauseCount).
			SetHesitations(m.HesitationCount).
			SetBackspaces(m.BackspaceCount).
			SetPastes(m.PasteCount())
	}

	if _, err := b.Save(ctx); err != nil {
		return fmt.Errorf("save response event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendQuizEvent(ctx context.Context, e quiz.QuizEvent) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	scores := make(map[string]float64)
	for _, c := range persona.AllCategories() {
		scores[c.String()] = e.Result.Scores.Get(c)
	}

	_, err = r.client.QuizEvent.Create().
		SetSequence(seqNum).
		SetSessionID(e.SessionID).
		SetBankVersion(e.BankVersion).
		SetPersona(e.Result.Type.String()).
		SetConfidence(e.Result.Confidence).
		SetReason(string(e.Result.Reason)).
		SetAnswered(e.Result.Answered).
		SetScores(scores).
		SetEvidence(e.Result.Evidence).
		SetStartedAt(e.StartedAt).
		SetFinishedAt(e.FinishedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentResults(ctx context.Context, opts QueryOpts) ([]QuizResultRecord, error) {
	q := r.client.QuizEvent.Query()
	if opts.After > 0 {
		q = q.Where(quizevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(quizevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(quizevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(quizevent.TimestampLTE(opts.To))
	}
	q = q.Order(ent.Desc(quizevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query quiz events: %w", err)
	}

	out := make([]QuizResultRecord, len(rows))
	for i, e := range rows {
		out[i] = QuizResultRecord{
			ID:          e.ID,
			Sequence:    e.Sequence,
			Timestamp:   e.Timestamp,
			SessionID:   e.SessionID,
			BankVersion: e.BankVersion,
			Persona:     e.Persona,
			Confidence:  e.Confidence,
			Reason:      e.Reason,
			Answered:    e.Answered,
			Scores:      e.Scores,
			Evidence:    e.Evidence,
			StartedAt:   e.StartedAt,
			FinishedAt:  e.FinishedAt,
		}
	}
	return out, nil
}

func (r *eventRepo) SessionResponses(ctx context.Context, sessionID string) ([]ResponseRecord, error) {
	rows, err := r.client.ResponseEvent.Query().
		Where(responseevent.SessionID(sessionID)).
		Order(ent.Asc(responseevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query responses: %w", err)
	}

	out := make([]ResponseRecord, len(rows))
	for i, e := range rows {
		out[i] = ResponseRecord{
			Sequence:           e.Sequence,
			Timestamp:          e.Timestamp,
			SessionID:          e.SessionID,
			Position:           e.Position,
			QuestionID:         e.QuestionID,
			Answer:             e.Answer,
			LeadingPersona:     e.LeadingPersona,
			LeadingConfidence:  e.LeadingConfidence,
			TextPersona:        e.TextPersona,
			TextConfidence:     e.TextConfidence,
			Indicators:         e.Indicators,
			BehavioralPatterns: e.BehavioralPatterns,
			TypingCPM:          e.TypingCpm,
			TypingMs:           e.TypingMs,
			Pauses:             e.Pauses,
			Hesitations:        e.Hesitations,
			Backspaces:         e.Backspaces,
			Pastes:             e.Pastes,
		}
	}
	return out, nil
}

func (r *eventRepo) PersonaCounts(ctx context.Context) (map[string]int, error) {
	rows, err := r.client.QuizEvent.Query().
		Select(quizevent.FieldPersona).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query personas: %w", err)
	}
	counts := make(map[string]int)
	for _, p := range rows {
		counts[p]++
	}
	return counts, nil
}
