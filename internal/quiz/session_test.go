package quiz

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madboat/madboat/internal/persona"
	"github.com/madboat/madboat/internal/typing"
)

type fakeRecorder struct {
	responses []ResponseEvent
	quizzes   []QuizEvent
	err       error
}

func (f *fakeRecorder) AppendResponseEvent(_ context.Context, e ResponseEvent) error {
	f.responses = append(f.responses, e)
	return f.err
}

func (f *fakeRecorder) AppendQuizEvent(_ context.Context, e QuizEvent) error {
	f.quizzes = append(f.quizzes, e)
	return f.err
}

type stepClock struct{ t time.Time }

func (c *stepClock) Now() time.Time { return c.t }

func (c *stepClock) Advance(ms int) { c.t = c.t.Add(time.Duration(ms) * time.Millisecond) }

func newTestSession(opts ...SessionOption) (*Session, *stepClock) {
	clk := &stepClock{t: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	opts = append([]SessionOption{WithClock(clk.Now)}, opts...)
	return NewSession(NewClassifier(DefaultBank()), opts...), clk
}

func typeText(s *Session, clk *stepClock, text string, stepMs int) {
	n := 0
	for _, r := range text {
		clk.Advance(stepMs)
		n++
		s.Keypress(string(r), n)
	}
}

func TestSession_FreeTextWithTyping(t *testing.T) {
	s, clk := newTestSession()
	ctx := context.Background()

	q, ok := s.Current()
	require.True(t, ok)
	require.Equal(t, KindText, q.Kind)

	text := "vamos agir agora"
	s.BeginTyping()
	typeText(s, clk, text, 100)

	res, err := s.SubmitText(ctx, text)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Answered)
	assert.Equal(t, persona.Pragmatico, res.Type)

	rs := s.Responses()
	require.Len(t, rs, 1)
	require.NotNil(t, rs[0].Metrics)
	assert.Equal(t, len([]rune(text)), rs[0].Metrics.CharacterCount)
	assert.InDelta(t, 600, rs[0].Metrics.AverageTypingSpeed, 0.001)
	assert.Contains(t, rs[0].Analysis.BehavioralPatterns, persona.TagFastTyping)
}

func TestSession_SubmitTextWithoutTyping(t *testing.T) {
	s, _ := newTestSession()
	_, err := s.SubmitText(context.Background(), "gosto de dados")
	require.NoError(t, err)
	assert.Nil(t, s.Responses()[0].Metrics)
}

func TestSession_Errors(t *testing.T) {
	s, _ := newTestSession()
	ctx := context.Background()

	_, err := s.SubmitText(ctx, "   \n")
	assert.ErrorIs(t, err, ErrEmptyAnswer)

	_, err = s.SubmitChoice(ctx, "A")
	assert.ErrorIs(t, err, ErrWrongKind)

	_, err = s.SubmitText(ctx, "vamos")
	require.NoError(t, err)

	_, err = s.SubmitChoice(ctx, "E")
	assert.ErrorIs(t, err, ErrInvalidOption)

	_, err = s.SubmitText(ctx, "texto")
	assert.ErrorIs(t, err, ErrWrongKind)

	assert.Equal(t, 1, s.Index(), "rejected answers are not recorded")
}

func TestSession_ChoiceKeyIsCaseInsensitive(t *testing.T) {
	s, _ := newTestSession()
	ctx := context.Background()
	_, err := s.SubmitText(ctx, "vamos")
	require.NoError(t, err)

	_, err = s.SubmitChoice(ctx, " b ")
	require.NoError(t, err)
	assert.Equal(t, "B", s.Responses()[1].Answer)
}

func TestSession_Back(t *testing.T) {
	s, _ := newTestSession()
	ctx := context.Background()

	_, ok := s.Back()
	assert.False(t, ok)

	_, err := s.SubmitText(ctx, "quero criar algo diferente")
	require.NoError(t, err)
	afterOne, err := s.SubmitChoice(ctx, "D")
	require.NoError(t, err)
	_, err = s.SubmitChoice(ctx, "A")
	require.NoError(t, err)

	last, ok := s.Back()
	require.True(t, ok)
	assert.Equal(t, 2, last.QuestionID)
	assert.Equal(t, "A", last.Answer)
	assert.Equal(t, 2, s.Index())

	if diff := cmp.Diff(afterOne, s.Result()); diff != "" {
		t.Errorf("result after Back differs (-want +got):\n%s", diff)
	}

	q, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, 2, q.ID)
}

func TestSession_RunToEarlyExit(t *testing.T) {
	rec := &fakeRecorder{}
	s, _ := newTestSession(WithRecorder(rec))
	ctx := context.Background()

	_, err := s.SubmitText(ctx, "vamos agir e entregar")
	require.NoError(t, err)

	var res Result
	for _, k := range []string{"B", "B", "D", "A", "A", "A", "A", "B"} {
		res, err = s.SubmitChoice(ctx, k)
		require.NoError(t, err)
	}

	assert.True(t, res.Done)
	assert.Equal(t, ReasonEarlyExit, res.Reason)
	_, ok := s.Current()
	assert.False(t, ok)

	_, err = s.SubmitChoice(ctx, "A")
	assert.ErrorIs(t, err, ErrFinished)

	assert.Len(t, rec.responses, 9)
	require.Len(t, rec.quizzes, 1)
	assert.Equal(t, s.ID, rec.quizzes[0].SessionID)
	assert.Equal(t, DefaultBank().Version, rec.quizzes[0].BankVersion)
	assert.Equal(t, persona.Pragmatico, rec.quizzes[0].Result.Type)
}

func TestSession_RecorderErrorsDoNotFailAnswers(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("disk full")}
	s, _ := newTestSession(WithRecorder(rec))

	_, err := s.SubmitText(context.Background(), "vamos")
	require.NoError(t, err)
	assert.Len(t, rec.responses, 1)
}

func TestSession_PasteTagged(t *testing.T) {
	s, clk := newTestSession()
	s.BeginTyping()
	clk.Advance(500)
	s.Paste(30)
	clk.Advance(500)

	_, err := s.SubmitText(context.Background(), "quero criar algo muito diferente")
	require.NoError(t, err)

	m := s.Responses()[0].Metrics
	require.NotNil(t, m)
	assert.Equal(t, 1, m.PasteCount())
	assert.Equal(t, 0, m.BackspaceCount)
	assert.Equal(t, []typing.Event{{Kind: typing.EventPaste, AtMs: 500}}, m.Corrections)
}

func TestRestoreSession(t *testing.T) {
	s, _ := newTestSession()
	ctx := context.Background()
	_, err := s.SubmitText(ctx, "gosto de dados")
	require.NoError(t, err)
	_, err = s.SubmitChoice(ctx, "A")
	require.NoError(t, err)

	rec := &fakeRecorder{}
	started := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	restored := RestoreSession(s.classifier, s.ID, started, s.Responses(), WithRecorder(rec))

	assert.Equal(t, s.ID, restored.ID)
	assert.Equal(t, started, restored.StartedAt())
	assert.Equal(t, 2, restored.Index())
	if diff := cmp.Diff(s.Result(), restored.Result()); diff != "" {
		t.Errorf("result mismatch (-orig +restored):\n%s", diff)
	}
	assert.Empty(t, rec.responses)

	_, err = restored.SubmitChoice(ctx, "B")
	require.NoError(t, err)
	require.Len(t, rec.responses, 1)
	assert.Equal(t, 2, rec.responses[0].Index)
}
