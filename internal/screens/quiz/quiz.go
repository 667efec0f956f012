package quiz

import (
	"context"
	"errors"
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/madboat/madboat/internal/persona"
	"github.com/madboat/madboat/internal/quiz"
	"github.com/madboat/madboat/internal/refine"
	"github.com/madboat/madboat/internal/router"
	"github.com/madboat/madboat/internal/screen"
	"github.com/madboat/madboat/internal/screens/result"
	"github.com/madboat/madboat/internal/store"
	"github.com/madboat/madboat/internal/typing"
	"github.com/madboat/madboat/internal/ui/components"
	"github.com/madboat/madboat/internal/ui/layout"
)

const answerLimit = 1000

// Screen runs one quiz session.
type Screen struct {
	deps    Deps
	session *quiz.Session

	input  components.TextInput
	choice components.MultiChoice
	typing bool // tracker started for the current text answer

	lastText *persona.Analysis
	opinions chan *refine.Opinion
	opinion  *refine.Opinion

	confirmQuit bool
	errMsg      string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.StatusProvider = (*Screen)(nil)

// New starts a fresh session.
func New(deps Deps) *Screen {
	return newScreen(deps, quiz.NewSession(deps.Classifier, deps.sessionOptions()...))
}

// Resume continues a saved session.
func Resume(deps Deps, snap *store.Snapshot) *Screen {
	s := quiz.RestoreSession(deps.Classifier, snap.SessionID, snap.Data.StartedAt, snap.Data.Responses, deps.sessionOptions()...)
	return newScreen(deps, s)
}

func newScreen(deps Deps, s *quiz.Session) *Screen {
	sc := &Screen{
		deps:     deps,
		session:  s,
		opinions: make(chan *refine.Opinion, 1),
	}
	for _, r := range s.Responses() {
		if r.Analysis != nil {
			sc.lastText = r.Analysis
		}
	}
	sc.prepare("")
	return sc
}

func (s *Screen) Init() tea.Cmd {
	return s.focus()
}

func (s *Screen) focus() tea.Cmd {
	if q, ok := s.session.Current(); ok && q.Kind == quiz.KindText {
		return s.input.Init()
	}
	return nil
}

func (s *Screen) Title() string { return "Questionário" }

func (s *Screen) Status() string {
	r := s.session.Result()
	if r.Answered == 0 {
		return ""
	}
	return r.Type.Label()
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{{Key: "S", Description: "Sair"}, {Key: "N", Description: "Continuar"}}
	}
	hints := []layout.KeyHint{{Key: "Enter", Description: "Responder"}}
	if q, ok := s.session.Current(); ok && q.Kind == quiz.KindChoice {
		hints = append(hints, layout.KeyHint{Key: "A-D", Description: "Escolher"})
	}
	return append(hints,
		layout.KeyHint{Key: "Ctrl+B", Description: "Voltar"},
		layout.KeyHint{Key: "Esc", Description: "Sair"})
}

// prepare sets up the input widgets for the current question, optionally
// pre-filled with a previous answer after Back.
func (s *Screen) prepare(previous string) {
	s.typing = false
	q, ok := s.session.Current()
	if !ok {
		return
	}
	switch q.Kind {
	case quiz.KindText:
		s.input = components.NewTextInput(q.Placeholder, answerLimit, 60)
		if previous != "" {
			s.input.SetValue(previous)
		}
	case quiz.KindChoice:
		choices := make([]components.Choice, len(q.Options))
		for i, o := range q.Options {
			choices[i] = components.Choice{Key: o.Key, Text: o.Text}
		}
		s.choice = components.NewMultiChoice(choices)
		if previous != "" {
			s.choice.Preselect(previous)
		}
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case result.OpinionMsg:
		s.opinion = msg.Opinion
		return s, nil
	case tea.PasteMsg:
		return s.handlePaste(msg)
	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirmQuit {
		switch key {
		case "s", "S", "y", "Y":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	switch key {
	case "esc":
		s.confirmQuit = true
		return s, nil
	case "ctrl+b":
		return s.back()
	}

	q, ok := s.session.Current()
	if !ok {
		return s, nil
	}
	if q.Kind == quiz.KindChoice {
		var chosen string
		s.choice, chosen = s.choice.Update(msg)
		if chosen == "" {
			return s, nil
		}
		return s.submit(func(ctx context.Context) (quiz.Result, error) {
			return s.session.SubmitChoice(ctx, chosen)
		})
	}

	if key == "enter" {
		return s.submitText()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if k, ok := trackerKey(msg); ok {
		if !s.typing {
			s.session.BeginTyping()
			s.typing = true
		}
		s.session.Keypress(k, s.input.Len())
	}
	return s, cmd
}

func (s *Screen) handlePaste(msg tea.PasteMsg) (screen.Screen, tea.Cmd) {
	q, ok := s.session.Current()
	if !ok || q.Kind != quiz.KindText || s.confirmQuit {
		return s, nil
	}
	if !s.typing {
		s.session.BeginTyping()
		s.typing = true
	}
	s.session.Paste(utf8.RuneCountInString(msg.Content))

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *Screen) submitText() (screen.Screen, tea.Cmd) {
	text := s.input.Value()
	next, cmd := s.submit(func(ctx context.Context) (quiz.Result, error) {
		return s.session.SubmitText(ctx, text)
	})
	if s.errMsg != "" {
		return next, cmd
	}

	resp := s.session.Responses()
	last := resp[len(resp)-1]
	s.lastText = last.Analysis
	if s.deps.Refine != nil && s.deps.Refine.Submit(context.Background(), refine.Request{
		SessionID: s.session.ID,
		Text:      text,
		Rule:      last.Analysis,
	}, s.deliver) {
		return next, tea.Batch(cmd, result.WaitOpinion(s.opinions))
	}
	return next, cmd
}

// deliver runs on the refine worker goroutine.
func (s *Screen) deliver(op *refine.Opinion) {
	select {
	case s.opinions <- op:
	default:
	}
}

func (s *Screen) submit(answer func(ctx context.Context) (quiz.Result, error)) (screen.Screen, tea.Cmd) {
	ctx := context.Background()
	res, err := answer(ctx)
	if err != nil {
		s.errMsg = errorText(err)
		return s, nil
	}
	s.errMsg = ""
	s.deps.saveProgress(ctx, s.session)

	if res.Done {
		s.deps.logger().Info("quiz finished",
			zap.String("session_id", s.session.ID),
			zap.String("persona", res.Type.String()),
			zap.Float64("confidence", res.Confidence),
			zap.String("reason", string(res.Reason)))
		done := result.New(res, s.opinion)
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: done} }
	}
	s.prepare("")
	return s, s.focus()
}

func (s *Screen) back() (screen.Screen, tea.Cmd) {
	prev, ok := s.session.Back()
	if !ok {
		return s, nil
	}
	s.errMsg = ""
	if prev.Analysis != nil {
		s.lastText = nil
	}
	s.deps.saveProgress(context.Background(), s.session)
	s.prepare(prev.Answer)
	return s, s.focus()
}

// trackerKey maps a terminal key to the tracker's key vocabulary. Keys that
// are neither text nor deletions still count for pause timing.
func trackerKey(msg tea.KeyPressMsg) (string, bool) {
	switch msg.String() {
	case "backspace":
		return typing.KeyBackspace, true
	case "delete":
		return typing.KeyDelete, true
	case "space":
		return " ", true
	case "left", "right", "home", "end":
		return msg.String(), true
	}
	if msg.Text != "" {
		return msg.Text, true
	}
	return "", false
}

func errorText(err error) string {
	switch {
	case errors.Is(err, quiz.ErrEmptyAnswer):
		return "Escreva uma resposta antes de continuar."
	case errors.Is(err, quiz.ErrInvalidOption):
		return "Opção inválida."
	case errors.Is(err, quiz.ErrFinished):
		return "O questionário já terminou."
	}
	return err.Error()
}
