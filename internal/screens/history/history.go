package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/madboat/madboat/internal/persona"
	"github.com/madboat/madboat/internal/quiz"
	"github.com/madboat/madboat/internal/router"
	"github.com/madboat/madboat/internal/screen"
	"github.com/madboat/madboat/internal/store"
	"github.com/madboat/madboat/internal/ui/layout"
	"github.com/madboat/madboat/internal/ui/theme"
)

const pageSize = 50

type resultsLoadedMsg struct {
	Results []store.QuizResultRecord
	Err     error
}

type responsesLoadedMsg struct {
	SessionID string
	Responses []store.ResponseRecord
	Err       error
}

// Screen lists past classifications. Enter expands one to its answers.
type Screen struct {
	events store.EventRepo
	bank   *quiz.Bank

	results   []store.QuizResultRecord
	responses map[string][]store.ResponseRecord
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the screen. Results recorded against a different major bank
// version than bank are flagged.
func New(events store.EventRepo, bank *quiz.Bank) *Screen {
	return &Screen{
		events:    events,
		bank:      bank,
		responses: make(map[string][]store.ResponseRecord),
		expanded:  make(map[int]bool),
	}
}

func (s *Screen) Init() tea.Cmd {
	return func() tea.Msg {
		results, err := s.events.RecentResults(context.Background(), store.QueryOpts{Limit: pageSize})
		return resultsLoadedMsg{Results: results, Err: err}
	}
}

func (s *Screen) Title() string { return "Histórico" }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Respostas"},
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Esc", Description: "Voltar"},
	}
}

func (s *Screen) loadResponses(sessionID string) tea.Cmd {
	return func() tea.Msg {
		rs, err := s.events.SessionResponses(context.Background(), sessionID)
		return responsesLoadedMsg{SessionID: sessionID, Responses: rs, Err: err}
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resultsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.results = msg.Results
		}
		s.loaded = true
		return s, nil

	case responsesLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.responses[msg.SessionID] = msg.Responses
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.results)-1 {
				s.selected++
			}
		case "enter":
			if len(s.results) == 0 {
				return s, nil
			}
			s.expanded[s.selected] = !s.expanded[s.selected]
			id := s.results[s.selected].SessionID
			if _, ok := s.responses[id]; !ok && s.expanded[s.selected] {
				return s, s.loadResponses(id)
			}
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	center := func(style lipgloss.Style, text string) string {
		return style.Width(width).Align(lipgloss.Center).Render(text)
	}
	if s.errMsg != "" {
		return center(lipgloss.NewStyle().Foreground(theme.Error), "\n\nErro: "+s.errMsg)
	}
	if !s.loaded {
		return center(theme.Hint, "\n\nCarregando histórico...")
	}
	if len(s.results) == 0 {
		return center(theme.Hint.Italic(true), "\n\nNenhum resultado ainda. Faça o questionário!")
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, r := range s.results {
		b.WriteString(layout.Center(width, s.resultLine(i, r)))
		b.WriteString("\n")
		if s.expanded[i] {
			for _, line := range s.responseLines(r.SessionID) {
				b.WriteString(layout.Center(width, line))
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}

func (s *Screen) resultLine(i int, r store.QuizResultRecord) string {
	prefix := "  "
	style := lipgloss.NewStyle().Foreground(theme.Text)
	if i == s.selected {
		prefix = "▸ "
		style = style.Bold(true)
	}
	label := r.Persona
	if c, err := persona.ParseCategory(r.Persona); err == nil {
		label = c.Label()
		if i == s.selected {
			style = style.Foreground(theme.PersonaColor(c))
		}
	}

	d := r.Duration().Round(time.Second)
	line := fmt.Sprintf("%s%s  %-13s %3.0f%%  %2d respostas  %s",
		prefix, r.FinishedAt.Local().Format("02/01/2006 15:04"), label, r.Confidence, r.Answered, d)
	if s.bank != nil && !s.bank.Compatible(r.BankVersion) {
		line += "  " + lipgloss.NewStyle().Foreground(theme.Accent).Render("banco "+r.BankVersion)
	}
	return style.Render(line)
}

func (s *Screen) responseLines(sessionID string) []string {
	rs, ok := s.responses[sessionID]
	if !ok {
		return []string{theme.Hint.Render("    carregando...")}
	}
	if len(rs) == 0 {
		return []string{theme.Hint.Italic(true).Render("    sem respostas registradas")}
	}
	lines := make([]string, 0, len(rs))
	for _, r := range rs {
		answer := r.Answer
		if len([]rune(answer)) > 40 {
			answer = string([]rune(answer)[:39]) + "…"
		}
		line := fmt.Sprintf("    %d. %-42s → %s", r.Position+1, answer, r.LeadingPersona)
		if r.TextPersona != "" {
			line += fmt.Sprintf("  (texto: %s, %.0f cpm)", r.TextPersona, r.TypingCPM)
		}
		lines = append(lines, theme.Hint.Render(line))
	}
	return lines
}
