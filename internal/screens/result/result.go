package result

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/madboat/madboat/internal/persona"
	"github.com/madboat/madboat/internal/quiz"
	"github.com/madboat/madboat/internal/refine"
	"github.com/madboat/madboat/internal/router"
	"github.com/madboat/madboat/internal/screen"
	"github.com/madboat/madboat/internal/ui/components"
	"github.com/madboat/madboat/internal/ui/layout"
	"github.com/madboat/madboat/internal/ui/theme"
)

const maxEvidence = 8

var descriptions = map[persona.Category]string{
	persona.Analitico:    "Você decide com dados e estrutura. Gosta de entender antes de agir.",
	persona.Pragmatico:   "Você prefere agir e ajustar no caminho. Resultado vem primeiro.",
	persona.Criativo:     "Você busca caminhos novos e se entusiasma com ideias originais.",
	persona.Colaborativo: "Você pensa em conjunto e valoriza o consenso da equipe.",
	persona.Visionario:   "Você enxerga longe e orienta escolhas por propósito e futuro.",
	persona.Hesitante:    "Você pondera muito antes de decidir e prefere segurança.",
}

// Screen shows the final classification.
type Screen struct {
	result  quiz.Result
	opinion *refine.Opinion
	showAll bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New builds the result screen. opinion may be nil and arrive later as an
// OpinionMsg.
func New(r quiz.Result, opinion *refine.Opinion) *Screen {
	return &Screen{result: r, opinion: opinion}
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Resultado" }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Início"},
		{Key: "E", Description: "Evidências"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case OpinionMsg:
		s.opinion = msg.Opinion
	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter", "esc", "q":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		case "e":
			s.showAll = !s.showAll
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	r := s.result
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Seu perfil"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.PersonaColor(r.Type)).
		Bold(true).
		Render(strings.ToUpper(r.Type.Label())))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(
		fmt.Sprintf("confiança %.0f%%  ·  %d respostas  ·  %s", r.Confidence, r.Answered, reasonLabel(r.Reason))))
	b.WriteString("\n\n")
	b.WriteString(layout.Center(width, theme.Body.Render(descriptions[r.Type])))
	b.WriteString("\n\n")

	barWidth := min(width-8, 60)
	top := r.Scores.Get(r.Type)
	for _, c := range persona.AllCategories() {
		v := r.Scores.Get(c)
		frac := 0.0
		if top > 0 {
			frac = v / top
		}
		bar := components.Bar{
			Label:      c.Label(),
			LabelWidth: 13,
			Fraction:   frac,
			Value:      fmt.Sprintf("%.1f", v),
			Width:      barWidth,
			Color:      theme.PersonaColor(c),
		}
		b.WriteString(layout.Center(width, bar.View()))
		b.WriteString("\n")
	}

	if s.opinion != nil {
		b.WriteString("\n")
		line := fmt.Sprintf("Segunda opinião (%s): %s, %.0f%%. %s",
			s.opinion.Model, s.opinion.Category.Label(), s.opinion.Confidence, s.opinion.Reasoning)
		b.WriteString(layout.Center(width, theme.Hint.Width(barWidth).Render(line)))
		b.WriteString("\n")
	}

	evidence := r.Evidence
	if !s.showAll && len(evidence) > maxEvidence {
		evidence = evidence[:maxEvidence]
	}
	if len(evidence) > 0 {
		b.WriteString("\n")
		b.WriteString(layout.Center(width, theme.Hint.Render("Evidências")))
		b.WriteString("\n")
		for _, e := range evidence {
			b.WriteString(layout.Center(width, lipgloss.NewStyle().Foreground(theme.TextDim).Width(barWidth).Render("· "+e)))
			b.WriteString("\n")
		}
		if hidden := len(r.Evidence) - len(evidence); hidden > 0 {
			b.WriteString(layout.Center(width, theme.Hint.Render(fmt.Sprintf("+%d (E para ver todas)", hidden))))
		}
	}
	return b.String()
}

func reasonLabel(r quiz.Reason) string {
	switch r {
	case quiz.ReasonEarlyExit:
		return "encerrado cedo"
	case quiz.ReasonFinal:
		return "questionário completo"
	}
	return "em andamento"
}
