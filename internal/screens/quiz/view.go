package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/madboat/madboat/internal/quiz"
	"github.com/madboat/madboat/internal/ui/components"
	"github.com/madboat/madboat/internal/ui/layout"
	"github.com/madboat/madboat/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	if s.confirmQuit {
		return renderQuitConfirm(width, height)
	}
	q, ok := s.session.Current()
	if !ok {
		return theme.Subtitle.Width(width).Render("\n\nCalculando resultado...")
	}

	inner := min(width-8, 76)
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(layout.Center(width, components.Steps(s.session.Index(), s.deps.Classifier.Bank().Len())))
	b.WriteString("\n\n")
	b.WriteString(layout.Center(width, lipgloss.NewStyle().
		Width(inner).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt)))
	b.WriteString("\n\n")

	var body string
	if q.Kind == quiz.KindText {
		body = s.input.View()
	} else {
		body = s.choice.View()
	}
	b.WriteString(layout.Center(width, lipgloss.NewStyle().Width(inner).Render(body)))
	b.WriteString("\n")

	if s.errMsg != "" {
		b.WriteString(layout.Center(width, lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg)))
		b.WriteString("\n")
	}

	if r := s.session.Result(); r.Answered > 0 {
		b.WriteString("\n")
		lead := fmt.Sprintf("Tendência: %s  %.0f%%", r.Type.Label(), r.Confidence)
		b.WriteString(layout.Center(width, lipgloss.NewStyle().Foreground(theme.PersonaColor(r.Type)).Render(lead)))
		b.WriteString("\n")
	}
	if s.lastText != nil && len(s.lastText.BehavioralPatterns) > 0 {
		b.WriteString(layout.Center(width, theme.Hint.Render(strings.Join(s.lastText.BehavioralPatterns, " · "))))
		b.WriteString("\n")
	}
	if s.opinion != nil {
		b.WriteString(layout.Center(width, theme.Hint.Render(
			fmt.Sprintf("Segunda opinião: %s (%.0f%%)", s.opinion.Category.Label(), s.opinion.Confidence))))
		b.WriteString("\n")
	}
	return b.String()
}

func renderQuitConfirm(width, height int) string {
	box := theme.Card.Render(
		theme.Body.Bold(true).Render("Sair do questionário?") + "\n\n" +
			theme.Hint.Render("Seu progresso fica salvo. Use madboat play --resume para continuar.") + "\n\n" +
			theme.Body.Render("S sair   N continuar"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
