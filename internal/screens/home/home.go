package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/madboat/madboat/internal/persona"
	"github.com/madboat/madboat/internal/router"
	"github.com/madboat/madboat/internal/screen"
	"github.com/madboat/madboat/internal/screens/history"
	quizscreen "github.com/madboat/madboat/internal/screens/quiz"
	"github.com/madboat/madboat/internal/store"
	"github.com/madboat/madboat/internal/ui/components"
	"github.com/madboat/madboat/internal/ui/layout"
	"github.com/madboat/madboat/internal/ui/theme"
)

// Screen is the main menu.
type Screen struct {
	deps   quizscreen.Deps
	menu   components.Menu
	resume *store.Snapshot

	total    int
	frequent persona.Category
	hasStats bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New loads the resumable session and result counts, then builds the menu.
func New(deps quizscreen.Deps) *Screen {
	h := &Screen{deps: deps}
	h.load(context.Background())
	h.menu = components.NewMenu(h.items())
	return h
}

func (h *Screen) logger() *zap.Logger {
	if h.deps.Logger == nil {
		return zap.NewNop()
	}
	return h.deps.Logger
}

func (h *Screen) load(ctx context.Context) {
	if h.deps.Snapshots != nil {
		snap, err := h.deps.Snapshots.LatestUnfinished(ctx)
		switch {
		case err != nil:
			h.logger().Warn("load snapshot", zap.Error(err))
		case snap != nil && h.deps.Classifier.Bank().Compatible(snap.Data.BankVersion):
			h.resume = snap
		}
	}
	if h.deps.Events != nil {
		counts, err := h.deps.Events.PersonaCounts(ctx)
		if err != nil {
			h.logger().Warn("load persona counts", zap.Error(err))
			return
		}
		best := -1
		for _, c := range persona.AllCategories() {
			n := counts[c.String()]
			h.total += n
			if n > best && n > 0 {
				best, h.frequent = n, c
			}
		}
		h.hasStats = h.total > 0
	}
}

func (h *Screen) items() []components.MenuItem {
	push := func(s screen.Screen) tea.Cmd {
		return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
	}
	return []components.MenuItem{
		{Label: "Iniciar questionário", Action: func() tea.Cmd {
			return push(quizscreen.New(h.deps))
		}},
		{Label: "Continuar", Disabled: h.resume == nil, Action: func() tea.Cmd {
			return push(quizscreen.Resume(h.deps, h.resume))
		}},
		{Label: "Histórico", Disabled: h.deps.Events == nil, Action: func() tea.Cmd {
			return push(history.New(h.deps.Events, h.deps.Classifier.Bank()))
		}},
		{Label: "Sair", Action: func() tea.Cmd { return tea.Quit }},
	}
}

func (h *Screen) Init() tea.Cmd { return nil }

func (h *Screen) Title() string { return "Início" }

func (h *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Selecionar"},
		{Key: "Ctrl+C", Description: "Sair"},
	}
}

func (h *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *Screen) View(width, height int) string {
	sections := []string{
		renderBanner(width),
		theme.Subtitle.Render("Descubra seu perfil pela forma como você escreve"),
		h.renderStats(),
		theme.Card.Render(strings.TrimRight(h.menu.View(), "\n")),
	}
	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *Screen) renderStats() string {
	if !h.hasStats {
		return theme.Hint.Render("Nenhum resultado ainda")
	}
	freq := lipgloss.NewStyle().Foreground(theme.PersonaColor(h.frequent)).Bold(true).
		Render(h.frequent.Label())
	line := fmt.Sprintf("%d resultados · mais frequente: %s", h.total, freq)
	if h.resume != nil {
		line += theme.Hint.Render(fmt.Sprintf(" · sessão em andamento (%d respostas)", len(h.resume.Data.Responses)))
	}
	return theme.Body.Render(line)
}
