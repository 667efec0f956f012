// Package app wires the router and screens into the root Bubble Tea model.
package app

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/madboat/madboat/internal/router"
	"github.com/madboat/madboat/internal/screen"
	"github.com/madboat/madboat/internal/screens/home"
	quizscreen "github.com/madboat/madboat/internal/screens/quiz"
	"github.com/madboat/madboat/internal/ui/layout"
)

// ErrNothingToResume is returned by Run with resume set when no compatible
// unfinished session exists.
var ErrNothingToResume = errors.New("no unfinished quiz to resume")

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

func newAppModel(deps quizscreen.Deps) AppModel {
	return AppModel{router: router.New(home.New(deps))}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width > 0 && m.height > 0 {
		v.SetContent(m.render())
	}
	return v
}

func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	var title, status string
	var hints []layout.KeyHint
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
		if kp, ok := active.(screen.KeyHintProvider); ok {
			hints = kp.KeyHints()
		}
	}
	if hints == nil {
		hints = []layout.KeyHint{
			{Key: "Esc", Description: "Voltar"},
			{Key: "Ctrl+C", Description: "Sair"},
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(hints, m.width)
	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the terminal UI. With resume set the latest unfinished quiz
// opens directly on top of the home screen.
func Run(deps quizscreen.Deps, resume bool) error {
	m := newAppModel(deps)
	if resume {
		if deps.Snapshots == nil {
			return ErrNothingToResume
		}
		snap, err := deps.Snapshots.LatestUnfinished(context.Background())
		if err != nil {
			return fmt.Errorf("load unfinished quiz: %w", err)
		}
		if snap == nil || !deps.Classifier.Bank().Compatible(snap.Data.BankVersion) {
			return ErrNothingToResume
		}
		m.router.Push(quizscreen.Resume(deps, snap))
	}

	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
