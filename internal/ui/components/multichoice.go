package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/madboat/madboat/internal/ui/theme"
)

// Choice is one lettered option.
type Choice struct {
	Key  string
	Text string
}

// MultiChoice selects one of several lettered options with the arrows or
// by typing the option letter.
type MultiChoice struct {
	Choices  []Choice
	Selected int
}

func NewMultiChoice(choices []Choice) MultiChoice {
	return MultiChoice{Choices: choices}
}

// Preselect moves the cursor to key, if present.
func (m *MultiChoice) Preselect(key string) {
	for i, c := range m.Choices {
		if strings.EqualFold(c.Key, key) {
			m.Selected = i
			return
		}
	}
}

// Update moves the cursor. It returns the chosen key when the user pressed
// enter or an option letter, and "" otherwise.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, string) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(m.Choices) == 0 {
		return m, ""
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Choices)-1 {
			m.Selected++
		}
	case "enter":
		return m, m.Choices[m.Selected].Key
	default:
		for i, c := range m.Choices {
			if strings.EqualFold(c.Key, key) {
				m.Selected = i
				return m, c.Key
			}
		}
	}
	return m, ""
}

func (m MultiChoice) View() string {
	var b strings.Builder
	for i, c := range m.Choices {
		line := fmt.Sprintf("%s)  %s", c.Key, c.Text)
		if i == m.Selected {
			b.WriteString(theme.Selected.Render("▸ " + line))
		} else {
			b.WriteString(theme.Unselected.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
