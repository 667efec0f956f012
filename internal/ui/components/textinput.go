package components

import (
	"fmt"
	"unicode/utf8"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/madboat/madboat/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with a character counter.
type TextInput struct {
	Model textinput.Model
	Limit int
}

func NewTextInput(placeholder string, limit, width int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.SetWidth(width)
	ti.Focus()
	return TextInput{Model: ti, Limit: limit}
}

func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func (t TextInput) View() string {
	counter := theme.Hint.Render(fmt.Sprintf("%d/%d", t.Len(), t.Limit))
	return t.Model.View() + "\n" + counter
}

func (t TextInput) Value() string { return t.Model.Value() }

// Len is the input length in runes.
func (t TextInput) Len() int { return utf8.RuneCountInString(t.Model.Value()) }

func (t *TextInput) SetValue(s string) {
	t.Model.SetValue(s)
	t.Model.CursorEnd()
}
