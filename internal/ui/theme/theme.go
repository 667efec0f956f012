package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/madboat/madboat/internal/persona"
)

// Palette: deep sea with a brass accent.
var (
	Primary   = lipgloss.Color("#38BDF8") // Sky
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F59E0B") // Brass
	Success   = lipgloss.Color("#22C55E")
	Error     = lipgloss.Color("#F43F5E")
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgCard    = lipgloss.Color("#0B1E33")
	Border    = lipgloss.Color("#1E3A5F")
)

var personaColors = map[persona.Category]color.Color{
	persona.Analitico:    lipgloss.Color("#60A5FA"),
	persona.Pragmatico:   lipgloss.Color("#F97316"),
	persona.Criativo:     lipgloss.Color("#E879F9"),
	persona.Colaborativo: lipgloss.Color("#34D399"),
	persona.Visionario:   lipgloss.Color("#FACC15"),
	persona.Hesitante:    lipgloss.Color("#94A3B8"),
}

// PersonaColor is the display color for a category.
func PersonaColor(c persona.Category) color.Color {
	if col, ok := personaColors[c]; ok {
		return col
	}
	return Text
}

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)
