package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/madboat/madboat/internal/ui/theme"
)

// Bar is a labelled horizontal bar for a 0..1 fraction.
type Bar struct {
	Label      string
	LabelWidth int
	Fraction   float64
	Value      string // right-hand annotation
	Width      int
	Color      color.Color
}

func (p Bar) View() string {
	label := lipgloss.NewStyle().Foreground(theme.Text).Width(p.LabelWidth).Render(p.Label)
	value := theme.Hint.Render(p.Value)

	barWidth := max(p.Width-lipgloss.Width(label)-lipgloss.Width(value)-4, 4)
	filled := min(max(int(float64(barWidth)*p.Fraction+0.5), 0), barWidth)

	col := p.Color
	if col == nil {
		col = theme.Secondary
	}
	return label + "  " +
		lipgloss.NewStyle().Background(col).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", barWidth-filled)) +
		"  " + value
}

// Steps renders question progress as "●●●○○○".
func Steps(done, total int) string {
	return lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Repeat("●", done)) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("○", max(total-done, 0))) +
		theme.Hint.Render(fmt.Sprintf("  %d/%d", done, total))
}
