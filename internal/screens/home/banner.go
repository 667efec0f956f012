package home

import (
	"charm.land/lipgloss/v2"

	"github.com/madboat/madboat/internal/ui/theme"
)

const bannerArt = `███╗   ███╗ █████╗ ██████╗ ██████╗  ██████╗  █████╗ ████████╗
████╗ ████║██╔══██╗██╔══██╗██╔══██╗██╔═══██╗██╔══██╗╚══██╔══╝
██╔████╔██║███████║██║  ██║██████╔╝██║   ██║███████║   ██║
██║╚██╔╝██║██╔══██║██║  ██║██╔══██╗██║   ██║██╔══██║   ██║
██║ ╚═╝ ██║██║  ██║██████╔╝██████╔╝╚██████╔╝██║  ██║   ██║
╚═╝     ╚═╝╚═╝  ╚═╝╚═════╝ ╚═════╝  ╚═════╝ ╚═╝  ╚═╝   ╚═╝`

const bannerCompact = "M · A · D · B · O · A · T"

const bannerWidth = 62

// renderBanner falls back to spaced letters on narrow terminals.
func renderBanner(width int) string {
	style := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	if width < bannerWidth+4 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
