package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mockview/internal/ui/theme"
)

const (
	bannerWide    = "M · O · C · K · V · I · E · W"
	bannerCompact = "MOCKVIEW"
	tagline       = "Practice interviews. Get instant feedback."
)

// renderBanner returns the boxed title, with a compact fallback for
// terminals narrower than 52 columns.
func renderBanner(width int) string {
	title := bannerWide
	if width < 52 {
		title = bannerCompact
	}

	box := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 3).
		Render(title)

	sub := theme.Hint.Render(tagline)
	return lipgloss.JoinVertical(lipgloss.Center, box, sub)
}
