package report

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mockview/internal/ui/theme"
)

// Render returns the styled report centred in the given width, as shown on
// the feedback screen.
func (r Report) Render(width int) string {
	sum, fb := r.Summary, r.Feedback
	center := func(s string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
	}

	var b strings.Builder

	title := "Interview complete!"
	if sum.EndedEarly {
		title = "Interview ended early"
	}
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(title)))
	b.WriteString("\n\n")

	score := lipgloss.NewStyle().Foreground(ScoreColor(fb.Score)).Bold(true).
		Render(fmt.Sprintf("%d/100", fb.Score))
	b.WriteString(center("Overall Score: " + score))
	b.WriteString("\n")

	stats := fmt.Sprintf("Duration: %d min        Questions: %d of %d        Follow-ups: %d",
		sum.DurationMinutes, sum.Answered, sum.Total, sum.FollowUpAnswers)
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim).Render(stats)))
	b.WriteString("\n\n")

	textWidth := min(width-8, 72)
	if textWidth > 0 {
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text).Width(textWidth).Render(fb.Overall)))
		b.WriteString("\n")
	}

	section := func(heading string, items []string, c color.Color) {
		if len(items) == 0 {
			return
		}
		b.WriteString("\n")
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim).Render(heading)))
		b.WriteString("\n")
		b.WriteString(center(divider(width)))
		b.WriteString("\n")
		style := lipgloss.NewStyle().Foreground(c)
		for _, item := range items {
			b.WriteString(center(style.Render("• " + item)))
			b.WriteString("\n")
		}
	}

	section("Strengths", fb.Strengths, theme.Success)
	section("Areas for Improvement", fb.Improvements, theme.Accent)

	if len(fb.SkillBreakdown) > 0 {
		b.WriteString("\n")
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Skills")))
		b.WriteString("\n")
		b.WriteString(center(divider(width)))
		b.WriteString("\n")
		for _, sf := range fb.SkillBreakdown {
			pct := lipgloss.NewStyle().Foreground(ScoreColor(sf.Score)).Bold(true).
				Render(fmt.Sprintf("%3d%%", sf.Score))
			line := fmt.Sprintf("%-24s %s", sf.Skill, pct)
			b.WriteString(center(line))
			b.WriteString("\n")
		}
	}

	section("Next Steps", fb.NextSteps, theme.Secondary)

	return b.String()
}

// ScoreColor maps a score to the palette: green from 70, amber from 55,
// red below.
func ScoreColor(score int) color.Color {
	switch {
	case score >= 70:
		return theme.Success
	case score >= 55:
		return theme.Accent
	default:
		return theme.Error
	}
}

func divider(width int) string {
	return lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", max(min(width-8, 60), 0)))
}
