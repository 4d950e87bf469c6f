package interview

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mockview/internal/ui/components"
	"github.com/abhisek/mockview/internal/ui/layout"
	"github.com/abhisek/mockview/internal/ui/theme"
)

func (s *InterviewScreen) View(width, height int) string {
	if s.showingEndConfirm {
		return renderEndConfirm(width)
	}
	return s.renderQuestionView(width, height)
}

// renderQuestionView renders the current question or follow-up. Short
// terminals skip the echo of the main question and answer during follow-ups.
func (s *InterviewScreen) renderQuestionView(width, height int) string {
	q, ok := s.sess.CurrentQuestion()
	if !ok {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Preparing your feedback...")
	}

	var b strings.Builder
	textWidth := max(width-8, 20)

	// Question info line.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  Skill: " + q.Skill)
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s · %s", q.Type.DisplayName(), q.Difficulty.DisplayName()))

	infoLine := infoLeft
	if pad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4; pad > 0 {
		infoLine += strings.Repeat(" ", pad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n  ")

	answered, total := s.sess.Progress()
	b.WriteString(components.NewProgressBar(answered, total, width-4).View())
	b.WriteString("\n\n")

	prompt := theme.Prompt.Width(textWidth).Padding(0, 2)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim).Width(textWidth).Padding(0, 2)

	if s.phase == phaseFollowUp {
		if !layout.IsCompactHeight(height) {
			b.WriteString(dim.Render(q.Text))
			b.WriteString("\n")
			b.WriteString(dim.Italic(true).Render("Your answer: " + s.mainAnswer))
			b.WriteString("\n\n")
		}
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Render(fmt.Sprintf("  Follow-up %d of %d", s.followUpIdx+1, len(s.followUps))))
		b.WriteString("\n")
		b.WriteString(prompt.Render(s.followUps[s.followUpIdx]))
	} else {
		b.WriteString(prompt.Render(q.Text))
	}
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Padding(0, 2).Render(s.input.View()))

	if s.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Warning.Padding(0, 2).Render(s.notice))
	}

	return b.String()
}

// renderEndConfirm renders the end-early confirmation dialog.
func renderEndConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End interview early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("You will get feedback on the questions answered so far."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Yes, end interview"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}
