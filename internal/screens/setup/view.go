package setup

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mockview/internal/ui/theme"
)

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder
	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	b.WriteString("\n")
	b.WriteString(center(theme.Title.Render(s.domain.Title)))
	b.WriteString("\n")
	if s.domain.Description != "" {
		b.WriteString(center(theme.Subtitle.Width(min(width-8, 72)).Render(s.domain.Description)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	section := func(heading string) {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + heading))
		b.WriteString("\n")
	}

	section(fmt.Sprintf("Skills (%d of %d selected)", len(s.skills.Checked()), len(s.domain.Skills)))
	skillsView := s.skills.View()
	if s.settingRow() >= 0 {
		// Hide the checklist cursor while a setting row is focused.
		skillsView = strings.ReplaceAll(skillsView, "▸ ", "  ")
	}
	b.WriteString(indent(skillsView))
	b.WriteString("\n")

	section("Settings")
	b.WriteString(s.settingLine(rowQuestions, "Questions", fmt.Sprintf("‹ %d ›", s.settings.NumberOfQuestions)))
	b.WriteString(s.settingLine(rowFollowUps, "Follow-ups", fmt.Sprintf("‹ %s ›", onOff(s.settings.IncludeFollowUps))))
	b.WriteString(s.settingLine(rowDifficulty, "Difficulty", fmt.Sprintf("‹ %s ›", s.settings.Difficulty.DisplayName())))
	b.WriteString("\n")

	startLabel := "  Start interview "
	if s.settingRow() == rowStart {
		b.WriteString("  " + theme.Badge.Bold(true).Render("▸"+startLabel))
	} else {
		b.WriteString("  " + theme.Unselected.Render(" "+startLabel))
	}
	b.WriteString("\n")

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Danger.Render("  " + s.errMsg))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *SetupScreen) settingLine(row int, label, value string) string {
	line := fmt.Sprintf("%-12s %s", label, value)
	if s.settingRow() == row {
		return "  " + theme.Selected.Render("▸ "+line) + "\n"
	}
	return "  " + theme.Unselected.Render("  "+line) + "\n"
}

func indent(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n") + "\n"
}

func onOff(b bool) string {
	if b {
		return "On"
	}
	return "Off"
}
