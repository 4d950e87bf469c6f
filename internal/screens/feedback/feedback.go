package feedback

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mockview/internal/report"
	"github.com/abhisek/mockview/internal/router"
	"github.com/abhisek/mockview/internal/screen"
	"github.com/abhisek/mockview/internal/ui/layout"
)

// FeedbackScreen displays the scored report of a finished interview.
type FeedbackScreen struct {
	report report.Report
	offset int
}

var _ screen.Screen = (*FeedbackScreen)(nil)
var _ screen.KeyHintProvider = (*FeedbackScreen)(nil)
var _ screen.EscapeHandler = (*FeedbackScreen)(nil)

// New creates a new FeedbackScreen.
func New(r report.Report) *FeedbackScreen {
	return &FeedbackScreen{report: r}
}

func (s *FeedbackScreen) Init() tea.Cmd {
	return nil
}

func (s *FeedbackScreen) Title() string {
	return "Feedback"
}

// Report returns the report being shown.
func (s *FeedbackScreen) Report() report.Report {
	return s.report
}

// HandlesEscape is true so Esc returns home instead of to the setup screen.
func (s *FeedbackScreen) HandlesEscape() bool {
	return true
}

func (s *FeedbackScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "R", Description: "Retry"},
		{Key: "Enter", Description: "Home"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *FeedbackScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "enter", "esc":
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	case "r", "R":
		// The interview screen was replaced by this one, so popping lands on
		// the setup screen with the same choices.
		return s, router.Pop
	case "up", "k":
		if s.offset > 0 {
			s.offset--
		}
	case "down", "j":
		s.offset++
	}
	return s, nil
}

func (s *FeedbackScreen) View(width, height int) string {
	lines := strings.Split(s.report.Render(width), "\n")
	if height <= 0 || len(lines) <= height {
		s.offset = 0
		return strings.Join(lines, "\n")
	}
	s.offset = min(s.offset, len(lines)-height)
	return strings.Join(lines[s.offset:s.offset+height], "\n")
}
