package setup

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mockview/internal/catalog"
	"github.com/abhisek/mockview/internal/feedback"
	"github.com/abhisek/mockview/internal/random"
	"github.com/abhisek/mockview/internal/router"
	"github.com/abhisek/mockview/internal/screens/interview"
	"github.com/abhisek/mockview/internal/session"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testSetup(t *testing.T) *SetupScreen {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default() error: %v", err)
	}
	domain, err := cat.Domain("software-engineer")
	if err != nil {
		t.Fatalf("Domain() error: %v", err)
	}
	svc := interview.Services{
		Picker: session.NewSelector(cat, random.New(7), nil),
		Scorer: feedback.NewEngine(random.New(7), nil),
	}
	return New(domain, session.DefaultSettings(), svc)
}

// press moves the cursor down n rows.
func press(s *SetupScreen, key tea.KeyPressMsg, n int) {
	for range n {
		s.Update(key)
	}
}

func TestSetupScreen_AllSkillsSelected(t *testing.T) {
	s := testSetup(t)
	if got, want := len(s.SelectedSkills()), len(s.domain.Skills); got != want {
		t.Errorf("selected = %d, want %d", got, want)
	}
	if s.Title() != "Software Engineer" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestSetupScreen_ToggleSkill(t *testing.T) {
	s := testSetup(t)

	s.Update(keyPress(' '))
	selected := s.SelectedSkills()
	if len(selected) != len(s.domain.Skills)-1 {
		t.Fatalf("selected = %v", selected)
	}
	for _, sk := range selected {
		if sk == s.domain.Skills[0] {
			t.Errorf("%q should be deselected", sk)
		}
	}

	s.Update(keyPress('a')) // not all checked, so select all
	s.Update(keyPress('a')) // all checked, so clear all
	if len(s.SelectedSkills()) != 0 {
		t.Errorf("expected no skills, got %v", s.SelectedSkills())
	}
}

func TestSetupScreen_AdjustSettings(t *testing.T) {
	s := testSetup(t)
	skills := len(s.domain.Skills)

	press(s, specialKey(tea.KeyDown), skills) // questions row
	s.Update(specialKey(tea.KeyRight))
	s.Update(specialKey(tea.KeyRight))
	if got := s.Settings().NumberOfQuestions; got != session.DefaultNumberOfQuestions+2 {
		t.Errorf("NumberOfQuestions = %d, want %d", got, session.DefaultNumberOfQuestions+2)
	}
	press(s, specialKey(tea.KeyLeft), 50)
	if got := s.Settings().NumberOfQuestions; got != 1 {
		t.Errorf("NumberOfQuestions = %d, want floor of 1", got)
	}

	s.Update(specialKey(tea.KeyDown)) // follow-ups row
	s.Update(keyPress(' '))
	if s.Settings().IncludeFollowUps {
		t.Error("expected follow-ups toggled off")
	}

	s.Update(specialKey(tea.KeyDown)) // difficulty row
	s.Update(specialKey(tea.KeyRight))
	if got := s.Settings().Difficulty; got != catalog.DifficultyEasy {
		t.Errorf("Difficulty = %q, want easy", got)
	}
	s.Update(specialKey(tea.KeyLeft))
	s.Update(specialKey(tea.KeyLeft))
	if got := s.Settings().Difficulty; got != catalog.DifficultyHard {
		t.Errorf("Difficulty = %q, want hard (wraps)", got)
	}
}

func TestSetupScreen_CursorStopsAtEnds(t *testing.T) {
	s := testSetup(t)
	s.Update(specialKey(tea.KeyUp))
	if s.row != 0 {
		t.Errorf("row = %d, want 0", s.row)
	}
	press(s, specialKey(tea.KeyDown), 100)
	if s.row != s.rows()-1 || s.settingRow() != rowStart {
		t.Errorf("row = %d, want the start row", s.row)
	}
}

func TestSetupScreen_StartRequiresSkills(t *testing.T) {
	s := testSetup(t)
	s.Update(keyPress('a')) // clear all

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("expected no command without skills")
	}
	if s.Err() != errNoSkills {
		t.Errorf("Err = %q, want %q", s.Err(), errNoSkills)
	}
	if !strings.Contains(s.View(100, 40), errNoSkills) {
		t.Error("expected error in view")
	}
}

func TestSetupScreen_Start(t *testing.T) {
	s := testSetup(t)

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command to start the interview")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	is, ok := push.Screen.(*interview.InterviewScreen)
	if !ok {
		t.Fatalf("pushed %T, want *interview.InterviewScreen", push.Screen)
	}
	if _, total := is.Session().Progress(); total != session.DefaultNumberOfQuestions {
		t.Errorf("total = %d, want %d", total, session.DefaultNumberOfQuestions)
	}
}

func TestSetupScreen_View(t *testing.T) {
	s := testSetup(t)
	view := s.View(100, 40)
	for _, want := range []string{"Software Engineer", "Algorithms", "Questions", "Follow-ups", "Difficulty", "Start interview"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestCycleDifficulty(t *testing.T) {
	if got := cycleDifficulty(catalog.DifficultyMixed, 1); got != catalog.DifficultyEasy {
		t.Errorf("mixed+1 = %q", got)
	}
	if got := cycleDifficulty(catalog.DifficultyMixed, -1); got != catalog.DifficultyHard {
		t.Errorf("mixed-1 = %q", got)
	}
	if got := cycleDifficulty("bogus", 1); got != catalog.DifficultyMixed {
		t.Errorf("bogus+1 = %q", got)
	}
}
