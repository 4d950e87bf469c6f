package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		current, total int
		label          string
		fraction       float64
	}{
		{0, 4, "Question 1 of 4", 0},
		{2, 4, "Question 3 of 4", 0.5},
		{4, 4, "Question 4 of 4", 1},
		{0, 0, "Question 0 of 0", 0},
	}
	for _, tt := range tests {
		p := NewProgressBar(tt.current, tt.total, 60)
		if got := p.Label(); got != tt.label {
			t.Errorf("Label(%d/%d) = %q, want %q", tt.current, tt.total, got, tt.label)
		}
		if got := p.Fraction(); got != tt.fraction {
			t.Errorf("Fraction(%d/%d) = %v, want %v", tt.current, tt.total, got, tt.fraction)
		}
	}

	view := NewProgressBar(1, 4, 60).View()
	if !strings.Contains(view, "Question 2 of 4") || !strings.Contains(view, "25%") {
		t.Errorf("unexpected view: %q", view)
	}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	chosen := ""
	pick := func(label string) func() tea.Cmd {
		return func() tea.Cmd {
			chosen = label
			return nil
		}
	}
	m := NewMenu([]MenuItem{
		{Label: "first", Disabled: true},
		{Label: "second", Action: pick("second")},
		{Label: "third", Disabled: true},
		{Label: "fourth", Action: pick("fourth"), Description: "the last one"},
	})
	if m.Selected != 1 {
		t.Fatalf("Selected = %d, want first enabled item", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Errorf("Selected = %d, want 3", m.Selected)
	}
	if !strings.Contains(m.View(), "the last one") {
		t.Error("expected description of the selected item")
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if chosen != "fourth" {
		t.Errorf("chosen = %q, want fourth", chosen)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 1 {
		t.Errorf("Selected = %d, want 1", m.Selected)
	}
}

func TestChecklist(t *testing.T) {
	c := NewChecklist([]string{"a", "b", "c"})
	if len(c.Checked()) != 0 {
		t.Fatalf("Checked = %v, want none", c.Checked())
	}

	c, _ = c.Update(keyPress(' '))
	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	c, _ = c.Update(keyPress('x'))
	if got := strings.Join(c.Checked(), ","); got != "a,c" {
		t.Errorf("Checked = %s, want a,c", got)
	}

	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if c.Cursor != 2 {
		t.Errorf("Cursor = %d, want 2 at the bottom", c.Cursor)
	}

	c, _ = c.Update(keyPress('a'))
	if !c.AllChecked() {
		t.Error("expected all checked")
	}
	c, _ = c.Update(keyPress('a'))
	if len(c.Checked()) != 0 {
		t.Errorf("Checked = %v, want none", c.Checked())
	}

	if !strings.Contains(c.View(), "[ ] b") {
		t.Errorf("unexpected view: %q", c.View())
	}
}

func TestChecklist_CopiesDoNotShareState(t *testing.T) {
	c := NewChecklist([]string{"a", "b"})
	before := c
	c.Toggle(0)
	if len(before.Checked()) != 0 {
		t.Error("toggle leaked into an earlier copy")
	}
	c.Toggle(5) // out of range is ignored
	if got := strings.Join(c.Checked(), ","); got != "a" {
		t.Errorf("Checked = %s, want a", got)
	}
}

func TestTextInput(t *testing.T) {
	in := NewTextInput("answer", 0, 40)
	if !in.IsBlank() {
		t.Error("expected a new input to be blank")
	}
	for _, r := range "hi there" {
		in, _ = in.Update(keyPress(r))
	}
	if in.Value() != "hi there" {
		t.Errorf("Value = %q, want %q", in.Value(), "hi there")
	}
	if !strings.Contains(in.View(), "8 chars") {
		t.Errorf("expected character counter in view: %q", in.View())
	}
	in.Reset()
	if !in.IsBlank() {
		t.Error("expected blank after Reset")
	}
	if in.Model.CharLimit != DefaultAnswerLimit {
		t.Errorf("CharLimit = %d, want %d", in.Model.CharLimit, DefaultAnswerLimit)
	}
}
