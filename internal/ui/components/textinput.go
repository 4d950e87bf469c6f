package components

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mockview/internal/ui/theme"
)

// DefaultAnswerLimit caps a single typed answer.
const DefaultAnswerLimit = 4000

// TextInput wraps bubbles/textinput for free-form answers.
type TextInput struct {
	Model textinput.Model
	Width int
}

// NewTextInput creates a focused answer input. A zero limit uses
// DefaultAnswerLimit.
func NewTextInput(placeholder string, limit, width int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "> "
	if limit <= 0 {
		limit = DefaultAnswerLimit
	}
	ti.CharLimit = limit
	if width > 0 {
		ti.SetWidth(width)
	}
	ti.Focus()

	return TextInput{
		Model: ti,
		Width: width,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the input with a character counter.
func (t TextInput) View() string {
	counter := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(strings.Repeat(" ", 2) + strconv.Itoa(utf8.RuneCountInString(t.Value())) + " chars")
	return t.Model.View() + "\n" + counter
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// IsBlank reports whether the input holds only whitespace.
func (t TextInput) IsBlank() bool {
	return strings.TrimSpace(t.Model.Value()) == ""
}

// Reset clears the input for the next prompt.
func (t *TextInput) Reset() {
	t.Model.Reset()
}
