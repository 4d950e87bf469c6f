package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mockview/internal/ui/theme"
)

// Checklist is a multi-select list toggled with space.
type Checklist struct {
	Options []string
	Cursor  int
	checked []bool
}

// NewChecklist creates a checklist with nothing checked.
func NewChecklist(options []string) Checklist {
	return Checklist{
		Options: options,
		checked: make([]bool, len(options)),
	}
}

// Init returns nil.
func (c Checklist) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement and toggling.
func (c Checklist) Update(msg tea.Msg) (Checklist, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "space", " ", "x":
		c.Toggle(c.Cursor)
	case "a":
		c.SetAll(!c.AllChecked())
	}

	return c, nil
}

// Toggle flips option i.
func (c *Checklist) Toggle(i int) {
	if i < 0 || i >= len(c.checked) {
		return
	}
	c.checked = cloneBools(c.checked)
	c.checked[i] = !c.checked[i]
}

// SetAll checks or clears every option.
func (c *Checklist) SetAll(on bool) {
	c.checked = make([]bool, len(c.Options))
	for i := range c.checked {
		c.checked[i] = on
	}
}

// AllChecked reports whether every option is checked.
func (c Checklist) AllChecked() bool {
	for _, on := range c.checked {
		if !on {
			return false
		}
	}
	return len(c.checked) > 0
}

// Checked returns the checked options in display order.
func (c Checklist) Checked() []string {
	var out []string
	for i, on := range c.checked {
		if on {
			out = append(out, c.Options[i])
		}
	}
	return out
}

// View renders the checklist.
func (c Checklist) View() string {
	var s string
	for i, opt := range c.Options {
		box := "[ ]"
		if c.checked[i] {
			box = "[x]"
		}
		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s %s", prefix, box, opt)
		if i == c.Cursor {
			s += theme.Selected.Render(line) + "\n"
		} else {
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	return s
}

// Checklist values are copied by bubbletea updates; the slice is cloned on
// write so earlier copies keep their state.
func cloneBools(b []bool) []bool {
	return append([]bool(nil), b...)
}
