package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mockview/internal/catalog"
	"github.com/abhisek/mockview/internal/router"
	"github.com/abhisek/mockview/internal/screen"
	"github.com/abhisek/mockview/internal/screens/interview"
	"github.com/abhisek/mockview/internal/screens/setup"
	"github.com/abhisek/mockview/internal/session"
	"github.com/abhisek/mockview/internal/ui/components"
	"github.com/abhisek/mockview/internal/ui/layout"
	"github.com/abhisek/mockview/internal/ui/theme"
)

// HomeScreen lists the interview domains.
type HomeScreen struct {
	menu    components.Menu
	domains []catalog.Domain
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen offering domains. Choosing one opens its setup
// screen prefilled with settings.
func New(domains []catalog.Domain, settings session.Settings, svc interview.Services) *HomeScreen {
	items := make([]components.MenuItem, 0, len(domains)+1)
	for _, d := range domains {
		items = append(items, components.MenuItem{
			Label:       d.Title,
			Description: d.Description,
			Disabled:    len(d.Skills) == 0,
			Action: func() tea.Cmd {
				return router.Push(setup.New(d, settings, svc))
			},
		})
	}
	items = append(items, components.MenuItem{
		Label:  "Quit",
		Action: func() tea.Cmd { return tea.Quit },
	})

	return &HomeScreen{
		menu:    components.NewMenu(items),
		domains: domains,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Choose a domain"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Selected returns the index of the highlighted menu item.
func (h *HomeScreen) Selected() int {
	return h.menu.Selected
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, renderBanner(width)))

	menu := lipgloss.NewStyle().
		Width(min(width-4, 80)).
		Render(h.menu.View())
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, menu))

	if len(h.domains) == 0 {
		sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render("The catalog has no domains.")))
	}

	return "\n" + strings.Join(sections, "\n\n")
}
