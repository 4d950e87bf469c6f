package setup

import (
	"errors"
	"slices"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/mockview/internal/catalog"
	"github.com/abhisek/mockview/internal/config"
	"github.com/abhisek/mockview/internal/router"
	"github.com/abhisek/mockview/internal/screen"
	"github.com/abhisek/mockview/internal/screens/interview"
	"github.com/abhisek/mockview/internal/session"
	"github.com/abhisek/mockview/internal/ui/components"
	"github.com/abhisek/mockview/internal/ui/layout"
)

// Rows below the skill list.
const (
	rowQuestions = iota
	rowFollowUps
	rowDifficulty
	rowStart
	settingRows
)

const (
	errNoSkills    = "Select at least one skill."
	errNoQuestions = "No questions match these settings. Try another difficulty."
)

// SetupScreen lets the candidate choose skills and interview settings for a
// domain before starting.
type SetupScreen struct {
	domain   catalog.Domain
	svc      interview.Services
	settings session.Settings
	skills   components.Checklist
	row      int
	errMsg   string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a SetupScreen with every skill of the domain selected.
func New(domain catalog.Domain, settings session.Settings, svc interview.Services) *SetupScreen {
	skills := components.NewChecklist(domain.Skills)
	skills.SetAll(true)
	return &SetupScreen{
		domain:   domain,
		svc:      svc,
		settings: settings,
		skills:   skills,
	}
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	return s.domain.Title
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Space", Description: "Toggle"},
		{Key: "←→", Description: "Adjust"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

// Settings returns the interview settings as currently chosen.
func (s *SetupScreen) Settings() session.Settings {
	return s.settings
}

// SelectedSkills returns the checked skills in domain order.
func (s *SetupScreen) SelectedSkills() []string {
	return s.skills.Checked()
}

// Err returns the message shown when starting failed.
func (s *SetupScreen) Err() string {
	return s.errMsg
}

func (s *SetupScreen) rows() int {
	return len(s.domain.Skills) + settingRows
}

// settingRow returns the setting under the cursor, or -1 on a skill row.
func (s *SetupScreen) settingRow() int {
	if s.row < len(s.domain.Skills) {
		return -1
	}
	return s.row - len(s.domain.Skills)
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if s.row > 0 {
			s.row--
		}
		s.syncCursor()
		return s, nil
	case "down", "j":
		if s.row < s.rows()-1 {
			s.row++
		}
		s.syncCursor()
		return s, nil
	case "enter":
		return s.start()
	}

	s.errMsg = ""
	switch s.settingRow() {
	case -1:
		s.skills, _ = s.skills.Update(msg)
	case rowQuestions:
		switch key {
		case "left", "h", "-":
			s.settings.NumberOfQuestions = max(s.settings.NumberOfQuestions-1, 1)
		case "right", "l", "+":
			s.settings.NumberOfQuestions = min(s.settings.NumberOfQuestions+1, config.MaxQuestions)
		}
	case rowFollowUps:
		switch key {
		case "left", "right", "h", "l", "space", " ":
			s.settings.IncludeFollowUps = !s.settings.IncludeFollowUps
		}
	case rowDifficulty:
		switch key {
		case "left", "h":
			s.settings.Difficulty = cycleDifficulty(s.settings.Difficulty, -1)
		case "right", "l", "space", " ":
			s.settings.Difficulty = cycleDifficulty(s.settings.Difficulty, 1)
		}
	}
	return s, nil
}

func (s *SetupScreen) syncCursor() {
	if s.row < len(s.domain.Skills) {
		s.skills.Cursor = s.row
	}
}

// start creates the session and pushes the interview screen.
func (s *SetupScreen) start() (screen.Screen, tea.Cmd) {
	skills := s.skills.Checked()
	sess, err := session.New(s.svc.Picker, s.domain, skills, s.settings, s.svc.SessionOptions()...)
	if err != nil {
		if errors.Is(err, session.ErrNoSkills) {
			s.errMsg = errNoSkills
		} else {
			s.errMsg = err.Error()
		}
		return s, nil
	}
	if len(sess.Questions()) == 0 {
		s.errMsg = errNoQuestions
		if s.svc.Logger != nil {
			s.svc.Logger.Debug("no questions selected",
				zap.String("domain", s.domain.ID),
				zap.Strings("skills", skills),
				zap.String("difficulty", string(s.settings.Difficulty)))
		}
		return s, nil
	}

	s.errMsg = ""
	return s, router.Push(interview.New(sess, s.svc))
}

// cycleDifficulty steps through the difficulty filters in display order.
func cycleDifficulty(d catalog.Difficulty, step int) catalog.Difficulty {
	all := catalog.AllDifficulties()
	i := slices.Index(all, d)
	if i < 0 {
		return all[0]
	}
	return all[(i+step+len(all))%len(all)]
}
