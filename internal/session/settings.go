package session

import (
	"errors"
	"fmt"

	"github.com/abhisek/mockview/internal/catalog"
)

// Default settings for a new interview.
const (
	DefaultNumberOfQuestions = 8
	DefaultIncludeFollowUps  = true
	DefaultDifficulty        = catalog.DifficultyMixed
)

var (
	// ErrInvalidSettings is returned when interview settings cannot produce
	// a session (for example a non-positive question count).
	ErrInvalidSettings = errors.New("invalid interview settings")

	// ErrNoSkills is returned when a session is started without any skills.
	ErrNoSkills = errors.New("at least one skill must be selected")
)

// Settings controls how questions are selected for a session.
type Settings struct {
	// NumberOfQuestions is the upper bound on selected questions.
	NumberOfQuestions int

	// IncludeFollowUps enables follow-up prompts after each main answer.
	IncludeFollowUps bool

	// Difficulty filters questions by level. DifficultyMixed disables the filter.
	Difficulty catalog.Difficulty
}

// DefaultSettings returns the settings used when none are given.
func DefaultSettings() Settings {
	return Settings{
		NumberOfQuestions: DefaultNumberOfQuestions,
		IncludeFollowUps:  DefaultIncludeFollowUps,
		Difficulty:        DefaultDifficulty,
	}
}

// Validate reports whether the settings can be used to start a session.
func (s Settings) Validate() error {
	if s.NumberOfQuestions < 1 {
		return fmt.Errorf("%w: number of questions must be at least 1, got %d", ErrInvalidSettings, s.NumberOfQuestions)
	}
	switch s.Difficulty {
	case catalog.DifficultyEasy, catalog.DifficultyMedium, catalog.DifficultyHard, catalog.DifficultyMixed:
	default:
		return fmt.Errorf("%w: unknown difficulty %q", ErrInvalidSettings, s.Difficulty)
	}
	return nil
}
