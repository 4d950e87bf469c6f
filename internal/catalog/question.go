package catalog

import (
	"fmt"
	"slices"
	"strings"
)

// QuestionType classifies what kind of answer a question expects.
type QuestionType string

const (
	TypeTechnical   QuestionType = "technical"
	TypeBehavioral  QuestionType = "behavioral"
	TypeSituational QuestionType = "situational"
)

// AllQuestionTypes returns all question types in display order.
func AllQuestionTypes() []QuestionType {
	return []QuestionType{TypeTechnical, TypeBehavioral, TypeSituational}
}

// DisplayName returns a human-readable name for a question type.
func (t QuestionType) DisplayName() string {
	switch t {
	case TypeTechnical:
		return "Technical"
	case TypeBehavioral:
		return "Behavioral"
	case TypeSituational:
		return "Situational"
	default:
		return string(t)
	}
}

// Difficulty is a question difficulty level.
// DifficultyMixed is a filter-only sentinel meaning "no filter"; it never
// appears on an individual question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyMixed  Difficulty = "mixed"
)

// AllDifficulties returns every difficulty filter value, mixed first.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyMixed, DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty parses a difficulty filter value (case-insensitive).
// An empty string parses as DifficultyMixed.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case "":
		return DifficultyMixed, nil
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyMixed:
		return d, nil
	default:
		return "", fmt.Errorf("invalid difficulty %q: must be easy, medium, hard or mixed", s)
	}
}

// IsQuestionLevel reports whether d may be assigned to a question.
func (d Difficulty) IsQuestionLevel() bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

// DisplayName returns a human-readable name for a difficulty.
func (d Difficulty) DisplayName() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	case DifficultyMixed:
		return "Mixed"
	default:
		return string(d)
	}
}

// Question is a single interview question owned by exactly one skill.
type Question struct {
	ID         string
	Text       string
	Type       QuestionType
	Difficulty Difficulty
	Skill      string
	FollowUps  []string
}

// HasFollowUps reports whether the question carries any follow-up prompts.
func (q Question) HasFollowUps() bool {
	return len(q.FollowUps) > 0
}

func (q Question) clone() Question {
	q.FollowUps = slices.Clone(q.FollowUps)
	return q
}

// Domain is an interview domain (a job role) and the skills it covers.
type Domain struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Skills      []string
}

// HasSkill reports whether skill is one of the domain's skills.
func (d Domain) HasSkill(skill string) bool {
	return slices.Contains(d.Skills, skill)
}

func (d Domain) clone() Domain {
	d.Skills = slices.Clone(d.Skills)
	return d
}
