package feedback

import (
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/abhisek/mockview/internal/catalog"
	"github.com/abhisek/mockview/internal/random"
	"github.com/abhisek/mockview/internal/session"
)

// Engine scores a finished interview. Scoring is heuristic: it looks only at
// answer lengths, answer count and follow-up engagement, never at content.
type Engine struct {
	rand   random.Source
	logger *zap.Logger
}

// NewEngine creates an Engine. rnd drives the per-skill score jitter.
// A nil logger disables logging.
func NewEngine(rnd random.Source, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{rand: rnd, logger: logger}
}

// ScoreSession scores the answers recorded by s.
func (e *Engine) ScoreSession(s *session.Session) Feedback {
	return e.Score(s.Answers(), s.Domain(), s.Skills())
}

// Score produces the feedback report for the given answers.
// With no answers it returns the fixed Empty report.
func (e *Engine) Score(answers []session.Answer, domain catalog.Domain, skills []string) Feedback {
	if len(answers) == 0 {
		return Empty()
	}

	m := Measure(answers, len(skills))
	score := computeScore(m)

	breakdown := make([]SkillFeedback, 0, len(skills))
	for _, skill := range skills {
		s := max(skillFloor, score+random.Between(e.rand, -skillJitter, skillJitter))
		breakdown = append(breakdown, SkillFeedback{
			Skill:    skill,
			Score:    s,
			Feedback: skillNarrative(skill, s),
		})
	}

	fb := Feedback{
		Score:          score,
		Strengths:      strengths(score, domain, m),
		Improvements:   improvements(score, m),
		Overall:        overall(score, domain, m),
		NextSteps:      nextSteps(score, domain, skills),
		SkillBreakdown: breakdown,
	}

	e.logger.Debug("feedback scored",
		zap.String("domain", domain.ID),
		zap.Int("answers", m.Answers),
		zap.Float64("avg_length", m.AverageLength),
		zap.Int("follow_up_answers", m.FollowUpAnswers),
		zap.Float64("completion_ratio", m.CompletionRatio),
		zap.Int("score", score),
	)

	return fb
}

// Empty returns the report for an interview without answers.
func Empty() Feedback {
	return Feedback{
		Score:          0,
		Strengths:      []string{},
		Improvements:   []string{"Complete the interview to receive feedback"},
		Overall:        "No answers provided",
		NextSteps:      []string{"Start the interview"},
		SkillBreakdown: []SkillFeedback{},
	}
}

// Measure computes the answer statistics. Lengths are counted in
// characters, not bytes.
func Measure(answers []session.Answer, skillCount int) Metrics {
	m := Metrics{Answers: len(answers)}
	if len(answers) == 0 {
		return m
	}

	total := 0
	for _, a := range answers {
		total += utf8.RuneCountInString(a.Text)
		m.FollowUpAnswers += len(a.FollowUpAnswers)
	}
	m.AverageLength = float64(total) / float64(len(answers))
	m.CompletionRatio = float64(len(answers)) / float64(max(1, 2*skillCount))
	return m
}

// computeScore applies the additive bonuses and the early-end penalty.
// The result is capped at 100 but has no lower clamp.
func computeScore(m Metrics) int {
	score := baseScore

	if m.AverageLength > 150 {
		score += 15
	}
	if m.AverageLength > 250 {
		score += 10
	}
	if m.AverageLength > 350 {
		score += 5
	}

	if m.Answers >= 5 {
		score += 10
	}
	if m.Answers >= 8 {
		score += 5
	}

	score += min(3*m.FollowUpAnswers, 15)

	if m.CompletionRatio < 0.5 {
		score -= 10
	}

	return min(score, maxScore)
}
