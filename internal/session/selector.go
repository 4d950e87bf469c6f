package session

import (
	"go.uber.org/zap"

	"github.com/abhisek/mockview/internal/catalog"
	"github.com/abhisek/mockview/internal/random"
)

// QuestionSource supplies the ordered questions owned by a skill.
// *catalog.Catalog satisfies it.
type QuestionSource interface {
	Questions(skill string) []catalog.Question
}

// Picker chooses the questions of a session and the follow-ups asked after
// each answer.
type Picker interface {
	Select(domainID string, skills []string, settings Settings) []catalog.Question
	FollowUps(q catalog.Question, include bool) []string
}

// Selector picks skill-diverse question sets and random follow-ups.
// It holds no per-session state and can serve any number of sessions, but
// the random source is not synchronized: share one Selector across
// goroutines only with external locking.
type Selector struct {
	source QuestionSource
	rand   random.Source
	logger *zap.Logger
}

// NewSelector creates a Selector over the given question source.
// A nil logger disables logging.
func NewSelector(source QuestionSource, rnd random.Source, logger *zap.Logger) *Selector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Selector{source: source, rand: rnd, logger: logger}
}

// Select returns at most settings.NumberOfQuestions questions drawn from the
// given skills. Candidates are shuffled, then walked greedily: a question is
// taken when its skill has not been used yet, or once every requested skill
// has been used. Unknown skills contribute nothing. Repeated skill names are
// counted once.
func (s *Selector) Select(domainID string, skills []string, settings Settings) []catalog.Question {
	requested := uniqueSkills(skills)

	var candidates []catalog.Question
	for _, skill := range requested {
		for _, q := range s.source.Questions(skill) {
			if settings.Difficulty != catalog.DifficultyMixed && q.Difficulty != settings.Difficulty {
				continue
			}
			candidates = append(candidates, q)
		}
	}

	s.rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	limit := max(settings.NumberOfQuestions, 0)
	selected := make([]catalog.Question, 0, min(limit, len(candidates)))
	used := make(map[string]bool, len(requested))
	for _, q := range candidates {
		if len(selected) >= limit {
			break
		}
		if !used[q.Skill] || len(used) >= len(requested) {
			selected = append(selected, q)
			used[q.Skill] = true
		}
	}

	s.logger.Debug("questions selected",
		zap.String("domain", domainID),
		zap.Strings("skills", requested),
		zap.String("difficulty", string(settings.Difficulty)),
		zap.Int("candidates", len(candidates)),
		zap.Int("selected", len(selected)),
		zap.Int("requested", settings.NumberOfQuestions),
	)

	return selected
}

// FollowUps returns one or two distinct follow-up prompts of q in sampling
// order, or nil when include is false or q has none.
func (s *Selector) FollowUps(q catalog.Question, include bool) []string {
	if !include || !q.HasFollowUps() {
		return nil
	}

	n := min(random.Between(s.rand, 1, 2), len(q.FollowUps))

	// Partial Fisher-Yates over a copy: the first n slots are the sample.
	pool := make([]string, len(q.FollowUps))
	copy(pool, q.FollowUps)
	for i := range n {
		j := i + s.rand.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}

func uniqueSkills(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
