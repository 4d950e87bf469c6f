package session

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/mockview/internal/catalog"
	"github.com/abhisek/mockview/internal/logger"
)

// Session walks a learner through a fixed sequence of questions.
//
// The question sequence is chosen once, when the session is created. Answers
// are appended one per question and the cursor only moves forward. A session
// ends either when every question has been answered or when the learner ends
// it early; ending early is terminal.
//
// A Session is not safe for concurrent use.
type Session struct {
	id       string
	domain   catalog.Domain
	skills   []string
	settings Settings
	picker   Picker

	questions []catalog.Question
	cursor    int
	answers   []Answer

	startTime  time.Time
	endTime    time.Time
	endedEarly bool

	now    func() time.Time
	logger *zap.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithClock replaces the wall clock used for timestamps and durations.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithLogger sets the session logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithID overrides the generated session ID.
func WithID(id string) Option {
	return func(s *Session) { s.id = id }
}

// New starts a session for the given domain and skills. Repeated skill
// names are kept once. Questions are selected immediately through picker. An empty selection is not an error:
// the session is then complete from the start.
func New(picker Picker, domain catalog.Domain, skills []string, settings Settings, opts ...Option) (*Session, error) {
	if len(skills) == 0 {
		return nil, ErrNoSkills
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		id:       uuid.New().String(),
		domain:   domain,
		skills:   uniqueSkills(skills),
		settings: settings,
		picker:   picker,
		now:      time.Now,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.startTime = s.now()
	s.questions = picker.Select(domain.ID, s.skills, settings)
	s.logger = s.logger.With(zap.String("session", s.id))

	s.logger.Info("session started",
		zap.String("domain", domain.ID),
		zap.Strings("skills", s.skills),
		zap.Int("questions", len(s.questions)),
	)

	return s, nil
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Domain returns the interview domain.
func (s *Session) Domain() catalog.Domain { return s.domain }

// Skills returns the selected skills in the order given at creation.
func (s *Session) Skills() []string { return append([]string(nil), s.skills...) }

// Settings returns the settings the session was created with.
func (s *Session) Settings() Settings { return s.settings }

// Questions returns the selected question sequence.
func (s *Session) Questions() []catalog.Question {
	return append([]catalog.Question(nil), s.questions...)
}

// Answers returns the answers recorded so far.
func (s *Session) Answers() []Answer {
	return append([]Answer(nil), s.answers...)
}

// StartTime returns when the session was created.
func (s *Session) StartTime() time.Time { return s.startTime }

// EndTime returns when the session was ended early, if it was.
func (s *Session) EndTime() (time.Time, bool) {
	return s.endTime, !s.endTime.IsZero()
}

// EndedEarly reports whether the learner ended the session early.
func (s *Session) EndedEarly() bool { return s.endedEarly }

// CurrentQuestion returns the question at the cursor. ok is false once the
// sequence is exhausted.
func (s *Session) CurrentQuestion() (q catalog.Question, ok bool) {
	if s.cursor >= len(s.questions) {
		return catalog.Question{}, false
	}
	return s.questions[s.cursor], true
}

// PickFollowUps draws the follow-up prompts for the current question,
// honoring the session's follow-up setting. It returns nil when no question
// is pending.
func (s *Session) PickFollowUps() []string {
	if s.endedEarly {
		return nil
	}
	q, ok := s.CurrentQuestion()
	if !ok {
		return nil
	}
	return s.picker.FollowUps(q, s.settings.IncludeFollowUps)
}

// SubmitAnswer records an answer to the current question and advances the
// cursor. It returns false, changing nothing, when no question is pending or
// the session was ended early.
func (s *Session) SubmitAnswer(text string, followUps []FollowUpAnswer) bool {
	if s.endedEarly || s.cursor >= len(s.questions) {
		s.logger.Debug("answer rejected",
			zap.Int("cursor", s.cursor),
			zap.Bool("ended_early", s.endedEarly),
		)
		return false
	}

	q := s.questions[s.cursor]
	s.answers = append(s.answers, Answer{
		QuestionID:      q.ID,
		Text:            text,
		Timestamp:       s.now(),
		FollowUpAnswers: append([]FollowUpAnswer{}, followUps...),
	})
	s.cursor++

	s.logger.Debug("answer recorded",
		zap.String("question", q.ID),
		zap.String("answer", logger.Truncate(text, logger.PreviewLimit)),
		zap.Int("length", utf8.RuneCountInString(text)),
		zap.Int("follow_ups", len(followUps)),
		zap.Int("answered", s.cursor),
		zap.Int("total", len(s.questions)),
	)
	return true
}

// EndEarly terminates the session. It returns false when no answer has been
// recorded yet or the session has already been ended early.
func (s *Session) EndEarly() bool {
	if len(s.answers) == 0 || s.endedEarly {
		return false
	}
	s.endedEarly = true
	s.endTime = s.now()

	s.logger.Info("session ended early",
		zap.Int("answered", len(s.answers)),
		zap.Int("total", len(s.questions)),
	)
	return true
}

// IsComplete reports whether the session accepts no more answers.
func (s *Session) IsComplete() bool {
	return s.cursor >= len(s.questions) || s.endedEarly
}

// State returns the session's lifecycle state.
func (s *Session) State() State {
	switch {
	case s.endedEarly:
		return StateEndedEarly
	case s.cursor >= len(s.questions):
		return StateComplete
	default:
		return StateInProgress
	}
}

// Progress returns the number of answers recorded and the number of
// questions selected.
func (s *Session) Progress() (answered, total int) {
	return s.cursor, len(s.questions)
}

// Duration returns the time between the start and the early end, or now
// when the session has not been ended early.
func (s *Session) Duration() time.Duration {
	end := s.endTime
	if end.IsZero() {
		end = s.now()
	}
	return end.Sub(s.startTime)
}

// DurationMinutes returns Duration in whole minutes, truncated.
func (s *Session) DurationMinutes() int {
	return int(s.Duration() / time.Minute)
}
