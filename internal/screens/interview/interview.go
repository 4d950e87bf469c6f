package interview

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/mockview/internal/logger"
	"github.com/abhisek/mockview/internal/report"
	"github.com/abhisek/mockview/internal/router"
	"github.com/abhisek/mockview/internal/screen"
	feedbackscreen "github.com/abhisek/mockview/internal/screens/feedback"
	"github.com/abhisek/mockview/internal/session"
	"github.com/abhisek/mockview/internal/ui/components"
	"github.com/abhisek/mockview/internal/ui/layout"
)

// phase is what the candidate is currently answering.
type phase int

const (
	phaseQuestion phase = iota
	phaseFollowUp
)

const (
	noticeBlank      = "Type an answer before submitting."
	noticeNoAnswers  = "Answer at least one question before ending the interview."
	inputPlaceholder = "Type your answer..."
)

// InterviewScreen implements screen.Screen for a running interview.
type InterviewScreen struct {
	sess  *session.Session
	svc   Services
	input components.TextInput

	phase       phase
	mainAnswer  string
	followUps   []string
	followUpIdx int
	collected   []session.FollowUpAnswer

	showingEndConfirm bool
	notice            string
	done              bool
}

var _ screen.Screen = (*InterviewScreen)(nil)
var _ screen.KeyHintProvider = (*InterviewScreen)(nil)
var _ screen.EscapeHandler = (*InterviewScreen)(nil)
var _ screen.StatusProvider = (*InterviewScreen)(nil)

// New creates an InterviewScreen for a freshly created session.
func New(sess *session.Session, svc Services) *InterviewScreen {
	return &InterviewScreen{
		sess:  sess,
		svc:   svc,
		input: components.NewTextInput(inputPlaceholder, 0, 0),
	}
}

func (s *InterviewScreen) Init() tea.Cmd {
	answered, total := s.sess.Progress()
	s.svc.logger().Info("interview started",
		zap.String("session", s.sess.ID()),
		zap.String("domain", s.sess.Domain().ID),
		zap.Strings("skills", s.sess.Skills()),
		zap.Int("answered", answered),
		zap.Int("questions", total))

	if s.sess.IsComplete() {
		return func() tea.Msg { return interviewDoneMsg{} }
	}
	return s.input.Init()
}

func (s *InterviewScreen) Title() string {
	return s.sess.Domain().Title + " Interview"
}

// HandlesEscape is always true: Esc opens the end-early dialog.
func (s *InterviewScreen) HandlesEscape() bool {
	return true
}

// Status shows the question position in the header.
func (s *InterviewScreen) Status() string {
	answered, total := s.sess.Progress()
	return components.NewProgressBar(answered, total, 0).Label()
}

func (s *InterviewScreen) KeyHints() []layout.KeyHint {
	if s.showingEndConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End interview"},
			{Key: "N", Description: "Keep going"},
		}
	}
	hints := []layout.KeyHint{{Key: "Enter", Description: "Submit"}}
	if s.phase == phaseFollowUp {
		hints = append(hints, layout.KeyHint{Key: "Tab", Description: "Skip follow-up"})
	}
	return append(hints,
		layout.KeyHint{Key: "Esc", Description: "End early"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
}

// Session returns the underlying session.
func (s *InterviewScreen) Session() *session.Session {
	return s.sess
}

// ShowingEndConfirm reports whether the end-early dialog is open.
func (s *InterviewScreen) ShowingEndConfirm() bool {
	return s.showingEndConfirm
}

// Notice returns the message shown under the input, if any.
func (s *InterviewScreen) Notice() string {
	return s.notice
}

func (s *InterviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case interviewDoneMsg:
		return s.finish()
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.showingEndConfirm || s.done {
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *InterviewScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.done {
		return s, nil
	}
	key := msg.String()

	if s.showingEndConfirm {
		switch key {
		case "y", "Y":
			s.showingEndConfirm = false
			return s.endEarly()
		case "n", "N", "esc":
			s.showingEndConfirm = false
		}
		return s, nil
	}

	switch key {
	case "esc":
		if !s.canEndEarly() {
			s.notice = noticeNoAnswers
			return s, nil
		}
		s.notice = ""
		s.showingEndConfirm = true
		return s, nil
	case "enter":
		return s.submit()
	case "tab":
		if s.phase == phaseFollowUp {
			return s.advanceFollowUp()
		}
		return s, nil
	}

	s.notice = ""
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// canEndEarly reports whether ending now would leave at least one answer.
// A main answer awaiting its follow-ups counts.
func (s *InterviewScreen) canEndEarly() bool {
	answered, _ := s.sess.Progress()
	return answered > 0 || s.phase == phaseFollowUp
}

func (s *InterviewScreen) submit() (screen.Screen, tea.Cmd) {
	if s.input.IsBlank() {
		s.notice = noticeBlank
		return s, nil
	}
	text := strings.TrimSpace(s.input.Value())
	s.input.Reset()
	s.notice = ""

	if s.phase == phaseQuestion {
		s.mainAnswer = text
		s.followUps = s.sess.PickFollowUps()
		s.followUpIdx = 0
		s.collected = nil
		if len(s.followUps) == 0 {
			return s.recordAnswer()
		}
		s.phase = phaseFollowUp
		return s, nil
	}

	s.collected = append(s.collected, session.FollowUpAnswer{
		Question: s.followUps[s.followUpIdx],
		Answer:   text,
	})
	s.svc.logger().Debug("follow-up answered",
		zap.String("session", s.sess.ID()),
		zap.Int("follow_up", s.followUpIdx+1),
		zap.String("answer", logger.Truncate(text, logger.PreviewLimit)))
	return s.advanceFollowUp()
}

// advanceFollowUp moves to the next follow-up or records the answer after
// the last one.
func (s *InterviewScreen) advanceFollowUp() (screen.Screen, tea.Cmd) {
	s.input.Reset()
	s.followUpIdx++
	if s.followUpIdx < len(s.followUps) {
		return s, nil
	}
	return s.recordAnswer()
}

func (s *InterviewScreen) recordAnswer() (screen.Screen, tea.Cmd) {
	s.sess.SubmitAnswer(s.mainAnswer, s.collected)
	s.resetAnswer()
	if s.sess.IsComplete() {
		return s, func() tea.Msg { return interviewDoneMsg{} }
	}
	return s, nil
}

func (s *InterviewScreen) endEarly() (screen.Screen, tea.Cmd) {
	if s.phase == phaseFollowUp {
		s.sess.SubmitAnswer(s.mainAnswer, s.collected)
		s.resetAnswer()
	}
	if !s.sess.EndEarly() {
		s.notice = noticeNoAnswers
		return s, nil
	}
	return s, func() tea.Msg { return interviewDoneMsg{} }
}

func (s *InterviewScreen) resetAnswer() {
	s.phase = phaseQuestion
	s.mainAnswer = ""
	s.followUps = nil
	s.followUpIdx = 0
	s.collected = nil
}

// finish scores the session and hands over to the feedback screen.
func (s *InterviewScreen) finish() (screen.Screen, tea.Cmd) {
	if s.done {
		return s, nil
	}
	s.done = true

	fb := s.svc.Scorer.ScoreSession(s.sess)
	rep := report.New(s.sess, fb)
	s.svc.logger().Info("interview finished",
		zap.String("session", rep.Summary.SessionID),
		zap.String("state", rep.Summary.State),
		zap.Int("answered", rep.Summary.Answered),
		zap.Int("questions", rep.Summary.Total),
		zap.Int("score", fb.Score))

	next := feedbackscreen.New(rep)
	return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}
