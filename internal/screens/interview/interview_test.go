package interview

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/mockview/internal/catalog"
	"github.com/abhisek/mockview/internal/feedback"
	"github.com/abhisek/mockview/internal/router"
	"github.com/abhisek/mockview/internal/screen"
	feedbackscreen "github.com/abhisek/mockview/internal/screens/feedback"
	"github.com/abhisek/mockview/internal/session"
)

// stubPicker returns fixed questions and follow-ups.
type stubPicker struct {
	questions []catalog.Question
	followUps []string
}

func (p *stubPicker) Select(string, []string, session.Settings) []catalog.Question {
	return p.questions
}

func (p *stubPicker) FollowUps(_ catalog.Question, include bool) []string {
	if !include {
		return nil
	}
	return p.followUps
}

// stubScorer records the session it scored.
type stubScorer struct {
	scored *session.Session
}

func (s *stubScorer) ScoreSession(sess *session.Session) feedback.Feedback {
	s.scored = sess
	return feedback.Feedback{Score: 77, Overall: "scored"}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testInterview(t *testing.T, n int, followUps []string) (*InterviewScreen, *stubScorer) {
	t.Helper()
	var qs []catalog.Question
	for i := range n {
		qs = append(qs, catalog.Question{
			ID:         string(rune('a'+i)) + "1",
			Text:       "Question " + string(rune('A'+i)),
			Type:       catalog.TypeTechnical,
			Difficulty: catalog.DifficultyMedium,
			Skill:      "Algorithms",
			FollowUps:  followUps,
		})
	}
	domain := catalog.Domain{ID: "software-engineer", Title: "Software Engineer", Skills: []string{"Algorithms"}}
	settings := session.DefaultSettings()
	settings.IncludeFollowUps = len(followUps) > 0

	sess, err := session.New(&stubPicker{questions: qs, followUps: followUps}, domain, []string{"Algorithms"}, settings)
	if err != nil {
		t.Fatalf("session.New() error: %v", err)
	}
	scorer := &stubScorer{}
	return New(sess, Services{Scorer: scorer}), scorer
}

// answer types text and presses Enter.
func answer(t *testing.T, s *InterviewScreen, text string) tea.Cmd {
	t.Helper()
	s.input.Model.SetValue(text)
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	return cmd
}

func TestInterviewScreen_Title(t *testing.T) {
	s, _ := testInterview(t, 2, nil)
	if s.Title() != "Software Engineer Interview" {
		t.Errorf("Title = %q", s.Title())
	}
	if s.Status() != "Question 1 of 2" {
		t.Errorf("Status = %q, want %q", s.Status(), "Question 1 of 2")
	}
}

func TestInterviewScreen_SubmitAdvances(t *testing.T) {
	s, _ := testInterview(t, 2, nil)

	if cmd := answer(t, s, "my answer"); cmd != nil {
		t.Error("expected no command while questions remain")
	}

	answered, _ := s.Session().Progress()
	if answered != 1 {
		t.Errorf("answered = %d, want 1", answered)
	}
	if s.input.Value() != "" {
		t.Errorf("input not cleared: %q", s.input.Value())
	}
	if !strings.Contains(s.View(100, 30), "Question B") {
		t.Error("expected the second question to be shown")
	}
}

func TestInterviewScreen_BlankAnswerRejected(t *testing.T) {
	s, _ := testInterview(t, 2, nil)

	answer(t, s, "   ")

	answered, _ := s.Session().Progress()
	if answered != 0 {
		t.Errorf("answered = %d, want 0", answered)
	}
	if s.Notice() != noticeBlank {
		t.Errorf("Notice = %q, want %q", s.Notice(), noticeBlank)
	}
}

func TestInterviewScreen_FollowUps(t *testing.T) {
	s, _ := testInterview(t, 2, []string{"Why?", "How?"})

	answer(t, s, "main answer")
	if s.phase != phaseFollowUp {
		t.Fatal("expected follow-up phase after main answer")
	}
	if !strings.Contains(s.View(100, 30), "Follow-up 1 of 2") {
		t.Error("expected follow-up counter in view")
	}
	answered, _ := s.Session().Progress()
	if answered != 0 {
		t.Errorf("answer recorded before follow-ups: answered = %d", answered)
	}

	answer(t, s, "because")
	answer(t, s, "like this")

	answers := s.Session().Answers()
	if len(answers) != 1 {
		t.Fatalf("answers = %d, want 1", len(answers))
	}
	got := answers[0]
	if got.Text != "main answer" {
		t.Errorf("Text = %q", got.Text)
	}
	want := []session.FollowUpAnswer{{Question: "Why?", Answer: "because"}, {Question: "How?", Answer: "like this"}}
	if len(got.FollowUpAnswers) != len(want) {
		t.Fatalf("FollowUpAnswers = %v, want %v", got.FollowUpAnswers, want)
	}
	for i := range want {
		if got.FollowUpAnswers[i] != want[i] {
			t.Errorf("FollowUpAnswers[%d] = %v, want %v", i, got.FollowUpAnswers[i], want[i])
		}
	}
	if s.phase != phaseQuestion {
		t.Error("expected question phase after the last follow-up")
	}
}

func TestInterviewScreen_FollowUpCompactHeight(t *testing.T) {
	s, _ := testInterview(t, 2, []string{"Why?"})
	answer(t, s, "main answer")

	tall := s.View(100, 40)
	if !strings.Contains(tall, "Your answer: main answer") {
		t.Error("expected the main answer echo on a tall terminal")
	}
	short := s.View(100, 20)
	if strings.Contains(short, "Your answer:") {
		t.Error("expected no main answer echo on a short terminal")
	}
	if !strings.Contains(short, "Why?") {
		t.Error("expected the follow-up prompt on a short terminal")
	}
}

func TestInterviewScreen_FollowUpAnswerLogged(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	s, _ := testInterview(t, 2, []string{"Why?"})
	s.svc.Logger = zap.New(core)

	answer(t, s, "main answer")
	answer(t, s, strings.Repeat("x", 100))

	entries := observed.FilterMessage("follow-up answered").All()
	if len(entries) != 1 {
		t.Fatalf("follow-up entries = %d, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["answer"]; got != strings.Repeat("x", 60)+"..." {
		t.Errorf("logged answer = %v, want it shortened to 60 characters", got)
	}
}

func TestInterviewScreen_SkipFollowUp(t *testing.T) {
	s, _ := testInterview(t, 2, []string{"Why?", "How?"})

	answer(t, s, "main answer")
	s.Update(specialKey(tea.KeyTab))
	answer(t, s, "like this")

	answers := s.Session().Answers()
	if len(answers) != 1 {
		t.Fatalf("answers = %d, want 1", len(answers))
	}
	if len(answers[0].FollowUpAnswers) != 1 || answers[0].FollowUpAnswers[0].Question != "How?" {
		t.Errorf("FollowUpAnswers = %v, want only How?", answers[0].FollowUpAnswers)
	}
}

func TestInterviewScreen_EscRefusedWithoutAnswers(t *testing.T) {
	s, _ := testInterview(t, 2, nil)

	s.Update(specialKey(tea.KeyEscape))

	if s.ShowingEndConfirm() {
		t.Error("end confirmation should not open before any answer")
	}
	if s.Notice() != noticeNoAnswers {
		t.Errorf("Notice = %q, want %q", s.Notice(), noticeNoAnswers)
	}
	if s.Session().EndedEarly() {
		t.Error("session should not be ended")
	}
}

func TestInterviewScreen_EndEarly(t *testing.T) {
	s, scorer := testInterview(t, 3, nil)
	answer(t, s, "first")

	s.Update(specialKey(tea.KeyEscape))
	if !s.ShowingEndConfirm() {
		t.Fatal("expected end confirmation after Esc")
	}
	if !strings.Contains(s.View(100, 30), "End interview early?") {
		t.Error("expected confirmation dialog in view")
	}

	// Typed keys must not reach the input while the dialog is open.
	s.Update(keyPress('x'))
	if s.input.Value() != "" {
		t.Errorf("input received key during dialog: %q", s.input.Value())
	}

	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after confirming")
	}
	if !s.Session().EndedEarly() {
		t.Error("expected session to be ended early")
	}

	var scr screen.Screen
	scr, cmd = s.Update(cmd())
	if scr != s {
		t.Error("expected the interview screen to stay active until replaced")
	}
	if scorer.scored != s.Session() {
		t.Error("expected the session to be scored")
	}
	replace, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	fs, ok := replace.Screen.(*feedbackscreen.FeedbackScreen)
	if !ok {
		t.Fatalf("replacement screen is %T", replace.Screen)
	}
	rep := fs.Report()
	if rep.Feedback.Score != 77 || !rep.Summary.EndedEarly || rep.Summary.Answered != 1 || rep.Summary.Total != 3 {
		t.Errorf("unexpected report: %+v", rep)
	}
}

func TestInterviewScreen_EndConfirmCancel(t *testing.T) {
	s, _ := testInterview(t, 3, nil)
	answer(t, s, "first")

	s.Update(specialKey(tea.KeyEscape))
	s.Update(keyPress('n'))

	if s.ShowingEndConfirm() {
		t.Error("expected dialog closed after N")
	}
	if s.Session().EndedEarly() {
		t.Error("session should continue")
	}

	s.Update(specialKey(tea.KeyEscape))
	s.Update(specialKey(tea.KeyEscape))
	if s.ShowingEndConfirm() {
		t.Error("expected dialog closed after second Esc")
	}
}

func TestInterviewScreen_EndDuringFollowUps(t *testing.T) {
	s, _ := testInterview(t, 3, []string{"Why?", "How?"})

	answer(t, s, "main answer")
	answer(t, s, "because")

	s.Update(specialKey(tea.KeyEscape))
	if !s.ShowingEndConfirm() {
		t.Fatal("a pending main answer should allow ending early")
	}
	s.Update(keyPress('y'))

	answers := s.Session().Answers()
	if len(answers) != 1 {
		t.Fatalf("answers = %d, want 1", len(answers))
	}
	if len(answers[0].FollowUpAnswers) != 1 {
		t.Errorf("FollowUpAnswers = %v, want the one given", answers[0].FollowUpAnswers)
	}
	if !s.Session().EndedEarly() {
		t.Error("expected session ended early")
	}
}

func TestInterviewScreen_CompletesAfterLastQuestion(t *testing.T) {
	s, scorer := testInterview(t, 1, nil)

	cmd := answer(t, s, "only answer")
	if cmd == nil {
		t.Fatal("expected completion command")
	}
	_, cmd = s.Update(cmd())
	if cmd == nil {
		t.Fatal("expected replace command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg")
	}
	if scorer.scored == nil || s.Session().EndedEarly() {
		t.Error("expected a complete, scored session")
	}

	// A second completion message is ignored.
	if _, cmd := s.Update(interviewDoneMsg{}); cmd != nil {
		t.Error("expected no command after the screen is done")
	}
}

func TestInterviewScreen_KeyHints(t *testing.T) {
	s, _ := testInterview(t, 2, []string{"Why?"})
	if len(s.KeyHints()) != 3 {
		t.Errorf("KeyHints length = %d, want 3", len(s.KeyHints()))
	}
	answer(t, s, "main")
	if len(s.KeyHints()) != 4 {
		t.Errorf("follow-up KeyHints length = %d, want 4", len(s.KeyHints()))
	}
}
