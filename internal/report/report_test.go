package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/mockview/internal/catalog"
	"github.com/abhisek/mockview/internal/feedback"
	"github.com/abhisek/mockview/internal/session"
)

func sampleReport() Report {
	return Report{
		Summary: session.Summary{
			SessionID:       "abc",
			DomainID:        "software-engineer",
			DomainTitle:     "Software Engineer",
			Skills:          []string{"Algorithms", "Data Structures"},
			State:           "ended-early",
			DurationMinutes: 3,
			Answered:        2,
			Total:           5,
			FollowUpAnswers: 2,
			EndedEarly:      true,
		},
		Feedback: feedback.Feedback{
			Score:        80,
			Strengths:    []string{"Clear answers"},
			Improvements: []string{"More examples"},
			Overall:      "Good job!",
			NextSteps:    []string{"Practice more"},
			SkillBreakdown: []feedback.SkillFeedback{
				{Skill: "Algorithms", Score: 70, Feedback: "Good grasp."},
				{Skill: "Data Structures", Score: 90, Feedback: "Excellent."},
			},
		},
	}
}

func TestText(t *testing.T) {
	want := `Interview Summary:
  Duration: 3 minutes
  Questions Completed: 2 of 5
  Ended Early: Yes

Overall Score: 80/100
Overall Feedback: Good job!

Strengths:
  • Clear answers

Areas for Improvement:
  • More examples

Skill Breakdown:
  Algorithms: 70% - Good grasp.
  Data Structures: 90% - Excellent.

Next Steps:
  • Practice more
`
	if got := sampleReport().Text(); got != want {
		t.Errorf("Text() =\n%s\nwant\n%s", got, want)
	}
}

func TestText_NotEndedEarly(t *testing.T) {
	r := sampleReport()
	r.Summary.EndedEarly = false

	var buf bytes.Buffer
	if err := r.WriteText(&buf); err != nil {
		t.Fatalf("WriteText() error: %v", err)
	}
	if !strings.Contains(buf.String(), "  Ended Early: No\n") {
		t.Errorf("expected 'Ended Early: No' in:\n%s", buf.String())
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := sampleReport().WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}

	var decoded map[string]map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if got := decoded["feedback"]["overall_feedback"]; got != "Good job!" {
		t.Errorf("feedback.overall_feedback = %v, want Good job!", got)
	}
	if got := decoded["summary"]["ended_early"]; got != true {
		t.Errorf("summary.ended_early = %v, want true", got)
	}
	if got := decoded["feedback"]["score"]; got != float64(80) {
		t.Errorf("feedback.score = %v, want 80", got)
	}
}

func TestRender(t *testing.T) {
	out := sampleReport().Render(100)
	for _, want := range []string{
		"Interview ended early",
		"80/100",
		"Questions: 2 of 5",
		"• Clear answers",
		"Areas for Improvement",
		"Algorithms",
		"• Practice more",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q", want)
		}
	}
}

func TestRender_Complete(t *testing.T) {
	r := sampleReport()
	r.Summary.EndedEarly = false
	if out := r.Render(100); !strings.Contains(out, "Interview complete!") {
		t.Error("Render() missing completion title")
	}
}

func TestScoreColor(t *testing.T) {
	if ScoreColor(70) == ScoreColor(69) {
		t.Error("70 and 69 should use different colours")
	}
	if ScoreColor(55) == ScoreColor(54) {
		t.Error("55 and 54 should use different colours")
	}
}

type onePicker struct{ questions []catalog.Question }

func (p onePicker) Select(string, []string, session.Settings) []catalog.Question {
	return p.questions
}

func (onePicker) FollowUps(catalog.Question, bool) []string { return nil }

func TestNew(t *testing.T) {
	start := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
	now := start
	domain := catalog.Domain{ID: "software-engineer", Title: "Software Engineer"}
	picker := onePicker{questions: []catalog.Question{{ID: "q1", Skill: "A"}, {ID: "q2", Skill: "A"}}}

	s, err := session.New(picker, domain, []string{"A"}, session.DefaultSettings(),
		session.WithClock(func() time.Time { return now }))
	if err != nil {
		t.Fatalf("session.New() error: %v", err)
	}
	s.SubmitAnswer("an answer", nil)
	now = start.Add(2*time.Minute + 30*time.Second)
	s.EndEarly()

	r := New(s, feedback.Empty())
	if r.Summary.Answered != 1 || r.Summary.Total != 2 {
		t.Errorf("progress = %d of %d, want 1 of 2", r.Summary.Answered, r.Summary.Total)
	}
	if r.Summary.DurationMinutes != 2 {
		t.Errorf("DurationMinutes = %d, want 2", r.Summary.DurationMinutes)
	}
	if !r.Summary.EndedEarly {
		t.Error("EndedEarly = false, want true")
	}
	if r.Feedback.Overall != "No answers provided" {
		t.Errorf("Feedback.Overall = %q", r.Feedback.Overall)
	}
}
