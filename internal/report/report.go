package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/mockview/internal/feedback"
	"github.com/abhisek/mockview/internal/session"
)

// Report is the final result of an interview: session facts plus the
// scored feedback.
type Report struct {
	Summary  session.Summary   `json:"summary"`
	Feedback feedback.Feedback `json:"feedback"`
}

// New assembles a Report from a finished session and its feedback.
func New(s *session.Session, fb feedback.Feedback) Report {
	return Report{
		Summary:  session.BuildSummary(s),
		Feedback: fb,
	}
}

// WriteJSON writes the report as indented JSON.
func (r Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

// WriteText writes the report as plain text for terminal output.
func (r Report) WriteText(w io.Writer) error {
	_, err := io.WriteString(w, r.Text())
	return err
}

// Text returns the plain-text rendering of the report.
func (r Report) Text() string {
	var b strings.Builder
	sum, fb := r.Summary, r.Feedback

	b.WriteString("Interview Summary:\n")
	fmt.Fprintf(&b, "  Duration: %d minutes\n", sum.DurationMinutes)
	fmt.Fprintf(&b, "  Questions Completed: %d of %d\n", sum.Answered, sum.Total)
	fmt.Fprintf(&b, "  Ended Early: %s\n", yesNo(sum.EndedEarly))
	b.WriteString("\n")

	fmt.Fprintf(&b, "Overall Score: %d/100\n", fb.Score)
	fmt.Fprintf(&b, "Overall Feedback: %s\n", fb.Overall)
	b.WriteString("\n")

	writeBullets(&b, "Strengths:", fb.Strengths)
	writeBullets(&b, "Areas for Improvement:", fb.Improvements)

	b.WriteString("Skill Breakdown:\n")
	for _, sf := range fb.SkillBreakdown {
		fmt.Fprintf(&b, "  %s\n", skillLine(sf))
	}
	b.WriteString("\n")

	b.WriteString("Next Steps:\n")
	for _, step := range fb.NextSteps {
		fmt.Fprintf(&b, "  • %s\n", step)
	}

	return b.String()
}

func writeBullets(b *strings.Builder, heading string, items []string) {
	b.WriteString(heading + "\n")
	for _, item := range items {
		fmt.Fprintf(b, "  • %s\n", item)
	}
	b.WriteString("\n")
}

func skillLine(sf feedback.SkillFeedback) string {
	return fmt.Sprintf("%s: %d%% - %s", sf.Skill, sf.Score, sf.Feedback)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
