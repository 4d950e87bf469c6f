package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mockview/internal/catalog"
	"github.com/abhisek/mockview/internal/report"
	"github.com/abhisek/mockview/internal/session"
)

// Scripted run: a software engineering interview answered twice, then
// ended early.
var (
	demoDomainID = "software-engineer"
	demoSkills   = []string{"Algorithms", "Data Structures", "Problem Solving"}
	demoSettings = session.Settings{
		NumberOfQuestions: 5,
		IncludeFollowUps:  true,
		Difficulty:        catalog.DifficultyMixed,
	}
	demoAnswers = []string{
		"I would use Dijkstra's algorithm for finding the shortest path. First, I'd initialize distances to all nodes as infinity except the source. Then I'd use a priority queue to always process the node with minimum distance. For each node, I'd update distances to its neighbors if a shorter path is found.",
		"Hash tables provide O(1) average case lookup time, which is great for frequent access operations. Binary search trees provide O(log n) operations but maintain sorted order. I'd choose hash tables for caching and quick lookups, and BSTs when I need sorted iteration or range queries.",
	}
)

func newDemoCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted example interview and print its report",
		Long: `Run a scripted software engineering interview: two sample answers with
simulated follow-up answers, then an early end and the feedback report.
Use --seed for a reproducible run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, c)
		},
	}
	cmd.Flags().StringP("output", "o", "text", "report format: text or json")
	return cmd
}

func runDemo(cmd *cobra.Command, c *cli) error {
	output, _ := cmd.Flags().GetString("output")
	if err := checkOutput(output); err != nil {
		return err
	}

	d, err := c.load(false)
	if err != nil {
		return err
	}
	defer func() { _ = d.logger.Sync() }()

	out := cmd.OutOrStdout()
	narration := out
	if output == "json" {
		narration = io.Discard
	}

	domains := d.catalog.Domains()
	fmt.Fprintln(narration, "Mock Interview")
	fmt.Fprintln(narration, strings.Repeat("=", 50))
	fmt.Fprintln(narration, "\nAvailable Interview Domains:")
	for i, dom := range domains {
		fmt.Fprintf(narration, "%d. %s\n", i+1, dom.Title)
		fmt.Fprintf(narration, "   %s\n", dom.Description)
		fmt.Fprintf(narration, "   Skills: %s\n\n", strings.Join(dom.Skills, ", "))
	}

	domain, skills, err := demoSelection(d.catalog)
	if err != nil {
		return err
	}

	fmt.Fprintf(narration, "Starting %s interview...\n", domain.Title)
	fmt.Fprintf(narration, "Selected skills: %s\n", strings.Join(skills, ", "))
	fmt.Fprintf(narration, "Settings: %d questions, follow-ups: %t\n\n",
		demoSettings.NumberOfQuestions, demoSettings.IncludeFollowUps)

	sess, err := d.newSession(domain, skills, demoSettings)
	if err != nil {
		return err
	}

	for i, answer := range demoAnswers {
		q, ok := sess.CurrentQuestion()
		if !ok {
			break
		}
		fmt.Fprintf(narration, "Question %d: %s\n", i+1, q.Text)
		fmt.Fprintf(narration, "Answer: %s\n", answer)

		followUps := sess.PickFollowUps()
		var collected []session.FollowUpAnswer
		if len(followUps) > 0 {
			fmt.Fprintln(narration, "Follow-up questions:")
			for j, fu := range followUps {
				fmt.Fprintf(narration, "  %d. %s\n", j+1, fu)
				reply := fmt.Sprintf("Follow-up answer %d for question %d", j+1, i+1)
				collected = append(collected, session.FollowUpAnswer{Question: fu, Answer: reply})
				fmt.Fprintf(narration, "     Answer: %s\n", reply)
			}
		}

		sess.SubmitAnswer(answer, collected)
		fmt.Fprintln(narration)
	}

	fmt.Fprintln(narration, "Interview ended early by user")
	sess.EndEarly()

	if !sess.IsComplete() {
		return errNoAnswers
	}
	fmt.Fprintln(narration, "Interview Complete! Generating feedback...")
	fmt.Fprintln(narration, strings.Repeat("=", 50))

	rep := report.New(sess, d.engine().ScoreSession(sess))
	return writeReport(out, rep, output)
}

// demoSelection picks the scripted domain and skills, falling back to the
// first domain and its first skills for catalogs without them.
func demoSelection(cat *catalog.Catalog) (catalog.Domain, []string, error) {
	domain, err := cat.Domain(demoDomainID)
	if err != nil {
		domains := cat.Domains()
		if len(domains) == 0 {
			return catalog.Domain{}, nil, fmt.Errorf("catalog has no domains")
		}
		domain = domains[0]
	}

	var skills []string
	for _, s := range demoSkills {
		if domain.HasSkill(s) {
			skills = append(skills, s)
		}
	}
	if len(skills) == 0 {
		skills = domain.Skills[:min(len(domain.Skills), len(demoSkills))]
	}
	return domain, skills, nil
}
