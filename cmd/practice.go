package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/mockview/internal/catalog"
	"github.com/abhisek/mockview/internal/report"
	"github.com/abhisek/mockview/internal/session"
)

const (
	endCommand  = "/end"
	promptStart = "Start interview"
)

var errNoAnswers = errors.New("interview ended before any question was answered")

func newPracticeCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "practice",
		Short: "Run an interview in the plain terminal",
		Long: `Run an interview line by line without the full-screen UI.

Domain and skills are picked from menus unless given as flags. Type an
answer and press Enter; type /end to finish early once at least one
question is answered. The report is printed when the interview ends.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPractice(cmd, c)
		},
	}
	cmd.Flags().String("domain", "", "domain ID, e.g. software-engineer (prompted when empty)")
	cmd.Flags().StringSlice("skills", nil, `comma-separated skills, or "all" (prompted when empty)`)
	cmd.Flags().StringP("output", "o", "text", "report format: text or json")
	return cmd
}

func runPractice(cmd *cobra.Command, c *cli) error {
	domainID, _ := cmd.Flags().GetString("domain")
	skillsVal, _ := cmd.Flags().GetStringSlice("skills")
	output, _ := cmd.Flags().GetString("output")

	if err := checkOutput(output); err != nil {
		return err
	}

	d, err := c.load(false)
	if err != nil {
		return err
	}
	defer func() { _ = d.logger.Sync() }()

	var domain catalog.Domain
	if domainID != "" {
		domain, err = d.catalog.Domain(domainID)
	} else {
		domain, err = chooseDomain(d.catalog.Domains())
	}
	if err != nil {
		return err
	}

	var skills []string
	if len(skillsVal) > 0 {
		skills, err = resolveSkills(domain, skillsVal)
	} else {
		skills, err = chooseSkills(domain)
	}
	if err != nil {
		return err
	}

	sess, err := d.newSession(domain, skills, d.settings)
	if err != nil {
		return err
	}
	if len(sess.Questions()) == 0 {
		return fmt.Errorf("no %s questions for %s", d.settings.Difficulty, strings.Join(skills, ", "))
	}

	// Keep stdout clean for JSON reports.
	out, prompts := cmd.OutOrStdout(), cmd.OutOrStdout()
	if output == "json" {
		prompts = cmd.ErrOrStderr()
	}
	if err := runInterview(cmd.InOrStdin(), prompts, sess); err != nil {
		return err
	}

	rep := report.New(sess, d.engine().ScoreSession(sess))
	d.logger.Info("interview finished",
		zap.String("session", rep.Summary.SessionID),
		zap.String("state", rep.Summary.State),
		zap.Int("score", rep.Feedback.Score))

	fmt.Fprintln(prompts)
	return writeReport(out, rep, output)
}

// runInterview asks every question on w and reads answers from r until the
// session is complete or ended early.
func runInterview(r io.Reader, w io.Writer, sess *session.Session) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	fmt.Fprintf(w, "%s interview: %s\n", sess.Domain().Title, strings.Join(sess.Skills(), ", "))
	fmt.Fprintf(w, "Type your answer and press Enter. Type %s to finish early.\n", endCommand)

	for !sess.IsComplete() {
		q, _ := sess.CurrentQuestion()
		answered, total := sess.Progress()

		fmt.Fprintf(w, "\n── Question %d/%d ── %s · %s · %s\n",
			answered+1, total, q.Skill, q.Type.DisplayName(), q.Difficulty.DisplayName())
		fmt.Fprintln(w, q.Text)

		text, ok := readAnswer(scanner, w, "\nYour answer: ")
		if !ok {
			fmt.Fprintln(w, "\n(input closed)")
			if !sess.EndEarly() {
				return errNoAnswers
			}
			return nil
		}
		if text == endCommand {
			if sess.EndEarly() {
				fmt.Fprintln(w, "Interview ended early.")
				return nil
			}
			fmt.Fprintln(w, "Answer at least one question before ending the interview.")
			continue
		}

		followUps := sess.PickFollowUps()
		var collected []session.FollowUpAnswer
		for j, fu := range followUps {
			fmt.Fprintf(w, "\nFollow-up %d/%d: %s\n", j+1, len(followUps), fu)
			fmt.Fprint(w, "Your answer (Enter to skip): ")
			if !scanner.Scan() {
				break
			}
			if ans := strings.TrimSpace(scanner.Text()); ans != "" {
				collected = append(collected, session.FollowUpAnswer{Question: fu, Answer: ans})
			}
		}

		sess.SubmitAnswer(text, collected)
	}
	return nil
}

// readAnswer prompts until a non-blank line is read. ok is false once the
// input is exhausted.
func readAnswer(scanner *bufio.Scanner, w io.Writer, prompt string) (text string, ok bool) {
	for {
		fmt.Fprint(w, prompt)
		if !scanner.Scan() {
			return "", false
		}
		if text = strings.TrimSpace(scanner.Text()); text != "" {
			return text, true
		}
		fmt.Fprintln(w, "(an answer is required)")
	}
}

func resolveSkills(domain catalog.Domain, values []string) ([]string, error) {
	if len(values) == 1 && strings.EqualFold(values[0], "all") {
		return domain.Skills, nil
	}
	skills := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if !domain.HasSkill(v) {
			return nil, fmt.Errorf("skill %q is not part of %s (skills: %s)",
				v, domain.ID, strings.Join(domain.Skills, ", "))
		}
		if slices.Contains(skills, v) {
			continue
		}
		skills = append(skills, v)
	}
	return skills, nil
}

func chooseDomain(domains []catalog.Domain) (catalog.Domain, error) {
	if len(domains) == 0 {
		return catalog.Domain{}, errors.New("catalog has no domains")
	}
	titles := make([]string, len(domains))
	for i, d := range domains {
		titles[i] = d.Title
	}

	prompt := promptui.Select{
		Label: "Choose an interview domain",
		Items: titles,
		Size:  len(titles),
	}
	i, _, err := prompt.Run()
	if err != nil {
		return catalog.Domain{}, fmt.Errorf("choose domain: %w", err)
	}
	return domains[i], nil
}

// chooseSkills toggles skills in a select loop until the start item is
// chosen. Every skill starts selected.
func chooseSkills(domain catalog.Domain) ([]string, error) {
	selected := make(map[string]bool, len(domain.Skills))
	for _, s := range domain.Skills {
		selected[s] = true
	}

	cursor := 0
	for {
		items := []string{promptStart}
		for _, s := range domain.Skills {
			mark := "[ ]"
			if selected[s] {
				mark = "[x]"
			}
			items = append(items, mark+" "+s)
		}

		prompt := promptui.Select{
			Label:     "Toggle skills, then start",
			Items:     items,
			Size:      len(items),
			CursorPos: cursor,
		}
		i, _, err := prompt.Run()
		if err != nil {
			return nil, fmt.Errorf("choose skills: %w", err)
		}

		if i == 0 {
			var skills []string
			for _, s := range domain.Skills {
				if selected[s] {
					skills = append(skills, s)
				}
			}
			if len(skills) > 0 {
				return skills, nil
			}
			fmt.Fprintln(os.Stderr, "Select at least one skill.")
			continue
		}

		skill := domain.Skills[i-1]
		selected[skill] = !selected[skill]
		cursor = i
	}
}

func checkOutput(format string) error {
	switch format {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("invalid output %q: must be text or json", format)
	}
}

func writeReport(w io.Writer, rep report.Report, format string) error {
	if format == "json" {
		return rep.WriteJSON(w)
	}
	return rep.WriteText(w)
}
