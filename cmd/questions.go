package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mockview/internal/catalog"
)

func newQuestionsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "questions",
		Short: "List catalog questions (optionally filtered by domain, skill or difficulty)",
		RunE: func(cmd *cobra.Command, args []string) error {
			domainID, _ := cmd.Flags().GetString("domain")
			skill, _ := cmd.Flags().GetString("skill")
			diffVal, _ := cmd.Flags().GetString("difficulty")

			difficulty, err := catalog.ParseDifficulty(diffVal)
			if err != nil {
				return err
			}

			cat, err := c.configuredCatalog()
			if err != nil {
				return err
			}

			var skills []string
			switch {
			case domainID != "" && skill != "":
				return fmt.Errorf("use --domain or --skill, not both")
			case domainID != "":
				d, err := cat.Domain(domainID)
				if err != nil {
					return err
				}
				skills = d.Skills
			case skill != "":
				skills = []string{skill}
			default:
				skills = cat.Skills()
			}

			var questions []catalog.Question
			for _, s := range skills {
				for _, q := range cat.Questions(s) {
					if difficulty == catalog.DifficultyMixed || q.Difficulty == difficulty {
						questions = append(questions, q)
					}
				}
			}
			if len(questions) == 0 {
				return fmt.Errorf("no questions found")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-10s  %-28s  %-11s  %-6s  %s\n",
				"ID", "Skill", "Type", "Level", "Question")
			fmt.Fprintln(out, strings.Repeat("─", 120))

			for _, q := range questions {
				fmt.Fprintf(out, "%-10s  %-28s  %-11s  %-6s  %s\n",
					q.ID, clip(q.Skill, 28), q.Type.DisplayName(),
					q.Difficulty.DisplayName(), clip(q.Text, 55))
			}

			fmt.Fprintf(out, "\n%d questions\n", len(questions))
			return nil
		},
	}
	cmd.Flags().String("domain", "", "only questions for this domain's skills")
	cmd.Flags().String("skill", "", "only questions for this skill")
	cmd.Flags().String("difficulty", "mixed", "easy, medium, hard or mixed")
	return cmd
}

// clip shortens s to n characters for table output.
func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
