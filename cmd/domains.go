package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newDomainsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "domains",
		Short: "List interview domains and their skills",
		RunE: func(cmd *cobra.Command, args []string) error {
			long, _ := cmd.Flags().GetBool("long")

			cat, err := c.configuredCatalog()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			domains := cat.Domains()

			fmt.Fprintf(out, "%-20s  %-20s  %s\n", "ID", "Title", "Skills")
			fmt.Fprintln(out, strings.Repeat("─", 100))
			for _, d := range domains {
				fmt.Fprintf(out, "%-20s  %-20s  %s\n", d.ID, d.Title, strings.Join(d.Skills, ", "))
				if long && d.Description != "" {
					fmt.Fprintf(out, "%-20s  %s\n", "", d.Description)
				}
			}

			fmt.Fprintf(out, "\n%d domains\n", len(domains))
			return nil
		},
	}
	cmd.Flags().BoolP("long", "l", false, "include domain descriptions")
	return cmd
}
