package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mockview/internal/catalog"
	"github.com/abhisek/mockview/internal/config"
)

func newCatalogCmd(c *cli) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Work with question catalog files",
	}

	validateCmd := &cobra.Command{
		Use:   "validate <path>",
		Short: "Check a catalog file against the schema and structural rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (format %s, %d domains, %d skills, %d questions)\n",
				args[0], cat.Version(), len(cat.Domains()), len(cat.Skills()), cat.QuestionCount())
			return nil
		},
	}

	catalogCmd.AddCommand(validateCmd)
	return catalogCmd
}

// configuredCatalog loads the configured catalog without building the other
// services.
func (c *cli) configuredCatalog() (*catalog.Catalog, error) {
	cfg, err := config.Load(c.v, c.cfgFile)
	if err != nil {
		return nil, err
	}
	return loadCatalog(cfg.Catalog)
}
