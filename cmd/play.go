package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/mockview/internal/app"
	"github.com/abhisek/mockview/internal/screens/interview"
)

func newPlayCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Start an interactive interview",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, c)
		},
	}
}

func runPlay(_ *cobra.Command, c *cli) error {
	d, err := c.load(true)
	if err != nil {
		return err
	}
	defer func() { _ = d.logger.Sync() }()

	return app.Run(app.Options{
		Catalog:  d.catalog,
		Settings: d.settings,
		Services: interview.Services{
			Picker: d.selector(),
			Scorer: d.engine(),
			Logger: d.logger,
		},
	})
}
