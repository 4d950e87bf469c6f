package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const appName = "mockview"

// persistentKeys are the root flags mirrored into the config.
var persistentKeys = []string{
	"catalog", "seed", "debug", "json", "log-file",
	"questions", "follow-ups", "difficulty",
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree. Each tree owns its viper
// instance so flag state never leaks between invocations.
func NewRootCommand() *cobra.Command {
	c := &cli{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "Mock job interviews in the terminal",
		Long: `mockview runs mock job interviews in the terminal: pick a domain and
skills, answer questions and follow-ups, and get a scored report with
strengths, areas for improvement and next steps.

Running mockview without a subcommand starts the interactive interview.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, c)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&c.cfgFile, "config", "", "config file (default is mockview.yaml in the current directory)")
	pf.String("catalog", "", "question catalog file, YAML or JSON (default is the built-in catalog)")
	pf.Uint64("seed", 0, "random seed for reproducible questions and scores (0 seeds from the clock)")
	pf.BoolP("debug", "d", false, "verbose/debug output")
	pf.BoolP("json", "j", false, "json format for logging")
	pf.String("log-file", "", "write logs to this file (the interactive UI logs nowhere else)")
	pf.IntP("questions", "n", 8, "number of questions per interview")
	pf.Bool("follow-ups", true, "ask follow-up questions after each answer")
	pf.String("difficulty", "mixed", "question difficulty: easy, medium, hard or mixed")

	for _, key := range persistentKeys {
		_ = c.v.BindPFlag(key, pf.Lookup(key))
	}

	rootCmd.AddCommand(newPlayCmd(c))
	rootCmd.AddCommand(newPracticeCmd(c))
	rootCmd.AddCommand(newDemoCmd(c))
	rootCmd.AddCommand(newDomainsCmd(c))
	rootCmd.AddCommand(newQuestionsCmd(c))
	rootCmd.AddCommand(newCatalogCmd(c))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
