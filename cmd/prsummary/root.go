package main

import (
	"github.com/metalagman/prsummary"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "prsummary",
		Short: "Summarize a pull request read as JSON from stdin using a local model",
		Long: "prsummary reads {\"text\": \"...\"} from stdin, wraps the text in a fixed\n" +
			"code review prompt and pipes it to `<runner> run <model>`.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSummarize(cmd)
		},
	}

	root.Flags().StringVar(&opts.configFile, "config", "", "path to a config file (yaml, toml or json)")
	root.Flags().StringVar(&opts.runner, "runner", prsummary.DefaultRunner, "model runner command")
	root.Flags().StringVar(&opts.model, "model", prsummary.DefaultModel, "model identifier passed to the runner")
	root.Flags().BoolVar(&opts.tty, "tty", false, "run the model runner in a pseudo-terminal")
	root.Flags().DurationVar(&opts.timeout, "timeout", 0, "abort the runner after this long (0 waits forever)")
	root.Flags().BoolVar(&opts.debug, "debug", false, "log to stderr and forward runner output to stderr")

	root.AddCommand(newPromptCmd())
	root.AddCommand(newQuickstartCmd())

	return root
}
