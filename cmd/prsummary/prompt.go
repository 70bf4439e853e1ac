package main

import (
	"fmt"

	"github.com/metalagman/prsummary"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newPromptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Print the rendered prompt for the stdin payload without running a model",
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, code, err := readRequest(cmd.InOrStdin(), cmd.OutOrStdout(), zerolog.Nop())
			if err != nil {
				return err
			}

			if code != 0 {
				exitFn(code)

				return nil
			}

			prompt, err := prsummary.BuildPrompt(req.Text)
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), prompt)

			return err
		},
	}
}
