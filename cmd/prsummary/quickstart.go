package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newQuickstartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quickstart",
		Short: "Show examples and usage instructions",
		Run: func(cmd *cobra.Command, _ []string) {
			printQuickstart(cmd.OutOrStdout())
		},
	}
}

func printQuickstart(w io.Writer) {
	fmt.Fprintln(w, `Quickstart Guide for prsummary

1. Summarize a PR with the default model (ollama run phi3-4bit)

   echo '{"text":"diff --git a/main.go b/main.go ..."}' | prsummary

2. Pick another model

   echo '{"text":"..."}' | prsummary --model phi3-8bit

3. Run ollama inside a container

   echo '{"text":"..."}' | prsummary --runner "docker exec -i ollama ollama"

4. Inspect the prompt without running a model

   echo '{"text":"..."}' | prsummary prompt

5. Configure through the environment or a config file

   PRSUMMARY_MODEL=phi3-8bit PRSUMMARY_TIMEOUT=2m prsummary < payload.json
   prsummary --config prsummary.yaml < payload.json

Exit codes: 0 on success, 1 on invalid input or a failed model run.`)
}
