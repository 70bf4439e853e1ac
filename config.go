// Package prsummary summarizes pull request text by piping a fixed review
// prompt through a local model runner such as ollama.
package prsummary

import (
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
)

const (
	// DefaultRunner is the model runner executable.
	DefaultRunner = "ollama"
	// DefaultModel is the quantized model the runner loads.
	DefaultModel = "phi3-4bit"
	// RunSubcommand is passed to the runner before the model identifier.
	RunSubcommand = "run"
)

// ModelConfig describes how to invoke the model runner.
type ModelConfig struct {
	Runner []string `json:"runner,omitempty"  mapstructure:"runner"`
	Model  string   `json:"model,omitempty"   mapstructure:"model"`
	UseTTY *bool    `json:"use_tty,omitempty" mapstructure:"use_tty"`
}

// DefaultModelConfig returns the configuration used when nothing is overridden.
func DefaultModelConfig() ModelConfig {
	return ModelConfig{
		Runner: []string{DefaultRunner},
		Model:  DefaultModel,
	}
}

// ParseRunner splits a runner command line such as "docker exec ollama ollama"
// into argv, honoring shell quoting.
func ParseRunner(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrEmptyRunner
	}

	argv, err := shellquote.Split(raw)
	if err != nil {
		return nil, fmt.Errorf("parse runner %q: %w", raw, err)
	}

	if len(argv) == 0 {
		return nil, ErrEmptyRunner
	}

	return argv, nil
}

// Argv returns the full command line: runner, run subcommand, model.
func (c ModelConfig) Argv() []string {
	out := make([]string, 0, len(c.Runner)+2)
	out = append(out, c.Runner...)

	return append(out, RunSubcommand, c.Model)
}

func (c ModelConfig) validate() error {
	if len(c.Runner) == 0 || c.Runner[0] == "" {
		return ErrEmptyRunner
	}

	if strings.TrimSpace(c.Model) == "" {
		return ErrEmptyModel
	}

	return nil
}

func (c ModelConfig) tty() bool {
	return c.UseTTY != nil && *c.UseTTY
}
