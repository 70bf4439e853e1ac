package prsummary

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Summarizer turns PR text into a review summary using a model runner.
type Summarizer struct {
	runner  Runner
	logger  zerolog.Logger
	runOpts []RunOption
}

// SummarizerOption configures a Summarizer.
type SummarizerOption func(s *Summarizer)

// WithSummarizerLogger sets the logger for the summarizer and its runner calls.
func WithSummarizerLogger(l zerolog.Logger) SummarizerOption {
	return func(s *Summarizer) { s.logger = l }
}

// WithRunOptions appends options passed to every runner invocation.
func WithRunOptions(opts ...RunOption) SummarizerOption {
	return func(s *Summarizer) { s.runOpts = append(s.runOpts, opts...) }
}

// NewSummarizer wraps runner.
func NewSummarizer(runner Runner, opts ...SummarizerOption) *Summarizer {
	s := &Summarizer{runner: runner, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Summarize renders the prompt for req and runs it through the model.
func (s *Summarizer) Summarize(ctx context.Context, req Request) (string, error) {
	prompt, err := BuildPrompt(req.Text)
	if err != nil {
		return "", fmt.Errorf("build prompt: %w", err)
	}

	return s.InvokeModel(ctx, prompt)
}

// InvokeModel sends prompt to the runner and returns its trimmed stdout.
// A non-zero exit yields a *ModelExecutionError with the runner's stderr.
func (s *Summarizer) InvokeModel(ctx context.Context, prompt string) (string, error) {
	opts := append([]RunOption{WithLogger(s.logger)}, s.runOpts...)

	res, err := s.runner.Run(ctx, []byte(prompt), opts...)
	if err != nil {
		return "", fmt.Errorf("run model: %w", err)
	}

	if !res.Success() {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("run model: %w", ctxErr)
		}

		detail := res.Stderr
		if len(detail) == 0 {
			// TTY mode merges both streams into stdout.
			detail = res.Stdout
		}

		s.logger.Debug().Int("exit_code", res.ExitCode).Msg("model runner failed")

		return "", &ModelExecutionError{ExitCode: res.ExitCode, Stderr: string(detail)}
	}

	return strings.TrimSpace(string(res.Stdout)), nil
}
