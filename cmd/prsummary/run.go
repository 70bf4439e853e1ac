package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/metalagman/prsummary"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const (
	invalidInputMessage = "Invalid input received"
	modelErrorPrefix    = "Error running model: "
)

var exitFn = os.Exit

func runSummarize(cmd *cobra.Command) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	cfg, err := s.modelConfig()
	if err != nil {
		return err
	}

	runner, err := prsummary.NewRunner(cfg)
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), s.Debug)

	summarizerOpts := []prsummary.SummarizerOption{prsummary.WithSummarizerLogger(logger)}
	if s.Debug {
		summarizerOpts = append(summarizerOpts, prsummary.WithRunOptions(
			prsummary.WithStdout(cmd.ErrOrStderr()),
			prsummary.WithStderr(cmd.ErrOrStderr()),
		))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if s.Timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	code, err := summarize(
		ctx,
		cmd.InOrStdin(),
		cmd.OutOrStdout(),
		prsummary.NewSummarizer(runner, summarizerOpts...),
		logger,
	)
	if err != nil {
		return err
	}

	if code != 0 {
		exitFn(code)
	}

	return nil
}

// summarize runs one request and reports the process exit code. Errors it
// returns are the ones that should surface as unhandled failures.
func summarize(
	ctx context.Context,
	in io.Reader,
	out io.Writer,
	s *prsummary.Summarizer,
	logger zerolog.Logger,
) (int, error) {
	req, code, err := readRequest(in, out, logger)
	if err != nil || code != 0 {
		return code, err
	}

	summary, err := s.Summarize(ctx, req)
	if err != nil {
		if errors.Is(err, prsummary.ErrModelExecution) {
			_, _ = fmt.Fprintln(out, modelErrorPrefix+err.Error())

			return 1, nil
		}

		return 1, err
	}

	if _, err := fmt.Fprintln(out, summary); err != nil {
		return 1, fmt.Errorf("write output: %w", err)
	}

	return 0, nil
}

func readRequest(in io.Reader, out io.Writer, logger zerolog.Logger) (prsummary.Request, int, error) {
	req, err := prsummary.ReadRequest(in)
	if err == nil {
		return req, 0, nil
	}

	if errors.Is(err, prsummary.ErrInvalidInput) {
		logger.Debug().Err(err).Msg("rejecting request")
		_, _ = fmt.Fprintln(out, invalidInputMessage)

		return prsummary.Request{}, 1, nil
	}

	return prsummary.Request{}, 1, err
}

func newLogger(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
