package prsummary

import (
	"errors"
	"io"

	"github.com/rs/zerolog"
)

// RunOptions defines the runtime behavior of a single runner invocation.
type RunOptions struct {
	stdout io.Writer
	stderr io.Writer
	tty    bool
	logger zerolog.Logger
}

// RunOption configures runtime behavior for invoking the model runner.
type RunOption func(o *RunOptions)

// WithStdout tees the runner's stdout into w in addition to capturing it.
func WithStdout(w io.Writer) RunOption {
	return func(o *RunOptions) { o.stdout = w }
}

// WithStderr tees the runner's stderr into w in addition to capturing it.
func WithStderr(w io.Writer) RunOption {
	return func(o *RunOptions) { o.stderr = w }
}

// WithTTY enables or disables pseudo-terminal execution.
func WithTTY(enabled bool) RunOption {
	return func(o *RunOptions) { o.tty = enabled }
}

// WithLogger sets the logger used for invocation diagnostics.
func WithLogger(l zerolog.Logger) RunOption {
	return func(o *RunOptions) { o.logger = l }
}

// Validate checks that the options are usable.
func (o RunOptions) Validate() error {
	if o.stdout == nil {
		return errors.New("stdout sink is required")
	}

	if o.stderr == nil {
		return errors.New("stderr sink is required")
	}

	return nil
}

func resolveRunOptions(opts []RunOption) (RunOptions, error) {
	out := defaultRunOptions()
	for _, opt := range opts {
		opt(&out)
	}

	if err := out.Validate(); err != nil {
		return RunOptions{}, err
	}

	return out, nil
}

func defaultRunOptions() RunOptions {
	return RunOptions{
		stdout: io.Discard,
		stderr: io.Discard,
		tty:    false,
		logger: zerolog.Nop(),
	}
}
