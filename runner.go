package prsummary

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"syscall"
	"time"

	"github.com/creack/pty"
	"golang.org/x/term"
)

// Runner executes the model runner with the prompt on its stdin.
type Runner interface {
	Run(ctx context.Context, stdin []byte, opts ...RunOption) (Result, error)
}

// Result is the captured outcome of a runner process.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Success reports whether the process exited with status zero.
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// NewRunner constructs a runner for the given model config.
func NewRunner(cfg ModelConfig) (*ExecRunner, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &ExecRunner{argv: cfg.Argv(), useTTY: cfg.tty()}, nil
}

// ExecRunner runs a fixed command line as a child process.
type ExecRunner struct {
	argv   []string
	useTTY bool
}

// Argv returns a copy of the command line the runner executes.
func (r *ExecRunner) Argv() []string {
	return append([]string(nil), r.argv...)
}

// Run starts the process, feeds stdin and waits for it to exit.
// A non-zero exit is reported through Result.ExitCode with a nil error;
// the returned error covers only failures to start or wait on the process.
func (r *ExecRunner) Run(ctx context.Context, stdin []byte, opts ...RunOption) (Result, error) {
	opts = append([]RunOption{WithTTY(r.useTTY)}, opts...)

	runOpts, err := resolveRunOptions(opts)
	if err != nil {
		return Result{}, fmt.Errorf("resolve options: %w", err)
	}

	log := runOpts.logger.With().Strs("argv", r.argv).Bool("tty", runOpts.tty).Logger()
	log.Debug().Int("stdin_bytes", len(stdin)).Msg("starting runner")

	started := time.Now()

	var res Result
	if runOpts.tty {
		res, err = runCommandWithTTY(ctx, r.argv, stdin, runOpts.stdout)
	} else {
		res, err = runCommand(ctx, r.argv, stdin, runOpts.stdout, runOpts.stderr)
	}

	if err != nil {
		log.Debug().Err(err).Msg("runner failed to run")

		return res, err
	}

	log.Debug().
		Int("exit_code", res.ExitCode).
		Int("stdout_bytes", len(res.Stdout)).
		Int("stderr_bytes", len(res.Stderr)).
		Dur("elapsed", time.Since(started)).
		Msg("runner finished")

	return res, nil
}

func runCommand(
	ctx context.Context,
	argv []string,
	stdin []byte,
	stdoutSink io.Writer,
	stderrSink io.Writer,
) (Result, error) {
	if len(argv) == 0 {
		return Result{}, ErrEmptyRunner
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = bytes.NewReader(stdin)

	var (
		stdout bytes.Buffer
		stderr bytes.Buffer
	)

	if stdoutSink != nil {
		cmd.Stdout = io.MultiWriter(&stdout, stdoutSink)
	} else {
		cmd.Stdout = &stdout
	}

	if stderrSink != nil {
		cmd.Stderr = io.MultiWriter(&stderr, stderrSink)
	} else {
		cmd.Stderr = &stderr
	}

	err := cmd.Run()
	res := Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()

			return res, nil
		}

		return res, fmt.Errorf("cmd run: %w", err)
	}

	return res, nil
}

// runCommandWithTTY gives the process a pseudo-terminal for stdout and stderr
// while the prompt still arrives on a pipe. The terminal is raw, so nothing is
// echoed or rewritten and both output streams land in Result.Stdout.
func runCommandWithTTY(
	ctx context.Context,
	argv []string,
	stdin []byte,
	stdoutSink io.Writer,
) (Result, error) {
	if len(argv) == 0 {
		return Result{}, ErrEmptyRunner
	}

	ptmx, tty, err := pty.Open()
	if err != nil {
		return Result{}, fmt.Errorf("open pty: %w", err)
	}
	defer ptmx.Close()

	if _, err := term.MakeRaw(int(tty.Fd())); err != nil {
		_ = tty.Close()

		return Result{}, fmt.Errorf("raw pty: %w", err)
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = bytes.NewReader(stdin)
	cmd.Stdout = tty
	cmd.Stderr = tty
	// Child fd 1 is the terminal; make it the controlling one.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true, Setctty: true, Ctty: 1}

	if err := cmd.Start(); err != nil {
		_ = tty.Close()

		return Result{}, fmt.Errorf("start pty: %w", err)
	}

	// The child holds its own copy; reads on ptmx end once it exits.
	_ = tty.Close()

	var out bytes.Buffer

	var outWriter io.Writer = &out
	if stdoutSink != nil {
		outWriter = io.MultiWriter(&out, stdoutSink)
	}

	done := make(chan struct{})

	go func() {
		// Linux reports EIO when the last slave fd closes.
		_, _ = io.Copy(outWriter, ptmx)
		close(done)
	}()

	err = cmd.Wait()

	<-done

	res := Result{Stdout: out.Bytes()}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()

			return res, nil
		}

		return res, fmt.Errorf("cmd wait: %w", err)
	}

	return res, nil
}
