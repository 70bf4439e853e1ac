package prsummary

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

type stubRunner struct {
	res    Result
	err    error
	stdins []string
}

func (s *stubRunner) Run(_ context.Context, stdin []byte, _ ...RunOption) (Result, error) {
	s.stdins = append(s.stdins, string(stdin))
	return s.res, s.err
}

func TestInvokeModelTrimsOutput(t *testing.T) {
	stub := &stubRunner{res: Result{Stdout: []byte("  Summary OK  \n")}}

	got, err := NewSummarizer(stub).InvokeModel(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("invoke model: %v", err)
	}
	if got != "Summary OK" {
		t.Fatalf("got %q, want %q", got, "Summary OK")
	}
	if len(stub.stdins) != 1 || stub.stdins[0] != "prompt" {
		t.Fatalf("unexpected stdin: %q", stub.stdins)
	}
}

func TestInvokeModelFailure(t *testing.T) {
	tests := []struct {
		name       string
		res        Result
		wantDetail string
	}{
		{
			name:       "stderr detail",
			res:        Result{ExitCode: 1, Stderr: []byte("boom\n"), Stdout: []byte("partial")},
			wantDetail: "boom",
		},
		{
			name:       "stdout fallback",
			res:        Result{ExitCode: 3, Stdout: []byte("model not found")},
			wantDetail: "model not found",
		},
		{
			name:       "no output",
			res:        Result{ExitCode: 7},
			wantDetail: "runner exited with code 7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSummarizer(&stubRunner{res: tt.res}).InvokeModel(context.Background(), "p")
			if !errors.Is(err, ErrModelExecution) {
				t.Fatalf("expected ErrModelExecution, got %v", err)
			}
			var execErr *ModelExecutionError
			if !errors.As(err, &execErr) {
				t.Fatalf("expected *ModelExecutionError, got %T", err)
			}
			if execErr.ExitCode != tt.res.ExitCode {
				t.Fatalf("exit code = %d, want %d", execErr.ExitCode, tt.res.ExitCode)
			}
			if err.Error() != tt.wantDetail {
				t.Fatalf("error = %q, want %q", err.Error(), tt.wantDetail)
			}
		})
	}
}

func TestInvokeModelStartError(t *testing.T) {
	startErr := errors.New("exec: \"ollama\": executable file not found in $PATH")
	_, err := NewSummarizer(&stubRunner{err: startErr}).InvokeModel(context.Background(), "p")
	if !errors.Is(err, startErr) {
		t.Fatalf("expected wrapped start error, got %v", err)
	}
	if errors.Is(err, ErrModelExecution) {
		t.Fatal("start failure must not be reported as a model execution error")
	}
}

func TestInvokeModelCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSummarizer(&stubRunner{res: Result{ExitCode: -1}}).InvokeModel(ctx, "p")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSummarizeRendersPrompt(t *testing.T) {
	stub := &stubRunner{res: Result{Stdout: []byte("ok")}}

	if _, err := NewSummarizer(stub).Summarize(context.Background(), Request{Text: "PR body"}); err != nil {
		t.Fatalf("summarize: %v", err)
	}

	want, err := BuildPrompt("PR body")
	if err != nil {
		t.Fatalf("build prompt: %v", err)
	}
	if stub.stdins[0] != want {
		t.Fatalf("runner got %q, want rendered prompt", stub.stdins[0])
	}
}

func TestSummarizeEndToEnd(t *testing.T) {
	ok := NewSummarizer(newGoRunRunner(t, "okrunner", false))

	first, err := ok.Summarize(context.Background(), Request{Text: "x"})
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	second, err := ok.Summarize(context.Background(), Request{Text: "x"})
	if err != nil {
		t.Fatalf("summarize again: %v", err)
	}
	if first != "Summary OK" || first != second {
		t.Fatalf("expected identical trimmed output, got %q and %q", first, second)
	}

	fail := NewSummarizer(newGoRunRunner(t, "failrunner", false))
	_, err = fail.Summarize(context.Background(), Request{Text: "x"})
	if !errors.Is(err, ErrModelExecution) {
		t.Fatalf("expected ErrModelExecution, got %v", err)
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected error to carry runner stderr, got %q", err.Error())
	}
}

func TestSummarizePromptReachesRunner(t *testing.T) {
	dump := NewSummarizer(newGoRunRunner(t, "promptdump", false))

	got, err := dump.Summarize(context.Background(), Request{Text: "unique-marker-42"})
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	want, _ := BuildPrompt("unique-marker-42")
	if got != strings.TrimSpace(want) {
		t.Fatalf("runner did not receive the rendered prompt, got %q", got)
	}
}

func TestInvokeModelFailureQuietAtDefaultLevel(t *testing.T) {
	var logs bytes.Buffer
	logger := zerolog.New(&logs).Level(zerolog.WarnLevel)
	stub := &stubRunner{res: Result{ExitCode: 1, Stderr: []byte("boom")}}

	_, err := NewSummarizer(stub, WithSummarizerLogger(logger)).InvokeModel(context.Background(), "p")
	if !errors.Is(err, ErrModelExecution) {
		t.Fatalf("expected ErrModelExecution, got %v", err)
	}
	if logs.Len() != 0 {
		t.Fatalf("expected no log output below debug, got %q", logs.String())
	}
}
