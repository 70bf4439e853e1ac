package prsummary

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput indicates the request payload is not a valid JSON object.
	ErrInvalidInput = errors.New("invalid input")
	// ErrModelExecution indicates the model runner exited with a non-zero code.
	ErrModelExecution = errors.New("model execution failed")
	// ErrEmptyRunner indicates no runner command was configured.
	ErrEmptyRunner = errors.New("runner command is empty")
	// ErrEmptyModel indicates no model identifier was configured.
	ErrEmptyModel = errors.New("model identifier is empty")
)

// ModelExecutionError carries the failure details reported by the model runner.
type ModelExecutionError struct {
	ExitCode int
	Stderr   string
}

func (e *ModelExecutionError) Error() string {
	detail := strings.TrimSpace(e.Stderr)
	if detail == "" {
		return fmt.Sprintf("runner exited with code %d", e.ExitCode)
	}

	return detail
}

// Is reports whether target is ErrModelExecution.
func (e *ModelExecutionError) Is(target error) bool {
	return target == ErrModelExecution
}
