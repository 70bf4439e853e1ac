package adk

import (
	"errors"
	"time"

	"github.com/metalagman/prsummary"
)

// SummaryAgentOptions configures a SummaryAgent.
type SummaryAgentOptions struct {
	name        string
	description string
	summarizer  *prsummary.Summarizer
	timeout     time.Duration
}

// SummaryAgentOption sets an optional field of SummaryAgentOptions.
type SummaryAgentOption func(o *SummaryAgentOptions)

// WithSummaryAgentTimeout bounds every summarization run.
func WithSummaryAgentTimeout(d time.Duration) SummaryAgentOption {
	return func(o *SummaryAgentOptions) { o.timeout = d }
}

// NewSummaryAgentOptions builds options from the mandatory fields and setters.
func NewSummaryAgentOptions(
	name string,
	description string,
	summarizer *prsummary.Summarizer,
	setters ...SummaryAgentOption,
) SummaryAgentOptions {
	opts := SummaryAgentOptions{
		name:        name,
		description: description,
		summarizer:  summarizer,
	}

	for _, set := range setters {
		set(&opts)
	}

	return opts
}

// Validate checks that mandatory fields are set.
func (o SummaryAgentOptions) Validate() error {
	var errs []error

	if o.name == "" {
		errs = append(errs, errors.New("name is required"))
	}

	if o.description == "" {
		errs = append(errs, errors.New("description is required"))
	}

	if o.summarizer == nil {
		errs = append(errs, errors.New("summarizer is required"))
	}

	if o.timeout < 0 {
		errs = append(errs, errors.New("timeout must not be negative"))
	}

	return errors.Join(errs...)
}
