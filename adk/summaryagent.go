// Package adk exposes the PR summarizer as a Google ADK agent.
package adk

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"github.com/metalagman/prsummary"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/session"
	"google.golang.org/genai"
)

// SummaryAgent answers each user message with a PR review summary.
type SummaryAgent struct {
	agent.Agent
	opts SummaryAgentOptions
}

// NewSummaryAgent creates a SummaryAgent backed by summarizer.
func NewSummaryAgent(
	name string,
	description string,
	summarizer *prsummary.Summarizer,
	setters ...SummaryAgentOption,
) (*SummaryAgent, error) {
	opts := NewSummaryAgentOptions(name, description, summarizer, setters...)
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	a := &SummaryAgent{opts: opts}

	ag, err := agent.New(agent.Config{
		Name:        a.opts.name,
		Description: a.opts.description,
		Run:         a.Run,
	})
	if err != nil {
		return nil, fmt.Errorf("create agent: %w", err)
	}

	a.Agent = ag

	return a, nil
}

// Run implements the agent.Agent interface.
// The user message is either a {"text": ...} payload or the raw PR text.
func (a *SummaryAgent) Run(ctx agent.InvocationContext) iter.Seq2[*session.Event, error] {
	return func(yield func(*session.Event, error) bool) {
		req, err := requestFromInput(getUserInput(ctx))
		if err != nil {
			yield(nil, err)

			return
		}

		runCtx := context.Context(ctx)

		if a.opts.timeout > 0 {
			var cancel context.CancelFunc

			runCtx, cancel = context.WithTimeout(runCtx, a.opts.timeout)
			defer cancel()
		}

		summary, err := a.opts.summarizer.Summarize(runCtx, req)
		if err != nil {
			yield(nil, fmt.Errorf("summarize: %w", err))

			return
		}

		event := session.NewEvent(ctx.InvocationID())
		event.LLMResponse.Content = genai.NewContentFromText(summary, genai.RoleModel)
		event.Author = a.opts.name

		if !yield(event, nil) {
			return
		}
	}
}

func getUserInput(ctx agent.InvocationContext) string {
	userContent := ctx.UserContent()
	if userContent != nil && len(userContent.Parts) > 0 {
		return userContent.Parts[0].Text
	}

	return ""
}

func requestFromInput(raw string) (prsummary.Request, error) {
	if strings.HasPrefix(strings.TrimSpace(raw), "{") {
		return prsummary.ParseRequest([]byte(raw))
	}

	return prsummary.Request{Text: raw}, nil
}
