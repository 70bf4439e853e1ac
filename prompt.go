package prsummary

import (
	"bytes"
	"fmt"
	"text/template"
)

type promptData struct {
	Text string
}

// BuildPrompt renders the review prompt with text placed verbatim under
// the PR DETAILS heading.
func BuildPrompt(text string) (string, error) {
	tmpl, err := template.New("prompt").Parse(promptTemplate)
	if err != nil {
		return "", fmt.Errorf("parse prompt template: %w", err)
	}

	var b bytes.Buffer
	if err := tmpl.Execute(&b, promptData{Text: text}); err != nil {
		return "", fmt.Errorf("render prompt template: %w", err)
	}

	return b.String(), nil
}

// The first two lines end with a space; keep them.
var promptTemplate = `
You are a code review assistant. 
Summarize the following PR strictly in the exact format shown below. 
Follow all rules:

Rules:
- Each point must be 1 short sentence only (no long explanations).
- Use the same keys and order as given.
- Do not add extra text or commentary.
- Keep response concise and structured exactly as shown.

Format:

File-wise Issues:
- [FileName]: [very short issue description]

Coding Standards:

- Complexity: [Low/Medium/High, + 1 reason max]
- Performance: [short remark only]
- Maintainability: [short remark only]
- Coupling & Interdependencies: [short remark only]
- Design Patterns: [Yes/No + 1 word reason]
- Refactoring Opportunities: [short remark only]
- Edge Cases & Reliability: [short remark only]
- Function Impact: [short remark only]

PR DETAILS:
{{ .Text }}

provide the summary strictly in the above format only.
`
