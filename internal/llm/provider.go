// Package llm is the model-call collaborator for reminder extraction. It
// owns request construction, retries, and transport-error classification;
// the extraction pipeline itself never performs I/O.
package llm

import (
	"context"
	"strings"
	"text/template"
)

// Provider abstracts a completion backend so the extraction core stays
// provider-agnostic. Implementations return the raw completion text;
// decoding it is the pipeline's job.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

var extractTemplate = template.Must(template.New("extract").Parse(extractPromptTemplate))

// BuildExtractionPrompt renders the task-extraction prompt for a document
// or free-text snippet.
func BuildExtractionPrompt(document string) (string, error) {
	var b strings.Builder
	if err := extractTemplate.Execute(&b, struct{ Document string }{Document: document}); err != nil {
		return "", err
	}
	return b.String(), nil
}

const extractPromptTemplate = `You are extracting actionable reminders from a document or message.

Find every task, bill, deadline, meeting, or appointment a person would want to be reminded of.

RULES:
1. Output ONLY a valid JSON object. No markdown, no commentary.
2. The object MUST have exactly one key: "tasks".
3. "tasks" MUST be an array of objects.
4. Each task object has these fields:
   - "title": short action phrase (string, required)
   - "date": due date as YYYY-MM-DD (string, required; omit the task if no date is stated or implied)
   - "time": 24-hour HH:MM if a time is stated, else null
   - "description": one sentence of context
   - "type": one of bill, meeting, deadline, appointment, task, payment, reminder
   - "amount": monetary amount if one is stated, else null
   - "confidence": 0.0-1.0, how clearly the document states this task
   - "entities": array of named entities (companies, people) involved
   - "sourceText": the snippet of the document this came from
5. Do NOT invent dates. Do NOT invent tasks.

Document:
{{.Document}}
`
