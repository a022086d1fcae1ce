// Package remind provides a minimal public API for embedding reminder
// extraction in other programs.
//
// The core is a pure function from raw model output (or plain text) to a
// list of validated reminder candidates. Calling a language model is a
// separate, swappable concern behind the Provider interface; programs
// that already have model output in hand never touch the network.
package remind

import (
	"context"
	"time"

	"github.com/pockettasks/remind/internal/extract"
	"github.com/pockettasks/remind/internal/llm"
	"github.com/pockettasks/remind/internal/types"
)

// Core types.
type (
	ReminderCandidate = types.ReminderCandidate
	Reminder          = types.Reminder
	TaskType          = types.TaskType
	Result            = extract.Result
)

// TaskType constants.
const (
	TaskBill        = types.TaskBill
	TaskMeeting     = types.TaskMeeting
	TaskDeadline    = types.TaskDeadline
	TaskAppointment = types.TaskAppointment
	TaskTask        = types.TaskTask
	TaskPayment     = types.TaskPayment
	TaskReminder    = types.TaskReminder
)

// Provider abstracts the completion backend used by ExtractWithProvider.
type Provider = llm.Provider

// NewAnthropicProvider creates a Claude-backed provider. The
// ANTHROPIC_API_KEY environment variable takes precedence over apiKey.
func NewAnthropicProvider(apiKey, model string) (Provider, error) {
	return llm.NewClient(apiKey, model)
}

// Extract parses a raw model response (or plain document text) into
// validated candidates. It never fails: parse problems degrade to the
// heuristic fallback and total failure is an empty list.
func Extract(raw string, today time.Time) []ReminderCandidate {
	return extract.Candidates(raw, today)
}

// ExtractResult is Extract with metadata about which path produced the
// candidates and how long extraction took.
func ExtractResult(raw string, today time.Time) *Result {
	return extract.NewPipeline().Run(raw, today)
}

// ExtractWithProvider runs the full flow: build the extraction prompt,
// call the provider, and parse its response. Only transport-level
// failures are returned as errors; use ErrorMessage to present them.
func ExtractWithProvider(ctx context.Context, p Provider, document string, today time.Time) ([]ReminderCandidate, error) {
	prompt, err := llm.BuildExtractionPrompt(document)
	if err != nil {
		return nil, err
	}
	response, err := p.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return Extract(response, today), nil
}

// ErrorMessage turns a transport failure from ExtractWithProvider into
// an actionable, user-facing message.
func ErrorMessage(err error) string {
	return llm.UserMessage(err)
}
