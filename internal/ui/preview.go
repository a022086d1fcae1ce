package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/pockettasks/remind/internal/types"
)

// CandidateMarkdown builds a markdown summary of extracted candidates.
func CandidateMarkdown(candidates []types.ReminderCandidate) string {
	var b strings.Builder
	b.WriteString("# Extracted reminders\n\n")
	if len(candidates) == 0 {
		b.WriteString("No reminder candidates found.\n")
		return b.String()
	}
	for _, c := range candidates {
		fmt.Fprintf(&b, "## %s\n\n", c.Title)
		fmt.Fprintf(&b, "- **Date:** %s\n", c.Date)
		if c.Time != nil {
			fmt.Fprintf(&b, "- **Time:** %s\n", *c.Time)
		}
		fmt.Fprintf(&b, "- **Type:** %s\n", c.Type)
		if c.Amount != nil {
			fmt.Fprintf(&b, "- **Amount:** %s\n", *c.Amount)
		}
		fmt.Fprintf(&b, "- **Confidence:** %.2f\n", c.Confidence)
		if len(c.Entities) > 0 {
			fmt.Fprintf(&b, "- **Entities:** %s\n", strings.Join(c.Entities, ", "))
		}
		if c.Description != "" {
			fmt.Fprintf(&b, "\n%s\n", c.Description)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderPreview renders the candidate markdown for the terminal. Falls
// back to plain markdown when rendering fails or color is disabled.
func RenderPreview(candidates []types.ReminderCandidate, width int) string {
	md := CandidateMarkdown(candidates)
	if !ShouldUseColor() {
		return md
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
