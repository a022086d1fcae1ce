package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/pockettasks/remind/internal/types"
)

// CandidateTable renders extracted candidates as a bordered table.
func CandidateTable(candidates []types.ReminderCandidate, width int) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(BorderStyle).
		Width(width).
		Headers("#", "TITLE", "DATE", "TIME", "TYPE", "AMOUNT", "CONF")

	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return HeaderStyle
		}
		return lipgloss.NewStyle().Padding(0, 1)
	})

	for i, c := range candidates {
		t.Row(
			fmt.Sprintf("%d", i+1),
			c.Title,
			c.Date,
			orDash(c.Time),
			string(c.Type),
			orDash(c.Amount),
			confidenceCell(c.Confidence),
		)
	}
	return t.Render()
}

func confidenceCell(conf float64) string {
	cell := fmt.Sprintf("%.2f", conf)
	if !ShouldUseColor() {
		return cell
	}
	if conf >= 0.8 {
		return HighConfidenceStyle.Render(cell)
	}
	return LowConfidenceStyle.Render(cell)
}

func orDash(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return "-"
	}
	return *s
}
