package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette, picked for the detected terminal background.
var (
	ColorAccent = pick("63", "99")
	ColorWarn   = pick("208", "166")
	ColorPass   = pick("42", "28")
	ColorMuted  = pick("241", "246")
)

func pick(dark, light string) lipgloss.Color {
	if termenv.HasDarkBackground() {
		return lipgloss.Color(dark)
	}
	return lipgloss.Color(light)
}

var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent).
			Align(lipgloss.Center)

	LowConfidenceStyle = lipgloss.NewStyle().
				Foreground(ColorWarn)

	HighConfidenceStyle = lipgloss.NewStyle().
				Foreground(ColorPass)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	BorderStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
