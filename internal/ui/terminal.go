// Package ui provides terminal styling and output helpers for the remind CLI.
package ui

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether stdout is a TTY.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// ShouldUseColor reports whether output should carry ANSI color. The
// NO_COLOR and CLICOLOR=0 conventions disable it, CLICOLOR_FORCE enables
// it even when stdout is piped, and otherwise it follows TTY detection.
func ShouldUseColor() bool {
	switch {
	case os.Getenv("NO_COLOR") != "", os.Getenv("CLICOLOR") == "0":
		return false
	case os.Getenv("CLICOLOR_FORCE") != "":
		return true
	}
	return IsTerminal()
}

// GetWidth returns the terminal width, or 80 when it cannot be measured.
func GetWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}
