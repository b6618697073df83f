// Package tui provides styled diagnostic output for git-util.
//
// Everything the core prints on its own behalf (dry-run previews, echoed
// commands, failures) goes to the diagnostic stream through a Printer. The
// wrapped tool's own output never passes through here.
//
// # NO_COLOR Support
//
// Colors are disabled when NO_COLOR is present in the environment, when
// TERM=dumb, or when the diagnostic writer is not a terminal.
package tui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

//nolint:gochecknoglobals // Intentional package-level constants for styling API
var (
	// ColorCommand is blue, used for echoed commands.
	ColorCommand = lipgloss.AdaptiveColor{Light: "#0087AF", Dark: "#00D7FF"}

	// ColorDryRun is purple, used for commands that a dry run skipped.
	ColorDryRun = lipgloss.AdaptiveColor{Light: "#8700AF", Dark: "#D787FF"}

	// ColorError is red, used for failures.
	ColorError = lipgloss.AdaptiveColor{Light: "#AF0000", Dark: "#FF5F5F"}

	// ColorMuted is gray, used for suggested actions.
	ColorMuted = lipgloss.AdaptiveColor{Light: "#585858", Dark: "#6C6C6C"}
)

// Styles holds the lipgloss styles used by a Printer.
type Styles struct {
	Command lipgloss.Style
	DryRun  lipgloss.Style
	Error   lipgloss.Style
	Hint    lipgloss.Style
}

// NewStyles creates styles bound to a renderer for w, so that color
// detection follows the writer the text is printed to.
func NewStyles(w io.Writer) *Styles {
	r := lipgloss.NewRenderer(w)
	if !HasColorSupport() {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Styles{
		Command: r.NewStyle().Foreground(ColorCommand),
		DryRun:  r.NewStyle().Foreground(ColorDryRun).Bold(true),
		Error:   r.NewStyle().Foreground(ColorError).Bold(true),
		Hint:    r.NewStyle().Foreground(ColorMuted),
	}
}

// HasColorSupport returns false if NO_COLOR is set (any value including empty string) or TERM=dumb.
// This follows the NO_COLOR standard: https://no-color.org/
func HasColorSupport() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}
	return os.Getenv("TERM") != "dumb"
}
