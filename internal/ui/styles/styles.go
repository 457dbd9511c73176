// Package styles provides shared lipgloss styles for quicktree's messages.
//
// Styles always render ANSI sequences. Writers returned by [NewWriter]
// downgrade or strip them according to the terminal and environment
// (NO_COLOR, CLICOLOR_FORCE, TERM=dumb, redirected output).
package styles

import (
	"image/color"
	"io"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
)

// Colors used throughout the CLI
var (
	// Success is used for created/removed confirmations (green)
	Success color.Color = lipgloss.Color("82")

	// Error is used for error messages (red)
	Error color.Color = lipgloss.Color("196")

	// Warning is used for non-fatal problems (orange)
	Warning color.Color = lipgloss.Color("214")

	// Muted is used for secondary text (gray)
	Muted color.Color = lipgloss.Color("244")
)

// Common styles
var (
	// SuccessStyle applies the success color
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)

	// ErrorStyle applies the error color with bold
	ErrorStyle = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// WarningStyle applies the warning color
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)

	// MutedStyle applies the muted color
	MutedStyle = lipgloss.NewStyle().Foreground(Muted)
)

// NewWriter wraps w so styled output matches what the destination supports.
// environ is usually os.Environ().
func NewWriter(w io.Writer, environ []string) io.Writer {
	return colorprofile.NewWriter(w, environ)
}
