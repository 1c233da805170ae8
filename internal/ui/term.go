package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Headers and draft titles: bold
	colorHeader = color.New(color.Bold)

	// Category and activity labels: cyan
	colorLabel = color.New(color.FgCyan)

	// Draft ids and timestamps: dim/grey
	colorMuted = color.New(color.FgWhite, color.Faint)

	// Success notices: green
	colorSuccess = color.New(color.FgGreen)

	// Incomplete or invalid entries: yellow
	colorWarn = color.New(color.FgYellow)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatLabel formats a category or activity label.
func formatLabel(s string) string {
	return colorLabel.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}

// formatSuccess formats a success notice.
func formatSuccess(s string) string {
	return colorSuccess.Sprint(s)
}

// formatWarn formats a warning.
func formatWarn(s string) string {
	return colorWarn.Sprint(s)
}
