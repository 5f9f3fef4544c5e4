package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette for the log viewer
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - headers, debug lines
	SuccessColor = lipgloss.Color("#43BF6D") // Green - info lines
	ErrorColor   = lipgloss.Color("#FF5555") // Red - error lines
	WarningColor = lipgloss.Color("#FFA500") // Orange - warn lines
	MutedColor   = lipgloss.Color("#626262") // Gray - noise lines, chrome
	TextColor    = lipgloss.Color("#FFFFFF") // White - plain content
)

var (
	// TitleStyle renders the viewer header bar.
	TitleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(PrimaryColor).
			Bold(true).
			Padding(0, 1)

	// StatusStyle renders the status line under the header.
	StatusStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// levelTagStyles style the "[LEVEL]" prefix of a diagnostics line.
	levelTagStyles = map[string]lipgloss.Style{
		"[ERROR]": lipgloss.NewStyle().Foreground(ErrorColor).Bold(true),
		"[WARN]":  lipgloss.NewStyle().Foreground(WarningColor),
		"[INFO]":  lipgloss.NewStyle().Foreground(SuccessColor),
		"[DEBUG]": lipgloss.NewStyle().Foreground(PrimaryColor),
		"[NOISE]": lipgloss.NewStyle().Foreground(MutedColor),
	}
)

// GetTerminalWidth returns the current terminal width, or a sane default
// when stdout is not a terminal.
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
