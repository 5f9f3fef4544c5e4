// Package ui provides the terminal UI for the remdiag CLI.
//
// The main component is the tail viewer, a Bubble Tea model that renders a
// diagnostics log file in a scrollable viewport, colorizes "[LEVEL]" tags
// with Lipgloss, and polls the file for new lines while follow mode is on.
package ui
