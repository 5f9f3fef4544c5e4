package diag

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// ColorMode controls level-tag styling in a ConsoleSink.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto" // styled only when writing to a terminal
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

var levelStyles = map[Level]lipgloss.Style{
	LevelError: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555")).Bold(true),
	LevelWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")),
	LevelInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("#43BF6D")),
	LevelDebug: lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4")),
	LevelNoise: lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")),
}

// ConsoleSink writes "[LEVEL] message" lines with the level tag styled for
// human consumption on a terminal.
type ConsoleSink struct {
	w     io.Writer
	color bool
}

// NewConsoleSink creates a console sink on w. With ColorAuto, styling is
// enabled only when w is a terminal.
func NewConsoleSink(w io.Writer, mode ColorMode) *ConsoleSink {
	color := false
	switch mode {
	case ColorAlways:
		color = true
	case ColorNever:
		color = false
	default:
		if f, ok := w.(*os.File); ok {
			color = term.IsTerminal(int(f.Fd()))
		}
	}
	return &ConsoleSink{w: w, color: color}
}

func (s *ConsoleSink) Emit(level Level, msg string) {
	tag := fmt.Sprintf("[%s]", level)
	if s.color {
		if style, ok := levelStyles[level]; ok {
			tag = style.Render(tag)
		}
	}
	fmt.Fprintf(s.w, "%s %s\n", tag, msg)
}
