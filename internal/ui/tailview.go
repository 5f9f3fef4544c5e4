package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// pollInterval is how often the viewer checks the log file for new lines.
const pollInterval = 500 * time.Millisecond

// tailKeyMap defines key bindings for the log viewer
type tailKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Follow key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k tailKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Follow, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k tailKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Follow, k.Quit},
	}
}

var tailKeys = tailKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
	Top:    key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
	Bottom: key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
	Follow: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "toggle follow")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
}

type tickMsg time.Time

type newLinesMsg struct {
	lines  []string
	offset int64
}

type readErrMsg struct{ err error }

// TailModel is a scrollable, level-colored viewer over a diagnostics log
// file. It polls the file and appends new lines while follow mode is on.
type TailModel struct {
	path   string
	offset int64
	lines  []string
	follow bool
	ready  bool
	err    error

	viewport viewport.Model
	help     help.Model
	keys     tailKeyMap
	width    int
	height   int
}

// NewTailModel creates a viewer for the given log file.
func NewTailModel(path string) TailModel {
	return TailModel{
		path:   path,
		follow: true,
		help:   help.New(),
		keys:   tailKeys,
	}
}

// Init implements tea.Model
func (m TailModel) Init() tea.Cmd {
	return tea.Batch(readLines(m.path, 0), tick())
}

func tick() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// readLines reads everything past offset and splits it into lines.
func readLines(path string, offset int64) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return readErrMsg{err: err}
		}
		defer f.Close()

		if _, err := f.Seek(offset, io.SeekStart); err != nil {
			return readErrMsg{err: err}
		}
		data, err := io.ReadAll(f)
		if err != nil {
			return readErrMsg{err: err}
		}
		if len(data) == 0 {
			return newLinesMsg{offset: offset}
		}

		text := strings.TrimSuffix(string(data), "\n")
		var lines []string
		if text != "" {
			lines = strings.Split(text, "\n")
		}
		return newLinesMsg{lines: lines, offset: offset + int64(len(data))}
	}
}

// Update implements tea.Model
func (m TailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		headerHeight := 2
		footerHeight := 2
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.viewport.SetContent(m.renderLines())
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		return m, nil

	case tickMsg:
		return m, tea.Batch(readLines(m.path, m.offset), tick())

	case newLinesMsg:
		m.offset = msg.offset
		if len(msg.lines) > 0 {
			m.lines = append(m.lines, msg.lines...)
			if m.ready {
				m.viewport.SetContent(m.renderLines())
				if m.follow {
					m.viewport.GotoBottom()
				}
			}
		}
		return m, nil

	case readErrMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Follow):
			m.follow = !m.follow
			if m.follow {
				m.viewport.GotoBottom()
			}
			return m, nil
		case key.Matches(msg, m.keys.Top):
			m.follow = false
			m.viewport.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.Bottom):
			m.viewport.GotoBottom()
			return m, nil
		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Manual scrolling turns follow off until re-enabled.
			m.follow = false
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// renderLines colorizes the "[LEVEL]" prefix of each buffered line.
func (m TailModel) renderLines() string {
	if len(m.lines) == 0 {
		return StatusStyle.Render("(no diagnostics yet)")
	}
	rendered := make([]string, len(m.lines))
	for i, line := range m.lines {
		rendered[i] = colorizeLine(line)
	}
	return strings.Join(rendered, "\n")
}

func colorizeLine(line string) string {
	for tag, style := range levelTagStyles {
		if strings.HasPrefix(line, tag) {
			return style.Render(tag) + line[len(tag):]
		}
	}
	return line
}

// View implements tea.Model
func (m TailModel) View() string {
	if !m.ready {
		return "loading..."
	}

	title := TitleStyle.Render(fmt.Sprintf("remdiag tail — %s", m.path))
	status := fmt.Sprintf("%d lines", len(m.lines))
	if m.follow {
		status += " · following"
	}
	if m.err != nil {
		status += fmt.Sprintf(" · read error: %v", m.err)
	}

	return title + "\n" +
		StatusStyle.Render(status) + "\n" +
		m.viewport.View() + "\n" +
		m.help.View(m.keys)
}

// RunTail starts the interactive viewer and blocks until the user quits.
func RunTail(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("cannot tail %s: %w", path, err)
	}
	p := tea.NewProgram(NewTailModel(path), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("viewer failed: %w", err)
	}
	return nil
}
