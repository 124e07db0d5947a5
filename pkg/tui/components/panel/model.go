// Package panel renders framed sections of the TUI screens.
package panel

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/academia/pkg/theme"
)

// Line is one row of a panel. Done rows are struck through and Muted rows
// are dimmed.
type Line struct {
	Text  string
	Done  bool
	Muted bool
}

// Model renders a titled panel of lines with an optional selection.
type Model struct {
	title    string
	lines    []Line
	selected int
	active   bool
	width    int

	styles theme.PanelStyles
	cursor lipgloss.Style
}

// New returns an empty panel.
func New(styles theme.PanelStyles, cursor lipgloss.Style) Model {
	return Model{styles: styles, cursor: cursor, selected: -1}
}

// SetContent updates the panel title and body lines.
func (m *Model) SetContent(title string, lines []Line) {
	m.title = title
	m.lines = lines
}

// Select highlights line i when active is set. Out of range values clamp.
func (m *Model) Select(i int, active bool) {
	m.active = active
	if len(m.lines) == 0 {
		m.selected = -1
		return
	}
	m.selected = min(max(i, 0), len(m.lines)-1)
}

// SetWidth bounds the frame width. Zero lets the content decide.
func (m *Model) SetWidth(w int) { m.width = w }

// Reset clears panel content.
func (m *Model) Reset() {
	m.title = ""
	m.lines = nil
	m.selected = -1
}

// View returns the rendered panel string and its total height in lines.
func (m Model) View() (string, int) {
	var content []string
	if m.title != "" {
		content = append(content, m.styles.Title.Render(m.title))
	}
	for i, line := range m.lines {
		style := m.styles.Body
		switch {
		case line.Done:
			style = m.styles.Done
		case line.Muted:
			style = m.styles.Muted
		}
		prefix := "  "
		if m.active && i == m.selected {
			prefix = "> "
			style = m.cursor
		}
		content = append(content, prefix+style.Render(line.Text))
	}
	frame := m.styles.Frame
	if m.width > 0 {
		frame = frame.Width(m.width)
	}
	view := frame.Render(strings.Join(content, "\n"))
	height := strings.Count(view, "\n") + 1
	return view, height
}
