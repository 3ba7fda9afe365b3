package preview

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const tabWidth = 4

// Model holds the text being viewed and the scroll position.
type Model struct {
	Title string

	lines  []string
	offset int
}

// New builds a model from result text. Line endings are normalized,
// tabs are expanded, and a trailing newline does not produce a final
// empty line.
func New(title, text string) *Model {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 1 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, line := range lines {
		lines[i] = expandTabs(line, tabWidth)
	}
	return &Model{Title: title, lines: lines}
}

// Lines returns the prepared display lines.
func (m *Model) Lines() []string {
	return m.lines
}

// handleKey updates the scroll position and reports whether the viewer
// should exit.
func (m *Model) handleKey(ev *tcell.EventKey, page int) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		m.offset--
	case tcell.KeyDown:
		m.offset++
	case tcell.KeyPgUp:
		m.offset -= page
	case tcell.KeyPgDn:
		m.offset += page
	case tcell.KeyHome:
		m.offset = 0
	case tcell.KeyEnd:
		m.offset = len(m.lines)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case 'k':
			m.offset--
		case 'j':
			m.offset++
		case 'b':
			m.offset -= page
		case ' ', 'f':
			m.offset += page
		case 'g':
			m.offset = 0
		case 'G':
			m.offset = len(m.lines)
		}
	}

	m.clamp(page)
	return false
}

// clamp keeps the scroll offset inside the scrollable range.
func (m *Model) clamp(visible int) {
	if visible < 1 {
		visible = 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
	maxOffset := len(m.lines) - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if m.offset > maxOffset {
		m.offset = maxOffset
	}
}

func expandTabs(text string, tabWidth int) string {
	if tabWidth <= 0 || !strings.ContainsRune(text, '\t') {
		return text
	}

	var builder strings.Builder
	column := 0
	for _, ru := range text {
		if ru == '\t' {
			spaces := tabWidth - (column % tabWidth)
			for i := 0; i < spaces; i++ {
				builder.WriteByte(' ')
			}
			column += spaces
			continue
		}
		builder.WriteRune(ru)
		width := runewidth.RuneWidth(ru)
		if width < 1 {
			width = 1
		}
		column += width
	}
	return builder.String()
}
