package preview

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Run drives the viewer on an initialized screen until the user quits.
// The caller owns the screen and finalizes it afterwards.
func Run(screen tcell.Screen, m *Model) error {
	for {
		draw(screen, m)

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if done := m.handleKey(ev, pageSize(screen)); done {
				return nil
			}
		case nil:
			// Screen was finalized under us.
			return nil
		}
	}
}

func pageSize(screen tcell.Screen) int {
	_, height := screen.Size()
	return contentRows(height)
}

// contentRows is the height minus the title and status rows.
func contentRows(height int) int {
	rows := height - 2
	if rows < 1 {
		rows = 1
	}
	return rows
}

func draw(screen tcell.Screen, m *Model) {
	screen.Clear()
	width, height := screen.Size()
	page := contentRows(height)
	m.clamp(page)

	drawText(screen, 0, width, m.Title, tcell.StyleDefault.Bold(true))

	row := 1
	for i := m.offset; i < len(m.lines) && row <= page; i++ {
		drawText(screen, row, width, m.lines[i], tcell.StyleDefault)
		row++
	}

	if height >= 2 {
		drawText(screen, height-1, width, statusLine(m, page), tcell.StyleDefault.Reverse(true))
	}

	screen.Show()
}

func statusLine(m *Model, visible int) string {
	total := len(m.lines)
	first := 0
	if total > 0 {
		first = m.offset + 1
	}
	last := m.offset + visible
	if last > total {
		last = total
	}
	return fmt.Sprintf(" %d-%d/%d lines  ↑↓/PgUp/PgDn scroll  q/Esc quit ", first, last, total)
}

func drawText(screen tcell.Screen, y, width int, text string, style tcell.Style) {
	x := 0
	for _, ru := range text {
		w := runewidth.RuneWidth(ru)
		if w < 1 {
			w = 1
		}
		if x+w > width {
			break
		}
		screen.SetContent(x, y, ru, nil, style)
		x += w
	}
}
