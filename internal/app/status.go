package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m Model) menuBarView() string {
	title := m.styles.MenuTitle
	if m.menu.open {
		title = m.styles.MenuTitleOn
	}
	bar := title.Render(" File ")
	if gap := m.width - lipgloss.Width(bar); gap > 0 {
		bar += m.styles.MenuBar.Render(strings.Repeat(" ", gap))
	}
	return bar
}

// statusView renders the bottom row: the path prompt while it is active,
// otherwise title, dirty marker, the last message and the cursor position.
func (m Model) statusView() string {
	if m.prompt.Active() {
		return ansi.Truncate(m.prompt.View(), max(m.width, 0), "")
	}

	left := m.doc.Title()
	if m.Dirty() {
		left += " [+]"
	}
	if m.status != "" {
		left += " | " + m.status
	}
	cur := m.editor.Buffer().Cursor()
	right := fmt.Sprintf("Ln %d, Col %d", cur.Row+1, cur.Col+1)

	st := m.styles.Status
	if m.statusError {
		st = m.styles.StatusError
	}
	if m.width <= 0 {
		return st.Render(left + "  " + right)
	}

	room := m.width - lipgloss.Width(right) - 1
	if room <= 0 {
		return st.Render(ansi.Truncate(right, m.width, ""))
	}
	left = ansi.Truncate(left, room, "…")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	return st.Render(left + strings.Repeat(" ", max(gap, 1)) + right)
}
