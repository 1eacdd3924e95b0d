package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// action is something the File menu, a shortcut or the path prompt can run.
type action int

const (
	actionNone action = iota
	actionNew
	actionOpen
	actionSave
)

func (a action) String() string {
	switch a {
	case actionNew:
		return "New"
	case actionOpen:
		return "Open"
	case actionSave:
		return "Save"
	default:
		return ""
	}
}

type menuItem struct {
	action action
	hint   string
}

// fileMenu is the drop-down under the "File" title in the menu bar.
type fileMenu struct {
	items    []menuItem
	open     bool
	selected int
}

func newFileMenu(keys KeyMap) fileMenu {
	return fileMenu{items: []menuItem{
		{action: actionNew, hint: keys.New.Help().Key},
		{action: actionOpen, hint: keys.Open.Help().Key},
		{action: actionSave, hint: keys.Save.Help().Key},
	}}
}

func (m fileMenu) Open() fileMenu {
	m.open = true
	m.selected = 0
	return m
}

func (m fileMenu) Close() fileMenu {
	m.open = false
	return m
}

var (
	menuUp     = key.NewBinding(key.WithKeys("up", "shift+tab"))
	menuDown   = key.NewBinding(key.WithKeys("down", "tab"))
	menuAccept = key.NewBinding(key.WithKeys("enter"))
	menuCancel = key.NewBinding(key.WithKeys("esc", "f10", "alt+f"))
)

// Update handles keys while the menu is open and returns the chosen action,
// if any. The menu closes on accept and cancel.
func (m fileMenu) Update(msg tea.KeyMsg) (fileMenu, action) {
	n := len(m.items)
	switch {
	case key.Matches(msg, menuUp):
		m.selected = (m.selected - 1 + n) % n
	case key.Matches(msg, menuDown):
		m.selected = (m.selected + 1) % n
	case key.Matches(msg, menuAccept):
		m.open = false
		return m, m.items[m.selected].action
	case key.Matches(msg, menuCancel):
		m.open = false
	default:
		// Mnemonics: the first letter of an item runs it.
		if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
			r := strings.ToLower(string(msg.Runes))
			for _, it := range m.items {
				if strings.HasPrefix(strings.ToLower(it.action.String()), r) {
					m.open = false
					return m, it.action
				}
			}
		}
	}
	return m, actionNone
}

// View renders the drop-down box.
func (m fileMenu) View(st styles) string {
	labelWidth, hintWidth := 0, 0
	for _, it := range m.items {
		labelWidth = max(labelWidth, lipgloss.Width(it.action.String()))
		hintWidth = max(hintWidth, lipgloss.Width(it.hint))
	}

	rows := make([]string, 0, len(m.items))
	for i, it := range m.items {
		row := " " + padRight(it.action.String(), labelWidth) + "  " + padRight(it.hint, hintWidth) + " "
		if i == m.selected {
			row = st.MenuSelected.Render(row)
		} else {
			row = st.MenuItem.Render(row)
		}
		rows = append(rows, row)
	}
	return st.MenuBox.Render(strings.Join(rows, "\n"))
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
