package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) CompletionState() CompletionState {
	return cloneCompletionState(m.completion)
}

func (m Model) SetCompletionState(state CompletionState) Model {
	m.completion = normalizeCompletionState(state)
	return m
}

// ClearCompletion hides the popup. Clearing a hidden popup is a no-op.
func (m Model) ClearCompletion() Model {
	m.completion = CompletionState{}
	return m
}

// updateCompletionKey routes popup bindings and reports whether msg was
// consumed.
func (m *Model) updateCompletionKey(msg tea.KeyMsg) bool {
	if !m.completion.Visible {
		return false
	}
	ck := m.cfg.CompletionKeyMap

	if !m.completion.Focused {
		switch {
		case key.Matches(msg, ck.Focus):
			m.completion.Focused = true
			m.completion.Selected = 0
		case key.Matches(msg, ck.Dismiss):
			m.completion = CompletionState{}
		default:
			return false
		}
		return true
	}

	switch {
	case key.Matches(msg, ck.Next):
		m.moveCompletionSelection(1)
	case key.Matches(msg, ck.Prev):
		m.moveCompletionSelection(-1)
	case key.Matches(msg, ck.Accept):
		m.acceptCompletion()
	case key.Matches(msg, ck.Dismiss):
		m.completion = CompletionState{}
	default:
		// Any other key hands focus back to the buffer and is handled there.
		m.completion.Focused = false
		return false
	}
	return true
}

func (m *Model) moveCompletionSelection(delta int) {
	n := len(m.completion.Items)
	if n == 0 {
		return
	}
	m.completion.Selected = ((m.completion.Selected+delta)%n + n) % n
}

func (m *Model) acceptCompletion() {
	state := m.completion
	m.completion = CompletionState{}
	if m.cfg.ReadOnly || len(state.Items) == 0 {
		return
	}

	item := state.Items[clampInt(state.Selected, 0, len(state.Items)-1)]
	if len(item.Edits) > 0 {
		m.buf.Apply(item.Edits...)
	}
}
