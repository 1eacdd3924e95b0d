package editor

import (
	"reflect"

	"github.com/charmbracelet/bubbles/key"

	"github.com/iw2rmb/scribe/buffer"
)

const (
	defaultCompletionMaxVisibleRows = 8
	defaultCompletionMaxWidth       = 60
)

// CompletionItem is one entry of the completion popup.
//
// Accepting an item applies Edits as one undo step.
type CompletionItem struct {
	ID    string
	Label string
	Edits []buffer.TextEdit
}

// CompletionState is the host-owned popup state. The editor only changes it
// in response to CompletionKeyMap bindings.
type CompletionState struct {
	Visible bool
	// Focused routes navigation keys to the popup instead of the buffer.
	Focused  bool
	Anchor   buffer.Pos
	Items    []CompletionItem
	Selected int
}

type CompletionKeyMap struct {
	// Focus moves input focus from the buffer onto a visible popup.
	Focus   key.Binding
	Next    key.Binding
	Prev    key.Binding
	Accept  key.Binding
	Dismiss key.Binding
}

func DefaultCompletionKeyMap() CompletionKeyMap {
	return CompletionKeyMap{
		Focus:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "focus completion")),
		Next:    key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next completion")),
		Prev:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "prev completion")),
		Accept:  key.NewBinding(key.WithKeys("enter", "tab"), key.WithHelp("enter", "accept completion")),
		Dismiss: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss completion")),
	}
}

func normalizeCompletionKeyMap(km CompletionKeyMap) CompletionKeyMap {
	if reflect.DeepEqual(km, CompletionKeyMap{}) {
		return DefaultCompletionKeyMap()
	}
	return km
}

func normalizeCompletionMaxVisibleRows(rows int) int {
	if rows <= 0 {
		return defaultCompletionMaxVisibleRows
	}
	return rows
}

func normalizeCompletionMaxWidth(width int) int {
	if width <= 0 {
		return defaultCompletionMaxWidth
	}
	return width
}

func normalizeCompletionState(state CompletionState) CompletionState {
	state = cloneCompletionState(state)
	if len(state.Items) == 0 {
		return CompletionState{}
	}
	if !state.Visible {
		state.Focused = false
	}
	state.Selected = clampInt(state.Selected, 0, len(state.Items)-1)
	return state
}

func cloneCompletionState(state CompletionState) CompletionState {
	if len(state.Items) == 0 {
		state.Items = nil
		return state
	}
	items := make([]CompletionItem, len(state.Items))
	copy(items, state.Items)
	for i := range items {
		if len(items[i].Edits) > 0 {
			items[i].Edits = append([]buffer.TextEdit(nil), items[i].Edits...)
		}
	}
	state.Items = items
	return state
}
