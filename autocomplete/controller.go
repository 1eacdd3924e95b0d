package autocomplete

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/scribe/buffer"
	"github.com/iw2rmb/scribe/editor"
	"github.com/iw2rmb/scribe/internal/log"
)

// State is the menu state.
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// StateOf reports the menu state of m.
func StateOf(m editor.Model) State {
	if m.CompletionState().Visible {
		return Open
	}
	return Closed
}

// KeyMap holds the bindings the controller reacts to before the editor.
type KeyMap struct {
	// Close forces the menu closed; the key still reaches the editor.
	Close key.Binding
	// Trigger opens the menu for the word before the cursor without editing.
	Trigger key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Close:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "close completions")),
		Trigger: key.NewBinding(key.WithKeys("ctrl+@"), key.WithHelp("ctrl+space", "complete")),
	}
}

// Controller drives the editor's completion popup from key events.
type Controller struct {
	engine *Engine
	keys   KeyMap
}

func NewController(engine *Engine, keys KeyMap) *Controller {
	return &Controller{engine: engine, keys: keys}
}

func (c *Controller) Engine() *Engine { return c.engine }

// Update forwards msg to m and then reconciles the menu with the buffer.
// Every key or mouse event that edits the text or moves the cursor
// re-evaluates the menu for the word before the cursor.
func (c *Controller) Update(m editor.Model, msg tea.Msg) (editor.Model, tea.Cmd) {
	if !m.Focused() {
		return m.Update(msg)
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, c.keys.Close) && !msg.Paste {
			m = Close(m)
			return m.Update(msg)
		}
		if key.Matches(msg, c.keys.Trigger) {
			return c.Refresh(m), nil
		}
	case tea.MouseMsg:
	default:
		return m.Update(msg)
	}

	before := m.CompletionState()
	buf := m.Buffer()
	textVersion := buf.TextVersion()
	cursor := buf.Cursor()

	m, cmd := m.Update(msg)

	after := m.CompletionState()
	switch {
	case before.Focused && !after.Visible:
		// Accepted or dismissed from the menu.
		return m, cmd
	case after.Focused:
		return m, cmd
	case buf.TextVersion() == textVersion && buf.Cursor() == cursor:
		return m, cmd
	}
	if _, ok := buf.Selection(); ok {
		return Close(m), cmd
	}
	return c.Refresh(m), cmd
}

// Refresh destroys the current menu and, when the word before the cursor has
// candidates, opens a new one anchored at the cursor.
func (c *Controller) Refresh(m editor.Model) editor.Model {
	m = Close(m)

	buf := m.Buffer()
	partial, _, ok := buf.WordBeforeCursor()
	if !ok {
		return m
	}
	words := c.engine.Candidates(partial)
	if len(words) == 0 {
		return m
	}

	trigger := buf.Cursor()
	items := make([]editor.CompletionItem, 0, len(words))
	for _, w := range words {
		items = append(items, editor.CompletionItem{
			ID:    w,
			Label: w,
			Edits: []buffer.TextEdit{buffer.InsertAt(trigger, c.engine.Suffix(w, partial))},
		})
	}
	log.Debug(log.CatComplete, "menu open", "partial", partial, "candidates", len(items), "row", trigger.Row, "col", trigger.Col)

	return m.SetCompletionState(editor.CompletionState{
		Visible: true,
		Anchor:  trigger,
		Items:   items,
	})
}

// Close hides the menu. Closing a closed menu is a no-op.
func Close(m editor.Model) editor.Model {
	if StateOf(m) == Closed {
		return m
	}
	return m.ClearCompletion()
}
