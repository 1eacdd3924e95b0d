package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// pathPrompt asks for a file path on the status row.
type pathPrompt struct {
	input  textinput.Model
	action action
}

func newPathPrompt() pathPrompt {
	in := textinput.New()
	in.Placeholder = "path/to/file.py"
	in.CharLimit = 4096
	return pathPrompt{input: in}
}

func (p pathPrompt) Active() bool { return p.action != actionNone }

// Start shows the prompt for a, prefilled with value.
func (p pathPrompt) Start(a action, value string) (pathPrompt, tea.Cmd) {
	p.action = a
	p.input.Prompt = a.String() + ": "
	p.input.SetValue(value)
	p.input.CursorEnd()
	return p, p.input.Focus()
}

func (p pathPrompt) SetWidth(w int) pathPrompt {
	p.input.Width = max(w-len(p.input.Prompt)-1, 1)
	return p
}

// Update feeds msg to the input. On enter it returns the action and the
// trimmed path; on esc it returns actionNone with done set. An empty path
// counts as cancel.
func (p pathPrompt) Update(msg tea.Msg) (next pathPrompt, a action, path string, done bool, cmd tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.Type { //nolint:exhaustive
		case tea.KeyEnter:
			a, path = p.action, strings.TrimSpace(p.input.Value())
			p = p.reset()
			if path == "" {
				return p, actionNone, "", true, nil
			}
			return p, a, path, true, nil
		case tea.KeyEsc, tea.KeyCtrlC:
			return p.reset(), actionNone, "", true, nil
		}
	}
	p.input, cmd = p.input.Update(msg)
	return p, actionNone, "", false, cmd
}

func (p pathPrompt) reset() pathPrompt {
	p.action = actionNone
	p.input.Reset()
	p.input.Blur()
	return p
}

func (p pathPrompt) View() string { return p.input.View() }
