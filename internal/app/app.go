// Package app contains the root application model: the editor with tagging
// and autocomplete wired in, the File menu, the path prompt and the status
// line.
package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/scribe/autocomplete"
	"github.com/iw2rmb/scribe/document"
	"github.com/iw2rmb/scribe/editor"
	"github.com/iw2rmb/scribe/internal/config"
	"github.com/iw2rmb/scribe/internal/log"
	"github.com/iw2rmb/scribe/syntax"
)

// Options configures New.
type Options struct {
	Config config.Config
	// Path is opened at startup. A path that does not exist yet becomes the
	// save target of an empty buffer.
	Path string
	// Clipboard overrides the OS clipboard. Tests pass an in-memory one.
	Clipboard editor.Clipboard
	// Keys overrides DefaultKeyMap.
	Keys *KeyMap
}

// Model is the root application state.
type Model struct {
	cfg       config.Config
	keys      KeyMap
	styles    styles
	clipboard editor.Clipboard

	doc      *document.Document
	editor   editor.Model
	tags     *syntax.Overlay
	theme    syntax.Theme
	complete *autocomplete.Controller

	menu   fileMenu
	prompt pathPrompt

	status      string
	statusError bool
	savedText   uint64

	width, height int

	watcher  *document.Watcher
	watchCh  <-chan string
	watchGen int
}

// fileChangedMsg reports a write to the open file by another program. gen
// identifies the watcher that saw it.
type fileChangedMsg struct {
	path string
	gen  int
}

// New builds the root model. Errors opening Options.Path are shown in the
// status line rather than returned.
func New(opts Options) Model {
	cfg := opts.Config
	keys := DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = defaultClipboard()
	}

	m := Model{
		cfg:       cfg,
		keys:      keys,
		styles:    defaultStyles(),
		clipboard: clip,
		doc:       document.New(""),
		tags:      syntax.NewOverlay(syntax.NewTagger(cfg.Lexicon())),
		theme:     cfg.SyntaxTheme(),
		complete:  autocomplete.NewController(cfg.Engine(), autocomplete.DefaultKeyMap()),
		menu:      newFileMenu(keys),
		prompt:    newPathPrompt(),
	}
	m.load("")

	if opts.Path != "" {
		text, err := m.doc.Open(opts.Path)
		switch {
		case err == nil:
			m.load(text)
			m.setStatus(fmt.Sprintf("opened %s", opts.Path))
		case errors.Is(err, os.ErrNotExist):
			m.doc.Reset(opts.Path)
			m.load("")
			m.setStatus(fmt.Sprintf("new file %s", opts.Path))
		default:
			m.setError(err)
		}
		m.restartWatcher()
	}
	return m
}

// newEditor builds an editor for the current document. Tag sync runs from
// OnChange so the overlay stays aligned with the buffer line by line.
func (m *Model) newEditor(text string) editor.Model {
	tags := m.tags
	ed := editor.New(editor.Config{
		Text:                     text,
		DocID:                    m.doc.ID.String(),
		ShowLineNums:             m.cfg.Editor.ShowLineNumbers,
		Style:                    editor.DefaultStyle(),
		TabWidth:                 m.cfg.Editor.TabWidth,
		IndentText:               m.cfg.IndentText(),
		HistoryLimit:             m.cfg.Editor.HistoryLimit,
		Highlighter:              syntax.NewHighlighter(tags, m.theme),
		Clipboard:                m.clipboard,
		CompletionMaxVisibleRows: m.cfg.Completion.MaxVisibleRows,
		OnChange: func(ev editor.ChangeEvent) {
			tags.Sync(ev.Change, ev.Line)
		},
	})
	if m.width > 0 {
		ed = ed.SetSize(m.width, m.editorHeight())
	}
	return ed
}

// load replaces the buffer with text, resets the cursor and retags every
// line in order.
func (m *Model) load(text string) {
	m.editor = m.newEditor(text)
	m.tags.RetagAll(m.editor.Buffer().Lines())
	m.savedText = m.editor.Buffer().TextVersion()
	log.Debug(log.CatTagger, "retagged document", "lines", m.tags.Len())
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle(m.doc.Title()), m.waitForChange())
}

// Close releases the file watcher.
func (m Model) Close() error {
	if m.watcher == nil {
		return nil
	}
	return m.watcher.Stop()
}

// Editor returns the editor component.
func (m Model) Editor() editor.Model { return m.editor }

// Document returns the open document.
func (m Model) Document() *document.Document { return m.doc }

// Tags returns the tag overlay for the buffer.
func (m Model) Tags() *syntax.Overlay { return m.tags }

// Status returns the status line message.
func (m Model) Status() string { return m.status }

// Dirty reports whether the buffer changed since the last load or save.
func (m Model) Dirty() bool { return m.editor.Buffer().TextVersion() != m.savedText }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.editor = m.editor.SetSize(m.width, m.editorHeight())
		m.prompt = m.prompt.SetWidth(m.width)
		return m, nil

	case fileChangedMsg:
		if !m.onFileChanged(msg) {
			return m, nil
		}
		return m, m.waitForChange()

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		if m.prompt.Active() || m.menu.open {
			return m, nil
		}
		var cmd tea.Cmd
		m.editor, cmd = m.complete.Update(m.editor, msg)
		return m, cmd
	}

	if m.prompt.Active() {
		var cmd tea.Cmd
		m.prompt, _, _, _, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.prompt.Active() {
		next, a, path, done, cmd := m.prompt.Update(msg)
		m.prompt = next
		if !done {
			return m, cmd
		}
		if a == actionNone {
			m.setStatus("")
			return m, nil
		}
		return m.runWithPath(a, path)
	}

	if m.menu.open {
		var a action
		m.menu, a = m.menu.Update(msg)
		return m.run(a)
	}

	switch {
	case key.Matches(msg, m.keys.Menu):
		m.menu = m.menu.Open()
		m.editor = autocomplete.Close(m.editor)
		return m, nil
	case key.Matches(msg, m.keys.Save):
		return m.run(actionSave)
	case key.Matches(msg, m.keys.Open):
		return m.run(actionOpen)
	case key.Matches(msg, m.keys.New):
		return m.run(actionNew)
	}

	var cmd tea.Cmd
	m.editor, cmd = m.complete.Update(m.editor, msg)
	return m, cmd
}

// run starts a File action. Open and New always ask for a path; Save asks
// only when the document has none.
func (m Model) run(a action) (tea.Model, tea.Cmd) {
	switch a {
	case actionSave:
		if m.doc.HasPath() {
			m.save()
			return m, nil
		}
		return m.ask(actionSave, "")
	case actionOpen:
		return m.ask(actionOpen, "")
	case actionNew:
		return m.ask(actionNew, "")
	}
	return m, nil
}

func (m Model) ask(a action, value string) (tea.Model, tea.Cmd) {
	m.editor = autocomplete.Close(m.editor)
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Start(a, value)
	m.prompt = m.prompt.SetWidth(m.width)
	return m, cmd
}

func (m Model) runWithPath(a action, path string) (tea.Model, tea.Cmd) {
	switch a {
	case actionOpen:
		text, err := m.doc.Open(path)
		if err != nil {
			m.setError(err)
			return m, nil
		}
		m.load(text)
		m.setStatus(fmt.Sprintf("opened %s", path))
		log.Info(log.CatFile, "opened", "path", path, "lines", m.editor.Buffer().LineCount())

	case actionNew:
		m.doc.Reset(path)
		m.tags.Reset()
		m.load("")
		m.setStatus(fmt.Sprintf("new file %s", path))
		log.Info(log.CatFile, "new", "path", path)

	case actionSave:
		if err := m.doc.SaveAs(path, m.editor.Buffer().Text()); err != nil {
			m.setError(err)
			return m, nil
		}
		m.savedText = m.editor.Buffer().TextVersion()
		m.setStatus(fmt.Sprintf("saved %s", path))
		log.Info(log.CatFile, "saved", "path", path)

	default:
		return m, nil
	}

	m.restartWatcher()
	return m, tea.Batch(tea.SetWindowTitle(m.doc.Title()), m.waitForChange())
}

func (m *Model) save() {
	if err := m.doc.Save(m.editor.Buffer().Text()); err != nil {
		m.setError(err)
		return
	}
	m.savedText = m.editor.Buffer().TextVersion()
	m.setStatus(fmt.Sprintf("saved %s", m.doc.Path))
	log.Info(log.CatFile, "saved", "path", m.doc.Path)
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusError = false
}

func (m *Model) setError(err error) {
	log.ErrorErr(log.CatFile, "file operation failed", err, "path", m.doc.Path)
	m.status = err.Error()
	m.statusError = true
}

// editorHeight leaves one row for the menu bar and one for the status line.
func (m Model) editorHeight() int {
	return max(m.height-2, 0)
}

func (m Model) View() string {
	body := m.menuBarView() + "\n" + m.editor.View() + "\n" + m.statusView()
	if !m.menu.open {
		return body
	}
	return overlay.Composite(m.menu.View(m.styles), body, overlay.Left, overlay.Top, 0, 1)
}
