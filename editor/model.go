package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/scribe/buffer"
)

// Model is a Bubble Tea component that renders and interacts with a buffer.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	focused bool

	viewport viewport.Model
	xOffset  int

	completion CompletionState

	mouseAnchor   buffer.Pos
	mouseDragging bool

	lastBufVersion  uint64
	lastTextVersion uint64
	lastCursor      buffer.Pos
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	m := Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Text, buffer.Options{HistoryLimit: cfg.HistoryLimit}),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastBufVersion = m.buf.Version()
	m.lastTextVersion = m.buf.TextVersion()
	m.lastCursor = m.buf.Cursor()
	m.rebuildContent()
	return m
}

// Buffer returns the backing buffer. The pointer is stable for the lifetime
// of the model; hosts that mutate it directly should call Sync afterwards.
func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Config() Config { return m.cfg }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	m.viewport.Width = max(width, 0)
	m.viewport.Height = max(height, 0)

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// Sync refreshes the view after the host mutated the buffer directly, for
// example after loading a file with SetText. It does not emit OnChange.
func (m Model) Sync() Model {
	m.lastTextVersion = m.buf.TextVersion()
	m.syncFromBuffer()
	m.followCursor()
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.updateKey(msg)
		m.afterInput()
		m.followCursor()
		return m, cmd
	case tea.MouseMsg:
		var cmd tea.Cmd
		m, cmd = m.updateMouse(msg)
		// Don't force-follow the cursor; wheel scrolling moves the viewport only.
		if m.afterInput() {
			m.followCursor()
		}
		return m, cmd
	default:
		if m.syncFromBuffer() {
			m.followCursor()
		}
		return m, nil
	}
}

func (m Model) View() string {
	base := m.viewport.View()
	if popup, ok := m.completionPopupRender(base); ok {
		return popup.View
	}
	return base
}

// afterInput emits OnChange for text changes and refreshes content.
func (m *Model) afterInput() (cursorChanged bool) {
	if tv := m.buf.TextVersion(); tv != m.lastTextVersion {
		m.lastTextVersion = tv
		if ch, ok := m.buf.LastChange(); ok && m.cfg.OnChange != nil {
			m.cfg.OnChange(buildChangeEvent(m.cfg.DocID, m.buf, ch))
		}
	}
	return m.syncFromBuffer()
}

func (m *Model) syncFromBuffer() (cursorChanged bool) {
	ver := m.buf.Version()
	cur := m.buf.Cursor()
	if ver == m.lastBufVersion && cur == m.lastCursor {
		return false
	}
	cursorChanged = cur != m.lastCursor
	m.lastBufVersion = ver
	m.lastCursor = cur
	m.rebuildContent()
	return cursorChanged
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}
