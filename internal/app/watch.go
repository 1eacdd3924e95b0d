package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/scribe/document"
	"github.com/iw2rmb/scribe/internal/log"
)

// restartWatcher points the file watcher at the current document. Failures
// only disable watching.
func (m *Model) restartWatcher() {
	if m.watcher != nil {
		_ = m.watcher.Stop()
		m.watcher, m.watchCh = nil, nil
	}
	m.watchGen++
	if !m.cfg.WatchFile || !m.doc.HasPath() {
		return
	}

	w, err := document.NewWatcher(m.doc.Path, document.DefaultDebounce)
	if err != nil {
		log.ErrorErr(log.CatWatcher, "create watcher", err, "path", m.doc.Path)
		return
	}
	ch, err := w.Start()
	if err != nil {
		_ = w.Stop()
		log.ErrorErr(log.CatWatcher, "start watcher", err, "path", m.doc.Path)
		return
	}
	m.watcher, m.watchCh = w, ch
	log.Debug(log.CatWatcher, "watching", "path", w.Path())
}

// waitForChange blocks on the watcher channel. It ends quietly when the
// watcher is stopped.
func (m Model) waitForChange() tea.Cmd {
	ch, gen := m.watchCh, m.watchGen
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		path, ok := <-ch
		if !ok {
			return nil
		}
		return fileChangedMsg{path: path, gen: gen}
	}
}

// onFileChanged reports an outside write in the status line. The buffer is
// never reloaded automatically. It returns false for messages from a
// watcher that has since been replaced, so only one reader drains the
// current channel.
func (m *Model) onFileChanged(msg fileChangedMsg) bool {
	if m.watcher == nil || msg.gen != m.watchGen {
		return false
	}
	changed, err := m.doc.ChangedOnDisk()
	if err != nil {
		log.ErrorErr(log.CatWatcher, "compare with disk", err, "path", m.doc.Path)
		return true
	}
	if !changed {
		return true
	}
	log.Info(log.CatWatcher, "file changed on disk", "path", msg.path)
	m.setStatus("file changed on disk; ctrl+o to reload")
	return true
}
