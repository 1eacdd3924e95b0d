package app

import (
	"github.com/atotto/clipboard"

	"github.com/iw2rmb/scribe/editor"
)

// systemClipboard backs editor copy/cut/paste with the OS clipboard.
type systemClipboard struct{}

func (systemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }

func (systemClipboard) WriteText(s string) error { return clipboard.WriteAll(s) }

// defaultClipboard returns the OS clipboard, or nil when no clipboard tool
// is available.
func defaultClipboard() editor.Clipboard {
	if clipboard.Unsupported {
		return nil
	}
	return systemClipboard{}
}
