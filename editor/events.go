package editor

import "github.com/iw2rmb/scribe/buffer"

// ChangeEvent describes one text change made through the editor.
type ChangeEvent struct {
	DocID       string
	Version     uint64
	TextVersion uint64
	Cursor      buffer.Pos

	// Change is the buffer's normalized change payload.
	Change buffer.Change

	// Line reads the current text of a row.
	Line func(row int) string
}

func buildChangeEvent(docID string, b *buffer.Buffer, ch buffer.Change) ChangeEvent {
	return ChangeEvent{
		DocID:       docID,
		Version:     b.Version(),
		TextVersion: b.TextVersion(),
		Cursor:      b.Cursor(),
		Change:      ch,
		Line:        b.Line,
	}
}
