package buffer

import (
	"strings"

	"github.com/iw2rmb/scribe/internal/grapheme"
)

type Options struct {
	HistoryLimit int // default: 1000; negative disables undo
}

type selectionState struct {
	active bool
	anchor Pos
	end    Pos
}

// Buffer is the pure document state: text, cursor, and selection.
//
// Version bumps on any observable change (text, cursor, selection).
// TextVersion bumps only when the text itself changes.
type Buffer struct {
	lines       [][]string
	version     uint64
	textVersion uint64

	cursor Pos
	sel    selectionState

	opt  Options
	hist historyState

	lastChange    Change
	hasLastChange bool
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	return &Buffer{
		lines: splitLines(text),
		opt:   opt,
	}
}

func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(grapheme.Join(line))
	}
	return sb.String()
}

// Lines returns a copy of every line's text.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, line := range b.lines {
		out[i] = grapheme.Join(line)
	}
	return out
}

// Line returns the text of row, or "" when row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return grapheme.Join(b.lines[row])
}

// LineCount is always at least 1.
func (b *Buffer) LineCount() int { return len(b.lines) }

// LineLen returns the grapheme length of row.
func (b *Buffer) LineLen(row int) int { return b.lineLen(row) }

func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) TextVersion() uint64 { return b.textVersion }

func (b *Buffer) Cursor() Pos { return b.cursor }

func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

// SetText replaces the whole document, moves the cursor to the start and
// clears selection and history. It is used when a file is loaded.
func (b *Buffer) SetText(text string) {
	change := b.beginChange(ChangeSourceLoad)
	before := b.Text()

	b.lines = splitLines(text)
	b.cursor = Pos{}
	b.sel = selectionState{}
	b.hist = historyState{}
	b.version++
	if before != text {
		b.textVersion++
	}
	change.addAppliedEdit(AppliedEdit{
		RangeBefore: fullDocumentRange(before),
		RangeAfter:  fullDocumentRange(text),
		InsertText:  text,
		DeletedText: before,
	})
	b.commitChange(change)
}

func (b *Buffer) Selection() (Range, bool) {
	if !b.sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: b.sel.anchor, End: b.sel.end})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

func (b *Buffer) SetSelection(r Range) {
	clamped := ClampRange(r, len(b.lines), b.lineLen)
	next := selectionState{active: true, anchor: clamped.Start, end: clamped.End}
	if NormalizeRange(clamped).IsEmpty() {
		next = selectionState{}
	}

	prevRange, prevOK := b.Selection()
	nextRange, nextOK := Range{}, next.active
	if nextOK {
		nextRange = NormalizeRange(Range{Start: next.anchor, End: next.end})
	}

	b.sel = next
	if prevOK == nextOK && (!prevOK || prevRange == nextRange) {
		return
	}
	b.version++
}

func (b *Buffer) ClearSelection() {
	if !b.sel.active {
		return
	}
	_, ok := b.Selection()
	b.sel = selectionState{}
	if ok {
		b.version++
	}
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

func splitLines(text string) [][]string {
	parts := strings.Split(text, "\n")
	lines := make([][]string, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, grapheme.Split(s))
	}
	return lines
}
