package editor

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

type HighlightSpan struct {
	// StartCol and EndCol are grapheme columns in the line text,
	// half-open [StartCol, EndCol).
	StartCol int
	EndCol   int
	Style    lipgloss.Style
}

type LineContext struct {
	Row  int
	Text string

	// CursorCol is the cursor's grapheme column when HasCursor, otherwise -1.
	CursorCol int
	HasCursor bool
}

// Highlighter styles one line at a time. It is only asked about rows that
// are currently visible.
type Highlighter interface {
	HighlightLine(ctx LineContext) ([]HighlightSpan, error)
}

func (m *Model) highlightForLine(row int, text string, lineLen int) []HighlightSpan {
	if m.cfg.Highlighter == nil {
		return nil
	}

	cursor := m.buf.Cursor()
	ctx := LineContext{Row: row, Text: text, CursorCol: -1}
	if cursor.Row == row {
		ctx.HasCursor = true
		ctx.CursorCol = clampInt(cursor.Col, 0, lineLen)
	}

	spans, err := m.cfg.Highlighter.HighlightLine(ctx)
	if err != nil {
		return nil
	}
	return normalizeHighlightSpans(spans, lineLen)
}

func normalizeHighlightSpans(spans []HighlightSpan, lineLen int) []HighlightSpan {
	if len(spans) == 0 {
		return nil
	}
	lineLen = max(lineLen, 0)

	out := make([]HighlightSpan, 0, len(spans))
	for _, sp := range spans {
		start := clampInt(sp.StartCol, 0, lineLen)
		end := clampInt(sp.EndCol, 0, lineLen)
		if end < start {
			start, end = end, start
		}
		if start == end {
			continue
		}
		out = append(out, HighlightSpan{StartCol: start, EndCol: end, Style: sp.Style})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].StartCol != out[j].StartCol {
			return out[i].StartCol < out[j].StartCol
		}
		return out[i].EndCol < out[j].EndCol
	})

	// Overlapping spans are dropped; the first span at a column wins.
	merged := make([]HighlightSpan, 0, len(out))
	for _, sp := range out {
		if len(merged) > 0 && sp.StartCol < merged[len(merged)-1].EndCol {
			continue
		}
		merged = append(merged, sp)
	}
	return merged
}

// styleForCols expands spans into a per-column style lookup.
func styleForCols(spans []HighlightSpan, lineLen int) []*lipgloss.Style {
	if len(spans) == 0 {
		return nil
	}
	out := make([]*lipgloss.Style, lineLen)
	for i := range spans {
		for c := spans[i].StartCol; c < spans[i].EndCol && c < lineLen; c++ {
			out[c] = &spans[i].Style
		}
	}
	return out
}
