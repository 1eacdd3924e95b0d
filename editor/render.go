package editor

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/scribe/buffer"
	graphemeutil "github.com/iw2rmb/scribe/internal/grapheme"
)

func (m *Model) renderContent() string {
	if m.buf == nil {
		return ""
	}

	lines := m.buf.Lines()
	cursor := m.buf.Cursor()
	sel, selOK := m.buf.Selection()
	digitCount := gutterDigits(len(lines))

	left := max(m.xOffset, 0)
	right := int(^uint(0) >> 1)
	if w := m.contentWidth(); w > 0 {
		right = left + w
	}

	// Only rows inside the viewport are highlighted.
	top := max(m.viewport.YOffset, 0)
	bottom := top + m.visibleRowCount()

	out := make([]string, 0, len(lines))
	for row, text := range lines {
		var sb strings.Builder

		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && row == cursor.Row {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digitCount, row+1)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}

		clusters := graphemeutil.Split(text)
		var highlights []HighlightSpan
		if row >= top && row < bottom {
			highlights = m.highlightForLine(row, text, len(clusters))
		}
		sb.WriteString(m.renderLine(row, clusters, cursor, sel, selOK, highlights, left, right))

		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

// renderLine renders the cells [left, right) of one line.
func (m *Model) renderLine(
	row int,
	clusters []string,
	cursor buffer.Pos,
	sel buffer.Range,
	selOK bool,
	highlights []HighlightSpan,
	left, right int,
) string {
	st := m.cfg.Style
	l := layoutLine(clusters, m.cfg.TabWidth)

	cursorCol := -1
	if m.focused && row == cursor.Row {
		cursorCol = clampInt(cursor.Col, 0, len(clusters))
	}
	selStart, selEnd, hasSel := selectionColsForRow(sel, selOK, row, len(clusters))
	colStyles := styleForCols(highlights, len(clusters))

	var sb strings.Builder
	for i, c := range clusters {
		segL := l.startCell[i]
		segR := segL + l.width[i]
		spanL := max(segL, left)
		spanR := min(segR, right)
		if spanL >= spanR {
			continue
		}
		if spanL != segL || spanR != segR {
			// Partial wide grapheme: preserve alignment with blanks.
			sb.WriteString(st.Text.Render(strings.Repeat(" ", spanR-spanL)))
			continue
		}

		text := c
		if c == "\t" {
			text = strings.Repeat(" ", l.width[i])
		}

		style := st.Text
		switch {
		case i == cursorCol:
			style = st.Cursor
		case hasSel && i >= selStart && i < selEnd:
			style = st.Selection
		case colStyles != nil && colStyles[i] != nil:
			style = colStyles[i].Inherit(st.Text)
		}
		sb.WriteString(style.Render(text))
	}

	// Cursor at EOL is rendered as a 1-cell placeholder space.
	if cursorCol == len(clusters) {
		if cell := l.cells(); cell >= left && cell < right {
			sb.WriteString(st.Cursor.Render(" "))
		}
	}
	return sb.String()
}

func selectionColsForRow(sel buffer.Range, ok bool, row, lineLen int) (start, end int, has bool) {
	if !ok {
		return 0, 0, false
	}
	sel = buffer.NormalizeRange(sel)
	if row < sel.Start.Row || row > sel.End.Row {
		return 0, 0, false
	}
	start, end = 0, lineLen
	if row == sel.Start.Row {
		start = clampInt(sel.Start.Col, 0, lineLen)
	}
	if row == sel.End.Row {
		end = clampInt(sel.End.Col, 0, lineLen)
	}
	return start, end, start < end
}
