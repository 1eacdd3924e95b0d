package editor

import (
	"fmt"

	"github.com/iw2rmb/scribe/buffer"
	graphemeutil "github.com/iw2rmb/scribe/internal/grapheme"
)

// ViewportState is a stable host-facing snapshot of editor camera state.
type ViewportState struct {
	// TopRow is the document row rendered at viewport screen row 0.
	TopRow int
	// VisibleRows is the number of content rows available for rendering.
	VisibleRows int
	// LeftCellOffset is the horizontal scroll offset in cells.
	LeftCellOffset int
	// GutterWidth is the number of cells taken by line numbers.
	GutterWidth int
}

func (m Model) ViewportState() ViewportState {
	return ViewportState{
		TopRow:         max(m.viewport.YOffset, 0),
		VisibleRows:    m.visibleRowCount(),
		LeftCellOffset: max(m.xOffset, 0),
		GutterWidth:    m.gutterWidth(),
	}
}

// DocToScreen maps a document position to viewport-local screen cells.
//
// ok is false when the position is outside the visible viewport content.
func (m Model) DocToScreen(pos buffer.Pos) (x int, y int, ok bool) {
	lineCount := m.buf.LineCount()
	row := clampInt(pos.Row, 0, lineCount-1)
	l := m.layoutRow(row)

	y = row - m.viewport.YOffset
	x = m.gutterWidth() + l.cellForCol(pos.Col) - m.xOffset

	if y < 0 || y >= m.visibleRowCount() {
		return x, y, false
	}
	if x < m.gutterWidth() || x >= m.viewport.Width-m.viewport.Style.GetHorizontalFrameSize() {
		return x, y, false
	}
	return x, y, true
}

// ScreenToDoc maps viewport-local screen cells to a document position.
// Coordinates are clamped into document bounds; gutter cells map to column 0.
func (m Model) ScreenToDoc(x, y int) buffer.Pos {
	lineCount := m.buf.LineCount()
	row := clampInt(m.viewport.YOffset+y, 0, lineCount-1)

	gw := m.gutterWidth()
	if x < gw {
		return buffer.Pos{Row: row, Col: 0}
	}
	cell := x - gw + max(m.xOffset, 0)
	return buffer.Pos{Row: row, Col: m.layoutRow(row).colForCell(cell)}
}

func (m Model) layoutRow(row int) lineLayout {
	return layoutLine(graphemeutil.Split(m.buf.Line(row)), m.cfg.TabWidth)
}

func (m Model) visibleRowCount() int {
	return max(m.viewport.Height-m.viewport.Style.GetVerticalFrameSize(), 0)
}

func (m Model) gutterWidth() int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return gutterDigits(m.buf.LineCount()) + 1
}

// contentWidth is the number of text cells per row, or 0 when unsized.
func (m Model) contentWidth() int {
	return max(m.viewport.Width-m.viewport.Style.GetHorizontalFrameSize()-m.gutterWidth(), 0)
}

func gutterDigits(lineCount int) int {
	return len(fmt.Sprintf("%d", max(lineCount, 1)))
}

// followCursor scrolls so the cursor cell is visible.
func (m *Model) followCursor() {
	cur := m.buf.Cursor()

	if h := m.visibleRowCount(); h > 0 {
		y := m.viewport.YOffset
		switch {
		case cur.Row < y:
			m.viewport.SetYOffset(cur.Row)
		case cur.Row >= y+h:
			m.viewport.SetYOffset(cur.Row - h + 1)
		}
	}

	w := m.contentWidth()
	if w <= 0 {
		return
	}
	cell := m.layoutRow(cur.Row).cellForCol(cur.Col)
	next := m.xOffset
	switch {
	case cell < next:
		next = cell
	case cell >= next+w:
		next = cell - w + 1
	}
	if next != m.xOffset {
		m.xOffset = next
		m.rebuildContent()
	}
}
