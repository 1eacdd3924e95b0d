package editor

import (
	"strings"

	overlay "github.com/rmhubbert/bubbletea-overlay"
)

type completionPopupRender struct {
	View string
	X, Y int
	Rows int
}

func (m Model) completionPopupRender(base string) (completionPopupRender, bool) {
	state := m.completion
	if !state.Visible || len(state.Items) == 0 || m.buf == nil {
		return completionPopupRender{}, false
	}

	viewportWidth := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize()
	viewportHeight := m.visibleRowCount()
	if viewportWidth <= 0 || viewportHeight <= 0 {
		return completionPopupRender{}, false
	}

	anchorX, anchorY, ok := m.DocToScreen(state.Anchor)
	if !ok {
		return completionPopupRender{}, false
	}

	targetRows := min(m.cfg.CompletionMaxVisibleRows, len(state.Items))

	belowAvail := max(viewportHeight-(anchorY+1), 0)
	aboveAvail := max(anchorY, 0)
	showBelow := true
	rowCount := targetRows
	if rowCount > belowAvail {
		if aboveAvail >= rowCount {
			showBelow = false
		} else if aboveAvail > belowAvail {
			showBelow = false
			rowCount = aboveAvail
		} else {
			rowCount = belowAvail
		}
	}
	if rowCount <= 0 {
		return completionPopupRender{}, false
	}

	// Scroll the item window so the selection stays visible.
	selected := clampInt(state.Selected, 0, len(state.Items)-1)
	first := max(selected-rowCount+1, 0)
	items := state.Items[first:min(first+rowCount, len(state.Items))]

	popupWidth := 0
	for _, item := range items {
		popupWidth = max(popupWidth, completionTextCellWidth(sanitizeCompletionText(item.Label)))
	}
	popupWidth = min(popupWidth, m.cfg.CompletionMaxWidth, viewportWidth)
	if popupWidth <= 0 {
		return completionPopupRender{}, false
	}

	rendered := make([]string, 0, len(items))
	for i, item := range items {
		highlighted := state.Focused && first+i == selected
		rendered = append(rendered, m.renderCompletionPopupRow(item, highlighted, popupWidth))
	}

	y := anchorY + 1
	if !showBelow {
		y = anchorY - len(rendered)
	}
	y = clampInt(y, 0, max(viewportHeight-len(rendered), 0))
	x := clampInt(anchorX, 0, max(viewportWidth-popupWidth, 0))

	leftFrame := m.viewport.Style.GetMarginLeft() + m.viewport.Style.GetBorderLeftSize() + m.viewport.Style.GetPaddingLeft()
	topFrame := m.viewport.Style.GetMarginTop() + m.viewport.Style.GetBorderTopSize() + m.viewport.Style.GetPaddingTop()

	return completionPopupRender{
		View: overlay.Composite(
			strings.Join(rendered, "\n"),
			base,
			overlay.Left,
			overlay.Top,
			leftFrame+x,
			topFrame+y,
		),
		X:    x,
		Y:    y,
		Rows: len(rendered),
	}, true
}

func (m Model) renderCompletionPopupRow(item CompletionItem, selected bool, width int) string {
	base := completionRowBaseStyle(m.cfg.Style, selected)

	label := truncateCells(sanitizeCompletionText(item.Label), width)
	used := completionTextCellWidth(label)
	var sb strings.Builder
	sb.WriteString(base.Render(label))

	if used < width {
		sb.WriteString(base.Render(strings.Repeat(" ", width-used)))
	}
	return sb.String()
}
