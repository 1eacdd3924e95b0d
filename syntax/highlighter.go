package syntax

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/scribe/editor"
)

// Theme maps categories to render styles.
type Theme map[Category]lipgloss.Style

// Highlighter feeds an Overlay's tags to the editor.
//
// When the editor asks for a line whose text differs from what the overlay
// last saw, the line is retagged first, so a missed Sync never shows stale
// tags.
type Highlighter struct {
	overlay *Overlay
	theme   Theme
}

func NewHighlighter(o *Overlay, theme Theme) *Highlighter {
	return &Highlighter{overlay: o, theme: theme}
}

func (h *Highlighter) HighlightLine(ctx editor.LineContext) ([]editor.HighlightSpan, error) {
	if text, ok := h.overlay.TextAt(ctx.Row); !ok || text != ctx.Text {
		h.overlay.Retag(ctx.Row, ctx.Text)
	}

	styled := h.overlay.Styled(ctx.Row)
	spans := make([]editor.HighlightSpan, 0, len(styled))
	for _, t := range styled {
		st, ok := h.theme[t.Category]
		if !ok {
			continue
		}
		spans = append(spans, editor.HighlightSpan{StartCol: t.StartCol, EndCol: t.EndCol, Style: st})
	}
	return spans, nil
}
