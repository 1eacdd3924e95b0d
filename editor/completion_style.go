package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	graphemeutil "github.com/iw2rmb/scribe/internal/grapheme"
)

func completionRowBaseStyle(st Style, selected bool) lipgloss.Style {
	if selected {
		return st.CompletionSelected
	}
	return st.CompletionItem
}

// truncateCells cuts text to at most width cells. A wide grapheme that
// would straddle the limit is replaced with padding.
func truncateCells(text string, width int) string {
	if width <= 0 {
		return ""
	}
	var sb strings.Builder
	used := 0
	for _, gr := range graphemeutil.Split(text) {
		w := max(graphemeCellWidth(gr, used, defaultTabWidth), 1)
		if used+w > width {
			sb.WriteString(strings.Repeat(" ", width-used))
			break
		}
		sb.WriteString(gr)
		used += w
	}
	return sb.String()
}

func completionTextCellWidth(text string) int {
	used := 0
	for _, gr := range graphemeutil.Split(text) {
		used += max(graphemeCellWidth(gr, used, defaultTabWidth), 1)
	}
	return used
}

// sanitizeCompletionText drops line breaks and control characters.
func sanitizeCompletionText(s string) string {
	if s == "" {
		return ""
	}
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}
