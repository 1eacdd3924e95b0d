package editor

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	graphemeutil "github.com/iw2rmb/scribe/internal/grapheme"
)

// lineLayout maps a line's grapheme columns to terminal cells.
type lineLayout struct {
	clusters []string
	// startCell[i] is the first cell of cluster i; startCell[len] is the
	// total width.
	startCell []int
	// width[i] is the cell width of cluster i.
	width []int
}

func layoutLine(clusters []string, tabWidth int) lineLayout {
	l := lineLayout{
		clusters:  clusters,
		startCell: make([]int, len(clusters)+1),
		width:     make([]int, len(clusters)),
	}
	cell := 0
	for i, c := range clusters {
		w := graphemeCellWidth(c, cell, tabWidth)
		if w < 1 {
			w = 1
		}
		l.startCell[i] = cell
		l.width[i] = w
		cell += w
	}
	l.startCell[len(clusters)] = cell
	return l
}

func (l lineLayout) cells() int { return l.startCell[len(l.clusters)] }

// cellForCol returns the first cell of col; col == len maps to the EOL cell.
func (l lineLayout) cellForCol(col int) int {
	return l.startCell[clampInt(col, 0, len(l.clusters))]
}

// colForCell returns the column whose cells contain cell. Cells past the
// end map to EOL.
func (l lineLayout) colForCell(cell int) int {
	if cell <= 0 {
		return 0
	}
	for i := range l.clusters {
		if cell < l.startCell[i]+l.width[i] {
			return i
		}
	}
	return len(l.clusters)
}

func sliceCols(text string, start, end int) string {
	return graphemeutil.Slice(text, start, end)
}

func graphemeCellWidth(text string, visualCol, tabWidth int) int {
	if text == "\t" {
		return tabAdvance(visualCol, tabWidth)
	}

	w := runewidth.StringWidth(text)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		fallback := uniseg.StringWidth(text)
		if fallback > w {
			w = fallback
		}
	}
	return w
}

func tabAdvance(visualCol, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = defaultTabWidth
	}
	return tabWidth - visualCol%tabWidth
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
