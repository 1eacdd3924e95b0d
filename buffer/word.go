package buffer

import "github.com/iw2rmb/scribe/internal/grapheme"

// WordBeforeCursor returns the word that ends at the cursor and the position
// where it starts.
//
// The word is the run of word clusters (letters, digits, underscore) that
// contains the column just before the cursor. ok is false when the cursor is
// at column 0 or the cluster before it is not a word cluster.
func (b *Buffer) WordBeforeCursor() (word string, start Pos, ok bool) {
	return b.WordBefore(b.cursor)
}

// WordBefore is WordBeforeCursor for an arbitrary position.
func (b *Buffer) WordBefore(p Pos) (word string, start Pos, ok bool) {
	p = b.clampPos(p)
	if p.Col == 0 {
		return "", p, false
	}
	line := b.lines[p.Row]
	from := wordStart(line, p.Col-1)
	if from == p.Col {
		return "", p, false
	}
	return grapheme.Join(line[from:p.Col]), Pos{Row: p.Row, Col: from}, true
}

// wordStart returns the first column of the word run containing col, or
// col+1 when the cluster at col is not part of a word.
func wordStart(line []string, col int) int {
	if col < 0 || col >= len(line) || !grapheme.IsWord(line[col]) {
		return col + 1
	}
	for col > 0 && grapheme.IsWord(line[col-1]) {
		col--
	}
	return col
}
