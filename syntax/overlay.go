package syntax

import "github.com/iw2rmb/scribe/buffer"

type lineTags struct {
	text string
	tags []Tag
}

// Overlay stores the tags of every line of a document.
//
// A line's tags are never patched: Retag drops them and tags the line again
// from its current text. Overlay is owned by the UI loop and is not safe for
// concurrent use.
type Overlay struct {
	tagger *Tagger
	rows   []lineTags
}

func NewOverlay(t *Tagger) *Overlay {
	return &Overlay{tagger: t}
}

// Retag clears row and reapplies tags computed from text.
func (o *Overlay) Retag(row int, text string) {
	if row < 0 {
		return
	}
	o.grow(row + 1)
	o.rows[row] = lineTags{text: text, tags: o.tagger.TagLine(text)}
}

// RetagAll clears every tag and tags lines in ascending row order.
func (o *Overlay) RetagAll(lines []string) {
	o.rows = make([]lineTags, 0, len(lines))
	for row, text := range lines {
		o.Retag(row, text)
	}
}

// Reset drops every tag.
func (o *Overlay) Reset() {
	o.rows = nil
}

// Len returns the number of rows the overlay holds.
func (o *Overlay) Len() int { return len(o.rows) }

// Tags returns the raw, possibly overlapping tags of row.
func (o *Overlay) Tags(row int) []Tag {
	if row < 0 || row >= len(o.rows) {
		return nil
	}
	return append([]Tag(nil), o.rows[row].tags...)
}

// Styled returns the non-overlapping spans of row after precedence
// flattening.
func (o *Overlay) Styled(row int) []Tag {
	if row < 0 || row >= len(o.rows) {
		return nil
	}
	return Flatten(o.rows[row].tags)
}

// TextAt returns the text row was last tagged from.
func (o *Overlay) TextAt(row int) (string, bool) {
	if row < 0 || row >= len(o.rows) {
		return "", false
	}
	return o.rows[row].text, true
}

// Sync brings the overlay up to date with a buffer change. Rows inserted or
// removed by each edit are shifted so no tag stays on the wrong line, then
// every row the edit touched is retagged from lineAt.
func (o *Overlay) Sync(ch buffer.Change, lineAt func(row int) string) {
	for _, e := range ch.AppliedEdits {
		before := buffer.NormalizeRange(e.RangeBefore)
		after := buffer.NormalizeRange(e.RangeAfter)
		o.shift(before.Start.Row, e.LineDelta())
		for row := after.Start.Row; row <= after.End.Row; row++ {
			o.Retag(row, lineAt(row))
		}
	}
}

// shift inserts (delta > 0) or removes (delta < 0) rows right after row.
func (o *Overlay) shift(row, delta int) {
	if delta == 0 || row < 0 {
		return
	}
	o.grow(row + 1)
	if delta > 0 {
		ins := make([]lineTags, delta)
		rest := append(ins, o.rows[row+1:]...)
		o.rows = append(o.rows[:row+1], rest...)
		return
	}
	end := min(row+1-delta, len(o.rows))
	o.rows = append(o.rows[:row+1], o.rows[end:]...)
}

func (o *Overlay) grow(n int) {
	if len(o.rows) < n {
		o.rows = append(o.rows, make([]lineTags, n-len(o.rows))...)
	}
}

// Flatten resolves overlapping tags into sorted, non-overlapping spans.
// Where tags overlap, the larger Category wins.
func Flatten(tags []Tag) []Tag {
	if len(tags) == 0 {
		return nil
	}
	width := 0
	for _, t := range tags {
		width = max(width, t.EndCol)
	}
	best := make([]int, width)
	for i := range best {
		best[i] = -1
	}
	for _, t := range tags {
		for c := max(t.StartCol, 0); c < t.EndCol; c++ {
			best[c] = max(best[c], int(t.Category))
		}
	}

	var out []Tag
	for c := 0; c < width; {
		if best[c] < 0 {
			c++
			continue
		}
		start, cat := c, best[c]
		for c < width && best[c] == cat {
			c++
		}
		out = append(out, Tag{StartCol: start, EndCol: c, Category: Category(cat)})
	}
	return out
}
