// Package grapheme wraps uniseg for the column model shared by buffer,
// syntax and editor: one column is one grapheme cluster.
package grapheme

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Slice returns the grapheme-safe substring for columns [start, end).
func Slice(text string, start, end int) string {
	if text == "" {
		return ""
	}
	if start < 0 {
		start = 0
	}
	if end < start {
		end = start
	}

	g := uniseg.NewGraphemes(text)
	idx := 0
	var sb strings.Builder
	for g.Next() {
		if idx >= end {
			break
		}
		if idx >= start {
			sb.WriteString(g.Str())
		}
		idx++
	}
	return sb.String()
}

// Join concatenates grapheme clusters into a single string.
func Join(clusters []string) string {
	return strings.Join(clusters, "")
}

// ByteColumns maps every byte offset of text (including len(text)) to the
// column of the cluster that starts at or contains it.
//
// Regexp match offsets are bytes; callers use this to turn them into columns.
func ByteColumns(text string) []int {
	cols := make([]int, len(text)+1)
	g := uniseg.NewGraphemes(text)
	col := 0
	for g.Next() {
		from, to := g.Positions()
		for i := from; i < to; i++ {
			cols[i] = col
		}
		col++
	}
	cols[len(text)] = col
	return cols
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsWord reports whether cluster starts with a letter, digit or underscore.
// Combining marks ride along with their base rune.
func IsWord(cluster string) bool {
	for _, r := range cluster {
		return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
	}
	return false
}
