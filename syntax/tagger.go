package syntax

import (
	"regexp"
	"sort"
	"strings"

	"github.com/iw2rmb/scribe/internal/grapheme"
)

var (
	numberRe       = regexp.MustCompile(`^\d*\.*\d`)
	doubleStringRe = regexp.MustCompile(`"[^"\r\n]*"`)
	singleStringRe = regexp.MustCompile(`'[^'\r\n]*'`)
)

// stripChars are trimmed from both ends of a token before keyword lookup.
const stripChars = "():,"

// Tagger computes tags for single lines.
type Tagger struct {
	lex *Lexicon
}

func NewTagger(lex *Lexicon) *Tagger {
	return &Tagger{lex: lex}
}

// TagLine returns the tags of one line, sorted by start column then category.
// Tags may overlap; see Flatten.
func (t *Tagger) TagLine(line string) []Tag {
	if strings.TrimSpace(line) == "" {
		return nil
	}

	clusters := grapheme.Split(line)
	var tags []Tag

	for _, w := range words(clusters) {
		if cat, ok := t.lex.Classify(w.text); ok {
			tags = append(tags, Tag{StartCol: w.start, EndCol: w.end, Category: cat})
			continue
		}
		if strings.HasPrefix(w.text, "@") {
			tags = append(tags, Tag{StartCol: w.start, EndCol: w.end, Category: Decorator})
		}
	}

	cols := grapheme.ByteColumns(line)
	for _, m := range numberMatches(line) {
		tags = append(tags, Tag{StartCol: cols[m[0]], EndCol: endCol(cols, m[1]), Category: IntegerLiteral})
	}
	for _, re := range []*regexp.Regexp{doubleStringRe, singleStringRe} {
		for _, m := range re.FindAllStringIndex(line, -1) {
			tags = append(tags, Tag{StartCol: cols[m[0]], EndCol: endCol(cols, m[1]), Category: StringLiteral})
		}
	}

	sort.SliceStable(tags, func(i, j int) bool {
		if tags[i].StartCol != tags[j].StartCol {
			return tags[i].StartCol < tags[j].StartCol
		}
		return tags[i].Category < tags[j].Category
	})
	return tags
}

// endCol converts an exclusive byte offset to an exclusive column. An offset
// inside a cluster extends to the end of that cluster.
func endCol(cols []int, off int) int {
	if off > 0 && cols[off-1] == cols[off] {
		return cols[off] + 1
	}
	return cols[off]
}

// numberMatches returns byte spans of numeric literals. A literal may not
// follow a lowercase ASCII letter, so identifiers like x1 are not tagged.
func numberMatches(line string) [][2]int {
	var out [][2]int
	for i := 0; i < len(line); {
		if i > 0 && line[i-1] >= 'a' && line[i-1] <= 'z' {
			i++
			continue
		}
		loc := numberRe.FindStringIndex(line[i:])
		if loc == nil {
			i++
			continue
		}
		out = append(out, [2]int{i, i + loc[1]})
		i += loc[1]
	}
	return out
}

type word struct {
	text       string
	start, end int
}

// words splits clusters into whitespace-delimited tokens, trims stripChars
// from each token and splits what remains at any inner stripChars.
func words(clusters []string) []word {
	var out []word
	for col := 0; col < len(clusters); {
		if grapheme.IsSpace(clusters[col]) {
			col++
			continue
		}
		start := col
		for col < len(clusters) && !grapheme.IsSpace(clusters[col]) {
			col++
		}
		out = appendPieces(out, clusters, start, col)
	}
	return out
}

func appendPieces(out []word, clusters []string, start, end int) []word {
	for start < end && isStrip(clusters[start]) {
		start++
	}
	for end > start && isStrip(clusters[end-1]) {
		end--
	}
	from := start
	for col := start; col <= end; col++ {
		if col < end && !isStrip(clusters[col]) {
			continue
		}
		if col > from {
			out = append(out, word{text: grapheme.Join(clusters[from:col]), start: from, end: col})
		}
		from = col + 1
	}
	return out
}

func isStrip(cluster string) bool {
	return len(cluster) == 1 && strings.Contains(stripChars, cluster)
}
