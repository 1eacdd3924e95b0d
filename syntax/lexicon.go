package syntax

// Words holds the keyword lists a Lexicon is built from.
type Words struct {
	Declaration []string
	Literal     []string
	ControlFlow []string
	Builtin     []string
}

// Lexicon classifies words into keyword categories. It is read-only after
// NewLexicon returns and safe to share.
type Lexicon struct {
	sets []keywordSet
}

type keywordSet struct {
	cat   Category
	words map[string]struct{}
}

// NewLexicon builds a lexicon. Lookup priority is declaration, literal,
// control flow, then builtin, so a word present in several lists gets the
// earliest category.
func NewLexicon(w Words) *Lexicon {
	return &Lexicon{sets: []keywordSet{
		newKeywordSet(KeywordDeclaration, w.Declaration),
		newKeywordSet(KeywordLiteral, w.Literal),
		newKeywordSet(KeywordControlFlow, w.ControlFlow),
		newKeywordSet(KeywordBuiltin, w.Builtin),
	}}
}

func newKeywordSet(cat Category, words []string) keywordSet {
	set := keywordSet{cat: cat, words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		set.words[w] = struct{}{}
	}
	return set
}

// Classify returns the keyword category of word, if any.
func (l *Lexicon) Classify(word string) (Category, bool) {
	if l == nil {
		return 0, false
	}
	for _, set := range l.sets {
		if _, ok := set.words[word]; ok {
			return set.cat, true
		}
	}
	return 0, false
}
