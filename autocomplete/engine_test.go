package autocomplete

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var defaultWords = []string{
	"def", "import", "if", "elif", "else", "while", "for", "try", "except",
	"print", "True", "False", "self", "None",
}

func TestEngine_Candidates(t *testing.T) {
	e := NewEngine(defaultWords)

	tests := []struct {
		partial string
		want    []string
	}{
		{partial: "pri", want: []string{"print"}},
		{partial: "print", want: nil},
		{partial: "", want: nil},
		{partial: "e", want: []string{"elif", "else", "except"}},
		{partial: "T", want: []string{"True"}},
		{partial: "t", want: []string{"try"}},
		{partial: "zz", want: nil},
		{partial: "printer", want: nil},
	}
	for _, tc := range tests {
		t.Run(tc.partial, func(t *testing.T) {
			require.Equal(t, tc.want, e.Candidates(tc.partial))
		})
	}
}

func TestEngine_CandidatesAreMemoizedCopies(t *testing.T) {
	e := NewEngine(defaultWords)

	first := e.Candidates("el")
	require.Equal(t, []string{"elif", "else"}, first)
	first[0] = "mutated"

	require.Equal(t, []string{"elif", "else"}, e.Candidates("el"))
}

func TestEngine_Suffix(t *testing.T) {
	e := NewEngine(defaultWords)

	require.Equal(t, "nt", e.Suffix("print", "pri"))
	require.Equal(t, "", e.Suffix("print", "print"))
	require.Equal(t, "", e.Suffix("print", "x"))
}

func TestEngine_KeepsItsOwnWordList(t *testing.T) {
	words := []string{"alpha", "beta"}
	e := NewEngine(words)
	words[0] = "gamma"

	require.Equal(t, []string{"alpha"}, e.Candidates("al"))
	require.Empty(t, e.Candidates("ga"))
}
