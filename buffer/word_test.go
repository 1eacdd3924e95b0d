package buffer

import "testing"

func TestBuffer_WordBeforeCursor(t *testing.T) {
	cases := []struct {
		name      string
		line      string
		col       int
		wantWord  string
		wantStart int
		wantOK    bool
	}{
		{name: "partial keyword", line: "x = pri", col: 7, wantWord: "pri", wantStart: 4, wantOK: true},
		{name: "mid word", line: "print", col: 3, wantWord: "pri", wantStart: 0, wantOK: true},
		{name: "column zero", line: "print", col: 0, wantStart: 0},
		{name: "after space", line: "def ", col: 4, wantStart: 4},
		{name: "after paren", line: "print(", col: 6, wantStart: 6},
		{name: "decorator stops at at-sign", line: "@prop", col: 5, wantWord: "prop", wantStart: 1, wantOK: true},
		{name: "underscore and digits", line: "a_1", col: 3, wantWord: "a_1", wantStart: 0, wantOK: true},
	}

	for _, tc := range cases {
		b := New(tc.line, Options{})
		b.SetCursor(Pos{Row: 0, Col: tc.col})

		word, start, ok := b.WordBeforeCursor()
		if word != tc.wantWord || ok != tc.wantOK || start != (Pos{Row: 0, Col: tc.wantStart}) {
			t.Fatalf("%s: got (%q, %v, %v), want (%q, %v, %v)",
				tc.name, word, start, ok, tc.wantWord, Pos{Row: 0, Col: tc.wantStart}, tc.wantOK)
		}
	}
}

func TestBuffer_WordBefore_UsesRequestedRow(t *testing.T) {
	b := New("import\nwhi", Options{})
	word, start, ok := b.WordBefore(Pos{Row: 1, Col: 3})
	if !ok || word != "whi" || start != (Pos{Row: 1, Col: 0}) {
		t.Fatalf("got (%q, %v, %v)", word, start, ok)
	}
}
