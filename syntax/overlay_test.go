package syntax

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/scribe/buffer"
	"github.com/iw2rmb/scribe/editor"
)

func TestFlatten_LaterCategoryWins(t *testing.T) {
	got := Flatten([]Tag{
		{StartCol: 0, EndCol: 5, Category: KeywordDeclaration},
		{StartCol: 2, EndCol: 3, Category: IntegerLiteral},
	})
	require.Equal(t, []Tag{
		{StartCol: 0, EndCol: 2, Category: KeywordDeclaration},
		{StartCol: 2, EndCol: 3, Category: IntegerLiteral},
		{StartCol: 3, EndCol: 5, Category: KeywordDeclaration},
	}, got)

	require.Equal(t, []Tag{{StartCol: 4, EndCol: 7, Category: StringLiteral}}, Flatten([]Tag{
		{StartCol: 4, EndCol: 7, Category: StringLiteral},
		{StartCol: 5, EndCol: 6, Category: IntegerLiteral},
	}))
	require.Nil(t, Flatten(nil))
}

func TestOverlay_RetagClearsPreviousTags(t *testing.T) {
	o := NewOverlay(NewTagger(testLexicon()))

	o.Retag(0, "def f(): return 1")
	require.Len(t, o.Tags(0), 2)

	o.Retag(0, "x")
	require.Empty(t, o.Tags(0))

	o.Retag(3, "print")
	require.Equal(t, 4, o.Len())
	require.Empty(t, o.Tags(1))
	require.Equal(t, []Tag{{StartCol: 0, EndCol: 5, Category: KeywordBuiltin}}, o.Tags(3))

	o.Reset()
	require.Equal(t, 0, o.Len())
	require.Nil(t, o.Tags(3))
}

func TestOverlay_SyncShiftsRowsOnNewline(t *testing.T) {
	b := buffer.New("def a\nx = 1", buffer.Options{})
	o := NewOverlay(NewTagger(testLexicon()))
	o.RetagAll(b.Lines())

	b.InsertNewline()
	ch, ok := b.LastChange()
	require.True(t, ok)
	o.Sync(ch, b.Line)

	require.Equal(t, 3, o.Len())
	require.Empty(t, o.Tags(0))
	require.Equal(t, []Tag{{StartCol: 0, EndCol: 3, Category: KeywordDeclaration}}, o.Tags(1))
	require.Equal(t, []Tag{{StartCol: 4, EndCol: 5, Category: IntegerLiteral}}, o.Tags(2))
}

func TestOverlay_SyncDropsJoinedRows(t *testing.T) {
	b := buffer.New("a\ndef b\nc = 2", buffer.Options{})
	o := NewOverlay(NewTagger(testLexicon()))
	o.RetagAll(b.Lines())

	b.SetSelection(buffer.Range{Start: buffer.Pos{Row: 0, Col: 1}, End: buffer.Pos{Row: 1, Col: 0}})
	b.DeleteSelection()
	ch, _ := b.LastChange()
	o.Sync(ch, b.Line)

	require.Equal(t, 2, o.Len())
	require.Empty(t, o.Tags(0), "adef is not a keyword")
	require.Equal(t, []Tag{{StartCol: 4, EndCol: 5, Category: IntegerLiteral}}, o.Tags(1))
}

func TestOverlay_SyncAfterLoadRetagsEverything(t *testing.T) {
	b := buffer.New("print", buffer.Options{})
	o := NewOverlay(NewTagger(testLexicon()))
	o.RetagAll(b.Lines())

	b.SetText("x\nif y:\nNone")
	ch, _ := b.LastChange()
	o.Sync(ch, b.Line)

	require.Equal(t, 3, o.Len())
	require.Empty(t, o.Tags(0))
	require.Equal(t, KeywordControlFlow, o.Tags(1)[0].Category)
	require.Equal(t, KeywordLiteral, o.Tags(2)[0].Category)
}

func TestHighlighter_MapsCategoriesToThemeStyles(t *testing.T) {
	o := NewOverlay(NewTagger(testLexicon()))
	builtin := lipgloss.NewStyle().Foreground(lipgloss.Color("#A9A9A9"))
	str := lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	h := NewHighlighter(o, Theme{KeywordBuiltin: builtin, StringLiteral: str})

	spans, err := h.HighlightLine(editor.LineContext{Row: 0, Text: `print("hi")`})
	require.NoError(t, err)
	require.Equal(t, []editor.HighlightSpan{
		{StartCol: 0, EndCol: 5, Style: builtin},
		{StartCol: 6, EndCol: 10, Style: str},
	}, spans)

	// Categories missing from the theme render plain.
	spans, err = h.HighlightLine(editor.LineContext{Row: 0, Text: "def"})
	require.NoError(t, err)
	require.Empty(t, spans)
}
