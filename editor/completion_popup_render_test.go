package editor

import (
	"testing"
)

func TestCompletionPopupRender_BelowAnchor(t *testing.T) {
	m := New(Config{Text: "000000\n111111\n222222"})
	m = m.Blur()
	m = m.SetSize(6, 3)
	m = m.SetCompletionState(CompletionState{
		Visible: true,
		Anchor:  bufferPos(0, 1),
		Items: []CompletionItem{
			{ID: "0", Label: "abc"},
			{ID: "1", Label: "xyz"},
		},
	})

	assertLines(t, viewLines(m), []string{"000000", "1abc11", "2xyz22"})
}

func TestCompletionPopupRender_FlipsAboveWhenNoSpaceBelow(t *testing.T) {
	m := New(Config{Text: "000000\n111111\n222222"})
	m = m.Blur()
	m = m.SetSize(6, 3)
	m = m.SetCompletionState(CompletionState{
		Visible: true,
		Anchor:  bufferPos(2, 2),
		Items: []CompletionItem{
			{ID: "0", Label: "ab"},
			{ID: "1", Label: "cd"},
		},
	})

	assertLines(t, viewLines(m), []string{"00ab00", "11cd11", "222222"})
}

func TestCompletionPopupRender_AccountsForGutter(t *testing.T) {
	m := New(Config{Text: "pri\nxxxxxx", ShowLineNums: true})
	m = m.Blur()
	m = m.SetSize(10, 2)
	m = m.SetCompletionState(CompletionState{
		Visible: true,
		Anchor:  bufferPos(0, 3),
		Items:   []CompletionItem{{ID: "print", Label: "print"}},
	})

	assertLines(t, viewLines(m), []string{"1 pri", "2 xxxprint"})
}

func TestCompletionPopupRender_HidesWhenAnchorIsOffscreen(t *testing.T) {
	m := New(Config{Text: "000000\n111111\n222222\n333333"})
	m = m.Blur()
	m = m.SetSize(6, 2)
	m.viewport.SetYOffset(2)

	base := stripANSI(m.View())

	m = m.SetCompletionState(CompletionState{
		Visible: true,
		Anchor:  bufferPos(0, 0),
		Items:   []CompletionItem{{ID: "0", Label: "abc"}},
	})

	if got := stripANSI(m.View()); got != base {
		t.Fatalf("offscreen anchor popup should not render:\n got: %q\nwant: %q", got, base)
	}
}

func TestCompletionPopupRender_ClampWidthAndRows(t *testing.T) {
	m := New(Config{
		Text:                     "000000\n111111\n222222\n333333",
		CompletionMaxVisibleRows: 2,
		CompletionMaxWidth:       4,
	})
	m = m.Blur()
	m = m.SetSize(6, 4)
	m = m.SetCompletionState(CompletionState{
		Visible: true,
		Anchor:  bufferPos(0, 5),
		Items: []CompletionItem{
			{ID: "0", Label: "abcdef"},
			{ID: "1", Label: "ghijkl"},
			{ID: "2", Label: "mnopqr"},
		},
	})

	assertLines(t, viewLines(m), []string{"000000", "11abcd", "22ghij", "333333"})
}

func TestCompletionPopupRender_ScrollsToSelection(t *testing.T) {
	m := New(Config{
		Text:                     "0000\n1111\n2222",
		CompletionMaxVisibleRows: 2,
	})
	m = m.Blur()
	m = m.SetSize(4, 3)
	m = m.SetCompletionState(CompletionState{
		Visible:  true,
		Focused:  true,
		Anchor:   bufferPos(0, 0),
		Selected: 2,
		Items: []CompletionItem{
			{ID: "0", Label: "aa"},
			{ID: "1", Label: "bb"},
			{ID: "2", Label: "cc"},
		},
	})

	assertLines(t, viewLines(m), []string{"0000", "bb11", "cc22"})
}
