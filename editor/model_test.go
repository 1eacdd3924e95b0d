package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func TestModel_SetSizeAffectsViewHeight(t *testing.T) {
	m := New(Config{Text: "a\nb\nc"})
	m = m.Blur()

	m = m.SetSize(20, 2)
	if got := lipgloss.Height(m.View()); got != 2 {
		t.Fatalf("height after SetSize(20,2): got %d, want %d", got, 2)
	}

	m, _ = m.Update(tea.WindowSizeMsg{Width: 20, Height: 4})
	if got := lipgloss.Height(m.View()); got != 4 {
		t.Fatalf("height after resize to 4: got %d, want %d", got, 4)
	}
}

func TestView_SnapshotFixedSize(t *testing.T) {
	m := New(Config{
		Text:         "one\ntwo\nthree\nfour\nfive",
		ShowLineNums: true,
	})
	m = m.Blur()
	m = m.SetSize(8, 3)

	assertLines(t, viewLines(m), []string{
		"1 one",
		"2 two",
		"3 three",
	})
}

func TestModel_FollowsCursorVertically(t *testing.T) {
	m := New(Config{Text: "0\n1\n2\n3\n4"})
	m = m.SetSize(5, 2)

	for i := 0; i < 4; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if got := m.ViewportState().TopRow; got != 3 {
		t.Fatalf("top row: got %d, want 3", got)
	}
	m = m.Blur()
	assertLines(t, viewLines(m), []string{"3", "4"})
}

func TestModel_FollowsCursorHorizontally(t *testing.T) {
	m := New(Config{Text: "abcdefghij"})
	m = m.SetSize(4, 1)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	if got := m.ViewportState().LeftCellOffset; got != 7 {
		t.Fatalf("left offset: got %d, want 7", got)
	}
	m = m.Blur()
	assertLines(t, viewLines(m), []string{"hij"})
}

func TestModel_SyncAfterHostMutationDoesNotEmitChange(t *testing.T) {
	calls := 0
	m := New(Config{
		Text:     "old",
		OnChange: func(ChangeEvent) { calls++ },
	})

	m.Buffer().SetText("new\ntext")
	m = m.Sync()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})

	if calls != 0 {
		t.Fatalf("OnChange calls: got %d, want 0", calls)
	}
	m = m.Blur()
	m = m.SetSize(10, 2)
	assertLines(t, viewLines(m), []string{"new", "text"})
}
