package buffer

import "testing"

func TestBuffer_UndoRedo_BasicTyping(t *testing.T) {
	b := New("", Options{})
	if b.CanUndo() || b.CanRedo() {
		t.Fatalf("expected empty history")
	}

	b.InsertText("a")
	v := b.Version()
	if ok := b.Undo(); !ok {
		t.Fatalf("expected Undo=true")
	}
	if got := b.Text(); got != "" {
		t.Fatalf("text=%q, want empty", got)
	}
	if got := b.Version(); got != v+1 {
		t.Fatalf("version=%d, want %d", got, v+1)
	}

	if ok := b.Redo(); !ok {
		t.Fatalf("expected Redo=true")
	}
	if got, want := b.Text(), "a"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, Col: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_UndoRedo_EmptyStacks_NoMutation(t *testing.T) {
	b := New("hi", Options{})
	v := b.Version()
	if b.Undo() || b.Redo() {
		t.Fatalf("expected no history")
	}
	if b.Version() != v {
		t.Fatalf("version changed on empty history")
	}
}

func TestBuffer_NewEditClearsRedo(t *testing.T) {
	b := New("", Options{})
	b.InsertText("a")
	b.Undo()
	if !b.CanRedo() {
		t.Fatalf("expected redo available")
	}
	b.InsertText("b")
	if b.CanRedo() {
		t.Fatalf("expected redo cleared by new edit")
	}
}

func TestBuffer_HistoryLimit(t *testing.T) {
	b := New("", Options{HistoryLimit: 2})
	b.InsertText("a")
	b.InsertText("b")
	b.InsertText("c")

	if !b.Undo() || !b.Undo() {
		t.Fatalf("expected two undo steps")
	}
	if b.Undo() {
		t.Fatalf("expected history capped at 2")
	}
	if got, want := b.Text(), "a"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestBuffer_NegativeHistoryLimitDisablesUndo(t *testing.T) {
	b := New("", Options{HistoryLimit: -1})
	b.InsertText("a")
	if b.CanUndo() {
		t.Fatalf("expected undo disabled")
	}
}
