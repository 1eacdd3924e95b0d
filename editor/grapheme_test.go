package editor

import "testing"

func TestLayoutLine(t *testing.T) {
	l := layoutLine([]string{"a", "\t", "界", "é"}, 4)

	if got := l.cells(); got != 7 {
		t.Fatalf("cells: got %d, want 7", got)
	}
	wantStart := []int{0, 1, 4, 6, 7}
	for i, want := range wantStart {
		if l.startCell[i] != want {
			t.Fatalf("startCell[%d]: got %d, want %d", i, l.startCell[i], want)
		}
	}

	for cell, want := range map[int]int{-1: 0, 0: 0, 1: 1, 3: 1, 4: 2, 5: 2, 6: 3, 7: 4, 30: 4} {
		if got := l.colForCell(cell); got != want {
			t.Fatalf("colForCell(%d): got %d, want %d", cell, got, want)
		}
	}
	if got := l.cellForCol(99); got != 7 {
		t.Fatalf("cellForCol past end: got %d, want 7", got)
	}
}

func TestTabAdvance(t *testing.T) {
	for _, tc := range []struct{ col, width, want int }{
		{0, 4, 4},
		{1, 4, 3},
		{4, 4, 4},
		{2, 0, 2},
	} {
		if got := tabAdvance(tc.col, tc.width); got != tc.want {
			t.Fatalf("tabAdvance(%d,%d): got %d, want %d", tc.col, tc.width, got, tc.want)
		}
	}
}

func TestTruncateCells(t *testing.T) {
	if got := truncateCells("abcdef", 3); got != "abc" {
		t.Fatalf("ascii: got %q", got)
	}
	if got := truncateCells("a界b", 2); got != "a " {
		t.Fatalf("wide straddle: got %q", got)
	}
	if got := truncateCells("abc", 0); got != "" {
		t.Fatalf("zero width: got %q", got)
	}
	if got := sanitizeCompletionText("a\nb\tc"); got != "abc" {
		t.Fatalf("sanitize: got %q", got)
	}
}
