package document

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWatcher(t *testing.T, path string) (*Watcher, <-chan string) {
	t.Helper()
	w, err := NewWatcher(path, 50*time.Millisecond)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	ch, err := w.Start()
	require.NoError(t, err)
	return w, ch
}

func TestWatcher_DebouncesWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.py")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	w, ch := startWatcher(t, path)

	for i := 0; i < 10; i++ {
		require.NoError(t, os.WriteFile(path, []byte(fmt.Sprintf("x%d", i)), 0o644))
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case got := <-ch:
		assert.Equal(t, w.Path(), got)
	case <-time.After(time.Second):
		t.Fatal("expected notification but got timeout")
	}

	select {
	case <-ch:
		t.Fatal("unexpected second notification")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.py")
	other := filepath.Join(dir, "b.py")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(other, []byte("y"), 0o644))
	_, ch := startWatcher(t, path)

	require.NoError(t, os.WriteFile(other, []byte("changed"), 0o644))

	select {
	case <-ch:
		t.Fatal("should not notify for other files")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestWatcher_StopDoesNotHang(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.py")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	w, err := NewWatcher(path, 0)
	require.NoError(t, err)
	_, err = w.Start()
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		assert.NoError(t, w.Stop())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop timed out")
	}
}

func TestWatcher_StopClosesChannel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.py")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	w, err := NewWatcher(path, 0)
	require.NoError(t, err)
	ch, err := w.Start()
	require.NoError(t, err)
	require.NoError(t, w.Stop())

	select {
	case _, ok := <-ch:
		require.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("channel not closed after Stop")
	}
}
