package log

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	ts := time.Date(2026, 1, 2, 10, 45, 0, 0, time.UTC)

	got := format(ts, LevelError, CatFile, "save failed", []any{"path", "a.py", "bytes", 12})
	require.Equal(t, "2026-01-02T10:45:00 [ERROR] [file] save failed path=a.py bytes=12\n", got)

	got = format(ts, LevelInfo, CatUI, "odd", []any{"orphan"})
	require.Equal(t, "2026-01-02T10:45:00 [INFO] [ui] odd orphan=<missing>\n", got)
}

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(nil) })

	SetMinLevel(LevelWarn)
	Debug(CatTagger, "hidden")
	Info(CatTagger, "hidden")
	Warn(CatTagger, "shown")
	ErrorErr(CatFile, "boom", errors.New("disk full"))

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "[WARN] [tagger] shown")
	require.Contains(t, out, "[ERROR] [file] boom error=disk full")
}

func TestSetEnabled(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(nil) })

	SetEnabled(false)
	Info(CatUI, "muted")
	require.Empty(t, buf.String())

	SetEnabled(true)
	Info(CatUI, "loud")
	require.Contains(t, buf.String(), "loud")
}

func TestNoLoggerIsNoop(t *testing.T) {
	SetOutput(nil)
	require.NotPanics(t, func() {
		Info(CatUI, "nobody listens")
		SetMinLevel(LevelError)
		SetEnabled(true)
	})
}

func TestInitWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scribe.log")

	cleanup, err := Init(path)
	require.NoError(t, err)
	Info(CatConfig, "loaded", "path", "scribe.yaml")
	cleanup()

	// Closed logger is uninstalled.
	Info(CatConfig, "after close")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, 1, strings.Count(string(data), "\n"))
	require.Contains(t, string(data), "[INFO] [config] loaded path=scribe.yaml")
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]Level{"debug": LevelDebug, "INFO": LevelInfo, "warning": LevelWarn, " error ": LevelError} {
		got, ok := ParseLevel(in)
		require.True(t, ok, in)
		require.Equal(t, want, got, in)
	}
	_, ok := ParseLevel("loud")
	require.False(t, ok)
	require.Equal(t, "UNKNOWN", Level(9).String())
}
