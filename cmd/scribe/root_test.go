package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/scribe"
	"github.com/iw2rmb/scribe/internal/app"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func stubProgram(t *testing.T) *[]app.Model {
	t.Helper()
	var started []app.Model
	orig := runProgram
	runProgram = func(m app.Model) error {
		started = append(started, m)
		return m.Close()
	}
	t.Cleanup(func() { runProgram = orig })
	return &started
}

func TestVersionFlag(t *testing.T) {
	out, err := execute(t, "--version")
	require.NoError(t, err)
	require.Equal(t, "scribe "+scribe.Describe("", "")+"\n", out)
}

func TestRun_OpensPositionalFile(t *testing.T) {
	started := stubProgram(t)
	path := filepath.Join(t.TempDir(), "a.py")
	require.NoError(t, os.WriteFile(path, []byte("import os\n"), 0o644))

	_, err := execute(t, path)
	require.NoError(t, err)
	require.Len(t, *started, 1)
	require.Equal(t, "import os\n", (*started)[0].Editor().Buffer().Text())
}

func TestRun_TooManyArgs(t *testing.T) {
	stubProgram(t)
	_, err := execute(t, "a.py", "b.py")
	require.Error(t, err)
}

func TestRun_InvalidConfigFails(t *testing.T) {
	started := stubProgram(t)
	cfgPath := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("editor:\n  tab_width: -1\n"), 0o600))

	_, err := execute(t, "--config", cfgPath)
	require.Error(t, err)
	require.Contains(t, err.Error(), "tab_width")
	require.Empty(t, *started)
}

func TestRun_DebugWritesLog(t *testing.T) {
	stubProgram(t)
	logPath := filepath.Join(t.TempDir(), "scribe.log")

	_, err := execute(t, "--debug", "--log-file", logPath)
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "[INFO] [ui] starting")
}

func TestConfigCommands(t *testing.T) {
	out, err := execute(t, "config", "default")
	require.NoError(t, err)
	require.Contains(t, out, "tab_width: 4")

	path := filepath.Join(t.TempDir(), "scribe.yaml")
	out, err = execute(t, "config", "init", path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "wrote "))

	out, err = execute(t, "config", "check", path)
	require.NoError(t, err)
	require.Equal(t, "ok\n", out)

	out, err = execute(t, "--config", path, "config", "check")
	require.NoError(t, err)
	require.Equal(t, "ok\n", out)
}
