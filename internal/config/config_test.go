package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/scribe/syntax"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scribe.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	require.Equal(t, 4, cfg.Editor.TabWidth)
	require.True(t, cfg.Editor.ShowLineNumbers)
	require.Equal(t, "    ", cfg.IndentText())
	require.Equal(t, []string{"import", "def", "try", "except", "self"}, cfg.Keywords.Declaration)
	require.Len(t, cfg.Completion.Words, 14)
	require.NoError(t, cfg.Validate())
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Defaults(), cfg)
}

func TestLoad_OverridesReplaceLists(t *testing.T) {
	path := writeConfig(t, `
editor:
  tab_width: 2
keywords:
  builtin: [len]
completion:
  words: [lambda, len]
theme:
  string: "#123456"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, 2, cfg.Editor.TabWidth)
	require.True(t, cfg.Editor.ShowLineNumbers, "unset keys keep their defaults")
	require.Equal(t, []string{"len"}, cfg.Keywords.Builtin)
	require.Equal(t, Defaults().Keywords.Literal, cfg.Keywords.Literal)
	require.Equal(t, []string{"lambda", "len"}, cfg.Completion.Words)
	require.Equal(t, "#123456", cfg.Theme.String)
	require.Equal(t, "#FFA500", cfg.Theme.Declaration)
	require.Equal(t, "  ", cfg.IndentText())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "reading config")
}

func TestLoad_InvalidConfigReportsEveryProblem(t *testing.T) {
	path := writeConfig(t, `
editor:
  tab_width: 0
completion:
  words: ["two words"]
theme:
  integer: red
log_level: chatty
`)

	_, err := Load(path)
	require.Error(t, err)
	msg := err.Error()
	require.Contains(t, msg, "editor.tab_width")
	require.Contains(t, msg, "completion.words[0]")
	require.Contains(t, msg, "theme.integer")
	require.Contains(t, msg, "log_level")
}

func TestValidColor(t *testing.T) {
	for _, ok := range []string{"#fff", "#FFA500", "0", "208", "255"} {
		require.True(t, validColor(ok), ok)
	}
	for _, bad := range []string{"", "red", "#12345", "256", "-1"} {
		require.False(t, validColor(bad), bad)
	}
}

func TestBuilders(t *testing.T) {
	cfg := Defaults()

	cat, ok := cfg.Lexicon().Classify("def")
	require.True(t, ok)
	require.Equal(t, syntax.KeywordDeclaration, cat)

	require.Equal(t, []string{"print"}, cfg.Engine().Candidates("pri"))

	theme := cfg.SyntaxTheme()
	for _, c := range syntax.Categories() {
		_, ok := theme[c]
		require.True(t, ok, c.String())
	}
}

func TestWriteDefaultRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scribe.yaml")
	require.NoError(t, WriteDefault(path))
	require.Error(t, WriteDefault(path), "existing file is not overwritten")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Defaults(), cfg)
}
