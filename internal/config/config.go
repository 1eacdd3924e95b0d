// Package config provides the configuration object for scribe: defaults,
// YAML overrides, validation and the builders that turn it into runtime
// components.
package config

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/scribe/autocomplete"
	"github.com/iw2rmb/scribe/syntax"
)

// Config holds all configuration options. It is built once at startup and
// treated as read-only afterwards.
type Config struct {
	Editor     EditorConfig     `mapstructure:"editor" yaml:"editor"`
	Keywords   KeywordsConfig   `mapstructure:"keywords" yaml:"keywords"`
	Completion CompletionConfig `mapstructure:"completion" yaml:"completion"`
	Theme      ThemeConfig      `mapstructure:"theme" yaml:"theme"`
	WatchFile  bool             `mapstructure:"watch_file" yaml:"watch_file"`
	LogLevel   string           `mapstructure:"log_level" yaml:"log_level"`
}

// EditorConfig holds buffer and rendering options.
type EditorConfig struct {
	TabWidth        int  `mapstructure:"tab_width" yaml:"tab_width"`
	ShowLineNumbers bool `mapstructure:"show_line_numbers" yaml:"show_line_numbers"`
	HistoryLimit    int  `mapstructure:"history_limit" yaml:"history_limit"`
}

// KeywordsConfig holds the tagger's keyword lists.
type KeywordsConfig struct {
	Declaration []string `mapstructure:"declaration" yaml:"declaration"`
	Literal     []string `mapstructure:"literal" yaml:"literal"`
	ControlFlow []string `mapstructure:"control_flow" yaml:"control_flow"`
	Builtin     []string `mapstructure:"builtin" yaml:"builtin"`
}

// CompletionConfig holds the autocomplete word list and popup limits.
type CompletionConfig struct {
	Words          []string `mapstructure:"words" yaml:"words"`
	MaxVisibleRows int      `mapstructure:"max_visible_rows" yaml:"max_visible_rows"`
}

// ThemeConfig holds one foreground color per tag category. Values are hex
// ("#FFA500") or ANSI color numbers ("208").
type ThemeConfig struct {
	Declaration string `mapstructure:"declaration" yaml:"declaration"`
	Literal     string `mapstructure:"literal" yaml:"literal"`
	ControlFlow string `mapstructure:"control_flow" yaml:"control_flow"`
	Builtin     string `mapstructure:"builtin" yaml:"builtin"`
	Decorator   string `mapstructure:"decorator" yaml:"decorator"`
	Integer     string `mapstructure:"integer" yaml:"integer"`
	String      string `mapstructure:"string" yaml:"string"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Editor: EditorConfig{
			TabWidth:        4,
			ShowLineNumbers: true,
			HistoryLimit:    0,
		},
		Keywords: KeywordsConfig{
			Declaration: []string{"import", "def", "try", "except", "self"},
			Literal:     []string{"True", "False", "None"},
			ControlFlow: []string{"if", "else", "elif", "try", "except", "for", "while"},
			Builtin:     []string{"print", "list", "dict", "set", "int", "float", "str"},
		},
		Completion: CompletionConfig{
			Words: []string{
				"def", "import", "if", "elif", "else", "while", "for", "try",
				"except", "print", "True", "False", "self", "None",
			},
			MaxVisibleRows: 8,
		},
		Theme: ThemeConfig{
			Declaration: "#FFA500", // orange
			Literal:     "#000080", // navy
			ControlFlow: "#A020F0", // purple
			Builtin:     "#A9A9A9", // darkgrey
			Decorator:   "#F0E68C", // khaki
			Integer:     "#FF0000", // red
			String:      "#00FF00", // green
		},
		WatchFile: true,
		LogLevel:  "debug",
	}
}

// IndentText is what the tab key inserts: TabWidth literal spaces.
func (c Config) IndentText() string {
	return strings.Repeat(" ", max(c.Editor.TabWidth, 1))
}

// Lexicon builds the tagger's keyword lexicon.
func (c Config) Lexicon() *syntax.Lexicon {
	return syntax.NewLexicon(syntax.Words{
		Declaration: c.Keywords.Declaration,
		Literal:     c.Keywords.Literal,
		ControlFlow: c.Keywords.ControlFlow,
		Builtin:     c.Keywords.Builtin,
	})
}

// Engine builds the autocomplete engine.
func (c Config) Engine() *autocomplete.Engine {
	return autocomplete.NewEngine(c.Completion.Words)
}

// SyntaxTheme builds the category styles.
func (c Config) SyntaxTheme() syntax.Theme {
	fg := func(color string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}
	return syntax.Theme{
		syntax.KeywordDeclaration: fg(c.Theme.Declaration),
		syntax.KeywordLiteral:     fg(c.Theme.Literal),
		syntax.KeywordControlFlow: fg(c.Theme.ControlFlow),
		syntax.KeywordBuiltin:     fg(c.Theme.Builtin),
		syntax.Decorator:          fg(c.Theme.Decorator),
		syntax.IntegerLiteral:     fg(c.Theme.Integer),
		syntax.StringLiteral:      fg(c.Theme.String),
	}
}
