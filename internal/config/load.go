package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/scribe/internal/log"
)

// Load returns the defaults overridden by the YAML file at path. An empty
// path skips file loading. The result is validated.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, Defaults())

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
		log.Info(log.CatConfig, "loaded config", "path", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("editor.tab_width", d.Editor.TabWidth)
	v.SetDefault("editor.show_line_numbers", d.Editor.ShowLineNumbers)
	v.SetDefault("editor.history_limit", d.Editor.HistoryLimit)

	v.SetDefault("keywords.declaration", d.Keywords.Declaration)
	v.SetDefault("keywords.literal", d.Keywords.Literal)
	v.SetDefault("keywords.control_flow", d.Keywords.ControlFlow)
	v.SetDefault("keywords.builtin", d.Keywords.Builtin)

	v.SetDefault("completion.words", d.Completion.Words)
	v.SetDefault("completion.max_visible_rows", d.Completion.MaxVisibleRows)

	v.SetDefault("theme.declaration", d.Theme.Declaration)
	v.SetDefault("theme.literal", d.Theme.Literal)
	v.SetDefault("theme.control_flow", d.Theme.ControlFlow)
	v.SetDefault("theme.builtin", d.Theme.Builtin)
	v.SetDefault("theme.decorator", d.Theme.Decorator)
	v.SetDefault("theme.integer", d.Theme.Integer)
	v.SetDefault("theme.string", d.Theme.String)

	v.SetDefault("watch_file", d.WatchFile)
	v.SetDefault("log_level", d.LogLevel)
}

// DefaultYAML renders the defaults as a YAML document.
func DefaultYAML() ([]byte, error) {
	out, err := yaml.Marshal(Defaults())
	if err != nil {
		return nil, fmt.Errorf("marshaling default config: %w", err)
	}
	return out, nil
}

// WriteDefault writes the default configuration to path, creating parent
// directories. An existing file is left alone.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config %s already exists", path)
	}
	data, err := DefaultYAML()
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("creating config dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
