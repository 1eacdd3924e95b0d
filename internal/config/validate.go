package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/iw2rmb/scribe/internal/log"
)

var hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Validate reports every problem in c at once.
func (c Config) Validate() error {
	var result *multierror.Error

	if c.Editor.TabWidth < 1 {
		result = multierror.Append(result, fmt.Errorf("editor.tab_width must be at least 1, got %d", c.Editor.TabWidth))
	}
	if c.Editor.HistoryLimit < 0 {
		result = multierror.Append(result, fmt.Errorf("editor.history_limit must not be negative, got %d", c.Editor.HistoryLimit))
	}
	if c.Completion.MaxVisibleRows < 1 {
		result = multierror.Append(result, fmt.Errorf("completion.max_visible_rows must be at least 1, got %d", c.Completion.MaxVisibleRows))
	}

	for _, list := range []struct {
		name  string
		words []string
	}{
		{"keywords.declaration", c.Keywords.Declaration},
		{"keywords.literal", c.Keywords.Literal},
		{"keywords.control_flow", c.Keywords.ControlFlow},
		{"keywords.builtin", c.Keywords.Builtin},
		{"completion.words", c.Completion.Words},
	} {
		for i, w := range list.words {
			if w == "" || strings.ContainsAny(w, " \t\r\n") {
				result = multierror.Append(result, fmt.Errorf("%s[%d]: %q is not a single word", list.name, i, w))
			}
		}
	}

	for _, color := range []struct {
		name, value string
	}{
		{"theme.declaration", c.Theme.Declaration},
		{"theme.literal", c.Theme.Literal},
		{"theme.control_flow", c.Theme.ControlFlow},
		{"theme.builtin", c.Theme.Builtin},
		{"theme.decorator", c.Theme.Decorator},
		{"theme.integer", c.Theme.Integer},
		{"theme.string", c.Theme.String},
	} {
		if !validColor(color.value) {
			result = multierror.Append(result, fmt.Errorf("%s: %q is not a hex or ANSI color", color.name, color.value))
		}
	}

	if _, ok := log.ParseLevel(c.LogLevel); !ok {
		result = multierror.Append(result, fmt.Errorf("log_level: unknown level %q", c.LogLevel))
	}

	return result.ErrorOrNil()
}

func validColor(s string) bool {
	if hexColorRe.MatchString(s) {
		return true
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 255
}
