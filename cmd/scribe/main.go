// Command scribe is a terminal editor for small scripts with keyword
// highlighting and inline autocomplete.
package main

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Build information injected via ldflags at build time.
var (
	commit = ""
	date   = ""
)

func init() {
	// Query the terminal background before Bubble Tea owns stdin, so the
	// OSC 11 reply cannot leak into the buffer as typed text.
	_ = lipgloss.HasDarkBackground()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
