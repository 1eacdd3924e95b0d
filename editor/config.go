package editor

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// DocID is an opaque host identifier echoed in change events.
	DocID string

	// Rendering options.
	ShowLineNums bool
	Style        Style

	// TabWidth is the cell width of a tab stop when rendering '\t'.
	// Default: 4.
	TabWidth int
	// IndentText is inserted by KeyMap.Indent. Default: four spaces.
	IndentText string

	KeyMap KeyMap

	// Forwarded to buffer.Options.
	HistoryLimit int

	ReadOnly bool

	Highlighter Highlighter
	Clipboard   Clipboard

	// OnChange is called from Update after every key or mouse event that
	// changed the document text.
	OnChange func(ChangeEvent)

	CompletionKeyMap         CompletionKeyMap
	CompletionMaxVisibleRows int // default: 8
	CompletionMaxWidth       int // default: 60
}

const (
	defaultTabWidth   = 4
	defaultIndentText = "    "
)

func normalizeConfig(cfg Config) Config {
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = defaultTabWidth
	}
	if cfg.IndentText == "" {
		cfg.IndentText = defaultIndentText
	}
	cfg.KeyMap = normalizeKeyMap(cfg.KeyMap)
	cfg.CompletionKeyMap = normalizeCompletionKeyMap(cfg.CompletionKeyMap)
	cfg.CompletionMaxVisibleRows = normalizeCompletionMaxVisibleRows(cfg.CompletionMaxVisibleRows)
	cfg.CompletionMaxWidth = normalizeCompletionMaxWidth(cfg.CompletionMaxWidth)
	return cfg
}
