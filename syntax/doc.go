// Package syntax tags script lines with styling categories.
//
// Tagging is line-local: a Tagger looks at the text of one line and reports
// keyword, decorator, numeric literal and string literal spans in grapheme
// columns. An Overlay keeps the tags of a whole document and is refreshed by
// clearing a line and tagging it again. Highlighter adapts an Overlay to the
// editor's highlight seam.
package syntax
