// Package autocomplete proposes keyword completions for the word being typed
// and drives the editor's completion popup.
//
// Engine holds the word list and answers prefix lookups. Controller wraps
// editor.Model updates with a two-state machine: Closed and Open. Space
// always closes the menu; any edit reopens it for the word before the
// cursor; accepting a candidate inserts the unwritten suffix at the trigger
// position.
package autocomplete
