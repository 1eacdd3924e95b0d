// Package buffer implements the pure, grapheme-accurate document model for scribe.
//
// Coordinates are 0-based (Row, Col) where Col counts grapheme clusters.
// Ranges are half-open selections in document coordinates: [Start, End).
package buffer
