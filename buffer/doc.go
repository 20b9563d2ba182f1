// Package buffer implements the pure, grapheme-accurate document model behind
// the editable pane.
//
// Coordinates are 0-based (Row, GraphemeCol). Text() always returns exactly
// what was entered; the model never normalizes, reorders or reshapes content
// beyond folding CR/CRLF line endings into '\n'.
package buffer
