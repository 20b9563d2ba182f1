// Package converter is the bilingual LTR to RTL converter view.
//
// The view owns one document. The left (or upper) pane edits it
// left-to-right; the right (or lower) pane shows the same text with
// right-to-left paragraph direction. Copy puts the text on the clipboard
// and shows "Copied!" for two seconds; Clear empties the document.
//
// Model follows the Bubble Tea value-receiver convention: Update returns the
// next Model and a command. The host program forwards every message.
package converter
