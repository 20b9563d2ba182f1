// Package editor provides the Bubble Tea component behind the editable,
// left-to-right pane.
//
// The component owns a buffer.Buffer and is responsible for key handling,
// bracketed paste, soft wrapping and cursor rendering. A left click places
// the cursor on the clicked cluster; the wheel scrolls. It never alters what the user typed; hosts read the
// document back with Text.
package editor
