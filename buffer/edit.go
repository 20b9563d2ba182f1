package buffer

import (
	"strings"

	"github.com/iw2rmb/rtlview/internal/grapheme"
)

// InsertText inserts s at the cursor. s may contain line breaks.
func (b *Buffer) InsertText(s string) {
	s = normalizeNewlines(s)
	if s == "" {
		return
	}

	prev := b.snapshot()
	next, changed := b.replaceRange(b.cursor, b.cursor, s)
	if !changed {
		return
	}
	b.cursor = next
	b.version++
	b.recordUndo(prev)
}

// InsertNewline splits the current line at the cursor.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() {
	row, col := b.cursor.Row, b.cursor.GraphemeCol
	if row == 0 && col == 0 {
		return
	}

	start := Pos{Row: row, GraphemeCol: col - 1}
	if col == 0 {
		// Join with previous line.
		start = Pos{Row: row - 1, GraphemeCol: len(b.lines[row-1])}
	}
	b.deleteRange(start, b.cursor)
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	row, col := b.cursor.Row, b.cursor.GraphemeCol
	lastRow := len(b.lines) - 1
	if row == lastRow && col == len(b.lines[lastRow]) {
		return
	}

	end := Pos{Row: row, GraphemeCol: col + 1}
	if col == len(b.lines[row]) {
		// Join with next line.
		end = Pos{Row: row + 1, GraphemeCol: 0}
	}
	b.deleteRange(b.cursor, end)
}

func (b *Buffer) deleteRange(start, end Pos) {
	prev := b.snapshot()
	next, changed := b.replaceRange(start, end, "")
	if !changed {
		return
	}
	b.cursor = next
	b.version++
	b.recordUndo(prev)
}

// replaceRange swaps [start, end) for text and returns the position just
// past the inserted text.
func (b *Buffer) replaceRange(start, end Pos, text string) (Pos, bool) {
	start, end = b.clampPos(start), b.clampPos(end)
	if ComparePos(start, end) > 0 {
		start, end = end, start
	}
	if start == end && text == "" {
		return b.cursor, false
	}

	prefix := grapheme.Join(b.lines[start.Row][:start.GraphemeCol])
	suffix := grapheme.Join(b.lines[end.Row][end.GraphemeCol:])

	// Lines are re-segmented after joining: a typed combining mark merges
	// with the base letter before it.
	parts := strings.Split(text, "\n")
	parts[0] = prefix + parts[0]
	lastIdx := len(parts) - 1
	head := parts[lastIdx]
	parts[lastIdx] = head + suffix

	repl := make([][]string, 0, len(parts))
	for _, p := range parts {
		repl = append(repl, grapheme.Split(p))
	}
	next := Pos{
		Row:         start.Row + lastIdx,
		GraphemeCol: min(grapheme.Count(head), len(repl[lastIdx])),
	}

	out := make([][]string, 0, len(b.lines)-(end.Row-start.Row)+lastIdx)
	out = append(out, b.lines[:start.Row]...)
	out = append(out, repl...)
	out = append(out, b.lines[end.Row+1:]...)
	b.lines = out
	return next, true
}
