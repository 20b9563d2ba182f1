package buffer

import (
	"strings"

	"github.com/iw2rmb/rtlview/internal/grapheme"
)

// Options tunes a Buffer.
type Options struct {
	HistoryLimit int // default: 1000; negative disables undo
}

// Buffer is the pure document state: grapheme lines, cursor and history.
type Buffer struct {
	lines   [][]string
	version uint64

	cursor Pos

	opt  Options
	hist historyState
}

// New returns a buffer holding text with the cursor at the document start.
func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	return &Buffer{
		lines: splitLines(text),
		opt:   opt,
	}
}

// Text returns the document content.
func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(grapheme.Join(line))
	}
	return sb.String()
}

// IsEmpty reports whether the document holds no text at all.
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 1 && len(b.lines[0]) == 0
}

// Lines returns a copy of the grapheme clusters of every logical line.
func (b *Buffer) Lines() [][]string {
	out := make([][]string, len(b.lines))
	for i, line := range b.lines {
		out[i] = append([]string(nil), line...)
	}
	return out
}

// LineCount returns the number of logical lines (always >= 1).
func (b *Buffer) LineCount() int { return len(b.lines) }

// Version increments on every observable change (text or cursor).
func (b *Buffer) Version() uint64 { return b.version }

// Cursor returns the cursor position.
func (b *Buffer) Cursor() Pos { return b.cursor }

// SetCursor moves the cursor, clamped into the document.
func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

// SetText replaces the whole document unconditionally and moves the cursor
// to the end. The replacement is recorded in undo history.
func (b *Buffer) SetText(text string) {
	text = normalizeNewlines(text)
	if text == b.Text() {
		return
	}
	prev := b.snapshot()
	b.lines = splitLines(text)
	b.cursor = b.endPos()
	b.version++
	b.recordUndo(prev)
}

// Reset empties the document. It is SetText("") and therefore undoable.
func (b *Buffer) Reset() {
	b.SetText("")
}

func (b *Buffer) endPos() Pos {
	last := len(b.lines) - 1
	return Pos{Row: last, GraphemeCol: len(b.lines[last])}
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

func splitLines(text string) [][]string {
	parts := strings.Split(normalizeNewlines(text), "\n")
	lines := make([][]string, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, grapheme.Split(s))
	}
	return lines
}

func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
