package editor

import (
	"github.com/iw2rmb/rtlview/buffer"
	"github.com/iw2rmb/rtlview/internal/grapheme"
)

// screenToDocPos maps viewport-local cell coordinates to a document
// position. (0,0) is the top-left of the visible text; coordinates outside
// the text clamp to the nearest position.
func (m Model) screenToDocPos(x, y int) buffer.Pos {
	rows := m.visualRows()
	if len(rows) == 0 {
		return buffer.Pos{}
	}
	r := rows[clampInt(m.yOffset+y, 0, len(rows)-1)]
	line := m.buf.Lines()[r.logicalRow]

	col := 0
	for i := 0; i < r.seg.Start; i++ {
		col += grapheme.CellWidth(line[i], col, m.cfg.TabWidth)
	}
	start := col

	x = max(x, 0)
	for i := r.seg.Start; i < r.seg.End; i++ {
		col += grapheme.CellWidth(line[i], col, m.cfg.TabWidth)
		if x < col-start {
			return buffer.Pos{Row: r.logicalRow, GraphemeCol: i}
		}
	}

	end := r.seg.End
	if !r.last && end > r.seg.Start {
		// Past the end of a soft-wrapped row: stay on this row.
		end--
	}
	return buffer.Pos{Row: r.logicalRow, GraphemeCol: end}
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
