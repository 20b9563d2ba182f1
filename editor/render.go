package editor

import (
	"strings"

	"github.com/iw2rmb/rtlview/internal/grapheme"
)

type visualRow struct {
	logicalRow int
	seg        grapheme.Segment
	last       bool // last segment of its logical line
}

func (m Model) visualRows() []visualRow {
	lines := m.buf.Lines()
	rows := make([]visualRow, 0, len(lines))
	for i, line := range lines {
		segs := grapheme.Wrap(line, m.wrapWidth(), m.cfg.TabWidth)
		for j, s := range segs {
			rows = append(rows, visualRow{logicalRow: i, seg: s, last: j == len(segs)-1})
		}
	}
	return rows
}

// wrapWidth leaves one cell for the end-of-line cursor.
func (m Model) wrapWidth() int {
	if m.width <= 1 {
		return m.width
	}
	return m.width - 1
}

func (m Model) cursorVisualRow() int {
	cur := m.buf.Cursor()
	for i, r := range m.visualRows() {
		if r.logicalRow != cur.Row {
			continue
		}
		if cur.GraphemeCol < r.seg.End || r.last {
			return i
		}
	}
	return 0
}

func (m Model) render() string {
	var rows []string
	if m.buf.IsEmpty() {
		rows = m.renderPlaceholder()
	} else {
		rows = m.renderRows()
	}

	if m.height > 0 {
		start := min(m.yOffset, max(len(rows)-1, 0))
		end := min(start+m.height, len(rows))
		rows = rows[start:end]
		for len(rows) < m.height {
			rows = append(rows, "")
		}
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderPlaceholder() []string {
	cursor := ""
	if m.focused {
		cursor = m.cfg.Style.Cursor.Render(" ")
	}
	if m.cfg.Placeholder == "" {
		return []string{cursor}
	}

	clusters := grapheme.Split(m.cfg.Placeholder)
	segs := grapheme.Wrap(clusters, m.wrapWidth(), m.cfg.TabWidth)
	out := make([]string, 0, len(segs))
	for i, s := range segs {
		text := m.cfg.Style.Placeholder.Render(grapheme.Join(clusters[s.Start:s.End]))
		if i == 0 {
			text = cursor + text
		}
		out = append(out, text)
	}
	return out
}

func (m Model) renderRows() []string {
	lines := m.buf.Lines()
	cur := m.buf.Cursor()

	rows := m.visualRows()
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		line := lines[r.logicalRow]
		hasCursor := m.focused && r.logicalRow == cur.Row &&
			cur.GraphemeCol >= r.seg.Start && (cur.GraphemeCol < r.seg.End || r.last)

		var sb, run strings.Builder
		flush := func() {
			if run.Len() > 0 {
				// One styled span per run keeps joined scripts contiguous.
				sb.WriteString(m.cfg.Style.Text.Render(run.String()))
				run.Reset()
			}
		}

		col := 0
		for i := 0; i < r.seg.Start; i++ {
			// Tab stops are measured from the start of the logical line.
			col += grapheme.CellWidth(line[i], col, m.cfg.TabWidth)
		}
		for i := r.seg.Start; i < r.seg.End; i++ {
			cluster := line[i]
			w := grapheme.CellWidth(cluster, col, m.cfg.TabWidth)
			if cluster == "\t" {
				cluster = strings.Repeat(" ", w)
			}
			col += w
			if hasCursor && i == cur.GraphemeCol {
				flush()
				sb.WriteString(m.cfg.Style.Cursor.Render(cluster))
				continue
			}
			run.WriteString(cluster)
		}
		flush()
		if hasCursor && cur.GraphemeCol == r.seg.End {
			sb.WriteString(m.cfg.Style.Cursor.Render(" "))
		}
		out = append(out, sb.String())
	}
	return out
}
