package display

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/unicode/bidi"

	"github.com/iw2rmb/rtlview/internal/grapheme"
)

// Directional isolates (UAX #9). They occupy no cells.
const (
	LRI = "⁦"
	RLI = "⁧"
	PDI = "⁩"
)

// Style controls the pane's rendering.
type Style struct {
	Text        lipgloss.Style
	Placeholder lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Text:        lipgloss.NewStyle(),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),
	}
}

// Pane renders text for one paragraph direction. The zero value renders
// left-to-right without marks.
type Pane struct {
	Direction   bidi.Direction
	Placeholder string

	// Marks wraps every non-empty row in an isolate matching Direction.
	Marks bool

	TabWidth int
	Style    Style
}

// Lines returns the soft-wrapped rows of text in logical order. Tabs are
// kept as typed; joining the rows of one logical line yields that line
// again.
func (p Pane) Lines(text string, width int) []string {
	rows := p.layout(text, width)
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.text
	}
	return out
}

// row is one wrapped row. col is the column it starts at within its
// logical line; tab stops are measured from the line start.
type row struct {
	text  string
	col   int
	cells int
}

func (p Pane) layout(text string, width int) []row {
	var rows []row
	for _, line := range strings.Split(text, "\n") {
		clusters := grapheme.Split(line)
		col := 0
		for _, seg := range grapheme.Wrap(clusters, width, p.TabWidth) {
			rows = append(rows, row{
				text:  grapheme.Join(clusters[seg.Start:seg.End]),
				col:   col,
				cells: seg.Cells,
			})
			col += seg.Cells
		}
	}
	return rows
}

// RowCount returns how many rows Render would produce for text before
// clipping to a height.
func (p Pane) RowCount(text string, width int) int {
	if text == "" {
		return len(p.layout(p.Placeholder, width))
	}
	return len(p.layout(text, width))
}

// Render lays text out in a width x height box starting at row offset.
// An empty text renders the placeholder instead; the placeholder is styled
// and never returned by Lines.
func (p Pane) Render(text string, width, height, offset int) string {
	style := p.Style.Text
	source := text
	if text == "" {
		style = p.Style.Placeholder
		source = p.Placeholder
	}

	rows := p.layout(source, width)
	if height > 0 {
		offset = min(max(offset, 0), max(len(rows)-height, 0))
		rows = rows[offset:min(offset+height, len(rows))]
	}

	out := make([]string, 0, max(height, len(rows)))
	for _, r := range rows {
		out = append(out, p.renderRow(r, width, style))
	}
	for len(out) < height {
		out = append(out, strings.Repeat(" ", max(width, 0)))
	}
	return strings.Join(out, "\n")
}

func (p Pane) renderRow(r row, width int, style lipgloss.Style) string {
	text := grapheme.ExpandTabsFrom(r.text, r.col, p.TabWidth)
	pad := ""
	if width > r.cells {
		pad = strings.Repeat(" ", width-r.cells)
	}

	body := text
	if p.Marks && text != "" {
		body = p.isolate() + text + PDI
	}
	body = style.Render(body)

	if p.Direction == bidi.RightToLeft {
		return pad + body
	}
	return body + pad
}

func (p Pane) isolate() string {
	if p.Direction == bidi.RightToLeft {
		return RLI
	}
	return LRI
}
