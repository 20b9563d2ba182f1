package grapheme

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DefaultTabWidth is the tab stop distance used when callers pass <= 0.
const DefaultTabWidth = 4

// Split returns the grapheme clusters of text in logical order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Join concatenates grapheme clusters into a single string.
func Join(clusters []string) string {
	if len(clusters) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// CellWidth returns the terminal cell width of cluster when it starts at
// visualCol. Tabs advance to the next tab stop.
func CellWidth(cluster string, visualCol, tabWidth int) int {
	if cluster == "\t" {
		return tabAdvance(visualCol, tabWidth)
	}

	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		// runewidth reports 0 for some emoji sequences; uniseg knows better.
		w = uniseg.StringWidth(cluster)
	}
	if w < 0 {
		w = 0
	}
	return w
}

// StringWidth returns the cell width of text laid out from column 0.
func StringWidth(text string, tabWidth int) int {
	col := 0
	for _, c := range Split(text) {
		col += CellWidth(c, col, tabWidth)
	}
	return col
}

// ExpandTabs replaces each tab with the spaces it occupies from column 0.
func ExpandTabs(text string, tabWidth int) string {
	return ExpandTabsFrom(text, 0, tabWidth)
}

// ExpandTabsFrom is ExpandTabs for text that starts at visualCol, such as a
// continuation row of a wrapped line.
func ExpandTabsFrom(text string, visualCol, tabWidth int) string {
	if !strings.Contains(text, "\t") {
		return text
	}
	var sb strings.Builder
	col := visualCol
	for _, c := range Split(text) {
		w := CellWidth(c, col, tabWidth)
		if c == "\t" {
			sb.WriteString(strings.Repeat(" ", w))
		} else {
			sb.WriteString(c)
		}
		col += w
	}
	return sb.String()
}

func tabAdvance(visualCol, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	if visualCol < 0 {
		visualCol = 0
	}
	return tabWidth - visualCol%tabWidth
}
