package grapheme

// Segment is one soft-wrapped visual row of a logical line: clusters
// [Start, End) occupying Cells terminal cells.
type Segment struct {
	Start int
	End   int
	Cells int
}

// Wrap splits a line of clusters into rows no wider than width cells.
//
// Rows break after the last whitespace run that fits; a word longer than
// the row is broken between clusters. Width <= 0 disables wrapping. An empty
// line yields a single empty segment.
func Wrap(clusters []string, width, tabWidth int) []Segment {
	if len(clusters) == 0 {
		return []Segment{{}}
	}

	widths := make([]int, len(clusters))
	col := 0
	total := 0
	for i, c := range clusters {
		widths[i] = CellWidth(c, col, tabWidth)
		col += widths[i]
		total += widths[i]
	}

	if width <= 0 {
		return []Segment{{Start: 0, End: len(clusters), Cells: total}}
	}

	segments := make([]Segment, 0, 1+total/width)
	for start := 0; start < len(clusters); {
		used := 0
		overflow := start
		for overflow < len(clusters) {
			w := widths[overflow]
			if used > 0 && used+w > width {
				break
			}
			used += w
			overflow++
		}

		end := overflow
		if overflow < len(clusters) {
			if br, ok := wordBreak(clusters, start, overflow); ok {
				end = br
			}
		}
		if end <= start {
			end = start + 1
		}

		cells := 0
		for i := start; i < end; i++ {
			cells += widths[i]
		}
		segments = append(segments, Segment{Start: start, End: end, Cells: cells})
		start = end
	}
	return segments
}

// wordBreak returns the index just past the last whitespace run in
// [start, overflow), or false when the window has no usable break.
func wordBreak(clusters []string, start, overflow int) (int, bool) {
	last := -1
	for i := start; i < overflow; i++ {
		if IsSpace(clusters[i]) && (i+1 >= overflow || !IsSpace(clusters[i+1])) {
			last = i + 1
		}
	}
	if last <= start {
		return 0, false
	}
	return last, true
}
