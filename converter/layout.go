package converter

// Screen rows outside the panes: title, subtitle, a blank line, status and
// footer.
const chromeRows = 5

const (
	splitMinWidth = 100
	paneGap       = 2
	blockChrome   = 4 // header, top and bottom border, caption
	boxChrome     = 4 // two border cells and two padding cells
	helpRows      = 2 + 1 + 5
	minBody       = 3
	panesTop      = 3
)

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// pane is the on-screen block of one pane; y is its header row.
type pane struct {
	x, y, w int
}

type geometry struct {
	width  int
	split  bool
	help   bool
	body   int // text rows inside each box
	inner  int // text columns inside each box
	input  pane
	output pane
}

func (m Model) geometry() geometry {
	width, height := max(m.width, 1), max(m.height, 1)

	g := geometry{width: width, help: m.showHelp}
	switch m.layout {
	case LayoutSplit:
		g.split = true
	case LayoutStack:
		g.split = false
	default:
		g.split = width >= splitMinWidth
	}

	blocks := 2
	if g.split {
		blocks = 1
	}
	bodyFor := func(help bool) int {
		avail := height - chromeRows - blocks*blockChrome
		if help {
			avail -= helpRows
		}
		return avail / blocks
	}
	if g.help && bodyFor(true) < minBody {
		g.help = false
	}
	g.body = max(bodyFor(g.help), 1)

	if g.split {
		// Equal panes; an odd column goes to the gap.
		side := max((width-paneGap)/2, 1)
		g.input = pane{x: 0, y: panesTop, w: side}
		g.output = pane{x: max(width-side, side), y: panesTop, w: side}
	} else {
		g.input = pane{x: 0, y: panesTop, w: width}
		g.output = pane{x: 0, y: panesTop + blockChrome + g.body, w: width}
	}
	g.inner = max(g.input.w-boxChrome, 1)
	return g
}

func (g geometry) actionRect(p pane, label string) rect {
	w := len(label)
	return rect{x: p.x + max(p.w-w, 0), y: p.y, w: w, h: 1}
}

func (g geometry) copyLabel(label string) rect { return g.actionRect(g.output, label) }

func (g geometry) clearLabel() rect { return g.actionRect(g.input, LabelClear) }

// inputText is the editor's text area inside the input box.
func (g geometry) inputText() rect {
	return rect{x: g.input.x + boxChrome/2, y: g.input.y + 2, w: g.inner, h: g.body}
}

func (g geometry) outputBox() rect {
	return rect{x: g.output.x, y: g.output.y + 1, w: g.output.w, h: g.body + 2}
}

func (m Model) resize() Model {
	g := m.geometry()
	m.input = m.input.SetSize(g.inner, g.body)
	return m.scrollOutput(0)
}
