package converter

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/rtlview/display"
)

func TestView_EmptyStateShowsPlaceholders(t *testing.T) {
	m, _ := newHarness(t, Options{})
	m = resize(m, 120, 40)

	view := strings.Join(screen(m), "\n")
	for _, want := range []string{
		Title, Subtitle,
		InputHeader, OutputHeader, LabelClear, LabelCopy,
		InputPlaceholder, OutputPlaceholder,
		InputCaption, OutputCaption,
		"ctrl+s copy",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
	if m.Text() != "" {
		t.Fatalf("placeholder leaked into document: %q", m.Text())
	}
}

// outputRows returns the text rows of the output box in a stacked layout,
// with borders and alignment padding removed.
func outputRows(m Model) []string {
	g := m.geometry()
	lines := screen(m)
	var rows []string
	for _, line := range lines[g.output.y+2 : g.output.y+2+g.body] {
		line = strings.TrimSuffix(strings.TrimPrefix(line, "│ "), " │")
		rows = append(rows, strings.TrimLeft(line, " "))
	}
	return rows
}

func TestView_OutputMirrorsDocument(t *testing.T) {
	texts := []string{
		"Hello مرحبا",
		"مرحبا بالعالم\nworld 123",
		"API مفتاح\n\n(v2.1) تحديث",
		"é ü ﻻ",
	}
	for _, text := range texts {
		m, _ := newHarness(t, Options{})
		m = resize(m, 80, 30)
		m = typeText(m, text)
		if m.Text() != text {
			t.Fatalf("typed %q, document is %q", text, m.Text())
		}

		rows := outputRows(m)
		want := strings.Split(text, "\n")
		for i, line := range want {
			if rows[i] != line {
				t.Fatalf("text %q row %d: got %q, want %q", text, i, rows[i], line)
			}
		}
	}
}

func TestView_OutputRightAligned(t *testing.T) {
	m, _ := newHarness(t, Options{Text: "Hello مرحبا"})
	m = resize(m, 120, 30)
	g := m.geometry()
	if !g.split {
		t.Fatalf("120 columns should split the panes")
	}

	line := screen(m)[g.output.y+2]
	want := strings.Repeat(" ", g.inner-11) + "Hello مرحبا │"
	if !strings.HasSuffix(line, want) {
		t.Fatalf("output row not right-aligned: %q", line)
	}
}

func TestView_DirectionMarks(t *testing.T) {
	m, _ := newHarness(t, Options{Text: "Hello مرحبا", DirectionMarks: true})
	m = resize(m, 120, 30)
	g := m.geometry()

	line := screen(m)[g.output.y+2]
	if !strings.HasSuffix(line, display.RLI+"Hello مرحبا"+display.PDI+" │") {
		t.Fatalf("output row missing isolate: %q", line)
	}
	if m.Text() != "Hello مرحبا" {
		t.Fatalf("marks leaked into document: %q", m.Text())
	}
}

func TestView_StackedWhenNarrow(t *testing.T) {
	m, _ := newHarness(t, Options{})
	m = resize(m, 80, 30)
	g := m.geometry()
	if g.split {
		t.Fatalf("80 columns should stack the panes")
	}

	lines := screen(m)
	if !strings.HasPrefix(lines[g.input.y], InputHeader) || !strings.HasSuffix(lines[g.input.y], LabelClear) {
		t.Fatalf("input header: %q", lines[g.input.y])
	}
	if !strings.HasPrefix(lines[g.output.y], OutputHeader) || !strings.HasSuffix(lines[g.output.y], LabelCopy) {
		t.Fatalf("output header: %q", lines[g.output.y])
	}
}

func TestView_LayoutOverride(t *testing.T) {
	m, _ := newHarness(t, Options{Layout: LayoutStack})
	m = resize(m, 160, 40)
	if m.geometry().split {
		t.Fatalf("stack layout split the panes")
	}

	m, _ = newHarness(t, Options{Layout: LayoutSplit})
	m = resize(m, 60, 40)
	if !m.geometry().split {
		t.Fatalf("split layout stacked the panes")
	}
}

func TestView_SplitPanesShareWidthOnOddTerminals(t *testing.T) {
	m, _ := newHarness(t, Options{Text: "abc", Layout: LayoutSplit})
	m = resize(m, 101, 30)

	g := m.geometry()
	if g.input.w != g.output.w || g.output.x+g.output.w != 101 {
		t.Fatalf("uneven panes: input %+v output %+v", g.input, g.output)
	}
	line := screen(m)[g.output.y+2]
	if !strings.HasSuffix(line, "abc │") {
		t.Fatalf("output row not flush right: %q", line)
	}
}

func TestView_FitsTerminal(t *testing.T) {
	sizes := [][2]int{{120, 40}, {100, 30}, {80, 24}, {60, 20}, {40, 12}}
	for _, size := range sizes {
		m, _ := newHarness(t, Options{Text: "Hello مرحبا\nsecond line", ShowHelp: true})
		m = resize(m, size[0], size[1])

		lines := screen(m)
		if len(lines) > size[1] {
			t.Fatalf("%dx%d: %d lines", size[0], size[1], len(lines))
		}
		for i, line := range lines {
			if w := ansi.StringWidth(line); w > size[0] {
				t.Fatalf("%dx%d: line %d is %d cells: %q", size[0], size[1], i, w, line)
			}
		}
	}
}

func TestHelp_Toggle(t *testing.T) {
	m, _ := newHarness(t, Options{})
	m = resize(m, 120, 40)

	if strings.Contains(m.View(), "How it works") {
		t.Fatalf("help shown while disabled")
	}

	m, _ = m.Update(press(tea.KeyF1))
	view := strings.Join(screen(m), "\n")
	if !m.ShowHelp() || !strings.Contains(view, "How it works") {
		t.Fatalf("help not shown after f1")
	}
	for _, note := range HelpNotes {
		if !strings.Contains(view, note) {
			t.Fatalf("help missing %q", note)
		}
	}

	// Too short for the card: panes keep the space.
	m = resize(m, 80, 24)
	if strings.Contains(m.View(), "How it works") {
		t.Fatalf("help shown in a 24-row terminal")
	}
}

func TestStatusLine(t *testing.T) {
	m, _ := newHarness(t, Options{Text: "Hello مرحبا!"})
	m = resize(m, 120, 30)

	view := strings.Join(screen(m), "\n")
	if !strings.Contains(view, "mixed · LTR 5 · RTL 5 · neutral 1 · 1 lines") {
		t.Fatalf("status line missing stats:\n%s", view)
	}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestMouse_ClickCopyAndClear(t *testing.T) {
	m, h := newHarness(t, Options{})
	m = resize(m, 120, 30)
	g := m.geometry()

	r := g.copyLabel(LabelCopy)
	if got := screen(m)[r.y][r.x : r.x+r.w]; got != LabelCopy {
		t.Fatalf("copy label hit box covers %q", got)
	}
	if _, cmd := m.Update(click(r.x, r.y)); cmd != nil {
		t.Fatalf("click on disabled copy returned a command")
	}

	m = m.SetText("abc")
	_, cmd := m.Update(click(r.x+r.w-1, r.y))
	m, _ = run(t, m, cmd)
	if !m.Copied() || len(h.clip.writes) != 1 {
		t.Fatalf("click on copy did not copy")
	}

	done := g.copyLabel(LabelCopied)
	if got := screen(m)[done.y][done.x : done.x+done.w]; got != LabelCopied {
		t.Fatalf("copied label hit box covers %q", got)
	}

	c := g.clearLabel()
	if got := screen(m)[c.y][c.x : c.x+c.w]; got != LabelClear {
		t.Fatalf("clear label hit box covers %q", got)
	}
	m, _ = m.Update(click(c.x, c.y))
	if m.Text() != "" {
		t.Fatalf("click on clear left %q", m.Text())
	}
}

func TestScrollOutput(t *testing.T) {
	m, _ := newHarness(t, Options{Text: "a\nb\nc\nd\ne\nf"})
	m = resize(m, 80, 20)
	if body := m.geometry().body; body != 3 {
		t.Fatalf("body rows: got %d, want 3", body)
	}

	m, _ = m.Update(press(tea.KeyPgDown))
	if m.outOffset != 3 {
		t.Fatalf("offset after pgdown: got %d, want 3", m.outOffset)
	}
	if got := outputRows(m); strings.Join(got, ",") != "d,e,f" {
		t.Fatalf("rows after pgdown: %q", got)
	}

	m, _ = m.Update(press(tea.KeyPgDown))
	if m.outOffset != 3 {
		t.Fatalf("offset past end: got %d", m.outOffset)
	}

	m, _ = m.Update(press(tea.KeyPgUp))
	if m.outOffset != 0 {
		t.Fatalf("offset after pgup: got %d", m.outOffset)
	}

	box := m.geometry().outputBox()
	m, _ = m.Update(tea.MouseMsg{X: box.x + 2, Y: box.y + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if m.outOffset != 1 {
		t.Fatalf("offset after wheel: got %d", m.outOffset)
	}
}

func TestMouse_WheelOnlyScrollsInputOverItsText(t *testing.T) {
	m, _ := newHarness(t, Options{Text: "a\nb\nc\nd\ne\nf"})
	m = resize(m, 80, 20)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlHome})
	before := m.input.View()

	wheel := func(x, y int) tea.MouseMsg {
		return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}
	}
	for _, y := range []int{0, 1, 19} {
		m, _ = m.Update(wheel(2, y))
		if got := m.input.View(); got != before {
			t.Fatalf("wheel at row %d scrolled the input: %q", y, got)
		}
	}

	area := m.geometry().inputText()
	m, _ = m.Update(wheel(area.x+1, area.y+1))
	if m.input.View() == before {
		t.Fatalf("wheel over the input text did not scroll it")
	}
}

func TestPaste_IsContentNotShortcut(t *testing.T) {
	m, h := newHarness(t, Options{})

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Hello\r\nمرحبا"), Paste: true})
	if cmd != nil || len(h.clip.writes) != 0 {
		t.Fatalf("paste triggered a command")
	}
	if m.Text() != "Hello\nمرحبا" {
		t.Fatalf("pasted text: %q", m.Text())
	}
}

func TestMouse_ClickInInputMovesCursor(t *testing.T) {
	m, _ := newHarness(t, Options{Text: "abc"})
	m = resize(m, 120, 30)

	area := m.geometry().inputText()
	m, _ = m.Update(click(area.x+2, area.y))
	m = typeText(m, "X")
	if got, want := m.Text(), "abXc"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}
