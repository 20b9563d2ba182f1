package editor

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestRender_CursorAtEndOfLine(t *testing.T) {
	m := New(Config{Text: "ab", Style: Style{}})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})

	if got, want := m.View(), "ab "; got != want {
		t.Fatalf("view: got %q, want %q", got, want)
	}
}

func TestRender_BlurredHasNoCursorCell(t *testing.T) {
	m := New(Config{Text: "ab"}).Blur()
	m = m.SetSize(5, 1)
	m.cfg.Style = Style{}

	if got, want := m.View(), "ab"; got != want {
		t.Fatalf("view: got %q, want %q", got, want)
	}
}

func TestRender_SoftWrapsAtWidth(t *testing.T) {
	m := New(Config{Text: "hello world"}).Blur()
	m.cfg.Style = Style{}
	m = m.SetSize(7, 3)

	lines := strings.Split(m.View(), "\n")
	want := []string{"hello ", "world", ""}
	if len(lines) != len(want) {
		t.Fatalf("lines: got %q, want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: got %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestRender_ExpandsTabs(t *testing.T) {
	m := New(Config{Text: "a\tb", TabWidth: 4}).Blur()
	m.cfg.Style = Style{}

	if got, want := m.View(), "a   b"; got != want {
		t.Fatalf("view: got %q, want %q", got, want)
	}
}

func TestRender_PlaceholderWhenEmpty(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)

	m := New(Config{
		Placeholder: "Paste your bilingual text here...",
		Style: Style{
			Cursor:      r.NewStyle(),
			Placeholder: r.NewStyle().Foreground(lipgloss.Color("#6c7086")).Italic(true),
		},
	}).Blur()

	got := m.View()
	if !strings.Contains(got, "Paste your bilingual text here...") {
		t.Fatalf("placeholder missing: %q", got)
	}
	if !strings.Contains(got, "\x1b[") {
		t.Fatalf("placeholder must be styled, got %q", got)
	}
	if m.Text() != "" {
		t.Fatalf("placeholder leaked into document: %q", m.Text())
	}
}

func TestRender_PadsToHeight(t *testing.T) {
	m := New(Config{Text: "x"}).Blur()
	m.cfg.Style = Style{}
	m = m.SetSize(4, 3)

	if got, want := m.View(), "x\n\n"; got != want {
		t.Fatalf("view: got %q, want %q", got, want)
	}
}
