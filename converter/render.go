package converter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/rtlview/display"
)

func (m Model) render() string {
	g := m.geometry()
	text := m.Text()

	sections := []string{
		lipgloss.PlaceHorizontal(g.width, lipgloss.Center, m.styles.Title.Render(truncate(Title, g.width))),
		lipgloss.PlaceHorizontal(g.width, lipgloss.Center, m.styles.Subtitle.Render(truncate(Subtitle, g.width))),
		"",
	}

	input := m.renderBlock(g.input.w, g.body,
		m.renderHeader(g.input.w, InputHeader, m.styles.Action.Render(LabelClear)),
		m.styles.InputBox, m.input.View(), InputCaption)

	copyStyle := m.styles.Action
	switch {
	case m.copied:
		copyStyle = m.styles.ActionDone
	case !m.CopyEnabled():
		copyStyle = m.styles.ActionDisabled
	}
	output := m.renderBlock(g.output.w, g.body,
		m.renderHeader(g.output.w, OutputHeader, copyStyle.Render(m.CopyLabel())),
		m.styles.OutputBox, m.output.Render(text, g.inner, g.body, m.outOffset), OutputCaption)

	if g.split {
		gap := strings.Repeat(" ", max(g.output.x-g.input.w, 0))
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, input, gap, output))
	} else {
		sections = append(sections, input, output)
	}

	if g.help {
		sections = append(sections, m.renderHelp(g.width))
	}
	sections = append(sections, m.renderStatus(g.width, text), m.renderFooter(g.width))
	return clipHeight(strings.Join(sections, "\n"), max(m.height, 1))
}

func (m Model) renderHeader(width int, label, action string) string {
	label = m.styles.Header.Render(truncate(label, max(width-lipgloss.Width(action)-1, 0)))
	fill := max(width-lipgloss.Width(label)-lipgloss.Width(action), 0)
	return label + strings.Repeat(" ", fill) + action
}

func (m Model) renderBlock(width, body int, header string, box lipgloss.Style, content, caption string) string {
	framed := box.Width(max(width-2, 0)).Height(body).Render(content)
	return strings.Join([]string{
		header,
		framed,
		m.styles.Caption.Render(truncate(caption, width)),
	}, "\n")
}

func (m Model) renderHelp(width int) string {
	inner := max(width-boxChrome, 1)
	lines := []string{m.styles.HelpTitle.Render(truncate("How it works", inner))}
	for _, note := range HelpNotes {
		lines = append(lines, m.styles.Bullet.Render("•")+" "+m.styles.HelpText.Render(truncate(note, max(inner-2, 0))))
	}
	return m.styles.HelpBox.Width(max(width-2, 0)).Render(strings.Join(lines, "\n"))
}

func (m Model) renderStatus(width int, text string) string {
	stats := display.Analyze(text)
	lines := strings.Count(text, "\n") + 1
	if text == "" {
		lines = 0
	}
	msg := fmt.Sprintf(" %s · %d lines", stats, lines)
	return renderBar(m.styles.Status, width, msg)
}

func (m Model) renderFooter(width int) string {
	space := m.styles.Footer.Render(" ")
	sep := m.styles.Footer.Render("  ")

	var parts []string
	for _, b := range m.keys.ShortHelp() {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, m.styles.FooterKey.Render(h.Key)+space+m.styles.FooterDesc.Render(h.Desc))
	}
	return renderBar(m.styles.Footer, width, space+strings.Join(parts, sep))
}

func renderBar(style lipgloss.Style, width int, text string) string {
	line := ansi.Truncate(strings.ReplaceAll(text, "\n", " "), width, "")
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	return style.Width(width).MaxWidth(width).Render(line)
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}

func clipHeight(s string, height int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
