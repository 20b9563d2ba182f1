package converter

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	// Pasted text is content even when it spells a shortcut.
	if msg.Paste {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.Close(), tea.Quit
	case key.Matches(msg, m.keys.Copy):
		return m, m.Copy()
	case key.Matches(msg, m.keys.Clear):
		return m.Clear(), nil
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m.resize(), nil
	case key.Matches(msg, m.keys.ScrollUp):
		return m.scrollOutput(-m.geometry().body), nil
	case key.Matches(msg, m.keys.ScrollDown):
		return m.scrollOutput(m.geometry().body), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	g := m.geometry()

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		switch {
		case g.copyLabel(m.CopyLabel()).contains(msg.X, msg.Y):
			return m, m.Copy()
		case g.clearLabel().contains(msg.X, msg.Y):
			return m.Clear(), nil
		}
	}

	if g.outputBox().contains(msg.X, msg.Y) && msg.Action == tea.MouseActionPress {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return m.scrollOutput(-1), nil
		case tea.MouseButtonWheelDown:
			return m.scrollOutput(1), nil
		}
		return m, nil
	}

	origin := g.inputText()
	if !origin.contains(msg.X, msg.Y) {
		return m, nil
	}
	// The editor takes coordinates relative to its own text area.
	msg.X -= origin.x
	msg.Y -= origin.y
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) scrollOutput(delta int) Model {
	g := m.geometry()
	rows := m.output.RowCount(m.Text(), g.inner)
	m.outOffset = min(max(m.outOffset+delta, 0), max(rows-g.body, 0))
	return m
}
