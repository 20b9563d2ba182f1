package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/rtlview/buffer"
	"github.com/iw2rmb/rtlview/internal/grapheme"
)

// Model is a Bubble Tea component that renders and edits a buffer.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	focused bool

	width   int
	height  int
	yOffset int
}

func New(cfg Config) Model {
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = grapheme.DefaultTabWidth
	}
	return Model{
		cfg:     cfg,
		buf:     buffer.New(cfg.Text, buffer.Options{HistoryLimit: cfg.HistoryLimit}),
		focused: true,
	}
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

// Text returns the document exactly as entered.
func (m Model) Text() string { return m.buf.Text() }

// Version changes whenever the text or the cursor changes.
func (m Model) Version() uint64 { return m.buf.Version() }

// SetText replaces the document and moves the cursor to its end.
func (m Model) SetText(s string) Model {
	m.buf.SetText(s)
	m.followCursor()
	return m
}

// Reset empties the document.
func (m Model) Reset() Model {
	m.buf.Reset()
	m.yOffset = 0
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	m.width = max(width, 0)
	m.height = max(height, 0)
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	m.focused = true
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg), nil
	}
	return m, nil
}

func (m Model) View() string {
	return m.render()
}

// updateMouse expects coordinates relative to the editor's top-left cell.
func (m Model) updateMouse(msg tea.MouseMsg) Model {
	if msg.Action != tea.MouseActionPress {
		return m
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		if m.focused {
			m.buf.SetCursor(m.screenToDocPos(msg.X, msg.Y))
		}
	case tea.MouseButtonWheelUp:
		m.yOffset = max(m.yOffset-1, 0)
	case tea.MouseButtonWheelDown:
		rows := len(m.visualRows())
		m.yOffset = min(m.yOffset+1, max(rows-m.height, 0))
	}
	return m
}

// followCursor keeps the cursor's visual row inside the visible window.
func (m *Model) followCursor() {
	if m.height <= 0 {
		return
	}
	row := m.cursorVisualRow()
	if row < m.yOffset {
		m.yOffset = row
	}
	if row >= m.yOffset+m.height {
		m.yOffset = row - m.height + 1
	}
}
