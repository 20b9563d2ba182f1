package converter

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/unicode/bidi"

	"github.com/iw2rmb/rtlview/clipboard"
	"github.com/iw2rmb/rtlview/display"
	"github.com/iw2rmb/rtlview/editor"
	"github.com/iw2rmb/rtlview/internal/logging"
)

// Layout arranges the two panes.
type Layout string

const (
	LayoutAuto  Layout = "auto"  // split when the terminal is wide enough
	LayoutSplit Layout = "split" // side by side
	LayoutStack Layout = "stack" // input above output
)

const (
	Title    = "Bilingual RTL Converter"
	Subtitle = "Convert bilingual English-Arabic text to RTL format for easier reading"

	InputHeader  = "INPUT (LTR)"
	OutputHeader = "OUTPUT (RTL)"

	InputPlaceholder  = "Paste your bilingual text here..."
	OutputPlaceholder = "RTL formatted text will appear here..."

	InputCaption  = "Left-to-Right format (Default)"
	OutputCaption = "Right-to-Left format (Arabic reading direction)"

	LabelCopy   = "Copy"
	LabelCopied = "Copied!"
	LabelClear  = "Clear"
)

// HelpNotes are the lines of the "How it works" card.
var HelpNotes = []string{
	"Paste your bilingual text in the left input area",
	"The right side shows the same text in RTL (right-to-left) format",
	"No changes to content - only the reading direction is adjusted",
	"Technical terms in both languages remain unchanged",
	`Click "Copy" to copy the RTL formatted text to your clipboard`,
}

// Options configures New.
type Options struct {
	Text string

	// Clipboard receives copied text. Nil disables copying to anything; every
	// attempt then fails and is logged.
	Clipboard clipboard.Writer
	// Logger is the diagnostic channel. Nil discards.
	Logger *slog.Logger

	// DirectionMarks wraps output rows in RLI/PDI isolates.
	DirectionMarks bool
	Layout         Layout
	ShowHelp       bool

	KeyMap KeyMap
	Styles *Styles
}

// Model is the converter view.
type Model struct {
	keys   KeyMap
	styles Styles
	layout Layout

	input  editor.Model
	output display.Pane

	clipboard clipboard.Writer
	logger    *slog.Logger

	copied bool
	// gen counts successful copies. A reset only applies to the copy that
	// armed it.
	gen uint64
	// tick schedules the reset; tea.Tick outside tests.
	tick func(time.Duration, func(time.Time) tea.Msg) tea.Cmd

	closed   bool
	showHelp bool

	width, height int
	outOffset     int
}

func New(opts Options) Model {
	keys := opts.KeyMap
	if keys.isZero() {
		keys = DefaultKeyMap()
	}
	styles := DefaultStyles()
	if opts.Styles != nil {
		styles = *opts.Styles
	}
	layout := opts.Layout
	if layout == "" {
		layout = LayoutAuto
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.Disabled{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	m := Model{
		keys:   keys,
		styles: styles,
		layout: layout,
		input: editor.New(editor.Config{
			Text:        opts.Text,
			Placeholder: InputPlaceholder,
			Style: editor.Style{
				Text:        styles.Text,
				Cursor:      styles.Cursor,
				Placeholder: styles.Placeholder,
			},
		}),
		output: display.Pane{
			Direction:   bidi.RightToLeft,
			Placeholder: OutputPlaceholder,
			Marks:       opts.DirectionMarks,
			Style: display.Style{
				Text:        styles.Text,
				Placeholder: styles.Placeholder,
			},
		},
		clipboard: clip,
		logger:    logger,
		tick:      tea.Tick,
		showHelp:  opts.ShowHelp,
		width:     80,
		height:    24,
	}
	return m.resize()
}

// Text returns the document.
func (m Model) Text() string { return m.input.Text() }

// SetText replaces the document. Copy feedback is left alone.
func (m Model) SetText(s string) Model {
	m.input = m.input.SetText(s)
	return m
}

// Clear empties the document. Copy feedback is left alone.
func (m Model) Clear() Model {
	m.input = m.input.Reset()
	m.outOffset = 0
	return m
}

// CopyEnabled reports whether there is anything to copy.
func (m Model) CopyEnabled() bool { return m.Text() != "" }

// Copied reports whether copy feedback is showing.
func (m Model) Copied() bool { return m.copied }

// CopyLabel is the text of the copy action.
func (m Model) CopyLabel() string {
	if m.copied {
		return LabelCopied
	}
	return LabelCopy
}

// ShowHelp reports whether the "How it works" card is visible.
func (m Model) ShowHelp() bool { return m.showHelp }

// Close tears the view down. Copy results and resets that arrive later
// are dropped.
func (m Model) Close() Model {
	m.closed = true
	return m
}

func (m Model) Closed() bool { return m.closed }

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(Title)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m.resize(), nil

	case copyResultMsg:
		return m.handleCopyResult(msg)

	case copiedResetMsg:
		if !m.closed && msg.gen == m.gen {
			m.copied = false
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.render()
}
