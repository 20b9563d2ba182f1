package converter

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

type fakeClipboard struct {
	writes []string
	err    error
}

func (f *fakeClipboard) Backend() string { return "fake" }

func (f *fakeClipboard) WriteText(_ context.Context, s string) error {
	f.writes = append(f.writes, s)
	return f.err
}

// recordHandler keeps every record it is handed.
type recordHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *recordHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r)
	return nil
}

func (h *recordHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordHandler) WithGroup(string) slog.Handler      { return h }

func (h *recordHandler) errors() []slog.Record {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []slog.Record
	for _, r := range h.records {
		if r.Level >= slog.LevelError {
			out = append(out, r)
		}
	}
	return out
}

func attr(r slog.Record, key string) string {
	var v string
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == key {
			v = a.Value.String()
			return false
		}
		return true
	})
	return v
}

// tickRecorder stands in for tea.Tick; timers fire only when a test asks.
type tickRecorder struct {
	durations []time.Duration
	fire      []func(time.Time) tea.Msg
}

func (r *tickRecorder) tick(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	r.durations = append(r.durations, d)
	r.fire = append(r.fire, fn)
	return func() tea.Msg { return nil }
}

type harness struct {
	clip  *fakeClipboard
	logs  *recordHandler
	ticks *tickRecorder
}

func newHarness(t *testing.T, opts Options) (Model, *harness) {
	t.Helper()
	h := &harness{clip: &fakeClipboard{}, logs: &recordHandler{}, ticks: &tickRecorder{}}
	if opts.Clipboard == nil {
		opts.Clipboard = h.clip
	}
	opts.Logger = slog.New(h.logs)
	m := New(opts)
	m.tick = h.ticks.tick
	return m, h
}

// run executes cmd synchronously and feeds its message back.
func run(t *testing.T, m Model, cmd tea.Cmd) (Model, tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	return m.Update(cmd())
}

func press(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func typeText(m Model, s string) Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func resize(m Model, w, h int) Model {
	m, _ = m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return m
}

func screen(m Model) []string {
	return strings.Split(ansi.Strip(m.View()), "\n")
}

var timeZero time.Time

func newLogger(h slog.Handler) *slog.Logger { return slog.New(h) }
