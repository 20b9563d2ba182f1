package converter

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/iw2rmb/rtlview/clipboard"
)

// FeedbackDuration is how long "Copied!" stays after the latest copy.
const FeedbackDuration = 2 * time.Second

const copyTimeout = 5 * time.Second

type copyResultMsg struct {
	id      string
	backend string
	bytes   int
	err     error
}

type copiedResetMsg struct {
	gen uint64
}

// Copy writes the document to the clipboard in the background. It returns
// nil when the document is empty or the view is closed.
func (m Model) Copy() tea.Cmd {
	if m.closed || !m.CopyEnabled() {
		return nil
	}
	text := m.Text()
	w := m.clipboard
	id := uuid.NewString()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), copyTimeout)
		defer cancel()
		return copyResultMsg{
			id:      id,
			backend: clipboard.Name(w),
			bytes:   len(text),
			err:     w.WriteText(ctx, text),
		}
	}
}

func (m Model) handleCopyResult(msg copyResultMsg) (Model, tea.Cmd) {
	if m.closed {
		return m, nil
	}
	if msg.err != nil {
		backend := msg.backend
		var ce *clipboard.ClipboardError
		if errors.As(msg.err, &ce) {
			backend = ce.Backend
		}
		m.logger.Error("clipboard write failed",
			"backend", backend,
			"copy_id", msg.id,
			"err", msg.err,
		)
		return m, nil
	}

	m.logger.Debug("copied to clipboard", "backend", msg.backend, "copy_id", msg.id, "bytes", msg.bytes)
	m.gen++
	m.copied = true
	gen := m.gen
	return m, m.tick(FeedbackDuration, func(time.Time) tea.Msg {
		return copiedResetMsg{gen: gen}
	})
}
