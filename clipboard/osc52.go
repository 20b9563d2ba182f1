package clipboard

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
)

// OSC52 sets the clipboard through the terminal with an OSC 52 escape.
//
// The sequence goes straight to the controlling terminal rather than
// through the program's renderer; it has no visible effect. Inside tmux the
// sequence is sent twice: wrapped for DCS passthrough, then bare for
// set-clipboard forwarding.
type OSC52 struct {
	// Out receives the sequence. Nil opens /dev/tty for each write.
	Out io.Writer
	// Getenv defaults to os.Getenv.
	Getenv func(string) string
}

func (*OSC52) Backend() string { return BackendOSC52 }

func (o *OSC52) WriteText(ctx context.Context, s string) error {
	if err := ctx.Err(); err != nil {
		return &ClipboardError{Backend: BackendOSC52, Op: "write", Err: err}
	}

	out := o.Out
	if out == nil {
		tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
		if err != nil {
			return &ClipboardError{Backend: BackendOSC52, Op: "open tty", Err: fmt.Errorf("%w: %w", ErrUnsupported, err)}
		}
		defer tty.Close()
		out = tty
	}

	seq := osc52.New(s)
	var seqs []osc52.Sequence
	switch multiplexer(o.getenv()) {
	case "tmux":
		seqs = append(seqs, seq.Tmux(), seq)
	case "screen":
		seqs = append(seqs, seq.Screen())
	default:
		seqs = append(seqs, seq)
	}
	for _, q := range seqs {
		if _, err := q.WriteTo(out); err != nil {
			return &ClipboardError{Backend: BackendOSC52, Op: "write", Err: fmt.Errorf("%w: %w", ErrDenied, err)}
		}
	}
	return nil
}

func (o *OSC52) getenv() func(string) string {
	if o.Getenv != nil {
		return o.Getenv
	}
	return os.Getenv
}

// multiplexer detects tmux or GNU screen, including sessions forwarded over
// SSH where only TERM survives.
func multiplexer(getenv func(string) string) string {
	term := getenv("TERM")
	switch {
	case getenv("TMUX") != "" || strings.HasPrefix(term, "tmux"):
		return "tmux"
	case getenv("STY") != "" || strings.HasPrefix(term, "screen"):
		return "screen"
	default:
		return ""
	}
}
