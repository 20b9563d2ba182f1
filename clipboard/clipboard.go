package clipboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupported reports that no usable clipboard mechanism exists.
	ErrUnsupported = errors.New("clipboard unavailable")
	// ErrDenied reports that the mechanism exists but rejected the write.
	ErrDenied = errors.New("clipboard write rejected")
)

// Writer puts text on the clipboard.
type Writer interface {
	WriteText(ctx context.Context, s string) error
}

// ClipboardError describes a failed clipboard operation.
type ClipboardError struct {
	Backend string
	Op      string
	Err     error
}

func (e *ClipboardError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("clipboard %s: %v", e.Backend, e.Err)
	}
	return fmt.Sprintf("clipboard %s: %s: %v", e.Backend, e.Op, e.Err)
}

func (e *ClipboardError) Unwrap() error { return e.Err }

// Backend names accepted by New.
const (
	BackendAuto    = "auto"
	BackendOSC52   = "osc52"
	BackendCommand = "command"
	BackendNone    = "none"
)

// Backends lists the names New accepts.
func Backends() []string {
	return []string{BackendAuto, BackendOSC52, BackendCommand, BackendNone}
}

// Name returns the backend name of w, or "unknown".
func Name(w Writer) string {
	if n, ok := w.(interface{ Backend() string }); ok {
		return n.Backend()
	}
	return "unknown"
}

// WriterFunc adapts a function to Writer.
type WriterFunc func(ctx context.Context, s string) error

func (f WriterFunc) WriteText(ctx context.Context, s string) error { return f(ctx, s) }

// Disabled never writes.
type Disabled struct{}

func (Disabled) Backend() string { return BackendNone }

func (Disabled) WriteText(context.Context, string) error {
	return &ClipboardError{Backend: BackendNone, Op: "write", Err: ErrUnsupported}
}

// Chain tries each writer in order and stops at the first one that does not
// fail with ErrUnsupported.
type Chain []Writer

func (c Chain) Backend() string {
	names := make([]string, 0, len(c))
	for _, w := range c {
		names = append(names, Name(w))
	}
	return strings.Join(names, ",")
}

func (c Chain) WriteText(ctx context.Context, s string) error {
	var errs []error
	for _, w := range c {
		err := w.WriteText(ctx, s)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrUnsupported) {
			return err
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return &ClipboardError{Backend: c.Backend(), Op: "write", Err: ErrUnsupported}
	}
	return errors.Join(errs...)
}
