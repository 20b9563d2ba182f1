package clipboard

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// Command pipes text into an external copy tool.
type Command struct {
	Path string
	Args []string
}

// ParseCommand splits a command line on whitespace. It does not interpret
// quotes.
func ParseCommand(line string) (*Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, &ClipboardError{Backend: BackendCommand, Op: "parse", Err: fmt.Errorf("%w: empty command", ErrUnsupported)}
	}
	return &Command{Path: fields[0], Args: fields[1:]}, nil
}

func (c *Command) Backend() string { return filepath.Base(c.Path) }

func (c *Command) WriteText(ctx context.Context, s string) error {
	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	cmd.Stdin = strings.NewReader(s)
	// Stdout and stderr stay unset: xclip and wl-copy fork a child that keeps
	// inherited pipes open, and waiting on them would block.
	if err := cmd.Run(); err != nil {
		cause := ErrDenied
		if errors.Is(err, exec.ErrNotFound) {
			cause = ErrUnsupported
		}
		return &ClipboardError{Backend: c.Backend(), Op: "run", Err: fmt.Errorf("%w: %w", cause, err)}
	}
	return nil
}

type candidate struct {
	name string
	args []string
	env  string // required environment variable, if any
}

// Probed in order; the first one present on PATH wins.
var candidates = []candidate{
	{name: "wl-copy", env: "WAYLAND_DISPLAY"},
	{name: "xclip", args: []string{"-selection", "clipboard"}, env: "DISPLAY"},
	{name: "xsel", args: []string{"--clipboard", "--input"}, env: "DISPLAY"},
	{name: "pbcopy"},
	{name: "clip.exe"},
}

// DetectCommand finds a copy tool usable in the current environment.
func DetectCommand(getenv func(string) string, lookPath func(string) (string, error)) (*Command, bool) {
	for _, c := range candidates {
		if c.env != "" && getenv(c.env) == "" {
			continue
		}
		path, err := lookPath(c.name)
		if err != nil {
			continue
		}
		return &Command{Path: path, Args: c.args}, true
	}
	return nil, false
}
