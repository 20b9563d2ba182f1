package clipboard

import (
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Options configures New. Zero fields use the process environment.
type Options struct {
	// Command overrides copy tool detection, e.g. "xclip -selection clipboard".
	Command string
	// TTY receives OSC 52 sequences; nil means /dev/tty.
	TTY io.Writer

	Getenv   func(string) string
	LookPath func(string) (string, error)
}

// New returns the writer for a backend name (see Backends). The auto
// backend prefers a copy tool and falls back to OSC 52.
func New(backend string, opts Options) (Writer, error) {
	if opts.Getenv == nil {
		opts.Getenv = os.Getenv
	}
	if opts.LookPath == nil {
		opts.LookPath = exec.LookPath
	}
	osc := &OSC52{Out: opts.TTY, Getenv: opts.Getenv}

	switch backend {
	case BackendOSC52:
		return osc, nil
	case BackendNone:
		return Disabled{}, nil
	case BackendCommand:
		cmd, err := command(opts)
		if err != nil {
			return nil, err
		}
		return cmd, nil
	case BackendAuto, "":
		cmd, err := command(opts)
		if err != nil {
			return osc, nil
		}
		return Chain{cmd, osc}, nil
	default:
		return nil, fmt.Errorf("unknown clipboard backend %q", backend)
	}
}

func command(opts Options) (*Command, error) {
	if opts.Command != "" {
		return ParseCommand(opts.Command)
	}
	cmd, ok := DetectCommand(opts.Getenv, opts.LookPath)
	if !ok {
		return nil, &ClipboardError{Backend: BackendCommand, Op: "detect", Err: ErrUnsupported}
	}
	return cmd, nil
}
