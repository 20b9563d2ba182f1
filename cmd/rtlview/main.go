// rtlview is a terminal converter for bilingual English-Arabic text. Text
// typed or pasted into the left pane is shown in the right pane with
// right-to-left paragraph direction and can be copied to the clipboard.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"github.com/iw2rmb/rtlview"
	"github.com/iw2rmb/rtlview/clipboard"
	"github.com/iw2rmb/rtlview/converter"
	"github.com/iw2rmb/rtlview/internal/config"
	"github.com/iw2rmb/rtlview/internal/logging"
)

const program = "rtlview"

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type cliOptions struct {
	configPath string
	text       string
	noMarks    bool
	noColor    bool
	version    bool
	help       bool
}

func newFlagSet(opts *cliOptions) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet(program, pflag.ContinueOnError)
	flagSet.StringVar(&opts.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/rtlview/config.toml)")
	flagSet.String("clipboard", clipboard.BackendAuto, "clipboard backend: auto, osc52, command or none")
	flagSet.String("log-file", "", "append JSON log records to this file")
	flagSet.String("log-level", "info", "log level: debug, info, warn or error")
	flagSet.StringVar(&opts.text, "text", "", `initial document; "-" reads it from stdin`)
	flagSet.BoolVar(&opts.noMarks, "no-marks", false, "do not wrap output rows in RTL isolate marks")
	flagSet.BoolVar(&opts.noColor, "no-color", false, "render without colors (also set by NO_COLOR)")
	flagSet.BoolVar(&opts.version, "version", false, "print version and exit")
	flagSet.BoolVarP(&opts.help, "help", "h", false, "show help")
	return flagSet
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var opts cliOptions
	flagSet := newFlagSet(&opts)
	flagSet.SetOutput(io.Discard)

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(stderr, flagSet)
			return nil
		}
		return err
	}
	if opts.help {
		printHelp(stderr, flagSet)
		return nil
	}
	if opts.version {
		rtlview.PrintVersion(stdout, program)
		return nil
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument: %s", rest[0])
	}

	cfg, err := config.Load(opts.configPath, flagSet)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger, closer, err := logging.New(cfg.Log.File, level)
	if err != nil {
		return err
	}
	defer closer.Close()

	clip, err := clipboard.New(cfg.Clipboard.Backend, clipboard.Options{Command: cfg.Clipboard.Command})
	if err != nil {
		return err
	}

	var programOpts []tea.ProgramOption
	text := opts.text
	if text == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = string(data)
		// Stdin is spent; keys come from the terminal.
		programOpts = append(programOpts, tea.WithInputTTY())
	}

	if opts.noColor || termenv.EnvNoColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	view := converter.New(converter.Options{
		Text:           text,
		Clipboard:      clip,
		Logger:         logger,
		DirectionMarks: cfg.UI.DirectionMarks && !opts.noMarks,
		Layout:         converter.Layout(cfg.UI.Layout),
		ShowHelp:       cfg.UI.ShowHelp,
	})

	logger.Info("starting",
		"version", rtlview.Version(),
		"clipboard", clipboard.Name(clip),
		"layout", cfg.UI.Layout,
	)

	programOpts = append(programOpts, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = tea.NewProgram(app{view: view}, programOpts...).Run()
	if err != nil {
		logger.Error("program exited", "err", err)
	}
	return err
}

// app adapts the converter to tea.Model.
type app struct {
	view converter.Model
}

func (a app) Init() tea.Cmd { return a.view.Init() }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.view, cmd = a.view.Update(msg)
	return a, cmd
}

func (a app) View() string { return a.view.View() }

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `rtlview - show bilingual English-Arabic text right-to-left.

Type or paste text into the input pane; the output pane shows the same
text with right-to-left direction. Nothing is reordered or reshaped.

Usage:
  rtlview [flags]

Examples:
  # Start with an empty document
  rtlview

  # Convert text from a pipe
  cat notes.txt | rtlview --text -

  # Copy through the terminal only (works over SSH)
  rtlview --clipboard osc52

Keys:
  ctrl+s, alt+c   copy          ctrl+l   clear
  pgup, pgdn      scroll output f1       how it works
  esc, ctrl+c     quit

Flags:
`)
	flagSet.SetOutput(w)
	flagSet.PrintDefaults()
}
