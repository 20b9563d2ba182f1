// Package config loads rtlview settings from defaults, an optional TOML
// file, RTLVIEW_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/iw2rmb/rtlview/clipboard"
	"github.com/iw2rmb/rtlview/internal/logging"
)

// Layout values for UIConfig.Layout.
const (
	LayoutAuto  = "auto"
	LayoutSplit = "split"
	LayoutStack = "stack"
)

// Config holds application configuration.
type Config struct {
	Clipboard ClipboardConfig `mapstructure:"clipboard"`
	Log       LogConfig       `mapstructure:"log"`
	UI        UIConfig        `mapstructure:"ui"`
}

// ClipboardConfig selects how copied text reaches the system clipboard.
type ClipboardConfig struct {
	Backend string `mapstructure:"backend"`
	// Command overrides copy tool detection for the command backend.
	Command string `mapstructure:"command"`
}

// LogConfig holds diagnostic log settings. An empty File discards records.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DirectionMarks bool   `mapstructure:"direction_marks"`
	Layout         string `mapstructure:"layout"`
	ShowHelp       bool   `mapstructure:"show_help"`
}

// Flag names bound to config keys when present on the flag set.
var flagKeys = map[string]string{
	"clipboard": "clipboard.backend",
	"log-file":  "log.file",
	"log-level": "log.level",
}

// Load reads configuration. path selects the config file; when empty,
// $RTLVIEW_CONFIG is used, then config.toml under the user config
// directory. An explicitly named file must exist. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetDefault("clipboard.backend", clipboard.BackendAuto)
	v.SetDefault("clipboard.command", "")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.direction_marks", true)
	v.SetDefault("ui.layout", LayoutAuto)
	v.SetDefault("ui.show_help", true)

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("RTLVIEW_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(DefaultDir())
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("RTLVIEW")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// DefaultDir is $XDG_CONFIG_HOME/rtlview, falling back to ~/.config/rtlview.
func DefaultDir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(base, "rtlview")
}

// Validate rejects values no component accepts.
func (c Config) Validate() error {
	var errs []error
	if !slices.Contains(clipboard.Backends(), c.Clipboard.Backend) {
		errs = append(errs, fmt.Errorf("clipboard.backend: %q is not one of %s", c.Clipboard.Backend, strings.Join(clipboard.Backends(), ", ")))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	switch c.UI.Layout {
	case LayoutAuto, LayoutSplit, LayoutStack:
	default:
		errs = append(errs, fmt.Errorf("ui.layout: %q is not one of auto, split, stack", c.UI.Layout))
	}
	return errors.Join(errs...)
}
