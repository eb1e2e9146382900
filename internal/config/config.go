package config

import (
	"fmt"
	"strings"
)

// Maximize modes.
const (
	MaximizeRequest   = "request"
	MaximizeFocusOnly = "focus-only"
)

// Picker names accepted by the picker key.
const (
	PickerAuto   = "auto"
	PickerTUI    = "tui"
	PickerRofi   = "rofi"
	PickerFuzzel = "fuzzel"
	PickerWofi   = "wofi"
	PickerDmenu  = "dmenu"
)

const (
	DefaultLogLevel  = "info"
	DefaultMaxSizeMB = 5
	DefaultMaxFiles  = 3
)

// LoggingConfig configures the process logger.
type LoggingConfig struct {
	// Level controls verbosity: debug, info, warn, error
	Level string `yaml:"level"`
	// File additionally writes log entries to this path when set
	File string `yaml:"file,omitempty"`
	// MaxSizeMB rotates the log file once it grows past this size
	MaxSizeMB int `yaml:"max_size_mb"`
	// MaxFiles is how many rotated files to keep (file.1 ... file.N)
	MaxFiles int `yaml:"max_files"`
}

// Config is the effective wintitle configuration.
type Config struct {
	// MaximizeMode is "request" (focus, then maximize) or "focus-only".
	MaximizeMode string `yaml:"maximize_mode"`
	// Display overrides $DISPLAY for the X11 backend.
	Display string `yaml:"display,omitempty"`
	// Picker selects the interactive chooser used by `wintitle pick`.
	Picker  string        `yaml:"picker"`
	Logging LoggingConfig `yaml:"logging"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		MaximizeMode: MaximizeRequest,
		Picker:       PickerAuto,
		Logging: LoggingConfig{
			Level:     DefaultLogLevel,
			MaxSizeMB: DefaultMaxSizeMB,
			MaxFiles:  DefaultMaxFiles,
		},
	}
}

// ValidationError reports an invalid config value, with the file position it
// came from when known.
type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.Kind == SourceFile && e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch c.MaximizeMode {
	case MaximizeRequest, MaximizeFocusOnly:
	default:
		return &ValidationError{Path: "maximize_mode", Err: fmt.Errorf("maximize_mode must be one of: %s, %s", MaximizeRequest, MaximizeFocusOnly)}
	}
	switch c.Picker {
	case PickerAuto, PickerTUI, PickerRofi, PickerFuzzel, PickerWofi, PickerDmenu:
	default:
		return &ValidationError{Path: "picker", Err: fmt.Errorf("picker must be one of: auto, tui, rofi, fuzzel, wofi, dmenu")}
	}
	if strings.ContainsAny(c.Display, " \t\n") {
		return &ValidationError{Path: "display", Err: fmt.Errorf("display must not contain whitespace")}
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &ValidationError{Path: "logging.level", Err: fmt.Errorf("logging.level must be one of: debug, info, warn, error")}
	}
	if c.Logging.MaxSizeMB < 1 {
		return &ValidationError{Path: "logging.max_size_mb", Err: fmt.Errorf("logging.max_size_mb must be >= 1")}
	}
	if c.Logging.MaxFiles < 1 {
		return &ValidationError{Path: "logging.max_files", Err: fmt.Errorf("logging.max_files must be >= 1")}
	}
	return nil
}
