// Package logging builds the process zerolog logger from configuration.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/1broseidon/wintitle/internal/config"
)

// ParseLevel converts a config level name to a zerolog level. Unknown names
// map to info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New returns a logger writing human-readable lines to stderr and, when
// cfg.File is set, plain lines to a rotating file. The returned closer
// releases the file and is never nil.
func New(cfg config.LoggingConfig) (zerolog.Logger, io.Closer, error) {
	return newLogger(cfg, os.Stderr)
}

func newLogger(cfg config.LoggingConfig, console io.Writer) (zerolog.Logger, io.Closer, error) {
	writers := []io.Writer{
		zerolog.ConsoleWriter{
			Out:        console,
			TimeFormat: "15:04:05",
		},
	}

	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		rf, err := OpenRotatingFile(cfg.File, cfg.MaxSizeMB, cfg.MaxFiles)
		if err != nil {
			return zerolog.Nop(), closer, err
		}
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        rf,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		})
		closer = rf
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Logger()
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
