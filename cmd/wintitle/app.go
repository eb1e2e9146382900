package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/1broseidon/wintitle/internal/config"
	"github.com/1broseidon/wintitle/internal/logging"
	"github.com/1broseidon/wintitle/internal/platform"
	"github.com/1broseidon/wintitle/internal/windir"
)

// Overridden in tests.
var (
	stdout     io.Writer = os.Stdout
	newBackend           = platform.NewBackend
)

// app bundles what every window command needs.
type app struct {
	cfg     *config.Config
	dir     *windir.Directory
	logger  zerolog.Logger
	closers []io.Closer
}

func loadConfig(path string) (*config.LoadResult, error) {
	if path == "" {
		return config.LoadWithSources()
	}
	return config.LoadFromPath(path)
}

func openApp(configPath string) (*app, error) {
	res, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}
	cfg := res.Config

	logger, logCloser, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize logging")
	}
	a := &app{cfg: cfg, logger: logger, closers: []io.Closer{logCloser}}

	backend, err := newBackend(platform.Options{Display: cfg.Display})
	if err != nil {
		a.Close()
		return nil, errors.Wrap(err, "failed to open window system")
	}
	if c, ok := backend.(io.Closer); ok {
		a.closers = append(a.closers, c)
	}

	a.dir = windir.New(backend,
		windir.WithLogger(logger),
		windir.WithMaximizeMode(windir.MaximizeMode(cfg.MaximizeMode)),
	)
	return a, nil
}

// Close releases resources in reverse order of acquisition.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i].Close()
	}
	a.closers = nil
}

// newFlagSet returns a FlagSet carrying the shared --config flag.
func newFlagSet(name, usage string) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	configPath := fs.String("config", "", "Config file path")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: wintitle %s\n\n", usage)
		fs.PrintDefaults()
	}
	return fs, configPath
}

func parseExit(err error) int {
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	return 2
}

// queryArg joins the positional arguments so unquoted multi-word queries work.
func queryArg(fs *flag.FlagSet) (string, bool) {
	if fs.NArg() == 0 {
		return "", false
	}
	return strings.Join(fs.Args(), " "), true
}

// fail reports err and returns the exit status for it.
func fail(err error) int {
	fmt.Fprintf(os.Stderr, "wintitle: %v\n", err)
	return 1
}
