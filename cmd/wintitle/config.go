package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/1broseidon/wintitle/internal/config"
	"github.com/1broseidon/wintitle/internal/tui"
)

var editConfig = tui.EditConfig

func printConfigUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  wintitle config print [--config PATH] [--defaults] [--sources]")
	fmt.Fprintln(os.Stderr, "  wintitle config validate [--config PATH]")
	fmt.Fprintln(os.Stderr, "  wintitle config init [--config PATH] [--force]")
	fmt.Fprintln(os.Stderr, "  wintitle config edit [--config PATH]")
}

func runConfig(args []string) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		printConfigUsage()
		return 2
	}

	switch args[0] {
	case "print":
		return runConfigPrint(args[1:])
	case "validate":
		return runConfigValidate(args[1:])
	case "init":
		return runConfigInit(args[1:])
	case "edit":
		return runConfigEdit(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown config subcommand: %s\n", args[0])
		return 2
	}
}

func runConfigPrint(args []string) int {
	fs, configPath := newFlagSet("config print", "config print [--config PATH] [--defaults] [--sources]")
	printDefaults := fs.Bool("defaults", false, "Print built-in defaults (no files)")
	printSources := fs.Bool("sources", false, "Print where each file-provided key was set")
	if err := fs.Parse(args); err != nil {
		return parseExit(err)
	}

	var res *config.LoadResult
	if *printDefaults {
		res = &config.LoadResult{Config: config.DefaultConfig()}
	} else {
		var err error
		if res, err = loadConfig(*configPath); err != nil {
			return fail(err)
		}
	}

	if res.File != "" {
		fmt.Fprintf(stdout, "# file: %s\n", res.File)
	}
	if *printSources {
		keys := make([]string, 0, len(res.Sources))
		for key := range res.Sources {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Fprintf(stdout, "# %s: %s\n", key, formatSource(res.Sources[key]))
		}
	}

	data, err := yaml.Marshal(res.Config)
	if err != nil {
		return fail(err)
	}
	fmt.Fprint(stdout, string(data))
	return 0
}

func runConfigValidate(args []string) int {
	fs, configPath := newFlagSet("config validate", "config validate [--config PATH]")
	if err := fs.Parse(args); err != nil {
		return parseExit(err)
	}

	if _, err := loadConfig(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Fprintln(stdout, "config: ok")
	return 0
}

func runConfigInit(args []string) int {
	fs, configPath := newFlagSet("config init", "config init [--config PATH] [--force]")
	force := fs.Bool("force", false, "Overwrite an existing file")
	if err := fs.Parse(args); err != nil {
		return parseExit(err)
	}

	path, err := targetConfigPath(*configPath)
	if err != nil {
		return fail(err)
	}
	if _, err := os.Stat(path); err == nil && !*force {
		fmt.Fprintf(os.Stderr, "%s already exists (use --force to overwrite)\n", path)
		return 1
	}

	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return fail(err)
	}
	fmt.Fprintf(stdout, "wrote %s\n", path)
	return 0
}

func runConfigEdit(args []string) int {
	fs, configPath := newFlagSet("config edit", "config edit [--config PATH]")
	if err := fs.Parse(args); err != nil {
		return parseExit(err)
	}

	path, err := targetConfigPath(*configPath)
	if err != nil {
		return fail(err)
	}
	res, err := config.LoadFromPath(path)
	if err != nil {
		return fail(err)
	}

	updated, err := editConfig(res.Config)
	if errors.Is(err, tui.ErrCancelled) {
		return 1
	}
	if err != nil {
		return fail(err)
	}

	if err := config.Save(path, updated); err != nil {
		return fail(err)
	}
	fmt.Fprintf(stdout, "wrote %s\n", path)
	return 0
}

func targetConfigPath(flagPath string) (string, error) {
	if flagPath != "" {
		return flagPath, nil
	}
	return config.DefaultConfigPath()
}

func formatSource(src config.Source) string {
	switch src.Kind {
	case config.SourceFile:
		if src.Line > 0 {
			return fmt.Sprintf("%s:%d:%d", src.File, src.Line, src.Column)
		}
		return src.File
	default:
		return string(src.Kind)
	}
}
