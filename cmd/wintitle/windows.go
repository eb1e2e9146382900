package main

import (
	"encoding/json"
	"fmt"

	"github.com/1broseidon/wintitle/internal/platform"
	"github.com/1broseidon/wintitle/internal/windir"
)

type windowJSON struct {
	Handle uint64        `json:"handle"`
	Title  string        `json:"title"`
	Bounds platform.Rect `json:"bounds"`
}

func toWindowJSON(w windir.Window) windowJSON {
	return windowJSON{Handle: uint64(w.ID), Title: w.Title, Bounds: w.Bounds}
}

func writeJSON(v any) int {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fail(err)
	}
	return 0
}

func runList(args []string) int {
	fs, configPath := newFlagSet("list", "list [--config PATH] [--json]")
	asJSON := fs.Bool("json", false, "Print handles, titles and bounds as JSON")
	if err := fs.Parse(args); err != nil {
		return parseExit(err)
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return 2
	}

	a, err := openApp(*configPath)
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	if !*asJSON {
		titles, err := a.dir.ListTitles()
		if err != nil {
			return fail(err)
		}
		for _, title := range titles {
			fmt.Fprintln(stdout, title)
		}
		return 0
	}

	windows, err := a.dir.Windows()
	if err != nil {
		return fail(err)
	}
	out := make([]windowJSON, 0, len(windows))
	for _, w := range windows {
		out = append(out, toWindowJSON(w))
	}
	return writeJSON(out)
}

func runFind(args []string) int {
	fs, configPath := newFlagSet("find", "find [--config PATH] [--json] <query>")
	asJSON := fs.Bool("json", false, "Print the window as JSON")
	if err := fs.Parse(args); err != nil {
		return parseExit(err)
	}
	query, ok := queryArg(fs)
	if !ok {
		fs.Usage()
		return 2
	}

	a, err := openApp(*configPath)
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	w, err := a.dir.Find(query)
	if err != nil {
		return fail(err)
	}
	if *asJSON {
		return writeJSON(toWindowJSON(w))
	}
	fmt.Fprintf(stdout, "%#x\t%s\n", uint64(w.ID), w.Title)
	return 0
}

func runFocus(args []string) int {
	return runAction("focus", args, (*windir.Directory).Focus)
}

func runMaximize(args []string) int {
	return runAction("maximize", args, (*windir.Directory).Maximize)
}

func runAction(name string, args []string, action func(*windir.Directory, string) error) int {
	fs, configPath := newFlagSet(name, name+" [--config PATH] <query>")
	if err := fs.Parse(args); err != nil {
		return parseExit(err)
	}
	query, ok := queryArg(fs)
	if !ok {
		fs.Usage()
		return 2
	}

	a, err := openApp(*configPath)
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	if err := action(a.dir, query); err != nil {
		return fail(err)
	}
	return 0
}

func runFocused(args []string) int {
	fs, configPath := newFlagSet("focused", "focused [--config PATH]")
	if err := fs.Parse(args); err != nil {
		return parseExit(err)
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return 2
	}

	a, err := openApp(*configPath)
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	title, err := a.dir.FocusedTitle()
	if err != nil {
		return fail(err)
	}
	fmt.Fprintln(stdout, title)
	return 0
}

func runMatches(args []string) int {
	fs, configPath := newFlagSet("matches", "matches [--config PATH] <query>")
	quiet := fs.Bool("q", false, "Only set the exit status")
	if err := fs.Parse(args); err != nil {
		return parseExit(err)
	}
	query, ok := queryArg(fs)
	if !ok {
		fs.Usage()
		return 2
	}

	a, err := openApp(*configPath)
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	matches, err := a.dir.TitleMatchesFocused(query)
	if err != nil {
		return fail(err)
	}
	if !*quiet {
		fmt.Fprintln(stdout, matches)
	}
	if !matches {
		return 1
	}
	return 0
}

func runBounds(args []string) int {
	fs, configPath := newFlagSet("bounds", "bounds [--config PATH] [--json] <query>")
	asJSON := fs.Bool("json", false, "Print the rectangle as JSON")
	if err := fs.Parse(args); err != nil {
		return parseExit(err)
	}
	query, ok := queryArg(fs)
	if !ok {
		fs.Usage()
		return 2
	}

	a, err := openApp(*configPath)
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	r, err := a.dir.Bounds(query)
	if err != nil {
		return fail(err)
	}
	if *asJSON {
		return writeJSON(r)
	}
	fmt.Fprintf(stdout, "%d %d %d %d\n", r.Left, r.Top, r.Right, r.Bottom)
	return 0
}
