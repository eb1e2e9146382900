package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}
	os.Exit(run(os.Args[1], os.Args[2:]))
}

func run(command string, args []string) int {
	switch command {
	case "list":
		return runList(args)
	case "find":
		return runFind(args)
	case "focus":
		return runFocus(args)
	case "maximize":
		return runMaximize(args)
	case "focused":
		return runFocused(args)
	case "matches":
		return runMatches(args)
	case "bounds":
		return runBounds(args)
	case "pick":
		return runPick(args)
	case "mcp":
		return runMCP(args)
	case "config":
		return runConfig(args)
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printMainUsage(os.Stderr)
		return 2
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: wintitle <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  list                List titles of visible windows")
	fmt.Fprintln(w, "  find <query>        Show the first window whose title contains query")
	fmt.Fprintln(w, "  focus <query>       Bring the matching window to the foreground")
	fmt.Fprintln(w, "  maximize <query>    Focus and maximize the matching window")
	fmt.Fprintln(w, "  focused             Print the focused window's title")
	fmt.Fprintln(w, "  matches <query>     Exit 0 if query contains the focused window's title")
	fmt.Fprintln(w, "  bounds <query>      Print the matching window's screen rectangle")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  pick                Choose a window interactively and focus it")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  mcp serve           Start the MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config print        Print the effective configuration")
	fmt.Fprintln(w, "  config validate     Validate the config file")
	fmt.Fprintln(w, "  config init         Write a default config file")
	fmt.Fprintln(w, "  config edit         Edit the config file in a form")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Queries match case-insensitively against any part of the title.")
	fmt.Fprintln(w, "Every command accepts --config PATH (default: $WINTITLE_CONFIG or")
	fmt.Fprintln(w, "<user config dir>/wintitle/config.yaml).")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Exit status: 0 success, 1 not found / false / error, 2 usage error.")
}
