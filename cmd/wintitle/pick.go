package main

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/1broseidon/wintitle/internal/config"
	"github.com/1broseidon/wintitle/internal/palette"
	"github.com/1broseidon/wintitle/internal/tui"
	"github.com/1broseidon/wintitle/internal/windir"
)

// Overridden in tests.
var (
	tuiPick         = tui.Pick
	newPalette      = palette.NewBackend
	stdinIsTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
)

func runPick(args []string) int {
	fs, configPath := newFlagSet("pick", "pick [--config PATH] [--menu]")
	forceMenu := fs.Bool("menu", false, "Use an external launcher (rofi, fuzzel, wofi, dmenu) even in a terminal")
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

	w, err := pickWindow(a, *forceMenu)
	if errors.Is(err, tui.ErrCancelled) || errors.Is(err, palette.ErrCancelled) {
		return 1
	}
	if err != nil {
		return fail(err)
	}

	if err := a.dir.FocusWindow(w); err != nil {
		return fail(err)
	}
	a.logger.Info().Str("title", w.Title).Uint64("handle", uint64(w.ID)).Msg("picked window")
	return 0
}

// pickerName decides between the terminal picker and an external launcher.
// "auto" uses the terminal picker when attached to one.
func pickerName(configured string, forceMenu, interactive bool) string {
	switch configured {
	case config.PickerTUI:
		if forceMenu {
			return config.PickerAuto
		}
		return config.PickerTUI
	case config.PickerAuto, "":
		if forceMenu || !interactive {
			return config.PickerAuto
		}
		return config.PickerTUI
	default:
		return configured
	}
}

func pickWindow(a *app, forceMenu bool) (windir.Window, error) {
	name := pickerName(a.cfg.Picker, forceMenu, stdinIsTerminal())
	if name == config.PickerTUI {
		return tuiPick(a.dir)
	}
	return pickWithPalette(a.dir, name)
}

func pickWithPalette(dir *windir.Directory, name string) (windir.Window, error) {
	backend, err := newPalette(name)
	if err != nil {
		return windir.Window{}, err
	}

	windows, err := dir.Windows()
	if err != nil {
		return windir.Window{}, err
	}
	if len(windows) == 0 {
		return windir.Window{}, errors.Wrap(windir.ErrNotFound, "no visible windows to pick from")
	}

	// No foreground window only means no row is preselected.
	focused, _ := dir.FocusedTitle()
	items := make([]palette.Item, 0, len(windows))
	for _, w := range windows {
		items = append(items, palette.Item{
			Label:  w.Title,
			Active: focused != "" && w.Title == focused,
		})
	}

	idx, err := backend.Show("window", items)
	if err != nil {
		return windir.Window{}, err
	}
	if idx < 0 || idx >= len(windows) {
		return windir.Window{}, errors.Errorf("%s returned invalid selection %d", backend.Name(), idx)
	}
	return windows[idx], nil
}
