package windir

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/1broseidon/wintitle/internal/platform"
)

// titleContains reports whether title contains query, ignoring case.
func titleContains(title, query string) bool {
	return strings.Contains(strings.ToLower(title), strings.ToLower(query))
}

// Find returns the first window, in enumeration order, whose title contains
// query case-insensitively. An empty query matches the first window.
func (d *Directory) Find(query string) (Window, error) {
	windows, err := d.Windows()
	if err != nil {
		return Window{}, err
	}

	for _, w := range windows {
		if titleContains(w.Title, query) {
			d.log.Debug().
				Str("query", query).
				Uint64("handle", uint64(w.ID)).
				Str("title", w.Title).
				Msg("resolved window")
			return w, nil
		}
	}

	d.log.Debug().Str("query", query).Int("candidates", len(windows)).Msg("no window matched")
	return Window{}, errors.Wrapf(ErrNotFound, "no visible window title contains %q", query)
}

// Resolve returns the handle of the window Find would return.
func (d *Directory) Resolve(query string) (platform.WindowID, error) {
	w, err := d.Find(query)
	if err != nil {
		return 0, err
	}
	return w.ID, nil
}
