package windir

import (
	"github.com/pkg/errors"

	"github.com/1broseidon/wintitle/internal/platform"
)

// Focus brings the window matching query to the foreground and gives it input
// focus. The host is not re-queried to confirm the switch happened.
func (d *Directory) Focus(query string) error {
	id, err := d.Resolve(query)
	if err != nil {
		return err
	}
	return d.focus(id)
}

// FocusWindow focuses a record obtained from Windows or Find without
// resolving its title again, so duplicate titles pick the exact window.
func (d *Directory) FocusWindow(w Window) error {
	return d.focus(w.ID)
}

// Maximize focuses the window matching query and, in MaximizeRequest mode,
// asks the host to maximize it.
func (d *Directory) Maximize(query string) error {
	id, err := d.Resolve(query)
	if err != nil {
		return err
	}
	if err := d.focus(id); err != nil {
		return err
	}
	if d.maximizeMode == MaximizeFocusOnly {
		return nil
	}
	if err := d.backend.Maximize(id); err != nil {
		d.log.Warn().Err(err).Uint64("handle", uint64(id)).Msg("maximize request failed")
		return errors.Wrapf(err, "failed to maximize window %d", id)
	}
	return nil
}

func (d *Directory) focus(id platform.WindowID) error {
	if err := d.backend.SetForeground(id); err != nil {
		d.log.Warn().Err(err).Uint64("handle", uint64(id)).Msg("set foreground failed")
		return errors.Wrapf(err, "failed to raise window %d", id)
	}
	if err := d.backend.SetFocus(id); err != nil {
		d.log.Warn().Err(err).Uint64("handle", uint64(id)).Msg("set focus failed")
		return errors.Wrapf(err, "failed to focus window %d", id)
	}
	return nil
}

// FocusedTitle returns the title of the foreground window. An empty string
// with a nil error is a foreground window without a title; ErrNoForeground
// means there is no foreground window at all.
func (d *Directory) FocusedTitle() (string, error) {
	id, err := d.backend.Foreground()
	if err != nil {
		return "", errors.Wrap(err, "failed to query foreground window")
	}
	if id == 0 {
		return "", ErrNoForeground
	}

	title, err := d.backend.Title(id)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read title of foreground window %d", id)
	}
	return title, nil
}

// TitleMatchesFocused reports whether query contains the focused window's
// title, ignoring case. Note the direction: the argument is the haystack, so
// "My App - Notes" matches a focused window titled "Notes", and a focused
// window with an empty title matches every query.
func (d *Directory) TitleMatchesFocused(query string) (bool, error) {
	title, err := d.FocusedTitle()
	if err != nil {
		return false, err
	}
	return titleContains(query, title), nil
}

// Bounds returns the screen rectangle of the window matching query.
func (d *Directory) Bounds(query string) (platform.Rect, error) {
	w, err := d.Find(query)
	if err != nil {
		return platform.Rect{}, err
	}
	return w.Bounds, nil
}
