// Package windir enumerates, resolves and acts on visible top-level windows.
//
// Every call re-queries the host through a platform.Backend; nothing is
// cached between calls, so a Directory may be shared freely as long as the
// backend tolerates concurrent reads.
package windir

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/1broseidon/wintitle/internal/platform"
)

var (
	// ErrNotFound is returned when no visible window title contains the query.
	ErrNotFound = errors.New("window not found")
	// ErrNoForeground is returned when the host reports no foreground window.
	ErrNoForeground = errors.New("no foreground window")
)

// MaximizeMode selects what Maximize asks of the host.
type MaximizeMode string

const (
	// MaximizeRequest focuses the window and then asks the host to maximize it.
	MaximizeRequest MaximizeMode = "request"
	// MaximizeFocusOnly only focuses the window, leaving its size alone.
	MaximizeFocusOnly MaximizeMode = "focus-only"
)

// Window is a transient record of a visible window.
type Window struct {
	ID     platform.WindowID `json:"handle"`
	Title  string            `json:"title"`
	Bounds platform.Rect     `json:"bounds"`
}

// Directory answers window queries against a host backend.
type Directory struct {
	backend      platform.Backend
	log          zerolog.Logger
	maximizeMode MaximizeMode
}

// Option configures a Directory.
type Option func(*Directory)

// WithLogger sets the logger used for resolution and host failure events.
func WithLogger(logger zerolog.Logger) Option {
	return func(d *Directory) {
		d.log = logger.With().Str("component", "windir").Logger()
	}
}

// WithMaximizeMode overrides the default MaximizeRequest behavior.
func WithMaximizeMode(mode MaximizeMode) Option {
	return func(d *Directory) {
		if mode != "" {
			d.maximizeMode = mode
		}
	}
}

// New creates a Directory over backend.
func New(backend platform.Backend, opts ...Option) *Directory {
	d := &Directory{
		backend:      backend,
		log:          zerolog.Nop(),
		maximizeMode: MaximizeRequest,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Windows returns the visible, titled windows with a positive area, in host
// enumeration order. Windows that disappear mid-enumeration are skipped.
func (d *Directory) Windows() ([]Window, error) {
	ids, err := d.backend.Windows()
	if err != nil {
		return nil, errors.Wrap(err, "failed to enumerate windows")
	}

	windows := make([]Window, 0, len(ids))
	for _, id := range ids {
		w, ok := d.record(id)
		if !ok {
			continue
		}
		windows = append(windows, w)
	}
	return windows, nil
}

// ListTitles returns the titles of Windows, duplicates included.
func (d *Directory) ListTitles() ([]string, error) {
	windows, err := d.Windows()
	if err != nil {
		return nil, err
	}
	titles := make([]string, 0, len(windows))
	for _, w := range windows {
		titles = append(titles, w.Title)
	}
	return titles, nil
}

// record builds the Window for id, reporting false when the window is hidden,
// untitled, degenerate, or no longer readable.
func (d *Directory) record(id platform.WindowID) (Window, bool) {
	visible, err := d.backend.Visible(id)
	if err != nil {
		d.skip(id, err)
		return Window{}, false
	}
	if !visible {
		return Window{}, false
	}

	title, err := d.backend.Title(id)
	if err != nil {
		d.skip(id, err)
		return Window{}, false
	}
	if title == "" {
		return Window{}, false
	}

	bounds, err := d.backend.Bounds(id)
	if err != nil {
		d.skip(id, err)
		return Window{}, false
	}
	if bounds.Empty() {
		return Window{}, false
	}

	return Window{ID: id, Title: title, Bounds: bounds}, true
}

func (d *Directory) skip(id platform.WindowID, err error) {
	d.log.Debug().Err(err).Uint64("handle", uint64(id)).Msg("skipping unreadable window")
}
