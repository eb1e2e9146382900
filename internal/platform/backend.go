package platform

import "github.com/pkg/errors"

// WindowID is a platform-neutral window identifier. On Windows it carries the
// HWND, on X11 the window XID. Zero means "no window".
type WindowID uintptr

// Rect describes a window rectangle in screen coordinates. Right and Bottom
// are exclusive edges, matching GetWindowRect.
type Rect struct {
	Left   int `json:"left" yaml:"left"`
	Top    int `json:"top" yaml:"top"`
	Right  int `json:"right" yaml:"right"`
	Bottom int `json:"bottom" yaml:"bottom"`
}

// Width returns the horizontal extent of r.
func (r Rect) Width() int { return r.Right - r.Left }

// Height returns the vertical extent of r.
func (r Rect) Height() int { return r.Bottom - r.Top }

// Empty reports whether r has no positive area.
func (r Rect) Empty() bool { return r.Width() <= 0 || r.Height() <= 0 }

// ErrUnsupported is returned by NewBackend on platforms without a window
// system implementation.
var ErrUnsupported = errors.New("window system not supported on this platform")

// Backend abstracts the host window manager primitives.
type Backend interface {
	// Windows enumerates top-level windows in host order.
	Windows() ([]WindowID, error)
	Title(id WindowID) (string, error)
	Bounds(id WindowID) (Rect, error)
	Visible(id WindowID) (bool, error)

	// Foreground returns the window holding keyboard focus, or 0 when the
	// host reports none.
	Foreground() (WindowID, error)
	SetForeground(id WindowID) error
	SetFocus(id WindowID) error
	Maximize(id WindowID) error
}

// Options tune backend construction.
type Options struct {
	// Display overrides the X11 display name. Ignored on Windows.
	Display string
}
