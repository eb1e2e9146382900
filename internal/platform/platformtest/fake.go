// Package platformtest provides an in-memory platform.Backend for tests that
// need a window list without a display.
package platformtest

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"

	"github.com/1broseidon/wintitle/internal/platform"
)

// ErrInvalidHandle is returned for handles the fake does not know, mirroring
// ERROR_INVALID_WINDOW_HANDLE / BadWindow on real hosts.
var ErrInvalidHandle = errors.New("invalid window handle")

// Window is a simulated top-level window.
type Window struct {
	ID     platform.WindowID
	Title  string
	Bounds platform.Rect
	Hidden bool
}

// Call records a state-changing request made against the fake.
type Call struct {
	Op string
	ID platform.WindowID
}

func (c Call) String() string {
	return fmt.Sprintf("%s(%d)", c.Op, c.ID)
}

// Backend is a fake host window manager. The zero value has no windows.
type Backend struct {
	mu         sync.Mutex
	windows    []Window
	foreground platform.WindowID
	calls      []Call

	// EnumErr, when set, is returned by Windows.
	EnumErr error
	// ForegroundErr, when set, is returned by Foreground.
	ForegroundErr error
	// ActionErr, when set, is returned by SetForeground, SetFocus and Maximize.
	ActionErr error
	// TitleErr and BoundsErr fail Title or Bounds for single handles, like a
	// window that closes between enumeration and the read.
	TitleErr  map[platform.WindowID]error
	BoundsErr map[platform.WindowID]error
}

var _ platform.Backend = (*Backend)(nil)

// New returns a fake backend holding windows in enumeration order.
func New(windows ...Window) *Backend {
	b := &Backend{}
	b.windows = append(b.windows, windows...)
	return b
}

// Add appends a window to the end of the enumeration order.
func (b *Backend) Add(w Window) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.windows = append(b.windows, w)
}

// Remove closes a window; later lookups of its handle fail.
func (b *Backend) Remove(id platform.WindowID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, w := range b.windows {
		if w.ID == id {
			b.windows = append(b.windows[:i], b.windows[i+1:]...)
			break
		}
	}
	if b.foreground == id {
		b.foreground = 0
	}
}

// Focus makes id the foreground window without recording a call.
func (b *Backend) Focus(id platform.WindowID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.foreground = id
}

// Calls returns the recorded state-changing requests in order.
func (b *Backend) Calls() []Call {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Call, len(b.calls))
	copy(out, b.calls)
	return out
}

func (b *Backend) Windows() ([]platform.WindowID, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.EnumErr != nil {
		return nil, b.EnumErr
	}
	ids := make([]platform.WindowID, 0, len(b.windows))
	for _, w := range b.windows {
		ids = append(ids, w.ID)
	}
	return ids, nil
}

func (b *Backend) Title(id platform.WindowID) (string, error) {
	if err := b.TitleErr[id]; err != nil {
		return "", err
	}
	w, err := b.lookup(id)
	if err != nil {
		return "", err
	}
	return w.Title, nil
}

func (b *Backend) Bounds(id platform.WindowID) (platform.Rect, error) {
	if err := b.BoundsErr[id]; err != nil {
		return platform.Rect{}, err
	}
	w, err := b.lookup(id)
	if err != nil {
		return platform.Rect{}, err
	}
	return w.Bounds, nil
}

func (b *Backend) Visible(id platform.WindowID) (bool, error) {
	w, err := b.lookup(id)
	if err != nil {
		return false, err
	}
	return !w.Hidden, nil
}

func (b *Backend) Foreground() (platform.WindowID, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ForegroundErr != nil {
		return 0, b.ForegroundErr
	}
	return b.foreground, nil
}

func (b *Backend) SetForeground(id platform.WindowID) error {
	if err := b.record("SetForeground", id); err != nil {
		return err
	}
	b.mu.Lock()
	b.foreground = id
	b.mu.Unlock()
	return nil
}

func (b *Backend) SetFocus(id platform.WindowID) error {
	return b.record("SetFocus", id)
}

func (b *Backend) Maximize(id platform.WindowID) error {
	return b.record("Maximize", id)
}

func (b *Backend) record(op string, id platform.WindowID) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, Call{Op: op, ID: id})
	if b.ActionErr != nil {
		return b.ActionErr
	}
	if _, ok := b.indexLocked(id); !ok {
		return errors.Wrapf(ErrInvalidHandle, "%s(%d)", op, id)
	}
	return nil
}

func (b *Backend) lookup(id platform.WindowID) (Window, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	i, ok := b.indexLocked(id)
	if !ok {
		return Window{}, errors.Wrapf(ErrInvalidHandle, "window %d", id)
	}
	return b.windows[i], nil
}

func (b *Backend) indexLocked(id platform.WindowID) (int, bool) {
	for i, w := range b.windows {
		if w.ID == id {
			return i, true
		}
	}
	return -1, false
}
