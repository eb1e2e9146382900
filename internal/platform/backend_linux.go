//go:build linux

package platform

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/pkg/errors"

	"github.com/1broseidon/wintitle/internal/x11"
)

// LinuxBackend wraps an X11 connection behind the platform Backend interface.
type LinuxBackend struct {
	conn *x11.Connection
}

var _ Backend = (*LinuxBackend)(nil)

// NewBackend opens an X11 connection for the current session.
func NewBackend(opts Options) (Backend, error) {
	return NewLinuxBackendFromDisplay(opts.Display)
}

// NewLinuxBackend creates a Linux platform backend from an existing X11 connection.
func NewLinuxBackend(conn *x11.Connection) *LinuxBackend {
	return &LinuxBackend{conn: conn}
}

// NewLinuxBackendFromDisplay opens a fresh X11 connection. An empty display
// uses $DISPLAY.
func NewLinuxBackendFromDisplay(display string) (*LinuxBackend, error) {
	conn, err := x11.NewConnection(display)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to X11")
	}
	return &LinuxBackend{conn: conn}, nil
}

// Close releases the underlying X11 connection.
func (b *LinuxBackend) Close() error {
	if b != nil && b.conn != nil {
		b.conn.Close()
		b.conn = nil
	}
	return nil
}

// Windows lists managed top-level windows that are normal application
// windows (docks, desktops and notifications are excluded).
func (b *LinuxBackend) Windows() ([]WindowID, error) {
	conn, err := b.connection()
	if err != nil {
		return nil, err
	}

	clients, err := conn.ClientList()
	if err != nil {
		return nil, err
	}

	ids := make([]WindowID, 0, len(clients))
	for _, win := range clients {
		if !conn.IsNormalWindow(win) {
			continue
		}
		ids = append(ids, WindowID(win))
	}
	return ids, nil
}

func (b *LinuxBackend) Title(id WindowID) (string, error) {
	conn, err := b.connection()
	if err != nil {
		return "", err
	}
	return conn.WindowTitle(xproto.Window(id)), nil
}

func (b *LinuxBackend) Bounds(id WindowID) (Rect, error) {
	conn, err := b.connection()
	if err != nil {
		return Rect{}, err
	}

	x, y, w, h, err := conn.WindowGeometry(xproto.Window(id))
	if err != nil {
		return Rect{}, err
	}
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}, nil
}

func (b *LinuxBackend) Visible(id WindowID) (bool, error) {
	conn, err := b.connection()
	if err != nil {
		return false, err
	}
	return conn.IsViewable(xproto.Window(id))
}

func (b *LinuxBackend) Foreground() (WindowID, error) {
	conn, err := b.connection()
	if err != nil {
		return 0, err
	}

	win, err := conn.ActiveWindow()
	if err != nil {
		return 0, err
	}
	return WindowID(win), nil
}

func (b *LinuxBackend) SetForeground(id WindowID) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	return conn.ActivateWindow(xproto.Window(id))
}

func (b *LinuxBackend) SetFocus(id WindowID) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	return conn.SetInputFocus(xproto.Window(id))
}

func (b *LinuxBackend) Maximize(id WindowID) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	return conn.MaximizeWindow(xproto.Window(id))
}

func (b *LinuxBackend) connection() (*x11.Connection, error) {
	if b == nil || b.conn == nil {
		return nil, errors.New("x11 backend connection is nil")
	}
	return b.conn, nil
}
