package x11

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
)

// ClientList returns the managed top-level windows in _NET_CLIENT_LIST order
// (mapping order, oldest first).
func (c *Connection) ClientList() ([]xproto.Window, error) {
	clients, err := ewmh.ClientListGet(c.XUtil)
	if err != nil {
		return nil, fmt.Errorf("failed to get client list: %w", err)
	}
	return clients, nil
}

// WindowTitle returns _NET_WM_NAME, falling back to WM_NAME. A window with
// neither property has an empty title.
func (c *Connection) WindowTitle(windowID xproto.Window) string {
	title, err := ewmh.WmNameGet(c.XUtil, windowID)
	if err == nil {
		title = strings.TrimSpace(title)
		if title != "" {
			return title
		}
	}

	title, err = icccm.WmNameGet(c.XUtil, windowID)
	if err == nil {
		return strings.TrimSpace(title)
	}
	return ""
}

// WindowGeometry returns the root-relative position and size of a window.
func (c *Connection) WindowGeometry(windowID xproto.Window) (x, y, width, height int, err error) {
	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(windowID)).Reply()
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("failed to get geometry of window %d: %w", windowID, err)
	}

	translate, err := xproto.TranslateCoordinates(
		c.XUtil.Conn(),
		windowID,
		c.Root,
		0, 0,
	).Reply()
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("failed to translate coordinates of window %d: %w", windowID, err)
	}

	return int(translate.DstX), int(translate.DstY), int(geom.Width), int(geom.Height), nil
}

// IsViewable reports whether a window is mapped and not hidden (minimized or
// shaded) per _NET_WM_STATE.
func (c *Connection) IsViewable(windowID xproto.Window) (bool, error) {
	attrs, err := xproto.GetWindowAttributes(c.XUtil.Conn(), windowID).Reply()
	if err != nil {
		return false, fmt.Errorf("failed to get attributes of window %d: %w", windowID, err)
	}
	if attrs.MapState != xproto.MapStateViewable {
		return false, nil
	}

	states, err := ewmh.WmStateGet(c.XUtil, windowID)
	if err != nil {
		// No _NET_WM_STATE simply means no special state.
		return true, nil
	}
	for _, state := range states {
		if state == "_NET_WM_STATE_HIDDEN" {
			return false, nil
		}
	}
	return true, nil
}

// ActiveWindow returns the window named by _NET_ACTIVE_WINDOW. Zero means
// no window is active, including when the property is absent.
func (c *Connection) ActiveWindow() (xproto.Window, error) {
	atom, err := c.internAtom("_NET_ACTIVE_WINDOW")
	if err != nil {
		return 0, err
	}
	reply, err := xproto.GetProperty(c.XUtil.Conn(), false, c.Root, atom, xproto.AtomWindow, 0, 1).Reply()
	if err != nil {
		return 0, fmt.Errorf("failed to get _NET_ACTIVE_WINDOW: %w", err)
	}
	return activeWindowFromProperty(reply.Format, reply.Value), nil
}

// activeWindowFromProperty decodes a _NET_ACTIVE_WINDOW reply. Format 0 is
// what the server sends for a missing property.
func activeWindowFromProperty(format byte, value []byte) xproto.Window {
	if format != 32 || len(value) < 4 {
		return 0
	}
	return xproto.Window(xgb.Get32(value))
}

// MaximizeWindow asks the window manager to add both maximized states.
func (c *Connection) MaximizeWindow(windowID xproto.Window) error {
	horz, err := c.internAtom("_NET_WM_STATE_MAXIMIZED_HORZ")
	if err != nil {
		return err
	}
	vert, err := c.internAtom("_NET_WM_STATE_MAXIMIZED_VERT")
	if err != nil {
		return err
	}

	const stateAdd = 1
	return c.sendRootMessage(windowID, "_NET_WM_STATE", stateAdd, uint32(horz), uint32(vert), sourcePager, 0)
}

var excludedWindowTypes = map[string]bool{
	"_NET_WM_WINDOW_TYPE_DESKTOP":      true,
	"_NET_WM_WINDOW_TYPE_DOCK":         true,
	"_NET_WM_WINDOW_TYPE_SPLASH":       true,
	"_NET_WM_WINDOW_TYPE_NOTIFICATION": true,
}

// IsNormalWindow reports whether a window is an application window rather
// than a panel, desktop, splash or notification. Dialogs, utilities and
// untyped windows all count.
func (c *Connection) IsNormalWindow(windowID xproto.Window) bool {
	types, err := ewmh.WmWindowTypeGet(c.XUtil, windowID)
	if err != nil {
		return true
	}
	return isNormalType(types)
}

func isNormalType(types []string) bool {
	for _, t := range types {
		if excludedWindowTypes[t] {
			return false
		}
	}
	return true
}
