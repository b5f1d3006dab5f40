package x11

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
)

// Geometry is a window's bounding rectangle in absolute screen coordinates.
type Geometry struct {
	X      int32
	Y      int32
	Width  uint32
	Height uint32
}

// Client describes one entry of the window manager's client list. HasPID is
// false when the window carries no _NET_WM_PID property; the property is set
// by the application, so its absence is common and not an error.
type Client struct {
	Window   xproto.Window
	PID      uint32
	HasPID   bool
	Title    string
	Viewable bool
}

// WindowGeometry returns the window's rectangle translated to root-window
// (screen) coordinates. GetGeometry alone reports coordinates relative to
// the parent, which under a reparenting window manager is the frame.
func (c *Connection) WindowGeometry(win xproto.Window) (Geometry, error) {
	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(win)).Reply()
	if err != nil {
		return Geometry{}, err
	}

	translate, err := xproto.TranslateCoordinates(c.XUtil.Conn(), win, c.Root, 0, 0).Reply()
	if err != nil {
		return Geometry{}, err
	}

	return Geometry{
		X:      int32(translate.DstX),
		Y:      int32(translate.DstY),
		Width:  uint32(geom.Width),
		Height: uint32(geom.Height),
	}, nil
}

// ListClients enumerates the top-level windows from _NET_CLIENT_LIST in the
// order the window manager reports them, resolving each window's owning PID,
// title, and map state. Per-window property failures degrade to zero values;
// only the client-list read itself can fail.
func (c *Connection) ListClients() ([]Client, error) {
	wins, err := ewmh.ClientListGet(c.XUtil)
	if err != nil {
		return nil, err
	}

	clients := make([]Client, 0, len(wins))
	for _, win := range wins {
		cl := Client{Window: win}

		if pid, err := ewmh.WmPidGet(c.XUtil, win); err == nil && pid != 0 {
			cl.PID = uint32(pid)
			cl.HasPID = true
		}

		cl.Title = c.windowTitle(win)

		if attrs, err := xproto.GetWindowAttributes(c.XUtil.Conn(), win).Reply(); err == nil {
			cl.Viewable = attrs.MapState == xproto.MapStateViewable
		}

		clients = append(clients, cl)
	}

	return clients, nil
}

// ActiveWindowPID resolves the focused window via _NET_ACTIVE_WINDOW and
// returns its owning PID. Returns ok=false when no window is focused or the
// focused window carries no PID property. A property read that fails because
// the connection itself is gone is an error, not absence; the two cases are
// told apart with a root-window round-trip.
func (c *Connection) ActiveWindowPID() (uint32, bool, error) {
	win, err := ewmh.ActiveWindowGet(c.XUtil)
	if err != nil {
		if pingErr := c.ping(); pingErr != nil {
			return 0, false, fmt.Errorf("connection lost: %w", pingErr)
		}
		return 0, false, nil
	}
	if win == 0 {
		return 0, false, nil
	}

	pid, err := ewmh.WmPidGet(c.XUtil, win)
	if err != nil {
		if pingErr := c.ping(); pingErr != nil {
			return 0, false, fmt.Errorf("connection lost: %w", pingErr)
		}
		return 0, false, nil
	}
	if pid == 0 {
		return 0, false, nil
	}
	return uint32(pid), true, nil
}

// ping performs a cheap round-trip against the root window. The root always
// exists, so any failure means the connection is unusable.
func (c *Connection) ping() error {
	_, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(c.Root)).Reply()
	return err
}

// windowTitle reads the window title, preferring the EWMH _NET_WM_NAME over
// the legacy ICCCM WM_NAME.
func (c *Connection) windowTitle(win xproto.Window) string {
	title, err := ewmh.WmNameGet(c.XUtil, win)
	if err == nil {
		title = strings.TrimSpace(title)
		if title != "" {
			return title
		}
	}

	title, err = icccm.WmNameGet(c.XUtil, win)
	if err == nil {
		title = strings.TrimSpace(title)
		if title != "" {
			return title
		}
	}

	return ""
}
