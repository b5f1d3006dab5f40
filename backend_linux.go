//go:build linux

package winctl

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/winctl/internal/x11"
)

// x11Backend talks to the X server through a fresh connection per call, so
// no transport state outlives an operation.
type x11Backend struct{}

var _ backend = x11Backend{}

func newBackend() backend {
	return x11Backend{}
}

func (x11Backend) windowInfo(h Handle) (WindowInfo, error) {
	conn, err := x11.NewConnection()
	if err != nil {
		return WindowInfo{}, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer conn.Close()

	geom, err := conn.WindowGeometry(xproto.Window(h))
	if err != nil {
		if x11.IsBadWindow(err) {
			return WindowInfo{}, fmt.Errorf("%w: window %s", ErrInvalidHandle, FormatHandle(h))
		}
		return WindowInfo{}, fmt.Errorf("%w: geometry of %s: %v", ErrProperty, FormatHandle(h), err)
	}

	return WindowInfo{X: geom.X, Y: geom.Y, Width: geom.Width, Height: geom.Height}, nil
}

func (x11Backend) listWindows() ([]Window, error) {
	conn, err := x11.NewConnection()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer conn.Close()

	clients, err := conn.ListClients()
	if err != nil {
		return nil, fmt.Errorf("%w: client list: %v", ErrProperty, err)
	}

	windows := make([]Window, 0, len(clients))
	for _, cl := range clients {
		windows = append(windows, Window{
			Handle:  Handle(cl.Window),
			PID:     cl.PID,
			Title:   cl.Title,
			Visible: cl.Viewable,
		})
	}
	return windows, nil
}

func (x11Backend) activeWindowPID() (uint32, bool, error) {
	conn, err := x11.NewConnection()
	if err != nil {
		return 0, false, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer conn.Close()

	pid, ok, err := conn.ActiveWindowPID()
	if err != nil {
		return 0, false, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	return pid, ok, nil
}

func (x11Backend) hideFromSwitcher(h Handle) error {
	conn, err := x11.NewConnection()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer conn.Close()

	err = conn.SetSwitcherSkip(xproto.Window(h))
	if err == nil {
		return nil
	}

	var partial *x11.PartialStateError
	if errors.As(err, &partial) {
		return fmt.Errorf("%w: %v", ErrPartialOperation, partial)
	}
	if x11.IsBadWindow(err) {
		return fmt.Errorf("%w: window %s", ErrInvalidHandle, FormatHandle(h))
	}
	return fmt.Errorf("failed to hide %s from switcher: %w", FormatHandle(h), err)
}
