//go:build windows

package winctl

import (
	"errors"
	"fmt"

	"github.com/1broseidon/winctl/internal/win32"
)

// win32Backend uses the user32 enumeration and window-style APIs directly;
// Win32 needs no per-call connection.
type win32Backend struct{}

var _ backend = win32Backend{}

func newBackend() backend {
	return win32Backend{}
}

func (win32Backend) windowInfo(h Handle) (WindowInfo, error) {
	geom, err := win32.WindowGeometry(uintptr(h))
	if err != nil {
		if errors.Is(err, win32.ErrInvalidWindow) {
			return WindowInfo{}, fmt.Errorf("%w: window %s", ErrInvalidHandle, FormatHandle(h))
		}
		return WindowInfo{}, fmt.Errorf("%w: geometry of %s: %v", ErrProperty, FormatHandle(h), err)
	}
	return WindowInfo{X: geom.X, Y: geom.Y, Width: geom.Width, Height: geom.Height}, nil
}

func (win32Backend) listWindows() ([]Window, error) {
	topLevel, err := win32.ListTopLevel()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	windows := make([]Window, 0, len(topLevel))
	for _, w := range topLevel {
		windows = append(windows, Window{
			Handle:  Handle(w.Handle),
			PID:     w.PID,
			Title:   w.Title,
			Visible: w.Visible,
		})
	}
	return windows, nil
}

func (win32Backend) activeWindowPID() (uint32, bool, error) {
	return win32.ForegroundWindowPID()
}

func (win32Backend) hideFromSwitcher(h Handle) error {
	err := win32.HideFromSwitcher(uintptr(h))
	if err == nil {
		return nil
	}

	var partial *win32.PartialStyleError
	if errors.As(err, &partial) {
		return fmt.Errorf("%w: %v", ErrPartialOperation, partial)
	}
	if errors.Is(err, win32.ErrInvalidWindow) {
		return fmt.Errorf("%w: window %s", ErrInvalidHandle, FormatHandle(h))
	}
	return fmt.Errorf("failed to hide %s from switcher: %w", FormatHandle(h), err)
}
