// Package winctl queries and manipulates top-level desktop windows through
// the native window system: window geometry, process-to-window resolution,
// active-window lookup, and taskbar/switcher visibility control.
//
// Two backends exist, selected at build time: an X11/EWMH backend on Linux
// and a Win32 backend on Windows. Every operation opens its own transport,
// performs the required round-trips, and releases the transport before
// returning. The package holds no state between calls and is safe to use
// from multiple goroutines.
//
// Window handles are owned by the window manager, not by this package. A
// handle may become invalid at any moment; operations on a destroyed window
// return an error wrapping ErrInvalidHandle rather than crashing.
package winctl

import (
	"fmt"
	"strconv"
)

// Handle identifies a native top-level window (an X11 window ID or a Win32
// HWND). Handles are opaque and borrowed from the OS; never assume one stays
// valid beyond a single call.
type Handle uintptr

// WindowInfo is a snapshot of a window's screen-space bounding rectangle.
// Position is the top-left corner in absolute screen pixels. Zero width or
// height is legal (e.g. a minimized window) and is not an error.
type WindowInfo struct {
	X      int32
	Y      int32
	Width  uint32
	Height uint32
}

// Window describes one top-level window as reported by the window system
// enumeration. PID is zero when the owning process could not be determined.
type Window struct {
	Handle  Handle
	PID     uint32
	Title   string
	Visible bool
}

// backend abstracts the platform window-system operations. Implementations
// are stateless; each method call opens and closes its own transport.
type backend interface {
	windowInfo(h Handle) (WindowInfo, error)
	listWindows() ([]Window, error)
	activeWindowPID() (uint32, bool, error)
	hideFromSwitcher(h Handle) error
}

var platformBackend backend = newBackend()

// GetWindowInfo returns the current screen-space position and size of the
// window identified by h.
func GetWindowInfo(h Handle) (WindowInfo, error) {
	return platformBackend.windowInfo(h)
}

// ListWindows returns all top-level windows currently known to the window
// manager, in the platform's enumeration order. The order is not guaranteed
// stable across calls.
func ListWindows() ([]Window, error) {
	return platformBackend.listWindows()
}

// FindWindowsByPID returns the handles of all top-level windows owned by the
// given process, in enumeration order. A process owning no windows yields an
// empty result, not an error.
func FindWindowsByPID(pid uint32) ([]Handle, error) {
	windows, err := platformBackend.listWindows()
	if err != nil {
		return nil, err
	}
	var handles []Handle
	for _, w := range windows {
		if w.PID == pid && w.PID != 0 {
			handles = append(handles, w.Handle)
		}
	}
	return handles, nil
}

// FindWindowByPID returns a plausible main window for the given process
// using the default policy: prefer a visible window with a non-empty title,
// fall back to the first enumerated window owned by the process. The second
// return value is false when the process owns no windows.
func FindWindowByPID(pid uint32) (Handle, bool, error) {
	return FindWindowByPIDWithPolicy(pid, DefaultMainWindowPolicy())
}

// FindWindowByPIDWithPolicy is FindWindowByPID with an explicit main-window
// policy. When several windows satisfy the policy the pick among them follows
// the platform's enumeration order and is therefore arbitrary.
func FindWindowByPIDWithPolicy(pid uint32, policy MainWindowPolicy) (Handle, bool, error) {
	windows, err := platformBackend.listWindows()
	if err != nil {
		return 0, false, err
	}
	h, ok := selectMainWindow(windows, pid, policy)
	return h, ok, nil
}

// ActiveWindowPID returns the process ID owning the currently focused window.
// The second return value is false when no window is focused or the active
// window exposes no owning process.
func ActiveWindowPID() (uint32, bool, error) {
	return platformBackend.activeWindowPID()
}

// HideFromSwitcher excludes a window from the taskbar and the alt-tab window
// switcher while leaving it mapped on screen. The window's pixels stay
// visible; only its presence in window-switching UI changes.
func HideFromSwitcher(h Handle) error {
	return platformBackend.hideFromSwitcher(h)
}

// ParseHandle parses a window identifier in decimal or 0x-prefixed hex form,
// as printed by FormatHandle and by tools such as xwininfo.
func ParseHandle(s string) (Handle, error) {
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid window identifier %q: %w", s, err)
	}
	return Handle(v), nil
}

// FormatHandle renders a handle in the conventional 0x-prefixed hex form.
func FormatHandle(h Handle) string {
	return fmt.Sprintf("0x%x", uintptr(h))
}
