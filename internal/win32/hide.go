//go:build windows

package win32

import (
	"fmt"
	"syscall"
)

// PartialStyleError reports a switcher-hide sequence that failed after the
// window was already hidden. The restore step is attempted before returning,
// but the window may still be left in an intermediate state.
type PartialStyleError struct {
	Stage string
	Err   error
}

func (e *PartialStyleError) Error() string {
	return fmt.Sprintf("window hidden but %s failed: %v", e.Stage, e.Err)
}

func (e *PartialStyleError) Unwrap() error { return e.Err }

// HideFromSwitcher removes a window from the taskbar and the alt-tab
// switcher by marking it as a tool window. Windows only re-reads the
// taskbar-relevant extended styles while a window is hidden, so the sequence
// is hide, flip WS_EX_TOOLWINDOW on and WS_EX_APPWINDOW off, re-show. The
// window ends up mapped exactly as before, minus its switcher entry.
func HideFromSwitcher(hwnd uintptr) error {
	if !isWindow(hwnd) {
		return fmt.Errorf("%w: 0x%x", ErrInvalidWindow, hwnd)
	}

	showWindow(hwnd, swHide)

	style, err := getWindowLong(hwnd, gwlExstyle)
	if err != nil {
		showWindow(hwnd, swShow)
		return &PartialStyleError{Stage: "reading extended style", Err: err}
	}

	newStyle := (style | wsExToolWindow) &^ wsExAppWindow
	if err := setWindowLong(hwnd, gwlExstyle, newStyle); err != nil {
		showWindow(hwnd, swShow)
		return &PartialStyleError{Stage: "setting extended style", Err: err}
	}

	showWindow(hwnd, swShow)
	return nil
}

// showWindow's return value is the previous visibility state, not a success
// flag, so there is nothing to check.
func showWindow(hwnd uintptr, cmd int32) {
	procShowWindow.Call(hwnd, uintptr(cmd))
}

// getWindowLong distinguishes a legitimate zero style from failure via the
// returned errno, since zero is a valid GWL_EXSTYLE value. GetWindowLongW
// does not clear the last error on success, so it must be cleared first or a
// stale errno from an earlier call turns a zero style into a failure.
func getWindowLong(hwnd uintptr, index int32) (int32, error) {
	procSetLastError.Call(0)
	ret, _, callErr := procGetWindowLongW.Call(hwnd, uintptr(index))
	if ret == 0 {
		if errno, ok := callErr.(syscall.Errno); ok && errno != 0 {
			return 0, fmt.Errorf("GetWindowLongW failed: %w", errno)
		}
	}
	return int32(ret), nil
}

func setWindowLong(hwnd uintptr, index int32, value int32) error {
	procSetLastError.Call(0)
	ret, _, callErr := procSetWindowLongW.Call(hwnd, uintptr(index), uintptr(value))
	if ret == 0 {
		if errno, ok := callErr.(syscall.Errno); ok && errno != 0 {
			return fmt.Errorf("SetWindowLongW failed: %w", errno)
		}
	}
	return nil
}
