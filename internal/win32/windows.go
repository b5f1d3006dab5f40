//go:build windows

package win32

import (
	"errors"
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

// ErrInvalidWindow reports an HWND that no longer refers to a live window.
var ErrInvalidWindow = errors.New("window handle is not valid")

// Geometry is a window's bounding rectangle in screen coordinates.
type Geometry struct {
	X      int32
	Y      int32
	Width  uint32
	Height uint32
}

// TopLevelWindow describes one window from an EnumWindows pass.
type TopLevelWindow struct {
	Handle  uintptr
	PID     uint32
	Title   string
	Visible bool
}

// enumAccumulator collects matches during one EnumWindows pass. It lives on
// the enumerating call's stack and reaches the callback through LPARAM, so
// concurrent enumerations never share state.
type enumAccumulator struct {
	windows []TopLevelWindow
}

// enumCallback is created once: Windows callbacks are a limited process-wide
// resource and must not be allocated per call.
var enumCallback = windows.NewCallback(func(hwnd uintptr, lparam uintptr) uintptr {
	acc := (*enumAccumulator)(unsafe.Pointer(lparam))

	w := TopLevelWindow{Handle: hwnd}
	procGetWindowThreadProcessId.Call(hwnd, uintptr(unsafe.Pointer(&w.PID)))

	visible, _, _ := procIsWindowVisible.Call(hwnd)
	w.Visible = visible != 0

	w.Title = windowText(hwnd)

	acc.windows = append(acc.windows, w)
	return 1 // continue enumeration
})

// ListTopLevel enumerates every top-level window on the desktop in Z-order,
// with owning PID, title, and visibility.
func ListTopLevel() ([]TopLevelWindow, error) {
	var acc enumAccumulator
	ret, _, callErr := procEnumWindows.Call(enumCallback, uintptr(unsafe.Pointer(&acc)))
	if ret == 0 {
		return nil, fmt.Errorf("EnumWindows failed: %w", callErr)
	}
	return acc.windows, nil
}

// WindowGeometry returns the window's bounding rectangle in screen
// coordinates. Returns ErrInvalidWindow for a destroyed HWND.
func WindowGeometry(hwnd uintptr) (Geometry, error) {
	if !isWindow(hwnd) {
		return Geometry{}, fmt.Errorf("%w: 0x%x", ErrInvalidWindow, hwnd)
	}

	var r rect
	ret, _, callErr := procGetWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&r)))
	if ret == 0 {
		// The window can vanish between the IsWindow gate and the query.
		if !isWindow(hwnd) {
			return Geometry{}, fmt.Errorf("%w: 0x%x", ErrInvalidWindow, hwnd)
		}
		return Geometry{}, fmt.Errorf("GetWindowRect failed: %w", callErr)
	}

	return Geometry{
		X:      r.Left,
		Y:      r.Top,
		Width:  uint32(r.Right - r.Left),
		Height: uint32(r.Bottom - r.Top),
	}, nil
}

// ForegroundWindowPID returns the PID owning the foreground window. ok is
// false when no window has focus (e.g. during a focus transition) or the
// owning process cannot be resolved.
func ForegroundWindowPID() (uint32, bool, error) {
	hwnd, _, _ := procGetForegroundWindow.Call()
	if hwnd == 0 {
		return 0, false, nil
	}

	var pid uint32
	procGetWindowThreadProcessId.Call(hwnd, uintptr(unsafe.Pointer(&pid)))
	if pid == 0 {
		return 0, false, nil
	}
	return pid, true, nil
}

func isWindow(hwnd uintptr) bool {
	ret, _, _ := procIsWindow.Call(hwnd)
	return ret != 0
}

// windowText reads the window title, sized from GetWindowTextLengthW.
// Untitled windows and cross-process access failures yield "".
func windowText(hwnd uintptr) string {
	length, _, _ := procGetWindowTextLengthW.Call(hwnd)
	if length == 0 {
		return ""
	}

	buf := make([]uint16, length+1)
	ret, _, _ := procGetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if ret == 0 {
		return ""
	}
	return syscall.UTF16ToString(buf)
}
