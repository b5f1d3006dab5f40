//go:build windows

// Package win32 implements the Windows window-system backend through lazily
// loaded user32 procedures. Windows are identified by HWND values owned by
// the desktop shell; the package never creates or destroys windows.
package win32

import "golang.org/x/sys/windows"

var (
	kernel32         = windows.NewLazySystemDLL("kernel32.dll")
	procSetLastError = kernel32.NewProc("SetLastError")

	user32                       = windows.NewLazySystemDLL("user32.dll")
	procEnumWindows              = user32.NewProc("EnumWindows")
	procGetForegroundWindow      = user32.NewProc("GetForegroundWindow")
	procGetWindowLongW           = user32.NewProc("GetWindowLongW")
	procGetWindowRect            = user32.NewProc("GetWindowRect")
	procGetWindowTextLengthW     = user32.NewProc("GetWindowTextLengthW")
	procGetWindowTextW           = user32.NewProc("GetWindowTextW")
	procGetWindowThreadProcessId = user32.NewProc("GetWindowThreadProcessId")
	procIsWindow                 = user32.NewProc("IsWindow")
	procIsWindowVisible          = user32.NewProc("IsWindowVisible")
	procSetWindowLongW           = user32.NewProc("SetWindowLongW")
	procShowWindow               = user32.NewProc("ShowWindow")
)

const (
	gwlExstyle = -20

	wsExToolWindow = 0x00000080
	wsExAppWindow  = 0x00040000

	swHide = 0
	swShow = 5
)

// rect mirrors the Win32 RECT layout.
type rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}
