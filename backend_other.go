//go:build !linux && !windows

package winctl

import "fmt"

// unsupportedBackend rejects every operation on platforms without a native
// window-system backend.
type unsupportedBackend struct{}

var _ backend = unsupportedBackend{}

func newBackend() backend {
	return unsupportedBackend{}
}

func (unsupportedBackend) windowInfo(Handle) (WindowInfo, error) {
	return WindowInfo{}, fmt.Errorf("%w: window queries require linux or windows", ErrUnsupported)
}

func (unsupportedBackend) listWindows() ([]Window, error) {
	return nil, fmt.Errorf("%w: window enumeration requires linux or windows", ErrUnsupported)
}

func (unsupportedBackend) activeWindowPID() (uint32, bool, error) {
	return 0, false, fmt.Errorf("%w: active window lookup requires linux or windows", ErrUnsupported)
}

func (unsupportedBackend) hideFromSwitcher(Handle) error {
	return fmt.Errorf("%w: window visibility control requires linux or windows", ErrUnsupported)
}
