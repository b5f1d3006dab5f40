package winctl

import "errors"

// Error classification for window-system failures. Backends wrap these
// sentinels so callers can branch with errors.Is without caring which
// platform produced the failure.
var (
	// ErrTransport reports that the window-system connection could not be
	// established or broke mid-call. Never retried internally.
	ErrTransport = errors.New("window system transport failure")

	// ErrProperty reports a window property/attribute that is missing or
	// malformed in a context where absence is not a valid outcome, such as
	// the geometry of a live window.
	ErrProperty = errors.New("window property unavailable")

	// ErrInvalidHandle reports an operation on a window that no longer
	// exists. Stale handles are expected; callers should treat this as a
	// normal (recoverable) condition.
	ErrInvalidHandle = errors.New("invalid window handle")

	// ErrPartialOperation reports a multi-step mutation that failed after
	// one or more steps already took effect. The window may be left in an
	// intermediate state.
	ErrPartialOperation = errors.New("operation partially applied")

	// ErrUnsupported reports that no window-system backend exists for the
	// current platform.
	ErrUnsupported = errors.New("platform not supported")
)
