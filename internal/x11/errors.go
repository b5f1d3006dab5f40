package x11

import (
	"errors"

	"github.com/BurntSushi/xgb/xproto"
)

// IsBadWindow reports whether err is the X server rejecting a window ID that
// no longer exists. GetGeometry answers BadDrawable for a destroyed window,
// TranslateCoordinates and property requests answer BadWindow.
func IsBadWindow(err error) bool {
	var windowErr xproto.WindowError
	if errors.As(err, &windowErr) {
		return true
	}
	var drawableErr xproto.DrawableError
	if errors.As(err, &drawableErr) {
		return true
	}
	var matchErr xproto.MatchError
	return errors.As(err, &matchErr)
}
