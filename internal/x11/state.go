package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
)

const (
	netWMState            = "_NET_WM_STATE"
	netWMStateSkipTaskbar = "_NET_WM_STATE_SKIP_TASKBAR"
	netWMStateSkipPager   = "_NET_WM_STATE_SKIP_PAGER"

	// _NET_WM_STATE client message actions per EWMH.
	wmStateAdd = 1
)

// PartialStateError reports a window-state mutation that failed after an
// earlier step already took effect. The window is left with Applied set but
// Failed unset.
type PartialStateError struct {
	Applied string
	Failed  string
	Err     error
}

func (e *PartialStateError) Error() string {
	return fmt.Sprintf("window state partially applied: %s set but %s failed: %v", e.Applied, e.Failed, e.Err)
}

func (e *PartialStateError) Unwrap() error { return e.Err }

// SetSwitcherSkip asks the window manager to exclude a window from the
// taskbar and the pager/alt-tab switcher. The window stays mapped; only the
// window-switching UI changes. Each state is requested with its own checked
// client message so a mid-sequence failure is detectable.
//
// The messages are built manually because the xgbutil ewmh.WmStateReq helper
// panics on this library version (uint vs int type assertion).
func (c *Connection) SetSwitcherSkip(win xproto.Window) error {
	// SendEvent only validates the destination (the root window); a stale
	// window ID riding in the payload would otherwise be accepted silently.
	if _, err := xproto.GetWindowAttributes(c.XUtil.Conn(), win).Reply(); err != nil {
		return err
	}

	stateAtom, err := c.internAtom(netWMState)
	if err != nil {
		return err
	}
	taskbarAtom, err := c.internAtom(netWMStateSkipTaskbar)
	if err != nil {
		return err
	}
	pagerAtom, err := c.internAtom(netWMStateSkipPager)
	if err != nil {
		return err
	}

	if err := c.sendStateMessage(win, stateAtom, wmStateAdd, taskbarAtom); err != nil {
		return fmt.Errorf("failed to set %s: %w", netWMStateSkipTaskbar, err)
	}
	if err := c.sendStateMessage(win, stateAtom, wmStateAdd, pagerAtom); err != nil {
		return &PartialStateError{
			Applied: netWMStateSkipTaskbar,
			Failed:  netWMStateSkipPager,
			Err:     err,
		}
	}
	return nil
}

func (c *Connection) internAtom(name string) (xproto.Atom, error) {
	reply, err := xproto.InternAtom(c.XUtil.Conn(), false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, fmt.Errorf("failed to intern %s: %w", name, err)
	}
	return reply.Atom, nil
}

// sendStateMessage sends a _NET_WM_STATE client message to the root window
// per EWMH spec: data32 = [action, property1, property2, source, 0].
func (c *Connection) sendStateMessage(win xproto.Window, stateAtom xproto.Atom, action uint32, prop xproto.Atom) error {
	const sourceIndication = 2 // pager/direct action
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: win,
		Type:   stateAtom,
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{action, uint32(prop), 0, sourceIndication, 0}),
	}

	return xproto.SendEventChecked(
		c.XUtil.Conn(),
		false,
		c.Root,
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify,
		string(ev.Bytes()),
	).Check()
}
