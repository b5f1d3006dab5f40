package x11

import (
	"os"
	"testing"
)

// requireDisplay opens a connection against the live X server, skipping the
// test when no server is reachable.
func requireDisplay(t *testing.T) *Connection {
	t.Helper()
	if os.Getenv("DISPLAY") == "" {
		t.Skip("no X11 display available")
	}
	conn, err := NewConnection()
	if err != nil {
		t.Skipf("cannot connect to X11: %v", err)
	}
	t.Cleanup(conn.Close)
	return conn
}

func TestWindowGeometryRootWindow(t *testing.T) {
	conn := requireDisplay(t)

	geom, err := conn.WindowGeometry(conn.Root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if geom.Width == 0 || geom.Height == 0 {
		t.Fatalf("expected non-zero root geometry, got %dx%d", geom.Width, geom.Height)
	}
	if geom.X != 0 || geom.Y != 0 {
		t.Fatalf("expected root window at origin, got (%d,%d)", geom.X, geom.Y)
	}
}

func TestWindowGeometryIsIdempotent(t *testing.T) {
	conn := requireDisplay(t)

	first, err := conn.WindowGeometry(conn.Root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := conn.WindowGeometry(conn.Root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("expected identical geometry for a static window, got %+v then %+v", first, second)
	}
}

func TestWindowGeometryDestroyedWindow(t *testing.T) {
	conn := requireDisplay(t)

	// An XID from a range no client should hold; the server must answer with
	// a typed error, not kill the connection.
	const bogus = 0x3fffffe
	_, err := conn.WindowGeometry(bogus)
	if err == nil {
		t.Fatalf("expected error for nonexistent window")
	}
	if !IsBadWindow(err) {
		t.Fatalf("expected bad-window classification, got %v", err)
	}
}

func TestListClients(t *testing.T) {
	conn := requireDisplay(t)

	clients, err := conn.ListClients()
	if err != nil {
		t.Skipf("window manager does not expose _NET_CLIENT_LIST: %v", err)
	}
	for _, cl := range clients {
		if cl.Window == 0 {
			t.Fatalf("client list contains zero window ID")
		}
		if cl.HasPID && cl.PID == 0 {
			t.Fatalf("window 0x%x claims a PID of zero", cl.Window)
		}
	}
}

func TestSetSwitcherSkipDestroyedWindow(t *testing.T) {
	conn := requireDisplay(t)

	const bogus = 0x3fffffe
	err := conn.SetSwitcherSkip(bogus)
	if err == nil {
		t.Fatalf("expected error for nonexistent window")
	}
	if !IsBadWindow(err) {
		t.Fatalf("expected bad-window classification, got %v", err)
	}
}

func TestActiveWindowPIDClosedConnection(t *testing.T) {
	if os.Getenv("DISPLAY") == "" {
		t.Skip("no X11 display available")
	}
	conn, err := NewConnection()
	if err != nil {
		t.Skipf("cannot connect to X11: %v", err)
	}
	conn.Close()

	if _, _, err := conn.ActiveWindowPID(); err == nil {
		t.Fatalf("expected error on a closed connection, got absence")
	}
}

func TestActiveWindowPIDDoesNotError(t *testing.T) {
	conn := requireDisplay(t)

	pid, ok, err := conn.ActiveWindowPID()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok && pid == 0 {
		t.Fatalf("reported an active window with PID zero")
	}
}
