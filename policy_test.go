package winctl

import "testing"

func TestSelectMainWindowPrefersVisibleTitled(t *testing.T) {
	windows := []Window{
		{Handle: 0x10, PID: 42, Title: "", Visible: true},
		{Handle: 0x20, PID: 42, Title: "Editor", Visible: false},
		{Handle: 0x30, PID: 42, Title: "Editor — main", Visible: true},
		{Handle: 0x40, PID: 7, Title: "Other app", Visible: true},
	}

	h, ok := selectMainWindow(windows, 42, DefaultMainWindowPolicy())
	if !ok {
		t.Fatalf("expected a match")
	}
	if h != 0x30 {
		t.Fatalf("expected handle 0x30, got %s", FormatHandle(h))
	}
}

func TestSelectMainWindowFallsBackToFirstOwned(t *testing.T) {
	windows := []Window{
		{Handle: 0x10, PID: 42, Title: "", Visible: false},
		{Handle: 0x20, PID: 42, Title: "", Visible: false},
	}

	h, ok := selectMainWindow(windows, 42, DefaultMainWindowPolicy())
	if !ok {
		t.Fatalf("expected fallback match")
	}
	if h != 0x10 {
		t.Fatalf("expected first enumerated window 0x10, got %s", FormatHandle(h))
	}
}

func TestSelectMainWindowNoWindowsOwned(t *testing.T) {
	windows := []Window{
		{Handle: 0x10, PID: 7, Title: "Other", Visible: true},
	}

	if _, ok := selectMainWindow(windows, 42, DefaultMainWindowPolicy()); ok {
		t.Fatalf("expected no match for a process owning no windows")
	}
}

func TestSelectMainWindowZeroPIDNeverMatches(t *testing.T) {
	// Windows without a resolvable owner carry PID 0; a zero-pid query must
	// not accidentally claim them.
	windows := []Window{
		{Handle: 0x10, PID: 0, Title: "Mystery", Visible: true},
	}

	if _, ok := selectMainWindow(windows, 0, DefaultMainWindowPolicy()); ok {
		t.Fatalf("expected no match for pid 0")
	}
}

func TestSelectMainWindowRelaxedPolicy(t *testing.T) {
	windows := []Window{
		{Handle: 0x10, PID: 42, Title: "", Visible: false},
		{Handle: 0x20, PID: 42, Title: "Background job", Visible: false},
	}

	policy := MainWindowPolicy{RequireVisible: false, RequireTitle: true}
	h, ok := selectMainWindow(windows, 42, policy)
	if !ok {
		t.Fatalf("expected a match")
	}
	if h != 0x20 {
		t.Fatalf("expected titled window 0x20, got %s", FormatHandle(h))
	}
}

func TestSelectMainWindowEmptyEnumeration(t *testing.T) {
	if _, ok := selectMainWindow(nil, 42, DefaultMainWindowPolicy()); ok {
		t.Fatalf("expected no match on empty enumeration")
	}
}
