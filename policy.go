package winctl

// MainWindowPolicy controls which of a process's windows FindWindowByPID
// treats as the "main" one. The default prefers a window that is both mapped
// on screen and titled, which matches what users perceive as an application's
// primary window. This is a heuristic, not a guarantee: a process with
// several qualifying windows yields an arbitrary pick among them.
type MainWindowPolicy struct {
	RequireVisible bool
	RequireTitle   bool
}

// DefaultMainWindowPolicy prefers visible, titled windows.
func DefaultMainWindowPolicy() MainWindowPolicy {
	return MainWindowPolicy{RequireVisible: true, RequireTitle: true}
}

// selectMainWindow applies the policy over an enumeration snapshot: the first
// window owned by pid that satisfies the policy wins; when none qualifies the
// first window owned by pid wins; when the process owns no windows the result
// is absent.
func selectMainWindow(windows []Window, pid uint32, policy MainWindowPolicy) (Handle, bool) {
	if pid == 0 {
		return 0, false
	}

	var fallback Handle
	var haveFallback bool

	for _, w := range windows {
		if w.PID != pid {
			continue
		}
		if !haveFallback {
			fallback = w.Handle
			haveFallback = true
		}
		if policy.RequireVisible && !w.Visible {
			continue
		}
		if policy.RequireTitle && w.Title == "" {
			continue
		}
		return w.Handle, true
	}

	return fallback, haveFallback
}
