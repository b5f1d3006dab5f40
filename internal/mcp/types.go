package mcp

// WindowInfoInput is the input for the get_window_info tool.
type WindowInfoInput struct {
	Window string `json:"window" jsonschema:"required,Window identifier as decimal or 0x-prefixed hex (as returned by list_windows)"`
}

// WindowInfoOutput is the output for the get_window_info tool.
type WindowInfoOutput struct {
	Window string `json:"window"`
	X      int32  `json:"x"`
	Y      int32  `json:"y"`
	Width  uint32 `json:"width"`
	Height uint32 `json:"height"`
}

// ListWindowsInput is the input for the list_windows tool.
type ListWindowsInput struct{}

// WindowEntry describes one top-level window.
type WindowEntry struct {
	Window      string `json:"window"`
	PID         uint32 `json:"pid"`
	ProcessName string `json:"process_name,omitempty"`
	Title       string `json:"title,omitempty"`
	Visible     bool   `json:"visible"`
}

// ListWindowsOutput is the output for the list_windows tool.
type ListWindowsOutput struct {
	Windows []WindowEntry `json:"windows"`
}

// FindWindowInput is the input for the find_window tool.
type FindWindowInput struct {
	PID            uint32 `json:"pid" jsonschema:"required,Process ID whose main window to find"`
	RequireVisible *bool  `json:"require_visible,omitempty" jsonschema:"Override the configured policy: only consider mapped windows"`
	RequireTitle   *bool  `json:"require_title,omitempty" jsonschema:"Override the configured policy: only consider titled windows"`
}

// FindWindowOutput is the output for the find_window tool.
type FindWindowOutput struct {
	Found  bool   `json:"found"`
	Window string `json:"window,omitempty"`
}

// FindWindowsInput is the input for the find_windows tool.
type FindWindowsInput struct {
	PID uint32 `json:"pid" jsonschema:"required,Process ID whose windows to enumerate"`
}

// FindWindowsOutput is the output for the find_windows tool.
type FindWindowsOutput struct {
	Windows []string `json:"windows"`
}

// ActiveWindowInput is the input for the get_active_window tool.
type ActiveWindowInput struct{}

// ActiveWindowOutput is the output for the get_active_window tool.
type ActiveWindowOutput struct {
	Found       bool   `json:"found"`
	PID         uint32 `json:"pid,omitempty"`
	ProcessName string `json:"process_name,omitempty"`
}

// HideWindowInput is the input for the hide_window tool.
type HideWindowInput struct {
	Window string `json:"window" jsonschema:"required,Window identifier as decimal or 0x-prefixed hex"`
}

// HideWindowOutput is the output for the hide_window tool.
type HideWindowOutput struct {
	Window string `json:"window"`
	Hidden bool   `json:"hidden"`
}
