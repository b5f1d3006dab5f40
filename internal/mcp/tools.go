package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/winctl"
	"github.com/1broseidon/winctl/internal/config"
	"github.com/1broseidon/winctl/internal/proc"
)

// policyFromInput overlays per-call overrides on the configured policy.
func policyFromInput(cfg *config.Config, requireVisible, requireTitle *bool) winctl.MainWindowPolicy {
	policy := winctl.MainWindowPolicy{
		RequireVisible: cfg.MainWindow.RequireVisible,
		RequireTitle:   cfg.MainWindow.RequireTitle,
	}
	if requireVisible != nil {
		policy.RequireVisible = *requireVisible
	}
	if requireTitle != nil {
		policy.RequireTitle = *requireTitle
	}
	return policy
}

func (s *Server) handleWindowInfo(_ context.Context, _ *mcpsdk.CallToolRequest, args WindowInfoInput) (*mcpsdk.CallToolResult, WindowInfoOutput, error) {
	h, err := winctl.ParseHandle(args.Window)
	if err != nil {
		return nil, WindowInfoOutput{}, err
	}

	info, err := winctl.GetWindowInfo(h)
	if err != nil {
		return nil, WindowInfoOutput{}, err
	}

	return nil, WindowInfoOutput{
		Window: winctl.FormatHandle(h),
		X:      info.X,
		Y:      info.Y,
		Width:  info.Width,
		Height: info.Height,
	}, nil
}

func (s *Server) handleListWindows(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListWindowsInput) (*mcpsdk.CallToolResult, ListWindowsOutput, error) {
	windows, err := winctl.ListWindows()
	if err != nil {
		return nil, ListWindowsOutput{}, err
	}

	entries := make([]WindowEntry, 0, len(windows))
	for _, w := range windows {
		entries = append(entries, WindowEntry{
			Window:      winctl.FormatHandle(w.Handle),
			PID:         w.PID,
			ProcessName: proc.Name(w.PID),
			Title:       w.Title,
			Visible:     w.Visible,
		})
	}

	s.logger.Debug("listed windows", "count", len(entries))
	return nil, ListWindowsOutput{Windows: entries}, nil
}

func (s *Server) handleFindWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args FindWindowInput) (*mcpsdk.CallToolResult, FindWindowOutput, error) {
	policy := policyFromInput(s.config, args.RequireVisible, args.RequireTitle)

	h, ok, err := winctl.FindWindowByPIDWithPolicy(args.PID, policy)
	if err != nil {
		return nil, FindWindowOutput{}, err
	}
	if !ok {
		return nil, FindWindowOutput{Found: false}, nil
	}
	return nil, FindWindowOutput{Found: true, Window: winctl.FormatHandle(h)}, nil
}

func (s *Server) handleFindWindows(_ context.Context, _ *mcpsdk.CallToolRequest, args FindWindowsInput) (*mcpsdk.CallToolResult, FindWindowsOutput, error) {
	handles, err := winctl.FindWindowsByPID(args.PID)
	if err != nil {
		return nil, FindWindowsOutput{}, err
	}

	out := FindWindowsOutput{Windows: make([]string, 0, len(handles))}
	for _, h := range handles {
		out.Windows = append(out.Windows, winctl.FormatHandle(h))
	}
	return nil, out, nil
}

func (s *Server) handleActiveWindow(_ context.Context, _ *mcpsdk.CallToolRequest, _ ActiveWindowInput) (*mcpsdk.CallToolResult, ActiveWindowOutput, error) {
	pid, ok, err := winctl.ActiveWindowPID()
	if err != nil {
		return nil, ActiveWindowOutput{}, err
	}
	if !ok {
		return nil, ActiveWindowOutput{Found: false}, nil
	}
	return nil, ActiveWindowOutput{
		Found:       true,
		PID:         pid,
		ProcessName: proc.Name(pid),
	}, nil
}

func (s *Server) handleHideWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args HideWindowInput) (*mcpsdk.CallToolResult, HideWindowOutput, error) {
	h, err := winctl.ParseHandle(args.Window)
	if err != nil {
		return nil, HideWindowOutput{}, err
	}

	if err := winctl.HideFromSwitcher(h); err != nil {
		return nil, HideWindowOutput{}, err
	}

	s.logger.Info("hid window from switcher", "window", winctl.FormatHandle(h))
	return nil, HideWindowOutput{Window: winctl.FormatHandle(h), Hidden: true}, nil
}
