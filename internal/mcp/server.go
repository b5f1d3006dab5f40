// Package mcp exposes the window query/control operations as MCP tools over
// stdio, for use by MCP clients such as Claude Code or Claude Desktop.
package mcp

import (
	"context"
	"log/slog"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/winctl/internal/config"
)

const (
	ServerName    = "winctl"
	ServerVersion = "0.1.0"
)

// Server is the MCP server fronting the winctl operations.
type Server struct {
	mcpServer *mcpsdk.Server
	config    *config.Config
	logger    *slog.Logger
}

// NewServer creates an MCP server using the given configuration for the
// main-window policy defaults.
func NewServer(cfg *config.Config, logger *slog.Logger) *Server {
	s := &Server{
		config: cfg,
		logger: logger,
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_window_info",
		Description: "Get the screen-space position and size of a top-level window. Fails if the window no longer exists.",
	}, s.handleWindowInfo)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_windows",
		Description: "List all top-level windows known to the window manager, with owning PID, process name, title, and visibility.",
	}, s.handleListWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "find_window",
		Description: "Find a plausible main window for a process ID. Prefers visible, titled windows by default; returns found=false when the process owns no windows.",
	}, s.handleFindWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "find_windows",
		Description: "List all top-level windows owned by a process ID, in enumeration order. An empty list is a normal result.",
	}, s.handleFindWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_active_window",
		Description: "Get the process ID owning the currently focused window. Returns found=false when no window has focus.",
	}, s.handleActiveWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "hide_window",
		Description: "Exclude a window from the taskbar and alt-tab switcher while keeping it visible on screen.",
	}, s.handleHideWindow)
}
