package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/1broseidon/wintitle/internal/windir"
)

const (
	ServerName    = "wintitle"
	ServerVersion = "0.1.0"
)

// Server exposes the window directory as MCP tools.
type Server struct {
	mcpServer *mcpsdk.Server
	dir       *windir.Directory
	logger    zerolog.Logger
}

// NewServer creates an MCP server backed by dir.
func NewServer(dir *windir.Directory, logger zerolog.Logger) *Server {
	s := &Server{
		dir:    dir,
		logger: logger.With().Str("component", "mcp").Logger(),
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
	s.logger.Info().Str("version", ServerVersion).Msg("serving on stdio")
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_windows",
		Description: "List visible top-level windows that have a title and a non-empty area, in window manager order. Each entry carries the handle, title and screen bounds.",
	}, s.handleListWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "find_window",
		Description: "Find the first visible window whose title contains query (case-insensitive). Returns found=false when nothing matches.",
	}, s.handleFindWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "focus_window",
		Description: "Bring the first window whose title contains query to the foreground and give it keyboard focus. Returns success=false when no window matches.",
	}, s.handleFocusWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "maximize_window",
		Description: "Focus the first window whose title contains query and maximize it (unless maximize_mode is focus-only). Returns success=false when no window matches.",
	}, s.handleMaximizeWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_focused_title",
		Description: "Return the title of the window that currently holds keyboard focus. has_foreground is false when no window is focused.",
	}, s.handleGetFocusedTitle)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "title_matches_focused",
		Description: "Report whether query contains the focused window's title (case-insensitive). Note the direction: the focused title must be a substring of query.",
	}, s.handleTitleMatchesFocused)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_window_bounds",
		Description: "Return the screen rectangle (left, top, right, bottom) of the first window whose title contains query. Returns found=false when nothing matches.",
	}, s.handleGetWindowBounds)
}
