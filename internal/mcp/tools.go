package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/pkg/errors"

	"github.com/1broseidon/wintitle/internal/windir"
)

func windowInfo(w windir.Window) WindowInfo {
	return WindowInfo{
		Handle: uint64(w.ID),
		Title:  w.Title,
		Bounds: w.Bounds,
	}
}

func (s *Server) handleListWindows(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListWindowsInput) (*mcpsdk.CallToolResult, ListWindowsOutput, error) {
	windows, err := s.dir.Windows()
	if err != nil {
		s.logger.Warn().Err(err).Str("tool", "list_windows").Msg("tool failed")
		return nil, ListWindowsOutput{}, err
	}

	out := ListWindowsOutput{Windows: make([]WindowInfo, 0, len(windows))}
	for _, w := range windows {
		out.Windows = append(out.Windows, windowInfo(w))
	}
	s.logger.Debug().Str("tool", "list_windows").Int("count", len(out.Windows)).Msg("tool call")
	return nil, out, nil
}

func (s *Server) handleFindWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args QueryInput) (*mcpsdk.CallToolResult, FindWindowOutput, error) {
	w, err := s.dir.Find(args.Query)
	if errors.Is(err, windir.ErrNotFound) {
		return nil, FindWindowOutput{Found: false}, nil
	}
	if err != nil {
		s.logger.Warn().Err(err).Str("tool", "find_window").Str("query", args.Query).Msg("tool failed")
		return nil, FindWindowOutput{}, err
	}

	info := windowInfo(w)
	return nil, FindWindowOutput{
		Found:  true,
		Handle: info.Handle,
		Title:  info.Title,
		Bounds: info.Bounds,
	}, nil
}

func (s *Server) handleFocusWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args QueryInput) (*mcpsdk.CallToolResult, ActionOutput, error) {
	return s.runAction("focus_window", args.Query, s.dir.Focus)
}

func (s *Server) handleMaximizeWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args QueryInput) (*mcpsdk.CallToolResult, ActionOutput, error) {
	return s.runAction("maximize_window", args.Query, s.dir.Maximize)
}

func (s *Server) runAction(tool, query string, action func(string) error) (*mcpsdk.CallToolResult, ActionOutput, error) {
	err := action(query)
	if errors.Is(err, windir.ErrNotFound) {
		return nil, ActionOutput{Success: false}, nil
	}
	if err != nil {
		s.logger.Warn().Err(err).Str("tool", tool).Str("query", query).Msg("tool failed")
		return nil, ActionOutput{}, err
	}
	s.logger.Info().Str("tool", tool).Str("query", query).Msg("tool call")
	return nil, ActionOutput{Success: true}, nil
}

func (s *Server) handleGetFocusedTitle(_ context.Context, _ *mcpsdk.CallToolRequest, _ FocusedTitleInput) (*mcpsdk.CallToolResult, FocusedTitleOutput, error) {
	title, err := s.dir.FocusedTitle()
	if errors.Is(err, windir.ErrNoForeground) {
		return nil, FocusedTitleOutput{HasForeground: false}, nil
	}
	if err != nil {
		s.logger.Warn().Err(err).Str("tool", "get_focused_title").Msg("tool failed")
		return nil, FocusedTitleOutput{}, err
	}
	return nil, FocusedTitleOutput{Title: title, HasForeground: true}, nil
}

func (s *Server) handleTitleMatchesFocused(_ context.Context, _ *mcpsdk.CallToolRequest, args QueryInput) (*mcpsdk.CallToolResult, TitleMatchesOutput, error) {
	matches, err := s.dir.TitleMatchesFocused(args.Query)
	if errors.Is(err, windir.ErrNoForeground) {
		return nil, TitleMatchesOutput{Matches: false}, nil
	}
	if err != nil {
		s.logger.Warn().Err(err).Str("tool", "title_matches_focused").Msg("tool failed")
		return nil, TitleMatchesOutput{}, err
	}
	return nil, TitleMatchesOutput{Matches: matches}, nil
}

func (s *Server) handleGetWindowBounds(_ context.Context, _ *mcpsdk.CallToolRequest, args QueryInput) (*mcpsdk.CallToolResult, BoundsOutput, error) {
	r, err := s.dir.Bounds(args.Query)
	if errors.Is(err, windir.ErrNotFound) {
		return nil, BoundsOutput{Found: false}, nil
	}
	if err != nil {
		s.logger.Warn().Err(err).Str("tool", "get_window_bounds").Str("query", args.Query).Msg("tool failed")
		return nil, BoundsOutput{}, err
	}
	return nil, BoundsOutput{
		Found:  true,
		Left:   r.Left,
		Top:    r.Top,
		Right:  r.Right,
		Bottom: r.Bottom,
	}, nil
}
