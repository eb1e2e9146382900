package mcp

import "github.com/1broseidon/wintitle/internal/platform"

// ListWindowsInput is the input for the list_windows tool.
type ListWindowsInput struct{}

// WindowInfo describes one window in tool output.
type WindowInfo struct {
	Handle uint64        `json:"handle"`
	Title  string        `json:"title"`
	Bounds platform.Rect `json:"bounds"`
}

// ListWindowsOutput is the output for the list_windows tool.
type ListWindowsOutput struct {
	Windows []WindowInfo `json:"windows"`
}

// QueryInput is the input for every tool that resolves a partial title.
type QueryInput struct {
	Query string `json:"query" jsonschema:"Case-insensitive substring of the window title"`
}

// FindWindowOutput is the output for the find_window tool.
type FindWindowOutput struct {
	Found  bool          `json:"found"`
	Handle uint64        `json:"handle,omitempty"`
	Title  string        `json:"title,omitempty"`
	Bounds platform.Rect `json:"bounds"`
}

// ActionOutput is the output for focus_window and maximize_window.
type ActionOutput struct {
	Success bool `json:"success"`
}

// FocusedTitleInput is the input for the get_focused_title tool.
type FocusedTitleInput struct{}

// FocusedTitleOutput is the output for the get_focused_title tool.
type FocusedTitleOutput struct {
	Title         string `json:"title"`
	HasForeground bool   `json:"has_foreground"`
}

// TitleMatchesOutput is the output for the title_matches_focused tool.
type TitleMatchesOutput struct {
	Matches bool `json:"matches"`
}

// BoundsOutput is the output for the get_window_bounds tool.
type BoundsOutput struct {
	Found  bool `json:"found"`
	Left   int  `json:"left"`
	Top    int  `json:"top"`
	Right  int  `json:"right"`
	Bottom int  `json:"bottom"`
}
