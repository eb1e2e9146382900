package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/1broseidon/wintitle/internal/platform"
	"github.com/1broseidon/wintitle/internal/platform/platformtest"
	"github.com/1broseidon/wintitle/internal/windir"
)

func newTestServer(t *testing.T) (*Server, *platformtest.Backend) {
	t.Helper()
	fake := platformtest.New(
		platformtest.Window{ID: 0x10, Title: "Notepad", Bounds: platform.Rect{Right: 800, Bottom: 600}},
		platformtest.Window{ID: 0x20, Title: "Calculator", Bounds: platform.Rect{Left: 100, Top: 100, Right: 420, Bottom: 600}},
	)
	return NewServer(windir.New(fake), zerolog.Nop()), fake
}

func TestListWindows(t *testing.T) {
	s, _ := newTestServer(t)

	_, out, err := s.handleListWindows(context.Background(), nil, ListWindowsInput{})
	if err != nil {
		t.Fatalf("handleListWindows() error = %v", err)
	}
	if len(out.Windows) != 2 {
		t.Fatalf("len(windows) = %d, want 2", len(out.Windows))
	}
	if out.Windows[0].Handle != 0x10 || out.Windows[0].Title != "Notepad" {
		t.Errorf("windows[0] = %+v", out.Windows[0])
	}
	if out.Windows[1].Bounds.Left != 100 {
		t.Errorf("windows[1].Bounds = %+v", out.Windows[1].Bounds)
	}
}

func TestListWindows_HostFailureIsToolError(t *testing.T) {
	s, fake := newTestServer(t)
	fake.EnumErr = errors.New("display gone")

	if _, _, err := s.handleListWindows(context.Background(), nil, ListWindowsInput{}); err == nil {
		t.Fatal("expected tool error")
	}
}

func TestFindWindow(t *testing.T) {
	s, _ := newTestServer(t)

	tests := []struct {
		query     string
		wantFound bool
		wantTitle string
	}{
		{"pad", true, "Notepad"},
		{"CALC", true, "Calculator"},
		{"zzz", false, ""},
	}

	for _, tt := range tests {
		_, out, err := s.handleFindWindow(context.Background(), nil, QueryInput{Query: tt.query})
		if err != nil {
			t.Fatalf("handleFindWindow(%q) error = %v", tt.query, err)
		}
		if out.Found != tt.wantFound || out.Title != tt.wantTitle {
			t.Errorf("handleFindWindow(%q) = %+v, want found=%v title=%q", tt.query, out, tt.wantFound, tt.wantTitle)
		}
	}
}

func TestFocusAndMaximize(t *testing.T) {
	s, fake := newTestServer(t)

	_, out, err := s.handleFocusWindow(context.Background(), nil, QueryInput{Query: "calc"})
	if err != nil || !out.Success {
		t.Fatalf("handleFocusWindow() = %+v, %v", out, err)
	}

	_, out, err = s.handleMaximizeWindow(context.Background(), nil, QueryInput{Query: "note"})
	if err != nil || !out.Success {
		t.Fatalf("handleMaximizeWindow() = %+v, %v", out, err)
	}

	calls := fake.Calls()
	if len(calls) != 5 {
		t.Fatalf("calls = %v, want 5", calls)
	}
	if calls[4].Op != "Maximize" || calls[4].ID != 0x10 {
		t.Errorf("last call = %v, want Maximize(16)", calls[4])
	}
}

func TestFocusWindow_NotFoundIsNotToolError(t *testing.T) {
	s, fake := newTestServer(t)

	_, out, err := s.handleFocusWindow(context.Background(), nil, QueryInput{Query: "zzz"})
	if err != nil {
		t.Fatalf("handleFocusWindow() error = %v", err)
	}
	if out.Success {
		t.Fatal("expected success=false")
	}
	if len(fake.Calls()) != 0 {
		t.Fatalf("unexpected host calls: %v", fake.Calls())
	}
}

func TestMaximizeWindow_HostFailureIsToolError(t *testing.T) {
	s, fake := newTestServer(t)
	fake.ActionErr = errors.New("access denied")

	if _, _, err := s.handleMaximizeWindow(context.Background(), nil, QueryInput{Query: "pad"}); err == nil {
		t.Fatal("expected tool error")
	}
}

func TestGetFocusedTitle(t *testing.T) {
	s, fake := newTestServer(t)

	_, out, err := s.handleGetFocusedTitle(context.Background(), nil, FocusedTitleInput{})
	if err != nil {
		t.Fatalf("handleGetFocusedTitle() error = %v", err)
	}
	if out.HasForeground {
		t.Fatalf("expected no foreground, got %+v", out)
	}

	fake.Focus(0x20)
	_, out, err = s.handleGetFocusedTitle(context.Background(), nil, FocusedTitleInput{})
	if err != nil {
		t.Fatalf("handleGetFocusedTitle() error = %v", err)
	}
	if !out.HasForeground || out.Title != "Calculator" {
		t.Fatalf("got %+v, want Calculator", out)
	}
}

func TestTitleMatchesFocused(t *testing.T) {
	s, fake := newTestServer(t)

	_, out, err := s.handleTitleMatchesFocused(context.Background(), nil, QueryInput{Query: "Notepad"})
	if err != nil {
		t.Fatalf("no foreground: error = %v", err)
	}
	if out.Matches {
		t.Fatal("no foreground: expected matches=false")
	}

	fake.Focus(0x10)
	tests := []struct {
		query string
		want  bool
	}{
		{"Untitled - Notepad", true},
		{"notepad", true},
		{"pad", false},
	}
	for _, tt := range tests {
		_, out, err := s.handleTitleMatchesFocused(context.Background(), nil, QueryInput{Query: tt.query})
		if err != nil {
			t.Fatalf("handleTitleMatchesFocused(%q) error = %v", tt.query, err)
		}
		if out.Matches != tt.want {
			t.Errorf("handleTitleMatchesFocused(%q) = %v, want %v", tt.query, out.Matches, tt.want)
		}
	}
}

func TestGetWindowBounds(t *testing.T) {
	s, _ := newTestServer(t)

	_, out, err := s.handleGetWindowBounds(context.Background(), nil, QueryInput{Query: "calc"})
	if err != nil {
		t.Fatalf("handleGetWindowBounds() error = %v", err)
	}
	want := BoundsOutput{Found: true, Left: 100, Top: 100, Right: 420, Bottom: 600}
	if out != want {
		t.Fatalf("got %+v, want %+v", out, want)
	}

	_, out, err = s.handleGetWindowBounds(context.Background(), nil, QueryInput{Query: "zzz"})
	if err != nil {
		t.Fatalf("not found: error = %v", err)
	}
	if out != (BoundsOutput{}) {
		t.Fatalf("not found: got %+v, want zero value", out)
	}
}
