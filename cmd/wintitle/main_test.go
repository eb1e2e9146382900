package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/1broseidon/wintitle/internal/config"
	"github.com/1broseidon/wintitle/internal/palette"
	"github.com/1broseidon/wintitle/internal/platform"
	"github.com/1broseidon/wintitle/internal/platform/platformtest"
)

func setup(t *testing.T) (*platformtest.Backend, *bytes.Buffer) {
	t.Helper()
	fake := platformtest.New(
		platformtest.Window{ID: 0x10, Title: "Notepad", Bounds: platform.Rect{Right: 800, Bottom: 600}},
		platformtest.Window{ID: 0x20, Title: "Calculator", Bounds: platform.Rect{Left: 100, Top: 100, Right: 420, Bottom: 600}},
	)

	origBackend, origStdout := newBackend, stdout
	t.Cleanup(func() {
		newBackend = origBackend
		stdout = origStdout
	})
	newBackend = func(platform.Options) (platform.Backend, error) { return fake, nil }

	var out bytes.Buffer
	stdout = &out

	t.Setenv(config.EnvConfigPath, filepath.Join(t.TempDir(), "missing.yaml"))
	return fake, &out
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestRunList(t *testing.T) {
	_, out := setup(t)

	if rc := run("list", nil); rc != 0 {
		t.Fatalf("list rc=%d, want 0", rc)
	}
	if out.String() != "Notepad\nCalculator\n" {
		t.Fatalf("list output = %q", out.String())
	}
}

func TestRunList_JSON(t *testing.T) {
	_, out := setup(t)

	if rc := run("list", []string{"--json"}); rc != 0 {
		t.Fatalf("list --json rc=%d, want 0", rc)
	}
	var got []windowJSON
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v (%q)", err, out.String())
	}
	if len(got) != 2 || got[1].Handle != 0x20 || got[1].Bounds.Right != 420 {
		t.Fatalf("list --json = %+v", got)
	}
}

func TestRunFind(t *testing.T) {
	_, out := setup(t)

	if rc := run("find", []string{"pad"}); rc != 0 {
		t.Fatalf("find rc=%d, want 0", rc)
	}
	if out.String() != "0x10\tNotepad\n" {
		t.Fatalf("find output = %q", out.String())
	}

	if rc := run("find", []string{"zzz"}); rc != 1 {
		t.Fatalf("find zzz rc=%d, want 1", rc)
	}
	if rc := run("find", nil); rc != 2 {
		t.Fatalf("find without query rc=%d, want 2", rc)
	}
}

func TestRunFocus(t *testing.T) {
	fake, _ := setup(t)

	if rc := run("focus", []string{"calc"}); rc != 0 {
		t.Fatalf("focus rc=%d, want 0", rc)
	}
	calls := fake.Calls()
	if len(calls) != 2 || calls[0].String() != "SetForeground(32)" || calls[1].String() != "SetFocus(32)" {
		t.Fatalf("calls = %v", calls)
	}
}

func TestRunMaximize_HonoursMaximizeMode(t *testing.T) {
	tests := []struct {
		name      string
		config    string
		wantCalls int
	}{
		{"request", "maximize_mode: request\n", 3},
		{"focus-only", "maximize_mode: focus-only\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake, _ := setup(t)
			path := writeConfig(t, tt.config)

			if rc := run("maximize", []string{"--config", path, "note"}); rc != 0 {
				t.Fatalf("maximize rc=%d, want 0", rc)
			}
			if got := len(fake.Calls()); got != tt.wantCalls {
				t.Fatalf("calls = %v, want %d", fake.Calls(), tt.wantCalls)
			}
		})
	}
}

func TestRunFocused(t *testing.T) {
	fake, out := setup(t)

	if rc := run("focused", nil); rc != 1 {
		t.Fatalf("focused without foreground rc=%d, want 1", rc)
	}

	fake.Focus(0x20)
	if rc := run("focused", nil); rc != 0 {
		t.Fatalf("focused rc=%d, want 0", rc)
	}
	if out.String() != "Calculator\n" {
		t.Fatalf("focused output = %q", out.String())
	}
}

func TestRunMatches(t *testing.T) {
	fake, out := setup(t)
	fake.Focus(0x10)

	if rc := run("matches", []string{"Untitled", "-", "Notepad"}); rc != 0 {
		t.Fatalf("matches rc=%d, want 0", rc)
	}
	if out.String() != "true\n" {
		t.Fatalf("matches output = %q", out.String())
	}

	out.Reset()
	if rc := run("matches", []string{"-q", "pad"}); rc != 1 {
		t.Fatalf("matches pad rc=%d, want 1", rc)
	}
	if out.Len() != 0 {
		t.Fatalf("-q printed %q", out.String())
	}
}

func TestRunBounds(t *testing.T) {
	_, out := setup(t)

	if rc := run("bounds", []string{"calc"}); rc != 0 {
		t.Fatalf("bounds rc=%d, want 0", rc)
	}
	if out.String() != "100 100 420 600\n" {
		t.Fatalf("bounds output = %q", out.String())
	}

	out.Reset()
	if rc := run("bounds", []string{"--json", "note"}); rc != 0 {
		t.Fatalf("bounds --json rc=%d, want 0", rc)
	}
	var r platform.Rect
	if err := json.Unmarshal(out.Bytes(), &r); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if r != (platform.Rect{Right: 800, Bottom: 600}) {
		t.Fatalf("bounds --json = %+v", r)
	}

	if rc := run("bounds", []string{"zzz"}); rc != 1 {
		t.Fatalf("bounds zzz rc=%d, want 1", rc)
	}
}

func TestRun_UsageErrors(t *testing.T) {
	setup(t)

	tests := []struct {
		command string
		args    []string
		want    int
	}{
		{"nope", nil, 2},
		{"list", []string{"extra"}, 2},
		{"list", []string{"--bogus"}, 2},
		{"focus", []string{"-h"}, 0},
		{"mcp", nil, 2},
		{"mcp", []string{"stop"}, 2},
		{"config", nil, 2},
		{"config", []string{"explain"}, 2},
	}

	for _, tt := range tests {
		if rc := run(tt.command, tt.args); rc != tt.want {
			t.Errorf("%s %v rc=%d, want %d", tt.command, tt.args, rc, tt.want)
		}
	}
}

func TestRunConfig_InitValidatePrint(t *testing.T) {
	_, out := setup(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	if rc := run("config", []string{"init", "--config", path}); rc != 0 {
		t.Fatalf("config init rc=%d, want 0", rc)
	}
	if rc := run("config", []string{"init", "--config", path}); rc != 1 {
		t.Fatalf("second config init rc=%d, want 1", rc)
	}
	if rc := run("config", []string{"init", "--config", path, "--force"}); rc != 0 {
		t.Fatalf("config init --force rc=%d, want 0", rc)
	}
	if rc := run("config", []string{"validate", "--config", path}); rc != 0 {
		t.Fatalf("config validate rc=%d, want 0", rc)
	}

	out.Reset()
	if rc := run("config", []string{"print", "--config", path, "--sources"}); rc != 0 {
		t.Fatalf("config print rc=%d, want 0", rc)
	}
	printed := out.String()
	for _, want := range []string{"# file: ", "# maximize_mode: ", "maximize_mode: request", "picker: auto"} {
		if !strings.Contains(printed, want) {
			t.Errorf("config print output missing %q:\n%s", want, printed)
		}
	}
}

func TestRunConfigValidate_Invalid(t *testing.T) {
	setup(t)
	path := writeConfig(t, "maximize_mode: sideways\n")

	if rc := run("config", []string{"validate", "--config", path}); rc != 1 {
		t.Fatalf("config validate rc=%d, want 1", rc)
	}
}

func TestPickerName(t *testing.T) {
	tests := []struct {
		configured  string
		forceMenu   bool
		interactive bool
		want        string
	}{
		{config.PickerAuto, false, true, config.PickerTUI},
		{config.PickerAuto, false, false, config.PickerAuto},
		{config.PickerAuto, true, true, config.PickerAuto},
		{config.PickerTUI, false, false, config.PickerTUI},
		{config.PickerTUI, true, true, config.PickerAuto},
		{config.PickerRofi, false, true, config.PickerRofi},
	}

	for _, tt := range tests {
		if got := pickerName(tt.configured, tt.forceMenu, tt.interactive); got != tt.want {
			t.Errorf("pickerName(%q, %v, %v) = %q, want %q", tt.configured, tt.forceMenu, tt.interactive, got, tt.want)
		}
	}
}

type stubPalette struct {
	choice int
	err    error
	items  []palette.Item
}

func (s *stubPalette) Show(_ string, items []palette.Item) (int, error) {
	s.items = items
	return s.choice, s.err
}

func (s *stubPalette) Name() string { return "stub" }

func stubPicker(t *testing.T, p *stubPalette) {
	t.Helper()
	origPalette, origTerminal := newPalette, stdinIsTerminal
	t.Cleanup(func() {
		newPalette = origPalette
		stdinIsTerminal = origTerminal
	})
	newPalette = func(string) (palette.Backend, error) { return p, nil }
	stdinIsTerminal = func() bool { return false }
}

func TestRunPick_FocusesChoice(t *testing.T) {
	fake, _ := setup(t)
	fake.Focus(0x10)
	p := &stubPalette{choice: 1}
	stubPicker(t, p)

	if rc := run("pick", nil); rc != 0 {
		t.Fatalf("pick rc=%d, want 0", rc)
	}
	if len(p.items) != 2 || p.items[1].Label != "Calculator" || !p.items[0].Active {
		t.Fatalf("palette items = %+v", p.items)
	}
	calls := fake.Calls()
	if len(calls) != 2 || calls[0].ID != 0x20 {
		t.Fatalf("calls = %v, want focus of 0x20", calls)
	}
}

func TestRunPick_Cancelled(t *testing.T) {
	fake, _ := setup(t)
	stubPicker(t, &stubPalette{choice: -1, err: palette.ErrCancelled})

	if rc := run("pick", []string{"--menu"}); rc != 1 {
		t.Fatalf("pick rc=%d, want 1", rc)
	}
	if len(fake.Calls()) != 0 {
		t.Fatalf("unexpected calls: %v", fake.Calls())
	}
}
