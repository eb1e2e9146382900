package tui

import (
	"testing"

	"github.com/1broseidon/wintitle/internal/config"
)

func TestConfigFields_RoundTrip(t *testing.T) {
	base := config.DefaultConfig()
	base.Display = ":1"
	base.Logging.Level = "WARNING"

	f := fieldsFromConfig(base)
	if f.logLevel != "warn" {
		t.Fatalf("logLevel = %q, want warn", f.logLevel)
	}

	f.maximizeMode = config.MaximizeFocusOnly
	f.picker = config.PickerRofi
	f.logFile = "/tmp/wintitle.log"

	out := f.apply(base)
	if out == base {
		t.Fatal("apply() must return a copy")
	}
	if out.MaximizeMode != config.MaximizeFocusOnly || out.Picker != config.PickerRofi {
		t.Errorf("apply() = %+v", out)
	}
	if out.Logging.File != "/tmp/wintitle.log" || out.Logging.Level != "warn" {
		t.Errorf("apply() logging = %+v", out.Logging)
	}
	if out.Display != ":1" || out.Logging.MaxFiles != config.DefaultMaxFiles {
		t.Errorf("apply() dropped untouched fields: %+v", out)
	}
	if base.MaximizeMode != config.MaximizeRequest {
		t.Errorf("base modified: %+v", base)
	}
	if err := out.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestEditConfig_RequiresTerminal(t *testing.T) {
	orig := isInteractive
	t.Cleanup(func() { isInteractive = orig })
	isInteractive = func() bool { return false }

	if _, err := EditConfig(config.DefaultConfig()); err == nil {
		t.Fatal("expected error without a terminal")
	}
}
