package tui

import (
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/pkg/errors"

	"github.com/1broseidon/wintitle/internal/config"
)

// configFields holds the form-bound copies of editable settings.
type configFields struct {
	maximizeMode string
	picker       string
	logLevel     string
	logFile      string
}

func fieldsFromConfig(cfg *config.Config) *configFields {
	return &configFields{
		maximizeMode: cfg.MaximizeMode,
		picker:       cfg.Picker,
		logLevel:     normalizeLevel(cfg.Logging.Level),
		logFile:      cfg.Logging.File,
	}
}

func normalizeLevel(level string) string {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "warning" {
		return "warn"
	}
	return level
}

// apply returns a copy of base with the edited fields applied.
func (f *configFields) apply(base *config.Config) *config.Config {
	out := *base
	out.MaximizeMode = f.maximizeMode
	out.Picker = f.picker
	out.Logging.Level = f.logLevel
	out.Logging.File = f.logFile
	return &out
}

func options(values ...string) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(values))
	for _, v := range values {
		opts = append(opts, huh.NewOption(v, v))
	}
	return opts
}

func newConfigForm(f *configFields) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("maximize_mode").
				Title("Maximize Mode").
				Description("request maximizes after focusing; focus-only just focuses").
				Options(options(config.MaximizeRequest, config.MaximizeFocusOnly)...).
				Value(&f.maximizeMode),

			huh.NewSelect[string]().
				Key("picker").
				Title("Picker").
				Description("Window chooser used by `wintitle pick`").
				Options(options(
					config.PickerAuto,
					config.PickerTUI,
					config.PickerRofi,
					config.PickerFuzzel,
					config.PickerWofi,
					config.PickerDmenu,
				)...).
				Value(&f.picker),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("log_level").
				Title("Log Level").
				Options(options("debug", "info", "warn", "error")...).
				Value(&f.logLevel),

			huh.NewInput().
				Key("log_file").
				Title("Log File").
				Description("Leave empty to log to stderr only").
				Value(&f.logFile),
		),
	).WithShowHelp(true).WithShowErrors(true)
}

// EditConfig opens an interactive form over cfg and returns the edited,
// validated copy. cfg itself is not modified.
func EditConfig(cfg *config.Config) (*config.Config, error) {
	if err := requireTerminal(); err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	fields := fieldsFromConfig(cfg)
	if err := newConfigForm(fields).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, ErrCancelled
		}
		return nil, errors.Wrap(err, "config form failed")
	}

	out := fields.apply(cfg)
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}
