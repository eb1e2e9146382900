package palette

import (
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// Names lists the supported launchers in detection priority order.
var Names = []string{"rofi", "fuzzel", "wofi", "dmenu"}

var lookPath = exec.LookPath

// DetectBackend returns the first available launcher found in PATH.
func DetectBackend() (string, error) {
	for _, name := range Names {
		if _, err := lookPath(name); err == nil {
			return name, nil
		}
	}
	return "", errors.Errorf("no palette backend found in PATH (looked for: %s)", strings.Join(Names, ", "))
}
