// Package palette drives dmenu-style launchers (rofi, fuzzel, wofi, dmenu)
// as an external window picker.
package palette

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrCancelled is returned when the user closes the palette without selecting an item.
var ErrCancelled = errors.New("palette cancelled")

// Item is a single selectable row.
type Item struct {
	Label  string
	Active bool // highlighted and preselected where the launcher supports it
}

// Backend shows a palette to the user and returns the index of the selected item.
type Backend interface {
	Show(prompt string, items []Item) (int, error)
	Name() string
}

// AutoDetect selects the first available backend in priority order.
func AutoDetect() (Backend, error) {
	name, err := DetectBackend()
	if err != nil {
		return nil, err
	}
	return NewBackend(name)
}

// NewBackend creates a backend by name. Supported names: auto, rofi, fuzzel,
// wofi, dmenu.
func NewBackend(name string) (Backend, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "auto" {
		return AutoDetect()
	}

	b, ok := newDmenuLike(name)
	if !ok {
		return nil, errors.Errorf("unknown palette backend: %q (expected: auto, %s)", name, strings.Join(Names, ", "))
	}
	if _, err := lookPath(name); err != nil {
		return nil, errors.Errorf("palette backend %q not found in PATH", name)
	}
	return b, nil
}
