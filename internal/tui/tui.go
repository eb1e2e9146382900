// Package tui provides the interactive window picker and configuration form.
package tui

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// ErrCancelled is returned when the user leaves the picker or form without
// making a choice.
var ErrCancelled = errors.New("tui cancelled")

var isInteractive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func requireTerminal() error {
	if !isInteractive() {
		return errors.New("tui requires an interactive terminal (stdin/stdout must be TTYs)")
	}
	return nil
}
