package palette

import (
	"bytes"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type backendKind int

const (
	kindRofi backendKind = iota
	kindFuzzel
	kindWofi
	kindDmenu
)

// runFunc executes a launcher with stdin and returns its stdout.
type runFunc func(command string, args []string, stdin string) (string, error)

type dmenuLikeBackend struct {
	command string
	kind    backendKind
	// indexOutput backends print the selected row index instead of its text.
	indexOutput bool
	run         runFunc
}

func newDmenuLike(name string) (*dmenuLikeBackend, bool) {
	b := &dmenuLikeBackend{command: name, run: execRun}
	switch name {
	case "rofi":
		b.kind, b.indexOutput = kindRofi, true
	case "fuzzel":
		b.kind, b.indexOutput = kindFuzzel, true
	case "wofi":
		b.kind = kindWofi
	case "dmenu":
		b.kind = kindDmenu
	default:
		return nil, false
	}
	return b, true
}

func (b *dmenuLikeBackend) Name() string {
	return b.command
}

func (b *dmenuLikeBackend) Show(prompt string, items []Item) (int, error) {
	if len(items) == 0 {
		return -1, errors.New("palette: no items to show")
	}

	labels := b.labels(items)
	out, err := b.run(b.command, b.buildArgs(prompt, items), strings.Join(labels, "\n"))
	selection := strings.TrimSpace(out)
	if err != nil {
		if selection == "" && isCancelExit(err) {
			return -1, ErrCancelled
		}
		return -1, err
	}
	if selection == "" {
		return -1, ErrCancelled
	}

	return b.parseSelection(selection, labels)
}

func (b *dmenuLikeBackend) buildArgs(prompt string, items []Item) []string {
	var args []string

	switch b.kind {
	case kindRofi:
		args = []string{"-dmenu", "-i"}
		if prompt != "" {
			args = append(args, "-p", prompt)
		}
		// Titles may contain anything; select by row index.
		args = append(args, "-format", "i", "-no-custom")
		if active := activeRows(items); len(active) > 0 {
			args = append(args, "-a", formatIndices(active))
			args = append(args, "-selected-row", strconv.Itoa(active[0]))
		}

	case kindFuzzel:
		args = []string{"--dmenu"}
		if prompt != "" {
			args = append(args, "--prompt", prompt)
		}
		args = append(args, "--index")

	case kindWofi:
		args = []string{"--dmenu", "--insensitive"}
		if prompt != "" {
			args = append(args, "--prompt", prompt)
		}

	case kindDmenu:
		args = []string{"-i"}
		if prompt != "" {
			args = append(args, "-p", prompt)
		}
	}

	return args
}

// labels returns one display line per item. Launchers that echo the chosen
// text need unique lines, so repeated titles get a " (n)" suffix there. A
// suffix never reuses a label that is already a real title.
func (b *dmenuLikeBackend) labels(items []Item) []string {
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = sanitizeLabel(item.Label)
	}
	if b.indexOutput {
		return labels
	}

	titles := make(map[string]bool, len(labels))
	for _, label := range labels {
		titles[label] = true
	}
	used := make(map[string]bool, len(labels))
	for i, label := range labels {
		if used[label] {
			for n := 2; ; n++ {
				candidate := fmt.Sprintf("%s (%d)", label, n)
				if !titles[candidate] && !used[candidate] {
					label = candidate
					break
				}
			}
		}
		used[label] = true
		labels[i] = label
	}
	return labels
}

func (b *dmenuLikeBackend) parseSelection(selection string, labels []string) (int, error) {
	if b.indexOutput {
		if idx, err := strconv.Atoi(selection); err == nil {
			if idx < 0 || idx >= len(labels) {
				return -1, errors.Errorf("palette: index %d out of range", idx)
			}
			return idx, nil
		}
	}

	for i, label := range labels {
		if label == selection {
			return i, nil
		}
	}
	return -1, errors.Errorf("palette: unknown selection %q", selection)
}

func execRun(command string, args []string, stdin string) (string, error) {
	cmd := exec.Command(command, args...)
	cmd.Stdin = strings.NewReader(stdin)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil && !isCancelExit(err) {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return string(out), errors.Errorf("%s failed: %s", command, msg)
		}
		return string(out), errors.Wrapf(err, "%s failed", command)
	}
	return string(out), err
}

func activeRows(items []Item) []int {
	var rows []int
	for i, item := range items {
		if item.Active {
			rows = append(rows, i)
		}
	}
	return rows
}

func sanitizeLabel(label string) string {
	label = strings.ReplaceAll(label, "\x00", " ")
	label = strings.ReplaceAll(label, "\r", " ")
	label = strings.ReplaceAll(label, "\n", " ")
	return strings.TrimSpace(label)
}

func formatIndices(indices []int) string {
	parts := make([]string, 0, len(indices))
	for _, i := range indices {
		parts = append(parts, strconv.Itoa(i))
	}
	return strings.Join(parts, ",")
}

// isCancelExit reports launcher exits meaning "no selection": 1 for Escape,
// 130 for Ctrl+C.
func isCancelExit(err error) bool {
	var exitErr interface{ ExitCode() int }
	if !errors.As(err, &exitErr) {
		return false
	}
	switch exitErr.ExitCode() {
	case 1, 130:
		return true
	default:
		return false
	}
}
