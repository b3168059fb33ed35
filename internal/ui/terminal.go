package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Terminal reports whether the process talks to an interactive terminal.
// Detection can be overridden, which tests use to exercise both paths.
type Terminal struct {
	forced *bool
	stdin  uintptr
	stdout uintptr
}

// NewTerminal creates a Terminal that inspects os.Stdin and os.Stdout.
func NewTerminal() *Terminal {
	return &Terminal{stdin: os.Stdin.Fd(), stdout: os.Stdout.Fd()}
}

// IsInteractive reports whether stdin is a terminal, so prompts can be shown.
func (t *Terminal) IsInteractive() bool {
	if t.forced != nil {
		return *t.forced
	}
	return isTTY(t.stdin)
}

// ColorOutput reports whether stdout is a terminal that can render colour.
func (t *Terminal) ColorOutput() bool {
	if t.forced != nil {
		return *t.forced
	}
	return isTTY(t.stdout)
}

// Force overrides detection for both streams.
func (t *Terminal) Force(interactive bool) {
	t.forced = &interactive
}

// ClearForce reverts to automatic detection.
func (t *Terminal) ClearForce() {
	t.forced = nil
}

func isTTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
