// Package runner executes external tools synchronously with the parent's
// standard streams attached, and classifies the outcome as success, a
// non-zero exit, or a failure to start.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// Command describes one external invocation.
type Command struct {
	Name string   // Binary name or path.
	Args []string // Arguments, passed without shell interpretation.
	Dir  string   // Working directory; empty means the current directory.
}

// String renders the command line as typed in a shell, without quoting.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Runner runs a command to completion.
type Runner interface {
	// Run blocks until the command exits. It returns nil on a zero exit,
	// *ExitError on a non-zero exit and *SpawnError when the command
	// could not be started.
	Run(ctx context.Context, cmd Command) error
}

// RunFunc adapts a plain function to the Runner interface.
type RunFunc func(ctx context.Context, cmd Command) error

// Run calls f(ctx, cmd).
func (f RunFunc) Run(ctx context.Context, cmd Command) error {
	return f(ctx, cmd)
}

// ExitError reports a command that ran and exited with a non-zero status.
type ExitError struct {
	Command Command
	Code    int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return fmt.Sprintf("command %q exited with code %d", e.Command.String(), e.Code)
}

// SpawnError reports a command that could not be started at all
// (missing binary, bad working directory, permission denied).
type SpawnError struct {
	Command Command
	Err     error
}

// Error implements the error interface.
func (e *SpawnError) Error() string {
	return fmt.Sprintf("start command %q: %v", e.Command.String(), e.Err)
}

// Unwrap returns the underlying start error.
func (e *SpawnError) Unwrap() error {
	return e.Err
}

// ExitStatus extracts the child's exit code from an error returned by Run.
// The second result is false when err does not carry an exit code.
func ExitStatus(err error) (int, bool) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Code > 0 {
		return exitErr.Code, true
	}
	return 0, false
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

// Compile-time interface compliance check.
var _ Runner = (*ExecRunner)(nil)

// Option configures an ExecRunner.
type Option func(*ExecRunner)

// WithStdio replaces the streams handed to child processes.
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(r *ExecRunner) {
		r.stdin = stdin
		r.stdout = stdout
		r.stderr = stderr
	}
}

// WithLogger sets the logger for the runner.
func WithLogger(l *slog.Logger) Option {
	return func(r *ExecRunner) {
		r.logger = l
	}
}

// NewExecRunner creates an ExecRunner whose children inherit the
// process's standard streams.
func NewExecRunner(opts ...Option) *ExecRunner {
	r := &ExecRunner{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With("module", "runner")
	return r
}

// Run executes cmd and waits for it to exit. There is no timeout.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) error {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	c.Stdin = r.stdin
	c.Stdout = r.stdout
	c.Stderr = r.stderr

	r.logger.Debug("running command", "cmd", cmd.String(), "dir", cmd.Dir)

	if err := c.Start(); err != nil {
		r.logger.Debug("command failed to start", "cmd", cmd.String(), "error", err)
		return &SpawnError{Command: cmd, Err: err}
	}

	if err := c.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			r.logger.Debug("command exited non-zero", "cmd", cmd.String(), "code", exitErr.ExitCode())
			return &ExitError{Command: cmd, Code: exitErr.ExitCode()}
		}
		return &SpawnError{Command: cmd, Err: err}
	}

	r.logger.Debug("command finished", "cmd", cmd.String())
	return nil
}
