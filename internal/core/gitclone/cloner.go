// Package gitclone clones boilerplate repositories, either by running the
// git binary or in-process with go-git.
package gitclone

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/go-git/go-git/v5"

	"github.com/create-stack/create-stack/internal/config"
	"github.com/create-stack/create-stack/internal/runner"
)

// Cloner clones a repository into a new directory.
type Cloner interface {
	// Clone clones url into dest. A relative dest is resolved against the
	// cloner's base directory. The call blocks until the clone finishes.
	Clone(ctx context.Context, url, dest string) error
}

// ExecCloner runs `git clone <url> <dest>` through a runner.Runner, so the
// tool's own progress output reaches the terminal.
type ExecCloner struct {
	run     runner.Runner
	git     string
	baseDir string
}

// Compile-time interface compliance check.
var _ Cloner = (*ExecCloner)(nil)

// NewExecCloner creates an ExecCloner running gitBin in baseDir.
func NewExecCloner(run runner.Runner, gitBin, baseDir string) *ExecCloner {
	return &ExecCloner{run: run, git: gitBin, baseDir: baseDir}
}

// Clone runs the clone command. Runner errors are returned unwrapped so
// callers can inspect the exit code.
func (c *ExecCloner) Clone(ctx context.Context, url, dest string) error {
	return c.run.Run(ctx, runner.Command{
		Name: c.git,
		Args: []string{"clone", url, dest},
		Dir:  c.baseDir,
	})
}

// GoGitCloner clones in-process with go-git. It needs no git binary.
type GoGitCloner struct {
	baseDir  string
	progress io.Writer
	logger   *slog.Logger
}

// Compile-time interface compliance check.
var _ Cloner = (*GoGitCloner)(nil)

// NewGoGitCloner creates a GoGitCloner that writes progress to progress.
func NewGoGitCloner(baseDir string, progress io.Writer, logger *slog.Logger) *GoGitCloner {
	if logger == nil {
		logger = slog.Default()
	}
	return &GoGitCloner{
		baseDir:  baseDir,
		progress: progress,
		logger:   logger.With("module", "gitclone"),
	}
}

// Clone performs a non-bare clone of url into dest.
func (c *GoGitCloner) Clone(ctx context.Context, url, dest string) error {
	path := dest
	if !filepath.IsAbs(path) {
		path = filepath.Join(c.baseDir, dest)
	}

	c.logger.Debug("cloning with go-git", "url", url, "path", path)

	if _, err := git.PlainCloneContext(ctx, path, false, &git.CloneOptions{
		URL:      url,
		Progress: c.progress,
	}); err != nil {
		return fmt.Errorf("clone %s into %s: %w", url, dest, err)
	}
	return nil
}

// LookPathFunc resolves a binary on PATH.
type LookPathFunc func(file string) (string, error)

// Options configures New.
type Options struct {
	Backend  config.CloneBackend
	GitBin   string
	BaseDir  string
	Runner   runner.Runner
	Progress io.Writer    // go-git progress sink; defaults to os.Stdout.
	LookPath LookPathFunc // defaults to exec.LookPath.
	Logger   *slog.Logger
}

// New picks a Cloner for the configured backend. The auto backend uses the
// git binary when it can be found and falls back to go-git otherwise.
func New(opts Options) Cloner {
	if opts.Progress == nil {
		opts.Progress = os.Stdout
	}
	if opts.LookPath == nil {
		opts.LookPath = exec.LookPath
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	switch opts.Backend {
	case config.CloneBackendGit:
		return NewExecCloner(opts.Runner, opts.GitBin, opts.BaseDir)
	case config.CloneBackendGoGit:
		return NewGoGitCloner(opts.BaseDir, opts.Progress, opts.Logger)
	}

	if _, err := opts.LookPath(opts.GitBin); err != nil {
		opts.Logger.Debug("git binary not found, cloning with go-git", "git", opts.GitBin, "error", err)
		return NewGoGitCloner(opts.BaseDir, opts.Progress, opts.Logger)
	}
	return NewExecCloner(opts.Runner, opts.GitBin, opts.BaseDir)
}
