// Package cli provides the Cobra command tree and dependency injection
// wiring for create-stack. This file defines the Dependencies struct
// (Composition Root) that wires all domain modules together.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/create-stack/create-stack/internal/catalog"
	"github.com/create-stack/create-stack/internal/cli/wizard"
	"github.com/create-stack/create-stack/internal/config"
	"github.com/create-stack/create-stack/internal/core/boilerplate"
	"github.com/create-stack/create-stack/internal/core/frontend"
	"github.com/create-stack/create-stack/internal/core/gitclone"
	"github.com/create-stack/create-stack/internal/core/scaffold"
	"github.com/create-stack/create-stack/internal/runner"
	"github.com/create-stack/create-stack/internal/ui"
)

// Dependencies holds all domain-level services used by CLI commands.
// This is the Composition Root: the only place where concrete types
// are instantiated and wired together.
type Dependencies struct {
	Config   *config.Config
	Catalog  *catalog.Catalog
	Theme    *ui.Theme
	Reporter ui.Reporter
	Wizard   *wizard.Wizard
	Router   *scaffold.Router
	Out      io.Writer
	Logger   *slog.Logger
}

// InitOptions carries the inputs of InitDependencies.
type InitOptions struct {
	ConfigPath string    // Explicit --config value; may be empty.
	Verbose    bool      // --verbose
	BaseDir    string    // Directory projects are created in; defaults to the working directory.
	Stdout     io.Writer // defaults to os.Stdout
	Stderr     io.Writer // defaults to os.Stderr
}

// deps is the global dependencies instance, initialized by the root
// command's PersistentPreRunE unless a test installed one with SetDeps.
var deps *Dependencies

// InitDependencies loads the configuration and wires every component.
func InitDependencies(opts InitOptions) (*Dependencies, error) {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.BaseDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		opts.BaseDir = cwd
	}

	// Config problems are surfaced even without --verbose.
	bootLevel := slog.LevelWarn
	if opts.Verbose {
		bootLevel = slog.LevelDebug
	}
	bootLogger := slog.New(slog.NewTextHandler(opts.Stderr, &slog.HandlerOptions{Level: bootLevel}))

	cfgPath, err := config.ResolvePath(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(cfgPath, bootLogger)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", cfgPath, err)
	}

	logger := newLogger(cfg, opts.Verbose, opts.Stderr)

	cat := catalog.Default()
	if err := cat.Validate(); err != nil {
		return nil, err
	}

	term := ui.NewTerminal()
	theme := ui.NewTheme(ui.ThemeConfig{NoColor: cfg.UI.NoColor || !term.ColorOutput()})
	reporter := ui.NewConsoleReporter(opts.Stdout, theme)

	run := runner.NewExecRunner(runner.WithLogger(logger))
	cloner := gitclone.New(gitclone.Options{
		Backend:  cfg.Clone.Backend,
		GitBin:   cfg.Tools.Git,
		BaseDir:  opts.BaseDir,
		Runner:   run,
		Progress: opts.Stdout,
		Logger:   logger,
	})

	executor := boilerplate.NewExecutor(cat, cloner,
		boilerplate.WithReporter(reporter),
		boilerplate.WithLogger(logger),
	)
	assembler := frontend.NewAssembler(cat, run,
		frontend.Tools{Npx: cfg.Tools.Npx, Npm: cfg.Tools.Npm},
		opts.BaseDir,
		frontend.WithReporter(reporter),
		frontend.WithLogger(logger),
	)

	return &Dependencies{
		Config:   cfg,
		Catalog:  cat,
		Theme:    theme,
		Reporter: reporter,
		Wizard: wizard.New(
			wizard.WithPrompter(wizard.NewHuhPrompter(theme)),
			wizard.WithInteractive(term.IsInteractive),
			wizard.WithLogger(logger),
		),
		Router: scaffold.NewRouter(executor, assembler, logger),
		Out:    opts.Stdout,
		Logger: logger,
	}, nil
}

// newLogger returns a discarding logger unless --verbose is set or the
// configured level is debug.
func newLogger(cfg *config.Config, verbose bool, stderr io.Writer) *slog.Logger {
	level := cfg.Log.SlogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	if level != slog.LevelDebug {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
}

// GetDeps returns the current Dependencies instance.
// Returns nil if InitDependencies has not run.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}
