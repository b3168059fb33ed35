// Package frontend assembles a React project: it runs the project
// generator, applies library setup steps and installs the packages the
// selected libraries map to.
package frontend

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/create-stack/create-stack/internal/catalog"
	"github.com/create-stack/create-stack/internal/runner"
	"github.com/create-stack/create-stack/internal/ui"
)

// ErrUnknownLibrary indicates a selection that is not in the library catalog.
var ErrUnknownLibrary = errors.New("frontend: library not in catalog")

// Tools names the binaries the assembler invokes.
type Tools struct {
	Npx string
	Npm string
}

// Result summarizes an assembled project.
type Result struct {
	ProjectRoot     string
	TypeScript      bool
	Dependencies    []string // Installed with one `npm install` call.
	DevDependencies []string // Installed with `npm install -D`; empty for the shipped catalog.
	WrittenFiles    []string // Paths relative to ProjectRoot.
}

// Assembler builds frontend projects. It never changes the process working
// directory; every step after generation runs against the project root.
type Assembler struct {
	catalog  *catalog.Catalog
	run      runner.Runner
	tools    Tools
	baseDir  string
	reporter ui.Reporter
	logger   *slog.Logger
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithReporter sets the reporter for user-facing messages.
func WithReporter(r ui.Reporter) Option {
	return func(a *Assembler) {
		a.reporter = r
	}
}

// WithLogger sets the logger for the assembler.
func WithLogger(l *slog.Logger) Option {
	return func(a *Assembler) {
		a.logger = l
	}
}

// NewAssembler creates an Assembler that generates projects inside baseDir.
func NewAssembler(cat *catalog.Catalog, run runner.Runner, tools Tools, baseDir string, opts ...Option) *Assembler {
	a := &Assembler{
		catalog:  cat,
		run:      run,
		tools:    tools,
		baseDir:  baseDir,
		reporter: ui.NoOpReporter{},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.logger = a.logger.With("module", "frontend")
	return a
}

// Assemble generates projectName and applies the selected libraries.
// Setup steps and package accumulation follow catalog order, not the order
// of selected. The first failing step aborts the run; nothing is rolled back.
func (a *Assembler) Assemble(ctx context.Context, projectName string, selected []string) (*Result, error) {
	chosen, err := a.resolve(selected)
	if err != nil {
		return nil, err
	}

	res := &Result{
		ProjectRoot: filepath.Join(a.baseDir, projectName),
	}
	for _, lib := range chosen {
		if lib.Setup == catalog.SetupTypeScriptTemplate {
			res.TypeScript = true
		}
	}

	a.logger.Info("assembling frontend project",
		"name", projectName,
		"root", res.ProjectRoot,
		"libraries", len(chosen),
		"typescript", res.TypeScript,
	)

	a.reporter.StepStart(fmt.Sprintf("\n📦 Setting up frontend project: %s\n", projectName))

	// Step 1: generate the baseline project.
	if err := a.generate(ctx, projectName, res.TypeScript); err != nil {
		return nil, err
	}

	// Step 2: library setup side effects.
	for _, lib := range chosen {
		if lib.Setup != catalog.SetupTailwind {
			continue
		}
		if err := a.setupTailwind(ctx, res.ProjectRoot, lib, res); err != nil {
			return nil, err
		}
	}

	// Step 3: accumulate packages.
	for _, lib := range chosen {
		if len(lib.Dependencies) == 0 && len(lib.DevDependencies) == 0 {
			continue
		}
		if lib.Announce != "" {
			a.reporter.StepStart(lib.Announce)
		}
		for _, p := range lib.Dependencies {
			res.Dependencies = append(res.Dependencies, p.String())
		}
		for _, p := range lib.DevDependencies {
			res.DevDependencies = append(res.DevDependencies, p.String())
		}
	}

	// Step 4: install.
	if len(res.Dependencies) > 0 {
		a.reporter.StepStart("\nInstalling selected libraries:")
		if err := a.install(ctx, res.ProjectRoot, nil, res.Dependencies); err != nil {
			return nil, err
		}
	}
	if len(res.DevDependencies) > 0 {
		a.reporter.StepStart("\nInstalling development dependencies:")
		if err := a.install(ctx, res.ProjectRoot, []string{"-D"}, res.DevDependencies); err != nil {
			return nil, err
		}
	}

	a.reporter.Success(fmt.Sprintf("\n✅ Project %q is ready!", projectName))
	a.reporter.NextSteps([]string{"cd " + projectName, "npm start"})

	return res, nil
}

// resolve maps selected names to catalog entries in catalog order.
func (a *Assembler) resolve(selected []string) ([]catalog.Library, error) {
	want := make(map[string]bool, len(selected))
	for _, name := range selected {
		if _, ok := a.catalog.Library(name); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLibrary, name)
		}
		want[name] = true
	}

	var chosen []catalog.Library
	for _, lib := range a.catalog.Libraries() {
		if want[lib.Name] {
			chosen = append(chosen, lib)
		}
	}
	return chosen, nil
}

// generate runs create-react-app in the base directory.
func (a *Assembler) generate(ctx context.Context, projectName string, typescript bool) error {
	variant := ""
	args := []string{"create-react-app", projectName}
	if typescript {
		variant = "TypeScript "
		args = append(args, "--template", "typescript")
	}

	a.reporter.StepStart(fmt.Sprintf("Creating React %sproject...", variant))
	return a.run.Run(ctx, runner.Command{Name: a.tools.Npx, Args: args, Dir: a.baseDir})
}

// install lists pkgs and installs them with a single installer call.
func (a *Assembler) install(ctx context.Context, root string, flags, pkgs []string) error {
	for _, p := range pkgs {
		a.reporter.Item(p)
	}
	args := append([]string{"install"}, flags...)
	args = append(args, pkgs...)
	return a.run.Run(ctx, runner.Command{Name: a.tools.Npm, Args: args, Dir: root})
}
