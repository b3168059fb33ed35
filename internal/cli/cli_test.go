package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

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

// answers is a wizard.Prompter returning canned answers by question ID.
type answers struct {
	text  map[string]string
	multi map[string][]string
	err   error
}

func (a *answers) Input(_ context.Context, q *wizard.Question) (string, error) {
	return a.text[q.ID], a.err
}

func (a *answers) Select(_ context.Context, q *wizard.Question) (string, error) {
	return a.text[q.ID], a.err
}

func (a *answers) MultiSelect(_ context.Context, q *wizard.Question) ([]string, error) {
	return a.multi[q.ID], a.err
}

// testDeps wires the real components against a recording runner.
func testDeps(t *testing.T, p wizard.Prompter, rec *runner.Recorder) (*Dependencies, *bytes.Buffer, string) {
	t.Helper()

	base := t.TempDir()
	out := &bytes.Buffer{}
	cat := catalog.Default()
	reporter := ui.NewConsoleReporter(out, nil)

	executor := boilerplate.NewExecutor(cat, gitclone.NewExecCloner(rec, "git", base),
		boilerplate.WithReporter(reporter))
	assembler := frontend.NewAssembler(cat, rec, frontend.Tools{Npx: "npx", Npm: "npm"}, base,
		frontend.WithReporter(reporter))

	return &Dependencies{
		Config:   config.NewDefaultConfig(),
		Catalog:  cat,
		Theme:    ui.NewTheme(ui.ThemeConfig{NoColor: true}),
		Reporter: reporter,
		Wizard: wizard.New(
			wizard.WithPrompter(p),
			wizard.WithInteractive(func() bool { return true }),
		),
		Router: scaffold.NewRouter(executor, assembler, nil),
		Out:    out,
	}, out, base
}

func TestRunScaffold_Boilerplate(t *testing.T) {
	p := &answers{text: map[string]string{
		wizard.IDProjectName: "",
		wizard.IDMode:        "boilerplate",
		wizard.IDBoilerplate: "https://github.com/fastapi/full-stack-fastapi-template.git",
	}}
	rec := &runner.Recorder{}
	d, out, base := testDeps(t, p, rec)

	if err := runScaffold(context.Background(), d); err != nil {
		t.Fatalf("runScaffold() error = %v", err)
	}

	calls := rec.Calls()
	if len(calls) != 1 {
		t.Fatalf("commands = %v, want one clone", rec.Lines())
	}
	if got := calls[0].String(); got != "git clone https://github.com/fastapi/full-stack-fastapi-template.git my-app" {
		t.Errorf("clone = %q", got)
	}
	if calls[0].Dir != base {
		t.Errorf("clone Dir = %q, want %q", calls[0].Dir, base)
	}

	for _, want := range []string{
		"Create-Stack CLI",
		"Cloning boilerplate from https://github.com/fastapi/full-stack-fastapi-template.git",
		`Boilerplate setup done in folder "my-app"`,
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRunScaffold_Frontend(t *testing.T) {
	p := &answers{
		text:  map[string]string{wizard.IDProjectName: "demo", wizard.IDMode: "frontend"},
		multi: map[string][]string{wizard.IDLibraries: {"TypeScript", "Redux Toolkit"}},
	}
	rec := &runner.Recorder{}
	d, _, base := testDeps(t, p, rec)

	if err := runScaffold(context.Background(), d); err != nil {
		t.Fatalf("runScaffold() error = %v", err)
	}

	want := []string{
		"npx create-react-app demo --template typescript",
		"npm install @reduxjs/toolkit react-redux",
	}
	if got := rec.Lines(); !slices.Equal(got, want) {
		t.Errorf("commands = %v, want %v", got, want)
	}
	if dir := rec.Calls()[1].Dir; dir != filepath.Join(base, "demo") {
		t.Errorf("install Dir = %q", dir)
	}
}

func TestRunScaffold_FailuresPropagate(t *testing.T) {
	t.Run("clone exit code", func(t *testing.T) {
		p := &answers{text: map[string]string{
			wizard.IDProjectName: "x",
			wizard.IDMode:        "boilerplate",
			wizard.IDBoilerplate: "https://github.com/djizco/mern-boilerplate.git",
		}}
		rec := &runner.Recorder{Handler: func(_ context.Context, cmd runner.Command) error {
			return &runner.ExitError{Command: cmd, Code: 128}
		}}
		d, out, _ := testDeps(t, p, rec)

		err := runScaffold(context.Background(), d)
		if ExitCode(err) != 128 {
			t.Errorf("ExitCode(%v) = %d, want 128", err, ExitCode(err))
		}
		if strings.Contains(out.String(), "Boilerplate setup done") {
			t.Error("success message printed after a failed clone")
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		p := &answers{err: wizard.ErrCancelled}
		rec := &runner.Recorder{}
		d, _, _ := testDeps(t, p, rec)

		err := runScaffold(context.Background(), d)
		if ExitCode(err) != ExitCancelled {
			t.Errorf("ExitCode(%v) = %d, want %d", err, ExitCode(err), ExitCancelled)
		}
		if len(rec.Calls()) != 0 {
			t.Errorf("commands ran after cancel: %v", rec.Lines())
		}
	})

	t.Run("nil deps", func(t *testing.T) {
		if err := runScaffold(context.Background(), nil); err == nil {
			t.Error("runScaffold(nil) should fail")
		}
	})
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"cancelled", wizard.ErrCancelled, 130},
		{"wrapped cancel", fmt.Errorf("run: %w", wizard.ErrCancelled), 130},
		{"child exit", &runner.ExitError{Code: 2}, 2},
		{"wrapped child exit", fmt.Errorf("clone: %w", &runner.ExitError{Code: 128}), 128},
		{"spawn failure", &runner.SpawnError{Err: os.ErrNotExist}, 1},
		{"not interactive", wizard.ErrNotInteractive, 1},
		{"other", errors.New("boom"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRenderCatalog(t *testing.T) {
	var buf bytes.Buffer
	if err := renderCatalog(&buf, catalog.Default(), nil); err != nil {
		t.Fatalf("renderCatalog() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Frontend libraries",
		"Boilerplates",
		"Redux Toolkit",
		"@reduxjs/toolkit react-redux",
		"tailwindcss@3.2.7 (dev)",
		"--template typescript",
		"https://github.com/vintasoftware/django-react-boilerplate.git",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if strings.Index(out, "Formik") > strings.Index(out, "Zustand") {
		t.Error("libraries not listed in catalog order")
	}
}

func TestLibraryActions(t *testing.T) {
	cat := catalog.Default()
	tests := []struct {
		name string
		want string
	}{
		{"React", "-"},
		{"TypeScript", "--template typescript"},
		{"Formik", "formik yup"},
		{"Tailwind", "tailwindcss@3.2.7 (dev) postcss@8.4.21 (dev) autoprefixer@10.4.13 (dev)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lib, ok := cat.Library(tt.name)
			if !ok {
				t.Fatalf("library %q missing", tt.name)
			}
			if got := libraryActions(lib); got != tt.want {
				t.Errorf("libraryActions() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVersionCommand(t *testing.T) {
	SetDeps(nil)
	t.Cleanup(func() { SetDeps(nil) })

	// A broken config must not affect the version command.
	cfg := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfg, []byte("clone:\n  backend: svn\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", cfg, "version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.HasPrefix(out.String(), "create-stack dev") {
		t.Errorf("output = %q", out.String())
	}
	if GetDeps() != nil {
		t.Error("version should not initialize dependencies")
	}
}

func TestListCommand(t *testing.T) {
	SetDeps(nil)
	t.Cleanup(func() { SetDeps(nil) })
	t.Setenv(config.EnvConfigPath, filepath.Join(t.TempDir(), "missing.yaml"))

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"list"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("list error = %v", err)
	}
	if !strings.Contains(out.String(), "MERN Boilerplate (djizco/mern-boilerplate)") {
		t.Errorf("output = %q", out.String())
	}
	if d := GetDeps(); d == nil || d.Config.Clone.Backend != config.CloneBackendAuto {
		t.Errorf("dependencies not initialized with defaults: %+v", d)
	}
}

func TestInvalidConfigIsFatal(t *testing.T) {
	SetDeps(nil)
	t.Cleanup(func() { SetDeps(nil) })

	cfg := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfg, []byte("clone:\n  backend: svn\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", cfg, "list"})

	err := cmd.Execute()
	if !errors.Is(err, config.ErrInvalidCloneBackend) {
		t.Errorf("Execute() error = %v, want ErrInvalidCloneBackend", err)
	}
	if ExitCode(err) != 1 {
		t.Errorf("ExitCode() = %d, want 1", ExitCode(err))
	}
}

func TestRootRejectsArgs(t *testing.T) {
	d, _, _ := testDeps(t, &answers{}, &runner.Recorder{})
	SetDeps(d)
	t.Cleanup(func() { SetDeps(nil) })

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})

	if err := cmd.Execute(); err == nil {
		t.Error("root command should reject positional arguments")
	}
}

func TestInitDependencies(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.yaml")
	content := "tools:\n  npm: pnpm\nclone:\n  backend: go-git\nui:\n  no_color: true\n"
	if err := os.WriteFile(cfg, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := InitDependencies(InitOptions{
		ConfigPath: cfg,
		BaseDir:    dir,
		Stdout:     &bytes.Buffer{},
		Stderr:     &bytes.Buffer{},
	})
	if err != nil {
		t.Fatalf("InitDependencies() error = %v", err)
	}

	if d.Config.Tools.Npm != "pnpm" || d.Config.Tools.Npx != "npx" {
		t.Errorf("tools = %+v", d.Config.Tools)
	}
	if !d.Theme.NoColor {
		t.Error("theme should honour ui.no_color")
	}
	if d.Wizard == nil || d.Router == nil || d.Catalog == nil || d.Logger == nil {
		t.Errorf("incomplete dependencies: %+v", d)
	}
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		verbose bool
		wantOut bool
	}{
		{"default discards", "warn", false, false},
		{"verbose", "warn", true, true},
		{"debug level", "debug", false, true},
		{"info level discards", "info", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewDefaultConfig()
			cfg.Log.Level = tt.level
			var buf bytes.Buffer

			newLogger(cfg, tt.verbose, &buf).Debug("probe")

			if got := buf.Len() > 0; got != tt.wantOut {
				t.Errorf("wrote output = %v, want %v", got, tt.wantOut)
			}
		})
	}
}
