package scaffold

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/create-stack/create-stack/internal/catalog"
	"github.com/create-stack/create-stack/internal/core/boilerplate"
	"github.com/create-stack/create-stack/internal/core/frontend"
	"github.com/create-stack/create-stack/internal/core/gitclone"
	"github.com/create-stack/create-stack/internal/runner"
	"github.com/create-stack/create-stack/pkg/models"
)

type fakeExecutor struct {
	calls int
	err   error
}

func (f *fakeExecutor) Execute(_ context.Context, name, url string) (*boilerplate.Result, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &boilerplate.Result{ProjectName: name, URL: url}, nil
}

type fakeAssembler struct {
	calls    int
	selected []string
}

func (f *fakeAssembler) Assemble(_ context.Context, name string, selected []string) (*frontend.Result, error) {
	f.calls++
	f.selected = selected
	return &frontend.Result{ProjectRoot: name}, nil
}

func TestDispatch_Branches(t *testing.T) {
	tests := []struct {
		name          string
		session       models.Session
		wantExecutor  int
		wantAssembler int
		wantErr       error
	}{
		{
			name:         "boilerplate",
			session:      models.Session{ProjectName: "svc", Mode: models.ModeBoilerplate, BoilerplateURL: "https://example.com/x.git"},
			wantExecutor: 1,
		},
		{
			name:          "frontend",
			session:       models.Session{ProjectName: "web", Mode: models.ModeFrontend, Libraries: []string{"Zustand"}},
			wantAssembler: 1,
		},
		{
			name:    "unknown mode",
			session: models.Session{ProjectName: "x", Mode: "mobile"},
			wantErr: ErrUnknownMode,
		},
		{
			name:    "empty mode",
			session: models.Session{ProjectName: "x"},
			wantErr: ErrUnknownMode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := &fakeExecutor{}
			asm := &fakeAssembler{}
			r := NewRouter(exec, asm, nil)

			out, err := r.Dispatch(context.Background(), &tt.session)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Dispatch() error = %v, want %v", err, tt.wantErr)
				}
			} else if err != nil {
				t.Fatalf("Dispatch() error = %v", err)
			} else if out.Mode != tt.session.Mode {
				t.Errorf("Outcome.Mode = %q, want %q", out.Mode, tt.session.Mode)
			}

			if exec.calls != tt.wantExecutor {
				t.Errorf("executor calls = %d, want %d", exec.calls, tt.wantExecutor)
			}
			if asm.calls != tt.wantAssembler {
				t.Errorf("assembler calls = %d, want %d", asm.calls, tt.wantAssembler)
			}
		})
	}
}

func TestDispatch_PropagatesError(t *testing.T) {
	want := &runner.ExitError{Command: runner.Command{Name: "git"}, Code: 128}
	r := NewRouter(&fakeExecutor{err: want}, &fakeAssembler{}, nil)

	_, err := r.Dispatch(context.Background(), &models.Session{
		ProjectName:    "svc",
		Mode:           models.ModeBoilerplate,
		BoilerplateURL: "https://example.com/x.git",
	})
	var exitErr *runner.ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != 128 {
		t.Errorf("Dispatch() error = %v, want exit code 128", err)
	}
}

// End to end through the real executor and assembler with a recording runner.

func TestDispatch_BoilerplateClone(t *testing.T) {
	cat := catalog.Default()
	rec := &runner.Recorder{}
	base := t.TempDir()
	exec := boilerplate.NewExecutor(cat, gitclone.NewExecCloner(rec, "git", base))
	r := NewRouter(exec, frontend.NewAssembler(cat, rec, frontend.Tools{Npx: "npx", Npm: "npm"}, base), nil)

	out, err := r.Dispatch(context.Background(), &models.Session{
		ProjectName:    "my-app",
		Mode:           models.ModeBoilerplate,
		BoilerplateURL: "https://github.com/djizco/mern-boilerplate.git",
	})
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}

	want := []string{"git clone https://github.com/djizco/mern-boilerplate.git my-app"}
	if got := rec.Lines(); !slices.Equal(got, want) {
		t.Errorf("commands = %v, want %v", got, want)
	}
	if out.Boilerplate == nil || out.Boilerplate.Name != "MERN Boilerplate (djizco/mern-boilerplate)" {
		t.Errorf("Outcome.Boilerplate = %+v", out.Boilerplate)
	}
}

func TestDispatch_FrontendAssemble(t *testing.T) {
	cat := catalog.Default()
	rec := &runner.Recorder{
		Handler: func(_ context.Context, cmd runner.Command) error {
			if len(cmd.Args) > 1 && cmd.Args[0] == "create-react-app" {
				return os.MkdirAll(filepath.Join(cmd.Dir, cmd.Args[1], "src"), 0o755)
			}
			return nil
		},
	}
	base := t.TempDir()
	exec := boilerplate.NewExecutor(cat, gitclone.NewExecCloner(rec, "git", base))
	r := NewRouter(exec, frontend.NewAssembler(cat, rec, frontend.Tools{Npx: "npx", Npm: "npm"}, base), nil)

	out, err := r.Dispatch(context.Background(), &models.Session{
		ProjectName: "demo",
		Mode:        models.ModeFrontend,
		Libraries:   []string{"TypeScript", "Redux Toolkit"},
	})
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}

	want := []string{
		"npx create-react-app demo --template typescript",
		"npm install @reduxjs/toolkit react-redux",
	}
	if got := rec.Lines(); !slices.Equal(got, want) {
		t.Errorf("commands = %v, want %v", got, want)
	}
	if out.Frontend == nil || !out.Frontend.TypeScript {
		t.Errorf("Outcome.Frontend = %+v", out.Frontend)
	}
}
