// Package boilerplate materializes a full-project template by cloning its
// repository into a directory named after the project.
package boilerplate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/create-stack/create-stack/internal/catalog"
	"github.com/create-stack/create-stack/internal/core/gitclone"
	"github.com/create-stack/create-stack/internal/ui"
)

// ErrUnknownBoilerplate indicates the URL is not in the boilerplate catalog.
var ErrUnknownBoilerplate = errors.New("boilerplate: repository not in catalog")

// Result describes a completed clone.
type Result struct {
	ProjectName string
	URL         string
	Name        string // Catalog display name.
}

// Executor clones catalog boilerplates.
type Executor struct {
	catalog  *catalog.Catalog
	cloner   gitclone.Cloner
	reporter ui.Reporter
	logger   *slog.Logger
}

// Option configures an Executor.
type Option func(*Executor)

// WithReporter sets the reporter for user-facing messages.
func WithReporter(r ui.Reporter) Option {
	return func(e *Executor) {
		e.reporter = r
	}
}

// WithLogger sets the logger for the executor.
func WithLogger(l *slog.Logger) Option {
	return func(e *Executor) {
		e.logger = l
	}
}

// NewExecutor creates an Executor.
func NewExecutor(cat *catalog.Catalog, cloner gitclone.Cloner, opts ...Option) *Executor {
	e := &Executor{
		catalog:  cat,
		cloner:   cloner,
		reporter: ui.NoOpReporter{},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With("module", "boilerplate")
	return e
}

// Execute clones url into a new directory projectName. Clone failures are
// returned as-is; a partial clone is left on disk.
func (e *Executor) Execute(ctx context.Context, projectName, url string) (*Result, error) {
	bp, ok := e.catalog.BoilerplateByURL(url)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBoilerplate, url)
	}

	e.logger.Info("cloning boilerplate", "name", bp.Name, "url", url, "dest", projectName)
	e.reporter.StepStart(fmt.Sprintf("\n📥 Cloning boilerplate from %s", url))

	if err := e.cloner.Clone(ctx, url, projectName); err != nil {
		return nil, err
	}

	e.reporter.Success(fmt.Sprintf("✅ Boilerplate setup done in folder %q", projectName))

	return &Result{ProjectName: projectName, URL: url, Name: bp.Name}, nil
}
