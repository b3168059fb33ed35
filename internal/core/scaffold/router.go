// Package scaffold dispatches a completed wizard session to the component
// that materializes the chosen project kind.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/create-stack/create-stack/internal/core/boilerplate"
	"github.com/create-stack/create-stack/internal/core/frontend"
	"github.com/create-stack/create-stack/pkg/models"
)

// ErrUnknownMode indicates a session whose mode has no handler.
var ErrUnknownMode = errors.New("scaffold: unknown mode")

// BoilerplateExecutor clones a full-project template.
type BoilerplateExecutor interface {
	Execute(ctx context.Context, projectName, url string) (*boilerplate.Result, error)
}

// FrontendAssembler generates a frontend project with libraries.
type FrontendAssembler interface {
	Assemble(ctx context.Context, projectName string, selected []string) (*frontend.Result, error)
}

// Outcome records which branch ran and its result. Exactly one of
// Boilerplate and Frontend is set.
type Outcome struct {
	Mode        models.ScaffoldMode
	Boilerplate *boilerplate.Result
	Frontend    *frontend.Result
}

// Router selects the scaffolding branch for a session.
type Router struct {
	boilerplate BoilerplateExecutor
	frontend    FrontendAssembler
	logger      *slog.Logger
}

// NewRouter creates a Router. A nil logger discards output.
func NewRouter(bp BoilerplateExecutor, fe FrontendAssembler, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Router{
		boilerplate: bp,
		frontend:    fe,
		logger:      logger.With("module", "scaffold"),
	}
}

// Dispatch runs the branch matching s.Mode.
func (r *Router) Dispatch(ctx context.Context, s *models.Session) (*Outcome, error) {
	r.logger.Debug("dispatching session", "mode", s.Mode, "project", s.ProjectName)

	switch s.Mode {
	case models.ModeBoilerplate:
		res, err := r.boilerplate.Execute(ctx, s.ProjectName, s.BoilerplateURL)
		if err != nil {
			return nil, err
		}
		return &Outcome{Mode: s.Mode, Boilerplate: res}, nil

	case models.ModeFrontend:
		res, err := r.frontend.Assemble(ctx, s.ProjectName, s.Libraries)
		if err != nil {
			return nil, err
		}
		return &Outcome{Mode: s.Mode, Frontend: res}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, s.Mode)
	}
}
