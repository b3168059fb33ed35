package wizard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/unicode/norm"

	"github.com/create-stack/create-stack/internal/ui"
	"github.com/create-stack/create-stack/pkg/models"
)

// Prompter asks a single question and blocks until it is answered.
type Prompter interface {
	Input(ctx context.Context, q *Question) (string, error)
	Select(ctx context.Context, q *Question) (string, error)
	MultiSelect(ctx context.Context, q *Question) ([]string, error)
}

// Wizard runs a question list against a Prompter.
type Wizard struct {
	prompter    Prompter
	interactive func() bool
	logger      *slog.Logger
}

// Opt configures a Wizard.
type Opt func(*Wizard)

// WithPrompter replaces the huh-based prompter.
func WithPrompter(p Prompter) Opt {
	return func(w *Wizard) {
		w.prompter = p
	}
}

// WithInteractive replaces terminal detection on stdin.
func WithInteractive(fn func() bool) Opt {
	return func(w *Wizard) {
		w.interactive = fn
	}
}

// WithLogger sets the logger for the wizard.
func WithLogger(l *slog.Logger) Opt {
	return func(w *Wizard) {
		w.logger = l
	}
}

// New creates a Wizard that prompts with huh on the current terminal.
func New(opts ...Opt) *Wizard {
	w := &Wizard{
		prompter:    NewHuhPrompter(nil),
		interactive: ui.NewTerminal().IsInteractive,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.logger = w.logger.With("module", "wizard")
	return w
}

// Run asks each question whose condition holds for the answers so far and
// returns the collected session. Conditions are evaluated just before the
// question is asked, so later questions can depend on earlier answers.
func (w *Wizard) Run(ctx context.Context, questions []Question) (*models.Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	if !w.interactive() {
		return nil, ErrNotInteractive
	}

	session := &models.Session{}
	for i := range questions {
		q := &questions[i]

		if q.Condition != nil && !q.Condition(session) {
			w.logger.Debug("question skipped", "id", q.ID)
			continue
		}

		if err := w.ask(ctx, q, session); err != nil {
			if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, ErrCancelled) {
				return nil, ErrCancelled
			}
			return nil, fmt.Errorf("wizard error: %w", err)
		}
	}

	w.logger.Debug("wizard completed",
		"project", session.ProjectName,
		"mode", session.Mode,
		"libraries", len(session.Libraries),
	)
	return session, nil
}

func (w *Wizard) ask(ctx context.Context, q *Question, s *models.Session) error {
	switch q.Type {
	case QuestionTypeInput:
		v, err := w.prompter.Input(ctx, q)
		if err != nil {
			return err
		}
		v = strings.TrimSpace(v)
		if v == "" {
			v = q.Default
		}
		return saveAnswer(q.ID, v, s)

	case QuestionTypeSelect:
		v, err := w.prompter.Select(ctx, q)
		if err != nil {
			return err
		}
		return saveAnswer(q.ID, v, s)

	case QuestionTypeMultiSelect:
		vals, err := w.prompter.MultiSelect(ctx, q)
		if err != nil {
			return err
		}
		if q.ID != IDLibraries {
			return fmt.Errorf("%w: %s", ErrUnknownQuestion, q.ID)
		}
		s.Libraries = append([]string(nil), vals...)
		return nil
	}
	return fmt.Errorf("question %s: unsupported type %s", q.ID, q.Type)
}

// saveAnswer stores a single-value answer in the session.
func saveAnswer(id, value string, s *models.Session) error {
	switch id {
	case IDProjectName:
		s.ProjectName = norm.NFC.String(value)
	case IDMode:
		s.Mode = models.ScaffoldMode(value)
	case IDBoilerplate:
		s.BoilerplateURL = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownQuestion, id)
	}
	return nil
}

// HuhPrompter renders each question as its own huh.Form.
// One form per question keeps huh's viewport sized to a single field.
type HuhPrompter struct {
	theme *huh.Theme
}

// Compile-time interface compliance check.
var _ Prompter = (*HuhPrompter)(nil)

// NewHuhPrompter creates a HuhPrompter themed after t. A nil t or a
// colourless theme falls back to huh's base theme.
func NewHuhPrompter(t *ui.Theme) *HuhPrompter {
	return &HuhPrompter{theme: newWizardTheme(t)}
}

// Input asks a free-text question. The default is shown as a placeholder;
// an empty answer is returned as-is and resolved by the caller.
func (p *HuhPrompter) Input(ctx context.Context, q *Question) (string, error) {
	var value string
	if err := p.run(ctx, buildInputField(q, &value)); err != nil {
		return "", err
	}
	return value, nil
}

// Select asks a single-choice question and returns the chosen value.
func (p *HuhPrompter) Select(ctx context.Context, q *Question) (string, error) {
	var value string
	if err := p.run(ctx, buildSelectField(q, &value)); err != nil {
		return "", err
	}
	return value, nil
}

// MultiSelect asks a checkbox question and returns the chosen values in
// option order.
func (p *HuhPrompter) MultiSelect(ctx context.Context, q *Question) ([]string, error) {
	var values []string
	if err := p.run(ctx, buildMultiSelectField(q, &values)); err != nil {
		return nil, err
	}
	return values, nil
}

func (p *HuhPrompter) run(ctx context.Context, field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(p.theme).
		WithAccessible(false)
	return form.RunWithContext(ctx)
}

// buildInputField creates a huh.Input writing into value.
func buildInputField(q *Question, value *string) *huh.Input {
	inp := huh.NewInput().
		Title(q.Title).
		Value(value)
	if q.Description != "" {
		inp = inp.Description(q.Description)
	}
	if q.Default != "" {
		inp = inp.Placeholder(q.Default)
	}
	return inp
}

// buildSelectField creates a huh.Select writing into value. The cursor
// starts on the default when one is set, else on the first option.
func buildSelectField(q *Question, value *string) *huh.Select[string] {
	*value = q.Default

	opts := make([]huh.Option[string], len(q.Options))
	for i, opt := range q.Options {
		opts[i] = huh.NewOption(opt.Label, opt.Value)
	}

	sel := huh.NewSelect[string]().
		Title(q.Title).
		Options(opts...).
		Value(value)
	if q.Description != "" {
		sel = sel.Description(q.Description)
	}
	return sel
}

// buildMultiSelectField creates a huh.MultiSelect writing into values.
func buildMultiSelectField(q *Question, values *[]string) *huh.MultiSelect[string] {
	opts := make([]huh.Option[string], len(q.Options))
	for i, opt := range q.Options {
		opts[i] = huh.NewOption(opt.Label, opt.Value)
	}

	ms := huh.NewMultiSelect[string]().
		Title(q.Title).
		Options(opts...).
		Value(values)
	if q.Description != "" {
		ms = ms.Description(q.Description)
	}
	return ms
}

// newWizardTheme maps the ui palette onto a huh.Theme.
func newWizardTheme(theme *ui.Theme) *huh.Theme {
	t := huh.ThemeBase()
	if theme == nil || theme.NoColor {
		return t
	}

	primary := lipgloss.AdaptiveColor{Light: "#15803D", Dark: theme.Colors.Primary}
	secondary := lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: theme.Colors.Secondary}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: theme.Colors.Success}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: theme.Colors.Error}
	text := lipgloss.AdaptiveColor{Light: "#111827", Dark: ui.ColorText}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: theme.Colors.Muted}
	border := lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: ui.ColorBorder}

	t.Focused.Base = t.Focused.Base.BorderForeground(border)
	t.Focused.Card = t.Focused.Base
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("❯ ")
	t.Focused.Option = t.Focused.Option.Foreground(text)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(primary).SetString("❯ ")
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(green).SetString("◉ ")
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(text)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(muted).SetString("◯ ")
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(secondary)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Card = t.Blurred.Base

	t.Group.Title = t.Focused.Title
	t.Group.Description = t.Focused.Description

	return t
}
