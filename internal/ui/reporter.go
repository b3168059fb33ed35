package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Reporter receives the user-facing progress messages of a scaffold run.
type Reporter interface {
	// Banner prints the tool header.
	Banner(title string)
	// StepStart announces a step that is about to run.
	StepStart(msg string)
	// Item prints one entry of a list announced by the previous step.
	Item(msg string)
	// Success reports a completed step.
	Success(msg string)
	// Warn reports a non-fatal problem.
	Warn(msg string)
	// NextSteps prints the commands the user should run next.
	NextSteps(commands []string)
}

// ConsoleReporter writes styled messages to a writer.
type ConsoleReporter struct {
	w     io.Writer
	theme *Theme
}

// Compile-time interface compliance check.
var _ Reporter = (*ConsoleReporter)(nil)

// NewConsoleReporter creates a ConsoleReporter writing to w.
func NewConsoleReporter(w io.Writer, theme *Theme) *ConsoleReporter {
	if theme == nil {
		theme = NewTheme(ThemeConfig{NoColor: true})
	}
	return &ConsoleReporter{w: w, theme: theme}
}

// Banner prints the tool header.
func (r *ConsoleReporter) Banner(title string) {
	_, _ = fmt.Fprintln(r.w, r.theme.Title.Render(title))
}

// StepStart announces a step.
func (r *ConsoleReporter) StepStart(msg string) {
	r.println(r.theme.Info, msg)
}

// Item prints a list entry as "- msg".
func (r *ConsoleReporter) Item(msg string) {
	_, _ = fmt.Fprintln(r.w, r.theme.Item.Render("- "+msg))
}

// Success reports a completed step.
func (r *ConsoleReporter) Success(msg string) {
	r.println(r.theme.Success, msg)
}

// Warn reports a non-fatal problem.
func (r *ConsoleReporter) Warn(msg string) {
	r.println(r.theme.Warn, msg)
}

// NextSteps renders the follow-up commands as markdown. Plain text is
// printed if the markdown renderer fails.
func (r *ConsoleReporter) NextSteps(commands []string) {
	out, err := renderNextSteps(commands, r.theme.NoColor)
	if err != nil {
		out = plainNextSteps(commands)
	}
	_, _ = fmt.Fprint(r.w, out)
}

// println keeps leading newlines outside the styled block so they are
// not padded or coloured.
func (r *ConsoleReporter) println(style lipgloss.Style, msg string) {
	trimmed := strings.TrimLeft(msg, "\n")
	lead := msg[:len(msg)-len(trimmed)]
	_, _ = fmt.Fprintln(r.w, lead+style.Render(trimmed))
}

func renderNextSteps(commands []string, noColor bool) (string, error) {
	style := glamour.WithAutoStyle()
	if noColor {
		style = glamour.WithStandardStyle("notty")
	}
	tr, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(80))
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	return tr.Render(nextStepsMarkdown(commands))
}

func nextStepsMarkdown(commands []string) string {
	var b strings.Builder
	b.WriteString("👉 **Next steps:**\n\n```sh\n")
	for _, c := range commands {
		b.WriteString(c)
		b.WriteString("\n")
	}
	b.WriteString("```\n")
	return b.String()
}

func plainNextSteps(commands []string) string {
	var b strings.Builder
	b.WriteString("\n👉 Next steps:\n")
	for _, c := range commands {
		b.WriteString("  ")
		b.WriteString(c)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

// NoOpReporter discards every message.
type NoOpReporter struct{}

// Compile-time interface compliance check.
var _ Reporter = NoOpReporter{}

func (NoOpReporter) Banner(string)      {}
func (NoOpReporter) StepStart(string)   {}
func (NoOpReporter) Item(string)        {}
func (NoOpReporter) Success(string)     {}
func (NoOpReporter) Warn(string)        {}
func (NoOpReporter) NextSteps([]string) {}
