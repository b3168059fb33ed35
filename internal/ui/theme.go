// Package ui renders create-stack's terminal output: the colour theme
// shared with the wizard, TTY detection, and the step reporter used by
// the scaffolding components.
package ui

import "github.com/charmbracelet/lipgloss"

// Brand colours (dark background variants).
const (
	ColorPrimary   = "#22C55E"
	ColorSecondary = "#3B82F6"
	ColorSuccess   = "#10B981"
	ColorWarning   = "#EAB308"
	ColorError     = "#EF4444"
	ColorText      = "#F9FAFB"
	ColorMuted     = "#6B7280"
	ColorBorder    = "#4B5563"
)

// ThemeConfig selects how output is coloured.
type ThemeConfig struct {
	NoColor bool
}

// Colors is the palette of a Theme.
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Muted     string
}

// Theme carries the palette and the derived lipgloss styles.
type Theme struct {
	NoColor bool
	Colors  Colors

	Title   lipgloss.Style
	Info    lipgloss.Style
	Success lipgloss.Style
	Warn    lipgloss.Style
	Item    lipgloss.Style
	Error   lipgloss.Style
}

// NewTheme builds a Theme. With NoColor every style renders plain text.
func NewTheme(cfg ThemeConfig) *Theme {
	t := &Theme{
		NoColor: cfg.NoColor,
		Colors: Colors{
			Primary:   ColorPrimary,
			Secondary: ColorSecondary,
			Success:   ColorSuccess,
			Warning:   ColorWarning,
			Error:     ColorError,
			Muted:     ColorMuted,
		},
	}

	if cfg.NoColor {
		plain := lipgloss.NewStyle()
		t.Title, t.Info, t.Success, t.Warn, t.Item, t.Error = plain, plain, plain, plain, plain, plain
		return t
	}

	t.Title = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Primary)).Bold(true)
	t.Info = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Secondary))
	t.Success = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Success))
	t.Warn = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Warning))
	t.Item = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Warning))
	t.Error = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Error)).Bold(true)
	return t
}
