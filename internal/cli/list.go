package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/create-stack/create-stack/internal/catalog"
	"github.com/create-stack/create-stack/internal/ui"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the frontend libraries and boilerplates on offer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if deps == nil {
				return errors.New("dependencies not initialized")
			}
			return renderCatalog(cmd.OutOrStdout(), deps.Catalog, deps.Theme)
		},
	}
}

// renderCatalog prints both catalogs as tables, in catalog order.
func renderCatalog(w io.Writer, cat *catalog.Catalog, theme *ui.Theme) error {
	if theme == nil {
		theme = ui.NewTheme(ui.ThemeConfig{NoColor: true})
	}

	libRows := make([][]string, 0, len(cat.Libraries()))
	for _, lib := range cat.Libraries() {
		libRows = append(libRows, []string{lib.Name, libraryActions(lib)})
	}
	libs := newTable(theme).Headers("LIBRARY", "INSTALLS").Rows(libRows...)

	bpRows := make([][]string, 0, len(cat.Boilerplates()))
	for _, bp := range cat.Boilerplates() {
		bpRows = append(bpRows, []string{bp.Name, bp.URL})
	}
	bps := newTable(theme).Headers("BOILERPLATE", "REPOSITORY").Rows(bpRows...)

	_, err := fmt.Fprintf(w, "%s\n%s\n\n%s\n%s\n",
		theme.Title.Render("Frontend libraries"), libs.Render(),
		theme.Title.Render("Boilerplates"), bps.Render(),
	)
	return err
}

// libraryActions describes what selecting lib does.
func libraryActions(lib catalog.Library) string {
	var parts []string
	switch lib.Setup {
	case catalog.SetupTypeScriptTemplate:
		parts = append(parts, "--template typescript")
	case catalog.SetupTailwind:
		for _, p := range lib.SetupPackages {
			parts = append(parts, p.String()+" (dev)")
		}
	}
	for _, p := range lib.Dependencies {
		parts = append(parts, p.String())
	}
	for _, p := range lib.DevDependencies {
		parts = append(parts, p.String()+" (dev)")
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}

func newTable(theme *ui.Theme) *table.Table {
	t := table.New().Border(lipgloss.NormalBorder())
	if theme.NoColor {
		return t
	}
	header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Colors.Primary)).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	return t.
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.Muted))).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
}
