package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/create-stack/create-stack/pkg/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// Skips dependency wiring so a broken config never hides the version.
		PersistentPreRun: func(*cobra.Command, []string) {},
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "create-stack %s\n", version.GetFullVersion())
			return err
		},
	}
}
