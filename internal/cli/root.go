package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/create-stack/create-stack/internal/cli/wizard"
	"github.com/create-stack/create-stack/internal/runner"
	"github.com/create-stack/create-stack/pkg/version"
)

// ExitCancelled is the process status after the user aborts a prompt,
// matching a shell's status for SIGINT.
const ExitCancelled = 130

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	var (
		configPath string
		verbose    bool
	)

	rootCmd := &cobra.Command{
		Use:   "create-stack",
		Short: "Scaffold a React frontend stack or clone a full-project boilerplate",
		Long: `create-stack asks for a project name and a project kind, then either
generates a React project with the frontend libraries you pick or clones
a full-project boilerplate from GitHub into a folder of that name.

The project is created inside the current directory.`,
		Version:       version.GetVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if deps != nil {
				return nil
			}
			d, err := InitDependencies(InitOptions{
				ConfigPath: configPath,
				Verbose:    verbose,
				Stdout:     cmd.OutOrStdout(),
				Stderr:     cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			deps = d
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScaffold(cmd.Context(), deps)
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("create-stack %s\n", version.GetVersion()))
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: $CREATE_STACK_CONFIG or <user config dir>/create-stack/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Write debug logs to stderr")

	rootCmd.AddCommand(newListCmd(), newVersionCmd())
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx. The context is handed to
// every external command and is not cancelled by create-stack itself.
func ExecuteContext(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// runScaffold asks the questions and materializes the answer.
func runScaffold(ctx context.Context, d *Dependencies) error {
	if d == nil {
		return errors.New("dependencies not initialized")
	}

	d.Reporter.Banner("🚀 Create-Stack CLI")

	session, err := d.Wizard.Run(ctx, wizard.DefaultQuestions(d.Catalog))
	if err != nil {
		return err
	}

	_, err = d.Router.Dispatch(ctx, session)
	return err
}

// ExitCode maps an error returned by Execute to a process exit status:
// 0 for nil, 130 after a user abort, the child's code when an external
// command failed, and 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, wizard.ErrCancelled) {
		return ExitCancelled
	}
	if code, ok := runner.ExitStatus(err); ok {
		return code
	}
	return 1
}
