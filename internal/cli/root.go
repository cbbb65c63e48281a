// Package cli defines the modgen cobra commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/modgen/internal/version"
	"github.com/example/modgen/internal/wire"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	root    string
	verbose bool
}

// RootCmd returns the modgen root command with every subcommand attached.
func RootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:     "modgen",
		Short:   "Generate Laravel-style modules from stubs",
		Version: version.String(),
		Long: `modgen scaffolds a controller, repository, requests, migration, model
and (for web modules) Blade views for an entity, then registers its routes.

Examples:
  modgen install --type web
  modgen generate Order
  modgen make:module invoice --type api --dry-run`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.root, "root", ".", "Project root directory")
	cmd.PersistentFlags().BoolVar(&flags.verbose, "verbose", false, "Print diagnostic logs to stderr")

	cmd.AddCommand(installCmd(flags))
	cmd.AddCommand(generateCmd(flags))
	cmd.AddCommand(historyCmd(flags))

	return cmd
}

// container builds the services for the current invocation.
func (f *globalFlags) container(cmd *cobra.Command, journal wire.JournalMode) (*wire.Container, error) {
	return wire.New(cmd.Context(), wire.Options{
		ProjectRoot: f.root,
		Journal:     journal,
		Verbose:     f.verbose,
		Out:         cmd.OutOrStdout(),
		Err:         cmd.ErrOrStderr(),
	})
}
