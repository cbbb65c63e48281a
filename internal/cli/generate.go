package cli

import (
	"github.com/spf13/cobra"

	cliadapter "github.com/example/modgen/internal/adapters/cli"
	"github.com/example/modgen/internal/wire"
)

func generateCmd(flags *globalFlags) *cobra.Command {
	var moduleType string
	var dryRun bool
	var showContents bool
	var journal bool

	cmd := &cobra.Command{
		Use:     "generate [name]",
		Aliases: []string{"make:module"},
		Short:   "Generate a module for an entity",
		Long: `Generate every artifact of a module and append its routes.

api modules get a JSON controller and an entry in routes/api.php.
web modules get a resource controller, index/create/edit views and an entry
in routes/web.php. Without --type the default_type from
config/module-generator.php is used, or api if none is set.

Route registration is append-only: generating the same module twice
registers its routes twice.

Examples:
  modgen generate Order
  modgen generate category --type web
  modgen make:module invoice --dry-run --show`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := wire.JournalOff
			if journal && !dryRun {
				mode = wire.JournalOn
			}
			c, err := flags.container(cmd, mode)
			if err != nil {
				return err
			}
			defer c.Close()

			_, err = c.ModuleAdapter().Generate(cmd.Context(), cliadapter.GenerateOptions{
				ProjectRoot:  c.Layout.Root,
				Name:         args[0],
				Type:         moduleType,
				DefaultType:  c.Config.DefaultType,
				DryRun:       dryRun,
				Journal:      journal,
				ShowContents: showContents,
			})
			return err
		},
	}

	cmd.Flags().StringVarP(&moduleType, "type", "t", "", "Module type: api or web (default: configured default_type)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the files that would be generated without writing them")
	cmd.Flags().BoolVar(&showContents, "show", false, "With --dry-run, print the rendered contents")
	cmd.Flags().BoolVar(&journal, "journal", false, "Record the generation in .modgen/journal.db")

	return cmd
}
