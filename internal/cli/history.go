package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/modgen/internal/wire"
)

func historyCmd(flags *globalFlags) *cobra.Command {
	var name string
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List generations recorded with --journal",
		Long: `List the generations recorded in .modgen/journal.db, newest first.

Examples:
  modgen history
  modgen history --name Order`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.container(cmd, wire.JournalIfExists)
			if err != nil {
				return err
			}
			defer c.Close()

			_, err = c.HistoryAdapter().List(cmd.Context(), name, limit)
			return err
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Only show generations of this module (studly name)")
	cmd.Flags().IntVarP(&limit, "limit", "l", 50, "Maximum number of entries")

	return cmd
}
