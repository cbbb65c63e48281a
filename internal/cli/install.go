package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/modgen/internal/ui"
	"github.com/example/modgen/internal/wire"
)

func installCmd(flags *globalFlags) *cobra.Command {
	var moduleType string

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Publish the settings file and choose the default module type",
		Long: `Publish config/module-generator.php, or update default_type in an
existing copy. Everything else in an existing file is left untouched.

Without --type you are asked to choose; when stdin is not a terminal
api is used.

Examples:
  modgen install
  modgen install --type web`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if moduleType == "" {
				chosen, err := ui.NewTypePrompt().Choose()
				if err != nil {
					return err
				}
				moduleType = chosen
			}

			c, err := flags.container(cmd, wire.JournalOff)
			if err != nil {
				return err
			}
			defer c.Close()

			_, err = c.InstallAdapter().Install(cmd.Context(), c.Layout.Root, moduleType)
			return err
		},
	}

	cmd.Flags().StringVarP(&moduleType, "type", "t", "", "Default module type: api or web")

	return cmd
}
