package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/osx-upgrade/internal/cli/render"
)

// NewVariantsCmd creates the variants command
func NewVariantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "variants",
		Aliases: []string{"plans"},
		Short:   "List the known upgrade plans",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListPlans.Run(cmd.Context())
			if err != nil {
				return err
			}

			return render.NewVariantsRenderer(cmd.OutOrStdout(), app.Config.JSON).Render(result)
		},
	}
}
