package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/osx-upgrade/internal/cli/render"
	"github.com/trebuchet-org/osx-upgrade/internal/usecase"
)

// NewSummarizeCmd creates the summarize command
func NewSummarizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summarize <decoded-actions.json>",
		Short: "Show the decoded actions of an upgrade proposal",
		Long: `Decode every action of an upgrade proposal by its signature and print
a summary, including the arguments of the upgradeToAndCall payload.

Unlike generate, the actions are not validated against the upgrade plan.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.SummarizeProposal.Run(cmd.Context(), usecase.SummarizeProposalParams{
				InputPath: args[0],
			})
			if err != nil {
				return err
			}

			return render.NewSummaryRenderer(cmd.OutOrStdout(), app.Config.JSON).Render(result)
		},
	}
}
