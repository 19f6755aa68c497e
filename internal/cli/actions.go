package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/osx-upgrade/internal/cli/render"
	"github.com/trebuchet-org/osx-upgrade/internal/usecase"
)

// NewActionsCmd creates the actions command
func NewActionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "actions <proposal.json>",
		Short: "Extract the raw actions of an on-chain proposal",
		Long: `Read a proposal as returned by getProposal (a JSON array of 5 fields whose
fourth field is the "[(to, value, data), ...]" action list) and print its
actions as JSON. Actions calling a supported function are tagged with its
signature.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ParseProposalActions.Run(cmd.Context(), usecase.ParseProposalActionsParams{
				InputPath: args[0],
			})
			if err != nil {
				return err
			}

			return render.NewActionsRenderer(cmd.OutOrStdout()).Render(result)
		},
	}
}
