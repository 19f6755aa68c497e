package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/osx-upgrade/internal/cli/render"
	"github.com/trebuchet-org/osx-upgrade/internal/usecase"
)

// NewGenerateCmd creates the generate command
func NewGenerateCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "generate <decoded-actions.json> [network]",
		Short: "Generate the deployment configuration of an upgrade proposal",
		Long: `Decode the actions of an upgrade proposal, validate them against the
upgrade plan and merge the referenced contract addresses into the
configuration templates.

The input is the JSON array produced by the calldata decoder, one
{"decoded": "..."} entry per action. Every <NETWORK> placeholder in the
templates is replaced with the network. When the network is omitted the
configured default is used.

Examples:
  # Print the configuration for sepolia
  osx-upgrade generate actions.json sepolia

  # Use the ZkSync plan and write the result to a file
  osx-upgrade generate actions.json zksync --variant zksync --output config/zksync.json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			defer stopProgress(cmd)

			params := usecase.GenerateUpgradeConfigParams{
				InputPath:  args[0],
				Network:    app.Config.Network,
				OutputPath: output,
			}
			if len(args) == 2 {
				params.Network = args[1]
			}

			result, err := app.GenerateUpgradeConfig.Run(cmd.Context(), params)
			if err != nil {
				return err
			}
			stopProgress(cmd)

			return render.NewUpgradeConfigRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the configuration to a file instead of stdout")

	return cmd
}
