package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/osx-upgrade/internal/config"
)

// NewVersionCmd prints the build metadata. It runs without loading config.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the osx-upgrade build version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), config.VersionString())
			return err
		},
	}
}
