package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/osx-upgrade/internal/adapters/progress"
	"github.com/trebuchet-org/osx-upgrade/internal/app"
	"github.com/trebuchet-org/osx-upgrade/internal/config"
	"github.com/trebuchet-org/osx-upgrade/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
	// sinkKey is the context key for the progress sink
	sinkKey contextKey = "sink"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "osx-upgrade",
		Short: "Generate deployment configuration from an OSx upgrade proposal",
		Long: `osx-upgrade decodes the actions of an Aragon OSx framework upgrade proposal,
checks them against the expected upgrade plan and merges the contract
addresses they reference into the osx, tokenVoting, multisig and admin
configuration templates.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			workDir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to resolve working directory: %w", err)
			}

			config.LoadEnvFiles(workDir)
			v := config.SetupViper(workDir, cmd)

			sink := newProgressSink(v.GetBool("non_interactive") || v.GetBool("json"))

			appInstance, err := app.InitApp(v, sink)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)
			ctx = context.WithValue(ctx, sinkKey, sink)

			// Add timeout if configured
			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	rootCmd.PersistentFlags().String("variant", "", "Upgrade plan to use (default: inferred from the number of actions)")
	rootCmd.PersistentFlags().String("plan", "", "TOML or YAML file with additional upgrade plans")
	rootCmd.PersistentFlags().String("templates", "", "Directory holding the configuration templates (default: current directory)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	generateCmd := NewGenerateCmd()
	generateCmd.GroupID = "main"
	rootCmd.AddCommand(generateCmd)

	summarizeCmd := NewSummarizeCmd()
	summarizeCmd.GroupID = "main"
	rootCmd.AddCommand(summarizeCmd)

	actionsCmd := NewActionsCmd()
	actionsCmd.GroupID = "main"
	rootCmd.AddCommand(actionsCmd)

	variantsCmd := NewVariantsCmd()
	variantsCmd.GroupID = "management"
	rootCmd.AddCommand(variantsCmd)

	configCmd := NewConfigCmd()
	configCmd.GroupID = "management"
	rootCmd.AddCommand(configCmd)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// newProgressSink shows a spinner on stderr when it is a terminal
func newProgressSink(quiet bool) usecase.ProgressSink {
	if quiet || !isatty.IsTerminal(os.Stderr.Fd()) {
		return usecase.NopProgress{}
	}
	return progress.NewSpinnerSink(os.Stderr)
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}

// stopProgress stops the spinner of the command, if any
func stopProgress(cmd *cobra.Command) {
	if sink, ok := cmd.Context().Value(sinkKey).(*progress.SpinnerSink); ok {
		sink.Stop()
	}
}
