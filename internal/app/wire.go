//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/osx-upgrade/internal/adapters"
	"github.com/trebuchet-org/osx-upgrade/internal/config"
	"github.com/trebuchet-org/osx-upgrade/internal/logging"
	"github.com/trebuchet-org/osx-upgrade/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewPlanResolver,
		usecase.NewGenerateUpgradeConfig,
		usecase.NewSummarizeProposal,
		usecase.NewParseProposalActions,
		usecase.NewListPlans,
		usecase.NewShowConfig,
		usecase.NewSetConfig,
		usecase.NewRemoveConfig,

		// App
		NewApp,
	)
	return nil, nil
}
