package app

import (
	"github.com/trebuchet-org/osx-upgrade/internal/domain/config"
	"github.com/trebuchet-org/osx-upgrade/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Use cases
	GenerateUpgradeConfig *usecase.GenerateUpgradeConfig
	SummarizeProposal     *usecase.SummarizeProposal
	ParseProposalActions  *usecase.ParseProposalActions
	ListPlans             *usecase.ListPlans
	ShowConfig            *usecase.ShowConfig
	SetConfig             *usecase.SetConfig
	RemoveConfig          *usecase.RemoveConfig
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	generateUpgradeConfig *usecase.GenerateUpgradeConfig,
	summarizeProposal *usecase.SummarizeProposal,
	parseProposalActions *usecase.ParseProposalActions,
	listPlans *usecase.ListPlans,
	showConfig *usecase.ShowConfig,
	setConfig *usecase.SetConfig,
	removeConfig *usecase.RemoveConfig,
) (*App, error) {
	return &App{
		Config:                cfg,
		GenerateUpgradeConfig: generateUpgradeConfig,
		SummarizeProposal:     summarizeProposal,
		ParseProposalActions:  parseProposalActions,
		ListPlans:             listPlans,
		ShowConfig:            showConfig,
		SetConfig:             setConfig,
		RemoveConfig:          removeConfig,
	}, nil
}
