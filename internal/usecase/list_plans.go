package usecase

import (
	"context"

	"github.com/samber/lo"
	"github.com/trebuchet-org/osx-upgrade/internal/domain/config"
)

// ListPlansResult contains the known upgrade plans sorted by name
type ListPlansResult struct {
	Plans    []config.UpgradePlan
	Selected string
}

// ListPlans lists the upgrade plans known to the current configuration
type ListPlans struct {
	config *config.RuntimeConfig
}

// NewListPlans creates a new ListPlans use case
func NewListPlans(cfg *config.RuntimeConfig) *ListPlans {
	return &ListPlans{config: cfg}
}

// Run executes the use case
func (uc *ListPlans) Run(ctx context.Context) (*ListPlansResult, error) {
	plans := lo.Map(uc.config.Plans.Names(), func(name string, _ int) config.UpgradePlan {
		return uc.config.Plans[name]
	})
	return &ListPlansResult{
		Plans:    plans,
		Selected: uc.config.Variant,
	}, nil
}
