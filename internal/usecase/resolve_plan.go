package usecase

import (
	"context"
	"fmt"

	"github.com/trebuchet-org/osx-upgrade/internal/domain"
	"github.com/trebuchet-org/osx-upgrade/internal/domain/config"
)

// PlanResolver picks the upgrade plan for a run
type PlanResolver struct {
	config   *config.RuntimeConfig
	selector PlanSelector
}

// NewPlanResolver creates a new PlanResolver
func NewPlanResolver(cfg *config.RuntimeConfig, selector PlanSelector) *PlanResolver {
	return &PlanResolver{
		config:   cfg,
		selector: selector,
	}
}

// Resolve returns the configured plan, or the only plan expecting
// actionCount actions when no variant is configured. When several plans
// match, the user is asked unless running non-interactively.
func (r *PlanResolver) Resolve(ctx context.Context, actionCount int) (config.UpgradePlan, error) {
	if r.config.Variant != "" {
		return r.config.Plans.Get(r.config.Variant)
	}

	matches := r.config.Plans.ByActionCount(actionCount)
	switch {
	case len(matches) == 1:
		return matches[0], nil
	case len(matches) == 0:
		return config.UpgradePlan{}, &domain.SchemaError{
			Actual:  actionCount,
			Message: fmt.Sprintf("invalid upgrade proposal actions: no upgrade plan expects %d actions", actionCount),
		}
	case r.config.NonInteractive:
		return config.UpgradePlan{}, &domain.SchemaError{
			Actual:  actionCount,
			Message: fmt.Sprintf("%d upgrade plans expect %d actions, use --variant to choose one", len(matches), actionCount),
		}
	}

	return r.selector.SelectPlan(ctx, matches, fmt.Sprintf("Select the upgrade plan for %d actions", actionCount))
}
