package interactive

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
	"github.com/trebuchet-org/osx-upgrade/internal/domain/config"
	"github.com/trebuchet-org/osx-upgrade/internal/usecase"
)

// SelectorAdapter handles interactive selection
type SelectorAdapter struct {
	config *config.RuntimeConfig
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{config: cfg}
}

// SelectPlan selects an upgrade plan from a list
func (s *SelectorAdapter) SelectPlan(ctx context.Context, plans []config.UpgradePlan, prompt string) (config.UpgradePlan, error) {
	if s.config.NonInteractive {
		return config.UpgradePlan{}, fmt.Errorf("interactive selection not available in non-interactive mode")
	}

	if len(plans) == 0 {
		return config.UpgradePlan{}, fmt.Errorf("no upgrade plans provided for selection")
	}

	if len(plans) == 1 {
		return plans[0], nil
	}

	options := formatPlanOptions(plans)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, Enter to select"),
	}

	promptSelect := promptui.Select{
		Label:     prompt,
		Items:     options,
		Templates: templates,
		Size:      10,
		Searcher:  createFuzzySearchFunc(options),
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return config.UpgradePlan{}, fmt.Errorf("selection cancelled: %w", err)
	}

	return plans[index], nil
}

// formatPlanOptions labels each plan with the number of actions it decodes
func formatPlanOptions(plans []config.UpgradePlan) []string {
	options := make([]string, len(plans))
	for i, plan := range plans {
		options[i] = fmt.Sprintf("%s (%d actions)", plan.Name, plan.ActionCount())
		if plan.Description != "" {
			options[i] += " - " + plan.Description
		}
	}
	return options
}

// createFuzzySearchFunc creates a fuzzy search function for promptui
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if input == "" {
			return true
		}

		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		if strings.Contains(item, input) {
			return true
		}

		pattern := fuzzy.Find(input, []string{item})
		return len(pattern) > 0
	}
}

// Ensure the adapter implements the interface
var _ usecase.PlanSelector = (*SelectorAdapter)(nil)
