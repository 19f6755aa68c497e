package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/trebuchet-org/osx-upgrade/internal/domain"
	"github.com/trebuchet-org/osx-upgrade/internal/domain/config"
	"github.com/trebuchet-org/osx-upgrade/internal/usecase"
)

// VariantsRenderer renders the known upgrade plans
type VariantsRenderer struct {
	out  io.Writer
	json bool
}

// NewVariantsRenderer creates a new variants renderer
func NewVariantsRenderer(out io.Writer, jsonOutput bool) *VariantsRenderer {
	return &VariantsRenderer{
		out:  out,
		json: jsonOutput,
	}
}

type variantJSON struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Actions     []string `json:"actions"`
	Selected    bool     `json:"selected"`
}

// Render renders the plans as a table or as JSON
func (r *VariantsRenderer) Render(result *usecase.ListPlansResult) error {
	if r.json {
		return writeJSON(r.out, lo.Map(result.Plans, func(plan config.UpgradePlan, _ int) variantJSON {
			return variantJSON{
				Name:        plan.Name,
				Description: plan.Description,
				Actions:     lo.Map(plan.Schema, func(kind domain.ActionKind, _ int) string { return kind.Method() }),
				Selected:    plan.Name == result.Selected,
			}
		}))
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"", "Variant", "Actions", "Plugins", "Description"})

	for _, plan := range result.Plans {
		marker := ""
		name := plan.Name
		if plan.Name == result.Selected {
			marker = "*"
			name = color.New(color.FgCyan, color.Bold).Sprint(plan.Name)
		}
		t.AppendRow(table.Row{marker, name, plan.ActionCount(), strings.Join(publishedModules(plan), ", "), plan.Description})
	}

	_, err := fmt.Fprintln(r.out, t.Render())
	return err
}

// publishedModules lists the modules receiving a plugin setup, in output order
func publishedModules(plan config.UpgradePlan) []string {
	published := lo.FilterMap(plan.Roles, func(role config.RoleAssignment, _ int) (domain.Module, bool) {
		return role.Module, role.Field == config.FieldPluginSetup
	})
	return lo.FilterMap(domain.AllModules(), func(module domain.Module, _ int) (string, bool) {
		return title(string(module)), lo.Contains(published, module)
	})
}

var _ Renderer[*usecase.ListPlansResult] = (*VariantsRenderer)(nil)
