package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/trebuchet-org/osx-upgrade/internal/domain"
	"github.com/trebuchet-org/osx-upgrade/internal/usecase"
)

var (
	kindStyles = map[domain.ActionKind]*color.Color{
		domain.ActionApplyMultiTargetPermissions: color.New(color.FgYellow, color.Bold),
		domain.ActionUpgradeTo:                   color.New(color.FgMagenta, color.Bold),
		domain.ActionUpgradeToAndCall:            color.New(color.FgMagenta, color.Bold),
		domain.ActionCreateVersion:               color.New(color.FgGreen, color.Bold),
	}
	grantStyle  = color.New(color.FgGreen)
	revokeStyle = color.New(color.FgRed)
	labelStyle  = color.New(color.Faint)
)

// SummaryRenderer renders the decoded actions of a proposal
type SummaryRenderer struct {
	out  io.Writer
	json bool
}

// NewSummaryRenderer creates a new summary renderer
func NewSummaryRenderer(out io.Writer, jsonOutput bool) *SummaryRenderer {
	return &SummaryRenderer{
		out:  out,
		json: jsonOutput,
	}
}

// Render renders the summary as a table or as JSON
func (r *SummaryRenderer) Render(result *usecase.SummarizeProposalResult) error {
	if r.json {
		return writeJSON(r.out, result)
	}

	fmt.Fprintf(r.out, "Upgrade plan: %s (%d actions)\n\n", color.New(color.Bold).Sprint(result.Plan), len(result.Actions))

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateRows = true
	t.AppendHeader(table.Row{"#", "Action", "Details"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, WidthMax: 100},
	})

	for _, summary := range result.Actions {
		t.AppendRow(table.Row{
			summary.Index,
			styleKind(summary.Kind),
			strings.Join(describeAction(summary), "\n"),
		})
	}

	_, err := fmt.Fprintln(r.out, t.Render())
	return err
}

func styleKind(kind domain.ActionKind) string {
	if style, ok := kindStyles[kind]; ok {
		return style.Sprint(kind.Method())
	}
	return kind.Method()
}

func describeAction(summary usecase.ActionSummary) []string {
	switch action := summary.Action.(type) {
	case domain.PermissionTargets:
		lines := make([]string, 0, len(action))
		for i, target := range action {
			lines = append(lines, fmt.Sprintf("%d. %s %s on %s %s",
				i+1,
				styleOperation(target.Operation),
				target.Who,
				target.Where,
				labelStyle.Sprintf("(%s)", shortHex(target.PermissionID)),
			))
		}
		return lines
	case domain.Upgrade:
		return []string{labelStyle.Sprint("implementation ") + action.Implementation}
	case domain.UpgradeAndCall:
		lines := []string{labelStyle.Sprint("implementation ") + action.Implementation}
		return append(lines, describeCall(summary.Call, action.Data)...)
	case domain.CreateVersion:
		return []string{
			labelStyle.Sprint("release        ") + action.Release,
			labelStyle.Sprint("plugin setup   ") + action.PluginSetup,
			labelStyle.Sprint("build metadata ") + action.BuildMetadata,
			labelStyle.Sprint("release meta   ") + action.ReleaseMetadata,
		}
	}
	return nil
}

func describeCall(call *domain.CallDescription, data string) []string {
	if call == nil {
		return []string{labelStyle.Sprint("call ") + shortHex(data)}
	}
	if call.Method == "" {
		return []string{labelStyle.Sprint("call ") + call.Selector + labelStyle.Sprint(" (unknown method)")}
	}
	args := make([]string, 0, len(call.Args))
	for _, arg := range call.Args {
		args = append(args, fmt.Sprintf("%v", arg.Value))
	}
	return []string{labelStyle.Sprint("call ") + fmt.Sprintf("%s(%s)", domain.ActionKind(call.Method).Method(), strings.Join(args, ", "))}
}

func styleOperation(op domain.PermissionOperation) string {
	switch op {
	case domain.OperationRevoke:
		return revokeStyle.Sprint(op)
	default:
		return grantStyle.Sprint(op)
	}
}

var _ Renderer[*usecase.SummarizeProposalResult] = (*SummaryRenderer)(nil)
