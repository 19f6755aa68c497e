package render

import (
	"io"

	"github.com/trebuchet-org/osx-upgrade/internal/domain"
	"github.com/trebuchet-org/osx-upgrade/internal/usecase"
)

// ActionsRenderer prints the parsed proposal actions as a JSON array
type ActionsRenderer struct {
	out io.Writer
}

// NewActionsRenderer creates a new actions renderer
func NewActionsRenderer(out io.Writer) *ActionsRenderer {
	return &ActionsRenderer{out: out}
}

// Render renders the actions
func (r *ActionsRenderer) Render(result *usecase.ParseProposalActionsResult) error {
	actions := result.Actions
	if actions == nil {
		actions = []domain.ProposalAction{}
	}
	return writeJSON(r.out, actions)
}

var _ Renderer[*usecase.ParseProposalActionsResult] = (*ActionsRenderer)(nil)
