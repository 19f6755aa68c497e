package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/trebuchet-org/osx-upgrade/internal/domain"
)

const (
	// proposalFieldCount is the number of fields of a proposal as returned by getProposal
	proposalFieldCount = 5
	// proposalActionsField is the index of the action list
	proposalActionsField = 3
)

// ParseProposalActionsParams contains parameters for parsing proposal actions
type ParseProposalActionsParams struct {
	InputPath string
}

// ParseProposalActionsResult contains the parsed actions
type ParseProposalActionsResult struct {
	Actions []domain.ProposalAction
}

// ParseProposalActions extracts the raw actions of an on-chain proposal and
// tags the ones calling a supported function
type ParseProposalActions struct {
	reader    ProposalReader
	parser    ProposalActionParser
	selectors SelectorIndex
}

// NewParseProposalActions creates a new ParseProposalActions use case
func NewParseProposalActions(reader ProposalReader, parser ProposalActionParser, selectors SelectorIndex) *ParseProposalActions {
	return &ParseProposalActions{
		reader:    reader,
		parser:    parser,
		selectors: selectors,
	}
}

// Run executes the use case
func (uc *ParseProposalActions) Run(ctx context.Context, params ParseProposalActionsParams) (*ParseProposalActionsResult, error) {
	fields, err := uc.reader.ReadProposal(ctx, params.InputPath)
	if err != nil {
		return nil, err
	}
	if len(fields) != proposalFieldCount {
		return nil, &domain.SchemaError{
			Expected: proposalFieldCount,
			Actual:   len(fields),
			Message:  fmt.Sprintf("invalid proposal data: expected %d fields, got %d", proposalFieldCount, len(fields)),
		}
	}

	var tuples string
	if err := json.Unmarshal(fields[proposalActionsField], &tuples); err != nil {
		return nil, &domain.SchemaError{
			Expected: proposalFieldCount,
			Actual:   len(fields),
			Message:  fmt.Sprintf("invalid proposal data: field %d is not a string", proposalActionsField),
		}
	}

	actions, err := uc.parser.ParseActions(tuples)
	if err != nil {
		return nil, err
	}
	for i := range actions {
		if kind, ok := uc.selectors.Lookup(actions[i].Data); ok {
			actions[i].Signature = kind
		}
	}

	return &ParseProposalActionsResult{Actions: actions}, nil
}
