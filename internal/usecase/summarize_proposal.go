package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/trebuchet-org/osx-upgrade/internal/domain"
)

// SummarizeProposalParams contains parameters for summarizing a proposal
type SummarizeProposalParams struct {
	InputPath string
}

// ActionSummary describes one decoded action
type ActionSummary struct {
	Index  int                     `json:"index"`
	Kind   domain.ActionKind       `json:"signature"`
	Action domain.Action           `json:"action"`
	Call   *domain.CallDescription `json:"call,omitempty"`
}

// SummarizeProposalResult contains the summary of every action
type SummarizeProposalResult struct {
	Plan    string          `json:"plan"`
	Actions []ActionSummary `json:"actions"`
}

// SummarizeProposal decodes each entry by recognising its signature header,
// without assuming the position of each call
type SummarizeProposal struct {
	entries   EntriesReader
	decoder   ActionDecoder
	describer CalldataDescriber
	resolver  *PlanResolver
	progress  ProgressSink
	log       *slog.Logger
}

// NewSummarizeProposal creates a new SummarizeProposal use case
func NewSummarizeProposal(
	entries EntriesReader,
	decoder ActionDecoder,
	describer CalldataDescriber,
	resolver *PlanResolver,
	progress ProgressSink,
	log *slog.Logger,
) *SummarizeProposal {
	return &SummarizeProposal{
		entries:   entries,
		decoder:   decoder,
		describer: describer,
		resolver:  resolver,
		progress:  progress,
		log:       log.With("component", "SummarizeProposal"),
	}
}

// Run executes the use case
func (uc *SummarizeProposal) Run(ctx context.Context, params SummarizeProposalParams) (*SummarizeProposalResult, error) {
	entries, err := uc.entries.ReadEntries(ctx, params.InputPath)
	if err != nil {
		return nil, err
	}

	plan, err := uc.resolver.Resolve(ctx, len(entries))
	if err != nil {
		return nil, err
	}
	if len(entries) != plan.ActionCount() {
		return nil, &domain.SchemaError{Expected: plan.ActionCount(), Actual: len(entries)}
	}

	summaries := make([]ActionSummary, 0, len(entries))
	for i, entry := range entries {
		action, err := uc.decoder.Sniff(entry.Decoded)
		if err != nil {
			return nil, fmt.Errorf("action %d: %w", i+1, err)
		}

		summary := ActionSummary{
			Index:  i + 1,
			Kind:   action.Kind(),
			Action: action,
		}
		if call, ok := action.(domain.UpgradeAndCall); ok {
			desc, err := uc.describer.Describe(call.Data)
			if err != nil {
				uc.log.Debug("unable to describe calldata", "action", i+1, "err", err)
				uc.progress.Error(fmt.Sprintf("Action %d: calldata left undecoded: %v", i+1, err))
			} else {
				summary.Call = desc
			}
		}
		summaries = append(summaries, summary)
	}

	return &SummarizeProposalResult{
		Plan:    plan.Name,
		Actions: summaries,
	}, nil
}
