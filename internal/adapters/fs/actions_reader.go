package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/trebuchet-org/osx-upgrade/internal/domain"
	"github.com/trebuchet-org/osx-upgrade/internal/usecase"
)

// ActionsReaderAdapter reads decoded actions and raw proposals from JSON files
type ActionsReaderAdapter struct{}

// NewActionsReaderAdapter creates a new ActionsReaderAdapter
func NewActionsReaderAdapter() *ActionsReaderAdapter {
	return &ActionsReaderAdapter{}
}

// ReadEntries reads a JSON array of {"decoded": "..."} objects
func (r *ActionsReaderAdapter) ReadEntries(ctx context.Context, path string) ([]domain.DecodedEntry, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var entries []domain.DecodedEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, &domain.SchemaError{Message: fmt.Sprintf("invalid upgrade proposal actions in %s: %v", path, err)}
	}
	if entries == nil {
		return nil, &domain.SchemaError{Message: fmt.Sprintf("invalid upgrade proposal actions in %s: not an array", path)}
	}
	return entries, nil
}

// ReadProposal reads a JSON array keeping each element undecoded
func (r *ActionsReaderAdapter) ReadProposal(ctx context.Context, path string) ([]json.RawMessage, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var fields []json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, &domain.SchemaError{Message: fmt.Sprintf("invalid proposal data in %s: %v", path, err)}
	}
	if fields == nil {
		return nil, &domain.SchemaError{Message: fmt.Sprintf("invalid proposal data in %s: not an array", path)}
	}
	return fields, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading file %q: %w", path, err)
	}
	return data, nil
}

// Ensure ActionsReaderAdapter implements the readers
var (
	_ usecase.EntriesReader  = (*ActionsReaderAdapter)(nil)
	_ usecase.ProposalReader = (*ActionsReaderAdapter)(nil)
)
