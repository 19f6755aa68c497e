package usecase

import (
	"fmt"

	"github.com/trebuchet-org/osx-upgrade/internal/domain"
	"github.com/trebuchet-org/osx-upgrade/internal/domain/config"
)

// BatchDecoder decodes the entries of a proposal following a plan's schema.
// Position i is decoded with the decoder of schema[i]; headers are not sniffed.
type BatchDecoder struct {
	decoder ActionDecoder
}

// NewBatchDecoder creates a new BatchDecoder
func NewBatchDecoder(decoder ActionDecoder) *BatchDecoder {
	return &BatchDecoder{decoder: decoder}
}

// Decode checks the entry count against the schema before decoding anything
func (d *BatchDecoder) Decode(entries []domain.DecodedEntry, plan config.UpgradePlan) (domain.Batch, error) {
	if len(entries) != plan.ActionCount() {
		return domain.Batch{}, &domain.SchemaError{Expected: plan.ActionCount(), Actual: len(entries)}
	}

	actions := make([]domain.Action, 0, len(entries))
	for i, kind := range plan.Schema {
		action, err := d.decoder.Decode(kind, entries[i].Decoded)
		if err != nil {
			return domain.Batch{}, fmt.Errorf("action %d: %w", i+1, err)
		}
		actions = append(actions, action)
	}

	return domain.Batch{Actions: actions}, nil
}
