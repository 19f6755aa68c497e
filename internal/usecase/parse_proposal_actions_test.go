package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/osx-upgrade/internal/adapters/abi"
	"github.com/trebuchet-org/osx-upgrade/internal/adapters/proposal"
	"github.com/trebuchet-org/osx-upgrade/internal/domain"
	"github.com/trebuchet-org/osx-upgrade/internal/usecase"
)

func rawFields(t *testing.T, fields ...any) []json.RawMessage {
	t.Helper()
	raw := make([]json.RawMessage, 0, len(fields))
	for _, f := range fields {
		data, err := json.Marshal(f)
		require.NoError(t, err)
		raw = append(raw, data)
	}
	return raw
}

func TestParseProposalActions(t *testing.T) {
	ctx := context.Background()
	registry := newRegistry()
	newUseCase := func(reader *MockProposalReader) *usecase.ParseProposalActions {
		return usecase.NewParseProposalActions(reader, proposal.NewTupleParser(), abi.NewSelectorIndex(registry))
	}

	t.Run("annotates supported calls", func(t *testing.T) {
		tuples := "[(" + daoRegistry + ", 0, 0x3659cfe6000000000000000000000000" + daoRegistryImpl[2:] + "), " +
			"(" + daoImpl + ", 12, 0xdeadbeef)]"

		reader := new(MockProposalReader)
		reader.On("ReadProposal", ctx, "proposal.json").
			Return(rawFields(t, false, map[string]any{"startDate": 1}, 3, tuples, "0"), nil)

		result, err := newUseCase(reader).Run(ctx, usecase.ParseProposalActionsParams{InputPath: "proposal.json"})
		require.NoError(t, err)
		require.Len(t, result.Actions, 2)

		assert.Equal(t, domain.ActionUpgradeTo, result.Actions[0].Signature)
		assert.Equal(t, "0", result.Actions[0].Value.String())
		assert.Empty(t, result.Actions[1].Signature)
		assert.Equal(t, "12", result.Actions[1].Value.String())
	})

	t.Run("wrong field count", func(t *testing.T) {
		reader := new(MockProposalReader)
		reader.On("ReadProposal", ctx, "proposal.json").Return(rawFields(t, 1, 2, 3), nil)

		_, err := newUseCase(reader).Run(ctx, usecase.ParseProposalActionsParams{InputPath: "proposal.json"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrSchema))
		assert.Equal(t, "invalid proposal data: expected 5 fields, got 3", err.Error())
	})

	t.Run("actions field is not a string", func(t *testing.T) {
		reader := new(MockProposalReader)
		reader.On("ReadProposal", ctx, "proposal.json").Return(rawFields(t, 1, 2, 3, []int{4}, 5), nil)

		_, err := newUseCase(reader).Run(ctx, usecase.ParseProposalActionsParams{InputPath: "proposal.json"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrSchema))
	})

	t.Run("malformed tuple", func(t *testing.T) {
		reader := new(MockProposalReader)
		reader.On("ReadProposal", ctx, "proposal.json").
			Return(rawFields(t, 1, 2, 3, "[("+daoImpl+", 0)]", 5), nil)

		_, err := newUseCase(reader).Run(ctx, usecase.ParseProposalActionsParams{InputPath: "proposal.json"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrFormat))
	})
}
