package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/osx-upgrade/internal/domain"
	"github.com/trebuchet-org/osx-upgrade/internal/domain/config"
	"github.com/trebuchet-org/osx-upgrade/internal/usecase"
)

func TestBatchDecoder(t *testing.T) {
	decoder := usecase.NewBatchDecoder(newRegistry())

	t.Run("decodes every position with its schema decoder", func(t *testing.T) {
		batch, err := decoder.Decode(defaultEntries(), config.DefaultPlan())
		require.NoError(t, err)
		require.Equal(t, 8, batch.Len())

		targets, err := batch.Permissions(1)
		require.NoError(t, err)
		require.Len(t, targets, 2)
		assert.Equal(t, domain.OperationRevoke, targets[0].Operation)
		assert.Equal(t, repoFactory, targets[1].Who)

		upgrade, err := batch.Upgrade(3)
		require.NoError(t, err)
		assert.Equal(t, repoRegistryImpl, upgrade.Implementation)

		call, err := batch.UpgradeAndCall(4)
		require.NoError(t, err)
		assert.Equal(t, config.ExpectedInitializeFromCalldata, call.Data)

		version, err := batch.CreateVersion(7)
		require.NoError(t, err)
		assert.Equal(t, tokenVotingSetup, version.PluginSetup)
		assert.Equal(t, "ipfs://build", version.BuildMetadata)
		assert.Equal(t, "ipfs://release", version.ReleaseMetadata)
	})

	t.Run("wrong entry count", func(t *testing.T) {
		_, err := decoder.Decode(defaultEntries()[:7], config.DefaultPlan())
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrSchema))
		assert.Equal(t, "invalid upgrade proposal actions: expected 8 actions, got 7", err.Error())
	})

	t.Run("seven actions fit the zksync plan", func(t *testing.T) {
		batch, err := decoder.Decode(zkSyncEntries(), config.ZkSyncPlan())
		require.NoError(t, err)
		assert.Equal(t, 7, batch.Len())
	})

	t.Run("entry in the wrong position", func(t *testing.T) {
		entries := defaultEntries()
		entries[2], entries[4] = entries[4], entries[2]

		_, err := decoder.Decode(entries, config.DefaultPlan())
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrFormat))
		assert.Contains(t, err.Error(), "action 3:")
	})

	t.Run("malformed parameters", func(t *testing.T) {
		entries := defaultEntries()
		entries[5] = createVersionEntry("1", adminSetup, "0xzz", ipfsReleaseMeta)

		_, err := decoder.Decode(entries, config.DefaultPlan())
		require.Error(t, err)
		var formatErr *domain.FormatError
		require.True(t, errors.As(err, &formatErr))
		assert.Equal(t, domain.ActionCreateVersion, formatErr.Kind)
		assert.Contains(t, err.Error(), "action 6:")
	})
}
