package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/osx-upgrade/internal/domain"
	"github.com/trebuchet-org/osx-upgrade/internal/domain/config"
	"github.com/trebuchet-org/osx-upgrade/internal/usecase"
)

func TestAddressExtractor(t *testing.T) {
	t.Run("default plan", func(t *testing.T) {
		batch := decodeDefault(t, defaultEntries())

		addresses, err := usecase.NewAddressExtractor(config.DefaultPlan().Roles).Extract(batch)
		require.NoError(t, err)

		assert.Equal(t, domain.AddressRoleMap{
			daoFactory:       "DAOFactory",
			repoFactory:      "PluginRepoFactory",
			daoRegistryImpl:  "DAORegistry",
			repoRegistryImpl: "PluginRepoRegistry",
			daoImpl:          "DAO",
		}, addresses[domain.ModuleOSx])
		assert.Equal(t, domain.AddressRoleMap{adminSetup: "AdminSetup"}, addresses[domain.ModuleAdmin])
		assert.Equal(t, domain.AddressRoleMap{multisigSetup: "MultisigSetup"}, addresses[domain.ModuleMultisig])
		assert.Equal(t, domain.AddressRoleMap{tokenVotingSetup: "TokenVotingSetup"}, addresses[domain.ModuleTokenVoting])
	})

	t.Run("zksync plan has no admin contracts", func(t *testing.T) {
		plan := config.ZkSyncPlan()
		batch, err := usecase.NewBatchDecoder(newRegistry()).Decode(zkSyncEntries(), plan)
		require.NoError(t, err)

		addresses, err := usecase.NewAddressExtractor(plan.Roles).Extract(batch)
		require.NoError(t, err)

		assert.Len(t, addresses[domain.ModuleOSx], 5)
		assert.Empty(t, addresses[domain.ModuleAdmin])
		assert.NotNil(t, addresses[domain.ModuleAdmin])
		assert.Equal(t, domain.AddressRoleMap{multisigSetup: "MultisigSetup"}, addresses[domain.ModuleMultisig])
		assert.Equal(t, domain.AddressRoleMap{tokenVotingSetup: "TokenVotingSetup"}, addresses[domain.ModuleTokenVoting])
	})

	t.Run("idempotent", func(t *testing.T) {
		batch := decodeDefault(t, defaultEntries())
		extractor := usecase.NewAddressExtractor(config.DefaultPlan().Roles)

		first, err := extractor.Extract(batch)
		require.NoError(t, err)
		second, err := extractor.Extract(batch)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("same address keeps the last label", func(t *testing.T) {
		entries := defaultEntries()
		entries[3] = upgradeEntry(daoRegistryImpl)
		batch := decodeDefault(t, entries)

		addresses, err := usecase.NewAddressExtractor(config.DefaultPlan().Roles).Extract(batch)
		require.NoError(t, err)

		assert.Len(t, addresses[domain.ModuleOSx], 4)
		assert.Equal(t, "PluginRepoRegistry", addresses[domain.ModuleOSx][daoRegistryImpl])
	})

	t.Run("role outside the batch", func(t *testing.T) {
		batch := decodeDefault(t, defaultEntries())
		roles := []config.RoleAssignment{
			{Position: 0, Target: 3, Field: config.FieldWho, Module: domain.ModuleOSx, Label: "Missing"},
		}

		_, err := usecase.NewAddressExtractor(roles).Extract(batch)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "role Missing")
	})
}
