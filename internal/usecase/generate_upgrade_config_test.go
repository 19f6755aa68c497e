package usecase_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/osx-upgrade/internal/domain"
	"github.com/trebuchet-org/osx-upgrade/internal/domain/config"
	"github.com/trebuchet-org/osx-upgrade/internal/usecase"
)

type generateFixture struct {
	entries   *MockEntriesReader
	templates *MockTemplateRepository
	writer    *MockFileWriter
	progress  *MockProgressSink
	uc        *usecase.GenerateUpgradeConfig
}

func newGenerateFixture(cfg *config.RuntimeConfig) *generateFixture {
	f := &generateFixture{
		entries:   new(MockEntriesReader),
		templates: new(MockTemplateRepository),
		writer:    new(MockFileWriter),
		progress:  &MockProgressSink{},
	}
	f.uc = usecase.NewGenerateUpgradeConfig(
		f.entries,
		newRegistry(),
		f.templates,
		f.writer,
		usecase.NewPlanResolver(cfg, nil),
		f.progress,
		discardLogger(),
	)
	return f
}

func (f *generateFixture) expectTemplates(ctx context.Context, network string) {
	for module, name := range config.DefaultTemplates() {
		f.templates.On("LoadTemplate", ctx, name, network).
			Return(map[string]any{"network": network, "module": module}, nil)
	}
}

func TestGenerateUpgradeConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("merges addresses into every template", func(t *testing.T) {
		f := newGenerateFixture(&config.RuntimeConfig{Plans: config.DefaultPlans()})
		f.entries.On("ReadEntries", ctx, "actions.json").Return(defaultEntries(), nil)
		f.expectTemplates(ctx, "sepolia")

		result, err := f.uc.Run(ctx, usecase.GenerateUpgradeConfigParams{InputPath: "actions.json", Network: "sepolia"})
		require.NoError(t, err)

		assert.Equal(t, "default", result.Plan.Name)
		assert.Empty(t, result.Written)

		osx := result.Config.OSx
		assert.Equal(t, "sepolia", osx["network"])
		contracts, ok := osx["contracts"].(domain.AddressRoleMap)
		require.True(t, ok)
		assert.Len(t, contracts, 5)
		assert.Equal(t, "DAO", contracts[daoImpl])

		assert.Equal(t, domain.AddressRoleMap{adminSetup: "AdminSetup"}, result.Config.Admin["contracts"])
		assert.Equal(t, domain.AddressRoleMap{multisigSetup: "MultisigSetup"}, result.Config.Multisig["contracts"])
		assert.Equal(t, domain.AddressRoleMap{tokenVotingSetup: "TokenVotingSetup"}, result.Config.TokenVoting["contracts"])

		assert.Equal(t, []string{
			usecase.StageReading,
			usecase.StageDecoding,
			usecase.StageValidating,
			usecase.StageExtracting,
			usecase.StageMerging,
			usecase.StageCompleted,
		}, f.progress.stages())
		assert.Equal(t, []string{"Using upgrade plan default (8 actions)"}, f.progress.infos)
		f.templates.AssertExpectations(t)
	})

	t.Run("output keys are ordered", func(t *testing.T) {
		f := newGenerateFixture(&config.RuntimeConfig{Plans: config.DefaultPlans()})
		f.entries.On("ReadEntries", ctx, "actions.json").Return(defaultEntries(), nil)
		f.expectTemplates(ctx, "mainnet")

		result, err := f.uc.Run(ctx, usecase.GenerateUpgradeConfigParams{InputPath: "actions.json", Network: "mainnet"})
		require.NoError(t, err)

		data, err := json.Marshal(result.Config)
		require.NoError(t, err)
		var keys []string
		dec := json.NewDecoder(bytes.NewReader(data))
		_, _ = dec.Token()
		for dec.More() {
			tok, err := dec.Token()
			require.NoError(t, err)
			keys = append(keys, tok.(string))
			var skip json.RawMessage
			require.NoError(t, dec.Decode(&skip))
		}
		assert.Equal(t, []string{"osx", "tokenVoting", "multisig", "admin"}, keys)
	})

	t.Run("writes the document when an output path is given", func(t *testing.T) {
		f := newGenerateFixture(&config.RuntimeConfig{Plans: config.DefaultPlans()})
		f.entries.On("ReadEntries", ctx, "actions.json").Return(defaultEntries(), nil)
		f.expectTemplates(ctx, "sepolia")
		f.writer.On("WriteFile", ctx, "out/sepolia.json", mock.AnythingOfType("[]uint8")).Return(nil)

		result, err := f.uc.Run(ctx, usecase.GenerateUpgradeConfigParams{
			InputPath:  "actions.json",
			Network:    "sepolia",
			OutputPath: "out/sepolia.json",
		})
		require.NoError(t, err)
		assert.Equal(t, "out/sepolia.json", result.Written)

		written := f.writer.Calls[0].Arguments.Get(2).([]byte)
		var doc map[string]map[string]any
		require.NoError(t, json.Unmarshal(written, &doc))
		assert.Len(t, doc["osx"]["contracts"], 5)
		assert.Contains(t, f.progress.stages(), usecase.StageWriting)
	})

	t.Run("requires a network", func(t *testing.T) {
		f := newGenerateFixture(&config.RuntimeConfig{Plans: config.DefaultPlans()})

		_, err := f.uc.Run(ctx, usecase.GenerateUpgradeConfigParams{InputPath: "actions.json"})
		require.Error(t, err)
		f.entries.AssertNotCalled(t, "ReadEntries", mock.Anything, mock.Anything)
	})

	t.Run("validation failure produces no output", func(t *testing.T) {
		entries := defaultEntries()
		entries[0] = permissionsEntry(target("1", daoRegistry, daoFactory))

		f := newGenerateFixture(&config.RuntimeConfig{Plans: config.DefaultPlans()})
		f.entries.On("ReadEntries", ctx, "actions.json").Return(entries, nil)

		result, err := f.uc.Run(ctx, usecase.GenerateUpgradeConfigParams{InputPath: "actions.json", Network: "sepolia"})
		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, domain.ErrValidation))
		f.templates.AssertNotCalled(t, "LoadTemplate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("schema mismatch with configured variant", func(t *testing.T) {
		f := newGenerateFixture(&config.RuntimeConfig{Plans: config.DefaultPlans(), Variant: "default"})
		f.entries.On("ReadEntries", ctx, "actions.json").Return(zkSyncEntries(), nil)

		_, err := f.uc.Run(ctx, usecase.GenerateUpgradeConfigParams{InputPath: "actions.json", Network: "zksync"})
		require.Error(t, err)
		var schemaErr *domain.SchemaError
		require.True(t, errors.As(err, &schemaErr))
		assert.Equal(t, 8, schemaErr.Expected)
		assert.Equal(t, 7, schemaErr.Actual)
	})

	t.Run("template error", func(t *testing.T) {
		f := newGenerateFixture(&config.RuntimeConfig{Plans: config.DefaultPlans()})
		f.entries.On("ReadEntries", ctx, "actions.json").Return(defaultEntries(), nil)
		f.templates.On("LoadTemplate", ctx, "template-osx.json", "sepolia").
			Return(nil, errors.New("failed to read template"))

		_, err := f.uc.Run(ctx, usecase.GenerateUpgradeConfigParams{InputPath: "actions.json", Network: "sepolia"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load osx template")
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		f := newGenerateFixture(&config.RuntimeConfig{Plans: config.DefaultPlans()})
		f.entries.On("ReadEntries", cancelled, "actions.json").Return(defaultEntries(), nil)

		_, err := f.uc.Run(cancelled, usecase.GenerateUpgradeConfigParams{InputPath: "actions.json", Network: "sepolia"})
		require.ErrorIs(t, err, context.Canceled)
	})
}
