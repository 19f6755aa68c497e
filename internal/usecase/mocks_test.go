package usecase_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/osx-upgrade/internal/adapters/calldata"
	"github.com/trebuchet-org/osx-upgrade/internal/domain"
	"github.com/trebuchet-org/osx-upgrade/internal/domain/config"
	"github.com/trebuchet-org/osx-upgrade/internal/usecase"
)

const (
	zero    = "0x0000000000000000000000000000000000000000"
	permKey = "0xde5e253d6956bc5fb69cfa564733633f4e53b143e42859306cd13cdc54856215"

	daoRegistry        = "0x1000000000000000000000000000000000000001"
	repoRegistry       = "0x1000000000000000000000000000000000000002"
	daoFactory         = "0x2000000000000000000000000000000000000001"
	oldRepoFactory     = "0x2000000000000000000000000000000000000002"
	repoFactory        = "0x2000000000000000000000000000000000000003"
	daoRegistryImpl    = "0x3000000000000000000000000000000000000001"
	repoRegistryImpl   = "0x3000000000000000000000000000000000000002"
	daoImpl            = "0x3000000000000000000000000000000000000003"
	adminSetup         = "0x4000000000000000000000000000000000000001"
	multisigSetup      = "0x4000000000000000000000000000000000000002"
	tokenVotingSetup   = "0x4000000000000000000000000000000000000003"
	ipfsBuildMetadata  = "0x697066733a2f2f6275696c64"     // ipfs://build
	ipfsReleaseMeta    = "0x697066733a2f2f72656c65617365" // ipfs://release
	httpsBuildMetadata = "0x68747470733a2f2f6275696c64"   // https://build
)

var sigs = config.DefaultSignatures()

func permissionsEntry(targets ...string) domain.DecodedEntry {
	return domain.DecodedEntry{
		Decoded: sigs.Header(domain.ActionApplyMultiTargetPermissions) + "[" + strings.Join(targets, ", ") + "]",
	}
}

func target(op, where, who string) string {
	return "(" + strings.Join([]string{op, where, who, zero, permKey}, ", ") + ")"
}

func upgradeEntry(implementation string) domain.DecodedEntry {
	return domain.DecodedEntry{Decoded: sigs.Header(domain.ActionUpgradeTo) + implementation}
}

func upgradeAndCallEntry(implementation, data string) domain.DecodedEntry {
	return domain.DecodedEntry{Decoded: sigs.Header(domain.ActionUpgradeToAndCall) + implementation + "\n" + data}
}

func createVersionEntry(release, setup, build, releaseMeta string) domain.DecodedEntry {
	return domain.DecodedEntry{
		Decoded: sigs.Header(domain.ActionCreateVersion) + strings.Join([]string{release, setup, build, releaseMeta}, "\n"),
	}
}

// coreEntries are the five actions shared by every plan
func coreEntries() []domain.DecodedEntry {
	return []domain.DecodedEntry{
		permissionsEntry(target("0", daoRegistry, daoFactory)),
		permissionsEntry(
			target("1", repoRegistry, oldRepoFactory),
			target("0", repoRegistry, repoFactory),
		),
		upgradeEntry(daoRegistryImpl),
		upgradeEntry(repoRegistryImpl),
		upgradeAndCallEntry(daoImpl, config.ExpectedInitializeFromCalldata),
	}
}

// defaultEntries is a well-formed eight action proposal
func defaultEntries() []domain.DecodedEntry {
	return append(coreEntries(),
		createVersionEntry("1", adminSetup, ipfsBuildMetadata, ipfsReleaseMeta),
		createVersionEntry("1", multisigSetup, ipfsBuildMetadata, ipfsReleaseMeta),
		createVersionEntry("1", tokenVotingSetup, ipfsBuildMetadata, ipfsReleaseMeta),
	)
}

// zkSyncEntries is a well-formed seven action proposal without the admin publish
func zkSyncEntries() []domain.DecodedEntry {
	return append(coreEntries(),
		createVersionEntry("1", multisigSetup, ipfsBuildMetadata, ipfsReleaseMeta),
		createVersionEntry("1", tokenVotingSetup, ipfsBuildMetadata, ipfsReleaseMeta),
	)
}

func newRegistry() *calldata.Registry {
	return calldata.NewRegistry(sigs)
}

func decodeDefault(t *testing.T, entries []domain.DecodedEntry) domain.Batch {
	t.Helper()
	batch, err := usecase.NewBatchDecoder(newRegistry()).Decode(entries, config.DefaultPlan())
	require.NoError(t, err)
	return batch
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MockEntriesReader is a mock implementation of EntriesReader
type MockEntriesReader struct {
	mock.Mock
}

func (m *MockEntriesReader) ReadEntries(ctx context.Context, path string) ([]domain.DecodedEntry, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DecodedEntry), args.Error(1)
}

// MockProposalReader is a mock implementation of ProposalReader
type MockProposalReader struct {
	mock.Mock
}

func (m *MockProposalReader) ReadProposal(ctx context.Context, path string) ([]json.RawMessage, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]json.RawMessage), args.Error(1)
}

// MockTemplateRepository is a mock implementation of TemplateRepository
type MockTemplateRepository struct {
	mock.Mock
}

func (m *MockTemplateRepository) LoadTemplate(ctx context.Context, name string, network string) (map[string]any, error) {
	args := m.Called(ctx, name, network)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

// MockFileWriter is a mock implementation of FileWriter
type MockFileWriter struct {
	mock.Mock
}

func (m *MockFileWriter) WriteFile(ctx context.Context, path string, content []byte) error {
	args := m.Called(ctx, path, content)
	return args.Error(0)
}

// MockPlanSelector is a mock implementation of PlanSelector
type MockPlanSelector struct {
	mock.Mock
}

func (m *MockPlanSelector) SelectPlan(ctx context.Context, plans []config.UpgradePlan, prompt string) (config.UpgradePlan, error) {
	args := m.Called(ctx, plans, prompt)
	return args.Get(0).(config.UpgradePlan), args.Error(1)
}

// MockLocalConfigStore is an in-memory LocalConfigStore
type MockLocalConfigStore struct {
	config *domain.LocalConfig
	saved  int
}

func (m *MockLocalConfigStore) Exists() bool { return m.config != nil }

func (m *MockLocalConfigStore) Load(ctx context.Context) (*domain.LocalConfig, error) {
	if m.config == nil {
		return &domain.LocalConfig{}, nil
	}
	copied := *m.config
	return &copied, nil
}

func (m *MockLocalConfigStore) Save(ctx context.Context, cfg *domain.LocalConfig) error {
	m.config = cfg
	m.saved++
	return nil
}

func (m *MockLocalConfigStore) GetPath() string { return "/project/.osx-upgrade/config.json" }

// MockProgressSink records progress events
type MockProgressSink struct {
	events []usecase.ProgressEvent
	infos  []string
	errs   []string
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.events = append(m.events, event)
}

func (m *MockProgressSink) Info(message string)  { m.infos = append(m.infos, message) }
func (m *MockProgressSink) Error(message string) { m.errs = append(m.errs, message) }

func (m *MockProgressSink) stages() []string {
	stages := make([]string, 0, len(m.events))
	for _, e := range m.events {
		if len(stages) == 0 || stages[len(stages)-1] != e.Stage {
			stages = append(stages, e.Stage)
		}
	}
	return stages
}
