package adapters

import (
	"github.com/google/wire"
	"github.com/trebuchet-org/osx-upgrade/internal/adapters/abi"
	"github.com/trebuchet-org/osx-upgrade/internal/adapters/calldata"
	"github.com/trebuchet-org/osx-upgrade/internal/adapters/fs"
	"github.com/trebuchet-org/osx-upgrade/internal/adapters/interactive"
	"github.com/trebuchet-org/osx-upgrade/internal/adapters/proposal"
	"github.com/trebuchet-org/osx-upgrade/internal/domain/config"
	"github.com/trebuchet-org/osx-upgrade/internal/usecase"
)

// ProvideSignatures provides the signature headers from RuntimeConfig
func ProvideSignatures(cfg *config.RuntimeConfig) config.Signatures {
	return cfg.Signatures
}

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewActionsReaderAdapter,
	wire.Bind(new(usecase.EntriesReader), new(*fs.ActionsReaderAdapter)),
	wire.Bind(new(usecase.ProposalReader), new(*fs.ActionsReaderAdapter)),

	fs.NewTemplateStoreAdapter,
	wire.Bind(new(usecase.TemplateRepository), new(*fs.TemplateStoreAdapter)),

	fs.NewFileWriterAdapter,
	wire.Bind(new(usecase.FileWriter), new(*fs.FileWriterAdapter)),

	fs.NewLocalConfigStoreAdapter,
	wire.Bind(new(usecase.LocalConfigStore), new(*fs.LocalConfigStoreAdapter)),
)

// DecoderSet provides the calldata decoders
var DecoderSet = wire.NewSet(
	ProvideSignatures,
	calldata.NewRegistry,
	wire.Bind(new(usecase.ActionDecoder), new(*calldata.Registry)),

	proposal.NewTupleParser,
	wire.Bind(new(usecase.ProposalActionParser), new(*proposal.TupleParser)),
)

// ABISet provides go-ethereum ABI based implementations
var ABISet = wire.NewSet(
	abi.NewCalldataDescriber,
	wire.Bind(new(usecase.CalldataDescriber), new(*abi.CalldataDescriber)),

	abi.NewSelectorIndex,
	wire.Bind(new(usecase.SelectorIndex), new(*abi.SelectorIndex)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.PlanSelector), new(*interactive.SelectorAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	DecoderSet,
	ABISet,
	InteractiveSet,
)
