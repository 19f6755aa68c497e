package usecase

import (
	"context"
	"encoding/json"

	"github.com/trebuchet-org/osx-upgrade/internal/domain"
	"github.com/trebuchet-org/osx-upgrade/internal/domain/config"
)

// EntriesReader reads the entries produced by the external calldata decoder
type EntriesReader interface {
	ReadEntries(ctx context.Context, path string) ([]domain.DecodedEntry, error)
}

// ProposalReader reads a raw proposal as a JSON array
type ProposalReader interface {
	ReadProposal(ctx context.Context, path string) ([]json.RawMessage, error)
}

// TemplateRepository loads a module configuration template with every
// <NETWORK> placeholder replaced by the given network.
type TemplateRepository interface {
	LoadTemplate(ctx context.Context, name string, network string) (map[string]any, error)
}

// ActionDecoder decodes entries of the supported call shapes
type ActionDecoder interface {
	Kinds() []domain.ActionKind
	Decode(kind domain.ActionKind, data string) (domain.Action, error)
	Sniff(data string) (domain.Action, error)
}

// CalldataDescriber describes a call payload in human readable form
type CalldataDescriber interface {
	Describe(data string) (*domain.CallDescription, error)
}

// ProposalActionParser parses the proposal tuple list "[(to, value, data), ...]"
type ProposalActionParser interface {
	ParseActions(tuples string) ([]domain.ProposalAction, error)
}

// SelectorIndex maps a 4-byte selector to the supported call it belongs to
type SelectorIndex interface {
	Lookup(data []byte) (domain.ActionKind, bool)
}

// PlanSelector lets the user choose between several upgrade plans
type PlanSelector interface {
	SelectPlan(ctx context.Context, plans []config.UpgradePlan, prompt string) (config.UpgradePlan, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Current int
	Total   int
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}

// LocalConfigStore persists the project defaults
type LocalConfigStore interface {
	Exists() bool
	Load(ctx context.Context) (*domain.LocalConfig, error)
	Save(ctx context.Context, config *domain.LocalConfig) error
	GetPath() string
}

// FileWriter writes generated documents to disk
type FileWriter interface {
	WriteFile(ctx context.Context, path string, content []byte) error
}
