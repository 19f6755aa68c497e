package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/trebuchet-org/osx-upgrade/internal/domain"
	"github.com/trebuchet-org/osx-upgrade/internal/domain/config"
)

// Generation stages reported to the progress sink
const (
	StageReading    = "reading"
	StageDecoding   = "decoding"
	StageValidating = "validating"
	StageExtracting = "extracting"
	StageMerging    = "merging"
	StageWriting    = "writing"
	StageCompleted  = "completed"
)

// GenerateUpgradeConfigParams contains parameters for generating the configuration
type GenerateUpgradeConfigParams struct {
	InputPath  string
	Network    string
	OutputPath string // optional, the document is only returned when empty
}

// GenerateUpgradeConfigResult contains the generated configuration and the
// intermediate results it was derived from
type GenerateUpgradeConfigResult struct {
	Plan      config.UpgradePlan
	Batch     domain.Batch
	Addresses domain.ModuleAddresses
	Config    *domain.UpgradeConfig
	Written   string
}

// GenerateUpgradeConfig decodes and validates an upgrade proposal and merges
// the contract addresses it references into the module templates
type GenerateUpgradeConfig struct {
	entries   EntriesReader
	decoder   ActionDecoder
	templates TemplateRepository
	writer    FileWriter
	resolver  *PlanResolver
	progress  ProgressSink
	log       *slog.Logger
}

// NewGenerateUpgradeConfig creates a new GenerateUpgradeConfig use case
func NewGenerateUpgradeConfig(
	entries EntriesReader,
	decoder ActionDecoder,
	templates TemplateRepository,
	writer FileWriter,
	resolver *PlanResolver,
	progress ProgressSink,
	log *slog.Logger,
) *GenerateUpgradeConfig {
	return &GenerateUpgradeConfig{
		entries:   entries,
		decoder:   decoder,
		templates: templates,
		writer:    writer,
		resolver:  resolver,
		progress:  progress,
		log:       log.With("component", "GenerateUpgradeConfig"),
	}
}

// Run executes the use case
func (uc *GenerateUpgradeConfig) Run(ctx context.Context, params GenerateUpgradeConfigParams) (*GenerateUpgradeConfigResult, error) {
	if params.Network == "" {
		return nil, fmt.Errorf("network is required")
	}

	uc.stage(ctx, StageReading, "Reading decoded actions")
	entries, err := uc.entries.ReadEntries(ctx, params.InputPath)
	if err != nil {
		return nil, err
	}

	plan, err := uc.resolver.Resolve(ctx, len(entries))
	if err != nil {
		return nil, err
	}
	uc.log.Debug("resolved upgrade plan", "plan", plan.Name, "actions", plan.ActionCount())
	uc.progress.Info(fmt.Sprintf("Using upgrade plan %s (%d actions)", plan.Name, plan.ActionCount()))

	uc.stage(ctx, StageDecoding, fmt.Sprintf("Decoding %d actions", len(entries)))
	batch, err := NewBatchDecoder(uc.decoder).Decode(entries, plan)
	if err != nil {
		return nil, err
	}

	uc.stage(ctx, StageValidating, "Validating actions")
	if err := NewBatchValidator(plan.Rules).Validate(batch); err != nil {
		return nil, err
	}

	uc.stage(ctx, StageExtracting, "Extracting addresses")
	addresses, err := NewAddressExtractor(plan.Roles).Extract(batch)
	if err != nil {
		return nil, err
	}

	result := &domain.UpgradeConfig{}
	for i, module := range domain.AllModules() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		uc.progress.OnProgress(ctx, ProgressEvent{
			Stage:   StageMerging,
			Current: i + 1,
			Total:   len(domain.AllModules()),
			Message: fmt.Sprintf("Merging %s configuration", module),
			Spinner: true,
		})

		template, err := uc.templates.LoadTemplate(ctx, plan.Template(module), params.Network)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s template: %w", module, err)
		}
		template["contracts"] = addresses[module]
		result.Set(module, template)

		uc.log.Debug("merged module configuration", "module", module, "contracts", len(addresses[module]))
	}

	generated := &GenerateUpgradeConfigResult{
		Plan:      plan,
		Batch:     batch,
		Addresses: addresses,
		Config:    result,
	}

	if params.OutputPath != "" {
		uc.stage(ctx, StageWriting, fmt.Sprintf("Writing %s", params.OutputPath))
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode configuration: %w", err)
		}
		if err := uc.writer.WriteFile(ctx, params.OutputPath, append(data, '\n')); err != nil {
			return nil, err
		}
		generated.Written = params.OutputPath
	}

	uc.stage(ctx, StageCompleted, "Configuration generated")
	return generated, nil
}

func (uc *GenerateUpgradeConfig) stage(ctx context.Context, stage, message string) {
	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   stage,
		Message: message,
		Spinner: stage != StageCompleted,
	})
}
