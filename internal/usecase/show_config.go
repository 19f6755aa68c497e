package usecase

import (
	"context"

	"github.com/trebuchet-org/osx-upgrade/internal/domain"
	"github.com/trebuchet-org/osx-upgrade/internal/domain/config"
)

// ConfigEntry is one stored default next to the value a run would use.
// InEffect is only set for keys that flags and env vars can override.
type ConfigEntry struct {
	Key      domain.ConfigKey
	Stored   string
	InEffect string
}

// Overridden reports whether a flag or env var replaced the stored value
func (e ConfigEntry) Overridden() bool {
	return e.InEffect != "" && e.InEffect != e.Stored
}

// ShowConfigResult lists the stored defaults
type ShowConfigResult struct {
	Entries    []ConfigEntry
	ConfigPath string
	Exists     bool
}

// ShowConfig reports the project defaults
type ShowConfig struct {
	store LocalConfigStore
	cfg   *config.RuntimeConfig
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(store LocalConfigStore, cfg *config.RuntimeConfig) *ShowConfig {
	return &ShowConfig{store: store, cfg: cfg}
}

// Run loads the stored defaults and pairs them with the runtime values
func (uc *ShowConfig) Run(ctx context.Context) (*ShowConfigResult, error) {
	local, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	inEffect := map[domain.ConfigKey]string{
		domain.ConfigKeyNetwork: uc.cfg.Network,
		domain.ConfigKeyVariant: uc.cfg.Variant,
	}

	keys := domain.ValidConfigKeys()
	entries := make([]ConfigEntry, 0, len(keys))
	for _, key := range keys {
		entries = append(entries, ConfigEntry{
			Key:      key,
			Stored:   local.Get(key),
			InEffect: inEffect[key],
		})
	}

	return &ShowConfigResult{
		Entries:    entries,
		ConfigPath: uc.store.GetPath(),
		Exists:     uc.store.Exists(),
	}, nil
}
