package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/trebuchet-org/osx-upgrade/internal/domain/config"
	"gopkg.in/yaml.v3"
)

// PlanFile is the on-disk format of a plan file (TOML or YAML)
type PlanFile struct {
	HeaderFormat string                        `toml:"header_format" yaml:"header_format"`
	Plans        map[string]config.UpgradePlan `toml:"plans" yaml:"plans"`
}

// LoadPlanFile loads a plan file. An empty path returns (nil, nil).
func LoadPlanFile(path string) (*PlanFile, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}

	var file PlanFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &file); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	default:
		return nil, fmt.Errorf("unsupported plan file format %q (use .toml, .yaml or .yml)", filepath.Ext(path))
	}

	return &file, nil
}

// MergePlans adds the plans of a file to the base catalog. A plan with the
// name of an existing plan replaces it.
func MergePlans(base config.Plans, file *PlanFile) (config.Plans, error) {
	merged := make(config.Plans, len(base))
	for name, plan := range base {
		merged[name] = plan
	}
	if file == nil {
		return merged, nil
	}

	for name, plan := range file.Plans {
		plan.Name = name
		if plan.Templates == nil {
			plan.Templates = map[string]string{}
		}
		for module, template := range config.DefaultTemplates() {
			if plan.Templates[module] == "" {
				plan.Templates[module] = template
			}
		}
		if err := plan.Normalize(); err != nil {
			return nil, err
		}
		if err := plan.Validate(); err != nil {
			return nil, err
		}
		merged[name] = plan
	}
	return merged, nil
}
