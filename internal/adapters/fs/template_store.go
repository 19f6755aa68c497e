package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/trebuchet-org/osx-upgrade/internal/domain/config"
	"github.com/trebuchet-org/osx-upgrade/internal/usecase"
)

// NetworkPlaceholder is replaced with the target network in every template
const NetworkPlaceholder = "<NETWORK>"

// TemplateStoreAdapter loads module configuration templates from a directory
type TemplateStoreAdapter struct {
	dir string
}

// NewTemplateStoreAdapter creates a template store rooted at the configured template directory
func NewTemplateStoreAdapter(cfg *config.RuntimeConfig) *TemplateStoreAdapter {
	return &TemplateStoreAdapter{dir: cfg.TemplateDir}
}

// LoadTemplate reads the template, substitutes the network and parses it as a JSON object
func (s *TemplateStoreAdapter) LoadTemplate(ctx context.Context, name string, network string) (map[string]any, error) {
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.dir, name)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}

	substituted := strings.ReplaceAll(string(raw), NetworkPlaceholder, network)

	var template map[string]any
	if err := json.Unmarshal([]byte(substituted), &template); err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", path, err)
	}
	if template == nil {
		return nil, fmt.Errorf("template %s is not a JSON object", path)
	}
	return template, nil
}

// Ensure TemplateStoreAdapter implements TemplateRepository
var _ usecase.TemplateRepository = (*TemplateStoreAdapter)(nil)
