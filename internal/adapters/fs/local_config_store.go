package fs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/trebuchet-org/osx-upgrade/internal/domain"
	"github.com/trebuchet-org/osx-upgrade/internal/domain/config"
	"github.com/trebuchet-org/osx-upgrade/internal/usecase"
)

// LocalConfigFile is the defaults file inside the data directory.
// Viper reads the same file at startup.
const LocalConfigFile = "config.json"

// LocalConfigStoreAdapter keeps the project defaults in DataDir/config.json
type LocalConfigStoreAdapter struct {
	path   string
	writer *FileWriterAdapter
}

// NewLocalConfigStoreAdapter creates a store rooted at the runtime data dir
func NewLocalConfigStoreAdapter(cfg *config.RuntimeConfig, writer *FileWriterAdapter) *LocalConfigStoreAdapter {
	return &LocalConfigStoreAdapter{
		path:   filepath.Join(cfg.DataDir, LocalConfigFile),
		writer: writer,
	}
}

func (s *LocalConfigStoreAdapter) Exists() bool {
	info, err := os.Stat(s.path)
	return err == nil && !info.IsDir()
}

// Load returns an empty config when nothing has been saved yet
func (s *LocalConfigStoreAdapter) Load(ctx context.Context) (*domain.LocalConfig, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return &domain.LocalConfig{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	local := &domain.LocalConfig{}
	if err := json.Unmarshal(data, local); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", s.path, err)
	}
	return local, nil
}

func (s *LocalConfigStoreAdapter) Save(ctx context.Context, local *domain.LocalConfig) error {
	data, err := json.MarshalIndent(local, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return s.writer.WriteFile(ctx, s.path, append(data, '\n'))
}

func (s *LocalConfigStoreAdapter) GetPath() string {
	return s.path
}

var _ usecase.LocalConfigStore = (*LocalConfigStoreAdapter)(nil)
