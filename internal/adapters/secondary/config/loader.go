package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/fredcamaral/pptx2slidev/internal/domain/entities"
	"github.com/fredcamaral/pptx2slidev/internal/domain/ports"
)

// TOMLLoader implements the ConfigLoader port using TOML files.
type TOMLLoader struct {
	localName string
}

// NewTOMLLoader creates a new TOML configuration loader.
func NewTOMLLoader() *TOMLLoader {
	return &TOMLLoader{localName: "pptx2slidev.toml"}
}

// Load returns the effective configuration for a run: the defaults,
// with any fields set in dir's local config file layered on top. The
// local file is optional.
func (l *TOMLLoader) Load(ctx context.Context, dir string) (*entities.Config, error) {
	cfg := GetDefaultConfig()

	localPath := filepath.Join(dir, l.localName)
	if _, err := os.Stat(localPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(localPath) // #nosec G304 - path is the run's working directory config
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", localPath, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing TOML from %s: %w", localPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config in %s: %w", localPath, err)
	}

	return cfg, nil
}

// GetLocalPath returns the path of the local configuration file for a
// directory.
func (l *TOMLLoader) GetLocalPath(dir string) string {
	return filepath.Join(dir, l.localName)
}

// Ensure TOMLLoader implements ports.ConfigLoader.
var _ ports.ConfigLoader = (*TOMLLoader)(nil)
