package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is read when neither CONFIG_PATH nor an explicit path is given.
const DefaultPath = "./config.yaml"

// Load reads configuration from CONFIG_PATH (fallback DefaultPath) and the
// environment. See LoadFile.
func Load() (*Config, error) {
	return LoadFile(os.Getenv("CONFIG_PATH"))
}

// LoadFile reads configuration from a YAML file and environment variables,
// then validates it. Priority: ENV > YAML > env-default tags.
//
// An empty path means DefaultPath, which may be missing: the configuration
// then comes from ENV and defaults only. A non-empty path must exist.
func LoadFile(path string) (*Config, error) {
	var cfg Config

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit || !errors.Is(statErr, fs.ErrNotExist):
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}
