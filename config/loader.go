package config

import (
	"log/slog"
	"os"
)

// Loader handles configuration loading with layered precedence.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load loads configuration with layered precedence:
// 1. Default config
// 2. Config file at path, if path is non-empty
func (l *Loader) Load(path string) (*Config, error) {
	config := DefaultConfig()

	if path != "" {
		fileConfig, err := LoadFromFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				l.logger.Warn("Config file not found, using defaults", slog.String("path", path))
			} else {
				return nil, err
			}
		} else {
			l.logger.Debug("Loaded config", slog.String("path", path))
			config.Merge(fileConfig)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}
