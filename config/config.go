// Package config provides configuration loading for the ISCED-F harvester.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/EuropeanUniversityFoundation/isced-go/vocabulary/iscedf"
)

// Duration wraps time.Duration so YAML values like "5ms" decode naturally.
type Duration time.Duration

// UnmarshalYAML decodes a duration string such as "5ms" or "30s".
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML encodes the duration in its string form.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config represents the complete harvester configuration.
type Config struct {
	Source  SourceConfig  `yaml:"source"`
	Output  OutputConfig  `yaml:"output"`
	Locales LocalesConfig `yaml:"locales"`
}

// SourceConfig configures the linked-data endpoint access.
type SourceConfig struct {
	// Scheme is the concept scheme resource URI to harvest.
	Scheme string `yaml:"scheme"`
	// Delay is the minimum spacing between fetches (default: 5ms).
	Delay Duration `yaml:"delay"`
	// Timeout is the per-fetch deadline (default: 30s).
	Timeout Duration `yaml:"timeout"`
}

// OutputConfig configures where the artifacts are written.
type OutputConfig struct {
	// Table is the path of the flat lookup table JSON file.
	Table string `yaml:"table"`
	// Locales is the directory receiving the per-language PO catalogs.
	Locales string `yaml:"locales"`
}

// LocalesConfig configures dialect replication of extracted languages.
type LocalesConfig struct {
	// Replicate maps a source language to the dialect codes that receive a
	// verbatim copy of its catalog, e.g. en: [en_GB].
	Replicate map[string][]string `yaml:"replicate"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			Scheme:  iscedf.SchemeURI,
			Delay:   Duration(5 * time.Millisecond),
			Timeout: Duration(30 * time.Second),
		},
		Output: OutputConfig{
			Table:   "data/isced-f.json",
			Locales: "locales",
		},
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Source.Scheme == "" {
		return fmt.Errorf("source.scheme is required")
	}
	if c.Source.Delay < 0 {
		return fmt.Errorf("source.delay must not be negative")
	}
	if c.Source.Timeout <= 0 {
		return fmt.Errorf("source.timeout must be positive")
	}
	if c.Output.Table == "" {
		return fmt.Errorf("output.table is required")
	}
	if c.Output.Locales == "" {
		return fmt.Errorf("output.locales is required")
	}
	return nil
}

// LoadFromFile reads a Config from a YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &config, nil
}

// Merge overlays non-zero fields of other onto c.
func (c *Config) Merge(other *Config) {
	if other.Source.Scheme != "" {
		c.Source.Scheme = other.Source.Scheme
	}
	if other.Source.Delay != 0 {
		c.Source.Delay = other.Source.Delay
	}
	if other.Source.Timeout != 0 {
		c.Source.Timeout = other.Source.Timeout
	}
	if other.Output.Table != "" {
		c.Output.Table = other.Output.Table
	}
	if other.Output.Locales != "" {
		c.Output.Locales = other.Output.Locales
	}
	if other.Locales.Replicate != nil {
		c.Locales.Replicate = other.Locales.Replicate
	}
}
