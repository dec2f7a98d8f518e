// Package config provides configuration for the roadnav binary.
//
// Config file locations (priority order):
//  1. $ROADNAV_CONFIG
//  2. ./roadnav.yaml
//  3. ~/.config/roadnav/config.yaml
//
// A missing file is not an error: defaults apply (CSV source at
// ./nodes.csv, SVG written to ./route.svg).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names for Config.Source.
const (
	SourceCSV    = "csv"
	SourceYAML   = "yaml"
	SourceSQLite = "sqlite"
)

// Config selects the node-record source and output locations.
type Config struct {
	// Source is the storage backend: "csv", "yaml" or "sqlite".
	Source string `yaml:"source"`

	// DataPath locates the node data (file or database).
	DataPath string `yaml:"data_path"`

	// RenderPath is where the SVG route overlay is written.
	RenderPath string `yaml:"render_path"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig() *Config {
	return &Config{
		Source:     SourceCSV,
		DataPath:   "nodes.csv",
		RenderPath: "route.svg",
		LogLevel:   "info",
	}
}

// FindConfigPath returns the first existing config file per the
// package's priority order, or "" if none exists.
func FindConfigPath() string {
	candidates := []string{os.Getenv("ROADNAV_CONFIG"), "roadnav.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "roadnav", "config.yaml"))
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// Load finds and loads the config file, or returns defaults if none
// found. The second return is the path actually used ("" for defaults).
func Load() (*Config, string, error) {
	path := FindConfigPath()
	if path == "" {
		return DefaultConfig(), "", nil
	}
	cfg, err := LoadFromPath(path)

	return cfg, path, err
}

// LoadFromPath loads config from a specific path.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

// Validate rejects unknown source names.
func (c *Config) Validate() error {
	switch c.Source {
	case SourceCSV, SourceYAML, SourceSQLite:
		return nil
	default:
		return fmt.Errorf("config: unknown source %q", c.Source)
	}
}

// Save writes the config to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}

	return nil
}

// applyDefaults fills unset fields from DefaultConfig.
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Source == "" {
		c.Source = def.Source
	}
	if c.DataPath == "" {
		c.DataPath = def.DataPath
	}
	if c.RenderPath == "" {
		c.RenderPath = def.RenderPath
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
}
