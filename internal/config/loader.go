package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File is the on-disk YAML configuration. All fields are optional;
// CLI flags always take precedence over file values.
type File struct {
	// Input overrides the default inventory file path.
	Input string `yaml:"input"`

	// Output overrides the default workbook path.
	Output string `yaml:"output"`

	// Format selects the additional summary report ("json" or "markdown").
	Format string `yaml:"format"`

	// History toggles run-history recording. Nil leaves the default.
	History *bool `yaml:"history"`
}

// LoadConfigFile loads tool configuration from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound. Callers
// should handle this error based on whether the config file path was
// explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// Apply overlays file values onto the config. Only non-empty file
// values are applied. Flag precedence is handled by the caller: flags
// are applied after the file, so they win.
func (c *Config) Apply(cf *File) {
	if cf == nil {
		return
	}
	if cf.Input != "" {
		c.InputPath = cf.Input
	}
	if cf.Output != "" {
		c.OutputPath = cf.Output
	}
	if cf.Format != "" {
		c.SummaryFormat = cf.Format
	}
	if cf.History != nil {
		c.SaveHistory = *cf.History
	}
}

// FindConfigFile searches for the configuration file in the following order:
//  1. If configPath is specified, use it directly
//  2. .fleetsheet in the current directory
//  3. .fleetsheet in the user's home directory
//  4. .fleetsheet in the XDG config directory
//
// Returns the path to the configuration file, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	candidates := make([]string, 0, 3)
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, DefaultConfigFile))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, DefaultConfigFile))
	}
	candidates = append(candidates, filepath.Join(XDGConfigDir(), DefaultConfigFile))

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
