// Package config handles the global bibtidy configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents configuration stored in ~/.config/bibtidy/config.yml.
type Config struct {
	// Mailto is the contact address sent to Crossref for polite-pool
	// access. The CROSSREF_MAILTO environment variable overrides it.
	Mailto string `yaml:"mailto,omitempty"`
	// APIURL overrides the Crossref works endpoint.
	APIURL string `yaml:"api_url,omitempty"`
	// Rows is the number of candidate records requested per search.
	Rows int `yaml:"rows,omitempty"`
	// CachePath points at the DOI lookup cache database. Empty disables
	// caching.
	CachePath string `yaml:"cache_path,omitempty"`
}

const (
	// ConfigDir is the directory name under XDG_CONFIG_HOME.
	ConfigDir = "bibtidy"
	// ConfigFile is the config file name.
	ConfigFile = "config.yml"
)

// Path returns the path to the global config file. Respects
// XDG_CONFIG_HOME, defaults to ~/.config/bibtidy/config.yml.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir, ConfigFile)
}

// Load reads the global configuration file. A missing file is not an
// error: it yields an empty config. Environment overrides are applied
// either way.
func Load() (*Config, error) {
	return loadFrom(Path())
}

func loadFrom(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config: %w", err)
			}
		}
	}

	if mailto := os.Getenv("CROSSREF_MAILTO"); mailto != "" {
		cfg.Mailto = mailto
	}
	if cfg.CachePath != "" {
		cfg.CachePath = ExpandTilde(cfg.CachePath)
	}
	return cfg, nil
}

// Save writes the configuration, creating the config directory if needed.
func (c *Config) Save() error {
	return c.saveTo(Path())
}

func (c *Config) saveTo(path string) error {
	if path == "" {
		return fmt.Errorf("cannot determine config path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// ExpandTilde expands a leading ~ to the user's home directory.
func ExpandTilde(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
