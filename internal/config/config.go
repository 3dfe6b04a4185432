package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Backend names accepted for Config.Store.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config controls where fitlog keeps its data and which store backend
// serves it.
type Config struct {
	DataDir string `yaml:"data_dir"`
	Store   string `yaml:"store"`
}

// Load reads config from the YAML file at path, then applies environment
// variable overrides (FITLOG_DATA_DIR, FITLOG_STORE). A missing file is
// not an error (defaults apply); a file that fails to parse is.
func Load(path string) (*Config, error) {
	cfg := &Config{Store: BackendJSON}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DataDir = filepath.Join(home, ".fitlog")
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// ApplyOverrides applies non-empty command-line values over the loaded
// config. Flags win over both the config file and environment variables.
func (c *Config) ApplyOverrides(dataDir, storeBackend string) error {
	if dataDir != "" {
		c.DataDir = dataDir
	}
	if storeBackend != "" {
		c.Store = storeBackend
	}
	return c.validate()
}

// DefaultPath returns the default config file location, ~/.fitlog/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".fitlog", "config.yaml"), nil
}

// WorkoutFile returns the path of the JSON workout log.
func (c *Config) WorkoutFile() string {
	return filepath.Join(c.DataDir, "workouts.json")
}

// DBFile returns the path of the SQLite database.
func (c *Config) DBFile() string {
	return filepath.Join(c.DataDir, "fitlog.db")
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FITLOG_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("FITLOG_STORE"); v != "" {
		cfg.Store = v
	}
}

func (c *Config) validate() error {
	switch c.Store {
	case BackendJSON, BackendSQLite:
		return nil
	default:
		return fmt.Errorf("unknown store backend %q (expected %q or %q)", c.Store, BackendJSON, BackendSQLite)
	}
}
