// Package config loads the carestore configuration file.
//
// The file is optional YAML; a missing file yields defaults so the CLI works
// out of the box. The store itself never reads configuration - it takes an
// explicit path and options.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults applied when the config file is absent or a field is unset.
const (
	DefaultDBPath        = "carestore.db"
	DefaultBusyTimeoutMS = 5000
)

// Config holds the settings the CLI passes to the store.
type Config struct {
	// DBPath is the SQLite database file.
	DBPath string `yaml:"db_path"`

	// BusyTimeoutMS is the SQLite busy_timeout in milliseconds.
	BusyTimeoutMS int `yaml:"busy_timeout_ms"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		DBPath:        DefaultDBPath,
		BusyTimeoutMS: DefaultBusyTimeoutMS,
	}
}

// BusyTimeout returns the busy timeout as a duration.
func (c Config) BusyTimeout() time.Duration {
	return time.Duration(c.BusyTimeoutMS) * time.Millisecond
}

// Load reads the YAML config at path. A missing file is not an error and
// yields Default(); a malformed file is an error. Unset fields fall back to
// their defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBPath
	}
	if cfg.BusyTimeoutMS <= 0 {
		cfg.BusyTimeoutMS = DefaultBusyTimeoutMS
	}

	return cfg, nil
}
