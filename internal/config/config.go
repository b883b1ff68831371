// Package config loads application configuration from environment
// variables, with an optional YAML file underlay.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	// APIBaseURL is the base URL of the review API backend, e.g.
	// "http://localhost:5000". Required.
	APIBaseURL string
	// ListenAddr is the dashboard's HTTP listen address.
	ListenAddr string
	// DBPath is the SQLite file holding the reviewer profile.
	DBPath string
	// RequestTimeout bounds every request to the review API.
	RequestTimeout time.Duration
}

// fileConfig mirrors Config for the optional YAML file. Env vars override
// file values.
type fileConfig struct {
	APIBaseURL     string `yaml:"api_url"`
	ListenAddr     string `yaml:"listen_addr"`
	DBPath         string `yaml:"db_path"`
	RequestTimeout string `yaml:"request_timeout"`
}

// Load reads configuration and returns a validated Config. Resolution
// order: built-in defaults, then the YAML file named by EVALDASH_CONFIG
// (if set), then EVALDASH_* environment variables. EVALDASH_API_URL is the
// only required setting.
func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr:     "127.0.0.1:8080",
		DBPath:         "evaldash.db",
		RequestTimeout: 30 * time.Second,
	}

	if path, ok := os.LookupEnv("EVALDASH_CONFIG"); ok && path != "" {
		if err := applyFile(cfg, path); err != nil {
			return nil, err
		}
	}

	if v, ok := os.LookupEnv("EVALDASH_API_URL"); ok {
		cfg.APIBaseURL = v
	}
	if v, ok := os.LookupEnv("EVALDASH_LISTEN_ADDR"); ok {
		cfg.ListenAddr = v
	}
	if v, ok := os.LookupEnv("EVALDASH_DB_PATH"); ok {
		cfg.DBPath = v
	}
	if v, ok := os.LookupEnv("EVALDASH_REQUEST_TIMEOUT"); ok {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("EVALDASH_REQUEST_TIMEOUT has invalid duration %q: %w", v, err)
		}
		cfg.RequestTimeout = parsed
	}

	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("EVALDASH_API_URL is required (base URL of the review API)")
	}

	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.APIBaseURL != "" {
		cfg.APIBaseURL = fc.APIBaseURL
	}
	if fc.ListenAddr != "" {
		cfg.ListenAddr = fc.ListenAddr
	}
	if fc.DBPath != "" {
		cfg.DBPath = fc.DBPath
	}
	if fc.RequestTimeout != "" {
		parsed, err := time.ParseDuration(fc.RequestTimeout)
		if err != nil {
			return fmt.Errorf("config file %s: invalid request_timeout %q: %w", path, fc.RequestTimeout, err)
		}
		cfg.RequestTimeout = parsed
	}

	return nil
}
