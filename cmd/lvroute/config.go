package main

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment variables consulted when the matching flag is not set.
const (
	envConfig      = "LVROUTE_CONFIG"
	envLogLevel    = "LVROUTE_LOG_LEVEL"
	envLogFormat   = "LVROUTE_LOG_FORMAT"
	envAddr        = "LVROUTE_ADDR"
	envConcurrency = "LVROUTE_CONCURRENCY"
)

// Config holds process settings. Precedence: flag, environment, config
// file, default.
type Config struct {
	Addr        string `yaml:"addr"`
	LogLevel    string `yaml:"log_level"`
	LogFormat   string `yaml:"log_format"`
	Concurrency int    `yaml:"concurrency"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Addr:        ":8080",
		LogLevel:    "info",
		LogFormat:   "text",
		Concurrency: 8,
	}
}

// loadConfig overlays the YAML file at path on the defaults. An empty path
// returns the defaults.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Concurrency <= 0 {
		return cfg, fmt.Errorf("config %s: concurrency must be positive, got %d", path, cfg.Concurrency)
	}

	return cfg, nil
}

// applyEnv overrides cfg fields from LVROUTE_* variables.
func applyEnv(cfg *Config) error {
	if v := os.Getenv(envLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(envLogFormat); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv(envAddr); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv(envConcurrency); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("%s: want a positive integer, got %q", envConcurrency, v)
		}
		cfg.Concurrency = n
	}

	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
