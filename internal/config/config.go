// Package config loads huntboard settings from ~/.huntboard/config.yaml
// with environment overrides. A missing file is not an error; every
// field has a usable default.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults.
const (
	DefaultAPIURL         = "http://localhost:8081"
	DefaultMinScore       = 60
	DefaultRefreshMinutes = 15
)

// Config is the huntboard runtime configuration.
type Config struct {
	// APIURL is the tracker API base origin.
	APIURL string `yaml:"api_url"`
	// MinScore is the initial scraped-job match score filter.
	MinScore int `yaml:"min_score"`
	// RefreshMinutes is the dashboard auto-refresh interval.
	RefreshMinutes int `yaml:"refresh_minutes"`
}

// DefaultPath returns ~/.huntboard/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".huntboard", "config.yaml"), nil
}

// Load reads the config at path, applying defaults for absent fields and
// the HUNTBOARD_API_URL environment override on top.
func Load(path string) (Config, error) {
	cfg := Config{
		APIURL:         DefaultAPIURL,
		MinScore:       DefaultMinScore,
		RefreshMinutes: DefaultRefreshMinutes,
	}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// No file: defaults + env.
	case err != nil:
		return cfg, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if url := os.Getenv("HUNTBOARD_API_URL"); url != "" {
		cfg.APIURL = url
	}
	if cfg.MinScore < 0 || cfg.MinScore > 100 {
		return cfg, fmt.Errorf("min_score %d out of range 0-100", cfg.MinScore)
	}
	if cfg.RefreshMinutes <= 0 {
		cfg.RefreshMinutes = DefaultRefreshMinutes
	}
	return cfg, nil
}
