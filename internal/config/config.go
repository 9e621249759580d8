package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// FileName is the expected config file name in the working directory.
const FileName = "stocklens.yaml"

// Config represents the top-level stocklens.yaml configuration.
type Config struct {
	API      APIConfig      `yaml:"api"`
	Forecast ForecastConfig `yaml:"forecast"`
	Display  DisplayConfig  `yaml:"display"`
}

// APIConfig locates the backend REST API.
type APIConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// ForecastConfig locates the external prediction service and sets request
// defaults.
type ForecastConfig struct {
	URL        string `yaml:"url"`
	Period     int    `yaml:"period"`     // months to project
	Confidence int    `yaml:"confidence"` // percent
}

// DisplayConfig controls how much the dashboard and analytics views show.
type DisplayConfig struct {
	TopN      int `yaml:"top_n"`
	RangeDays int `yaml:"range_days"`
	Recent    int `yaml:"recent"`
}

// Timeout returns the API timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

// Load reads a stocklens.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new setup.
func Default(baseURL string) *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        baseURL,
			TimeoutSeconds: 10,
		},
		Forecast: ForecastConfig{
			URL:        "http://localhost:8001/forecast",
			Period:     3,
			Confidence: 95,
		},
		Display: DisplayConfig{
			TopN:      10,
			RangeDays: 30,
			Recent:    5,
		},
	}
}
