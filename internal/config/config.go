// Package config loads the aiswe configuration from .aiswe/config.json,
// with environment-variable overrides layered on top.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"
)

// Config represents the complete aiswe configuration
type Config struct {
	Version     int            `json:"version" mapstructure:"version"`
	CatalogPath string         `json:"catalogPath,omitempty" mapstructure:"catalogPath"`
	Logging     LoggingConfig  `json:"logging" mapstructure:"logging"`
	Analysis    AnalysisConfig `json:"analysis" mapstructure:"analysis"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

// AnalysisConfig tunes default query parameters.
type AnalysisConfig struct {
	// QuickWinMonths is the default quick-win deployment window.
	QuickWinMonths int `json:"quickWinMonths" mapstructure:"quickWinMonths"`
	// TopChallenges caps the recommendation lists in benchmark output.
	TopChallenges int `json:"topChallenges" mapstructure:"topChallenges"`
}

// DefaultConfig returns the default configuration. CatalogPath empty means
// the built-in catalog.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
		Analysis: AnalysisConfig{
			QuickWinMonths: 12,
			TopChallenges:  3,
		},
	}
}

// LoadConfig loads configuration from <root>/.aiswe/config.json, falling
// back to defaults when no file exists. Env overrides are applied last and
// the merged result is validated.
func LoadConfig(root string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(root, ".aiswe"))

	cfg := DefaultConfig()
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	} else {
		if err := v.Unmarshal(cfg); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides layers AISWE_* environment variables over the config.
// Invalid values are ignored rather than fatal.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("AISWE_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("AISWE_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("AISWE_CATALOG_PATH"); v != "" {
		cfg.CatalogPath = v
	}
	if v := os.Getenv("AISWE_QUICK_WIN_MONTHS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Analysis.QuickWinMonths = n
		}
	}
}

// Save writes the configuration to <root>/.aiswe/config.json
func (c *Config) Save(root string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(root, ".aiswe", "config.json"), data, 0644)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Version != 1 {
		return &ConfigError{Field: "version", Message: "unsupported config version"}
	}
	if c.Analysis.QuickWinMonths <= 0 {
		return &ConfigError{Field: "analysis.quickWinMonths", Message: "must be positive"}
	}
	if c.Analysis.TopChallenges <= 0 {
		return &ConfigError{Field: "analysis.topChallenges", Message: "must be positive"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
