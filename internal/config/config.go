// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"cloud-cost/core/types"
	cerrors "cloud-cost/internal/errors"
	"cloud-cost/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version" yaml:"version"`

	// Server contains HTTP server configuration
	Server ServerConfig `json:"server" yaml:"server"`

	// Pricing contains pricing configuration
	Pricing PricingConfig `json:"pricing" yaml:"pricing"`

	// Output contains output configuration
	Output OutputConfig `json:"output" yaml:"output"`

	// Policy points at an optional scoring policy file
	Policy PolicyConfig `json:"policy" yaml:"policy"`

	// Metrics contains metrics configuration
	Metrics MetricsConfig `json:"metrics" yaml:"metrics"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging" yaml:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Address is the listen address
	Address string `json:"address" yaml:"address"`

	ReadTimeoutSeconds  int `json:"read_timeout_seconds" yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds int `json:"write_timeout_seconds" yaml:"write_timeout_seconds"`
}

// PricingConfig contains pricing-related settings
type PricingConfig struct {
	// DefaultCurrency is the default currency
	DefaultCurrency types.Currency `json:"default_currency" yaml:"default_currency"`

	// ProviderA and ProviderB are the compared providers
	ProviderA types.Provider `json:"provider_a" yaml:"provider_a"`
	ProviderB types.Provider `json:"provider_b" yaml:"provider_b"`

	// RegionA and RegionB are used when a request names no region
	RegionA string `json:"region_a" yaml:"region_a"`
	RegionB string `json:"region_b" yaml:"region_b"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format" yaml:"default_format"`

	// NoColor disables ANSI colors
	NoColor bool `json:"no_color" yaml:"no_color"`
}

// PolicyConfig locates the scoring policy
type PolicyConfig struct {
	// File is an HCL policy file; empty uses the built-in policy
	File string `json:"file,omitempty" yaml:"file,omitempty"`
}

// MetricsConfig contains metrics settings
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Server: ServerConfig{
			Address:             ":8080",
			ReadTimeoutSeconds:  15,
			WriteTimeoutSeconds: 30,
		},
		Pricing: PricingConfig{
			DefaultCurrency: types.CurrencyUSD,
			ProviderA:       types.ProviderAWS,
			ProviderB:       types.ProviderGCP,
			RegionA:         "us-east-1",
			RegionB:         "us-central1",
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file. A missing file yields the
// defaults. Files ending in .yaml or .yml are YAML, anything else JSON.
// Environment variables in the file are expanded, then CLOUD_COST_*
// overrides are applied.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, cerrors.Config("failed to read config file", err).WithContext("path", path)
		}
	} else {
		data = []byte(os.ExpandEnv(string(data)))
		if isYAML(path) {
			err = yaml.Unmarshal(data, cfg)
		} else {
			err = json.Unmarshal(data, cfg)
		}
		if err != nil {
			return nil, cerrors.Config("failed to parse config file", err).WithContext("path", path)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("CLOUD_COST_ADDRESS"); v != "" {
		c.Server.Address = v
	}
	if v := os.Getenv("CLOUD_COST_REGION_A"); v != "" {
		c.Pricing.RegionA = v
	}
	if v := os.Getenv("CLOUD_COST_REGION_B"); v != "" {
		c.Pricing.RegionB = v
	}
	if v := os.Getenv("CLOUD_COST_POLICY_FILE"); v != "" {
		c.Policy.File = v
	}
	if v := os.Getenv("CLOUD_COST_FORMAT"); v != "" {
		c.Output.DefaultFormat = v
	}
	if v := os.Getenv("CLOUD_COST_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Address == "" {
		return cerrors.Validation("server.address", "is required")
	}
	if c.Pricing.DefaultCurrency == "" {
		return cerrors.Validation("pricing.default_currency", "is required")
	}
	if !c.Pricing.ProviderA.IsValid() {
		return cerrors.Validation("pricing.provider_a", "unknown provider %q", c.Pricing.ProviderA)
	}
	if !c.Pricing.ProviderB.IsValid() {
		return cerrors.Validation("pricing.provider_b", "unknown provider %q", c.Pricing.ProviderB)
	}
	if c.Pricing.ProviderA == c.Pricing.ProviderB {
		return cerrors.Validation("pricing.provider_b", "must differ from provider_a")
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return cerrors.Validation("metrics.path", "must start with /, got %q", c.Metrics.Path)
	}
	return nil
}

// Save saves configuration to a file, as YAML or JSON by extension
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
