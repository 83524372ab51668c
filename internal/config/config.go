package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for shipcheck.
type Config struct {
	// Output format (text, json, both)
	Format string `mapstructure:"format"`

	// File name for the exported JSON report
	ReportFile string `mapstructure:"report_file"`

	// Soft cap on files opened per module
	FileCap int `mapstructure:"file_cap"`

	// Modules excluded from the report command
	Skip []string `mapstructure:"skip"`

	// Verbose output
	Verbose bool `mapstructure:"verbose"`

	// Debug mode
	Debug bool `mapstructure:"debug"`
}

// DefaultConfig returns configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Format:     "text",
		ReportFile: "ready-to-ship-report.json",
		FileCap:    40,
		Verbose:    false,
		Debug:      false,
	}
}

// Load loads configuration with the following precedence (lowest to highest):
// 1. Default values
// 2. Config file (~/.shipcheck.yaml or ./shipcheck.yaml)
// 3. Environment variables (SHIPCHECK_*)
// 4. CLI flags (handled by caller)
func Load() (*Config, error) {
	return LoadFromFile("")
}

// LoadFromFile loads configuration from a specific file path.
// If path is empty, it searches for config in standard locations.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("format", defaults.Format)
	v.SetDefault("report_file", defaults.ReportFile)
	v.SetDefault("file_cap", defaults.FileCap)
	v.SetDefault("skip", []string{})
	v.SetDefault("verbose", defaults.Verbose)
	v.SetDefault("debug", defaults.Debug)

	v.SetConfigName("shipcheck")
	v.SetConfigType("yaml")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}

		if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
			v.AddConfigPath(filepath.Join(xdgConfig, "shipcheck"))
		}
	}

	v.SetEnvPrefix("SHIPCHECK")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	validFormats := map[string]bool{
		"text": true,
		"json": true,
		"both": true,
	}
	if !validFormats[c.Format] {
		return fmt.Errorf("invalid format: %s (must be text, json, or both)", c.Format)
	}

	if c.FileCap <= 0 {
		return fmt.Errorf("file_cap must be positive")
	}

	if c.ReportFile == "" {
		return fmt.Errorf("report_file cannot be empty")
	}

	return nil
}

// ConfigPath returns the default config file location.
func ConfigPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".shipcheck.yaml")
	}
	return "shipcheck.yaml"
}

// GenerateSampleConfig generates a sample configuration file content.
func GenerateSampleConfig() string {
	return `# shipcheck configuration
# Save this file as ~/.shipcheck.yaml or ./shipcheck.yaml

# Output format for the report command: text, json, or both.
# json prints JSON to the console; json and both also write the report file.
format: text

# File name for the exported JSON report (written into the project directory)
report_file: ready-to-ship-report.json

# Soft cap on how many source files each module scans
file_cap: 40

# Modules to exclude from aggregate runs
# skip:
#   - database

# Enable verbose output (print every finding)
verbose: false

# Enable debug mode
debug: false
`
}
