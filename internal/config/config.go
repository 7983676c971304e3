// Package config loads qlint configuration from config files, environment
// variables and flags, in viper's precedence order.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config represents the qlint configuration.
type Config struct {
	Root     string   `mapstructure:"root"`
	Patterns []string `mapstructure:"patterns"`
	Exclude  []string `mapstructure:"exclude"`
	Format   string   `mapstructure:"format"`
	Output   string   `mapstructure:"output"`
	FailOn   string   `mapstructure:"failOn"`
	Quiet    bool     `mapstructure:"quiet"`
	Verbose  bool     `mapstructure:"verbose"`

	Baseline BaselineConfig `mapstructure:"baseline"`
	Schemas  SchemaConfig   `mapstructure:"schemas"`
}

// BaselineConfig contains baseline configuration.
type BaselineConfig struct {
	Path string `mapstructure:"path"`
}

// SchemaConfig contains boundary schema configuration.
type SchemaConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// ConfigFiles are the recognized config file names, tried in order.
var ConfigFiles = []string{".qlintrc.json", ".qlintrc.yaml", ".qlintrc.yml"}

// LoadConfig loads configuration from config files, QLINT_* environment
// variables and the already-bound flags. rootPath, when non-empty,
// overrides the configured content root.
func LoadConfig(rootPath string) (*Config, error) {
	viper.SetDefault("root", "")
	viper.SetDefault("format", "console")
	viper.SetDefault("failOn", "error")
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("baseline.path", ".qlint-baseline.json")
	viper.SetDefault("schemas.enabled", true)

	for _, path := range ConfigFiles {
		if _, err := os.Stat(path); err == nil {
			viper.SetConfigFile(path)
			if err := viper.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file %s: %w", path, err)
			}
			break
		}
	}

	viper.SetEnvPrefix("QLINT")
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if rootPath != "" {
		config.Root = rootPath
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}

func validateConfig(config *Config) error {
	switch config.Format {
	case "console", "json", "markdown", "text":
	default:
		return fmt.Errorf("invalid format: %s. Must be 'console', 'json', 'markdown', or 'text'", config.Format)
	}

	switch config.FailOn {
	case "critical", "error", "warning":
	default:
		return fmt.Errorf("invalid fail-on level: %s. Must be 'critical', 'error', or 'warning'", config.FailOn)
	}
	return nil
}
