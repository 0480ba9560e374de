package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	apperrors "salescli/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// PathsConfig contains the input and output file locations. The defaults
// reproduce the fixed paths the pipeline was written against, so running with
// no configuration at all behaves identically.
type PathsConfig struct {
	InputFile  string `yaml:"input_file" envconfig:"INPUT_FILE"`
	OutputFile string `yaml:"output_file" envconfig:"OUTPUT_FILE"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Format   string `yaml:"format" envconfig:"FORMAT"`
	Output   string `yaml:"output" envconfig:"OUTPUT"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// ConfigFile is the optional YAML overlay looked for in the working directory.
const ConfigFile = "config.yaml"

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Paths: PathsConfig{
			InputFile:  "data/dirty_cafe_sales.csv",
			OutputFile: "data/cleaned_cafe_sales.csv",
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "stdout",
			FilePath: "logs/cleaner.log",
		},
	}
}

// Load builds the configuration in three layers: built-in defaults, an
// optional config.yaml in the working directory, then SALES_* environment
// variables on top.
func Load() (*Config, error) {
	cfg := Default()

	if data, err := os.ReadFile(ConfigFile); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, apperrors.NewConfigError("failed to parse "+ConfigFile, err)
		}
	}

	if err := envconfig.Process("SALES", &cfg); err != nil {
		return nil, apperrors.NewConfigError("failed to load config from environment", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Paths.InputFile == "" {
		return apperrors.NewConfigError("input file path must not be empty", nil)
	}
	if c.Paths.OutputFile == "" {
		return apperrors.NewConfigError("output file path must not be empty", nil)
	}
	switch c.Logging.Format {
	case "json", "text":
	default:
		return apperrors.NewConfigError("logging format must be json or text, got "+c.Logging.Format, nil)
	}
	return nil
}
