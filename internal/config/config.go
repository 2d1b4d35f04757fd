package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Analysis AnalysisConfig `yaml:"analysis" envconfig:"ANALYSIS"`
	Paths    PathsConfig    `yaml:"paths" envconfig:"PATHS"`
}

// LoggingConfig contains logging configuration.
// No default tags here: defaults come from Default() so that config file
// values outrank them.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Format   string `yaml:"format" envconfig:"FORMAT"`
	Output   string `yaml:"output" envconfig:"OUTPUT"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// AnalysisConfig contains the tunable knobs of the analysis stages
type AnalysisConfig struct {
	PartnerColumn string `yaml:"partner_column" envconfig:"PARTNER_COLUMN"`
	ListSeparator string `yaml:"list_separator" envconfig:"LIST_SEPARATOR"`
	TopSectors    int    `yaml:"top_sectors" envconfig:"TOP_SECTORS"`
	TopCompanies  int    `yaml:"top_companies" envconfig:"TOP_COMPANIES"`
	FeeBins       int    `yaml:"fee_bins" envconfig:"FEE_BINS"`
	ChartDPI      int    `yaml:"chart_dpi" envconfig:"CHART_DPI"`
}

// PathsConfig contains file system paths configuration
type PathsConfig struct {
	ExecutableDir string `yaml:"executable_dir" envconfig:"EXECUTABLE_DIR"`
	DataDir       string `yaml:"data_dir" envconfig:"DATA_DIR"`
	LogsDir       string `yaml:"logs_dir" envconfig:"LOGS_DIR"`
}

// Load loads configuration from environment variables and config file.
// Precedence: environment variables, then config file, then built-in
// defaults.
func Load() (*Config, error) {
	var cfg Config

	// Load from environment variables first
	if err := envconfig.Process("PARTNERSCOPE", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	// Load from config file if exists
	configFile := getConfigFilePath()
	if configFile != "" {
		fileConfig, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileConfig, cfg)
	}

	// Built-in defaults fill whatever neither env nor file set
	cfg = mergeConfigs(*Default(), cfg)

	// Validate configuration
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs merges file config with env config (env takes precedence)
func mergeConfigs(fileConfig, envConfig Config) Config {
	if envConfig.Logging.Level == "" {
		envConfig.Logging.Level = fileConfig.Logging.Level
	}
	if envConfig.Logging.Output == "" {
		envConfig.Logging.Output = fileConfig.Logging.Output
	}
	if envConfig.Logging.FilePath == "" {
		envConfig.Logging.FilePath = fileConfig.Logging.FilePath
	}
	if envConfig.Analysis.PartnerColumn == "" {
		envConfig.Analysis.PartnerColumn = fileConfig.Analysis.PartnerColumn
	}
	if envConfig.Analysis.ListSeparator == "" {
		envConfig.Analysis.ListSeparator = fileConfig.Analysis.ListSeparator
	}
	if envConfig.Analysis.TopSectors == 0 {
		envConfig.Analysis.TopSectors = fileConfig.Analysis.TopSectors
	}
	if envConfig.Analysis.TopCompanies == 0 {
		envConfig.Analysis.TopCompanies = fileConfig.Analysis.TopCompanies
	}
	if envConfig.Analysis.FeeBins == 0 {
		envConfig.Analysis.FeeBins = fileConfig.Analysis.FeeBins
	}
	if envConfig.Analysis.ChartDPI == 0 {
		envConfig.Analysis.ChartDPI = fileConfig.Analysis.ChartDPI
	}
	if envConfig.Paths.DataDir == "" {
		envConfig.Paths.DataDir = fileConfig.Paths.DataDir
	}
	if envConfig.Paths.LogsDir == "" {
		envConfig.Paths.LogsDir = fileConfig.Paths.LogsDir
	}

	return envConfig
}

// validate validates the configuration
func (c *Config) validate() error {
	if c.Analysis.PartnerColumn == "" {
		return fmt.Errorf("partner column must not be empty")
	}

	if c.Analysis.ListSeparator == "" {
		c.Analysis.ListSeparator = ","
	}

	if c.Analysis.TopSectors <= 0 {
		return fmt.Errorf("invalid top sectors count: %d", c.Analysis.TopSectors)
	}

	if c.Analysis.TopCompanies <= 0 {
		return fmt.Errorf("invalid top companies count: %d", c.Analysis.TopCompanies)
	}

	if c.Analysis.FeeBins <= 0 {
		return fmt.Errorf("invalid fee histogram bin count: %d", c.Analysis.FeeBins)
	}

	if c.Analysis.ChartDPI <= 0 {
		return fmt.Errorf("invalid chart DPI: %d", c.Analysis.ChartDPI)
	}

	if c.Logging.Format != "json" {
		// Structured output only; anything else falls back to JSON
		c.Logging.Format = "json"
	}

	if c.Logging.Output != "console" && c.Logging.Output != "file" && c.Logging.Output != "both" {
		c.Logging.Output = "console"
	}

	if c.Logging.FilePath == "" {
		c.Logging.FilePath = "logs/analyzer.log"
	}

	return nil
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	// Check for config file in common locations
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
		"../configs/config.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return "" // No config file found, use env vars only
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: "logs/analyzer.log",
		},
		Analysis: AnalysisConfig{
			PartnerColumn: "Corporate_Partners",
			ListSeparator: ",",
			TopSectors:    15,
			TopCompanies:  15,
			FeeBins:       15,
			ChartDPI:      300,
		},
		Paths: PathsConfig{
			DataDir: "data",
			LogsDir: "logs",
		},
	}
}
