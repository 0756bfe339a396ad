// Package config loads the CLI configuration with viper: built-in defaults,
// an optional YAML file and AHP_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/ahp/priority"
)

// EnvPrefix is prepended to every environment override,
// e.g. AHP_ANALYSIS_THRESHOLD for analysis.threshold.
const EnvPrefix = "AHP"

// Config represents the complete CLI configuration
type Config struct {
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Output   OutputConfig   `mapstructure:"output"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// AnalysisConfig controls the consistency verdict
type AnalysisConfig struct {
	// Threshold is the CR below which a matrix is consistent (default: 0.10)
	Threshold float64 `mapstructure:"threshold"`
	// RandomIndexFallback is the RI used for matrices larger than 15 (default: 1.59)
	RandomIndexFallback float64 `mapstructure:"random_index_fallback"`
}

// OutputConfig controls how results are printed
type OutputConfig struct {
	// Format is "text" or "json"
	Format string `mapstructure:"format"`
	// Precision is the number of decimals in text output (0..12)
	Precision int `mapstructure:"precision"`
}

// LoggingConfig controls diagnostic logging on stderr
type LoggingConfig struct {
	// Level is one of "debug", "info", "warn", "error"
	Level string `mapstructure:"level"`
}

// Default returns a Config with the built-in defaults.
func Default() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			Threshold:           priority.DefaultThreshold,
			RandomIndexFallback: priority.DefaultRandomIndexFallback,
		},
		Output: OutputConfig{
			Format:    "text",
			Precision: 4,
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// SetDefaults registers every default on v so that keys resolve even without
// a config file.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("analysis.threshold", d.Analysis.Threshold)
	v.SetDefault("analysis.random_index_fallback", d.Analysis.RandomIndexFallback)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.precision", d.Output.Precision)
	v.SetDefault("logging.level", d.Logging.Level)
}

// New returns a viper instance wired with defaults and environment overrides.
// When file is empty the default search path is used and a missing file is
// not an error.
func New(file string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(Dir())
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	// analysis.threshold -> AHP_ANALYSIS_THRESHOLD
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	return v, nil
}

// Load unmarshals and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, errs
	}

	return &cfg, nil
}

// Dir returns the user's config directory for ahp.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "ahp")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	return filepath.Join(home, ".config", "ahp")
}

// PriorityOptions translates the analysis section into engine options.
// The config must have passed Validate.
func (c *Config) PriorityOptions() []priority.Option {
	return []priority.Option{
		priority.WithThreshold(c.Analysis.Threshold),
		priority.WithRandomIndexFallback(c.Analysis.RandomIndexFallback),
	}
}

// LogLevel returns the slog level named by Logging.Level.
func (c *Config) LogLevel() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		return slog.LevelWarn
	}

	return l
}
