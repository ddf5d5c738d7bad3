// Package config provides Viper-based hierarchical configuration
// management: defaults, then an optional config file, then SHOPEE_*
// environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Report struct {
		Format      string `mapstructure:"format" yaml:"format"`
		TopProducts int    `mapstructure:"top_products" yaml:"top_products"`
	} `mapstructure:"report" yaml:"report"`

	ABC struct {
		ClassAThreshold float64 `mapstructure:"class_a_threshold" yaml:"class_a_threshold"`
		ClassBThreshold float64 `mapstructure:"class_b_threshold" yaml:"class_b_threshold"`
	} `mapstructure:"abc" yaml:"abc"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.shopee-insights")
	v.AddConfigPath(".shopee-insights")
	v.AddConfigPath(".")

	v.SetEnvPrefix("SHOPEE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Keep going with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("report.format", "json")
	v.SetDefault("report.top_products", 10)

	v.SetDefault("abc.class_a_threshold", 0.80)
	v.SetDefault("abc.class_b_threshold", 0.95)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if config.Report.Format != "json" && config.Report.Format != "yaml" {
		return fmt.Errorf("invalid report format: %s (must be 'json' or 'yaml')", config.Report.Format)
	}

	if config.Report.TopProducts < 1 {
		return fmt.Errorf("report.top_products must be at least 1, got: %d", config.Report.TopProducts)
	}

	a, b := config.ABC.ClassAThreshold, config.ABC.ClassBThreshold
	if a <= 0 || a >= 1 || b <= 0 || b >= 1 {
		return fmt.Errorf("abc thresholds must be between 0 and 1, got: %f and %f", a, b)
	}
	if a >= b {
		return fmt.Errorf("abc.class_a_threshold (%f) must be below abc.class_b_threshold (%f)", a, b)
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
