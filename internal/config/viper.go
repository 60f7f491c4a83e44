// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"strings"

	"fjacquet/payment-strategy/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by the configuration.
const EnvPrefix = "PAYMENT"

// Supported output formats for listing payment methods.
const (
	ListFormatText = "text"
	ListFormatCSV  = "csv"
	ListFormatYAML = "yaml"
)

// LogConfig controls the application logger.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// PaymentConfig controls strategy selection and listing.
type PaymentConfig struct {
	// DefaultMethod is used when no method is given on the command line.
	// Empty means no strategy is selected.
	DefaultMethod string `mapstructure:"default_method" yaml:"default_method"`
	ListFormat    string `mapstructure:"list_format" yaml:"list_format"`
}

// Config represents the complete application configuration
type Config struct {
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
	Payment PaymentConfig `mapstructure:"payment" yaml:"payment"`
}

// InitializeConfig loads configuration from defaults, the first config.yaml
// found in the standard locations, and PAYMENT_* environment variables.
func InitializeConfig() (*Config, error) {
	return LoadConfig("")
}

// LoadConfig is InitializeConfig with an explicit config file. An empty path
// searches the standard locations; a missing file there is not an error,
// but a missing explicit file is.
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.payment-strategy")
		v.AddConfigPath(".payment-strategy")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
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

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Log:     LogConfig{Level: "info", Format: "text"},
		Payment: PaymentConfig{DefaultMethod: "", ListFormat: ListFormatText},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)

	v.SetDefault("payment.default_method", d.Payment.DefaultMethod)
	v.SetDefault("payment.list_format", d.Payment.ListFormat)
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	return validateConfig(c)
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if err := ValidateListFormat(config.Payment.ListFormat); err != nil {
		return err
	}

	return nil
}

// ValidateListFormat reports whether format is a supported listing format.
func ValidateListFormat(format string) error {
	switch format {
	case ListFormatText, ListFormatCSV, ListFormatYAML:
		return nil
	default:
		return fmt.Errorf("invalid list format: %s (must be 'text', 'csv' or 'yaml')", format)
	}
}

// ConfigureLoggingFromConfig builds the application logger from config.
func ConfigureLoggingFromConfig(config *Config) logging.Logger {
	return logging.NewLogrusAdapter(config.Log.Level, config.Log.Format)
}
