// Package config defines the CLI configuration and loads it with viper from a
// YAML file plus AMOUNTFMT_* environment overrides.
package config

import (
	"fmt"
	"strings"

	"github.com/iwvelando/amountfmt/pkg/constants"
	"github.com/iwvelando/amountfmt/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for amountfmt.
type Configuration struct {
	Currency string        `yaml:"currency,omitempty" mapstructure:"currency"`
	Logging  LoggingConfig `yaml:"logging,omitempty" mapstructure:"logging"`
	Output   OutputConfig  `yaml:"output,omitempty" mapstructure:"output"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty" mapstructure:"level"`           // debug, info, warn, error
	Format     string `yaml:"format,omitempty" mapstructure:"format"`         // json, console
	OutputFile string `yaml:"outputFile,omitempty" mapstructure:"outputfile"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty" mapstructure:"format"` // pretty, csv, json
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. An empty path loads defaults and environment
// overrides only.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Keys need a default for AutomaticEnv to reach them during Unmarshal.
	v.SetDefault("currency", "")
	v.SetDefault("logging.level", "")
	v.SetDefault("logging.format", "")
	v.SetDefault("logging.outputfile", "")
	v.SetDefault("output.format", "")

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file, %w", err)
		}
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &configuration, nil
}

// CurrencyCode returns the configured currency, or the default when it is
// unset or unsupported.
func (c *Configuration) CurrencyCode() constants.CurrencyCode {
	code, err := validation.ValidateCurrency(c.Currency)
	if err != nil {
		return constants.DefaultCurrency
	}
	return code
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if _, err := validation.ValidateCurrency(c.Currency); err != nil {
		warnings = append(warnings, fmt.Sprintf("%v; using %s", err, constants.DefaultCurrency))
	}

	if c.Output.Format != "" {
		if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
			warnings = append(warnings, fmt.Sprintf("%v; using %s", err, constants.OutputFormatPretty))
		}
	}

	if err := validation.ValidateLogLevel(c.Logging.Level); err != nil {
		warnings = append(warnings, err.Error())
	}
	if err := validation.ValidateLogFormat(c.Logging.Format); err != nil {
		warnings = append(warnings, err.Error())
	}

	return warnings
}
