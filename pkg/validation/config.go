// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/amountfmt/pkg/constants"
)

// ValidateLogLevel checks a configured or overridden log level. Empty means default.
func ValidateLogLevel(level string) error {
	switch level {
	case "", "debug", "info", "warn", "warning", "error":
		return nil
	}
	return fmt.Errorf("invalid log level: %s", level)
}

// ValidateLogFormat checks the zap encoder name. Empty means default.
func ValidateLogFormat(format string) error {
	switch format {
	case "", "json", "console":
		return nil
	}
	return fmt.Errorf("invalid log format: %s", format)
}

// ValidateCurrency returns the normalized code for s. Empty selects the default currency.
func ValidateCurrency(s string) (constants.CurrencyCode, error) {
	if s == "" {
		return constants.DefaultCurrency, nil
	}
	return constants.ParseCurrencyCode(s)
}
