// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/amountfmt/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON:
		return nil
	}
	return fmt.Errorf("expected output format of %s, %s or %s, got %s",
		constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON, format)
}

// ValidateMode checks the CLI conversion mode.
func ValidateMode(mode string) error {
	switch mode {
	case constants.ModeFormat, constants.ModeParse, constants.ModeCurrency:
		return nil
	}
	return fmt.Errorf("expected mode of %s, %s or %s, got %s",
		constants.ModeFormat, constants.ModeParse, constants.ModeCurrency, mode)
}
