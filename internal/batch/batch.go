// Package batch converts lists of values for the command line tool.
package batch

import (
	"strings"

	"github.com/iwvelando/amountfmt/pkg/constants"
	"github.com/iwvelando/amountfmt/pkg/format"
	"github.com/iwvelando/amountfmt/pkg/output"
	"github.com/shopspring/decimal"
)

// Notes attached to rows whose output differs from what a reader might expect.
const (
	NoteEmpty           = "no digits"
	NoteFractionDropped = "fraction dropped"
	NoteInvalidAmount   = "invalid amount"
)

// Convert applies mode to every value. Modes are checked by the caller; an
// unknown mode yields rows that echo their input.
func Convert(mode string, code constants.CurrencyCode, values []string) output.Result {
	result := output.Result{
		Mode:     mode,
		Currency: code,
		Rows:     make([]output.Row, 0, len(values)),
	}
	for _, value := range values {
		result.Rows = append(result.Rows, convertOne(mode, code, value))
	}
	return result
}

func convertOne(mode string, code constants.CurrencyCode, value string) output.Row {
	row := output.Row{Input: value}

	switch mode {
	case constants.ModeFormat:
		row.Output = format.FormatWithThousands(value, code)
		if row.Output == "" {
			row.Note = NoteEmpty
		} else if hasFraction(format.Clean(value)) {
			row.Note = NoteFractionDropped
		}
	case constants.ModeParse:
		row.Output = format.ParseFormatted(value)
		if row.Output == "" {
			row.Note = NoteEmpty
		}
	case constants.ModeCurrency:
		amount, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			row.Note = NoteInvalidAmount
			return row
		}
		row.Output = format.FormatCurrency(amount, code)
	default:
		row.Output = value
	}
	return row
}

// hasFraction reports whether a non-zero digit follows the first decimal point.
func hasFraction(cleaned string) bool {
	_, frac, found := strings.Cut(cleaned, ".")
	if !found {
		return false
	}
	frac, _, _ = strings.Cut(frac, ".")
	return strings.Trim(frac, "0") != ""
}
