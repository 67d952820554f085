// Package format implements the amount pipeline shared by every money-entry
// field: Clean the raw keystroke value, Format it into a grouped display
// string, and Parse a display string back into its canonical digits.
//
// All functions are pure and safe for concurrent use. Invalid input never
// produces an error; it degrades to the empty string.
package format

import (
	"strings"
	"unicode"

	"github.com/iwvelando/amountfmt/pkg/constants"
	"github.com/shopspring/decimal"
)

// Clean drops every character that is not an ASCII digit or a decimal point.
// Repeated decimal points are kept; Format decides what they mean.
func Clean(raw string) string {
	var builder strings.Builder
	builder.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if (c >= '0' && c <= '9') || c == constants.DecimalPoint {
			builder.WriteByte(c)
		}
	}
	return builder.String()
}

// Format renders a cleaned amount with a grouping separator every three
// digits, e.g. "1234567" -> "1.234.567". The fractional part is dropped and
// anything after a second decimal point is ignored, so "1234.56" -> "1.234"
// and "1.2.3" -> "1". Empty, "." and digit-less input yield "".
func Format(cleaned string) string {
	if cleaned == "" || cleaned == "." {
		return ""
	}

	prefix := numericPrefix(cleaned)
	if prefix == "" {
		return ""
	}

	value, err := decimal.NewFromString(prefix)
	if err != nil {
		return ""
	}

	return groupDigits(integerPart(value).String(), constants.GroupSeparator)
}

// Parse strips grouping separators and whitespace from a display amount and
// returns what is left untouched. It does not validate.
func Parse(display string) string {
	return strings.Map(func(r rune) rune {
		if r == constants.DecimalPoint || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, display)
}

// FormatWithThousands cleans and formats the current value of an amount
// input. Grouping does not depend on the currency; code is accepted so every
// input handler calls the formatter the same way.
func FormatWithThousands(raw string, code constants.CurrencyCode) string {
	return Format(Clean(raw))
}

// ParseFormatted returns the canonical digits for a display amount, ready for
// numeric parsing on submit.
func ParseFormatted(display string) string {
	return Parse(display)
}

// integerPart is the only step that discards the fraction.
func integerPart(value decimal.Decimal) decimal.Decimal {
	return value.Floor()
}

// numericPrefix returns the leading run of digits with at most one decimal
// point, or "" if that run holds no digit.
func numericPrefix(s string) string {
	end := 0
	seenPoint := false
	digits := 0
	for end < len(s) {
		c := s[end]
		if c == constants.DecimalPoint {
			if seenPoint {
				break
			}
			seenPoint = true
		} else if c >= '0' && c <= '9' {
			digits++
		} else {
			break
		}
		end++
	}
	if digits == 0 {
		return ""
	}

	prefix := strings.TrimSuffix(s[:end], ".")
	if strings.HasPrefix(prefix, ".") {
		prefix = "0" + prefix
	}
	return prefix
}

func groupDigits(intPart, separator string) string {
	if len(intPart) <= constants.GroupSize {
		return intPart
	}

	var builder strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%constants.GroupSize == 0 {
			builder.WriteString(separator)
		}
		builder.WriteRune(digit)
	}
	return builder.String()
}
