// Package constants provides shared constants for the amountfmt application.
package constants

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Grouping constants
const (
	// GroupSeparator is inserted every GroupSize digits in a display amount.
	GroupSeparator = "."

	// GroupSize is the number of digits between grouping separators
	GroupSize = 3

	// DecimalPoint is the only non-digit character kept while typing an amount.
	DecimalPoint = '.'
)

// CurrencyCode identifies one of the supported currencies.
type CurrencyCode string

// Supported currencies. IDR is priced in whole units; the rest carry cents.
const (
	IDR CurrencyCode = "IDR"
	USD CurrencyCode = "USD"
	EUR CurrencyCode = "EUR"
	SGD CurrencyCode = "SGD"
)

// DefaultCurrency is used when neither the request nor the config names one.
const DefaultCurrency = IDR

// Currency describes how a currency is shown in read-only displays.
type Currency struct {
	Code          CurrencyCode
	Symbol        string
	DecimalPlaces int32
	Locale        language.Tag
	SymbolAfter   bool
}

var currencies = map[CurrencyCode]Currency{
	IDR: {Code: IDR, Symbol: "Rp", DecimalPlaces: 0, Locale: language.Indonesian},
	USD: {Code: USD, Symbol: "$", DecimalPlaces: 2, Locale: language.AmericanEnglish},
	EUR: {Code: EUR, Symbol: "€", DecimalPlaces: 2, Locale: language.German, SymbolAfter: true},
	SGD: {Code: SGD, Symbol: "S$", DecimalPlaces: 2, Locale: language.English},
}

// LookupCurrency returns the metadata for code and whether it is supported.
func LookupCurrency(code CurrencyCode) (Currency, bool) {
	c, ok := currencies[code]
	return c, ok
}

// ParseCurrencyCode normalizes s and checks it against the supported set.
func ParseCurrencyCode(s string) (CurrencyCode, error) {
	code := CurrencyCode(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := currencies[code]; !ok {
		return "", fmt.Errorf("unsupported currency %q, expected one of %s",
			s, strings.Join(SupportedCurrencies(), ", "))
	}
	return code, nil
}

// SupportedCurrencies returns the supported codes in sorted order.
func SupportedCurrencies() []string {
	codes := make([]string, 0, len(currencies))
	for code := range currencies {
		codes = append(codes, string(code))
	}
	sort.Strings(codes)
	return codes
}

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the indented JSON output format
	OutputFormatJSON = "json"
)

// CLI modes
const (
	ModeFormat   = "format"
	ModeParse    = "parse"
	ModeCurrency = "currency"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix prefixes environment overrides, e.g. AMOUNTFMT_CURRENCY.
	EnvPrefix = "AMOUNTFMT"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum JSON request body size (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024

	// RequestIDHeader carries the per-request id.
	RequestIDHeader = "X-Request-ID"
)
