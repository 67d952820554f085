package validation

import (
	"errors"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrAmountRequired is returned for an empty canonical amount.
	ErrAmountRequired = errors.New("amount is required")

	// ErrAmountInvalid is returned when the canonical amount is not a number.
	ErrAmountInvalid = errors.New("amount must be a valid number")

	// ErrAmountNotPositive is returned for zero or negative amounts.
	ErrAmountNotPositive = errors.New("amount must be greater than zero")

	// ErrInsufficientBalance is returned when a transfer exceeds the source balance.
	ErrInsufficientBalance = errors.New("amount exceeds available balance")

	// ErrTooManyDecimals is returned when a value is more precise than its currency.
	ErrTooManyDecimals = errors.New("too many decimal places for currency")
)

// FieldErrors maps a form field name to the message shown beneath it.
type FieldErrors map[string]string

// Add records msg for field unless the field already has an error.
func (fe FieldErrors) Add(field, msg string) {
	if _, exists := fe[field]; !exists {
		fe[field] = msg
	}
}

// HasErrors reports whether any field failed validation.
func (fe FieldErrors) HasErrors() bool {
	return len(fe) > 0
}

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for field := range fe {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+fe[field])
	}
	return strings.Join(parts, "; ")
}

// ParseAmount converts a canonical amount string (digits and at most one
// decimal point) into a positive decimal.
func ParseAmount(canonical string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(canonical)
	if trimmed == "" {
		return decimal.Zero, ErrAmountRequired
	}

	for _, r := range trimmed {
		if (r < '0' || r > '9') && r != '.' && r != '-' {
			return decimal.Zero, ErrAmountInvalid
		}
	}

	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, ErrAmountInvalid
	}
	if !amount.IsPositive() {
		return decimal.Zero, ErrAmountNotPositive
	}
	return amount, nil
}

// CheckBalance fails when amount is larger than the available balance.
func CheckBalance(amount, balance decimal.Decimal) error {
	if amount.GreaterThan(balance) {
		return ErrInsufficientBalance
	}
	return nil
}

// CheckPrecision fails when value has more fractional digits than places.
// Trailing zeros do not count.
func CheckPrecision(value decimal.Decimal, places int32) error {
	if !value.Equal(value.Truncate(places)) {
		return ErrTooManyDecimals
	}
	return nil
}
