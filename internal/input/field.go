// Package input drives money-entry form fields: it keeps a field's display
// value grouped while the user types and turns it into a signed amount on
// submit.
package input

import (
	"github.com/iwvelando/amountfmt/pkg/constants"
	"github.com/iwvelando/amountfmt/pkg/format"
)

// Field is the state behind one amount input. It is owned by a single form
// and is not safe for concurrent use.
type Field struct {
	name     string
	currency constants.CurrencyCode
	display  string
}

// NewField returns an empty field priced in code.
func NewField(name string, code constants.CurrencyCode) *Field {
	return &Field{name: name, currency: code}
}

// OnChange applies a keystroke: raw is the input's full value after the
// edit. The new display value is stored and returned.
//
// Grouping separators already in raw are removed before cleaning. The
// separator is also the decimal point, so "5.0000" (one more digit typed
// after "5.000") would otherwise format as "5".
func (f *Field) OnChange(raw string) string {
	cleaned := format.Clean(format.ParseFormatted(raw))
	if cleaned == "" || cleaned == "." {
		f.display = ""
		return f.display
	}
	f.display = format.FormatWithThousands(cleaned, f.currency)
	return f.display
}

// SetCurrency switches the field to code and re-formats the current value.
func (f *Field) SetCurrency(code constants.CurrencyCode) string {
	f.currency = code
	if f.display == "" {
		return ""
	}
	f.display = format.FormatWithThousands(format.ParseFormatted(f.display), code)
	return f.display
}

// Name returns the form field name used in error maps.
func (f *Field) Name() string { return f.name }

// Display returns the grouped value shown in the input.
func (f *Field) Display() string { return f.display }

// Canonical returns the ungrouped digits sent on submit.
func (f *Field) Canonical() string { return format.ParseFormatted(f.display) }

// Currency returns the currently selected currency.
func (f *Field) Currency() constants.CurrencyCode { return f.currency }

// Reset clears the display value, e.g. after the form is submitted.
func (f *Field) Reset() { f.display = "" }
