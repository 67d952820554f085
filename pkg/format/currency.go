package format

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iwvelando/amountfmt/pkg/constants"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatCurrency returns a read-only display string for amount with no
// decimal places, grouped the way the currency's locale groups digits
// (e.g. "$1,235", "Rp 1.235", "-1.235 €"). Unknown codes use the code as the
// symbol and English grouping.
func FormatCurrency(amount decimal.Decimal, code constants.CurrencyCode) string {
	cur, ok := constants.LookupCurrency(code)
	if !ok {
		cur = constants.Currency{Code: code, Symbol: string(code), Locale: language.English}
	}

	rounded := amount.Round(0)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}

	digits := groupDigits(rounded.String(), localeSeparator(cur.Locale))

	if cur.SymbolAfter {
		return sign + digits + " " + cur.Symbol
	}
	return sign + cur.Symbol + symbolGap(cur.Symbol) + digits
}

// symbolGap separates alphabetic symbols such as "Rp" or "IDR" from the digits.
func symbolGap(symbol string) string {
	last, _ := utf8.DecodeLastRuneInString(symbol)
	if unicode.IsLetter(last) {
		return " "
	}
	return ""
}

// localeSeparator returns the digit grouping separator of tag's locale. The digits
// themselves are grouped from the decimal's string form so amounts beyond
// the int64 range stay exact.
func localeSeparator(tag language.Tag) string {
	grouped := message.NewPrinter(tag).Sprintf("%d", 1000)
	return strings.TrimSuffix(strings.TrimPrefix(grouped, "1"), "000")
}
