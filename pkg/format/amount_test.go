package format

import (
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/iwvelando/amountfmt/pkg/constants"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Digits only", "12345", "12345"},
		{"Keeps decimal point", "12.50", "12.50"},
		{"Drops letters", "abc", ""},
		{"Drops currency symbol and spaces", "Rp 1 500", "1500"},
		{"Keeps repeated points", "1..2.3", "1..2.3"},
		{"Drops comma", "1,234.56", "1234.56"},
		{"Drops minus sign", "-50", "50"},
		{"Drops non-ASCII digits", "١٢٣45", "45"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.input); got != tt.expected {
				t.Errorf("Clean(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Empty", "", ""},
		{"Lone point", ".", ""},
		{"Below one thousand", "100", "100"},
		{"Exactly one thousand", "1000", "1.000"},
		{"One million", "1000000", "1.000.000"},
		{"Uneven leading group", "12345", "12.345"},
		{"Zero", "0", "0"},
		{"Leading zeros", "000123", "123"},
		{"Fraction dropped", "1234.56", "1.234"},
		{"Trailing point", "5000.", "5.000"},
		{"Fraction only", ".75", "0"},
		{"Second point truncates", "1.2.3", "1"},
		{"Second point after grouping", "1234567.8.9", "1.234.567"},
		{"Only points", "..", ""},
		{"Point then point", "..5", ""},
		{"Uncleaned letters", "abc", ""},
		{"Uncleaned trailing letters", "12abc", "12"},
		{"Larger than float precision", "123456789012345678901234", "123.456.789.012.345.678.901.234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.input); got != tt.expected {
				t.Errorf("Format(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

// Formatting drops the fraction on every pass. Changing that must be a
// deliberate change to this test.
func TestFormatTruncatesFraction(t *testing.T) {
	if got := Format(Clean("1234.56")); got != "1.234" {
		t.Fatalf("Format(Clean(\"1234.56\")) = %q, expected %q", got, "1.234")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Grouped amount", "1.234.567", "1234567"},
		{"Surrounding spaces and point", "  12.50  ", "1250"},
		{"Tabs and newlines", "\t1 000\n", "1000"},
		{"Comma kept", "1,5", "1,5"},
		{"Letters kept", "12a", "12a"},
		{"Empty", "", ""},
		{"Only separators", ". . .", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.input); got != tt.expected {
				t.Errorf("Parse(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	values := []string{"0", "7", "999", "1000", "50000", "1234567", "9007199254740993", "100000000000000000000"}
	for n := 1; n < 2_000_000; n = n*7 + 3 {
		values = append(values, strconv.Itoa(n))
	}

	for _, v := range values {
		display := Format(Clean(v))
		if got := Parse(display); got != v {
			t.Errorf("Parse(Format(Clean(%q))) = %q via %q", v, got, display)
		}
	}
}

func TestFormatIdempotent(t *testing.T) {
	inputs := []string{"1", "12", "1234", "1234.5", "1.2.3", "0001000", "98765432100", ".5"}
	for _, s := range inputs {
		once := Format(s)
		again := Format(Parse(once))
		if once != again {
			t.Errorf("Format(Parse(Format(%q))) = %q, expected %q", s, again, once)
		}
	}
}

func TestFormatWithThousandsIgnoresCurrency(t *testing.T) {
	for _, code := range []constants.CurrencyCode{constants.IDR, constants.USD, constants.EUR, constants.SGD, "XXX"} {
		if got := FormatWithThousands("Rp 50000", code); got != "50.000" {
			t.Errorf("FormatWithThousands(%q, %s) = %q, expected %q", "Rp 50000", code, got, "50.000")
		}
	}
}

func TestCurrencySwitchReformat(t *testing.T) {
	display := FormatWithThousands("50000", constants.IDR)
	if display != "50.000" {
		t.Fatalf("expected 50.000 for IDR, got %q", display)
	}

	canonical := ParseFormatted(display)
	if canonical != "50000" {
		t.Fatalf("expected canonical 50000, got %q", canonical)
	}

	if got := FormatWithThousands(canonical, constants.USD); got != display {
		t.Fatalf("expected %q after switching to USD, got %q", display, got)
	}
}

func TestFormatConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v := strings.Repeat("9", i%20+1)
			if got := Parse(Format(v)); got != v {
				errs <- got
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for got := range errs {
		t.Errorf("concurrent round trip mismatch: %q", got)
	}
}
