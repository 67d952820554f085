// Package output provides utilities for formatting and displaying converted amounts.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/iwvelando/amountfmt/pkg/constants"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Row is one converted value.
type Row struct {
	Input  string `json:"input"`
	Output string `json:"output"`
	Note   string `json:"note,omitempty"`
}

// Result is a batch of values converted in one mode and currency.
type Result struct {
	Mode     string                 `json:"mode"`
	Currency constants.CurrencyCode `json:"currency"`
	Rows     []Row                  `json:"rows"`
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(result Result) {
	p := message.NewPrinter(language.English)

	inputWidth, outputWidth := len("Input"), len("Output")
	for _, row := range result.Rows {
		inputWidth = max(inputWidth, len(row.Input))
		outputWidth = max(outputWidth, len(row.Output))
	}

	fmt.Printf("--- %s (%s) ---\n", result.Mode, result.Currency)
	fmt.Printf("%-*s | %-*s | Notes\n", inputWidth, "Input", outputWidth, "Output")
	fmt.Printf("%s | %s | _____\n", strings.Repeat("_", inputWidth), strings.Repeat("_", outputWidth))
	for _, row := range result.Rows {
		fmt.Printf("%-*s | %-*s | %s\n", inputWidth, row.Input, outputWidth, row.Output, row.Note)
	}
	_, _ = p.Printf("%d values\n", len(result.Rows))
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(result Result) {
	fmt.Print(CsvString(result))
}

// CsvString returns the CSV representation of result.
func CsvString(result Result) string {
	var builder strings.Builder
	w := csv.NewWriter(&builder)
	_ = w.Write([]string{"input", "output", "note"})
	for _, row := range result.Rows {
		_ = w.Write([]string{row.Input, row.Output, row.Note})
	}
	w.Flush()
	return builder.String()
}

// JSONFormat outputs one JSON document describing the whole batch.
func JSONFormat(result Result) error {
	if result.Rows == nil {
		result.Rows = []Row{}
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
