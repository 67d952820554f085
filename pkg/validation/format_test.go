package validation

import (
	"strings"
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		expectErr bool
	}{
		{"Pretty table", "pretty", false},
		{"CSV", "csv", false},
		{"JSON", "json", false},
		{"Empty", "", true},
		{"Uppercase is not normalized", "CSV", true},
		{"Surrounding spaces are not trimmed", " json ", true},
		{"Near miss", "prettyprint", true},
		{"Unsupported", "xml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if (err != nil) != tt.expectErr {
				t.Errorf("ValidateOutputFormat(%q) error = %v, expectErr %v", tt.format, err, tt.expectErr)
			}
		})
	}
}

func TestValidateOutputFormatNamesChoices(t *testing.T) {
	err := ValidateOutputFormat("yaml")
	if err == nil {
		t.Fatal("expected error for yaml")
	}
	for _, want := range []string{"pretty", "csv", "json", "yaml"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected %q in error %q", want, err.Error())
		}
	}
}

func TestValidateMode(t *testing.T) {
	tests := []struct {
		name      string
		mode      string
		expectErr bool
	}{
		{"Format mode", "format", false},
		{"Parse mode", "parse", false},
		{"Currency mode", "currency", false},
		{"Uppercase", "FORMAT", true},
		{"Empty", "", true},
		{"Unknown", "convert", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMode(tt.mode)
			if (err != nil) != tt.expectErr {
				t.Errorf("ValidateMode(%q) error = %v, expectErr %v", tt.mode, err, tt.expectErr)
			}
		})
	}
}
