package testutil

import (
	"fmt"
	"testing"

	"github.com/iwvelando/amountfmt/pkg/output"
)

func TestFindRow(t *testing.T) {
	rows := []output.Row{
		{Input: "1000", Output: "1.000"},
		{Input: "50000", Output: "50.000"},
		{Input: "abc", Output: "", Note: "empty"},
	}

	tests := []struct {
		name           string
		searchInput    string
		expectFound    bool
		expectedOutput string
	}{
		{"Find first row", "1000", true, "1.000"},
		{"Find middle row", "50000", true, "50.000"},
		{"Find row with empty output", "abc", true, ""},
		{"Missing row", "42", false, ""},
		{"Case sensitive", "ABC", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := FindRow(rows, tt.searchInput)
			if !tt.expectFound {
				if row != nil {
					t.Errorf("FindRow(%q) expected nil, got %+v", tt.searchInput, row)
				}
				return
			}
			if row == nil {
				t.Fatalf("FindRow(%q) returned nil", tt.searchInput)
			}
			if row.Output != tt.expectedOutput {
				t.Errorf("FindRow(%q).Output = %q, expected %q", tt.searchInput, row.Output, tt.expectedOutput)
			}
		})
	}
}

func TestFindRowReturnsPointer(t *testing.T) {
	rows := []output.Row{{Input: "1", Output: "1"}}

	row := FindRow(rows, "1")
	row.Note = "changed"

	if rows[0].Note != "changed" {
		t.Error("expected FindRow to return a pointer into the slice")
	}
}

func TestFindRowNil(t *testing.T) {
	if FindRow(nil, "1") != nil {
		t.Error("expected nil for nil rows")
	}
}

func TestCaptureStdout(t *testing.T) {
	got := CaptureStdout(t, func() {
		fmt.Print("hello ")
		fmt.Println("world")
	})
	if got != "hello world\n" {
		t.Errorf("CaptureStdout() = %q", got)
	}
}
