// Package testutil provides common utility functions for testing.
package testutil

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/iwvelando/amountfmt/pkg/output"
)

// FindRow finds a row by input value.
// Returns a pointer to the row if found, nil otherwise.
func FindRow(rows []output.Row, input string) *output.Row {
	for i := range rows {
		if rows[i].Input == input {
			return &rows[i]
		}
	}
	return nil
}

// CaptureStdout runs fn and returns everything it wrote to os.Stdout.
func CaptureStdout(t *testing.T, fn func()) string {
	t.Helper()

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w
	defer func() { os.Stdout = oldStdout }()

	done := make(chan []byte)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		done <- buf.Bytes()
	}()

	fn()

	_ = w.Close()
	return string(<-done)
}
