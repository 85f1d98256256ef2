// File: reporter_test.go
// Title: Lox Diagnostics Unit Tests
// Description: Unit tests for the console reporter and the collecting
//              reporter, covering format, counting and reset behavior.
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial test suite

package diag

import (
	"bytes"
	"testing"
)

func TestConsoleReporter_Format(t *testing.T) {
	tests := []struct {
		name    string
		line    int
		where   string
		message string
		want    string
	}{
		{"Plain error", 1, "", "Unexpected character.", "[line 1] Error: Unexpected character.\n"},
		{"At token", 3, " at '+'", "Expect expression.", "[line 3] Error at '+': Expect expression.\n"},
		{"At end", 7, " at end", "Expect ')' after expression.", "[line 7] Error at end: Expect ')' after expression.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := NewConsoleReporter(&buf)
			r.Report(tt.line, tt.where, tt.message)

			if got := buf.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConsoleReporter_Counting(t *testing.T) {
	var buf bytes.Buffer
	r := NewConsoleReporter(&buf)

	if r.HadError() {
		t.Error("fresh reporter should not have errors")
	}

	r.Report(1, "", "first")
	r.Report(2, "", "second")

	if !r.HadError() {
		t.Error("HadError should be true after reports")
	}
	if r.ErrorCount() != 2 {
		t.Errorf("ErrorCount = %d, want 2", r.ErrorCount())
	}

	r.Reset()
	if r.HadError() || r.ErrorCount() != 0 {
		t.Error("Reset should clear the error count")
	}
}

func TestCollector(t *testing.T) {
	c := NewCollector()

	if c.HadError() {
		t.Error("fresh collector should not have errors")
	}

	c.Report(5, " at 'x'", "Expect expression.")

	entries := c.Entries()
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}

	entry := entries[0]
	if entry.Line != 5 || entry.Where != " at 'x'" || entry.Message != "Expect expression." {
		t.Errorf("unexpected entry: %+v", entry)
	}
	if got := entry.String(); got != "[line 5] Error at 'x': Expect expression." {
		t.Errorf("Entry.String() = %q", got)
	}

	// Entries returns a copy
	entries[0].Message = "mutated"
	if c.Entries()[0].Message != "Expect expression." {
		t.Error("Entries should return a copy")
	}

	c.Reset()
	if c.HadError() || c.ErrorCount() != 0 {
		t.Error("Reset should clear entries")
	}
}

func TestDefaultReporter(t *testing.T) {
	original := Default()
	defer SetDefault(original)

	c := NewCollector()
	SetDefault(c)

	if Default() != c {
		t.Error("SetDefault should replace the default reporter")
	}
}
