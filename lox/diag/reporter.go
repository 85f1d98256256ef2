// File: reporter.go
// Title: Lox Diagnostics Sink
// Description: Defines the diagnostics sink contract consumed by the
//              scanner and parser, together with a console implementation
//              for terminal use and a collecting implementation for tests.
//              The frontend only ever calls into the sink; it never
//              branches on it.
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial reporter implementations

package diag

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Reporter receives error notifications from the scanner and parser.
// The where argument is either empty, " at end", or " at 'lexeme'".
type Reporter interface {
	Report(line int, where string, message string)
}

// ConsoleReporter writes diagnostics to a writer in the classic
// "[line N] Error: message" format and keeps an error count
type ConsoleReporter struct {
	mu     sync.Mutex
	out    io.Writer
	errors int
}

// NewConsoleReporter creates a console reporter writing to the given writer
func NewConsoleReporter(out io.Writer) *ConsoleReporter {
	return &ConsoleReporter{out: out}
}

// Report implements the Reporter interface
func (r *ConsoleReporter) Report(line int, where string, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.errors++
	fmt.Fprintf(r.out, "[line %d] Error%s: %s\n", line, where, message)
}

// HadError returns true if at least one diagnostic was reported
func (r *ConsoleReporter) HadError() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.errors > 0
}

// ErrorCount returns the number of reported diagnostics
func (r *ConsoleReporter) ErrorCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.errors
}

// Reset clears the error count
func (r *ConsoleReporter) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = 0
}

// Entry is a single recorded diagnostic
type Entry struct {
	Line    int
	Where   string
	Message string
}

// String returns the formatted diagnostic text
func (e Entry) String() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.Line, e.Where, e.Message)
}

// Collector records diagnostics in memory. It is the recording fake used
// to test the scanner and parser independently of any output stream.
type Collector struct {
	mu      sync.Mutex
	entries []Entry
}

// NewCollector creates an empty collector
func NewCollector() *Collector {
	return &Collector{entries: make([]Entry, 0)}
}

// Report implements the Reporter interface
func (c *Collector) Report(line int, where string, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, Entry{Line: line, Where: where, Message: message})
}

// Entries returns a copy of all recorded diagnostics
func (c *Collector) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// HadError returns true if at least one diagnostic was recorded
func (c *Collector) HadError() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries) > 0
}

// ErrorCount returns the number of recorded diagnostics
func (c *Collector) ErrorCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Reset clears all recorded diagnostics
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = c.entries[:0]
}

// Default reporter writes to stderr
var defaultReporter Reporter = NewConsoleReporter(os.Stderr)

// Default returns the default reporter instance
func Default() Reporter {
	return defaultReporter
}

// SetDefault sets the default reporter instance
func SetDefault(r Reporter) {
	defaultReporter = r
}
