// File: doc.go
// Title: Lox Parser Package Documentation
// Description: Implements the recursive descent parser for Lox expressions.
//              Converts token sequences into expression trees with error
//              reporting and statement-boundary synchronization.
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial parser implementation

/*
Package parser provides recursive descent parsing for Lox expressions.

This package converts the scanner's EOF-terminated token sequence into
an Abstract Syntax Tree. It includes:

  • One grammar rule per method, from equality down to primary
  • Left-associative folding at every binary precedence level
  • Single-report error handling through the diagnostics sink
  • Synchronization to statement boundaries after a syntax error

The parser produces immutable trees that can be printed, traversed and
handed to later pipeline stages.
*/
package parser
