// File: doc.go
// Title: Lox Scanner Package Documentation
// Description: Implements the lexical analyzer for Lox source text.
//              Converts raw source into an EOF-terminated token sequence
//              with error recovery and line tracking.
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial scanner implementation

/*
Package scanner provides lexical analysis for Lox source text.

This package implements a single-pass scanner that converts Lox source
into a flat token sequence. It includes:

  • The closed set of Lox token types with literal payloads
  • Two-character operator lookahead (!=, ==, <=, >=)
  • Line comments, multi-line strings and decimal numbers
  • Reserved keyword disambiguation for identifiers
  • Error recovery: malformed input is reported and skipped

The token sequence is always terminated by exactly one EOF token so
that downstream consumers never need bounds checks.
*/
package scanner
