// File: doc.go
// Title: Lox Abstract Syntax Tree Package Documentation
// Description: Defines the Abstract Syntax Tree nodes for representing
//              parsed Lox expressions. Provides visitor patterns and a
//              source printer.
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial AST implementation

/*
Package ast defines the Abstract Syntax Tree structures for Lox expressions.

This package provides the node definitions, visitor patterns, and utilities
for representing and manipulating parsed Lox expressions as structured data.

The AST enables:
  • Structured representation of Lox expressions
  • Tree traversal through the visitor pattern
  • Faithful printing back to parseable source text
  • Extension points for later pipeline stages
*/
package ast
