// File: doc.go
// Title: Lox Frontend Package Documentation
// Description: Provides the high-level API for the Lox language frontend,
//              coordinating the scanner, parser and diagnostics packages.
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial engine implementation

/*
Package lox provides the high-level interface to the Lox frontend.

The Engine coordinates the scanner and parser behind a small facade:

	engine, err := lox.NewEngine()
	if err != nil {
		// handle error
	}
	result, err := engine.Parse("1 + 2 * 3")

Diagnostics flow through the lox/diag sink configured in Options, so
callers choose between console output and in-memory collection without
touching the frontend itself.
*/
package lox
