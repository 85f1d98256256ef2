// File: doc.go
// Title: Lox Diagnostics Package Documentation
// Description: Defines the diagnostics sink contract used by the scanner
//              and parser, with console and collecting implementations.
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial diagnostics implementation

/*
Package diag defines the diagnostics sink for the Lox frontend.

The scanner and parser report errors through the single-method Reporter
interface and never write to any output stream themselves. The package
ships a console reporter for terminal use and an in-memory collector
used as a recording fake in tests.
*/
package diag
