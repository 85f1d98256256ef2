// File: doc.go
// Title: Logging Package Documentation
// Description: Provides structured logging with multiple output formats,
//              contextual fields and level filtering for the Lox frontend.
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial logging implementation

/*
Package log provides structured logging for the Lox frontend.

Loggers are immutable: the With* methods return derived clones, so
components can attach their own context fields without affecting the
parent logger:

	logger := log.GetDefault().WithField("component", "lox-scanner")
	logger.Debug("scan completed", log.Fields{"tokens": 12})

Output formats include JSON for production, plain text and colored
console output for development.
*/
package log
