// File: doc.go
// Title: String Utilities Package Documentation
// Description: String helper functions shared across the Lox frontend.
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial string utilities

// Package stringx provides Unicode-aware string helpers for validation
// and output shaping.
package stringx
