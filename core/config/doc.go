// File: doc.go
// Title: Configuration Package Documentation
// Description: Provides typed configuration loading for the loxgo CLI from
//              TOML and YAML files with defaults and validation.
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial configuration implementation

/*
Package config loads and validates the loxgo CLI configuration.

Configuration files may be TOML or YAML; the format is detected from
the file extension. Omitted keys fall back to the defaults returned by
Default, and every loaded configuration is validated before use.
*/
package config
