// File: stringx.go
// Title: Extended String Utilities
// Description: Provides string helpers used across the Lox frontend for
//              input validation and output shaping. All functions are
//              Unicode-aware.
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial string utilities

package stringx

import (
	"unicode"
	"unicode/utf8"
)

// IsEmpty returns true if the string is empty (length 0)
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace
func IsBlank(s string) bool {
	if len(s) == 0 {
		return true
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank returns true if the string contains non-whitespace characters
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// Truncate truncates a string to the specified length, adding an ellipsis
// if truncated. Multi-byte characters are never broken.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}

	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		return string([]rune(s)[:maxLen])
	}

	contentLen := maxLen - ellipsisLen
	return string([]rune(s)[:contentLen]) + ellipsis
}

// FirstNonBlank returns the first string that is not blank, or the empty
// string when all candidates are blank
func FirstNonBlank(candidates ...string) string {
	for _, s := range candidates {
		if IsNotBlank(s) {
			return s
		}
	}
	return ""
}
