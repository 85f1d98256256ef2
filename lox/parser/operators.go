// File: operators.go
// Title: Token-to-Operator Mapping
// Description: Maps operator token types to the narrow AST operator types.
//              Both mappings are total functions: a token type outside the
//              operator set yields ok=false instead of a panic, so callers
//              handle the mismatch as an ordinary parse failure.
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial operator mappings

package parser

import (
	loxast "github.com/loxlang/loxgo/lox/ast"
	loxscanner "github.com/loxlang/loxgo/lox/scanner"
)

// BinaryOpFor maps a token type to its binary operator, with ok=false
// for token types that are not binary operators
func BinaryOpFor(tokenType loxscanner.TokenType) (loxast.BinaryOp, bool) {
	switch tokenType {
	case loxscanner.TokenEqualEqual:
		return loxast.OpEqualEqual, true
	case loxscanner.TokenBangEqual:
		return loxast.OpBangEqual, true
	case loxscanner.TokenLess:
		return loxast.OpLess, true
	case loxscanner.TokenLessEqual:
		return loxast.OpLessEqual, true
	case loxscanner.TokenGreater:
		return loxast.OpGreater, true
	case loxscanner.TokenGreaterEqual:
		return loxast.OpGreaterEqual, true
	case loxscanner.TokenPlus:
		return loxast.OpPlus, true
	case loxscanner.TokenMinus:
		return loxast.OpMinus, true
	case loxscanner.TokenStar:
		return loxast.OpStar, true
	case loxscanner.TokenSlash:
		return loxast.OpSlash, true
	default:
		return 0, false
	}
}

// UnaryOpFor maps a token type to its unary operator, with ok=false for
// token types that are not unary operators
func UnaryOpFor(tokenType loxscanner.TokenType) (loxast.UnaryOp, bool) {
	switch tokenType {
	case loxscanner.TokenMinus:
		return loxast.OpNegate, true
	case loxscanner.TokenBang:
		return loxast.OpNot, true
	default:
		return 0, false
	}
}
