// File: token.go
// Title: Lox Token Definitions
// Description: Defines the token model produced by the scanner: the closed
//              set of token types, the Token record with lexeme, optional
//              literal payload and line number, and the reserved keyword
//              table used for identifier disambiguation.
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial token model

package scanner

import (
	"fmt"
	"strconv"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	// Single-character tokens
	TokenLeftParen TokenType = iota // (
	TokenRightParen                 // )
	TokenLeftBrace                  // {
	TokenRightBrace                 // }
	TokenComma                      // ,
	TokenDot                        // .
	TokenMinus                      // -
	TokenPlus                       // +
	TokenSemicolon                  // ;
	TokenSlash                      // /
	TokenStar                       // *

	// One or two character tokens
	TokenBang         // !
	TokenBangEqual    // !=
	TokenEqual        // =
	TokenEqualEqual   // ==
	TokenGreater      // >
	TokenGreaterEqual // >=
	TokenLess         // <
	TokenLessEqual    // <=

	// Literals
	TokenIdentifier // variable and field names
	TokenString     // "string literal"
	TokenNumber     // 123, 123.45

	// Keywords
	TokenAnd
	TokenClass
	TokenElse
	TokenFalse
	TokenFun
	TokenFor
	TokenIf
	TokenNil
	TokenOr
	TokenPrint
	TokenReturn
	TokenSuper
	TokenThis
	TokenTrue
	TokenVar
	TokenWhile

	// End of input marker
	TokenEOF
)

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenLeftParen:
		return "LEFT_PAREN"
	case TokenRightParen:
		return "RIGHT_PAREN"
	case TokenLeftBrace:
		return "LEFT_BRACE"
	case TokenRightBrace:
		return "RIGHT_BRACE"
	case TokenComma:
		return "COMMA"
	case TokenDot:
		return "DOT"
	case TokenMinus:
		return "MINUS"
	case TokenPlus:
		return "PLUS"
	case TokenSemicolon:
		return "SEMICOLON"
	case TokenSlash:
		return "SLASH"
	case TokenStar:
		return "STAR"
	case TokenBang:
		return "BANG"
	case TokenBangEqual:
		return "BANG_EQUAL"
	case TokenEqual:
		return "EQUAL"
	case TokenEqualEqual:
		return "EQUAL_EQUAL"
	case TokenGreater:
		return "GREATER"
	case TokenGreaterEqual:
		return "GREATER_EQUAL"
	case TokenLess:
		return "LESS"
	case TokenLessEqual:
		return "LESS_EQUAL"
	case TokenIdentifier:
		return "IDENTIFIER"
	case TokenString:
		return "STRING"
	case TokenNumber:
		return "NUMBER"
	case TokenAnd:
		return "AND"
	case TokenClass:
		return "CLASS"
	case TokenElse:
		return "ELSE"
	case TokenFalse:
		return "FALSE"
	case TokenFun:
		return "FUN"
	case TokenFor:
		return "FOR"
	case TokenIf:
		return "IF"
	case TokenNil:
		return "NIL"
	case TokenOr:
		return "OR"
	case TokenPrint:
		return "PRINT"
	case TokenReturn:
		return "RETURN"
	case TokenSuper:
		return "SUPER"
	case TokenThis:
		return "THIS"
	case TokenTrue:
		return "TRUE"
	case TokenVar:
		return "VAR"
	case TokenWhile:
		return "WHILE"
	case TokenEOF:
		return "EOF"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexical token with its source text and position.
// Tokens are immutable once created by the scanner.
type Token struct {
	Type    TokenType   // Token type
	Lexeme  string      // Exact source text matched
	Literal interface{} // string for STRING, float64 for NUMBER, nil otherwise
	Line    int         // Line number (1-based)
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenString:
		return fmt.Sprintf("STRING(%s)", t.Lexeme)
	case TokenNumber:
		if f, ok := t.Literal.(float64); ok {
			return fmt.Sprintf("NUMBER(%s)", strconv.FormatFloat(f, 'g', -1, 64))
		}
		return fmt.Sprintf("NUMBER(%s)", t.Lexeme)
	default:
		return fmt.Sprintf("%s(%s)", t.Type.String(), t.Lexeme)
	}
}

// StringValue returns the string literal payload, or false when the token
// does not carry one
func (t Token) StringValue() (string, bool) {
	s, ok := t.Literal.(string)
	return s, ok
}

// NumberValue returns the numeric literal payload, or false when the token
// does not carry one
func (t Token) NumberValue() (float64, bool) {
	f, ok := t.Literal.(float64)
	return f, ok
}

// Keywords map for identifier lookup
var keywords = map[string]TokenType{
	"and":    TokenAnd,
	"class":  TokenClass,
	"else":   TokenElse,
	"false":  TokenFalse,
	"for":    TokenFor,
	"fun":    TokenFun,
	"if":     TokenIf,
	"nil":    TokenNil,
	"or":     TokenOr,
	"print":  TokenPrint,
	"return": TokenReturn,
	"super":  TokenSuper,
	"this":   TokenThis,
	"true":   TokenTrue,
	"var":    TokenVar,
	"while":  TokenWhile,
}

// LookupIdent determines if an identifier is a reserved keyword or a
// regular identifier
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TokenIdentifier
}

// IsKeyword checks if a string is a reserved Lox keyword
func IsKeyword(s string) bool {
	_, isKeyword := keywords[s]
	return isKeyword
}
