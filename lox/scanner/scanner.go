// File: scanner.go
// Title: Lox Lexical Analyzer
// Description: Implements the lexical analysis phase of the Lox frontend.
//              Performs a single forward pass over the source text and
//              produces an EOF-terminated token sequence. Lexical errors
//              are reported through the diagnostics sink and never abort
//              the scan.
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial scanner implementation

package scanner

import (
	"strconv"
	"unicode/utf8"

	loxlog "github.com/loxlang/loxgo/core/log"
	loxdiag "github.com/loxlang/loxgo/lox/diag"
)

// Scanner performs lexical analysis of Lox source text
type Scanner struct {
	source   string
	tokens   []Token
	start    int // Start of the lexeme being scanned
	current  int // Current position in source
	line     int // Current line number (1-based)
	reporter loxdiag.Reporter
	logger   *loxlog.Logger
}

// Options configures scanner behavior
type Options struct {
	// Reporter receives lexical error notifications (optional,
	// defaults to a stderr console reporter)
	Reporter loxdiag.Reporter

	// Logger for scanner diagnostics (optional, defaults to the
	// package default logger)
	Logger *loxlog.Logger
}

// New creates a new scanner for the given source text
func New(source string, opts ...Options) *Scanner {
	var options Options
	if len(opts) > 0 {
		options = opts[0]
	}
	if options.Reporter == nil {
		options.Reporter = loxdiag.Default()
	}
	if options.Logger == nil {
		options.Logger = loxlog.GetDefault()
	}

	return &Scanner{
		source:   source,
		tokens:   make([]Token, 0),
		line:     1,
		reporter: options.Reporter,
		logger:   options.Logger.WithField("component", "lox-scanner"),
	}
}

// ScanTokens scans the entire source and returns the token sequence.
// The sequence is always terminated by exactly one EOF token; malformed
// input is reported through the diagnostics sink and skipped.
func (s *Scanner) ScanTokens() []Token {
	for !s.isAtEnd() {
		s.start = s.current
		s.scanToken()
	}

	s.tokens = append(s.tokens, Token{
		Type:   TokenEOF,
		Lexeme: "",
		Line:   s.line,
	})

	s.logger.Debug("scan completed", loxlog.Fields{
		"sourceBytes": len(s.source),
		"tokens":      len(s.tokens),
		"lines":       s.line,
	})

	return s.tokens
}

// scanToken scans a single token starting at the current position
func (s *Scanner) scanToken() {
	c := s.advance()

	switch c {
	case '(':
		s.addToken(TokenLeftParen)
	case ')':
		s.addToken(TokenRightParen)
	case '{':
		s.addToken(TokenLeftBrace)
	case '}':
		s.addToken(TokenRightBrace)
	case ',':
		s.addToken(TokenComma)
	case '.':
		s.addToken(TokenDot)
	case '-':
		s.addToken(TokenMinus)
	case '+':
		s.addToken(TokenPlus)
	case ';':
		s.addToken(TokenSemicolon)
	case '*':
		s.addToken(TokenStar)
	case '!':
		if s.match('=') {
			s.addToken(TokenBangEqual)
		} else {
			s.addToken(TokenBang)
		}
	case '=':
		if s.match('=') {
			s.addToken(TokenEqualEqual)
		} else {
			s.addToken(TokenEqual)
		}
	case '<':
		if s.match('=') {
			s.addToken(TokenLessEqual)
		} else {
			s.addToken(TokenLess)
		}
	case '>':
		if s.match('=') {
			s.addToken(TokenGreaterEqual)
		} else {
			s.addToken(TokenGreater)
		}
	case '/':
		if s.match('/') {
			// Line comment, runs to end of line and produces no token
			for s.peek() != '\n' && !s.isAtEnd() {
				s.advance()
			}
		} else {
			s.addToken(TokenSlash)
		}
	case ' ', '\r', '\t':
		// Whitespace produces no token
	case '\n':
		s.line++
	case '"':
		s.scanString()
	default:
		if isDigit(c) {
			s.scanNumber()
		} else if isAlpha(c) {
			s.scanIdentifier()
		} else {
			if c >= utf8.RuneSelf {
				// Consume the remaining bytes of the multibyte character
				// so it is reported once, not once per byte
				_, size := utf8.DecodeRuneInString(s.source[s.start:])
				s.current = s.start + size
			}
			s.reporter.Report(s.line, "", "Unexpected character.")
		}
	}
}

// scanString scans a double-quoted string literal. Strings may span
// multiple lines; the literal payload excludes the quotes.
func (s *Scanner) scanString() {
	for s.peek() != '"' && !s.isAtEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}

	if s.isAtEnd() {
		// The partial token is dropped entirely
		s.reporter.Report(s.line, "", "Unterminated string.")
		return
	}

	s.advance() // closing quote

	value := s.source[s.start+1 : s.current-1]
	s.addTokenLiteral(TokenString, value)
}

// scanNumber scans an integer or decimal number literal. The decimal
// point is only consumed when followed by at least one digit, so "123."
// lexes as NUMBER(123) followed by DOT.
func (s *Scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.advance()
	}

	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance() // consume '.'
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	text := s.source[s.start:s.current]
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// Cannot happen for text matched by the rules above
		s.reporter.Report(s.line, "", "Invalid number literal.")
		return
	}
	s.addTokenLiteral(TokenNumber, value)
}

// scanIdentifier scans an identifier or reserved keyword
func (s *Scanner) scanIdentifier() {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}

	text := s.source[s.start:s.current]
	s.addToken(LookupIdent(text))
}

// advance consumes and returns the current character
func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	return c
}

// match conditionally consumes the expected character, providing the one
// character of lookahead needed for two-character operators
func (s *Scanner) match(expected byte) bool {
	if s.isAtEnd() {
		return false
	}
	if s.source[s.current] != expected {
		return false
	}
	s.current++
	return true
}

// peek returns the current character without advancing
func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

// peekNext returns the character after the current one without advancing
func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

// isAtEnd reports whether the whole source has been consumed
func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

// addToken appends a token without a literal payload
func (s *Scanner) addToken(tokenType TokenType) {
	s.addTokenLiteral(tokenType, nil)
}

// addTokenLiteral appends a token covering the current lexeme
func (s *Scanner) addTokenLiteral(tokenType TokenType, literal interface{}) {
	s.tokens = append(s.tokens, Token{
		Type:    tokenType,
		Lexeme:  s.source[s.start:s.current],
		Literal: literal,
		Line:    s.line,
	})
}

// Utility functions

// isDigit checks if the character is an ASCII digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// isAlpha checks if the character can start an identifier
func isAlpha(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

// isAlphaNumeric checks if the character can continue an identifier
func isAlphaNumeric(ch byte) bool {
	return isAlpha(ch) || isDigit(ch)
}

// Scan is a convenience function that scans source with default options
func Scan(source string) []Token {
	return New(source).ScanTokens()
}
