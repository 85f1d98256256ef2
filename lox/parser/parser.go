// File: parser.go
// Title: Lox Recursive Descent Parser
// Description: Implements the parsing phase of the Lox frontend. Converts
//              EOF-terminated token sequences into expression trees using
//              recursive descent with one grammar rule per method. Errors
//              are reported once through the diagnostics sink and surfaced
//              to the caller as a ParseError.
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial parser implementation

package parser

import (
	"fmt"

	loxlog "github.com/loxlang/loxgo/core/log"
	loxast "github.com/loxlang/loxgo/lox/ast"
	loxdiag "github.com/loxlang/loxgo/lox/diag"
	loxscanner "github.com/loxlang/loxgo/lox/scanner"
)

// Parser implements recursive descent parsing for Lox expressions.
// It reads an EOF-terminated token sequence through a cursor and never
// mutates the sequence.
type Parser struct {
	tokens   []loxscanner.Token
	current  int // Cursor into tokens
	reporter loxdiag.Reporter
	logger   *loxlog.Logger
}

// Options configures parser behavior
type Options struct {
	// Reporter receives syntax error notifications (optional,
	// defaults to a stderr console reporter)
	Reporter loxdiag.Reporter

	// Logger for parser diagnostics (optional, defaults to the
	// package default logger)
	Logger *loxlog.Logger
}

// ParseError represents a syntax error at a specific token
type ParseError struct {
	Token   loxscanner.Token
	Message string
}

func (pe *ParseError) Error() string {
	if pe.Token.Type == loxscanner.TokenEOF {
		return fmt.Sprintf("parse error at end: %s", pe.Message)
	}
	return fmt.Sprintf("parse error at line %d near '%s': %s",
		pe.Token.Line, pe.Token.Lexeme, pe.Message)
}

// New creates a new parser over the given token sequence. The sequence
// must be EOF-terminated, as produced by the scanner.
func New(tokens []loxscanner.Token, opts ...Options) *Parser {
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

	return &Parser{
		tokens:   tokens,
		reporter: options.Reporter,
		logger:   options.Logger.WithField("component", "lox-parser"),
	}
}

// Parse parses a single expression and returns its tree. On a syntax
// error the offending token has already been reported through the
// diagnostics sink and the parser has synchronized to a likely statement
// boundary, so the caller may continue with the remaining tokens.
func (p *Parser) Parse() (loxast.Expr, error) {
	p.logger.Debug("starting parse", loxlog.Fields{
		"tokens": len(p.tokens),
	})

	expr, err := p.expression()
	if err != nil {
		p.logger.Warn("parse failed", loxlog.Fields{
			"error": err.Error(),
		})
		p.synchronize()
		return nil, err
	}

	p.logger.Debug("parse completed", loxlog.Fields{
		"consumed": p.current,
	})

	return expr, nil
}

// AtEnd reports whether the cursor has reached the EOF token
func (p *Parser) AtEnd() bool {
	return p.isAtEnd()
}

// Grammar rules, one method per precedence level. Each binary level
// parses its higher-precedence operand first and then folds further
// operands into a left-leaning tree, which makes every binary operator
// left-associative.

// expression → equality
func (p *Parser) expression() (loxast.Expr, error) {
	return p.equality()
}

// equality → comparison ( ( "!=" | "==" ) comparison )*
func (p *Parser) equality() (loxast.Expr, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}

	for p.match(loxscanner.TokenBangEqual, loxscanner.TokenEqualEqual) {
		operator := p.previous()
		op, ok := BinaryOpFor(operator.Type)
		if !ok {
			return nil, p.errorAt(operator, "Expect expression.")
		}

		right, err := p.comparison()
		if err != nil {
			return nil, err
		}

		expr = &loxast.BinaryExpr{
			Left:    expr,
			Op:      op,
			Right:   right,
			LineNum: operator.Line,
		}
	}

	return expr, nil
}

// comparison → term ( ( ">" | ">=" | "<" | "<=" ) term )*
func (p *Parser) comparison() (loxast.Expr, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}

	for p.match(loxscanner.TokenGreater, loxscanner.TokenGreaterEqual,
		loxscanner.TokenLess, loxscanner.TokenLessEqual) {
		operator := p.previous()
		op, ok := BinaryOpFor(operator.Type)
		if !ok {
			return nil, p.errorAt(operator, "Expect expression.")
		}

		right, err := p.term()
		if err != nil {
			return nil, err
		}

		expr = &loxast.BinaryExpr{
			Left:    expr,
			Op:      op,
			Right:   right,
			LineNum: operator.Line,
		}
	}

	return expr, nil
}

// term → factor ( ( "-" | "+" ) factor )*
func (p *Parser) term() (loxast.Expr, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}

	for p.match(loxscanner.TokenMinus, loxscanner.TokenPlus) {
		operator := p.previous()
		op, ok := BinaryOpFor(operator.Type)
		if !ok {
			return nil, p.errorAt(operator, "Expect expression.")
		}

		right, err := p.factor()
		if err != nil {
			return nil, err
		}

		expr = &loxast.BinaryExpr{
			Left:    expr,
			Op:      op,
			Right:   right,
			LineNum: operator.Line,
		}
	}

	return expr, nil
}

// factor → unary ( ( "/" | "*" ) unary )*
func (p *Parser) factor() (loxast.Expr, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}

	for p.match(loxscanner.TokenSlash, loxscanner.TokenStar) {
		operator := p.previous()
		op, ok := BinaryOpFor(operator.Type)
		if !ok {
			return nil, p.errorAt(operator, "Expect expression.")
		}

		right, err := p.unary()
		if err != nil {
			return nil, err
		}

		expr = &loxast.BinaryExpr{
			Left:    expr,
			Op:      op,
			Right:   right,
			LineNum: operator.Line,
		}
	}

	return expr, nil
}

// unary → ( "!" | "-" ) unary | primary
func (p *Parser) unary() (loxast.Expr, error) {
	if p.match(loxscanner.TokenBang, loxscanner.TokenMinus) {
		operator := p.previous()
		op, ok := UnaryOpFor(operator.Type)
		if !ok {
			return nil, p.errorAt(operator, "Expect expression.")
		}

		operand, err := p.unary()
		if err != nil {
			return nil, err
		}

		return &loxast.UnaryExpr{
			Op:      op,
			Operand: operand,
			LineNum: operator.Line,
		}, nil
	}

	return p.primary()
}

// primary → NUMBER | STRING | "true" | "false" | "nil" | "(" expression ")"
func (p *Parser) primary() (loxast.Expr, error) {
	switch {
	case p.match(loxscanner.TokenFalse):
		return &loxast.LiteralExpr{
			Value:   loxast.BoolValue(false),
			LineNum: p.previous().Line,
		}, nil

	case p.match(loxscanner.TokenTrue):
		return &loxast.LiteralExpr{
			Value:   loxast.BoolValue(true),
			LineNum: p.previous().Line,
		}, nil

	case p.match(loxscanner.TokenNil):
		return &loxast.LiteralExpr{
			Value:   loxast.NilValue(),
			LineNum: p.previous().Line,
		}, nil

	case p.match(loxscanner.TokenNumber):
		token := p.previous()
		value, _ := token.NumberValue()
		return &loxast.LiteralExpr{
			Value:   loxast.NumberValue(value),
			LineNum: token.Line,
		}, nil

	case p.match(loxscanner.TokenString):
		token := p.previous()
		value, _ := token.StringValue()
		return &loxast.LiteralExpr{
			Value:   loxast.StringValue(value),
			LineNum: token.Line,
		}, nil

	case p.match(loxscanner.TokenLeftParen):
		line := p.previous().Line
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(loxscanner.TokenRightParen, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return &loxast.GroupingExpr{
			Inner:   inner,
			LineNum: line,
		}, nil
	}

	return nil, p.errorAt(p.peek(), "Expect expression.")
}

// Cursor primitives

// match consumes the current token if it has one of the given types
func (p *Parser) match(types ...loxscanner.TokenType) bool {
	for _, tokenType := range types {
		if p.check(tokenType) {
			p.advance()
			return true
		}
	}
	return false
}

// check reports whether the current token has the given type without
// consuming it
func (p *Parser) check(tokenType loxscanner.TokenType) bool {
	if p.isAtEnd() {
		return tokenType == loxscanner.TokenEOF
	}
	return p.peek().Type == tokenType
}

// advance consumes and returns the current token. The cursor never moves
// past the EOF token.
func (p *Parser) advance() loxscanner.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

// consume consumes the current token if it has the expected type, or
// reports and returns a ParseError at the current token
func (p *Parser) consume(tokenType loxscanner.TokenType, message string) (loxscanner.Token, error) {
	if p.check(tokenType) {
		return p.advance(), nil
	}
	return loxscanner.Token{}, p.errorAt(p.peek(), message)
}

// peek returns the current token without consuming it
func (p *Parser) peek() loxscanner.Token {
	return p.tokens[p.current]
}

// previous returns the most recently consumed token
func (p *Parser) previous() loxscanner.Token {
	return p.tokens[p.current-1]
}

// isAtEnd reports whether the cursor is at the EOF token
func (p *Parser) isAtEnd() bool {
	return p.peek().Type == loxscanner.TokenEOF
}

// errorAt reports a syntax error at the given token through the
// diagnostics sink and returns the matching ParseError. Each failure is
// reported exactly once, here.
func (p *Parser) errorAt(token loxscanner.Token, message string) error {
	if token.Type == loxscanner.TokenEOF {
		p.reporter.Report(token.Line, " at end", message)
	} else {
		p.reporter.Report(token.Line, fmt.Sprintf(" at '%s'", token.Lexeme), message)
	}
	return &ParseError{Token: token, Message: message}
}

// synchronize skips tokens until a likely statement boundary: just past
// a semicolon, or just before a statement keyword. This keeps one syntax
// error from cascading into spurious reports for the rest of the input.
func (p *Parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Type == loxscanner.TokenSemicolon {
			return
		}

		switch p.peek().Type {
		case loxscanner.TokenClass, loxscanner.TokenFun, loxscanner.TokenVar,
			loxscanner.TokenFor, loxscanner.TokenIf, loxscanner.TokenWhile,
			loxscanner.TokenPrint, loxscanner.TokenReturn:
			return
		}

		p.advance()
	}
}

// Parse is a convenience function that parses tokens with default options
func Parse(tokens []loxscanner.Token) (loxast.Expr, error) {
	return New(tokens).Parse()
}
