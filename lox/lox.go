// File: lox.go
// Title: Lox Frontend Engine
// Description: Provides the main Lox frontend interface and high-level API
//              for scanning and parsing Lox source. Integrates scanner,
//              parser and diagnostics components behind a single facade.
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial engine implementation

package lox

import (
	"errors"
	"fmt"

	loxlog "github.com/loxlang/loxgo/core/log"
	loxast "github.com/loxlang/loxgo/lox/ast"
	loxdiag "github.com/loxlang/loxgo/lox/diag"
	loxparser "github.com/loxlang/loxgo/lox/parser"
	loxscanner "github.com/loxlang/loxgo/lox/scanner"
	loxstringx "github.com/loxlang/loxgo/utils/stringx"
)

// maxLoggedSourceLen bounds the source excerpt carried in log fields
const maxLoggedSourceLen = 160

// Engine represents the Lox frontend, coordinating scanning, parsing and
// diagnostics. Instances share no state; each call runs on fresh scanner
// and parser instances, so an Engine is safe for concurrent use.
type Engine struct {
	reporter loxdiag.Reporter
	logger   *loxlog.Logger
	options  Options
}

// Options configures the Lox frontend behavior
type Options struct {
	// Logger for frontend operations (optional, defaults to default logger)
	Logger *loxlog.Logger

	// Reporter receives scan and parse diagnostics (optional, defaults to
	// a stderr console reporter)
	Reporter loxdiag.Reporter

	// MaxSourceLength limits input source length in bytes (default: 65536)
	MaxSourceLength int
}

// Result represents the outcome of parsing a piece of source
type Result struct {
	// Source is the original input
	Source string

	// Tokens is the scanned token sequence, EOF-terminated
	Tokens []loxscanner.Token

	// Expr is the parsed expression tree, nil on parse failure
	Expr loxast.Expr
}

// NewEngine creates a new Lox frontend with the specified options
func NewEngine(opts ...Options) (*Engine, error) {
	// Default options
	options := Options{
		Logger:          loxlog.GetDefault(),
		Reporter:        loxdiag.Default(),
		MaxSourceLength: 65536,
	}

	// Apply provided options
	if len(opts) > 0 {
		provided := opts[0]
		if provided.Logger != nil {
			options.Logger = provided.Logger
		}
		if provided.Reporter != nil {
			options.Reporter = provided.Reporter
		}
		if provided.MaxSourceLength > 0 {
			options.MaxSourceLength = provided.MaxSourceLength
		}
	}

	logger := options.Logger.WithField("component", "lox-engine")

	engine := &Engine{
		reporter: options.Reporter,
		logger:   logger,
		options:  options,
	}

	logger.Info("lox engine initialized", loxlog.Fields{
		"maxSourceLength": options.MaxSourceLength,
	})

	return engine, nil
}

// Scan runs lexical analysis on the given source and returns the
// EOF-terminated token sequence. Lexical errors go to the reporter and
// never abort the scan.
func (e *Engine) Scan(source string) ([]loxscanner.Token, error) {
	if err := e.validateInput(source); err != nil {
		return nil, err
	}

	s := loxscanner.New(source, loxscanner.Options{
		Reporter: e.reporter,
		Logger:   e.logger,
	})

	return s.ScanTokens(), nil
}

// Parse scans and parses the given source into an expression tree. The
// returned Result always carries the token sequence; Expr is nil when
// parsing failed, in which case the error is the parser's ParseError.
func (e *Engine) Parse(source string) (*Result, error) {
	tokens, err := e.Scan(source)
	if err != nil {
		return nil, err
	}

	p := loxparser.New(tokens, loxparser.Options{
		Reporter: e.reporter,
		Logger:   e.logger,
	})

	expr, err := p.Parse()
	if err != nil {
		e.logger.Warn("parse failed", loxlog.Fields{
			"source": logSource(source),
			"error":  err.Error(),
		})
		return &Result{Source: source, Tokens: tokens}, fmt.Errorf("failed to parse source: %w", err)
	}

	// Trailing tokens after a complete expression are not an error at
	// this level; drivers decide what to do with the rest
	if !p.AtEnd() {
		e.logger.Debug("trailing tokens after expression", loxlog.Fields{
			"source": logSource(source),
		})
	}

	e.logger.Debug("source parsed", loxlog.Fields{
		"source": logSource(source),
		"tokens": len(tokens),
	})

	return &Result{
		Source: source,
		Tokens: tokens,
		Expr:   expr,
	}, nil
}

// Validate checks whether the source is a syntactically valid expression
func (e *Engine) Validate(source string) error {
	_, err := e.Parse(source)
	return err
}

// logSource shapes source text for log fields so entries stay bounded
// even when the input approaches MaxSourceLength
func logSource(source string) string {
	return loxstringx.Truncate(source, maxLoggedSourceLen, "...")
}

// validateInput validates the raw source text before scanning
func (e *Engine) validateInput(source string) error {
	if loxstringx.IsBlank(source) {
		return errors.New("source input cannot be empty")
	}

	if len(source) > e.options.MaxSourceLength {
		return fmt.Errorf("source input exceeds maximum length: %d > %d",
			len(source), e.options.MaxSourceLength)
	}

	return nil
}
