// File: lox_test.go
// Title: Lox Engine Unit Tests
// Description: End-to-end tests for the frontend engine: option
//              defaulting, input validation, scan/parse round trips and
//              the print-reparse idempotence property.
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial test suite

package lox

import (
	"bytes"
	"strings"
	"testing"

	loxlog "github.com/loxlang/loxgo/core/log"
	loxast "github.com/loxlang/loxgo/lox/ast"
	loxdiag "github.com/loxlang/loxgo/lox/diag"
	loxscanner "github.com/loxlang/loxgo/lox/scanner"
)

func newTestEngine(t *testing.T) (*Engine, *loxdiag.Collector) {
	t.Helper()
	collector := loxdiag.NewCollector()
	engine, err := NewEngine(Options{Reporter: collector})
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	return engine, collector
}

func TestNewEngine_Defaults(t *testing.T) {
	engine, err := NewEngine()
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	if engine.options.MaxSourceLength != 65536 {
		t.Errorf("MaxSourceLength = %d, want 65536", engine.options.MaxSourceLength)
	}
	if engine.reporter == nil || engine.logger == nil {
		t.Error("defaults should be filled in")
	}
}

func TestEngine_Scan(t *testing.T) {
	engine, collector := newTestEngine(t)

	tokens, err := engine.Scan("1 + 2")
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if collector.HadError() {
		t.Fatalf("unexpected diagnostics: %v", collector.Entries())
	}

	types := []loxscanner.TokenType{
		loxscanner.TokenNumber, loxscanner.TokenPlus,
		loxscanner.TokenNumber, loxscanner.TokenEOF,
	}
	if len(tokens) != len(types) {
		t.Fatalf("token count = %d, want %d", len(tokens), len(types))
	}
	for i, want := range types {
		if tokens[i].Type != want {
			t.Errorf("token %d = %s, want %s", i, tokens[i].Type, want)
		}
	}
}

func TestEngine_InputValidation(t *testing.T) {
	collector := loxdiag.NewCollector()
	engine, err := NewEngine(Options{Reporter: collector, MaxSourceLength: 8})
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	if _, err := engine.Scan(""); err == nil {
		t.Error("empty source should be rejected")
	}
	if _, err := engine.Scan("   \t\n"); err == nil {
		t.Error("blank source should be rejected")
	}
	if _, err := engine.Scan("1 + 2 + 3 + 4"); err == nil {
		t.Error("oversized source should be rejected")
	}
	if _, err := engine.Scan("1 + 2"); err != nil {
		t.Errorf("valid source rejected: %v", err)
	}
}

func TestEngine_Parse(t *testing.T) {
	engine, collector := newTestEngine(t)

	result, err := engine.Parse("1 + 2 * 3")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if collector.HadError() {
		t.Fatalf("unexpected diagnostics: %v", collector.Entries())
	}
	if result.Expr == nil {
		t.Fatal("result should carry an expression")
	}
	if len(result.Tokens) == 0 {
		t.Error("result should carry the token sequence")
	}

	// Precedence check through the printed source
	if got := loxast.PrintSource(result.Expr); got != "1 + 2 * 3" {
		t.Errorf("printed source = %q", got)
	}
	root, ok := result.Expr.(*loxast.BinaryExpr)
	if !ok || root.Op != loxast.OpPlus {
		t.Errorf("root should be +, got %v", result.Expr)
	}
}

func TestEngine_ParseError(t *testing.T) {
	engine, collector := newTestEngine(t)

	result, err := engine.Parse("(1 + 2")
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if collector.ErrorCount() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", collector.ErrorCount())
	}
	if result == nil || result.Expr != nil {
		t.Error("failed parse should return tokens without an expression")
	}
}

func TestEngine_Validate(t *testing.T) {
	engine, _ := newTestEngine(t)

	if err := engine.Validate("(1 + 2) * -3"); err != nil {
		t.Errorf("valid source rejected: %v", err)
	}
	if err := engine.Validate("1 +"); err == nil {
		t.Error("invalid source accepted")
	}
}

func TestEngine_PrintReparseIdempotence(t *testing.T) {
	sources := []string{
		"1 + 2 * 3",
		"(1 + 2) * 3",
		"-(1 + 2)",
		"!!true == false",
		`"a" != "b"`,
		"1 < 2 <= 3 > 0 >= -1",
		"((((42))))",
		"nil == nil",
		"\"one\ntwo\" == \"three\"",
		`"back\slash"`,
		"10000000000000000000000 + 1",
	}

	engine, collector := newTestEngine(t)

	for _, source := range sources {
		t.Run(source, func(t *testing.T) {
			collector.Reset()

			first, err := engine.Parse(source)
			if err != nil {
				t.Fatalf("parse failed: %v", err)
			}

			printed := loxast.PrintSource(first.Expr)
			second, err := engine.Parse(printed)
			if err != nil {
				t.Fatalf("reparse of %q failed: %v", printed, err)
			}

			// Printing the reparsed tree must reproduce the text exactly,
			// which pins the two trees to the same structure
			if got := loxast.PrintSource(second.Expr); got != printed {
				t.Errorf("print(reparse) = %q, want %q", got, printed)
			}
		})
	}
}

func TestEngine_LiteralPayloadsSurviveRoundTrip(t *testing.T) {
	engine, _ := newTestEngine(t)

	t.Run("Multi-line string", func(t *testing.T) {
		first, err := engine.Parse("\"one\ntwo\"")
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}

		second, err := engine.Parse(loxast.PrintSource(first.Expr))
		if err != nil {
			t.Fatalf("reparse failed: %v", err)
		}

		lit, ok := second.Expr.(*loxast.LiteralExpr)
		if !ok {
			t.Fatalf("reparse produced %T, want literal", second.Expr)
		}
		if s, _ := lit.Value.Text(); s != "one\ntwo" {
			t.Errorf("payload = %q, want %q", s, "one\ntwo")
		}
	})

	t.Run("Large number", func(t *testing.T) {
		first, err := engine.Parse("10000000000000000000000")
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}

		printed := loxast.PrintSource(first.Expr)
		if printed != "10000000000000000000000" {
			t.Fatalf("printed = %q, want plain decimal", printed)
		}

		second, err := engine.Parse(printed)
		if err != nil {
			t.Fatalf("reparse failed: %v", err)
		}

		lit, ok := second.Expr.(*loxast.LiteralExpr)
		if !ok {
			t.Fatalf("reparse produced %T, want literal", second.Expr)
		}
		if f, _ := lit.Value.Number(); f != 1e22 {
			t.Errorf("payload = %v, want 1e22", f)
		}
	})
}

func TestEngine_TruncatesLoggedSource(t *testing.T) {
	var buf bytes.Buffer
	logger := loxlog.NewWithConfig(loxlog.Config{
		Level:  loxlog.LevelDebug,
		Format: loxlog.FormatJSON,
		Output: &buf,
	})

	engine, err := NewEngine(Options{
		Reporter: loxdiag.NewCollector(),
		Logger:   logger,
	})
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	source := "0" + strings.Repeat(" + 0", 100)
	if _, err := engine.Parse(source); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if strings.Contains(buf.String(), source) {
		t.Error("log output should carry a bounded source excerpt, not the full text")
	}
	if !strings.Contains(buf.String(), "...") {
		t.Error("truncated source excerpt should end with an ellipsis")
	}
}

func TestEngine_ConcurrentUse(t *testing.T) {
	engine, _ := newTestEngine(t)

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 50; j++ {
				engine.Parse("1 + 2 * (3 - 4)")
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
