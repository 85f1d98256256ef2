// File: ast_test.go
// Title: Lox AST Unit Tests
// Description: Unit tests for the AST node types, value model, visitors
//              and the source printer.
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial test suite

package ast

import (
	"strings"
	"testing"
)

func num(f float64) *LiteralExpr {
	return &LiteralExpr{Value: NumberValue(f), LineNum: 1}
}

func TestValue_String(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{"Integer number", NumberValue(123), "123"},
		{"Decimal number", NumberValue(1.5), "1.5"},
		{"String", StringValue("hi"), `"hi"`},
		{"String with quotes", StringValue(`say "hi"`), `"say \"hi\""`},
		{"True", BoolValue(true), "true"},
		{"False", BoolValue(false), "false"},
		{"Nil", NilValue(), "nil"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValue_Source(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{"Integer number", NumberValue(123), "123"},
		{"Decimal number", NumberValue(1.5), "1.5"},
		{"Large number stays decimal", NumberValue(1e22), "10000000000000000000000"},
		{"String", StringValue("hi"), `"hi"`},
		{"Multi-line string stays raw", StringValue("one\ntwo"), "\"one\ntwo\""},
		{"Backslash stays raw", StringValue(`a\b`), `"a\b"`},
		{"True", BoolValue(true), "true"},
		{"Nil", NilValue(), "nil"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.Source(); got != tt.want {
				t.Errorf("Source() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValue_Accessors(t *testing.T) {
	if f, ok := NumberValue(2.5).Number(); !ok || f != 2.5 {
		t.Error("Number() should return the payload")
	}
	if _, ok := StringValue("x").Number(); ok {
		t.Error("Number() on a string should not be ok")
	}
	if s, ok := StringValue("x").Text(); !ok || s != "x" {
		t.Error("Text() should return the payload")
	}
	if b, ok := BoolValue(true).Bool(); !ok || !b {
		t.Error("Bool() should return the payload")
	}
	if !NilValue().IsNil() {
		t.Error("IsNil() should be true for the nil literal")
	}
	if NumberValue(0).IsNil() {
		t.Error("IsNil() should be false for a number")
	}
}

func TestOperator_String(t *testing.T) {
	binary := map[BinaryOp]string{
		OpEqualEqual: "==", OpBangEqual: "!=",
		OpLess: "<", OpLessEqual: "<=",
		OpGreater: ">", OpGreaterEqual: ">=",
		OpPlus: "+", OpMinus: "-", OpStar: "*", OpSlash: "/",
	}
	for op, want := range binary {
		if got := op.String(); got != want {
			t.Errorf("BinaryOp.String() = %q, want %q", got, want)
		}
	}

	if OpNegate.String() != "-" || OpNot.String() != "!" {
		t.Error("UnaryOp.String() mismatch")
	}
}

func TestExpr_String(t *testing.T) {
	// -(1 + 2) * 3 built by hand
	expr := &BinaryExpr{
		Left: &UnaryExpr{
			Op: OpNegate,
			Operand: &GroupingExpr{
				Inner: &BinaryExpr{
					Left:  num(1),
					Op:    OpPlus,
					Right: num(2),
				},
			},
		},
		Op:    OpStar,
		Right: num(3),
	}

	if got := expr.String(); got != "-(1 + 2) * 3" {
		t.Errorf("String() = %q, want %q", got, "-(1 + 2) * 3")
	}
}

func TestSourcePrinter(t *testing.T) {
	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{"Literal", num(42), "42"},
		{"Unary", &UnaryExpr{Op: OpNot, Operand: &LiteralExpr{Value: BoolValue(true)}}, "!true"},
		{
			"Binary",
			&BinaryExpr{Left: num(1), Op: OpLessEqual, Right: num(2)},
			"1 <= 2",
		},
		{
			"Grouping",
			&GroupingExpr{Inner: &BinaryExpr{Left: num(1), Op: OpPlus, Right: num(2)}},
			"(1 + 2)",
		},
		{
			"Nested",
			&BinaryExpr{
				Left:  &UnaryExpr{Op: OpNegate, Operand: num(1)},
				Op:    OpStar,
				Right: &GroupingExpr{Inner: num(2)},
			},
			"-1 * (2)",
		},
		{
			"String with newline and backslash prints raw",
			&LiteralExpr{Value: StringValue("one\ntwo \\ three")},
			"\"one\ntwo \\ three\"",
		},
		{
			"Large number prints without exponent",
			num(1e22),
			"10000000000000000000000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PrintSource(tt.expr); got != tt.want {
				t.Errorf("PrintSource() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeVisitor(t *testing.T) {
	expr := &BinaryExpr{
		Left:  num(1),
		Op:    OpPlus,
		Right: &UnaryExpr{Op: OpNegate, Operand: num(2)},
	}

	got := TreeString(expr)

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	want := []string{
		"Binary +",
		"  Literal 1 (number)",
		"  Unary -",
		"    Literal 2 (number)",
	}

	if len(lines) != len(want) {
		t.Fatalf("line count = %d, want %d\n%s", len(lines), len(want), got)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestCollectorVisitor(t *testing.T) {
	// (1 + 2) * -3
	expr := &BinaryExpr{
		Left: &GroupingExpr{
			Inner: &BinaryExpr{Left: num(1), Op: OpPlus, Right: num(2)},
		},
		Op:    OpStar,
		Right: &UnaryExpr{Op: OpNegate, Operand: num(3)},
	}

	collected := CollectNodes(expr)

	if len(collected.Literals) != 3 {
		t.Errorf("literals = %d, want 3", len(collected.Literals))
	}
	if len(collected.Binaries) != 2 {
		t.Errorf("binaries = %d, want 2", len(collected.Binaries))
	}
	if len(collected.Unaries) != 1 {
		t.Errorf("unaries = %d, want 1", len(collected.Unaries))
	}
	if len(collected.Groupings) != 1 {
		t.Errorf("groupings = %d, want 1", len(collected.Groupings))
	}

	collected.Reset()
	if len(collected.Literals) != 0 || len(collected.Binaries) != 0 {
		t.Error("Reset should clear collected nodes")
	}
}

// literalCounter embeds BaseVisitor for the terminal methods and owns
// the traversal itself, like the collector does
type literalCounter struct {
	BaseVisitor
	count int
}

func (lc *literalCounter) VisitLiteral(expr *LiteralExpr) interface{} {
	lc.count++
	return nil
}

func (lc *literalCounter) VisitBinary(expr *BinaryExpr) interface{} {
	expr.Left.Accept(lc)
	expr.Right.Accept(lc)
	return nil
}

func (lc *literalCounter) VisitGrouping(expr *GroupingExpr) interface{} {
	return expr.Inner.Accept(lc)
}

func TestCustomVisitor(t *testing.T) {
	expr := &GroupingExpr{
		Inner: &BinaryExpr{Left: num(1), Op: OpMinus, Right: num(2)},
	}

	counter := &literalCounter{}
	expr.Accept(counter)

	if counter.count != 2 {
		t.Errorf("literal count = %d, want 2", counter.count)
	}
}

func TestNode_Line(t *testing.T) {
	expr := &BinaryExpr{
		Left:    &LiteralExpr{Value: NumberValue(1), LineNum: 3},
		Op:      OpPlus,
		Right:   &LiteralExpr{Value: NumberValue(2), LineNum: 4},
		LineNum: 3,
	}

	if expr.Line() != 3 {
		t.Errorf("Line() = %d, want 3", expr.Line())
	}
	if expr.Right.Line() != 4 {
		t.Errorf("right.Line() = %d, want 4", expr.Right.Line())
	}
}
