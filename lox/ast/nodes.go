// File: nodes.go
// Title: Lox AST Node Definitions
// Description: Defines the expression tree produced by the parser: the
//              Literal, Unary, Binary and Grouping variants, the literal
//              value model, and the narrow operator types that make it
//              impossible to store a non-operator token kind in an
//              operator position.
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial AST node definitions

package ast

import (
	"fmt"
	"strconv"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// String returns a source-form representation of the node
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Line returns the source line the node starts on
	Line() int
}

// Expr represents the base interface for all expressions
type Expr interface {
	Node
	exprNode() // marker method
}

// BinaryOp enumerates the operators that may appear in a Binary node
type BinaryOp int

const (
	OpEqualEqual   BinaryOp = iota // ==
	OpBangEqual                    // !=
	OpLess                         // <
	OpLessEqual                    // <=
	OpGreater                      // >
	OpGreaterEqual                 // >=
	OpPlus                         // +
	OpMinus                        // -
	OpStar                         // *
	OpSlash                        // /
)

// String returns the source spelling of the operator
func (op BinaryOp) String() string {
	switch op {
	case OpEqualEqual:
		return "=="
	case OpBangEqual:
		return "!="
	case OpLess:
		return "<"
	case OpLessEqual:
		return "<="
	case OpGreater:
		return ">"
	case OpGreaterEqual:
		return ">="
	case OpPlus:
		return "+"
	case OpMinus:
		return "-"
	case OpStar:
		return "*"
	case OpSlash:
		return "/"
	default:
		return "?"
	}
}

// UnaryOp enumerates the operators that may appear in a Unary node
type UnaryOp int

const (
	OpNegate UnaryOp = iota // -
	OpNot                   // !
)

// String returns the source spelling of the operator
func (op UnaryOp) String() string {
	switch op {
	case OpNegate:
		return "-"
	case OpNot:
		return "!"
	default:
		return "?"
	}
}

// ValueKind represents the kind of a literal value
type ValueKind int

const (
	ValueNumber ValueKind = iota
	ValueString
	ValueBool
	ValueNil
)

// String returns string representation of ValueKind
func (vk ValueKind) String() string {
	switch vk {
	case ValueNumber:
		return "number"
	case ValueString:
		return "string"
	case ValueBool:
		return "boolean"
	case ValueNil:
		return "nil"
	default:
		return "unknown"
	}
}

// Value represents a literal value (number, string, boolean, nil)
type Value struct {
	Kind  ValueKind   // Kind of the value
	Value interface{} // float64, string, bool, or nil
}

// NumberValue creates a number literal value
func NumberValue(f float64) Value {
	return Value{Kind: ValueNumber, Value: f}
}

// StringValue creates a string literal value
func StringValue(s string) Value {
	return Value{Kind: ValueString, Value: s}
}

// BoolValue creates a boolean literal value
func BoolValue(b bool) Value {
	return Value{Kind: ValueBool, Value: b}
}

// NilValue creates a nil literal value
func NilValue() Value {
	return Value{Kind: ValueNil, Value: nil}
}

// String returns the debug spelling of the value. Strings are quoted with
// Go escaping so control characters stay visible; numbers may use exponent
// notation. Not guaranteed to re-lex as Lox; use Source for that.
func (v Value) String() string {
	switch v.Kind {
	case ValueNumber:
		if f, ok := v.Value.(float64); ok {
			return strconv.FormatFloat(f, 'g', -1, 64)
		}
		return fmt.Sprintf("%v", v.Value)
	case ValueString:
		if s, ok := v.Value.(string); ok {
			return strconv.Quote(s)
		}
		return fmt.Sprintf("%v", v.Value)
	case ValueBool:
		if b, ok := v.Value.(bool); ok && b {
			return "true"
		}
		return "false"
	case ValueNil:
		return "nil"
	default:
		return fmt.Sprintf("%v", v.Value)
	}
}

// Source returns the value spelled as scannable Lox source. String payloads
// go between plain quotes without escaping: the scanner performs no
// unescaping, so the payload of a scanned string can never contain a quote
// and round-trips verbatim (newlines included). Numbers use plain decimal
// notation since the scanner does not read exponent forms.
func (v Value) Source() string {
	switch v.Kind {
	case ValueNumber:
		if f, ok := v.Value.(float64); ok {
			return strconv.FormatFloat(f, 'f', -1, 64)
		}
	case ValueString:
		if s, ok := v.Value.(string); ok {
			return `"` + s + `"`
		}
	}
	return v.String()
}

// Number returns the numeric payload if the value holds one
func (v Value) Number() (float64, bool) {
	f, ok := v.Value.(float64)
	return f, ok
}

// Text returns the string payload if the value holds one
func (v Value) Text() (string, bool) {
	s, ok := v.Value.(string)
	return s, ok
}

// Bool returns the boolean payload if the value holds one
func (v Value) Bool() (bool, bool) {
	b, ok := v.Value.(bool)
	return b, ok
}

// IsNil returns true for the nil literal
func (v Value) IsNil() bool {
	return v.Kind == ValueNil
}

// Expression node types. Each node exclusively owns its children; trees
// are built bottom-up by the parser and never mutated afterwards.

// LiteralExpr represents a literal value expression
type LiteralExpr struct {
	Value   Value // Literal value
	LineNum int   // Source line
}

// UnaryExpr represents a prefix operator expression (-x, !x)
type UnaryExpr struct {
	Op      UnaryOp // Operator
	Operand Expr    // Operand, exclusively owned
	LineNum int     // Source line of the operator
}

// BinaryExpr represents an infix operator expression (a + b, a == b, ...)
type BinaryExpr struct {
	Left    Expr     // Left operand, exclusively owned
	Op      BinaryOp // Operator
	Right   Expr     // Right operand, exclusively owned
	LineNum int      // Source line of the operator
}

// GroupingExpr represents a parenthesized sub-expression
type GroupingExpr struct {
	Inner   Expr // Grouped expression, exclusively owned
	LineNum int  // Source line of the opening paren
}

// Implementation of Expr for LiteralExpr

func (le *LiteralExpr) String() string {
	return le.Value.Source()
}

func (le *LiteralExpr) Accept(visitor Visitor) interface{} {
	return visitor.VisitLiteral(le)
}

func (le *LiteralExpr) Line() int { return le.LineNum }

func (le *LiteralExpr) exprNode() {}

// Implementation of Expr for UnaryExpr

func (ue *UnaryExpr) String() string {
	return fmt.Sprintf("%s%s", ue.Op.String(), ue.Operand.String())
}

func (ue *UnaryExpr) Accept(visitor Visitor) interface{} {
	return visitor.VisitUnary(ue)
}

func (ue *UnaryExpr) Line() int { return ue.LineNum }

func (ue *UnaryExpr) exprNode() {}

// Implementation of Expr for BinaryExpr

func (be *BinaryExpr) String() string {
	return fmt.Sprintf("%s %s %s", be.Left.String(), be.Op.String(), be.Right.String())
}

func (be *BinaryExpr) Accept(visitor Visitor) interface{} {
	return visitor.VisitBinary(be)
}

func (be *BinaryExpr) Line() int { return be.LineNum }

func (be *BinaryExpr) exprNode() {}

// Implementation of Expr for GroupingExpr

func (ge *GroupingExpr) String() string {
	return fmt.Sprintf("(%s)", ge.Inner.String())
}

func (ge *GroupingExpr) Accept(visitor Visitor) interface{} {
	return visitor.VisitGrouping(ge)
}

func (ge *GroupingExpr) Line() int { return ge.LineNum }

func (ge *GroupingExpr) exprNode() {}
