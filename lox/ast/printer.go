// File: printer.go
// Title: Lox Source Printer
// Description: Prints a parsed expression tree back to Lox source text.
//              The output is itself parseable, and reparsing it yields a
//              structurally identical tree: grouping nodes reproduce their
//              parentheses, binary and unary nodes print without adding any.
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial source printer

package ast

import (
	"fmt"
	"strings"
)

// SourcePrinter renders expressions as parseable Lox source
type SourcePrinter struct {
	BaseVisitor
	buffer strings.Builder
}

// NewSourcePrinter creates a new source printer
func NewSourcePrinter() *SourcePrinter {
	return &SourcePrinter{}
}

// Print renders the expression and returns the source text
func (sp *SourcePrinter) Print(expr Expr) string {
	sp.buffer.Reset()
	expr.Accept(sp)
	return sp.buffer.String()
}

func (sp *SourcePrinter) VisitLiteral(expr *LiteralExpr) interface{} {
	sp.buffer.WriteString(expr.Value.Source())
	return nil
}

func (sp *SourcePrinter) VisitUnary(expr *UnaryExpr) interface{} {
	sp.buffer.WriteString(expr.Op.String())
	expr.Operand.Accept(sp)
	return nil
}

func (sp *SourcePrinter) VisitBinary(expr *BinaryExpr) interface{} {
	expr.Left.Accept(sp)
	sp.buffer.WriteString(fmt.Sprintf(" %s ", expr.Op.String()))
	expr.Right.Accept(sp)
	return nil
}

func (sp *SourcePrinter) VisitGrouping(expr *GroupingExpr) interface{} {
	sp.buffer.WriteString("(")
	expr.Inner.Accept(sp)
	sp.buffer.WriteString(")")
	return nil
}

// PrintSource renders an expression as parseable Lox source text
func PrintSource(expr Expr) string {
	return NewSourcePrinter().Print(expr)
}
