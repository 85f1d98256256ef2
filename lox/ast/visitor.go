// File: visitor.go
// Title: Lox AST Visitor Pattern Implementation
// Description: Implements the visitor pattern for traversing and processing
//              Lox expression trees. Provides the base visitor interface, a
//              default traversal implementation, an indented tree-dump
//              visitor and a node collector.
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial visitor pattern implementation

package ast

import (
	"fmt"
	"strings"
)

// Visitor interface for traversing expression nodes using the visitor pattern
type Visitor interface {
	VisitLiteral(expr *LiteralExpr) interface{}
	VisitUnary(expr *UnaryExpr) interface{}
	VisitBinary(expr *BinaryExpr) interface{}
	VisitGrouping(expr *GroupingExpr) interface{}
}

// BaseVisitor provides default implementations for all visitor methods.
// Embed this in concrete visitors to only override needed methods
type BaseVisitor struct{}

func (bv *BaseVisitor) VisitLiteral(expr *LiteralExpr) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitUnary(expr *UnaryExpr) interface{} {
	if expr.Operand != nil {
		return expr.Operand.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitBinary(expr *BinaryExpr) interface{} {
	if expr.Left != nil {
		expr.Left.Accept(bv)
	}
	if expr.Right != nil {
		expr.Right.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitGrouping(expr *GroupingExpr) interface{} {
	if expr.Inner != nil {
		return expr.Inner.Accept(bv)
	}
	return nil
}

// TreeVisitor creates an indented, one-node-per-line representation of the
// expression tree for debug output
type TreeVisitor struct {
	BaseVisitor
	buffer strings.Builder
	indent int
}

// NewTreeVisitor creates a new tree-dump visitor
func NewTreeVisitor() *TreeVisitor {
	return &TreeVisitor{}
}

// String returns the built tree representation
func (tv *TreeVisitor) String() string {
	return tv.buffer.String()
}

// Reset clears the internal buffer
func (tv *TreeVisitor) Reset() {
	tv.buffer.Reset()
	tv.indent = 0
}

func (tv *TreeVisitor) writeIndent() {
	for i := 0; i < tv.indent; i++ {
		tv.buffer.WriteString("  ")
	}
}

func (tv *TreeVisitor) VisitLiteral(expr *LiteralExpr) interface{} {
	tv.writeIndent()
	tv.buffer.WriteString(fmt.Sprintf("Literal %s (%s)\n", expr.Value.String(), expr.Value.Kind.String()))
	return nil
}

func (tv *TreeVisitor) VisitUnary(expr *UnaryExpr) interface{} {
	tv.writeIndent()
	tv.buffer.WriteString(fmt.Sprintf("Unary %s\n", expr.Op.String()))
	tv.indent++
	expr.Operand.Accept(tv)
	tv.indent--
	return nil
}

func (tv *TreeVisitor) VisitBinary(expr *BinaryExpr) interface{} {
	tv.writeIndent()
	tv.buffer.WriteString(fmt.Sprintf("Binary %s\n", expr.Op.String()))
	tv.indent++
	expr.Left.Accept(tv)
	expr.Right.Accept(tv)
	tv.indent--
	return nil
}

func (tv *TreeVisitor) VisitGrouping(expr *GroupingExpr) interface{} {
	tv.writeIndent()
	tv.buffer.WriteString("Grouping\n")
	tv.indent++
	expr.Inner.Accept(tv)
	tv.indent--
	return nil
}

// CollectorVisitor collects specific types of nodes from the tree
type CollectorVisitor struct {
	BaseVisitor
	Literals  []*LiteralExpr
	Unaries   []*UnaryExpr
	Binaries  []*BinaryExpr
	Groupings []*GroupingExpr
}

// NewCollectorVisitor creates a new collector visitor
func NewCollectorVisitor() *CollectorVisitor {
	return &CollectorVisitor{
		Literals:  make([]*LiteralExpr, 0),
		Unaries:   make([]*UnaryExpr, 0),
		Binaries:  make([]*BinaryExpr, 0),
		Groupings: make([]*GroupingExpr, 0),
	}
}

// Reset clears all collected nodes
func (cv *CollectorVisitor) Reset() {
	cv.Literals = cv.Literals[:0]
	cv.Unaries = cv.Unaries[:0]
	cv.Binaries = cv.Binaries[:0]
	cv.Groupings = cv.Groupings[:0]
}

func (cv *CollectorVisitor) VisitLiteral(expr *LiteralExpr) interface{} {
	cv.Literals = append(cv.Literals, expr)
	return nil
}

func (cv *CollectorVisitor) VisitUnary(expr *UnaryExpr) interface{} {
	cv.Unaries = append(cv.Unaries, expr)
	if expr.Operand != nil {
		expr.Operand.Accept(cv)
	}
	return nil
}

func (cv *CollectorVisitor) VisitBinary(expr *BinaryExpr) interface{} {
	cv.Binaries = append(cv.Binaries, expr)
	if expr.Left != nil {
		expr.Left.Accept(cv)
	}
	if expr.Right != nil {
		expr.Right.Accept(cv)
	}
	return nil
}

func (cv *CollectorVisitor) VisitGrouping(expr *GroupingExpr) interface{} {
	cv.Groupings = append(cv.Groupings, expr)
	if expr.Inner != nil {
		expr.Inner.Accept(cv)
	}
	return nil
}

// Utility functions for working with visitors

// TreeString converts an expression tree to its indented debug representation
func TreeString(node Node) string {
	visitor := NewTreeVisitor()
	node.Accept(visitor)
	return visitor.String()
}

// CollectNodes collects all nodes of each kind from an expression tree
func CollectNodes(node Node) *CollectorVisitor {
	visitor := NewCollectorVisitor()
	node.Accept(visitor)
	return visitor
}
