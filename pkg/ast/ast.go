// Package ast defines the abstract syntax tree produced by the parser and
// consumed by the type checker.
//
// The node set is a closed tagged union: one struct per grammar production,
// sealed behind unexported marker methods so consumers dispatch with an
// exhaustive type switch. Each node exclusively owns its children; the
// structure is always a tree.
package ast

import (
	"flavor/frontend-go/pkg/token"
	"flavor/frontend-go/pkg/types"
)

// Node is the interface implemented by all AST nodes.
type Node interface {
	Span() token.Span
	aNode() // marker method to restrict implementations to this package
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	aExpr()
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	aStmt()
}

// node is the base struct embedded in all AST nodes.
type node struct {
	span token.Span
}

func (n *node) Span() token.Span     { return n.span }
func (n *node) setSpan(s token.Span) { n.span = s }
func (n *node) aNode()               {}

// expr is embedded in all expression nodes.
type expr struct{ node }

func (*expr) aExpr() {}

// stmt is embedded in all statement nodes.
type stmt struct{ node }

func (*stmt) aStmt() {}

// SetSpan annotates the node with the provided span.
func SetSpan(n Node, span token.Span) {
	if n == nil {
		return
	}
	if setter, ok := n.(interface{ setSpan(token.Span) }); ok {
		setter.setSpan(span)
	}
}

// ----------------------------------------------------------------------------
// Statements

// LetDeclaration represents `let name[: type] = expr;`. DeclaredType is nil
// when the annotation is absent.
type LetDeclaration struct {
	stmt
	Identifier   string
	DeclaredType types.Type
	Init         Expr
}

// ExpressionStatement represents a bare expression followed by a terminator.
type ExpressionStatement struct {
	stmt
	Expr Expr
}

// ----------------------------------------------------------------------------
// Expressions

// NumberLiteral holds the source text of a numeric literal.
type NumberLiteral struct {
	expr
	Value string
}

// Identifier is a reference to a bound name.
type Identifier struct {
	expr
	Name string
}

// ArrayAccess represents `array[index]`.
type ArrayAccess struct {
	expr
	Array Expr
	Index Expr
}

// BinaryExpression applies an infix operator to two operands.
type BinaryExpression struct {
	expr
	Left     Expr
	Operator string
	Right    Expr
}

// UnaryExpression applies a prefix or postfix operator to one operand.
// Postfix distinguishes `x++` from `++x`.
type UnaryExpression struct {
	expr
	Operator string
	Operand  Expr
	Postfix  bool
}
