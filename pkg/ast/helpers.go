package ast

import "flavor/frontend-go/pkg/types"

// Construction helpers used heavily by tests. Spans are left zero; callers
// that need locations annotate with SetSpan.

// Num builds a NumberLiteral from its source text.
func Num(value string) *NumberLiteral {
	return &NumberLiteral{Value: value}
}

// ID builds an Identifier reference.
func ID(name string) *Identifier {
	return &Identifier{Name: name}
}

// Bin builds a BinaryExpression.
func Bin(op string, left, right Expr) *BinaryExpression {
	return &BinaryExpression{Left: left, Operator: op, Right: right}
}

// Prefix builds a prefix UnaryExpression.
func Prefix(op string, operand Expr) *UnaryExpression {
	return &UnaryExpression{Operator: op, Operand: operand}
}

// Postfix builds a postfix UnaryExpression.
func Postfix(op string, operand Expr) *UnaryExpression {
	return &UnaryExpression{Operator: op, Operand: operand, Postfix: true}
}

// Index builds an ArrayAccess.
func Index(array, index Expr) *ArrayAccess {
	return &ArrayAccess{Array: array, Index: index}
}

// Let builds a LetDeclaration; declared may be nil.
func Let(name string, declared types.Type, init Expr) *LetDeclaration {
	return &LetDeclaration{Identifier: name, DeclaredType: declared, Init: init}
}

// ExprStmt wraps an expression in an ExpressionStatement.
func ExprStmt(e Expr) *ExpressionStatement {
	return &ExpressionStatement{Expr: e}
}
