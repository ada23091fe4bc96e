// Package typechecker performs a single post-order, fail-fast pass over the
// AST, resolving every expression to exactly one type or stopping at the
// first violation. One mutable symbol table lives for the whole pass.
package typechecker

import (
	"flavor/frontend-go/pkg/ast"
	"flavor/frontend-go/pkg/diag"
	"flavor/frontend-go/pkg/types"
)

// Checker validates one statement sequence. A Checker is single-use in the
// sense that its table accumulates bindings across CheckProgram calls; build
// a fresh one per pass for independent runs.
type Checker struct {
	global *Environment
}

// New constructs a Checker with an empty symbol table.
func New() *Checker {
	return &Checker{global: NewEnvironment(nil)}
}

// Lookup exposes the symbol table for callers inspecting the populated
// bindings after a successful pass.
func (c *Checker) Lookup(name string) (types.Type, bool) {
	return c.global.Lookup(name)
}

// CheckProgram checks each statement in sequence and stops at the first
// failure. There is no error accumulation and no warning tier.
func (c *Checker) CheckProgram(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		if _, err := c.Check(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Check resolves node to a type or fails. Exported so sub-trees can be
// checked in isolation against a caller-built table.
func (c *Checker) Check(node ast.Node) (types.Type, error) {
	switch n := node.(type) {
	case *ast.LetDeclaration:
		initType, err := c.Check(n.Init)
		if err != nil {
			return nil, err
		}
		if n.DeclaredType != nil && !types.Equal(n.DeclaredType, initType) {
			return nil, diag.Errorf(diag.TypeChecking, n.Init.Span(),
				"type mismatch in let declaration: variable '%s' declared as %s but expression has type %s",
				n.Identifier, n.DeclaredType.Name(), initType.Name())
		}
		bound := initType
		if n.DeclaredType != nil {
			bound = n.DeclaredType
		}
		c.global.Define(n.Identifier, bound)
		return bound, nil

	case *ast.NumberLiteral:
		// Numeric literals are unconditionally Int; there is no lexical
		// float distinction yet.
		return types.Int, nil

	case *ast.Identifier:
		typ, ok := c.global.Lookup(n.Name)
		if !ok {
			return nil, diag.Errorf(diag.TypeChecking, n.Span(),
				"undefined variable '%s'", n.Name)
		}
		return typ, nil

	case *ast.ExpressionStatement:
		if _, err := c.Check(n.Expr); err != nil {
			return nil, err
		}
		return types.Unit, nil

	case *ast.BinaryExpression:
		leftType, err := c.Check(n.Left)
		if err != nil {
			return nil, err
		}
		rightType, err := c.Check(n.Right)
		if err != nil {
			return nil, err
		}
		switch n.Operator {
		case "+", "-", "*", "/":
			if !types.Equal(leftType, types.Int) || !types.Equal(rightType, types.Int) {
				return nil, diag.Errorf(diag.TypeChecking, n.Span(),
					"operator '%s' requires Int operands but found left: %s, right: %s",
					n.Operator, leftType.Name(), rightType.Name())
			}
			return types.Int, nil
		case "==", "!=":
			if !types.Equal(leftType, rightType) {
				return nil, diag.Errorf(diag.TypeChecking, n.Span(),
					"cannot compare different types: left is %s, right is %s",
					leftType.Name(), rightType.Name())
			}
			return types.Bool, nil
		default:
			return nil, diag.Errorf(diag.TypeChecking, n.Span(),
				"unknown binary operator '%s'", n.Operator)
		}
	}

	// Deliberate coverage gap: node kinds the checker does not handle yet
	// (UnaryExpression, ArrayAccess) fail loudly instead of defaulting to
	// an arbitrary type.
	return nil, diag.Errorf(diag.TypeChecking, node.Span(),
		"typechecking not implemented for %T", node)
}
