package ast

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes an indented dump of the statement sequence to w. The layout
// is stable and line-oriented, so golden fixtures can compare against it.
func Fprint(w io.Writer, stmts []Stmt) {
	for _, s := range stmts {
		fprintNode(w, s, 0)
	}
}

// Dump returns the Fprint output as a string.
func Dump(stmts []Stmt) string {
	var sb strings.Builder
	Fprint(&sb, stmts)
	return sb.String()
}

func fprintNode(w io.Writer, n Node, indent int) {
	pad := strings.Repeat("  ", indent)
	switch node := n.(type) {
	case *LetDeclaration:
		fmt.Fprintf(w, "%sLetDeclaration:\n", pad)
		fmt.Fprintf(w, "%s  Identifier: %s\n", pad, node.Identifier)
		if node.DeclaredType != nil {
			fmt.Fprintf(w, "%s  Type: %s\n", pad, node.DeclaredType.Name())
		} else {
			fmt.Fprintf(w, "%s  Type: None\n", pad)
		}
		fmt.Fprintf(w, "%s  Expression:\n", pad)
		fprintNode(w, node.Init, indent+2)
	case *ExpressionStatement:
		fmt.Fprintf(w, "%sExpressionStatement:\n", pad)
		fprintNode(w, node.Expr, indent+1)
	case *NumberLiteral:
		fmt.Fprintf(w, "%sNumberLiteral: %s\n", pad, node.Value)
	case *Identifier:
		fmt.Fprintf(w, "%sIdentifier: %s\n", pad, node.Name)
	case *ArrayAccess:
		fmt.Fprintf(w, "%sArrayAccess:\n", pad)
		fmt.Fprintf(w, "%s  Array:\n", pad)
		fprintNode(w, node.Array, indent+2)
		fmt.Fprintf(w, "%s  Index:\n", pad)
		fprintNode(w, node.Index, indent+2)
	case *BinaryExpression:
		fmt.Fprintf(w, "%sBinaryExpression: %s\n", pad, node.Operator)
		fmt.Fprintf(w, "%s  Left:\n", pad)
		fprintNode(w, node.Left, indent+2)
		fmt.Fprintf(w, "%s  Right:\n", pad)
		fprintNode(w, node.Right, indent+2)
	case *UnaryExpression:
		fmt.Fprintf(w, "%sUnaryExpression: %s\n", pad, node.Operator)
		fmt.Fprintf(w, "%s  Is Postfix: %t\n", pad, node.Postfix)
		fmt.Fprintf(w, "%s  Operand:\n", pad)
		fprintNode(w, node.Operand, indent+2)
	default:
		fmt.Fprintf(w, "%s<unknown node %T>\n", pad, n)
	}
}
