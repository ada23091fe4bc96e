// Package parser turns a token sequence into a sequence of statement nodes.
//
// The parser is a deterministic recursive-descent construction with one token
// of lookahead over a forward-only cursor. There is no backtracking and no
// error recovery: the first grammar violation halts the parse and is returned
// as a *diag.Error.
package parser

import (
	"flavor/frontend-go/pkg/ast"
	"flavor/frontend-go/pkg/diag"
	"flavor/frontend-go/pkg/token"
	"flavor/frontend-go/pkg/types"
)

// maxNestingDepth bounds expression recursion so pathological inputs (for
// example thousands of nested parentheses) fail with a syntax error instead
// of exhausting the stack.
const maxNestingDepth = 512

// Parser consumes a finite token sequence produced by an upstream tokenizer.
// The sequence is expected to be terminated by an EOF token; reads at or past
// the end yield EOF regardless.
type Parser struct {
	tokens []token.Token
	pos    int
	depth  int
}

// New constructs a Parser over tokens.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// current returns the token under the cursor. At or past end-of-input it
// returns the EOF marker, idempotently.
func (p *Parser) current() token.Token {
	if p.pos >= len(p.tokens) {
		return token.Token{Kind: token.EOF}
	}
	return p.tokens[p.pos]
}

// advance moves the cursor one token forward.
func (p *Parser) advance() {
	if p.pos < len(p.tokens) {
		p.pos++
	}
}

// expect consumes and returns the current token if it has the wanted kind,
// and otherwise fails naming the expected kind, the found kind, and the found
// lexeme.
func (p *Parser) expect(kind token.Kind) (token.Token, error) {
	tok := p.current()
	if tok.Kind != kind {
		return token.Token{}, diag.Errorf(diag.Parsing, tok.Span,
			"expected '%s', found '%s' (%q)", kind, tok.Kind, tok.Lexeme)
	}
	p.advance()
	return tok, nil
}

// enterNesting bumps the recursion depth counter, failing once the limit is
// reached. Every call that returns nil must be paired with leaveNesting.
func (p *Parser) enterNesting(at token.Span) error {
	if p.depth >= maxNestingDepth {
		return diag.Errorf(diag.Parsing, at,
			"expression nesting exceeds %d levels", maxNestingDepth)
	}
	p.depth++
	return nil
}

func (p *Parser) leaveNesting() {
	p.depth--
}

// Parse consumes the whole token sequence and returns the ordered statement
// list, or the first syntax error encountered.
func (p *Parser) Parse() ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for p.current().Kind != token.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

// parseStatement routes on the leading token: `let` starts a declaration,
// anything else is an expression statement.
func (p *Parser) parseStatement() (ast.Stmt, error) {
	if p.current().Kind == token.Let {
		return p.parseLetDeclaration()
	}
	return p.parseExpressionStatement()
}

// parseLetDeclaration parses `let name[: type] = expr;`. The type annotation
// is gated on the presence of the colon.
func (p *Parser) parseLetDeclaration() (ast.Stmt, error) {
	letTok, err := p.expect(token.Let)
	if err != nil {
		return nil, err
	}
	idTok, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	span := letTok.Span.Merge(idTok.Span)

	var declared types.Type
	if p.current().Kind == token.Colon {
		colonTok, err := p.expect(token.Colon)
		if err != nil {
			return nil, err
		}
		ty, tySpan, err := p.parseType()
		if err != nil {
			return nil, err
		}
		declared = ty
		span = span.Merge(colonTok.Span).Merge(tySpan)
	}

	if _, err := p.expect(token.Assign); err != nil {
		return nil, err
	}
	init, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	semi, err := p.expect(token.Semicolon)
	if err != nil {
		return nil, err
	}

	decl := &ast.LetDeclaration{
		Identifier:   idTok.Lexeme,
		DeclaredType: declared,
		Init:         init,
	}
	ast.SetSpan(decl, span.Merge(init.Span()).Merge(semi.Span))
	return decl, nil
}

// parseExpressionStatement parses an expression followed by the statement
// terminator.
func (p *Parser) parseExpressionStatement() (ast.Stmt, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	semi, err := p.expect(token.Semicolon)
	if err != nil {
		return nil, err
	}
	stmt := &ast.ExpressionStatement{Expr: expr}
	ast.SetSpan(stmt, expr.Span().Merge(semi.Span))
	return stmt, nil
}

// binaryPrecedence maps operator kinds onto the three precedence classes.
// Zero means "not a binary operator".
func binaryPrecedence(k token.Kind) int {
	switch k {
	case token.Eq, token.NotEq:
		return 1
	case token.Plus, token.Minus:
		return 2
	case token.Times, token.Div, token.Percent:
		return 3
	}
	return 0
}

func (p *Parser) parseExpression() (ast.Expr, error) {
	if err := p.enterNesting(p.current().Span); err != nil {
		return nil, err
	}
	defer p.leaveNesting()
	return p.parseBinaryExpression(0)
}

// parseBinaryExpression implements precedence climbing. Operators below
// minPrec stop the loop; the right operand is parsed with the threshold
// raised one step past the current operator, which makes equal-precedence
// chains left-associative while letting tighter operators nest on the right.
func (p *Parser) parseBinaryExpression(minPrec int) (ast.Expr, error) {
	left, err := p.parsePostfixExpression()
	if err != nil {
		return nil, err
	}

	for {
		prec := binaryPrecedence(p.current().Kind)
		if prec == 0 || prec < minPrec {
			return left, nil
		}
		opTok := p.current()
		p.advance()

		right, err := p.parseBinaryExpression(prec + 1)
		if err != nil {
			return nil, err
		}
		bin := &ast.BinaryExpression{Left: left, Operator: opTok.Lexeme, Right: right}
		ast.SetSpan(bin, left.Span().Merge(opTok.Span).Merge(right.Span()))
		left = bin
	}
}

// parsePostfixExpression parses one base expression and then greedily chains
// postfix constructs left-to-right: increment/decrement and index brackets.
func (p *Parser) parsePostfixExpression() (ast.Expr, error) {
	expr, err := p.parseUnaryExpression()
	if err != nil {
		return nil, err
	}

	for {
		switch p.current().Kind {
		case token.PlusPlus, token.MinusMinus:
			opTok := p.current()
			p.advance()
			un := &ast.UnaryExpression{Operator: opTok.Lexeme, Operand: expr, Postfix: true}
			ast.SetSpan(un, expr.Span().Merge(opTok.Span))
			expr = un
		case token.LSqu:
			openTok, err := p.expect(token.LSqu)
			if err != nil {
				return nil, err
			}
			index, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			closeTok, err := p.expect(token.RSqu)
			if err != nil {
				return nil, err
			}
			access := &ast.ArrayAccess{Array: expr, Index: index}
			ast.SetSpan(access, expr.Span().
				Merge(openTok.Span).
				Merge(index.Span()).
				Merge(closeTok.Span))
			expr = access
		default:
			return expr, nil
		}
	}
}

// parseUnaryExpression handles prefix operators, recursing so that operators
// chain (`--!x`); anything else falls through to primary parsing.
func (p *Parser) parseUnaryExpression() (ast.Expr, error) {
	tok := p.current()
	switch tok.Kind {
	case token.PlusPlus, token.MinusMinus, token.Minus, token.Not:
		if err := p.enterNesting(tok.Span); err != nil {
			return nil, err
		}
		defer p.leaveNesting()
		p.advance()
		operand, err := p.parseUnaryExpression()
		if err != nil {
			return nil, err
		}
		un := &ast.UnaryExpression{Operator: tok.Lexeme, Operand: operand}
		ast.SetSpan(un, tok.Span.Merge(operand.Span()))
		return un, nil
	}
	return p.parsePrimary()
}

// parsePrimary parses a literal, an identifier, or a parenthesized
// expression. Any other token is an error carrying the offending token.
func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok := p.current()
	switch tok.Kind {
	case token.Number:
		p.advance()
		num := &ast.NumberLiteral{Value: tok.Lexeme}
		ast.SetSpan(num, tok.Span)
		return num, nil
	case token.Identifier:
		p.advance()
		id := &ast.Identifier{Name: tok.Lexeme}
		ast.SetSpan(id, tok.Span)
		return id, nil
	case token.LPar:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPar); err != nil {
			return nil, err
		}
		return expr, nil
	}
	return nil, diag.Errorf(diag.Parsing, tok.Span,
		"unexpected token in expression: '%s' (%q)", tok.Kind, tok.Lexeme)
}

// parseType maps primitive type keywords to their types; an identifier in
// type position becomes a Custom placeholder with no further validation.
func (p *Parser) parseType() (types.Type, token.Span, error) {
	tok := p.current()
	switch tok.Kind {
	case token.Int:
		p.advance()
		return types.Int, tok.Span, nil
	case token.Float:
		p.advance()
		return types.Float, tok.Span, nil
	case token.Bool:
		p.advance()
		return types.Bool, tok.Span, nil
	case token.String:
		p.advance()
		return types.String, tok.Span, nil
	case token.Nothing:
		p.advance()
		return types.Unit, tok.Span, nil
	case token.Identifier:
		p.advance()
		return types.Custom{TypeName: tok.Lexeme}, tok.Span, nil
	}
	return nil, token.Span{}, diag.Errorf(diag.Parsing, tok.Span,
		"expected a type, found '%s' (%q)", tok.Kind, tok.Lexeme)
}
