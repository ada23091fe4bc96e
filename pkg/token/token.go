// Package token defines the lexical token model shared by the Flavor
// front-end. Tokens are produced upstream by a tokenizer and consumed by the
// parser; this package is the contract between the two.
package token

import "fmt"

// Kind identifies the lexical class of a token.
type Kind uint

const (
	// Special kinds
	EOF     Kind = iota // end of input; the stream terminator
	Unknown             // input the tokenizer could not classify

	// Built-in functions
	Print

	// Keywords
	Let
	Fn
	Alias
	Return
	If
	Else
	While
	Break

	// Type keywords
	Int
	Float
	Bool
	String
	Nothing
	Array

	// Symbols
	Dot
	Comma
	Colon
	Semicolon
	SlimArrow
	BoldArrow
	Assign
	Eq
	NotEq
	Not
	Gt
	Lt
	Ge
	Le
	PlusPlus
	MinusMinus
	Plus
	Minus
	Times
	Div
	Percent
	And
	Or

	// Brackets
	LPar
	RPar
	LSqu
	RSqu
	LBra
	RBra

	// Complex elements
	Number
	StringLit
	Identifier
	True
	False

	kindCount
)

// kindNames maps kinds to their display names. Symbols and keywords use their
// surface text; open classes use an uppercase tag.
var kindNames = [...]string{
	EOF:     "EOF",
	Unknown: "UNKNOWN",

	Print: "print",

	Let:    "let",
	Fn:     "fn",
	Alias:  "alias",
	Return: "return",
	If:     "if",
	Else:   "else",
	While:  "while",
	Break:  "break",

	Int:     "int",
	Float:   "float",
	Bool:    "bool",
	String:  "string",
	Nothing: "nothing",
	Array:   "array",

	Dot:        ".",
	Comma:      ",",
	Colon:      ":",
	Semicolon:  ";",
	SlimArrow:  "->",
	BoldArrow:  "=>",
	Assign:     "=",
	Eq:         "==",
	NotEq:      "!=",
	Not:        "!",
	Gt:         ">",
	Lt:         "<",
	Ge:         ">=",
	Le:         "<=",
	PlusPlus:   "++",
	MinusMinus: "--",
	Plus:       "+",
	Minus:      "-",
	Times:      "*",
	Div:        "/",
	Percent:    "%",
	And:        "&&",
	Or:         "||",

	LPar: "(",
	RPar: ")",
	LSqu: "[",
	RSqu: "]",
	LBra: "{",
	RBra: "}",

	Number:     "NUMBER",
	StringLit:  "STRING",
	Identifier: "IDENT",
	True:       "true",
	False:      "false",
}

// String returns the display name of the kind.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// kindsByName is the reverse of kindNames, for decoding fixture files.
var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		m[kindNames[k]] = k
	}
	return m
}()

// KindByName returns the kind whose display name is name.
func KindByName(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

// IsKeyword reports whether k is a statement keyword.
func (k Kind) IsKeyword() bool {
	return k >= Let && k <= Break
}

// IsTypeKeyword reports whether k names a built-in type.
func (k Kind) IsTypeKeyword() bool {
	return k >= Int && k <= Array
}

// Span locates a token or AST node in the source text. Lines and columns are
// 1-based; the zero Span means "no location".
type Span struct {
	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
}

// IsZero reports whether the span carries no location.
func (s Span) IsZero() bool {
	return s == Span{}
}

// Merge returns the smallest span covering both s and other.
func (s Span) Merge(other Span) Span {
	if s.IsZero() {
		return other
	}
	if other.IsZero() {
		return s
	}
	out := s
	if other.StartLine < out.StartLine ||
		(other.StartLine == out.StartLine && other.StartCol < out.StartCol) {
		out.StartLine = other.StartLine
		out.StartCol = other.StartCol
	}
	if other.EndLine > out.EndLine ||
		(other.EndLine == out.EndLine && other.EndCol > out.EndCol) {
		out.EndLine = other.EndLine
		out.EndCol = other.EndCol
	}
	return out
}

// String renders the span start as line:col.
func (s Span) String() string {
	if s.IsZero() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", s.StartLine, s.StartCol)
}

// Token is one lexical unit: a kind tag plus the source text it covers.
// Tokens are immutable once produced.
type Token struct {
	Kind   Kind
	Lexeme string
	Span   Span
}

// String renders the token for diagnostics.
func (t Token) String() string {
	return fmt.Sprintf("%s (%q)", t.Kind, t.Lexeme)
}
