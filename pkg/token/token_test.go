package token

import "testing"

func TestKindNamesRoundTrip(t *testing.T) {
	for k := Kind(0); k < kindCount; k++ {
		name := k.String()
		if name == "" {
			t.Fatalf("kind %d has no display name", k)
		}
		got, ok := KindByName(name)
		if !ok {
			t.Fatalf("KindByName(%q) not found", name)
		}
		if got != k {
			t.Fatalf("KindByName(%q) = %v, want %v", name, got, k)
		}
	}
}

func TestKindClassification(t *testing.T) {
	if !Let.IsKeyword() || !Break.IsKeyword() {
		t.Fatalf("expected let/break to be keywords")
	}
	if Plus.IsKeyword() || Int.IsKeyword() {
		t.Fatalf("expected '+'/int not to be statement keywords")
	}
	if !Int.IsTypeKeyword() || !Array.IsTypeKeyword() {
		t.Fatalf("expected int/array to be type keywords")
	}
	if Identifier.IsTypeKeyword() {
		t.Fatalf("expected IDENT not to be a type keyword")
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{Kind: Number, Lexeme: "10"}
	if got := tok.String(); got != `NUMBER ("10")` {
		t.Fatalf("unexpected token string: %q", got)
	}
}

func TestSpanMerge(t *testing.T) {
	a := Span{StartLine: 1, StartCol: 5, EndLine: 1, EndCol: 7}
	b := Span{StartLine: 1, StartCol: 9, EndLine: 2, EndCol: 3}

	merged := a.Merge(b)
	want := Span{StartLine: 1, StartCol: 5, EndLine: 2, EndCol: 3}
	if merged != want {
		t.Fatalf("Merge = %+v, want %+v", merged, want)
	}
	if got := b.Merge(a); got != want {
		t.Fatalf("Merge is not symmetric: %+v vs %+v", got, want)
	}

	if got := (Span{}).Merge(a); got != a {
		t.Fatalf("zero.Merge(a) = %+v, want %+v", got, a)
	}
	if got := a.Merge(Span{}); got != a {
		t.Fatalf("a.Merge(zero) = %+v, want %+v", got, a)
	}
}

func TestSpanString(t *testing.T) {
	if got := (Span{}).String(); got != "-" {
		t.Fatalf("zero span string = %q", got)
	}
	s := Span{StartLine: 3, StartCol: 14, EndLine: 3, EndCol: 15}
	if got := s.String(); got != "3:14" {
		t.Fatalf("span string = %q", got)
	}
}
