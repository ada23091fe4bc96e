package diag

import (
	"strings"
	"testing"

	"flavor/frontend-go/pkg/token"
)

func TestErrorMessage(t *testing.T) {
	err := Errorf(Parsing, token.Span{}, "expected '%s', found '%s' (%q)", ";", "EOF", "")
	want := `expected ';', found 'EOF' ("")`
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
	if err.Phase != Parsing {
		t.Fatalf("unexpected phase: %v", err.Phase)
	}
}

func TestRenderWithoutSpan(t *testing.T) {
	out := New(TypeChecking, "undefined variable 'y'").Render("y;")
	if !strings.Contains(out, "TypeChecking") {
		t.Fatalf("expected phase tag in output: %q", out)
	}
	if !strings.Contains(out, "undefined variable 'y'") {
		t.Fatalf("expected message in output: %q", out)
	}
	if strings.Contains(out, "-->") {
		t.Fatalf("expected no location arrow without a span: %q", out)
	}
}

func TestRenderUnderlinesSpan(t *testing.T) {
	source := "let x: float = 10;"
	span := token.Span{StartLine: 1, StartCol: 16, EndLine: 1, EndCol: 17}
	out := Errorf(TypeChecking, span, "declared as Float but expression has type Int").Render(source)

	if !strings.Contains(out, "--> 1:16") {
		t.Fatalf("expected location arrow, got: %q", out)
	}
	if !strings.Contains(out, "^^") {
		t.Fatalf("expected a two-column caret marker, got: %q", out)
	}
	if !strings.Contains(out, "   1 | ") {
		t.Fatalf("expected gutter with line number, got: %q", out)
	}
}

func TestRenderClampsOutOfRangeSpans(t *testing.T) {
	// Span column past the end of the line must not panic and still points
	// at something.
	span := token.Span{StartLine: 1, StartCol: 99, EndLine: 1, EndCol: 99}
	out := Errorf(Parsing, span, "expected ';', found 'EOF' (\"\")").Render("let x = 10")
	if !strings.Contains(out, "^") {
		t.Fatalf("expected caret marker, got: %q", out)
	}

	// Span on a line that does not exist.
	span = token.Span{StartLine: 7, StartCol: 1, EndLine: 7, EndCol: 2}
	out = Errorf(Parsing, span, "boom").Render("one line only")
	if !strings.Contains(out, "--> 7:1") {
		t.Fatalf("expected location arrow, got: %q", out)
	}
}
