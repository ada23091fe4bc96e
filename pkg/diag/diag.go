// Package diag defines the diagnostic error value shared by every phase of
// the Flavor front-end. Errors are terminal: the first one halts the phase
// that produced it and bubbles unchanged to the caller.
package diag

import (
	"fmt"
	"strings"

	"flavor/frontend-go/pkg/token"

	"github.com/charmbracelet/lipgloss"
)

// Phase identifies which stage of the pipeline produced an error.
type Phase string

const (
	// Lexing is reserved for the upstream token provider; this module never
	// produces it but renders it the same way.
	Lexing       Phase = "Lexing"
	Parsing      Phase = "Parsing"
	TypeChecking Phase = "TypeChecking"
)

// Error is a single fatal diagnostic with a best-effort source span.
type Error struct {
	Phase   Phase
	Message string
	Span    token.Span
}

func (e *Error) Error() string {
	return e.Message
}

// New constructs a diagnostic without location information.
func New(phase Phase, message string) *Error {
	return &Error{Phase: phase, Message: message}
}

// Errorf constructs a diagnostic at span with a formatted message.
func Errorf(phase Phase, span token.Span, format string, args ...any) *Error {
	return &Error{Phase: phase, Message: fmt.Sprintf(format, args...), Span: span}
}

var (
	headStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	messageStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Render formats the error against the original source text, underlining the
// offending span with a caret marker. With no span it prints the phase-tagged
// message alone.
func (e *Error) Render(source string) string {
	head := headStyle.Render("[" + string(e.Phase) + "]")
	msg := messageStyle.Render(e.Message)
	if e.Span.IsZero() {
		return fmt.Sprintf("\n\n%s %s\n\n", head, msg)
	}

	lines := strings.Split(source, "\n")
	lineText := ""
	if idx := e.Span.StartLine - 1; idx >= 0 && idx < len(lines) {
		lineText = lines[idx]
	}
	runes := []rune(lineText)
	lineLen := len(runes)

	pointerOffset := e.Span.StartCol - 1
	if pointerOffset < 0 {
		pointerOffset = 0
	}
	if pointerOffset > lineLen {
		pointerOffset = lineLen
	}

	rawWidth := 1
	if e.Span.StartLine == e.Span.EndLine && e.Span.EndCol > e.Span.StartCol {
		rawWidth = e.Span.EndCol - e.Span.StartCol + 1
	}
	available := lineLen - pointerOffset
	if available < 1 {
		available = 1
	}
	width := rawWidth
	if width > available {
		width = available
	}
	if width < 1 {
		width = 1
	}

	pre := string(runes[:pointerOffset])
	end := pointerOffset + width
	if end > lineLen {
		end = lineLen
	}
	mid := highlightStyle.Render(string(runes[pointerOffset:end]))
	post := string(runes[end:])
	pointer := highlightStyle.Render(strings.Repeat(" ", pointerOffset) + strings.Repeat("^", width))

	return fmt.Sprintf(
		"\n\n%s %s\n--> %d:%d\n%4d | %s%s%s\n     | %s\n\n",
		head, msg,
		e.Span.StartLine, e.Span.StartCol,
		e.Span.StartLine,
		pre, mid, post,
		pointer,
	)
}
