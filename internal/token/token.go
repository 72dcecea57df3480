package token

import (
	"fmt"

	"regg/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind    Kind
	Span    source.Span
	Lexeme  string
	Literal string
	Line    uint32
}

// IsDelimiter reports whether the token is a pure markup delimiter
// (no literal payload).
func (t Token) IsDelimiter() bool {
	switch t.Kind {
	case OpeningTagEnd, SelfClosingTagEnd, HTMLExprStart, HTMLExprEnd:
		return true
	default:
		return false
	}
}

// IsEOF reports whether the token terminates the stream.
func (t Token) IsEOF() bool { return t.Kind == EOF }

func (t Token) String() string {
	if t.Kind.HasLiteral() {
		return fmt.Sprintf("%s %q (literal %q) at line %d", t.Kind, t.Lexeme, t.Literal, t.Line)
	}
	return fmt.Sprintf("%s %q at line %d", t.Kind, t.Lexeme, t.Line)
}
