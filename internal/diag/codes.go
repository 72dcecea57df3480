package diag

import (
	"fmt"
)

// Code is a compact, stable identifier for a diagnostic kind.
type Code uint16

const (
	// UnknownCode is the zero value; nothing should report it deliberately.
	UnknownCode Code = 0

	// Lexical codes.

	// LexUnterminatedCodeBlock reports a frontmatter fence `---` that was
	// never closed before end of input.
	LexUnterminatedCodeBlock Code = 1001
	// LexUnterminatedExpression reports a `{` expression that was never
	// closed by `}` before end of input.
	LexUnterminatedExpression Code = 1002
	// LexOutOfBounds reports a consume attempted past the end of the buffer.
	// Defensive: unreachable given the scanner's end-of-input checks.
	LexOutOfBounds Code = 1003

	// IO codes (driver layer).

	// IOReadFailed reports a source file that could not be read.
	IOReadFailed Code = 4001
	// IOCacheFailed reports a token cache entry that could not be written or
	// decoded.
	IOCacheFailed Code = 4002
)

// ID returns the banded string form, e.g. LEX1001.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

// Title returns a short human title for the code.
func (c Code) Title() string {
	switch c {
	case LexUnterminatedCodeBlock:
		return "unterminated code block"
	case LexUnterminatedExpression:
		return "unterminated expression"
	case LexOutOfBounds:
		return "scanner out of bounds"
	case IOReadFailed:
		return "read failed"
	case IOCacheFailed:
		return "cache failure"
	}
	return "unknown"
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
