package lexer

import (
	"regg/internal/diag"
	"regg/internal/token"
)

// scanExpression consumes scripting content up to and including the closing
// `}`. It is entered two ways: from the dispatcher with start on a consumed
// `{`, or immediately after an HTMLExprEnd delimiter with start == current
// and nothing consumed. The loop breaks without consuming when the next two
// runes open an HTML-expression delimiter, so the dispatcher can emit it.
func (lx *Lexer) scanExpression(start Mark) token.Token {
	sawClose := false
	for !lx.cursor.EOF() {
		if lx.cursor.Peek() == '(' && lx.cursor.PeekNext() == '`' {
			break
		}
		if lx.bumpCounting() == '}' {
			sawClose = true
			break
		}
	}

	if lx.cursor.EOF() && !sawClose {
		lx.report(diag.LexUnterminatedExpression, lx.cursor.SpanFrom(start),
			"unterminated curly brace `}`")
	}

	// The trim rule depends on how the scan was entered. When the rune just
	// before start is `)` this scan was launched right after an HTMLExprEnd
	// delimiter, so there is no leading `{` to strip. The check inspects the
	// source directly, quirks included: a `{` expression that happens to
	// follow `)` takes the same branch.
	prevIsParen := false
	if uint32(start) > 0 {
		if r, ok := lx.cursor.RuneAt(uint32(start) - 1); ok && r == ')' {
			prevIsParen = true
		}
	}

	var literal string
	if prevIsParen {
		literal = lx.file.Slice(uint32(start), saturatingSub(lx.cursor.Off, 1))
	} else {
		literal = lx.file.Slice(uint32(start)+1, saturatingSub(lx.cursor.Off, 1))
	}
	return lx.emit(token.Expression, start, literal)
}
