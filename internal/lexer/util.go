package lexer

import (
	"regg/internal/diag"
)

// matchRune consumes the next rune if it equals expected.
// On mismatch the cursor stays put. The out-of-bounds arm is defensive:
// the EOF check makes it unreachable, but a report beats a panic.
func (lx *Lexer) matchRune(expected rune) bool {
	if lx.cursor.EOF() {
		return false
	}

	r, ok := lx.cursor.RuneAt(lx.cursor.Off)
	if !ok {
		lx.report(diag.LexOutOfBounds, lx.emptySpan(), "scanner went out of bounds")
		return false
	}
	if r != expected {
		return false
	}
	lx.cursor.Off++
	return true
}

// bumpCounting consumes one rune, incrementing the line counter when it was
// seen to be a newline at the loop head. Sub-rules call this after peeking.
func (lx *Lexer) bumpCounting() rune {
	if lx.cursor.Peek() == '\n' {
		lx.line++
	}
	return lx.cursor.Bump()
}
