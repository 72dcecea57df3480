package lexer

import (
	"regg/internal/diag"
	"regg/internal/token"
)

// scanCodeBlock consumes a frontmatter code region. The dispatcher has
// already consumed the opening `---`; start marks its first dash.
//
// The closing fence is detected by three independent non-dash lookahead
// checks, exactly as the historical scanner did: the loop keeps consuming
// only while none of the current/next/third runes is a dash. A lone dash in
// the body therefore stops the loop early. This is kept bit-for-bit rather
// than tightened to a contiguous `---` match; tests pin the behavior.
func (lx *Lexer) scanCodeBlock(start Mark) token.Token {
	for !lx.cursor.EOF() &&
		lx.cursor.Peek() != '-' &&
		lx.cursor.PeekNext() != '-' &&
		lx.cursor.PeekThird() != '-' {
		lx.bumpCounting()
	}

	if lx.cursor.EOF() {
		lx.report(diag.LexUnterminatedCodeBlock, lx.cursor.SpanFrom(start),
			"unterminated frontmatter fence token `---`")
	}

	// Skip past the closing fence: one separator, three dashes, one
	// separator. Past end of input these are no-ops.
	lx.cursor.Bump()
	lx.cursor.Bump()
	lx.cursor.Bump()
	lx.cursor.Bump()
	lx.cursor.Bump()

	// Trim the fence markers from both ends.
	literal := lx.file.Slice(uint32(start)+3, saturatingSub(lx.cursor.Off, 3))
	return lx.emit(token.CodeBlock, start, literal)
}

func saturatingSub(a, b uint32) uint32 {
	if a < b {
		return 0
	}
	return a - b
}
