package lexer

import (
	"regg/internal/token"
)

// scanText consumes a run of plain text. The run stops (without consuming)
// before `<`, `>`, a `/>` lookahead, or `{`; everything else, newlines
// included, belongs to the run. The literal is the untrimmed slice.
func (lx *Lexer) scanText(start Mark) token.Token {
	for !lx.cursor.EOF() {
		r := lx.cursor.Peek()
		if r == '>' || r == '<' || (r == '/' && lx.cursor.PeekNext() == '>') {
			break
		}
		if r == '{' {
			break
		}
		lx.bumpCounting()
	}

	literal := lx.file.Slice(uint32(start), lx.cursor.Off)
	return lx.emit(token.Text, start, literal)
}
