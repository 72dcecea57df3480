package lexer

import (
	"regg/internal/token"
)

// scanOpeningTagStart consumes a tag name after `<`. The scan runs until a
// space is next, breaking early on `>` without consuming it. A self-closing
// tag written without a space (`<br/>`) folds the slash into the name; the
// behavior is pinned by tests.
func (lx *Lexer) scanOpeningTagStart(start Mark) token.Token {
	for !lx.cursor.EOF() && lx.cursor.Peek() != ' ' {
		if lx.cursor.Peek() == '>' {
			break
		}
		lx.bumpCounting()
	}

	// Drop the leading '<'.
	literal := lx.file.Slice(uint32(start)+1, lx.cursor.Off)
	return lx.emit(token.OpeningTagStart, start, literal)
}

// scanClosingTag consumes `</name>` after the dispatcher ate `</`.
func (lx *Lexer) scanClosingTag(start Mark) token.Token {
	for !lx.cursor.EOF() && lx.cursor.Peek() != '>' {
		lx.bumpCounting()
	}

	lx.cursor.Bump() // the '>'

	// Drop the leading '</' and the trailing '>'.
	literal := lx.file.Slice(uint32(start)+2, saturatingSub(lx.cursor.Off, 1))
	return lx.emit(token.ClosingTag, start, literal)
}
