package lexer

import (
	"regg/internal/source"
	"regg/internal/token"
)

// Lexer is the single-pass scanner for regg template source. It owns a rune
// cursor over one file and produces tokens on demand; a Lexer instance is
// single-use, construct a fresh one per input text.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	line   uint32
	look   *token.Token
	// pendingExpr is set after an HTMLExprEnd delimiter: the next call must
	// re-enter expression scanning right past the delimiter instead of
	// dispatching on the upcoming character.
	pendingExpr bool
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		line:   1,
		look:   nil,
	}
}

// Next returns the next token. After the EOF token it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	for {
		if lx.pendingExpr {
			lx.pendingExpr = false
			return lx.scanExpression(lx.cursor.Mark())
		}

		if lx.cursor.EOF() {
			return token.Token{
				Kind: token.EOF,
				Span: lx.emptySpan(),
				Line: lx.line,
			}
		}

		start := lx.cursor.Mark()
		c := lx.cursor.Bump()

		switch c {
		case '-':
			if lx.matchRune('-') && lx.matchRune('-') {
				return lx.scanCodeBlock(start)
			}
			// a lone dash or double dash is consumed without a token

		case '{':
			return lx.scanExpression(start)

		case '<':
			if lx.matchRune('/') {
				return lx.scanClosingTag(start)
			}
			return lx.scanOpeningTagStart(start)

		case '>':
			return lx.emit(token.OpeningTagEnd, start, "")

		case '/':
			if lx.matchRune('>') {
				return lx.emit(token.SelfClosingTagEnd, start, "")
			}

		case '(':
			if lx.matchRune('`') {
				return lx.emit(token.HTMLExprStart, start, "")
			}

		case '`':
			if lx.matchRune(')') {
				lx.pendingExpr = true
				return lx.emit(token.HTMLExprEnd, start, "")
			}

		case ' ', '\r', '\t':
			// whitespace between tokens

		case '\n':
			lx.line++

		default:
			return lx.scanText(start)
		}
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// ScanAll drains the lexer into a full token sequence, EOF included.
func (lx *Lexer) ScanAll() []token.Token {
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

// Line returns the current 1-based line counter.
func (lx *Lexer) Line() uint32 {
	return lx.line
}

// emit builds a token covering start..current with the lexer's current line.
func (lx *Lexer) emit(kind token.Kind, start Mark, literal string) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind:    kind,
		Span:    sp,
		Lexeme:  lx.file.Slice(sp.Start, sp.End),
		Literal: literal,
		Line:    lx.line,
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
