package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"regg/internal/source"
)

// Cursor is a position inside a file's decoded rune buffer.
// All offsets are codepoint offsets, so lookahead and advance are O(1)
// regardless of how many bytes each character occupies.
type Cursor struct {
	File *source.File
	Off  uint32
	// Limit is the exclusive upper bound for Off; defaults to len(File.Runes).
	Limit uint32
}

// NewCursor creates a new cursor for the provided file.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Runes))
	if err != nil {
		panic(fmt.Errorf("rune buffer length overflow: %w", err))
	}
	return Cursor{
		File:  f,
		Off:   0,
		Limit: limit,
	}
}

func (c *Cursor) limit() uint32 {
	if c.Limit != 0 {
		return c.Limit
	}
	lenRunes, err := safecast.Conv[uint32](len(c.File.Runes))
	if err != nil {
		panic(fmt.Errorf("rune buffer length overflow: %w", err))
	}
	return lenRunes
}

// EOF reports whether the cursor has reached the end of the buffer.
func (c *Cursor) EOF() bool {
	return c.Off >= c.limit()
}

// Peek returns the current rune, or NUL at end of input. The sentinel makes
// delimiter comparisons fail naturally past the end without special cases.
func (c *Cursor) Peek() rune {
	if c.EOF() {
		return 0
	}
	return c.File.Runes[c.Off]
}

// PeekNext returns the rune one past the current one, or NUL.
func (c *Cursor) PeekNext() rune {
	if c.Off+1 >= c.limit() {
		return 0
	}
	return c.File.Runes[c.Off+1]
}

// PeekThird returns the rune two past the current one, or NUL.
func (c *Cursor) PeekThird() rune {
	if c.Off+2 >= c.limit() {
		return 0
	}
	return c.File.Runes[c.Off+2]
}

// RuneAt returns the rune at an arbitrary offset, with ok=false out of bounds.
func (c *Cursor) RuneAt(off uint32) (rune, bool) {
	if off >= c.limit() {
		return 0, false
	}
	return c.File.Runes[off], true
}

// Bump advances the cursor by one rune and returns it, or NUL at end of
// input (without moving).
func (c *Cursor) Bump() rune {
	if c.EOF() {
		return 0
	}
	r := c.File.Runes[c.Off]
	c.Off++
	return r
}

// Mark is a saved cursor position for cheap Span construction.
type Mark uint32

// Mark saves the current position.
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom builds the span covering everything from the mark to the cursor.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{
		File:  c.File.ID,
		Start: uint32(m),
		End:   c.Off,
	}
}

// Reset moves the cursor back to the mark.
func (c *Cursor) Reset(m Mark) {
	c.Off = uint32(m)
}
