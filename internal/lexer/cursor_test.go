package lexer

import (
	"testing"

	"regg/internal/source"
)

// helper to create a file backed by an in-memory buffer
func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.regg", []byte(content))
	return fs.Get(id)
}

func TestSequentialReading(t *testing.T) {
	file := createFile("a\nb")
	cursor := NewCursor(file)

	if cursor.EOF() {
		t.Error("Expected not EOF at start")
	}
	if cursor.Peek() != 'a' {
		t.Errorf("Expected peek 'a', got %c", cursor.Peek())
	}
	if b := cursor.Bump(); b != 'a' {
		t.Errorf("Expected bump 'a', got %c", b)
	}

	if cursor.Peek() != '\n' {
		t.Errorf("Expected peek '\\n', got %c", cursor.Peek())
	}
	if b := cursor.Bump(); b != '\n' {
		t.Errorf("Expected bump '\\n', got %c", b)
	}

	if b := cursor.Bump(); b != 'b' {
		t.Errorf("Expected bump 'b', got %c", b)
	}

	if !cursor.EOF() {
		t.Error("Expected EOF at end")
	}
	if cursor.Peek() != 0 {
		t.Error("Peek past end should return the NUL sentinel")
	}
	if cursor.Bump() != 0 {
		t.Error("Bump past end should return the NUL sentinel")
	}
	if cursor.Off != 3 {
		t.Errorf("Bump past end must not move the cursor, Off = %d", cursor.Off)
	}
}

func TestLookaheadSentinels(t *testing.T) {
	file := createFile("xy")
	cursor := NewCursor(file)

	if cursor.Peek() != 'x' || cursor.PeekNext() != 'y' {
		t.Error("two-rune lookahead broken")
	}
	if cursor.PeekThird() != 0 {
		t.Error("PeekThird past end should return NUL")
	}

	cursor.Bump()
	if cursor.PeekNext() != 0 {
		t.Error("PeekNext past end should return NUL")
	}
}

func TestCursorIsRuneIndexed(t *testing.T) {
	file := createFile("αβx")
	cursor := NewCursor(file)

	if r := cursor.Bump(); r != 'α' {
		t.Errorf("Expected 'α', got %c", r)
	}
	if r := cursor.Peek(); r != 'β' {
		t.Errorf("Expected 'β', got %c", r)
	}
	if cursor.PeekNext() != 'x' {
		t.Error("PeekNext should see 'x' one codepoint ahead")
	}
	if cursor.Off != 1 {
		t.Errorf("Off after one bump = %d, want 1 (codepoints, not bytes)", cursor.Off)
	}
}

func TestMarkAndSpan(t *testing.T) {
	file := createFile("hello")
	cursor := NewCursor(file)

	mark := cursor.Mark()
	cursor.Bump()
	cursor.Bump()
	sp := cursor.SpanFrom(mark)

	if sp.Start != 0 || sp.End != 2 {
		t.Errorf("SpanFrom = %+v", sp)
	}

	cursor.Reset(mark)
	if cursor.Off != 0 {
		t.Errorf("Reset failed, Off = %d", cursor.Off)
	}
}

func TestRuneAt(t *testing.T) {
	file := createFile("ab")
	cursor := NewCursor(file)

	if r, ok := cursor.RuneAt(1); !ok || r != 'b' {
		t.Errorf("RuneAt(1) = %c/%v", r, ok)
	}
	if _, ok := cursor.RuneAt(2); ok {
		t.Error("RuneAt past end should report !ok")
	}
}
