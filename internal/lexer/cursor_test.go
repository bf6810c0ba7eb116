package lexer

import (
	"testing"

	"uscl/internal/source"
)

func testFile(content string) *source.File {
	fs := source.NewFileSet()
	return fs.Get(fs.AddVirtual("cursor.ul", []byte(content)))
}

func TestCursorStartsAtOneOne(t *testing.T) {
	c := NewCursor(testFile("abc"))
	if c.Line != 1 || c.Col != 1 || c.Off != 0 {
		t.Fatalf("fresh cursor = off %d, %d:%d, want 0, 1:1", c.Off, c.Line, c.Col)
	}
}

func TestCursorBumpAdvancesColumn(t *testing.T) {
	c := NewCursor(testFile("ab"))
	if b := c.Bump(); b != 'a' {
		t.Fatalf("Bump = %q, want 'a'", b)
	}
	if c.Col != 2 {
		t.Errorf("Col = %d, want 2", c.Col)
	}
	c.Bump()
	if !c.EOF() {
		t.Error("expected EOF after consuming both bytes")
	}
	if b := c.Bump(); b != 0 {
		t.Errorf("Bump at EOF = %q, want 0", b)
	}
}

func TestCursorBumpNewline(t *testing.T) {
	c := NewCursor(testFile("a\nb"))
	c.Bump()
	c.BumpNewline()
	if c.Line != 2 || c.Col != 1 {
		t.Errorf("after newline = %d:%d, want 2:1", c.Line, c.Col)
	}
}

func TestCursorSkipLeavesColumn(t *testing.T) {
	c := NewCursor(testFile("#c"))
	c.Skip()
	c.Skip()
	if c.Col != 1 {
		t.Errorf("Skip must not advance column, Col = %d", c.Col)
	}
	if !c.EOF() {
		t.Error("expected EOF")
	}
}

func TestCursorPeek2(t *testing.T) {
	c := NewCursor(testFile("->"))
	b0, b1, ok := c.Peek2()
	if !ok || b0 != '-' || b1 != '>' {
		t.Fatalf("Peek2 = %q %q %v", b0, b1, ok)
	}
	c.Bump()
	if _, _, ok := c.Peek2(); ok {
		t.Error("Peek2 with one byte left must fail")
	}
}

func TestCursorSpanFrom(t *testing.T) {
	c := NewCursor(testFile("hello"))
	m := c.Mark()
	for i := 0; i < 5; i++ {
		c.Bump()
	}
	sp := c.SpanFrom(m)
	if sp.Start != 0 || sp.End != 5 {
		t.Errorf("SpanFrom = %v, want 0..5", sp)
	}
}

func TestBumpRuneCountsCharacters(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("cursor.ul", []byte("λx")))
	lx := New(file, Options{})

	lx.bumpRune() // λ is two bytes but one column
	if lx.cursor.Off != 2 || lx.cursor.Col != 2 {
		t.Errorf("after λ: off %d col %d, want 2 2", lx.cursor.Off, lx.cursor.Col)
	}
	lx.bumpRune()
	if lx.cursor.Off != 3 || lx.cursor.Col != 3 {
		t.Errorf("after x: off %d col %d, want 3 3", lx.cursor.Off, lx.cursor.Col)
	}
}
