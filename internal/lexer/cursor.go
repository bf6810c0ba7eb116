package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"uscl/internal/source"
)

// Cursor is a position inside a file: a byte offset plus the 1-based
// line/column the scanner has advanced to.
type Cursor struct {
	File *source.File
	Off  uint32
	Line uint32
	Col  uint32
	// Limit is the exclusive upper bound for Off; defaults to len(File.Content).
	Limit uint32
}

// NewCursor creates a cursor at the start of the provided file.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{
		File:  f,
		Off:   0,
		Line:  1,
		Col:   1,
		Limit: limit,
	}
}

// EOF reports whether the cursor is past the last byte.
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Peek reads the current byte, or 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// Peek2 reads the current and next byte, or ok=false when fewer than two
// bytes remain.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.Off+1 >= c.Limit {
		return 0, 0, false
	}
	return c.File.Content[c.Off], c.File.Content[c.Off+1], true
}

// Bump consumes one byte and advances the column. Callers use it only for
// ASCII; multi-byte characters go through Lexer.bumpRune.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.Off++
	c.Col++
	return b
}

// BumpNewline consumes a '\n', advancing the line and resetting the column.
func (c *Cursor) BumpNewline() {
	if c.EOF() {
		return
	}
	c.Off++
	c.Line++
	c.Col = 1
}

// Skip consumes one byte without touching the column. Comment bytes are
// discarded this way; the next newline resets the column anyway.
func (c *Cursor) Skip() {
	if c.EOF() {
		return
	}
	c.Off++
}

// Mark is a saved offset for building the Span of a scanned fragment.
type Mark uint32

// Mark saves the current offset.
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom builds the span from a mark to the current offset.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{
		File:  c.File.ID,
		Start: uint32(m),
		End:   c.Off,
	}
}
