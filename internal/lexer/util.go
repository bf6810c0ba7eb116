package lexer

import (
	"unicode"
	"unicode/utf8"
)

const utf8RuneSelf = 0x80

// ===== Rune access on top of Cursor =====

// peekRune decodes the rune at the cursor without consuming it.
func (lx *Lexer) peekRune() (r rune, size int) {
	if lx.cursor.EOF() {
		return utf8.RuneError, 0
	}
	b := lx.cursor.Peek()
	if b < utf8.RuneSelf { // fast-path ASCII
		return rune(b), 1
	}
	r, sz := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:])
	return r, sz
}

// bumpRune consumes one rune, advancing the column by exactly one: columns
// count characters, not bytes, and are never width-adjusted.
func (lx *Lexer) bumpRune() {
	_, sz := lx.peekRune()
	if sz == 0 {
		return
	}
	lx.cursor.Off += uint32(sz) // #nosec G115 -- DecodeRune size is 1..4
	lx.cursor.Col++
}

// isIdentStartAtCursor reports whether the rune at the cursor can open an
// identifier.
func (lx *Lexer) isIdentStartAtCursor() bool {
	r, sz := lx.peekRune()
	return sz > 0 && isIdentStartRune(r)
}

// ===== Classifiers =====

// ASCII fast paths; Unicode goes through the rune variants.
func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// Identifier tails additionally admit '?' and '!'.
func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || (b >= '0' && b <= '9') || b == '?' || b == '!'
}

func isIdentStartRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinueRune(r rune) bool {
	return r == '_' || r == '?' || r == '!' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }
