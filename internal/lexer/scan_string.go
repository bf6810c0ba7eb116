package lexer

import (
	"strings"

	"uscl/internal/token"
)

// scanString reads a string literal opened by quote ('"' or '\''). The same
// character must close it; quote styles are never cross-matched, so an
// opening '"' runs straight past any '\''. Escapes: \n, \t, \\ decode, any
// other escaped character passes through unchanged. Reaching EOF before the
// closing quote is not an error: whatever accumulated becomes the value.
func (lx *Lexer) scanString(quote byte) {
	lx.cursor.Bump() // opening quote
	var sb strings.Builder

	for !lx.cursor.EOF() && lx.cursor.Peek() != quote {
		b := lx.cursor.Peek()

		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break // lone trailing backslash is dropped
			}
			esc := lx.cursor.Peek()
			if esc >= utf8RuneSelf {
				r, _ := lx.peekRune()
				sb.WriteRune(r)
				lx.bumpRune()
				continue
			}
			switch esc {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case '\\':
				sb.WriteByte('\\')
			default:
				sb.WriteByte(esc)
			}
			lx.cursor.Bump()
			continue
		}

		if b < utf8RuneSelf {
			// Raw newlines are absorbed like any other character; the line
			// counter deliberately stays put inside literals.
			sb.WriteByte(b)
			lx.cursor.Bump()
			continue
		}
		r, _ := lx.peekRune()
		sb.WriteRune(r)
		lx.bumpRune()
	}

	if !lx.cursor.EOF() {
		lx.cursor.Bump() // closing quote
	}

	lx.add(token.StringLit, token.TextValue(sb.String()))
}
