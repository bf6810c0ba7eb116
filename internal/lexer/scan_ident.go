package lexer

import (
	"golang.org/x/text/unicode/norm"

	"uscl/internal/token"
)

// scanIdentOrKeyword consumes a maximal identifier run (letters, digits,
// '_', '?', '!'; first character letter or '_', guaranteed by dispatch) and
// classifies it through the keyword table. The raw lexeme is the token value
// for keywords and identifiers alike.
func (lx *Lexer) scanIdentOrKeyword() {
	start := lx.cursor.Mark()
	ascii := true

	if b := lx.cursor.Peek(); b < utf8RuneSelf {
		lx.cursor.Bump()
	} else {
		ascii = false
		lx.bumpRune()
	}

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b < utf8RuneSelf {
			if !isIdentContinueByte(b) {
				break
			}
			lx.cursor.Bump()
			continue
		}
		r, sz := lx.peekRune()
		if sz == 0 || !isIdentContinueRune(r) {
			break
		}
		ascii = false
		lx.bumpRune()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	if !ascii {
		// Canonical NFC form so visually identical identifiers compare equal.
		text = norm.NFC.String(text)
	}
	if lx.opts.Interner != nil {
		text = lx.opts.Interner.Get(text)
	}

	if kind, ok := token.LookupKeyword(text); ok {
		lx.add(kind, token.TextValue(text))
		return
	}
	lx.add(token.Ident, token.TextValue(text))
}
