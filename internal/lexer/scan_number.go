package lexer

import (
	"strconv"

	"uscl/internal/token"
)

// scanNumber consumes a maximal run of decimal digits, optionally followed
// by '.' and a further digit run. No exponents, no signs, no base prefixes.
// A trailing dot still yields a float: "3." parses as 3.0.
func (lx *Lexer) scanNumber() {
	start := lx.cursor.Mark()

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		// Digit-only scan plus one dot: ParseFloat cannot reject this.
		value, _ := strconv.ParseFloat(string(lx.file.Content[sp.Start:sp.End]), 64)
		lx.add(token.FloatLit, token.FloatValue(value))
		return
	}

	sp := lx.cursor.SpanFrom(start)
	// On int64 range overflow ParseInt returns the clamped value; the
	// scanner has no overflow reporting, so the clamped value is kept.
	value, _ := strconv.ParseInt(string(lx.file.Content[sp.Start:sp.End]), 10, 64)
	lx.add(token.IntLit, token.IntValue(value))
}
