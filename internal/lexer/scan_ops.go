package lexer

import (
	"fmt"

	"uscl/internal/diag"
	"uscl/internal/token"
)

// Operator tables are process-wide and immutable after init; readers never
// rebuild them per call.
var twoCharOps = map[string]token.Kind{
	"==": token.EqEq,
	"!=": token.BangEq,
	"<=": token.LtEq,
	">=": token.GtEq,
	"->": token.Arrow,
	"**": token.Pow,
	"|>": token.Pipe,
}

var oneCharOps = map[byte]token.Kind{
	'+': token.Plus,
	'-': token.Minus,
	'*': token.Star,
	'/': token.Slash,
	'%': token.Percent,
	'=': token.Assign,
	'<': token.Lt,
	'>': token.Gt,
	'|': token.Pipe,
}

// punctTable holds the fixed single-character punctuation the main loop
// dispatches on before falling back to scanOperator.
var punctTable = map[byte]token.Kind{
	':': token.Colon,
	';': token.Semicolon,
	',': token.Comma,
	'.': token.Dot,
	'(': token.LParen,
	')': token.RParen,
	'[': token.LBracket,
	']': token.RBracket,
	'{': token.LBrace,
	'}': token.RBrace,
}

// scanOperator greedily matches the 2-character table first, then the
// 1-character one, so "->" can never split into Minus+Gt. A character that
// matches neither table is reported as a warning and skipped; scanning
// never stops on invalid input.
func (lx *Lexer) scanOperator() {
	start := lx.cursor.Mark()

	if b0, b1, ok := lx.cursor.Peek2(); ok {
		two := string([]byte{b0, b1})
		if kind, hit := twoCharOps[two]; hit {
			lx.cursor.Bump()
			lx.cursor.Bump()
			lx.add(kind, token.TextValue(two))
			return
		}
	}

	b := lx.cursor.Peek()
	if kind, hit := oneCharOps[b]; hit {
		lx.cursor.Bump()
		lx.add(kind, token.TextValue(string(b)))
		return
	}

	// Unrecognized character: diagnose with the position it was found at,
	// then advance past it.
	r, _ := lx.peekRune()
	line, col := lx.cursor.Line, lx.cursor.Col
	lx.bumpRune()
	lx.warn(diag.LexUnknownChar, lx.cursor.SpanFrom(start),
		fmt.Sprintf("unknown character %q at %d:%d", r, line, col))
}
