package token

import "fmt"

// Token represents a single source token with its decoded value and the
// 1-based line/column the cursor held right after the lexeme was consumed.
type Token struct {
	Kind   Kind   `json:"kind" msgpack:"kind"`
	Value  Value  `json:"value" msgpack:"value"`
	Line   uint32 `json:"line" msgpack:"line"`
	Column uint32 `json:"column" msgpack:"column"`
}

func (t Token) String() string {
	return fmt.Sprintf("Token(%s, %s, %d:%d)", t.Kind, t.Value, t.Line, t.Column)
}

// IsLiteral reports whether the token is a numeric, boolean, string, or
// symbol literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit, SymbolLit, BoolLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a reserved word. Boolean literals
// and the word operators and/or/not come from the keyword table too but are
// classified by their own kinds.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwDef, KwLet, KwIf, KwElse, KwLambda, KwMatch, KwQuantum,
		KwAsync, KwAwait, KwReturn, KwImport, KwModule:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is a punctuation, operator, or
// delimiter.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case Plus, Minus, Star, Slash, Percent, Pow, EqEq, BangEq, Lt, Gt,
		LtEq, GtEq, And, Or, Not, Assign, Arrow, Pipe, Dot, Colon,
		Semicolon, Comma, LParen, RParen, LBracket, RBracket, LBrace, RBrace:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
