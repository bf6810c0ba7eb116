package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid is the zero value. The scanner never produces it; unrecognized
	// characters are reported and skipped instead.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// KwDef represents the 'def' keyword.
	KwDef // def
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwLambda represents the 'lambda' keyword.
	KwLambda // lambda
	// KwMatch represents the 'match' keyword.
	KwMatch // match
	// KwQuantum represents the 'quantum' keyword.
	KwQuantum // quantum
	// KwAsync represents the 'async' keyword.
	KwAsync // async
	// KwAwait represents the 'await' keyword.
	KwAwait // await
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwModule represents the 'module' keyword.
	KwModule // module

	// IntLit represents the integer literal token.
	IntLit
	// FloatLit represents the float literal token.
	FloatLit
	// StringLit represents the string literal token.
	StringLit
	// SymbolLit represents the symbol literal token (reserved, not produced
	// by the scanner).
	SymbolLit
	// BoolLit represents the boolean literal token ('true' / 'false').
	BoolLit

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// Percent represents the percent operator token.
	Percent // %
	// Pow represents the power operator token.
	Pow // **
	// EqEq represents the equality operator token.
	EqEq // ==
	// BangEq represents the inequality operator token.
	BangEq // !=
	// Lt represents the less-than operator token.
	Lt // <
	// Gt represents the greater-than operator token.
	Gt // >
	// LtEq represents the less-or-equal operator token.
	LtEq // <=
	// GtEq represents the greater-or-equal operator token.
	GtEq // >=
	// And represents the 'and' operator token (spelled as a keyword).
	And // and
	// Or represents the 'or' operator token (spelled as a keyword).
	Or // or
	// Not represents the 'not' operator token (spelled as a keyword).
	Not // not
	// Assign represents the assignment operator token.
	Assign // =
	// Arrow represents the arrow operator token.
	Arrow // ->
	// Pipe represents the pipe operator token, both '|>' and bare '|'.
	Pipe // |> or |
	// Dot represents the dot operator token.
	Dot // .
	// Colon represents the colon operator token.
	Colon // :
	// Semicolon represents the semicolon operator token.
	Semicolon // ;
	// Comma represents the comma operator token.
	Comma // ,

	// LParen represents the left parenthesis delimiter token.
	LParen // (
	// RParen represents the right parenthesis delimiter token.
	RParen // )
	// LBracket represents the left bracket delimiter token.
	LBracket // [
	// RBracket represents the right bracket delimiter token.
	RBracket // ]
	// LBrace represents the left brace delimiter token.
	LBrace // {
	// RBrace represents the right brace delimiter token.
	RBrace // }

	// Newline represents a logical line break token.
	Newline
	// Indent represents a block indentation increase (reserved, not produced
	// by the scanner).
	Indent
	// Dedent represents a block indentation decrease (reserved, not produced
	// by the scanner).
	Dedent
	// Whitespace represents inter-token spacing (reserved, not produced by
	// the scanner; spaces and tabs are skipped silently).
	Whitespace
	// Comment represents a '#' line comment (reserved, not produced by the
	// scanner; comments are discarded).
	Comment
)

var kindNames = [...]string{
	Invalid:    "Invalid",
	EOF:        "EOF",
	Ident:      "Ident",
	KwDef:      "KwDef",
	KwLet:      "KwLet",
	KwIf:       "KwIf",
	KwElse:     "KwElse",
	KwLambda:   "KwLambda",
	KwMatch:    "KwMatch",
	KwQuantum:  "KwQuantum",
	KwAsync:    "KwAsync",
	KwAwait:    "KwAwait",
	KwReturn:   "KwReturn",
	KwImport:   "KwImport",
	KwModule:   "KwModule",
	IntLit:     "IntLit",
	FloatLit:   "FloatLit",
	StringLit:  "StringLit",
	SymbolLit:  "SymbolLit",
	BoolLit:    "BoolLit",
	Plus:       "Plus",
	Minus:      "Minus",
	Star:       "Star",
	Slash:      "Slash",
	Percent:    "Percent",
	Pow:        "Pow",
	EqEq:       "EqEq",
	BangEq:     "BangEq",
	Lt:         "Lt",
	Gt:         "Gt",
	LtEq:       "LtEq",
	GtEq:       "GtEq",
	And:        "And",
	Or:         "Or",
	Not:        "Not",
	Assign:     "Assign",
	Arrow:      "Arrow",
	Pipe:       "Pipe",
	Dot:        "Dot",
	Colon:      "Colon",
	Semicolon:  "Semicolon",
	Comma:      "Comma",
	LParen:     "LParen",
	RParen:     "RParen",
	LBracket:   "LBracket",
	RBracket:   "RBracket",
	LBrace:     "LBrace",
	RBrace:     "RBrace",
	Newline:    "Newline",
	Indent:     "Indent",
	Dedent:     "Dedent",
	Whitespace: "Whitespace",
	Comment:    "Comment",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsEOF reports whether the kind is the end-of-input sentinel.
func (k Kind) IsEOF() bool { return k == EOF }
