package token

var keywords = map[string]Kind{
	"def":     KwDef,
	"let":     KwLet,
	"if":      KwIf,
	"else":    KwElse,
	"lambda":  KwLambda,
	"match":   KwMatch,
	"quantum": KwQuantum,
	"async":   KwAsync,
	"await":   KwAwait,
	"return":  KwReturn,
	"import":  KwImport,
	"module":  KwModule,
	"true":    BoolLit,
	"false":   BoolLit,
	"and":     And,
	"or":      Or,
	"not":     Not,
}

// LookupKeyword returns the reserved-word kind for an identifier-shaped
// lexeme. Keywords are case sensitive; only lowercase spellings match.
// Note the dual mappings: 'true'/'false' classify as BoolLit and
// 'and'/'or'/'not' as operator kinds, not as generic keywords.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
