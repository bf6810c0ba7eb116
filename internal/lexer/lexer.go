package lexer

import (
	"unicode/utf8"

	"uscl/internal/source"
	"uscl/internal/token"
	"uscl/internal/trace"
)

// Lexer scans one file into an append-only token sequence. State lives for a
// single Tokenize call.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	tokens []token.Token

	// indents is the indentation-level stack, initialized to {0}. Nothing
	// pushes or pops it and no Indent/Dedent tokens are emitted; the
	// mechanism is reserved until block structure becomes significant.
	indents []uint32
}

// New creates a lexer over the file.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:    file,
		cursor:  NewCursor(file),
		opts:    opts,
		tokens:  make([]token.Token, 0, len(file.Content)/4),
		indents: []uint32{0},
	}
}

// Tokenize scans the whole file eagerly and returns the materialized token
// sequence.
func Tokenize(file *source.File, opts Options) []token.Token {
	return New(file, opts).Tokenize()
}

// Tokenize runs the scan loop left to right. It always terminates (the
// cursor strictly advances each iteration) and the result always ends with
// exactly one EOF token carrying no value. There is no failure path: every
// input produces a complete sequence.
func (lx *Lexer) Tokenize() []token.Token {
	trace.Debugf(lx.tracer(), "scan.begin", map[string]uint64{
		"chars": uint64(utf8.RuneCount(lx.file.Content)),
	})

	for !lx.cursor.EOF() {
		lx.skipSpaceAndComments()
		if lx.cursor.EOF() {
			break
		}

		b := lx.cursor.Peek()
		switch {
		case b == '\n':
			// Quirk, kept for downstream compatibility: the Newline token
			// records the line it ends together with the already-reset
			// column of the next line.
			line := lx.cursor.Line
			lx.cursor.BumpNewline()
			lx.tokens = append(lx.tokens, token.Token{
				Kind:   token.Newline,
				Value:  token.TextValue("\n"),
				Line:   line,
				Column: lx.cursor.Col,
			})

		case isDec(b):
			lx.scanNumber()

		case isIdentStartByte(b):
			lx.scanIdentOrKeyword()

		case b >= utf8RuneSelf && lx.isIdentStartAtCursor():
			// Unicode letter opens an identifier.
			lx.scanIdentOrKeyword()

		case b == '"' || b == '\'':
			lx.scanString(b)

		default:
			if kind, ok := punctTable[b]; ok {
				lx.cursor.Bump()
				lx.add(kind, token.TextValue(string(b)))
				break
			}
			lx.scanOperator()
		}
	}

	lx.add(token.EOF, token.NoneValue())

	trace.Debugf(lx.tracer(), "scan.end", map[string]uint64{
		"tokens": uint64(len(lx.tokens)),
	})
	return lx.tokens
}

// add appends a token stamped with the cursor's current position, i.e. the
// position immediately trailing the lexeme. Every reader calls this after
// consuming its characters, which is what keeps the trailing-position
// convention uniform across token kinds.
func (lx *Lexer) add(kind token.Kind, value token.Value) {
	lx.tokens = append(lx.tokens, token.Token{
		Kind:   kind,
		Value:  value,
		Line:   lx.cursor.Line,
		Column: lx.cursor.Col,
	})
}
