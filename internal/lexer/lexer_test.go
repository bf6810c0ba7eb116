package lexer_test

import (
	"fmt"
	"reflect"
	"testing"

	"uscl/internal/diag"
	"uscl/internal/lexer"
	"uscl/internal/source"
	"uscl/internal/token"
)

// testReporter collects every diagnostic the scanner hands over.
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func (r *testReporter) WarningCount() int {
	count := 0
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevWarning {
			count++
		}
	}
	return count
}

func (r *testReporter) Messages() []string {
	messages := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		messages = append(messages, fmt.Sprintf("[%s] %s: %s", d.Code.ID(), d.Severity, d.Message))
	}
	return messages
}

func scan(input string) ([]token.Token, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.ul", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	tokens := lexer.Tokenize(file, lexer.Options{Reporter: reporter})
	return tokens, reporter
}

// expectTokens checks the kind sequence, ignoring the trailing EOF.
func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	tokens, reporter := scan(input)

	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.EOF {
		t.Fatalf("token stream must end with EOF\nInput: %q\nTokens: %v", input, tokens)
	}
	tokens = tokens[:len(tokens)-1]

	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d\nInput: %q\nTokens: %v\nDiags: %v",
			len(expected), len(tokens), input, tokens, reporter.Messages())
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("Token %d: expected %v, got %v (value: %s)",
				i, expected[i], tok.Kind, tok.Value)
		}
	}
}

// expectSingleToken checks that input yields exactly one token before EOF.
func expectSingleToken(t *testing.T, input string, kind token.Kind, value token.Value) {
	t.Helper()
	tokens, _ := scan(input)

	if len(tokens) != 2 {
		t.Fatalf("Expected 1 token + EOF, got %d: %v", len(tokens), tokens)
	}
	tok := tokens[0]
	if tok.Kind != kind {
		t.Errorf("Expected kind %v, got %v", kind, tok.Kind)
	}
	if tok.Value != value {
		t.Errorf("Expected value %s, got %s", value, tok.Value)
	}
}

func TestEmptyInput(t *testing.T) {
	tokens, _ := scan("")
	if len(tokens) != 1 {
		t.Fatalf("Expected exactly one EOF token, got %v", tokens)
	}
	eof := tokens[0]
	if eof.Kind != token.EOF || !eof.Value.IsNone() {
		t.Fatalf("EOF token malformed: %v", eof)
	}
	if eof.Line != 1 || eof.Column != 1 {
		t.Errorf("EOF position = %d:%d, want 1:1", eof.Line, eof.Column)
	}
}

func TestEOFAlwaysTerminal(t *testing.T) {
	inputs := []string{"", "let", "\n\n\n", "@#$", `"unterminated`, "   \t  ", "# only a comment"}
	for _, input := range inputs {
		tokens, _ := scan(input)
		if len(tokens) == 0 {
			t.Fatalf("input %q produced no tokens", input)
		}
		eofCount := 0
		for _, tok := range tokens {
			if tok.Kind == token.EOF {
				eofCount++
			}
		}
		if eofCount != 1 || tokens[len(tokens)-1].Kind != token.EOF {
			t.Errorf("input %q: want exactly one trailing EOF, got %v", input, tokens)
		}
	}
}

func TestIntegers(t *testing.T) {
	expectSingleToken(t, "0", token.IntLit, token.IntValue(0))
	expectSingleToken(t, "7", token.IntLit, token.IntValue(7))
	expectSingleToken(t, "42", token.IntLit, token.IntValue(42))
	expectSingleToken(t, "1234567890", token.IntLit, token.IntValue(1234567890))
}

func TestFloats(t *testing.T) {
	expectSingleToken(t, "3.14", token.FloatLit, token.FloatValue(3.14))
	expectSingleToken(t, "0.5", token.FloatLit, token.FloatValue(0.5))
	// A trailing dot is absorbed into the float.
	expectSingleToken(t, "3.", token.FloatLit, token.FloatValue(3.0))
}

func TestLeadingDotIsNotANumber(t *testing.T) {
	// Digit dispatch needs a leading digit, so ".5" is Dot then IntLit.
	expectTokens(t, ".5", []token.Kind{token.Dot, token.IntLit})
}

func TestNumberThenIdent(t *testing.T) {
	expectTokens(t, "123abc", []token.Kind{token.IntLit, token.Ident})
}

func TestKeywords(t *testing.T) {
	cases := map[string]token.Kind{
		"def":     token.KwDef,
		"let":     token.KwLet,
		"if":      token.KwIf,
		"else":    token.KwElse,
		"lambda":  token.KwLambda,
		"match":   token.KwMatch,
		"quantum": token.KwQuantum,
		"async":   token.KwAsync,
		"await":   token.KwAwait,
		"return":  token.KwReturn,
		"import":  token.KwImport,
		"module":  token.KwModule,
		"and":     token.And,
		"or":      token.Or,
		"not":     token.Not,
	}
	for lexeme, kind := range cases {
		expectSingleToken(t, lexeme, kind, token.TextValue(lexeme))
	}
}

func TestBooleansClassifyThroughKeywordTable(t *testing.T) {
	expectSingleToken(t, "true", token.BoolLit, token.TextValue("true"))
	expectSingleToken(t, "false", token.BoolLit, token.TextValue("false"))
}

func TestMaximalMunchBeatsKeywords(t *testing.T) {
	// No partial keyword match: the whole run is read first.
	expectSingleToken(t, "truee", token.Ident, token.TextValue("truee"))
	expectSingleToken(t, "deffinition", token.Ident, token.TextValue("deffinition"))
	expectSingleToken(t, "lambda_", token.Ident, token.TextValue("lambda_"))
}

func TestIdentifiers(t *testing.T) {
	idents := []string{"x", "_private", "snake_case", "camelCase", "x1", "empty?", "save!"}
	for _, id := range idents {
		expectSingleToken(t, id, token.Ident, token.TextValue(id))
	}
}

func TestUnicodeIdentifier(t *testing.T) {
	expectSingleToken(t, "λx", token.Ident, token.TextValue("λx"))
}

func TestStrings(t *testing.T) {
	expectSingleToken(t, `"hello"`, token.StringLit, token.TextValue("hello"))
	expectSingleToken(t, `'hello'`, token.StringLit, token.TextValue("hello"))
	expectSingleToken(t, `""`, token.StringLit, token.TextValue(""))
}

func TestStringEscapes(t *testing.T) {
	cases := map[string]string{
		`"a\nb"`:  "a\nb",
		`"a\tb"`:  "a\tb",
		`"a\\b"`:  `a\b`,
		`"a\"b"`:  `a"b`,
		`"a\qb"`:  "aqb", // unknown escape passes the char through
		`'it\'s'`: "it's",
	}
	for input, want := range cases {
		expectSingleToken(t, input, token.StringLit, token.TextValue(want))
	}
}

func TestUnterminatedStringAbsorbsToEOF(t *testing.T) {
	// Lenient by design: no closing quote, no error, value is what was read.
	expectSingleToken(t, `"abc`, token.StringLit, token.TextValue("abc"))

	tokens, reporter := scan(`"abc`)
	if tokens[len(tokens)-1].Kind != token.EOF {
		t.Fatal("unterminated string must still end in EOF")
	}
	if reporter.WarningCount() != 0 {
		t.Errorf("unterminated string must not warn, got %v", reporter.Messages())
	}
}

func TestMismatchedQuotesNeverClose(t *testing.T) {
	// An opening '"' runs straight past a '\'': the rest of the input is
	// swallowed into the literal.
	expectSingleToken(t, `"ab'cd`, token.StringLit, token.TextValue("ab'cd"))
}

func TestTwoCharOperators(t *testing.T) {
	cases := map[string]token.Kind{
		"==": token.EqEq,
		"!=": token.BangEq,
		"<=": token.LtEq,
		">=": token.GtEq,
		"->": token.Arrow,
		"**": token.Pow,
		"|>": token.Pipe,
	}
	for input, kind := range cases {
		expectSingleToken(t, input, kind, token.TextValue(input))
	}
}

func TestOneCharOperators(t *testing.T) {
	cases := map[string]token.Kind{
		"+": token.Plus,
		"-": token.Minus,
		"*": token.Star,
		"/": token.Slash,
		"%": token.Percent,
		"=": token.Assign,
		"<": token.Lt,
		">": token.Gt,
		"|": token.Pipe,
	}
	for input, kind := range cases {
		expectSingleToken(t, input, kind, token.TextValue(input))
	}
}

func TestTwoCharWinsOverOneChar(t *testing.T) {
	// "->" must never split into Minus + Gt, "==" never into two Assigns.
	expectTokens(t, "->", []token.Kind{token.Arrow})
	expectTokens(t, "==", []token.Kind{token.EqEq})
	expectTokens(t, "= =", []token.Kind{token.Assign, token.Assign})
	expectTokens(t, "- >", []token.Kind{token.Minus, token.Gt})
	expectTokens(t, "===", []token.Kind{token.EqEq, token.Assign})
}

func TestPunctuationAndDelimiters(t *testing.T) {
	expectTokens(t, ": ; , . ( ) [ ] { }", []token.Kind{
		token.Colon, token.Semicolon, token.Comma, token.Dot,
		token.LParen, token.RParen, token.LBracket, token.RBracket,
		token.LBrace, token.RBrace,
	})
}

func TestNewlineAndLineTracking(t *testing.T) {
	tokens, _ := scan("a\nb")

	want := []token.Kind{token.Ident, token.Newline, token.Ident, token.EOF}
	if len(tokens) != len(want) {
		t.Fatalf("got %v", tokens)
	}
	for i, k := range want {
		if tokens[i].Kind != k {
			t.Fatalf("token %d: got %v, want %v", i, tokens[i].Kind, k)
		}
	}

	a := tokens[0]
	if a.Line != 1 || a.Column != 2 {
		t.Errorf("a position = %d:%d, want 1:2 (trailing)", a.Line, a.Column)
	}

	// The Newline token keeps the line it ended and the reset column.
	nl := tokens[1]
	if nl.Line != 1 || nl.Column != 1 {
		t.Errorf("Newline position = %d:%d, want 1:1", nl.Line, nl.Column)
	}
	if nl.Value != token.TextValue("\n") {
		t.Errorf("Newline value = %s, want \"\\n\"", nl.Value)
	}

	b := tokens[2]
	if b.Line != 2 || b.Column != 2 {
		t.Errorf("b position = %d:%d, want 2:2 (trailing)", b.Line, b.Column)
	}
}

func TestTrailingPositionConvention(t *testing.T) {
	// Positions record the cursor right after the lexeme, for every kind.
	cases := []struct {
		input string
		col   uint32
	}{
		{"42", 3},
		{"3.14", 5},
		{"result", 7},
		{`"hi"`, 5},
		{"->", 3},
		{"(", 2},
	}
	for _, c := range cases {
		tokens, _ := scan(c.input)
		if got := tokens[0].Column; got != c.col {
			t.Errorf("input %q: column = %d, want %d", c.input, got, c.col)
		}
		if tokens[0].Line != 1 {
			t.Errorf("input %q: line = %d, want 1", c.input, tokens[0].Line)
		}
	}
}

func TestUnknownCharacterIsWarnedAndSkipped(t *testing.T) {
	tokens, reporter := scan("@")

	if len(tokens) != 1 || tokens[0].Kind != token.EOF {
		t.Fatalf("Expected bare EOF, got %v", tokens)
	}
	if reporter.WarningCount() != 1 {
		t.Fatalf("Expected exactly one warning, got %v", reporter.Messages())
	}
	d := reporter.diagnostics[0]
	if d.Code != diag.LexUnknownChar {
		t.Errorf("Expected LexUnknownChar, got %v", d.Code)
	}
}

func TestUnknownCharacterDoesNotStopScanning(t *testing.T) {
	expectTokens(t, "a @ b", []token.Kind{token.Ident, token.Ident})

	_, reporter := scan("a @ $ b")
	if reporter.WarningCount() != 2 {
		t.Errorf("Expected two warnings, got %v", reporter.Messages())
	}
}

func TestNilReporterIsSafe(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.ul", []byte("a @ b")))
	tokens := lexer.Tokenize(file, lexer.Options{})
	if tokens[len(tokens)-1].Kind != token.EOF {
		t.Fatal("nil reporter must not change the token stream")
	}
}

func TestCommentsAreElided(t *testing.T) {
	expectTokens(t, "# comment\nx", []token.Kind{token.Newline, token.Ident})
	expectTokens(t, "x # trailing comment", []token.Kind{token.Ident})
	expectTokens(t, "# only", []token.Kind{})
}

func TestWhitespaceIsSilent(t *testing.T) {
	expectTokens(t, "   \t  ", []token.Kind{})

	// Leading whitespace still advances the column before the token.
	tokens, _ := scan("  x")
	if tokens[0].Column != 4 {
		t.Errorf("column after two spaces and x = %d, want 4", tokens[0].Column)
	}
}

func TestDeterminism(t *testing.T) {
	input := `def add(x, y) -> x + y
let result = add(5, 3)
quantum entangle(state) { |state> }
if result > 5 {
    return true
} else {
    return false
}
`
	first, _ := scan(input)
	second, _ := scan(input)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("re-tokenizing the same input must yield identical sequences")
	}
}

func TestFullProgram(t *testing.T) {
	input := "def add(x, y) -> x + y\nlet result = add(5, 3)\n"
	expectTokens(t, input, []token.Kind{
		token.KwDef, token.Ident, token.LParen, token.Ident, token.Comma,
		token.Ident, token.RParen, token.Arrow, token.Ident, token.Plus,
		token.Ident, token.Newline,
		token.KwLet, token.Ident, token.Assign, token.Ident, token.LParen,
		token.IntLit, token.Comma, token.IntLit, token.RParen, token.Newline,
	})
}

func TestPipeline(t *testing.T) {
	expectTokens(t, "xs |> map |> sum", []token.Kind{
		token.Ident, token.Pipe, token.Ident, token.Pipe, token.Ident,
	})
}

func TestInternerDedupesIdentifiers(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.ul", []byte("x x x y")))

	in := source.NewInterner()
	tokens := lexer.Tokenize(file, lexer.Options{Interner: in})

	// "x", "y", plus the preinterned empty string.
	if in.Len() != 3 {
		t.Errorf("interner Len = %d, want 3", in.Len())
	}
	if tokens[0].Value.Text != "x" || tokens[1].Value.Text != "x" {
		t.Fatalf("unexpected tokens %v", tokens)
	}
}

func TestIntOverflowClampsQuietly(t *testing.T) {
	// Past int64 range the native parse clamps; no diagnostic either way.
	tokens, reporter := scan("99999999999999999999")
	if tokens[0].Kind != token.IntLit {
		t.Fatalf("got %v", tokens[0])
	}
	if reporter.WarningCount() != 0 {
		t.Errorf("overflow must not warn: %v", reporter.Messages())
	}
}
